package route

import (
	"context"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/CrazyDubya/portsy/internal/config"
	"github.com/CrazyDubya/portsy/internal/core/model"
	"github.com/CrazyDubya/portsy/internal/pkg/logger"
)

func init() {
	logger.InitLogger(&config.LogConfig{
		Level:  "debug",
		Format: "text",
		Output: "stdout",
	})
}

// newMockServer 模拟一个带框架头的开发服务器
func newMockServer(t *testing.T) (*httptest.Server, int) {
	t.Helper()
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Server", "nginx/1.18.0")
		w.Header().Set("X-Powered-By", "Express")
		switch r.URL.Path {
		case "/", "/health", "/api":
			w.WriteHeader(http.StatusOK)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	port := ts.Listener.Addr().(*net.TCPAddr).Port
	return ts, port
}

func TestProber_Discover(t *testing.T) {
	ts, port := newMockServer(t)
	defer ts.Close()

	svc := model.NewService(port, 555, "dev-server", "node server.js")

	prober := NewProber(2*time.Second, []string{"/health", "/api", "/missing"})
	prober.Discover(context.Background(), svc)

	if !svc.Probed() {
		t.Fatal("expected service to be probed")
	}

	d := svc.Discovery()
	if len(d.Routes) != 2 {
		t.Fatalf("expected 2 routes, got %v", d.Routes)
	}
	// 路由集去重且升序
	if d.Routes[0] != "/api" || d.Routes[1] != "/health" {
		t.Errorf("unexpected route set: %v", d.Routes)
	}

	if d.Headers["Server"] != "nginx/1.18.0" {
		t.Errorf("Server header not captured: %v", d.Headers)
	}
	if d.Headers["X-Powered-By"] != "Express" {
		t.Errorf("X-Powered-By header not captured: %v", d.Headers)
	}
	if d.Fingerprint == "" || len(d.Fingerprint) != 8 {
		t.Errorf("unexpected fingerprint: %q", d.Fingerprint)
	}
	if d.ResponseTime <= 0 {
		t.Error("expected positive response time")
	}
	if svc.State() != model.StateProbed {
		t.Errorf("expected state probed, got %s", svc.State())
	}
}

func TestProber_FingerprintStableAcrossRuns(t *testing.T) {
	// 对同一个未变化的存活服务跑两次，指纹必须一致
	ts, port := newMockServer(t)
	defer ts.Close()

	prober := NewProber(2*time.Second, []string{"/health", "/api"})

	svc1 := model.NewService(port, 555, "dev-server", "")
	prober.Discover(context.Background(), svc1)

	svc2 := model.NewService(port, 555, "dev-server", "")
	prober.Discover(context.Background(), svc2)

	if svc1.Fingerprint() == "" || svc1.Fingerprint() != svc2.Fingerprint() {
		t.Fatalf("fingerprint unstable: %q vs %q", svc1.Fingerprint(), svc2.Fingerprint())
	}
}

func TestProber_RootFailureLeavesServiceUntouched(t *testing.T) {
	// 根路径失败（连接拒绝）时整体放弃，服务保持未探测，不 panic 不报错
	ts, port := newMockServer(t)
	ts.Close() // 立即关掉，端口变为拒绝连接

	svc := model.NewService(port, 555, "dev-server", "")

	prober := NewProber(500*time.Millisecond, []string{"/health"})
	prober.Discover(context.Background(), svc)

	if svc.Probed() {
		t.Fatal("expected no enrichment after root probe failure")
	}
	if len(svc.Routes()) != 0 || svc.Fingerprint() != "" {
		t.Error("expected empty routes and absent fingerprint")
	}
	if svc.State() != model.StateDiscovered {
		t.Errorf("expected service to remain discovered, got %s", svc.State())
	}
}

func TestProber_PathFailureRecordedAbsent(t *testing.T) {
	// 单个路径 404 和传输失败都只是"不存在"，不影响其它路径
	ts, port := newMockServer(t)
	defer ts.Close()

	svc := model.NewService(port, 1, "x", "")
	prober := NewProber(2*time.Second, []string{"/missing", "/health"})
	prober.Discover(context.Background(), svc)

	if !svc.Probed() {
		t.Fatal("expected probed service")
	}
	routes := svc.Routes()
	if len(routes) != 1 || routes[0] != "/health" {
		t.Fatalf("unexpected routes: %v", routes)
	}
}

func TestDiscoverAll_PoolEnrichesRegistry(t *testing.T) {
	ts1, p1 := newMockServer(t)
	defer ts1.Close()
	ts2, p2 := newMockServer(t)
	defer ts2.Close()

	registry := model.Registry{
		p1: model.NewService(p1, 100, "node", ""),
		p2: model.NewService(p2, 200, "node", ""),
	}

	prober := NewProber(2*time.Second, []string{"/health"})
	DiscoverAll(context.Background(), registry, prober, 2)

	for port, svc := range registry {
		if !svc.Probed() {
			t.Errorf("service on port %d not enriched", port)
		}
	}
	// 相同信号 -> 相同指纹
	if registry[p1].Fingerprint() != registry[p2].Fingerprint() {
		t.Error("identical services should share a fingerprint")
	}
}
