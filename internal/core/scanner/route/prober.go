/**
 * HTTP 路由探测器
 * @author: sun977
 * @date: 2026.02.11
 * @description: 对单个服务做根路径基线探测和候选路径确认，填充路由/响应头/指纹
 */

package route

import (
	"context"
	"fmt"
	"net/http"
	"sort"
	"sync"
	"time"

	"github.com/CrazyDubya/portsy/internal/core/fingerprint"
	"github.com/CrazyDubya/portsy/internal/core/model"
	"github.com/CrazyDubya/portsy/internal/pkg/logger"
	"github.com/CrazyDubya/portsy/internal/pkg/version"
)

const (
	// DefaultTimeout 单次 HTTP 请求默认超时
	DefaultTimeout = 2 * time.Second

	// DefaultWorkers 路由发现默认并发数
	// 刻意比存活探测的宽池窄: 每个单元更重，且目标进程可能脆弱
	DefaultWorkers = 10
)

// Prober 单服务路由探测器
// 一次 Discover 只归属一个服务，跨服务的并行由 DiscoverAll 控制
type Prober struct {
	Timeout time.Duration
	Paths   []string // 候选路径集（common 或 comprehensive）
}

// NewProber 创建探测器
func NewProber(timeout time.Duration, paths []string) *Prober {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if len(paths) == 0 {
		paths = DefaultCatalog().Common()
	}
	return &Prober{Timeout: timeout, Paths: paths}
}

// newClient 每次探测使用独立的 HTTP 客户端
// 连接不跨探测复用，socket 的生命周期限定在单次探测内
func (p *Prober) newClient() *http.Client {
	return &http.Client{
		Timeout: p.Timeout,
		Transport: &http.Transport{
			DisableKeepAlives: true,
		},
	}
}

// Discover 对一个服务执行路由发现，原地挂载探测快照
// 根路径失败则整体放弃，服务保持未探测状态，不向上传播错误
func (p *Prober) Discover(ctx context.Context, svc *model.Service) {
	baseURL := fmt.Sprintf("http://127.0.0.1:%d", svc.Port)
	client := p.newClient()
	defer client.CloseIdleConnections()

	// 1. 根路径基线探测
	headers, elapsed, ok := p.probeRoot(ctx, client, baseURL)
	if !ok {
		logger.Debugf("[RouteProber] root probe failed for port %d, skipping discovery", svc.Port)
		return
	}

	// 2. 候选路径逐个确认
	// 单个路径的传输失败和 404 不做区分，都记为不存在
	found := make(map[string]struct{})
	for _, path := range p.Paths {
		if p.probePath(ctx, client, baseURL+path) {
			found[path] = struct{}{}
		}
	}

	routes := make([]string, 0, len(found))
	for path := range found {
		routes = append(routes, path)
	}
	sort.Strings(routes)

	// 3. 计算指纹并整体挂载
	server := headers["Server"]
	poweredBy := headers["X-Powered-By"]

	svc.AttachDiscovery(&model.Discovery{
		Routes:       routes,
		Headers:      headers,
		Fingerprint:  fingerprint.Compute(server, poweredBy, routes),
		FullDigest:   fingerprint.Digest(server, poweredBy, routes),
		ResponseTime: elapsed,
	})

	logger.Debugf("[RouteProber] port %d: %d routes, fingerprint %s", svc.Port, len(routes), svc.Fingerprint())
}

// probeRoot 根路径 GET，返回响应头和耗时
func (p *Prober) probeRoot(ctx context.Context, client *http.Client, baseURL string) (map[string]string, time.Duration, bool) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, baseURL+"/", nil)
	if err != nil {
		return nil, 0, false
	}
	req.Header.Set("User-Agent", version.GetUserAgent())

	start := time.Now()
	resp, err := client.Do(req)
	elapsed := time.Since(start)
	if err != nil {
		return nil, 0, false
	}
	defer resp.Body.Close()

	// 只捕获根路径响应头，多值头取第一个
	headers := make(map[string]string, len(resp.Header))
	for name, values := range resp.Header {
		if len(values) > 0 {
			headers[name] = values[0]
		}
	}
	return headers, elapsed, true
}

// probePath 候选路径 HEAD，状态码 < 400 视为存在
func (p *Prober) probePath(ctx context.Context, client *http.Client, url string) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, url, nil)
	if err != nil {
		return false
	}
	req.Header.Set("User-Agent", version.GetUserAgent())

	resp, err := client.Do(req)
	if err != nil {
		return false
	}
	resp.Body.Close()
	return resp.StatusCode < 400
}

// DiscoverAll 在窄并发池上对整个注册表做路由发现
// 每个服务的探测彼此独立，worker 只写自己的服务，没有共享可变状态
func DiscoverAll(ctx context.Context, registry model.Registry, prober *Prober, workers int) {
	if workers <= 0 {
		workers = DefaultWorkers
	}

	sem := make(chan struct{}, workers)
	var wg sync.WaitGroup

	for _, svc := range registry.Services() {
		wg.Add(1)
		sem <- struct{}{}
		go func(svc *model.Service) {
			defer wg.Done()
			defer func() { <-sem }()
			prober.Discover(ctx, svc)
		}(svc)
	}

	wg.Wait()
}
