package reporter

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/CrazyDubya/portsy/internal/core/model"
)

func TestSaveJSONResult(t *testing.T) {
	probed := model.NewService(3001, 555, "dev-server", "node server.js")
	probed.AttachDiscovery(&model.Discovery{
		Routes:       []string{"/api"},
		Headers:      map[string]string{"Server": "nginx"},
		Fingerprint:  "a1b2c3d4",
		ResponseTime: 10 * time.Millisecond,
	})

	registry := model.Registry{
		3001: probed,
		// 根路径探测失败的服务也要完整出现在导出里
		8080: model.NewService(8080, 777, "python", "python -m http.server"),
	}

	path := filepath.Join(t.TempDir(), "scan.json")
	if err := SaveJSONResult(path, registry); err != nil {
		t.Fatalf("SaveJSONResult failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	var doc struct {
		ScanTime string                     `json:"scan_time"`
		Services map[string]json.RawMessage `json:"services"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("invalid export document: %v", err)
	}

	if doc.ScanTime == "" {
		t.Error("missing scan_time")
	}
	// services 以端口字符串为键
	if _, ok := doc.Services["3001"]; !ok {
		t.Error("missing service keyed by port string 3001")
	}
	if _, ok := doc.Services["8080"]; !ok {
		t.Error("unprobed service must still be exported")
	}

	var svc map[string]interface{}
	if err := json.Unmarshal(doc.Services["8080"], &svc); err != nil {
		t.Fatal(err)
	}
	if routes := svc["routes"].([]interface{}); len(routes) != 0 {
		t.Errorf("expected empty routes for unprobed service, got %v", routes)
	}
	if svc["fingerprint"] != "" {
		t.Errorf("expected absent fingerprint, got %v", svc["fingerprint"])
	}
}

func TestSaveCSVResult(t *testing.T) {
	registry := model.Registry{
		3001: model.NewService(3001, 555, "dev-server", ""),
	}

	path := filepath.Join(t.TempDir(), "scan.csv")
	if err := SaveCSVResult(path, registry); err != nil {
		t.Fatalf("SaveCSVResult failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(data) == 0 {
		t.Fatal("empty csv output")
	}
}

func TestSaveCSVResult_EmptyRegistry(t *testing.T) {
	// 零发现的干净运行也要产出只含表头的文件，不报错
	path := filepath.Join(t.TempDir(), "scan.csv")
	if err := SaveCSVResult(path, model.Registry{}); err != nil {
		t.Fatalf("empty registry export failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "Port") {
		t.Errorf("expected header row in empty export, got %q", data)
	}
}
