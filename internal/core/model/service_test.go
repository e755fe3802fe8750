package model

import (
	"encoding/json"
	"testing"
	"time"
)

func TestService_StateMachine(t *testing.T) {
	svc := NewService(3001, 555, "dev-server", "node server.js")

	if svc.State() != StateDiscovered {
		t.Fatalf("expected discovered, got %s", svc.State())
	}
	if svc.Probed() || svc.Fingerprint() != "" || len(svc.Routes()) != 0 {
		t.Fatal("fresh service must carry no enrichment")
	}

	svc.AttachDiscovery(&Discovery{
		Routes:       []string{"/api"},
		Headers:      map[string]string{"Server": "nginx"},
		Fingerprint:  "a1b2c3d4",
		ResponseTime: 12 * time.Millisecond,
	})

	if svc.State() != StateProbed {
		t.Fatalf("expected probed, got %s", svc.State())
	}
	if svc.Fingerprint() != "a1b2c3d4" {
		t.Errorf("unexpected fingerprint: %s", svc.Fingerprint())
	}
}

func TestService_MarshalJSON_Unprobed(t *testing.T) {
	// 未探测的服务也要导出全部字段: 空 routes、空指纹
	svc := NewService(3001, 555, "dev-server", "node server.js")

	data, err := json.Marshal(svc)
	if err != nil {
		t.Fatal(err)
	}

	var out map[string]interface{}
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatal(err)
	}

	if out["port"].(float64) != 3001 {
		t.Errorf("unexpected port: %v", out["port"])
	}
	if out["protocol"] != "tcp" {
		t.Errorf("unexpected protocol: %v", out["protocol"])
	}
	if routes, ok := out["routes"].([]interface{}); !ok || len(routes) != 0 {
		t.Errorf("expected empty routes array, got %v", out["routes"])
	}
	if out["fingerprint"] != "" {
		t.Errorf("expected absent fingerprint, got %v", out["fingerprint"])
	}
}

func TestService_MarshalJSON_Probed(t *testing.T) {
	svc := NewService(3001, 555, "dev-server", "")
	svc.AttachDiscovery(&Discovery{
		Routes:       []string{"/api", "/health"},
		Headers:      map[string]string{"Server": "nginx"},
		Fingerprint:  "a1b2c3d4",
		ResponseTime: 250 * time.Millisecond,
	})

	data, err := json.Marshal(svc)
	if err != nil {
		t.Fatal(err)
	}

	var out map[string]interface{}
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatal(err)
	}

	if out["fingerprint"] != "a1b2c3d4" {
		t.Errorf("unexpected fingerprint: %v", out["fingerprint"])
	}
	// response_time 导出为秒
	if out["response_time"].(float64) != 0.25 {
		t.Errorf("unexpected response_time: %v", out["response_time"])
	}
}

func TestRegistry_Ordering(t *testing.T) {
	reg := Registry{
		9000: NewService(9000, 3, "c", ""),
		3000: NewService(3000, 1, "a", ""),
		5000: NewService(5000, 2, "b", ""),
	}

	ports := reg.Ports()
	if ports[0] != 3000 || ports[1] != 5000 || ports[2] != 9000 {
		t.Fatalf("ports not ascending: %v", ports)
	}

	services := reg.Services()
	for i, want := range ports {
		if services[i].Port != want {
			t.Fatalf("services not in port order: %v", services)
		}
	}
}
