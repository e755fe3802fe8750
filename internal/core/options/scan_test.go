package options

import (
	"testing"
)

func TestValidate_DefaultsOK(t *testing.T) {
	if err := NewScanOptions().Validate(); err != nil {
		t.Fatalf("default options should validate: %v", err)
	}
}

func TestValidate_UnknownPreset(t *testing.T) {
	opts := NewScanOptions()
	opts.Preset = "turbo"
	if err := opts.Validate(); err == nil {
		t.Fatal("expected error for unknown preset")
	}
}

func TestValidate_InvertedRange(t *testing.T) {
	opts := NewScanOptions()
	opts.StartPort = 9000
	opts.EndPort = 3000
	if err := opts.Validate(); err == nil {
		t.Fatal("expected error for inverted range")
	}
}

func TestValidate_OutOfBounds(t *testing.T) {
	cases := []struct{ start, end int }{
		{0, 100},
		{1, 70000},
		{-1, 10},
	}
	for _, c := range cases {
		opts := NewScanOptions()
		opts.StartPort = c.start
		opts.EndPort = c.end
		if err := opts.Validate(); err == nil {
			t.Errorf("expected error for range [%d, %d]", c.start, c.end)
		}
	}
}

func TestPorts_ExplicitRange(t *testing.T) {
	opts := NewScanOptions()
	opts.StartPort = 3000
	opts.EndPort = 3002

	ports := opts.Ports()
	if len(ports) != 3 || ports[0] != 3000 || ports[2] != 3002 {
		t.Fatalf("unexpected port expansion: %v", ports)
	}
}

func TestPorts_PresetWins(t *testing.T) {
	// 预设优先于范围参数
	opts := NewScanOptions()
	opts.Preset = "services"
	opts.StartPort = 1
	opts.EndPort = 2

	ports := opts.Ports()
	if len(ports) < 10 {
		t.Fatalf("expected services preset expansion, got %d ports", len(ports))
	}
	if ports[0] != 21 {
		t.Errorf("expected first port 21, got %d", ports[0])
	}
}
