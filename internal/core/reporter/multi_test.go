package reporter

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/CrazyDubya/portsy/internal/core/model"
)

// recordingReporter 记录调用次数的测试 Reporter
type recordingReporter struct {
	calls int
	err   error
}

func (r *recordingReporter) Report(registry model.Registry, groups []*model.DuplicateGroup) error {
	r.calls++
	return r.err
}

func TestMultiReporter_FansOutToAllTargets(t *testing.T) {
	a := &recordingReporter{}
	b := &recordingReporter{err: fmt.Errorf("disk full")}
	c := &recordingReporter{}

	err := NewMultiReporter(a, b, c).Report(model.Registry{}, nil)

	// 单个目标失败不中断其余输出
	if a.calls != 1 || b.calls != 1 || c.calls != 1 {
		t.Fatalf("expected every target to be invoked once, got %d/%d/%d", a.calls, b.calls, c.calls)
	}
	// 第一个错误向上返回
	if err == nil || err.Error() != "disk full" {
		t.Fatalf("expected first error to surface, got %v", err)
	}
}

func TestFileReporters_WriteThroughReportInterface(t *testing.T) {
	registry := model.Registry{
		3001: model.NewService(3001, 555, "dev-server", "node server.js"),
	}

	dir := t.TempDir()
	jsonPath := filepath.Join(dir, "scan.json")
	csvPath := filepath.Join(dir, "scan.csv")

	multi := NewMultiReporter(NewJSONReporter(jsonPath), NewCSVReporter(csvPath))
	if err := multi.Report(registry, nil); err != nil {
		t.Fatalf("combined export failed: %v", err)
	}

	for _, p := range []string{jsonPath, csvPath} {
		if _, err := os.Stat(p); err != nil {
			t.Errorf("missing export %s: %v", p, err)
		}
	}
}
