package route

import (
	"os"
	"path/filepath"
	"sort"
	"testing"
)

func TestDefaultCatalog_Common(t *testing.T) {
	c := DefaultCatalog()
	common := c.Common()
	if len(common) == 0 {
		t.Fatal("common path set is empty")
	}

	found := false
	for _, p := range common {
		if p == "/health" {
			found = true
		}
	}
	if !found {
		t.Error("expected /health in common paths")
	}
}

func TestCatalog_AllDedupedSorted(t *testing.T) {
	// /api 出现在多个框架分组里，全集里只能出现一次
	all := DefaultCatalog().All()

	if !sort.StringsAreSorted(all) {
		t.Error("All() not sorted")
	}
	seen := make(map[string]bool)
	for _, p := range all {
		if seen[p] {
			t.Fatalf("duplicate path %q in All()", p)
		}
		seen[p] = true
	}
	if len(all) <= len(DefaultCatalog().Common()) {
		t.Error("comprehensive set should be larger than common set")
	}
}

func TestLoadCatalog(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "paths.yaml")
	content := `common:
  - /
  - /ping
custom:
  - /internal/debug
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	c, err := LoadCatalog(path)
	if err != nil {
		t.Fatalf("LoadCatalog failed: %v", err)
	}
	if len(c.Common()) != 2 {
		t.Errorf("unexpected common set: %v", c.Common())
	}
	if len(c.All()) != 3 {
		t.Errorf("unexpected full set: %v", c.All())
	}
}

func TestLoadCatalog_Missing(t *testing.T) {
	if _, err := LoadCatalog("/nonexistent/paths.yaml"); err == nil {
		t.Fatal("expected error for missing catalog file")
	}
}
