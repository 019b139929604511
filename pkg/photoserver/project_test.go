package photoserver

import (
	"os"
	"path/filepath"
	"testing"
)

func TestItemsScansReportFolders(t *testing.T) {
	root := t.TempDir()
	for _, dir := range []string{"01_Frame_check", "02_Wiring", "notanitem"} {
		if err := os.MkdirAll(filepath.Join(root, ReportsDirName, dir), 0o755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
	}
	if err := os.WriteFile(filepath.Join(root, ReportsDirName, "readme.txt"), []byte("x"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	p := Project{Name: "demo", Root: root}
	items := p.Items()
	want := []Item{{ID: "01", Name: "Frame_check"}, {ID: "02", Name: "Wiring"}}
	if len(items) != len(want) {
		t.Fatalf("got %d items, want %d: %+v", len(items), len(want), items)
	}
	for i := range want {
		if items[i] != want[i] {
			t.Fatalf("item %d = %+v, want %+v", i, items[i], want[i])
		}
	}
}

func TestItemsMissingReportsDir(t *testing.T) {
	p := Project{Name: "demo", Root: t.TempDir()}
	if items := p.Items(); len(items) != 0 {
		t.Fatalf("got %+v, want empty", items)
	}
}

func TestSanitize(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"hello world", "hello_world"},
		{"Frame check #2", "Frame_check_2"},
		{"a/b\\c", "a_b_c"},
		{"ok_name-3", "ok_name-3"},
		{"機体写真", "_"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := Sanitize(tt.in); got != tt.want {
			t.Fatalf("Sanitize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
