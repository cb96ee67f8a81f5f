package reader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/ztrue/tracerr"
)

func TestIsSourceFile(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"main.lang", true},
		{"dir/MAIN.LANG", true},
		{"main.Lang", true},
		{"lang", false},
		{"main.lang.bak", false},
		{".lang", true},
	}
	for _, tt := range tests {
		if got := IsSourceFile(tt.path); got != tt.want {
			t.Errorf("IsSourceFile(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestReadLines(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{"unix", "a\nb\n", []string{"a", "b"}},
		{"windows", "a\r\nb", []string{"a", "b"}},
		{"bom", "\ufeff$a = 1\n", []string{"$a = 1"}},
		{"blank lines", "\n\nx", []string{"", "", "x"}},
		{"empty", "", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, dir, tt.name+".lang", tt.content)
			got, err := ReadLines(path)
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("(-want, +got)\n%s", diff)
			}
		})
	}
}

func TestLineReader(t *testing.T) {
	path := writeFile(t, t.TempDir(), "a.lang", "first\nsecond\nthird")

	r, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()

	if !r.Next() || r.Line() != "first" {
		t.Fatalf("first line = %q", r.Line())
	}
	rest, err := r.Lines()
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"second", "third"}, rest); diff != "" {
		t.Errorf("(-want, +got)\n%s", diff)
	}
}

func TestOpenMissing(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "missing.lang"))
	if err == nil {
		t.Fatal("expected an error")
	}
	if !os.IsNotExist(tracerr.Unwrap(err)) {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestDiscover(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "b.lang", "")
	writeFile(t, dir, "A.LANG", "")
	writeFile(t, dir, "notes.txt", "")
	if err := os.Mkdir(filepath.Join(dir, "sub.lang"), 0755); err != nil {
		t.Fatal(err)
	}

	got, err := Discover(dir)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{filepath.Join(dir, "A.LANG"), filepath.Join(dir, "b.lang")}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want, +got)\n%s", diff)
	}

	got, err = DiscoverSuffix(dir, ".txt")
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{filepath.Join(dir, "notes.txt")}, got); diff != "" {
		t.Errorf("(-want, +got)\n%s", diff)
	}
}
