package data

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestParseLevelTable(t *testing.T) {
	raw := []byte(`
levels:
  - name: One
    arena_size: 60
    hostile_count: 3
    spawn: { x: 5, z: -5 }
    ambiance:
      fog: 200
      light_color: "#ffeedd"
      wall_color: "0x8888FF"
    obstacles:
      - { x: 1, z: 2, width: 3, height: 4, depth: 5, color: "#00ff00" }
  - name: Two
    arena_size: 80
    hostile_count: 0
`)
	tbl, err := ParseLevelTable(raw)
	if err != nil {
		t.Fatalf("ParseLevelTable: %v", err)
	}
	if tbl.Count() != 2 {
		t.Fatalf("Count = %d, want 2", tbl.Count())
	}

	one, ok := tbl.Get(0)
	if !ok {
		t.Fatal("Get(0) missing")
	}
	if one.HalfExtent() != 30 || one.HostileCount != 3 || one.Spawn != (Point2{X: 5, Z: -5}) {
		t.Errorf("level one = %+v", one)
	}
	if one.Ambiance.WallColor != 0x8888ff || one.Ambiance.LightColor.String() != "#ffeedd" {
		t.Errorf("ambiance = %+v", one.Ambiance)
	}
	if r, g, b := one.Obstacles[0].Color.RGB(); r != 0 || g != 0xff || b != 0 {
		t.Errorf("obstacle rgb = %d,%d,%d", r, g, b)
	}

	if tbl.IsLast(0) || !tbl.IsLast(1) || !tbl.IsLast(5) {
		t.Error("IsLast wrong")
	}
	if _, ok := tbl.Get(2); ok {
		t.Error("Get(2) found a level")
	}
	if _, ok := tbl.Get(-1); ok {
		t.Error("Get(-1) found a level")
	}
}

func TestParseLevelTableRejects(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"empty", "levels: []", "empty"},
		{"size", "levels:\n  - { name: a, arena_size: 0 }", "arena_size"},
		{"spawn", "levels:\n  - { name: a, arena_size: 10, spawn: { x: 50, z: 0 } }", "outside"},
		{"color", "levels:\n  - { name: a, arena_size: 10, ambiance: { wall_color: \"#zz0000\" } }", "bad color"},
		{"obstacle", "levels:\n  - { name: a, arena_size: 10, obstacles: [ { width: 0, height: 1, depth: 1 } ] }", "size"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseLevelTable([]byte(tt.raw))
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("err = %v, want mention of %q", err, tt.want)
			}
		})
	}
}

func TestShippedLevelList(t *testing.T) {
	tbl, err := LoadLevelTable(filepath.Join("..", "..", "data", "yaml", "level_list.yaml"))
	if err != nil {
		t.Fatalf("LoadLevelTable: %v", err)
	}
	first, _ := tbl.Get(0)
	if first.HostileCount != 4 || first.ArenaSize != 100 || len(first.Obstacles) != 3 {
		t.Errorf("first level = %+v", first)
	}
}

func TestWatcherSeesRewrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "level_list.yaml")
	if err := os.WriteFile(path, []byte("levels: []\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	w, err := NewWatcher(path)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	defer w.Close()

	// unrelated files in the same directory are ignored
	if err := os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("levels: []\n# edited\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case got := <-w.Events:
		if filepath.Base(got) != "level_list.yaml" {
			t.Errorf("event for %s", got)
		}
	case err := <-w.Errors:
		t.Fatalf("watch error: %v", err)
	case <-time.After(5 * time.Second):
		t.Fatal("no change event")
	}

	if err := w.Close(); err != nil {
		t.Errorf("Close: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("second Close: %v", err)
	}
}

func TestWatcherReportsAfterTruncateThenWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "level_list.yaml")
	before := []byte("levels:\n  - { name: Old, arena_size: 60, hostile_count: 2 }\n")
	after := []byte("levels:\n  - { name: New, arena_size: 80, hostile_count: 5 }\n")
	if err := os.WriteFile(path, before, 0o644); err != nil {
		t.Fatal(err)
	}
	w, err := NewWatcher(path)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	defer w.Close()

	// an editor save: truncate, then the content lands shortly after
	if err := os.Truncate(path, 0); err != nil {
		t.Fatal(err)
	}
	time.Sleep(20 * time.Millisecond)
	if err := os.WriteFile(path, after, 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case got := <-w.Events:
		tbl, err := LoadLevelTable(got)
		if err != nil {
			t.Fatalf("reload on change event: %v", err)
		}
		if lvl, _ := tbl.Get(0); lvl.Name != "New" {
			t.Fatalf("reloaded level %q, want New", lvl.Name)
		}
	case err := <-w.Errors:
		t.Fatalf("watch error: %v", err)
	case <-time.After(5 * time.Second):
		t.Fatal("no change event after the final write")
	}

	select {
	case got := <-w.Events:
		t.Fatalf("burst reported twice: extra event for %s", got)
	case <-time.After(3 * settleTime):
	}
}
