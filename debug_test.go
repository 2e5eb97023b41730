package planes

import (
	"bytes"
	"fmt"
	"log/slog"
	"strings"
	"testing"
)

func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() {
		SetLogger(nil)
		globalDebug = false
	})
	return &buf
}

func TestDebugCheckTreeDepth(t *testing.T) {
	buf := captureLog(t)
	globalDebug = true

	root := NewPlane("n0", R(0, 0, 1, 1))
	cur := root
	for i := 1; i <= debugMaxTreeDepth; i++ {
		next := NewPlane("deep", R(0, 0, 1, 1))
		if err := cur.InsertChild(next); err != nil {
			t.Fatal(err)
		}
		cur = next
	}
	if !strings.Contains(buf.String(), "tree depth exceeds threshold") {
		t.Errorf("expected depth warning, log:\n%s", buf.String())
	}
}

func TestDebugCheckChildCount(t *testing.T) {
	buf := captureLog(t)
	globalDebug = true

	p := NewPlane("crowded", R(0, 0, 1, 1))
	for i := 0; i <= debugMaxChildCount; i++ {
		_ = p.InsertChild(NewPlane(fmt.Sprintf("c%d", i), R(0, 0, 0, 0)))
	}
	if !strings.Contains(buf.String(), "child count exceeds threshold") {
		t.Error("expected child count warning")
	}
}

func TestDebugLogDestroyed(t *testing.T) {
	buf := captureLog(t)
	p := NewPlane("p", R(0, 0, 1, 1))
	dead := NewPlane("dead", R(0, 0, 1, 1))
	dead.Destroy()

	_ = p.InsertChild(dead)
	if buf.Len() != 0 {
		t.Errorf("nothing should be logged outside debug mode, got %q", buf.String())
	}

	globalDebug = true
	_ = p.InsertChild(dead)
	if !strings.Contains(buf.String(), "operation on destroyed plane") {
		t.Errorf("expected destroyed-plane error, got %q", buf.String())
	}
}

func TestDisplayDebugStats(t *testing.T) {
	var buf bytes.Buffer
	l := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	d := NewDisplay(10, 10, WithLogger(l))
	d.SetDebugMode(true)
	defer d.SetDebugMode(false)

	d.Render(false)
	if !strings.Contains(buf.String(), "msg=frame") {
		t.Errorf("expected frame stats, got %q", buf.String())
	}
	if d.Stats().Duration <= 0 {
		t.Error("expected a measured frame duration in debug mode")
	}
}

func TestDumpTree(t *testing.T) {
	root := NewPlane("root", R(0, 0, 10, 10))
	a := NewPlane("a", R(0, 0, 5, 5))
	a.Draggable = true
	if err := root.InsertChild(a); err != nil {
		t.Fatal(err)
	}
	if err := a.InsertChild(NewPlane("b", R(0, 0, 1, 1))); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := DumpTree(&buf, root); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3:\n%s", len(lines), buf.String())
	}
	if !strings.HasPrefix(lines[1], `  <Plane "a"`) || !strings.HasSuffix(lines[1], " drag") {
		t.Errorf("line 1 = %q", lines[1])
	}
	if !strings.HasPrefix(lines[2], `    <Plane "b"`) {
		t.Errorf("line 2 = %q", lines[2])
	}
}
