package planes

import (
	"image"
	"path/filepath"
	"testing"
)

func TestLoadTestScript(t *testing.T) {
	data := []byte(`{
		"steps": [
			{"action": "screenshot", "label": "initial"},
			{"action": "click", "x": 100, "y": 200},
			{"action": "wait", "frames": 3},
			{"action": "key", "key": "enter"},
			{"action": "screenshot", "label": "after-click"}
		]
	}`)

	runner, err := LoadTestScript(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(runner.steps) != 5 {
		t.Fatalf("expected 5 steps, got %d", len(runner.steps))
	}
	if runner.steps[0].Action != "screenshot" || runner.steps[0].Label != "initial" {
		t.Error("step 0 mismatch")
	}
	if runner.steps[1].Action != "click" || runner.steps[1].X != 100 || runner.steps[1].Y != 200 {
		t.Error("step 1 mismatch")
	}
	if runner.steps[2].Action != "wait" || runner.steps[2].Frames != 3 {
		t.Error("step 2 mismatch")
	}
	if runner.steps[3].Key != "enter" {
		t.Error("step 3 mismatch")
	}
}

func TestLoadTestScriptErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"invalid json", `not json`},
		{"empty", `{"steps": []}`},
		{"unknown action", `{"steps": [{"action": "teleport"}]}`},
		{"key without key", `{"steps": [{"action": "key"}]}`},
		{"unknown key", `{"steps": [{"action": "key", "key": "hyper"}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadTestScript([]byte(tt.data)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestTestRunnerDragAndScreenshot(t *testing.T) {
	d, dp, gp := dragScene(t, WithScreenshotDir(t.TempDir()))

	runner, err := LoadTestScript([]byte(`{
		"steps": [
			{"action": "drag", "fromX": 30, "fromY": 30, "toX": 120, "toY": 120, "frames": 3},
			{"action": "wait", "frames": 2},
			{"action": "screenshot", "label": "dropped"}
		]
	}`))
	if err != nil {
		t.Fatal(err)
	}
	d.SetTestRunner(runner)

	for i := 0; i < 20 && !runner.Done(); i++ {
		d.Step(nil)
	}
	d.Step(nil)

	if !runner.Done() {
		t.Fatal("runner did not finish")
	}
	if dp.Parent() != gp {
		t.Errorf("D parent = %v, want G", dp.Parent())
	}
	if c := dp.Rect.Center(); c != image.Pt(20, 20) {
		t.Errorf("D center = %v, want (20, 20)", c)
	}
	matches, _ := filepath.Glob(filepath.Join(d.ScreenshotDir, "*_dropped.png"))
	if len(matches) != 1 {
		t.Errorf("screenshots = %v, want one", matches)
	}
}

func TestTestRunnerKeys(t *testing.T) {
	d := NewDisplay(50, 50)
	f := NewPlane("f", R(0, 0, 10, 10))
	if err := d.InsertChild(f); err != nil {
		t.Fatal(err)
	}
	var typed []rune
	var enters int
	f.OnKeyDown = func(_ *Plane, ev Event) {
		if ev.Key == KeyEnter {
			enters++
		}
		if ev.Rune != 0 {
			typed = append(typed, ev.Rune)
		}
	}
	d.SetKeyFocus(f)

	runner, err := LoadTestScript([]byte(`{"steps": [
		{"action": "key", "text": "hi"},
		{"action": "key", "key": "enter"}
	]}`))
	if err != nil {
		t.Fatal(err)
	}
	d.SetTestRunner(runner)
	for i := 0; i < 10; i++ {
		d.Step(nil)
	}
	if string(typed) != "hi" {
		t.Errorf("typed = %q, want %q", string(typed), "hi")
	}
	if enters != 1 {
		t.Errorf("enters = %d, want 1", enters)
	}
}
