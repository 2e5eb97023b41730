package planes

import (
	"encoding/json"
	"fmt"
	"image"
)

// testStep is one scripted action and its arguments.
type testStep struct {
	Action string `json:"action"`
	Label  string `json:"label,omitempty"`
	X      int    `json:"x,omitempty"`
	Y      int    `json:"y,omitempty"`
	FromX  int    `json:"fromX,omitempty"`
	FromY  int    `json:"fromY,omitempty"`
	ToX    int    `json:"toX,omitempty"`
	ToY    int    `json:"toY,omitempty"`
	Frames int    `json:"frames,omitempty"`
	Key    string `json:"key,omitempty"`
	Text   string `json:"text,omitempty"`
}

// testScript is the document root: {"steps": [...]}.
type testScript struct {
	Steps []testStep `json:"steps"`
}

// TestRunner replays a scripted session against a Display, one step per
// Step call once earlier injected input has drained.
type TestRunner struct {
	steps     []testStep
	cursor    int
	waitCount int
	done      bool
}

// LoadTestScript decodes a JSON script. Hand the result to
// Display.SetTestRunner.
//
// Supported actions: "click" (x, y), "drag" (fromX, fromY, toX, toY,
// frames), "key" (key name, or text to type), "wait" (frames) and
// "screenshot" (label).
func LoadTestScript(jsonData []byte) (*TestRunner, error) {
	var script testScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse test script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse test script: no steps")
	}
	for i, st := range script.Steps {
		switch st.Action {
		case "click", "drag", "wait", "screenshot":
		case "key":
			if st.Key == "" && st.Text == "" {
				return nil, fmt.Errorf("parse test script: step %d: key action needs key or text", i)
			}
			if st.Key != "" {
				if _, ok := ParseKey(st.Key); !ok {
					return nil, fmt.Errorf("parse test script: step %d: unknown key %q", i, st.Key)
				}
			}
		default:
			return nil, fmt.Errorf("parse test script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &TestRunner{steps: script.Steps}, nil
}

// SetTestRunner attaches a TestRunner to the display. The runner's step
// method is called at the start of every Step.
func (d *Display) SetTestRunner(runner *TestRunner) {
	d.testRunner = runner
}

// Done reports whether the script has run out of steps.
func (r *TestRunner) Done() bool {
	return r.done
}

// step advances the test runner by one frame.
func (r *TestRunner) step(d *Display) {
	if r.done {
		return
	}
	// Injected input still queued; hold the cursor.
	if len(d.injectQueue) > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "screenshot":
		d.Screenshot(st.Label)
	case "click":
		d.InjectClick(image.Pt(st.X, st.Y))
	case "drag":
		d.InjectDrag(image.Pt(st.FromX, st.FromY), image.Pt(st.ToX, st.ToY), st.Frames)
	case "key":
		if st.Key != "" {
			key, _ := ParseKey(st.Key)
			d.InjectKey(key, 0)
		}
		d.InjectText(st.Text)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && len(d.injectQueue) == 0 {
		r.done = true
	}
}
