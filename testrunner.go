package forest

import (
	"encoding/json"
	"fmt"
)

// testStep represents a single action in a test script.
type testStep struct {
	Action string  `json:"action"`
	Label  string  `json:"label,omitempty"`
	ID     string  `json:"id,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	Width  int     `json:"width,omitempty"`
	Height int     `json:"height,omitempty"`
	Frames int     `json:"frames,omitempty"`
}

// testScript is the top-level JSON structure for a test script.
type testScript struct {
	Steps []testStep `json:"steps"`
}

// Resizable is a Container whose size a script can change.
// FixedContainer and GGPainter implement it.
type Resizable interface {
	Container
	Resize(w, h int) error
}

// TestRunner sequences injected clicks, resizes and screenshots across
// frames for automated visual testing. Attach to a Forest via SetTestRunner.
//
// Supported actions: "click" (x, y), "select" (id; clicks the tree's canopy
// center), "wait" (frames), "resize" (width, height) and "screenshot" (label).
type TestRunner struct {
	steps     []testStep
	cursor    int
	waitCount int
	done      bool
}

// LoadTestScript parses a JSON test script and returns a TestRunner ready
// to be attached to a Forest via SetTestRunner.
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
		case "click", "select", "wait", "resize", "screenshot":
		default:
			return nil, fmt.Errorf("parse test script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &TestRunner{steps: script.Steps}, nil
}

// SetTestRunner attaches a TestRunner to the forest. The runner's step method
// is called from Update before input processing each frame.
func (f *Forest) SetTestRunner(runner *TestRunner) {
	f.testRunner = runner
}

// Done reports whether all steps in the test script have been executed.
func (r *TestRunner) Done() bool {
	return r.done
}

// step advances the test runner by one frame.
func (r *TestRunner) step(f *Forest) {
	if r.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if len(f.injectQueue) > 0 {
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
		f.Screenshot(st.Label)
	case "click":
		f.InjectClick(st.X, st.Y)
	case "select":
		for i := range f.instances {
			if f.instances[i].ID == st.ID {
				a := f.instances[i].CanopyAnchor()
				f.InjectClick(a.X, a.Y)
				break
			}
		}
	case "resize":
		rc, ok := f.container.(Resizable)
		if !ok {
			Logger().Warn("forest: test script resize ignored, container is not resizable")
			break
		}
		if err := rc.Resize(st.Width, st.Height); err != nil {
			Logger().Warn("forest: test script resize failed", "err", err)
			break
		}
		f.Resize()
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && len(f.injectQueue) == 0 {
		r.done = true
	}
}
