package onboard

import "testing"

// runFrames steps the runner and consumes injected input for n frames.
func runFrames(c *Carousel, n int) {
	for i := 0; i < n; i++ {
		c.testRunner.step(c)
		if len(c.injectQueue) > 0 {
			c.processInput()
		}
		c.nav.Update(1.0 / 60)
	}
}

func TestLoadTestScript(t *testing.T) {
	data := []byte(`{
		"steps": [
			{"action": "screenshot", "label": "initial"},
			{"action": "drag", "fromX": 300, "fromY": 200, "toX": 100, "toY": 200, "frames": 6},
			{"action": "wait", "frames": 3},
			{"action": "expectScene", "index": 1}
		]
	}`)

	runner, err := LoadTestScript(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(runner.steps) != 4 {
		t.Fatalf("expected 4 steps, got %d", len(runner.steps))
	}
	if runner.steps[0].Action != "screenshot" || runner.steps[0].Label != "initial" {
		t.Error("step 0 mismatch")
	}
	if st := runner.steps[1]; st.FromX != 300 || st.ToX != 100 || st.Frames != 6 {
		t.Errorf("step 1 mismatch: %+v", st)
	}
	if runner.steps[3].Index != 1 {
		t.Error("step 3 mismatch")
	}
}

func TestLoadTestScript_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"not json", `not json`},
		{"empty steps", `{"steps": []}`},
		{"unknown action", `{"steps": [{"action": "teleport"}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadTestScript([]byte(tt.data)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestRunnerStep_Drag(t *testing.T) {
	f := newTestCarousel(t, 3, false)
	runner, err := LoadTestScript([]byte(`{"steps": [
		{"action": "drag", "fromX": 300, "fromY": 200, "toX": 100, "toY": 200, "frames": 4},
		{"action": "expectScene", "index": 1}
	]}`))
	if err != nil {
		t.Fatal(err)
	}
	f.c.SetTestRunner(runner)

	runFrames(f.c, 10)
	if !runner.Done() {
		t.Fatal("runner should be done")
	}
	if len(runner.Failures()) != 0 {
		t.Errorf("failures = %v", runner.Failures())
	}
}

func TestRunnerStep_Navigation(t *testing.T) {
	f := newTestCarousel(t, 3, true)
	runner, err := LoadTestScript([]byte(`{"steps": [
		{"action": "next"},
		{"action": "expectScene", "index": 1},
		{"action": "jump", "index": 3},
		{"action": "expectScene", "index": 3},
		{"action": "previous"},
		{"action": "expectScene", "index": 0}
	]}`))
	if err != nil {
		t.Fatal(err)
	}
	f.c.SetTestRunner(runner)

	runFrames(f.c, 6)
	if !runner.Done() {
		t.Fatal("runner should be done")
	}
	fails := runner.Failures()
	if len(fails) != 1 {
		t.Fatalf("failures = %v, want exactly one", fails)
	}
	if want := "step 5: scene = 2, want 0"; fails[0] != want {
		t.Errorf("failure = %q, want %q", fails[0], want)
	}
}

func TestRunnerStep_Wait(t *testing.T) {
	f := newTestCarousel(t, 3, false)
	runner, err := LoadTestScript([]byte(`{"steps": [
		{"action": "wait", "frames": 3},
		{"action": "next"}
	]}`))
	if err != nil {
		t.Fatal(err)
	}
	f.c.SetTestRunner(runner)

	runFrames(f.c, 3)
	if f.c.nav.Index() != 0 {
		t.Error("next should not run during wait")
	}
	runFrames(f.c, 1)
	if f.c.nav.Index() != 1 {
		t.Errorf("Index = %d, want 1", f.c.nav.Index())
	}
	if !runner.Done() {
		t.Error("runner should be done")
	}
}

func TestRunnerStep_Screenshot(t *testing.T) {
	f := newTestCarousel(t, 1, false)
	runner, err := LoadTestScript([]byte(`{"steps": [{"action": "screenshot", "label": "start"}]}`))
	if err != nil {
		t.Fatal(err)
	}
	f.c.SetTestRunner(runner)

	runFrames(f.c, 1)
	if len(f.c.screenshotQueue) != 1 || f.c.screenshotQueue[0] != "start" {
		t.Errorf("queue = %v", f.c.screenshotQueue)
	}
}
