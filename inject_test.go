package forest

import "testing"

func TestInjectClickQueues(t *testing.T) {
	f := New(DefaultConfig(ModeInteractive))
	f.InjectClick(1, 2)
	f.InjectClick(3, 4)
	if len(f.injectQueue) != 2 {
		t.Fatalf("queue len = %d, want 2", len(f.injectQueue))
	}
	if f.injectQueue[0] != (syntheticClick{1, 2}) || f.injectQueue[1] != (syntheticClick{3, 4}) {
		t.Errorf("queue = %v", f.injectQueue)
	}
}

func TestProcessInjectedInputOnePerCall(t *testing.T) {
	r := newTestRig(ModeInteractive)
	r.f.SetRecords(sampleRecords())
	r.attach()

	var clicks []SelectionContext
	r.f.OnSelect(func(ctx SelectionContext) { clicks = append(clicks, ctx) })

	a := r.f.Instances()[1].CanopyAnchor()
	r.f.InjectClick(a.X, a.Y)
	r.f.InjectClick(-100, -100)

	if !r.f.processInjectedInput() {
		t.Fatal("first call should consume a click")
	}
	if len(clicks) != 1 || !r.f.Selection().Is("2") {
		t.Fatalf("after first: clicks=%d selection=%+v", len(clicks), r.f.Selection())
	}
	if !r.f.processInjectedInput() {
		t.Fatal("second call should consume a click")
	}
	if _, ok := r.f.Selection().ID(); ok {
		t.Error("second click should clear the selection")
	}
	if r.f.processInjectedInput() {
		t.Error("empty queue should report false")
	}
}

func TestDetachDropsInjectedClicks(t *testing.T) {
	r := newTestRig(ModeInteractive)
	r.attach()
	r.f.InjectClick(1, 1)
	r.f.Detach()
	if len(r.f.injectQueue) != 0 {
		t.Errorf("queue len = %d after detach", len(r.f.injectQueue))
	}
}
