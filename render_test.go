package forest

import "testing"

func TestFrameOrderBackgroundFirst(t *testing.T) {
	r := newTestRig(ModeInteractive)
	r.f.SetRecords(sampleRecords())
	r.attach()
	r.frame(500)

	cmds := r.f.Commands()
	if len(cmds) == 0 || cmds[0].Type != CommandGradient {
		t.Fatalf("first command = %+v, want gradient", cmds)
	}
	seenTree := false
	for i, c := range cmds {
		if c.TreeID != "" {
			seenTree = true
		} else if seenTree {
			t.Errorf("background command %d (%v) after a tree", i, c.Type)
		}
	}
}

func TestFrameTreesInLayoutOrder(t *testing.T) {
	r := newTestRig(ModeInteractive)
	r.f.SetRecords(sampleRecords())
	r.attach()

	var order []string
	for _, c := range r.f.Commands() {
		if c.TreeID == "" {
			continue
		}
		if len(order) == 0 || order[len(order)-1] != c.TreeID {
			order = append(order, c.TreeID)
		}
	}
	want := []string{"1", "2", "3"}
	if len(order) != len(want) {
		t.Fatalf("tree order = %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("tree order = %v, want %v", order, want)
			break
		}
	}
}

func TestAmbientDrawOrderAscendingY(t *testing.T) {
	r := newTestRig(ModeAmbient)
	r.attach()
	inst := r.f.Instances()

	// Each ambient tree is a trunk rect followed by one triangle.
	cmds := r.f.Commands()[1:]
	if len(cmds) != 2*len(inst) {
		t.Fatalf("commands = %d, want %d", len(cmds), 2*len(inst))
	}
	prevY := -1.0
	for i := 0; i < len(cmds); i += 2 {
		trunk := cmds[i]
		y := trunk.Rect.Y + trunk.Rect.Height
		if y < prevY {
			t.Fatalf("tree %d base y %v below previous %v", i/2, y, prevY)
		}
		prevY = y
	}
}

func TestGroundOnlyInteractive(t *testing.T) {
	tests := []struct {
		mode       Mode
		wantGround bool
	}{
		{ModeAmbient, false},
		{ModeInteractive, true},
	}
	for _, tt := range tests {
		t.Run(tt.mode.String(), func(t *testing.T) {
			r := newTestRig(tt.mode)
			r.attach()
			cmds := r.f.Commands()
			hasGround := len(cmds) > 1 && cmds[1].Type == CommandFillRect && cmds[1].TreeID == "" &&
				cmds[1].Rect == (Rect{0, 550, 800, 50})
			if hasGround != tt.wantGround {
				t.Errorf("ground = %v, want %v", hasGround, tt.wantGround)
			}
		})
	}
}

func TestHighlightFollowsSelectedTree(t *testing.T) {
	r := newTestRig(ModeInteractive)
	r.f.SetRecords(sampleRecords())
	r.attach()
	sel := r.f.Instances()[1]
	a := sel.CanopyAnchor()
	r.f.Click(a.X, a.Y)
	r.frame(16)

	cmds := r.f.Commands()
	ring := -1
	lastTreeCmd := -1
	for i, c := range cmds {
		if c.Type == CommandStrokeCircle {
			if ring >= 0 {
				t.Fatal("more than one highlight ring")
			}
			ring = i
		}
		if c.TreeID == "2" && c.Type != CommandStrokeCircle && ring < 0 {
			lastTreeCmd = i
		}
	}
	if ring < 0 {
		t.Fatal("no highlight ring emitted")
	}
	if ring != lastTreeCmd+1 {
		t.Errorf("ring at %d, want right after tree 2 (%d)", ring, lastTreeCmd)
	}
	rc := cmds[ring]
	if rc.Center != a {
		t.Errorf("ring center = %v, want %v", rc.Center, a)
	}
	if !approx(rc.Radius, 1.2*sel.Width) || rc.LineWidth != 3 {
		t.Errorf("ring radius/width = %v/%v, want %v/3", rc.Radius, rc.LineWidth, 1.2*sel.Width)
	}
	if rc.Color != Hex("#f59e0b") {
		t.Errorf("ring color = %v", rc.Color)
	}

	box := cmds[ring+1]
	if box.Type != CommandFillRect || box.Rect != (Rect{sel.X - 50, sel.Y - sel.Height - 30, 100, 25}) {
		t.Errorf("label box = %+v", box)
	}
	label := cmds[ring+2]
	if label.Type != CommandText || label.Text != "2" || label.FontSize != 14 {
		t.Errorf("label = %+v", label)
	}
	if label.Center != (Vec2{sel.X, sel.Y - sel.Height - 12}) {
		t.Errorf("label position = %v", label.Center)
	}
}

func TestNoHighlightWithoutSelection(t *testing.T) {
	r := newTestRig(ModeInteractive)
	r.f.SetRecords(sampleRecords())
	r.attach()
	for _, c := range r.f.Commands() {
		if c.Type == CommandStrokeCircle || c.Type == CommandText {
			t.Fatalf("unexpected highlight command %v", c.Type)
		}
	}
}

func TestBrightnessScalesColors(t *testing.T) {
	r := newTestRig(ModeInteractive)
	r.f.brightness = 0.5
	r.attach()
	sky := r.f.Commands()[0]
	want := DefaultPalette().SkyTop.Scale(0.5)
	if sky.Color != want {
		t.Errorf("sky top = %v, want %v", sky.Color, want)
	}
	if sky.Color2 != DefaultPalette().SkyBottom.Scale(0.5) {
		t.Errorf("sky bottom = %v", sky.Color2)
	}
}

func TestSubmitReplaysCommands(t *testing.T) {
	r := newTestRig(ModeInteractive)
	r.f.SetRecords(sampleRecords())
	r.attach()
	r.frame(100)

	cmds := r.f.Commands()
	if len(r.painter.calls) != len(cmds) {
		t.Fatalf("painter calls = %d, commands = %d", len(r.painter.calls), len(cmds))
	}
	for i := range cmds {
		if r.painter.calls[i].Type != cmds[i].Type {
			t.Errorf("call %d type = %v, want %v", i, r.painter.calls[i].Type, cmds[i].Type)
		}
	}
}

func TestRenderHeadless(t *testing.T) {
	r := newTestRig(ModeInteractive)
	r.f.SetRecords(sampleRecords())
	r.attach()
	inst := r.f.Instances()[0]

	r.f.Render(0)
	x0 := r.f.Commands()[2].Rect.X
	r.f.Render(1234)
	x1 := r.f.Commands()[2].Rect.X
	want := inst.X + Sway(&inst, 1234) - inst.Width/6
	if !approx(x1, want) {
		t.Errorf("trunk x at 1234ms = %v, want %v", x1, want)
	}
	if !approx(x0, inst.X+Sway(&inst, 0)-inst.Width/6) {
		t.Errorf("trunk x at 0ms = %v", x0)
	}
}

func TestCountByType(t *testing.T) {
	cmds := []DrawCommand{
		{Type: CommandGradient},
		{Type: CommandFillRect},
		{Type: CommandFillRect},
		{Type: CommandText},
	}
	got := countByType(cmds)
	if got[CommandGradient] != 1 || got[CommandFillRect] != 2 || got[CommandText] != 1 || got[CommandFillCircle] != 0 {
		t.Errorf("counts = %v", got)
	}
}
