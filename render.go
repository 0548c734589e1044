package forest

// CommandType identifies the kind of draw command.
type CommandType uint8

const (
	CommandGradient     CommandType = iota // vertical linear gradient over Rect
	CommandFillRect                        // solid rectangle
	CommandFillTriangle                    // solid triangle through Points
	CommandFillCircle                      // solid disc at Center
	CommandStrokeCircle                    // circle outline at Center
	CommandText                            // Text centered on Center.X, baseline at Center.Y
)

// DrawCommand is a single draw instruction emitted while building a frame.
// A frame is fully described by its command list, so backends stay dumb and
// tests can inspect exactly what would be painted.
type DrawCommand struct {
	Type      CommandType
	Rect      Rect
	Points    [3]Vec2
	Center    Vec2
	Radius    float64
	LineWidth float64
	Color     Color
	Color2    Color // gradient bottom color
	Text      string
	FontSize  float64

	// TreeID is the instance that emitted the command; empty for the
	// background and ground.
	TreeID string
}

// Painter is a drawing backend. Implementations paint in call order; later
// calls cover earlier ones.
type Painter interface {
	Clear()
	FillGradient(r Rect, top, bottom Color)
	FillRect(r Rect, c Color)
	FillTriangle(a, b, c Vec2, col Color)
	FillCircle(center Vec2, radius float64, c Color)
	StrokeCircle(center Vec2, radius, width float64, c Color)
	DrawText(s string, baseline Vec2, size float64, c Color)
}

// emitFrame appends the commands for one frame at elapsed time ms to cmds:
// background, ground (interactive only), then every tree in layout order with
// the selected tree's highlight emitted right after that tree.
func (f *Forest) emitFrame(cmds []DrawCommand, ms float64) []DrawCommand {
	w, h := f.viewport.Size()
	if w <= 0 || h <= 0 {
		return cmds
	}
	fw, fh := float64(w), float64(h)
	pal := &f.palette

	cmds = append(cmds, DrawCommand{
		Type:   CommandGradient,
		Rect:   Rect{0, 0, fw, fh},
		Color:  pal.SkyTop,
		Color2: pal.SkyBottom,
	})
	if f.mode == ModeInteractive && f.groundHeight > 0 {
		cmds = append(cmds, fillRect("", Rect{0, fh - f.groundHeight, fw, f.groundHeight}, pal.Ground))
	}

	for i := range f.instances {
		t := &f.instances[i]
		cmds = appendTree(cmds, t, ms, pal)
		if f.mode == ModeInteractive && f.selection.Is(t.ID) {
			cmds = appendHighlight(cmds, t, f.highlight.progress(), pal)
		}
	}

	if f.brightness != 1 {
		for i := range cmds {
			cmds[i].Color = cmds[i].Color.Scale(f.brightness)
			cmds[i].Color2 = cmds[i].Color2.Scale(f.brightness)
		}
	}
	return cmds
}

// submit replays cmds onto p after clearing it.
func submit(p Painter, cmds []DrawCommand) {
	p.Clear()
	for i := range cmds {
		cmd := &cmds[i]
		switch cmd.Type {
		case CommandGradient:
			p.FillGradient(cmd.Rect, cmd.Color, cmd.Color2)
		case CommandFillRect:
			p.FillRect(cmd.Rect, cmd.Color)
		case CommandFillTriangle:
			p.FillTriangle(cmd.Points[0], cmd.Points[1], cmd.Points[2], cmd.Color)
		case CommandFillCircle:
			p.FillCircle(cmd.Center, cmd.Radius, cmd.Color)
		case CommandStrokeCircle:
			p.StrokeCircle(cmd.Center, cmd.Radius, cmd.LineWidth, cmd.Color)
		case CommandText:
			p.DrawText(cmd.Text, cmd.Center, cmd.FontSize, cmd.Color)
		}
	}
}

// Commands returns the command list of the most recently rendered frame.
// The returned slice MUST NOT be mutated and is overwritten by the next frame.
func (f *Forest) Commands() []DrawCommand {
	return f.commands
}

// Render builds and paints a single frame at elapsed time ms without going
// through the driver. Headless hosts use it to render chosen instants.
func (f *Forest) Render(ms float64) {
	f.renderFrame(ms)
}
