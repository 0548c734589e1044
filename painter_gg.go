package forest

import (
	"fmt"
	"image"

	"github.com/gogpu/gg"
	ggtext "github.com/gogpu/gg/text"
)

// GGPainter paints onto an offscreen gg software canvas. It is also the
// Container for that canvas, so a headless host can attach a forest with
// the same value twice: f.Attach(p, p).
type GGPainter struct {
	ctx   *gg.Context
	faces map[float64]ggtext.Face
}

// NewGGPainter creates a painter with a w×h canvas.
func NewGGPainter(w, h int) *GGPainter {
	return &GGPainter{
		ctx:   gg.NewContext(w, h),
		faces: make(map[float64]ggtext.Face),
	}
}

// ContentSize implements Container.
func (p *GGPainter) ContentSize() (int, int, bool) {
	return p.ctx.Width(), p.ctx.Height(), true
}

// Resize reallocates the canvas. Call Forest.Resize afterwards so the layout
// follows.
func (p *GGPainter) Resize(w, h int) error {
	if err := p.ctx.Resize(w, h); err != nil {
		return fmt.Errorf("forest: resize canvas: %w", err)
	}
	return nil
}

// Image returns a snapshot of the canvas.
func (p *GGPainter) Image() image.Image {
	return p.ctx.Image()
}

// SavePNG writes the canvas to path.
func (p *GGPainter) SavePNG(path string) error {
	if err := p.ctx.SavePNG(path); err != nil {
		return fmt.Errorf("forest: save %s: %w", path, err)
	}
	return nil
}

// Close releases the canvas.
func (p *GGPainter) Close() error {
	return p.ctx.Close()
}

// Clear implements Painter.
func (p *GGPainter) Clear() {
	p.ctx.Clear()
}

// FillGradient implements Painter.
func (p *GGPainter) FillGradient(r Rect, top, bottom Color) {
	brush := gg.NewLinearGradientBrush(r.X, r.Y, r.X, r.Y+r.Height).
		AddColorStop(0, top.toGG()).
		AddColorStop(1, bottom.toGG())
	p.ctx.SetFillBrush(brush)
	p.ctx.DrawRectangle(r.X, r.Y, r.Width, r.Height)
	p.fill()
}

// FillRect implements Painter.
func (p *GGPainter) FillRect(r Rect, c Color) {
	p.setColor(c)
	p.ctx.DrawRectangle(r.X, r.Y, r.Width, r.Height)
	p.fill()
}

// FillTriangle implements Painter.
func (p *GGPainter) FillTriangle(a, b, c Vec2, col Color) {
	p.setColor(col)
	p.ctx.MoveTo(a.X, a.Y)
	p.ctx.LineTo(b.X, b.Y)
	p.ctx.LineTo(c.X, c.Y)
	p.ctx.ClosePath()
	p.fill()
}

// FillCircle implements Painter.
func (p *GGPainter) FillCircle(center Vec2, radius float64, c Color) {
	if radius <= 0 {
		return
	}
	p.setColor(c)
	p.ctx.DrawCircle(center.X, center.Y, radius)
	p.fill()
}

// StrokeCircle implements Painter.
func (p *GGPainter) StrokeCircle(center Vec2, radius, width float64, c Color) {
	if radius <= 0 || width <= 0 {
		return
	}
	p.setColor(c)
	p.ctx.SetLineWidth(width)
	p.ctx.DrawCircle(center.X, center.Y, radius)
	if err := p.ctx.Stroke(); err != nil {
		Logger().Warn("forest: stroke failed", "err", err)
	}
}

// DrawText implements Painter.
func (p *GGPainter) DrawText(s string, baseline Vec2, size float64, c Color) {
	if s == "" {
		return
	}
	face := p.face(size)
	if face == nil {
		return
	}
	p.setColor(c)
	p.ctx.SetFont(face)
	p.ctx.DrawStringAnchored(s, baseline.X, baseline.Y, 0.5, 0)
}

func (p *GGPainter) face(size float64) ggtext.Face {
	if f, ok := p.faces[size]; ok {
		return f
	}
	src, err := labelFontSource()
	if err != nil {
		return nil
	}
	if p.faces == nil {
		p.faces = make(map[float64]ggtext.Face)
	}
	f := src.Face(size)
	p.faces[size] = f
	return f
}

func (p *GGPainter) setColor(c Color) {
	p.ctx.SetRGBA(c.R, c.G, c.B, c.A)
}

func (p *GGPainter) fill() {
	if err := p.ctx.Fill(); err != nil {
		Logger().Warn("forest: fill failed", "err", err)
	}
}
