package forest

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var whitePixelImage *ebiten.Image

// ensureWhitePixel returns a lazily-initialized 1x1 white pixel image used as
// the source texture for untextured triangles.
func ensureWhitePixel() *ebiten.Image {
	if whitePixelImage == nil {
		whitePixelImage = ebiten.NewImage(1, 1)
		whitePixelImage.Fill(color.RGBA{R: 255, G: 255, B: 255, A: 255})
	}
	return whitePixelImage
}

// EbitenPainter paints draw commands onto an ebiten image. The target is set
// by the host at the start of every Draw call.
type EbitenPainter struct {
	target *ebiten.Image

	verts [4]ebiten.Vertex
	inds  [6]uint16
	faces map[float64]*text.GoTextFace
}

// NewEbitenPainter creates a painter with no target.
func NewEbitenPainter() *EbitenPainter {
	return &EbitenPainter{faces: make(map[float64]*text.GoTextFace)}
}

// SetTarget sets the image subsequent calls paint onto.
func (p *EbitenPainter) SetTarget(img *ebiten.Image) {
	p.target = img
}

// Target returns the current target image.
func (p *EbitenPainter) Target() *ebiten.Image {
	return p.target
}

// Clear implements Painter.
func (p *EbitenPainter) Clear() {
	if p.target == nil {
		return
	}
	p.target.Clear()
}

// FillGradient implements Painter with a four-vertex quad whose top and
// bottom vertices carry the two colors.
func (p *EbitenPainter) FillGradient(r Rect, top, bottom Color) {
	if p.target == nil || r.Width <= 0 || r.Height <= 0 {
		return
	}
	x0, y0 := float32(r.X), float32(r.Y)
	x1, y1 := float32(r.X+r.Width), float32(r.Y+r.Height)
	setVertex(&p.verts[0], x0, y0, top)
	setVertex(&p.verts[1], x1, y0, top)
	setVertex(&p.verts[2], x1, y1, bottom)
	setVertex(&p.verts[3], x0, y1, bottom)
	p.inds = [6]uint16{0, 1, 2, 0, 2, 3}
	p.drawTriangles(p.verts[:4], p.inds[:6])
}

// FillRect implements Painter.
func (p *EbitenPainter) FillRect(r Rect, c Color) {
	if p.target == nil {
		return
	}
	vector.DrawFilledRect(p.target, float32(r.X), float32(r.Y),
		float32(r.Width), float32(r.Height), c.toRGBA(), true)
}

// FillTriangle implements Painter.
func (p *EbitenPainter) FillTriangle(a, b, c Vec2, col Color) {
	if p.target == nil {
		return
	}
	setVertex(&p.verts[0], float32(a.X), float32(a.Y), col)
	setVertex(&p.verts[1], float32(b.X), float32(b.Y), col)
	setVertex(&p.verts[2], float32(c.X), float32(c.Y), col)
	p.inds[0], p.inds[1], p.inds[2] = 0, 1, 2
	p.drawTriangles(p.verts[:3], p.inds[:3])
}

// FillCircle implements Painter.
func (p *EbitenPainter) FillCircle(center Vec2, radius float64, c Color) {
	if p.target == nil || radius <= 0 {
		return
	}
	vector.DrawFilledCircle(p.target, float32(center.X), float32(center.Y),
		float32(radius), c.toRGBA(), true)
}

// StrokeCircle implements Painter.
func (p *EbitenPainter) StrokeCircle(center Vec2, radius, width float64, c Color) {
	if p.target == nil || radius <= 0 || width <= 0 {
		return
	}
	vector.StrokeCircle(p.target, float32(center.X), float32(center.Y),
		float32(radius), float32(width), c.toRGBA(), true)
}

// DrawText implements Painter. The string is centered horizontally on
// baseline.X with its baseline at baseline.Y.
func (p *EbitenPainter) DrawText(s string, baseline Vec2, size float64, c Color) {
	if p.target == nil || s == "" {
		return
	}
	face := p.face(size)
	if face == nil {
		return
	}
	op := &text.DrawOptions{}
	op.PrimaryAlign = text.AlignCenter
	op.GeoM.Translate(baseline.X, baseline.Y-face.Metrics().HAscent)
	op.ColorScale.ScaleWithColor(c.toRGBA())
	text.Draw(p.target, s, face, op)
}

func (p *EbitenPainter) face(size float64) *text.GoTextFace {
	if f, ok := p.faces[size]; ok {
		return f
	}
	src, err := labelFaceSource()
	if err != nil {
		return nil
	}
	if p.faces == nil {
		p.faces = make(map[float64]*text.GoTextFace)
	}
	f := &text.GoTextFace{Source: src, Size: size}
	p.faces[size] = f
	return f
}

func (p *EbitenPainter) drawTriangles(verts []ebiten.Vertex, inds []uint16) {
	op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	p.target.DrawTriangles(verts, inds, ensureWhitePixel(), op)
}

// setVertex fills v with a position and a solid color sampled from the
// center of the white pixel. Vertex colors are straight alpha, the default
// ColorScaleMode of DrawTriangles.
func setVertex(v *ebiten.Vertex, x, y float32, c Color) {
	v.DstX = x
	v.DstY = y
	v.SrcX = 0.5
	v.SrcY = 0.5
	v.ColorR = float32(clamp01(c.R))
	v.ColorG = float32(clamp01(c.G))
	v.ColorB = float32(clamp01(c.B))
	v.ColorA = float32(clamp01(c.A))
}
