package forest

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

const defaultScreenshotDir = "screenshots"

// Screenshot queues a labeled screenshot to be captured at the end of the
// current frame's Draw call. The resulting PNG is written to ScreenshotDir
// with a timestamped filename.
func (f *Forest) Screenshot(label string) {
	f.screenshotQueue = append(f.screenshotQueue, label)
}

// flushScreenshots captures the rendered frame for every queued label and
// writes each as a PNG file. Called by the ebiten host at the end of Draw.
func (f *Forest) flushScreenshots(screen *ebiten.Image) {
	if len(f.screenshotQueue) == 0 {
		return
	}
	defer func() { f.screenshotQueue = f.screenshotQueue[:0] }()

	if err := os.MkdirAll(f.ScreenshotDir, 0o755); err != nil {
		Logger().Warn("forest: screenshot mkdir failed", "dir", f.ScreenshotDir, "err", err)
		return
	}

	bounds := screen.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	pixels := make([]byte, 4*w*h)
	screen.ReadPixels(pixels)
	img := unpremultiply(pixels, w, h)

	f.writeScreenshots(img)
}

// flushScreenshotsImage writes queued screenshots from an already rendered
// image. Headless hosts use it with GGPainter.Image.
func (f *Forest) flushScreenshotsImage(src image.Image) {
	if len(f.screenshotQueue) == 0 {
		return
	}
	defer func() { f.screenshotQueue = f.screenshotQueue[:0] }()

	if err := os.MkdirAll(f.ScreenshotDir, 0o755); err != nil {
		Logger().Warn("forest: screenshot mkdir failed", "dir", f.ScreenshotDir, "err", err)
		return
	}
	b := src.Bounds()
	img := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			img.Set(x, y, src.At(b.Min.X+x, b.Min.Y+y))
		}
	}
	f.writeScreenshots(img)
}

// FlushScreenshots writes queued screenshots of p's canvas.
func (f *Forest) FlushScreenshots(p *GGPainter) {
	if p == nil {
		return
	}
	f.flushScreenshotsImage(p.Image())
}

func (f *Forest) writeScreenshots(img *image.NRGBA) {
	stamp := time.Now().Format("20060102_150405")
	for _, label := range f.screenshotQueue {
		path := filepath.Join(f.ScreenshotDir, fmt.Sprintf("%s_%s.png", stamp, sanitizeLabel(label)))
		if err := writePNG(path, img); err != nil {
			Logger().Warn("forest: screenshot failed", "err", err)
			continue
		}
		Logger().Debug("forest: screenshot", "path", path)
	}
}

// unpremultiply converts premultiplied RGBA bytes to straight-alpha NRGBA.
func unpremultiply(pixels []byte, w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i := 0; i+3 < len(pixels) && i+3 < len(img.Pix); i += 4 {
		r, g, b, a := pixels[i], pixels[i+1], pixels[i+2], pixels[i+3]
		if a > 0 && a < 255 {
			r = uint8(min(int(r)*255/int(a), 255))
			g = uint8(min(int(g)*255/int(a), 255))
			b = uint8(min(int(b)*255/int(a), 255))
		}
		img.Pix[i] = r
		img.Pix[i+1] = g
		img.Pix[i+2] = b
		img.Pix[i+3] = a
	}
	return img
}

// writePNG encodes an image to a PNG file at the given path.
func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

// sanitizeLabel replaces characters that are unsafe in file names with
// underscores and falls back to "unlabeled" for empty strings.
func sanitizeLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "unlabeled"
	}
	var b strings.Builder
	b.Grow(len(label))
	for _, r := range label {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9', r == '-', r == '.':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}
