package forest

import (
	"bytes"
	"fmt"
	"sync"

	ggtext "github.com/gogpu/gg/text"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// Label fonts are parsed once from the embedded Go Regular TTF and shared by
// every painter. A parse failure disables label text; the rest of the frame
// still renders.

var (
	ebitenFontOnce sync.Once
	ebitenFontSrc  *text.GoTextFaceSource
	ebitenFontErr  error

	ggFontOnce sync.Once
	ggFontSrc  *ggtext.FontSource
	ggFontErr  error
)

// labelFaceSource returns the shared ebiten text/v2 face source.
func labelFaceSource() (*text.GoTextFaceSource, error) {
	ebitenFontOnce.Do(func() {
		ebitenFontSrc, ebitenFontErr = text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
		if ebitenFontErr != nil {
			ebitenFontErr = fmt.Errorf("forest: parse label font: %w", ebitenFontErr)
			Logger().Warn("forest: label text disabled", "err", ebitenFontErr)
		}
	})
	return ebitenFontSrc, ebitenFontErr
}

// labelFontSource returns the shared gg font source.
func labelFontSource() (*ggtext.FontSource, error) {
	ggFontOnce.Do(func() {
		ggFontSrc, ggFontErr = ggtext.NewFontSource(goregular.TTF)
		if ggFontErr != nil {
			ggFontErr = fmt.Errorf("forest: parse label font: %w", ggFontErr)
			Logger().Warn("forest: label text disabled", "err", ggFontErr)
		}
	})
	return ggFontSrc, ggFontErr
}
