package window

import (
	"image"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/theme"
	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
)

const (
	captionFontSize = 12
	captionDPI      = 72
	captionPadding  = 2
)

// renderRotated draws text with the theme font and turns it 90 degrees
// counter-clockwise so it reads bottom to top beside the pad
func renderRotated(text string) image.Image {
	f, err := freetype.ParseFont(theme.DefaultTextFont().Content())
	if err != nil {
		log.Printf("Failed to parse font: %v", err)
		return image.NewRGBA(image.Rect(0, 0, 1, 1))
	}

	face := truetype.NewFace(f, &truetype.Options{Size: captionFontSize, DPI: captionDPI})
	defer face.Close()

	textWidth := 0
	for _, r := range text {
		if adv, ok := face.GlyphAdvance(r); ok {
			textWidth += adv.Round()
		}
	}
	metrics := face.Metrics()
	textHeight := (metrics.Ascent + metrics.Descent).Ceil()
	ascent := metrics.Ascent.Ceil()

	w := textWidth + captionPadding*2
	h := textHeight + captionPadding*2
	src := image.NewRGBA(image.Rect(0, 0, w, h))

	c := freetype.NewContext()
	c.SetFont(f)
	c.SetFontSize(captionFontSize)
	c.SetDPI(captionDPI)
	c.SetClip(src.Bounds())
	c.SetDst(src)
	c.SetSrc(image.NewUniform(theme.Color(theme.ColorNameForeground)))

	if _, err := c.DrawString(text, freetype.Pt(captionPadding, captionPadding+ascent)); err != nil {
		log.Printf("Failed to draw string: %v", err)
	}

	// (x, y) -> (y, w-1-x)
	rotated := image.NewRGBA(image.Rect(0, 0, h, w))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			rotated.Set(y, w-1-x, src.At(x, y))
		}
	}
	return rotated
}

// rotatedCaption is a vertical label that can be updated in place
type rotatedCaption struct {
	img  *canvas.Image
	text string
}

func newRotatedCaption(text string) *rotatedCaption {
	c := &rotatedCaption{img: canvas.NewImageFromImage(image.NewRGBA(image.Rect(0, 0, 1, 1)))}
	c.img.FillMode = canvas.ImageFillOriginal
	c.SetText(text)
	return c
}

func (c *rotatedCaption) SetText(text string) {
	if text == c.text {
		return
	}
	c.text = text

	img := renderRotated(text)
	b := img.Bounds()
	c.img.Image = img
	c.img.SetMinSize(fyne.NewSize(float32(b.Dx()), float32(b.Dy())))
	c.img.Refresh()
}
