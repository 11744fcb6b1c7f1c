package service

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"log"

	"github.com/skip2/go-qrcode"
	xdraw "golang.org/x/image/draw"
)

const (
	DefaultQRSize    = 512
	DefaultMarkRatio = 0.22
)

// DefaultQRRenderer encodes a value at the highest error correction level so
// that the centre of the symbol can be covered by a brand mark.
type DefaultQRRenderer struct {
	Size      int
	Level     qrcode.RecoveryLevel
	MarkRatio float64
}

func NewQRRenderer() DefaultQRRenderer {
	return DefaultQRRenderer{
		Size:      DefaultQRSize,
		Level:     qrcode.Highest,
		MarkRatio: DefaultMarkRatio,
	}
}

func (g DefaultQRRenderer) Render(value string, mark []byte) ([]byte, error) {
	if value == "" {
		return nil, fmt.Errorf("%w: empty value", ErrRenderFailed)
	}

	code, err := qrcode.New(value, g.Level)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRenderFailed, err)
	}
	base := code.Image(g.Size)

	canvas := image.NewRGBA(base.Bounds())
	draw.Draw(canvas, canvas.Bounds(), base, base.Bounds().Min, draw.Src)

	if len(mark) > 0 {
		logo, _, err := image.Decode(bytes.NewReader(mark))
		if err != nil {
			log.Printf("WARNING: brand mark could not be decoded, rendering plain QR: %v", err)
		} else {
			g.overlay(canvas, logo)
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, canvas); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRenderFailed, err)
	}
	return buf.Bytes(), nil
}

// overlay clears a white square in the middle of the code and draws the mark
// inside it, keeping the mark's aspect ratio.
func (g DefaultQRRenderer) overlay(canvas *image.RGBA, logo image.Image) {
	bounds := canvas.Bounds()
	side := int(float64(bounds.Dx()) * g.MarkRatio)
	if side <= 0 || logo.Bounds().Empty() {
		return
	}

	box := image.Rect(0, 0, side, side).Add(image.Pt(
		bounds.Min.X+(bounds.Dx()-side)/2,
		bounds.Min.Y+(bounds.Dy()-side)/2,
	))
	draw.Draw(canvas, box, image.White, image.Point{}, draw.Src)

	inner := box.Inset(side / 10)
	target := fitRect(inner, logo.Bounds())
	xdraw.CatmullRom.Scale(canvas, target, logo, logo.Bounds(), xdraw.Over, nil)
}

func fitRect(box, src image.Rectangle) image.Rectangle {
	w, h := box.Dx(), box.Dy()
	if src.Dx() > src.Dy() {
		h = box.Dx() * src.Dy() / src.Dx()
	} else if src.Dy() > src.Dx() {
		w = box.Dy() * src.Dx() / src.Dy()
	}
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	x := box.Min.X + (box.Dx()-w)/2
	y := box.Min.Y + (box.Dy()-h)/2
	return image.Rect(x, y, x+w, y+h)
}
