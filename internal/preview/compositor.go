package preview

import (
	"context"
	"image"
	"image/color"
	"strings"

	"github.com/disintegration/imaging"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"craftpress/internal/customize"
	"craftpress/internal/domain"
	applog "craftpress/internal/log"
)

// Layers of the composited preview.
const (
	LayerBackground = 0
	LayerDesign     = 1
)

// Instruction is one placement on the preview canvas. The background
// mockup is a single full-canvas instruction on layer 0; design
// elements follow on layer 1 in builder order (later entries draw on
// top).
type Instruction struct {
	ElementID string `json:"elementId,omitempty"`
	Layer     int    `json:"layer"`
	Kind      string `json:"kind"` // image | text
	Box       Rect   `json:"box"`
	Src       string `json:"src,omitempty"`
	Text      string `json:"text,omitempty"`
	Alignment string `json:"alignment,omitempty"`
	TextColor string `json:"textColor,omitempty"`
}

// Composite resolves the zone and every element into ordered render
// instructions. Pure; the raster renderer and the JSON preview API
// both consume it.
func Composite(canvasW, canvasH int, mockup string, zone domain.DesignZone, elements []customize.DesignElement, textColor string) []Instruction {
	w := float64(canvasW)
	h := float64(canvasH)
	zn := PixelZone(w, h, zone)

	out := make([]Instruction, 0, len(elements)+1)
	out = append(out, Instruction{
		Layer: LayerBackground,
		Kind:  customize.KindImage,
		Box:   Rect{X: 0, Y: 0, W: w, H: h},
		Src:   mockup,
	})
	for _, el := range elements {
		ins := Instruction{
			ElementID: el.ID,
			Layer:     LayerDesign,
			Kind:      el.Kind,
			Box:       ElementBox(zn, el.Kind, el.Alignment),
			Src:       el.Src,
			Text:      el.Text,
			Alignment: el.Alignment,
		}
		if el.Kind == customize.KindText {
			ins.TextColor = textColor
		}
		out = append(out, ins)
	}
	return out
}

// TextColorFor picks the preview text color from the variant's
// attributes: black-colored variants force white text for contrast,
// everything else gets dark gray.
func TextColorFor(attrs map[string]string) string {
	if strings.EqualFold(attrs["color"], "black") {
		return "#FFFFFF"
	}
	return "#333333"
}

// Renderer rasterizes composite instructions into an image.
type Renderer struct {
	Loader *Loader
}

func NewRenderer(loader *Loader) *Renderer { return &Renderer{Loader: loader} }

// Render draws the mockup background and the design elements onto a
// fresh canvas. Image loads run independently; an element whose image
// cannot be fetched is omitted without blocking the rest, and a
// missing background leaves the plain canvas visible.
func (r *Renderer) Render(ctx context.Context, canvasW, canvasH int, mockup string, zone domain.DesignZone, elements []customize.DesignElement, textColor string) image.Image {
	dst := imaging.New(canvasW, canvasH, color.NRGBA{R: 0xF3, G: 0xF4, B: 0xF6, A: 0xFF})

	if mockup != "" {
		bg, err := r.Loader.Fetch(ctx, mockup)
		if err != nil {
			applog.Error(nil, "preview.mockup.load", err, map[string]any{"src": mockup})
		} else {
			scaled := imaging.Resize(bg, canvasW, canvasH, imaging.Lanczos)
			dst = imaging.Overlay(dst, scaled, image.Pt(0, 0), 1.0)
		}
	}

	loaded := Reconcile(elements, r.Loader.FetchAll(ctx, elements))
	zn := PixelZone(float64(canvasW), float64(canvasH), zone)
	fill := parseHexColor(textColor)

	for _, el := range elements {
		box := ElementBox(zn, el.Kind, el.Alignment)
		switch el.Kind {
		case customize.KindImage:
			img, ok := loaded[el.ID]
			if !ok {
				continue
			}
			b := img.Bounds()
			fit := AspectFit(box, b.Dx(), b.Dy())
			if fit.W < 1 || fit.H < 1 {
				continue
			}
			scaled := imaging.Resize(img, int(fit.W+0.5), int(fit.H+0.5), imaging.Lanczos)
			dst = imaging.Overlay(dst, scaled, image.Pt(int(fit.X+0.5), int(fit.Y+0.5)), 1.0)
		case customize.KindText:
			if el.Text != "" {
				drawText(dst, el.Text, box, fill)
			}
		}
	}

	return dst
}

// drawText renders bold text centered in its box. basicfont has no
// bold face, so the glyphs are double-struck one pixel apart.
func drawText(dst *image.NRGBA, text string, box Rect, fill color.NRGBA) {
	face := basicfont.Face7x13
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(fill),
		Face: face,
	}
	width := d.MeasureString(text).Ceil()
	x := int(box.X + (box.W-float64(width))/2)
	y := int(box.Y + box.H/2 + float64(face.Ascent-face.Height/2))

	for dx := 0; dx <= 1; dx++ {
		d.Dot = fixed.P(x+dx, y)
		d.DrawString(text)
	}
}

func parseHexColor(s string) color.NRGBA {
	c := color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 0xFF}
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return c
	}
	hex := func(b byte) (uint8, bool) {
		switch {
		case '0' <= b && b <= '9':
			return b - '0', true
		case 'a' <= b && b <= 'f':
			return b - 'a' + 10, true
		case 'A' <= b && b <= 'F':
			return b - 'A' + 10, true
		}
		return 0, false
	}
	var out [3]uint8
	for i := 0; i < 3; i++ {
		hi, ok1 := hex(s[2*i])
		lo, ok2 := hex(s[2*i+1])
		if !ok1 || !ok2 {
			return c
		}
		out[i] = hi<<4 | lo
	}
	return color.NRGBA{R: out[0], G: out[1], B: out[2], A: 0xFF}
}
