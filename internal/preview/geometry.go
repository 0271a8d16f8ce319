package preview

import (
	"craftpress/internal/customize"
	"craftpress/internal/domain"
)

// Rect is a pixel rectangle on the preview canvas, top-left anchored.
type Rect struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"w"`
	H float64 `json:"h"`
}

// Zone is the design zone resolved to pixels: size plus center point.
type Zone struct {
	W  float64 `json:"w"`
	H  float64 `json:"h"`
	CX float64 `json:"cx"`
	CY float64 `json:"cy"`
}

const (
	textBoxHeight  = 30.0
	cornerScale    = 0.4
	cornerInset    = 10.0
	imageWidthPct  = 0.8
	imageHeightPct = 0.6
)

// PixelZone maps a percentage-based design zone onto a canvas. The
// zone's size is a percentage of the canvas size; its center is
// displaced from the canvas center by the offsets, also in percent.
// Out-of-range zone specs are not clamped, they simply land outside
// the visible canvas.
func PixelZone(canvasW, canvasH float64, z domain.DesignZone) Zone {
	return Zone{
		W:  canvasW * z.Width / 100,
		H:  canvasH * z.Height / 100,
		CX: canvasW/2 + canvasW*z.OffsetX/100,
		CY: canvasH/2 + canvasH*z.OffsetY/100,
	}
}

// ElementBox places one element inside the zone. Center-aligned
// images get 80%x60% of the zone, text the full zone width at a fixed
// height; the four corner alignments shrink the element to 40% of its
// center size and anchor it 10px inside the corresponding zone
// corner.
func ElementBox(zn Zone, kind, alignment string) Rect {
	ew := zn.W
	eh := textBoxHeight
	if kind == customize.KindImage {
		ew = zn.W * imageWidthPct
		eh = zn.H * imageHeightPct
	}

	switch alignment {
	case customize.AlignTopLeft:
		return Rect{
			X: zn.CX - zn.W/2 + cornerInset,
			Y: zn.CY - zn.H/2 + cornerInset,
			W: ew * cornerScale,
			H: eh * cornerScale,
		}
	case customize.AlignTopRight:
		return Rect{
			X: zn.CX + zn.W/2 - ew*cornerScale - cornerInset,
			Y: zn.CY - zn.H/2 + cornerInset,
			W: ew * cornerScale,
			H: eh * cornerScale,
		}
	case customize.AlignBottomLeft:
		return Rect{
			X: zn.CX - zn.W/2 + cornerInset,
			Y: zn.CY + zn.H/2 - eh*cornerScale - cornerInset,
			W: ew * cornerScale,
			H: eh * cornerScale,
		}
	case customize.AlignBottomRight:
		return Rect{
			X: zn.CX + zn.W/2 - ew*cornerScale - cornerInset,
			Y: zn.CY + zn.H/2 - eh*cornerScale - cornerInset,
			W: ew * cornerScale,
			H: eh * cornerScale,
		}
	default: // center
		return Rect{
			X: zn.CX - ew/2,
			Y: zn.CY - eh/2,
			W: ew,
			H: eh,
		}
	}
}

// AspectFit shrinks the longer axis so an image of the given source
// dimensions fits entirely inside the box without distortion. The box
// anchor is kept.
func AspectFit(box Rect, srcW, srcH int) Rect {
	if srcW <= 0 || srcH <= 0 {
		return Rect{X: box.X, Y: box.Y}
	}
	ratio := float64(srcW) / float64(srcH)
	w := box.W
	h := box.W / ratio
	if h > box.H {
		h = box.H
		w = box.H * ratio
	}
	return Rect{X: box.X, Y: box.Y, W: w, H: h}
}
