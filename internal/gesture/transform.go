package gesture

// TransformKind enumerates the view-transform deltas a gesture can produce.
type TransformKind string

const (
	TransformRotate TransformKind = "rotate"
	TransformZoom   TransformKind = "zoom"
	TransformReset  TransformKind = "reset"
	TransformNone   TransformKind = "none"
)

// Transform is an advisory view delta for viewers to apply locally; the
// server never folds it into persistent state.
type Transform struct {
	Kind TransformKind
	// Rotation in degrees (rotate only).
	RotationX, RotationY float64
	// Zoom level in [MinZoom, MaxZoom] (zoom only).
	Zoom float64
}

// Zoom clamp bounds.
const (
	MinZoom = 0.5
	MaxZoom = 3.0
)

// Map converts a classified gesture into its transform delta:
//
//   - point maps the normalized fingertip position to rotation degrees
//     centered on the middle of the screen: ±180° horizontally, ±90°
//     vertically.
//   - pinch maps distance to zoom as 2.0 - 10·distance, clamped to
//     [MinZoom, MaxZoom], so a tighter pinch zooms in.
//   - fist resets the view.
//   - open hand and unknown carry no transform effect but are still
//     reported to viewers as informational events.
func Map(g Gesture) Transform {
	switch g.Kind {
	case KindPoint:
		return Transform{
			Kind:      TransformRotate,
			RotationY: (g.X - 0.5) * 360,
			RotationX: (g.Y - 0.5) * 180,
		}
	case KindPinch:
		return Transform{Kind: TransformZoom, Zoom: clamp(2.0-g.Distance*10, MinZoom, MaxZoom)}
	case KindFist:
		return Transform{Kind: TransformReset}
	case KindOpenHand, KindUnknown:
		return Transform{Kind: TransformNone}
	default:
		return Transform{Kind: TransformNone}
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
