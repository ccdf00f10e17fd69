package viz

import (
	"helixd/internal/gesture"
	"helixd/pkg/types"
)

// gestureInfo renders a classified gesture for the wire. The switch is
// exhaustive over gesture kinds so a new class cannot silently serialize as
// a bare type string.
func gestureInfo(g gesture.Gesture) types.GestureInfo {
	info := types.GestureInfo{Type: string(g.Kind), Confidence: g.Confidence}
	switch g.Kind {
	case gesture.KindPinch:
		d := g.Distance
		info.Distance = &d
	case gesture.KindPoint:
		info.Position = []float64{g.X, g.Y}
	case gesture.KindOpenHand, gesture.KindFist, gesture.KindUnknown:
	}
	return info
}

// transformations renders a transform delta for the wire: rotation pair,
// zoom, reset flag, or an empty object for none.
func transformations(tr gesture.Transform) types.Transformations {
	switch tr.Kind {
	case gesture.TransformRotate:
		x, y := tr.RotationX, tr.RotationY
		return types.Transformations{RotationX: &x, RotationY: &y}
	case gesture.TransformZoom:
		z := tr.Zoom
		return types.Transformations{Zoom: &z}
	case gesture.TransformReset:
		return types.Transformations{Reset: true}
	default:
		return types.Transformations{}
	}
}
