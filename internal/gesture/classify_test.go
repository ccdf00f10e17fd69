package gesture

import (
	"math"
	"testing"
)

// handAt builds a 21-landmark hand with every point at (x, y). Individual
// landmarks are then overridden per test.
func handAt(x, y float64) [][]float64 {
	h := make([][]float64, LandmarkCount)
	for i := range h {
		h[i] = []float64{x, y, 0}
	}
	return h
}

// fist keeps all tips at or below their joints and the thumb tucked in.
func fist() [][]float64 {
	h := handAt(0.5, 0.5)
	h[thumbTip] = []float64{0.4, 0.5, 0}  // tip.x < joint.x
	h[thumbJoint] = []float64{0.5, 0.5, 0}
	for _, pair := range [][2]int{{indexTip, indexJoint}, {middleTip, middleJoint}, {ringTip, ringJoint}, {pinkyTip, pinkyJoint}} {
		h[pair[0]] = []float64{0.5, 0.7, 0} // tip below joint
		h[pair[1]] = []float64{0.5, 0.5, 0}
	}
	// Keep thumb and index tips apart so the pinch branch cannot fire.
	h[indexTip][0] = 0.9
	return h
}

func extendFinger(h [][]float64, tip, joint int) {
	h[tip] = []float64{h[joint][0], h[joint][1] - 0.2, 0}
}

func TestClassify_WrongLandmarkCount(t *testing.T) {
	for _, n := range []int{0, 1, 20, 22} {
		g := Classify(make([][]float64, n))
		if g.Kind != KindUnknown || g.Confidence != 0 {
			t.Fatalf("n=%d got %+v", n, g)
		}
	}
}

func TestClassify_Pinch(t *testing.T) {
	h := fist()
	h[thumbTip] = []float64{0.5, 0.5, 0}
	h[indexTip] = []float64{0.52, 0.5, 0}
	g := Classify(h)
	if g.Kind != KindPinch || g.Confidence != 0.9 {
		t.Fatalf("got %+v", g)
	}
	if math.Abs(g.Distance-0.02) > 1e-9 {
		t.Fatalf("distance=%v", g.Distance)
	}
}

func TestClassify_Pinch3DDistance(t *testing.T) {
	h := fist()
	h[thumbTip] = []float64{0.5, 0.5, 0}
	h[indexTip] = []float64{0.5, 0.5, 0.1} // 2D-coincident, 3D apart
	if g := Classify(h); g.Kind == KindPinch {
		t.Fatalf("z component ignored: %+v", g)
	}
}

func TestClassify_Point(t *testing.T) {
	h := fist()
	extendFinger(h, indexTip, indexJoint)
	h[indexTip][0] = 0.75
	g := Classify(h)
	if g.Kind != KindPoint || g.Confidence != 0.8 {
		t.Fatalf("got %+v", g)
	}
	if g.X != 0.75 || g.Y != 0.3 {
		t.Fatalf("position=(%v,%v)", g.X, g.Y)
	}
}

func TestClassify_OpenHand(t *testing.T) {
	h := fist()
	h[thumbTip] = []float64{0.9, 0.5, 0} // tip.x > joint.x
	extendFinger(h, indexTip, indexJoint)
	extendFinger(h, middleTip, middleJoint)
	extendFinger(h, ringTip, ringJoint)
	extendFinger(h, pinkyTip, pinkyJoint)
	if g := Classify(h); g.Kind != KindOpenHand || g.Confidence != 0.8 {
		t.Fatalf("got %+v", g)
	}
}

func TestClassify_Fist(t *testing.T) {
	if g := Classify(fist()); g.Kind != KindFist || g.Confidence != 0.8 {
		t.Fatalf("got %+v", g)
	}
}

func TestClassify_AmbiguousIsUnknown(t *testing.T) {
	// Two extended fingers matches no class.
	h := fist()
	extendFinger(h, indexTip, indexJoint)
	extendFinger(h, middleTip, middleJoint)
	if g := Classify(h); g.Kind != KindUnknown || g.Confidence != 0.3 {
		t.Fatalf("got %+v", g)
	}
}

func TestClassify_TwoComponentLandmarks(t *testing.T) {
	// Landmarks without z still classify.
	h := fist()
	for i := range h {
		h[i] = h[i][:2]
	}
	if g := Classify(h); g.Kind != KindFist {
		t.Fatalf("got %+v", g)
	}
}
