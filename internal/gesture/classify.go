// Package gesture classifies hand-landmark samples into discrete gestures and
// maps them to view-transform deltas. Classification thresholds are fixed
// constants tuned against MediaPipe hand output; they are not configurable.
package gesture

import "math"

// LandmarkCount is the number of tracked points in a full hand skeleton.
const LandmarkCount = 21

// MediaPipe hand landmark indices used by the classifier.
const (
	thumbJoint  = 3
	thumbTip    = 4
	indexJoint  = 6
	indexTip    = 8
	middleJoint = 10
	middleTip   = 12
	ringJoint   = 14
	ringTip     = 16
	pinkyJoint  = 18
	pinkyTip    = 20
)

// pinchThreshold is the thumb-tip/index-tip distance below which the hand is
// considered pinching, in normalized image units.
const pinchThreshold = 0.05

// Kind enumerates the discrete gesture classes.
type Kind string

const (
	KindPinch    Kind = "pinch"
	KindPoint    Kind = "point"
	KindOpenHand Kind = "open_hand"
	KindFist     Kind = "fist"
	KindUnknown  Kind = "unknown"
)

// Gesture is a classified hand pose. Kind selects which extra fields are
// meaningful: Distance for pinch, X/Y for point.
type Gesture struct {
	Kind       Kind
	Confidence float64
	// Distance between thumb tip and index tip (pinch only).
	Distance float64
	// Index fingertip position in normalized image space (point only).
	X, Y float64
}

// Classify turns a raw landmark set into a Gesture. A sample without exactly
// 21 landmarks is structurally malformed and degrades to unknown with zero
// confidence; it never fails the caller.
//
// Classification order, first match wins:
// pinch (fingertip distance), point (only index extended), open hand (all
// five extended), fist (none extended), otherwise unknown.
func Classify(landmarks [][]float64) Gesture {
	if len(landmarks) != LandmarkCount {
		return Gesture{Kind: KindUnknown, Confidence: 0}
	}

	if d := dist(landmarks[thumbTip], landmarks[indexTip]); d < pinchThreshold {
		return Gesture{Kind: KindPinch, Confidence: 0.9, Distance: d}
	}

	// Thumb extension compares x; the other fingers compare y, where smaller
	// means higher on screen (image y grows downward).
	thumb := coord(landmarks[thumbTip], 0) > coord(landmarks[thumbJoint], 0)
	index := coord(landmarks[indexTip], 1) < coord(landmarks[indexJoint], 1)
	middle := coord(landmarks[middleTip], 1) < coord(landmarks[middleJoint], 1)
	ring := coord(landmarks[ringTip], 1) < coord(landmarks[ringJoint], 1)
	pinky := coord(landmarks[pinkyTip], 1) < coord(landmarks[pinkyJoint], 1)

	extended := 0
	for _, up := range []bool{thumb, index, middle, ring, pinky} {
		if up {
			extended++
		}
	}

	switch {
	case extended == 1 && index:
		return Gesture{
			Kind:       KindPoint,
			Confidence: 0.8,
			X:          coord(landmarks[indexTip], 0),
			Y:          coord(landmarks[indexTip], 1),
		}
	case extended == 5:
		return Gesture{Kind: KindOpenHand, Confidence: 0.8}
	case extended == 0:
		return Gesture{Kind: KindFist, Confidence: 0.8}
	default:
		return Gesture{Kind: KindUnknown, Confidence: 0.3}
	}
}

// coord reads component i of a landmark, treating missing components as 0.
func coord(p []float64, i int) float64 {
	if i < len(p) {
		return p[i]
	}
	return 0
}

// dist is the Euclidean distance between two landmarks across however many
// components both carry (2D or 3D, consistently).
func dist(a, b []float64) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	var sum float64
	for i := 0; i < n; i++ {
		d := a[i] - b[i]
		sum += d * d
	}
	return math.Sqrt(sum)
}
