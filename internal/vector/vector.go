// Package vector holds the five-dimensional affinity space shared by user
// profiles and majors.
package vector

import (
	"fmt"
	"math"
	"strings"
)

// Dimension indexes a component of a Vector.
type Dimension int

const (
	LogicMath Dimension = iota
	Verbal
	Social
	Art
	Science

	// Size is the number of dimensions.
	Size = 5
)

// Dimensions lists every dimension in vector order.
var Dimensions = [Size]Dimension{LogicMath, Verbal, Social, Art, Science}

var dimensionNames = [Size]string{"Logic/Math", "Verbal", "Social", "Art", "Science"}

func (d Dimension) String() string {
	if d < 0 || int(d) >= Size {
		return fmt.Sprintf("Dimension(%d)", int(d))
	}
	return dimensionNames[d]
}

// Vector is an affinity vector ordered as [Logic/Math, Verbal, Social, Art, Science].
type Vector [Size]float64

// IsZero reports whether every component is zero.
func (v Vector) IsZero() bool {
	for _, c := range v {
		if c != 0 {
			return false
		}
	}
	return true
}

// Slice returns the components as a slice, mostly for structured logging.
func (v Vector) Slice() []float64 {
	out := make([]float64, Size)
	copy(out, v[:])
	return out
}

func (v Vector) String() string {
	parts := make([]string, 0, Size)
	for _, d := range Dimensions {
		parts = append(parts, fmt.Sprintf("%s=%.2f", d, v[d]))
	}
	return strings.Join(parts, " ")
}

// Clamp limits x to [lo, hi].
func Clamp(x, lo, hi float64) float64 {
	if math.IsNaN(x) {
		return lo
	}
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// Normalize scales x by maxVal and clamps the result to [0, 1].
// A non-positive maxVal yields 0.
func Normalize(x, maxVal float64) float64 {
	if maxVal <= 0 {
		return 0
	}
	return Clamp(x/maxVal, 0, 1)
}

// Cosine returns the cosine similarity of a and b. It returns 0 when either
// vector has zero length. Identical non-zero vectors yield exactly 1.
func Cosine(a, b Vector) float64 {
	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / math.Sqrt(normA*normB)
}
