package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHaversineKm(t *testing.T) {
	t.Run("ZeroDistanceForSamePoint", func(t *testing.T) {
		assert.InDelta(t, 0, HaversineKm(1.5, 36.8, 1.5, 36.8), 0.001)
	})

	t.Run("HalfKilometerOffEquator", func(t *testing.T) {
		// 0.005 degrees of latitude is roughly 556 m.
		d := HaversineKm(0, 0, 0.005, 0)
		assert.InDelta(t, 0.556, d, 0.01)
	})

	t.Run("OneDegreeOfLatitude", func(t *testing.T) {
		// One degree of latitude is roughly 111 km.
		d := HaversineKm(0, 0, 1, 0)
		assert.InDelta(t, 111.19, d, 0.5)
	})

	t.Run("SymmetricInArguments", func(t *testing.T) {
		a := HaversineKm(-1.3, 36.8, 6.5, 3.4)
		b := HaversineKm(6.5, 3.4, -1.3, 36.8)
		assert.InDelta(t, a, b, 0.0001)
	})
}
