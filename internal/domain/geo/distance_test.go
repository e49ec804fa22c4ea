package geo

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
)

// Connaught Place, New Delhi. Used throughout as a known-good reference center.
var center = orb.Point{77.2090, 28.6139}

func TestDistance_ZeroForSamePoint(t *testing.T) {
	assert.Equal(t, 0.0, Distance(center, center))
}

func TestDistance_KnownSamples(t *testing.T) {
	// ~455m north of center.
	near := orb.Point{77.2090, 28.6180}
	d := Distance(near, center)
	assert.InDelta(t, 455, d, 5)

	// ~678m north of center.
	far := orb.Point{77.2090, 28.6200}
	d = Distance(far, center)
	assert.InDelta(t, 678, d, 5)
}

func TestDistance_Symmetric(t *testing.T) {
	p := orb.Point{77.2150, 28.6200}
	assert.InDelta(t, Distance(center, p), Distance(p, center), 1e-9)
}

func TestIsInside_BoundaryInclusive(t *testing.T) {
	p := orb.Point{77.2090, 28.6180} // ~455m away
	radius := Distance(p, center)

	assert.True(t, IsInside(p, center, radius), "point exactly on the boundary is inside")
	assert.True(t, IsInside(p, center, radius+0.001))
	assert.False(t, IsInside(p, center, radius-0.001))
}

func TestIsInside_FixedRadiusFence(t *testing.T) {
	// 500m fence around Connaught Place.
	assert.True(t, IsInside(orb.Point{77.2090, 28.6180}, center, 500))
	assert.False(t, IsInside(orb.Point{77.2090, 28.6200}, center, 500))
}
