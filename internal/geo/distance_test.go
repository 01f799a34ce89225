package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistance(t *testing.T) {
	// Same point.
	assert.InDelta(t, 0, Distance(1.3521, 103.8198, 1.3521, 103.8198), 0.0001)

	// Singapore city centre to Changi Airport, roughly 17.6 km.
	assert.InDelta(t, 17.6, Distance(1.3521, 103.8198, 1.3644, 103.9915), 0.5)

	// Singapore to Kuala Lumpur, roughly 316 km.
	assert.InDelta(t, 316, Distance(1.3521, 103.8198, 3.1390, 101.6869), 5)

	// Symmetry.
	forward := Distance(1.30, 103.80, 1.40, 103.90)
	backward := Distance(1.40, 103.90, 1.30, 103.80)
	assert.InDelta(t, forward, backward, 0.0001)
}

func TestDistanceSmallOffsets(t *testing.T) {
	// 0.01 degrees of latitude is about 1.11 km anywhere on the globe.
	d := Distance(1.30, 103.80, 1.31, 103.80)
	assert.InDelta(t, 1.11, d, 0.02)
}
