package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDurationCategory_Valid(t *testing.T) {
	assert.True(t, Duration6h.Valid())
	assert.True(t, Duration12h.Valid())
	assert.True(t, Duration24h.Valid())

	assert.False(t, DurationCategory(0).Valid())
	assert.False(t, DurationCategory(8).Valid())
	assert.False(t, DurationCategory(-6).Valid())
}

func TestDurationCategory_Hours(t *testing.T) {
	assert.Equal(t, 6*time.Hour, Duration6h.Hours())
	assert.Equal(t, 24*time.Hour, Duration24h.Hours())
}

func TestGeofence_Expired(t *testing.T) {
	now := time.Now()
	fence := &Geofence{ExpiresAt: now}

	assert.False(t, fence.Expired(now.Add(-time.Second)))
	// Expiry is inclusive.
	assert.True(t, fence.Expired(now))
	assert.True(t, fence.Expired(now.Add(time.Second)))
}
