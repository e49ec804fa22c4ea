package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatDistance(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "0 m", FormatDistance(0))
	assert.Equal(t, "455 m", FormatDistance(455.2))
	assert.Equal(t, "999 m", FormatDistance(999.4))
	assert.Equal(t, "1.0 km", FormatDistance(1000))
	assert.Equal(t, "1.2 km", FormatDistance(1234))
	assert.Equal(t, "5.0 km", FormatDistance(5000))
}

func TestFormatDuration(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "45s", FormatDuration(45*time.Second))
	assert.Equal(t, "5m10s", FormatDuration(5*time.Minute+10*time.Second))
	assert.Equal(t, "1h30m", FormatDuration(90*time.Minute))
	assert.Equal(t, "6h0m", FormatDuration(6*time.Hour))
	assert.Equal(t, "24h0m", FormatDuration(24*time.Hour))
}
