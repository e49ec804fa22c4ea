package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTimeOfDayBucket(t *testing.T) {
	at := func(hour int) time.Time {
		return time.Date(2026, 3, 14, hour, 30, 0, 0, time.UTC)
	}

	assert.Equal(t, TimeNight, TimeOfDayBucket(at(0)))
	assert.Equal(t, TimeNight, TimeOfDayBucket(at(4)))
	assert.Equal(t, TimeMorning, TimeOfDayBucket(at(5)))
	assert.Equal(t, TimeMorning, TimeOfDayBucket(at(11)))
	assert.Equal(t, TimeAfternoon, TimeOfDayBucket(at(12)))
	assert.Equal(t, TimeAfternoon, TimeOfDayBucket(at(16)))
	assert.Equal(t, TimeEvening, TimeOfDayBucket(at(17)))
	assert.Equal(t, TimeEvening, TimeOfDayBucket(at(20)))
	assert.Equal(t, TimeNight, TimeOfDayBucket(at(21)))
	assert.Equal(t, TimeNight, TimeOfDayBucket(at(23)))
}
