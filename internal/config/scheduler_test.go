package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestInWindow(t *testing.T) {
	cfg := SchedulerConfig{
		Enabled:         true,
		Interval:        time.Minute,
		ActiveDays:      []time.Weekday{time.Sunday, time.Monday},
		ActiveStartHour: 9,
		ActiveEndHour:   23,
	}

	// 2025-10-19 is a Sunday.
	sunday := time.Date(2025, 10, 19, 13, 0, 0, 0, time.UTC)
	assert.True(t, cfg.InWindow(sunday))

	beforeWindow := time.Date(2025, 10, 19, 8, 59, 0, 0, time.UTC)
	assert.False(t, cfg.InWindow(beforeWindow))

	// End hour is exclusive.
	atEnd := time.Date(2025, 10, 19, 23, 0, 0, 0, time.UTC)
	assert.False(t, cfg.InWindow(atEnd))

	tuesday := time.Date(2025, 10, 21, 13, 0, 0, 0, time.UTC)
	assert.False(t, cfg.InWindow(tuesday))
}

func TestParseWeekdays(t *testing.T) {
	days := parseWeekdays("Thu,Sun,Mon")
	assert.Equal(t, []time.Weekday{time.Thursday, time.Sunday, time.Monday}, days)

	// Full names and stray spaces are tolerated, junk is skipped.
	days = parseWeekdays(" thursday , SUNDAY, nope")
	assert.Equal(t, []time.Weekday{time.Thursday, time.Sunday}, days)

	assert.Empty(t, parseWeekdays(""))
}

func TestSchedulerConfigValidate(t *testing.T) {
	valid := SchedulerConfig{
		Enabled:         true,
		Interval:        time.Minute,
		ActiveDays:      []time.Weekday{time.Sunday},
		ActiveStartHour: 9,
		ActiveEndHour:   23,
	}
	assert.NoError(t, valid.Validate())

	noDays := valid
	noDays.ActiveDays = nil
	assert.Error(t, noDays.Validate())

	badHours := valid
	badHours.ActiveStartHour = 23
	badHours.ActiveEndHour = 9
	assert.Error(t, badHours.Validate())

	badInterval := valid
	badInterval.Interval = 0
	assert.Error(t, badInterval.Validate())
}
