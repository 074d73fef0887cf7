package config

import (
	"fmt"
	"strings"
	"time"
)

// SchedulerConfig holds score sync scheduler configuration.
//
// The scheduler only fires inside the configured game window: on one of
// ActiveDays, between ActiveStartHour and ActiveEndHour (local time).
type SchedulerConfig struct {
	// Enabled turns the background sync loop on or off.
	Enabled bool
	// Interval is the tick interval inside the game window.
	Interval time.Duration
	// ActiveDays are the weekdays on which games are played.
	ActiveDays []time.Weekday
	// ActiveStartHour is the first hour (0-23) of the game window.
	ActiveStartHour int
	// ActiveEndHour is the last hour (0-23, exclusive) of the game window.
	ActiveEndHour int
}

// LoadSchedulerConfigFromEnv loads scheduler configuration from environment variables.
func LoadSchedulerConfigFromEnv() SchedulerConfig {
	return SchedulerConfig{
		Enabled:         GetEnvBool("SCHEDULER_ENABLED", true),
		Interval:        GetEnvDuration("SCHEDULER_INTERVAL", 5*time.Minute),
		ActiveDays:      parseWeekdays(GetEnv("SCHEDULER_ACTIVE_DAYS", "Thu,Sun,Mon")),
		ActiveStartHour: GetEnvInt("SCHEDULER_ACTIVE_START_HOUR", 9),
		ActiveEndHour:   GetEnvInt("SCHEDULER_ACTIVE_END_HOUR", 23),
	}
}

// Validate validates scheduler configuration.
func (c SchedulerConfig) Validate() error {
	if c.Interval <= 0 {
		return fmt.Errorf("Interval must be greater than 0")
	}
	if c.ActiveStartHour < 0 || c.ActiveStartHour > 23 {
		return fmt.Errorf("ActiveStartHour must be between 0 and 23")
	}
	if c.ActiveEndHour < 0 || c.ActiveEndHour > 23 {
		return fmt.Errorf("ActiveEndHour must be between 0 and 23")
	}
	if c.ActiveStartHour >= c.ActiveEndHour {
		return fmt.Errorf("ActiveStartHour (%d) must be before ActiveEndHour (%d)",
			c.ActiveStartHour, c.ActiveEndHour)
	}
	if c.Enabled && len(c.ActiveDays) == 0 {
		return fmt.Errorf("ActiveDays must not be empty when the scheduler is enabled")
	}
	return nil
}

// InWindow reports whether t falls inside the configured game window.
func (c SchedulerConfig) InWindow(t time.Time) bool {
	dayMatch := false
	for _, day := range c.ActiveDays {
		if t.Weekday() == day {
			dayMatch = true
			break
		}
	}
	if !dayMatch {
		return false
	}
	return t.Hour() >= c.ActiveStartHour && t.Hour() < c.ActiveEndHour
}

var weekdayNames = map[string]time.Weekday{
	"sun": time.Sunday,
	"mon": time.Monday,
	"tue": time.Tuesday,
	"wed": time.Wednesday,
	"thu": time.Thursday,
	"fri": time.Friday,
	"sat": time.Saturday,
}

// parseWeekdays parses a comma-separated weekday list ("Thu,Sun,Mon").
// Unknown names are skipped.
func parseWeekdays(value string) []time.Weekday {
	var days []time.Weekday
	for _, part := range strings.Split(value, ",") {
		name := strings.ToLower(strings.TrimSpace(part))
		if len(name) > 3 {
			name = name[:3]
		}
		if day, ok := weekdayNames[name]; ok {
			days = append(days, day)
		}
	}
	return days
}
