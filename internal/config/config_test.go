package config_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/tartampluch/go-monthgrid/internal/config"
)

// TestConstants_Integrity ensures critical constants are not empty or malformed.
func TestConstants_Integrity(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{"AppName", config.AppName},
		{"AppID", config.AppID},
		{"Version", config.Version},
		{"ICalVersion", config.ICalVersion},
		{"ICalProdid", config.ICalProdid},
		{"DefaultLanguage", config.DefaultLanguage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotEmpty(t, tt.value, "Critical constant %s should not be empty", tt.name)
		})
	}
}

// TestGridConstants_Sanity checks that the grid always has room for the longest month.
func TestGridConstants_Sanity(t *testing.T) {
	assert.Equal(t, 7, config.DaysInWeek)
	assert.Equal(t, 6, config.MaxWeeksInMonth)

	// A 31 day month starting on the last column needs 6 full rows.
	assert.GreaterOrEqual(t, config.DaysInWeek*config.MaxWeeksInMonth, config.MaxDaysInMonth+config.DaysInWeek-1)
}

// TestDesiredMetrics_Sanity ensures the default selector fits inside a default cell.
func TestDesiredMetrics_Sanity(t *testing.T) {
	assert.Greater(t, config.DefaultDayHeight, 0)
	assert.Greater(t, config.DefaultCellWidth, 0)
	assert.LessOrEqual(t, config.DefaultSelectorRadius*2, config.DefaultDayHeight)
	assert.LessOrEqual(t, config.DefaultSelectorRadius*2, config.DefaultCellWidth)
}

// TestStubCalendar_Format ensures the stub feed is a well-formed VCALENDAR.
func TestStubCalendar_Format(t *testing.T) {
	assert.True(t, strings.HasPrefix(config.StubVCalendar, "BEGIN:VCALENDAR\r\n"))
	assert.True(t, strings.HasSuffix(config.StubVCalendar, "END:VCALENDAR\r\n"))
	assert.Contains(t, config.StubVCalendar, config.ICalProdid)
}

// TestTimeouts ensures that operational constraints are reasonable.
func TestTimeouts(t *testing.T) {
	t.Parallel()

	assert.Greater(t, config.ShutdownTimeout, 0*time.Second, "ShutdownTimeout must be positive")
	assert.LessOrEqual(t, config.ShutdownTimeout, 30*time.Second)
	assert.Less(t, config.MinPort, config.MaxPort)
}
