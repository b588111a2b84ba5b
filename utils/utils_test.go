package utils

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDay(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  time.Time
	}{
		{"date only", "2024-06-01", time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)},
		{"rfc3339 drops time of day", "2024-06-01T17:45:00Z", time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)},
		{"surrounding spaces", " 2024-12-31 ", time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDay(tt.input)
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "got %s", got)
		})
	}

	_, err := ParseDay("01/06/2024")
	assert.Error(t, err)
}

func TestParseSlotLabel(t *testing.T) {
	start, end, err := ParseSlotLabel("09:30-10:15")
	require.NoError(t, err)
	assert.Equal(t, 9*time.Hour+30*time.Minute, start)
	assert.Equal(t, 10*time.Hour+15*time.Minute, end)

	for _, bad := range []string{"", "09:00", "10:00-09:00", "9am-10am", "10:00-10:00"} {
		_, _, err := ParseSlotLabel(bad)
		var appErr *AppError
		require.True(t, errors.As(err, &appErr), "label %q", bad)
		assert.Equal(t, KindValidation, appErr.Kind)
	}
}

func TestNormalizeSlotLabels(t *testing.T) {
	got, err := NormalizeSlotLabels([]string{"10:00-11:00", "9:00 - 10:00", "10:00-11:00"})
	require.NoError(t, err)
	assert.Equal(t, []string{"10:00-11:00", "09:00-10:00"}, got)

	_, err = NormalizeSlotLabels([]string{"10:00-11:00", "oops"})
	assert.Error(t, err)
}

func TestMakeURL(t *testing.T) {
	assert.Equal(t, "", MakeURL("  ", "linkedin.com/in/"))
	assert.Equal(t, "https://www.linkedin.com/in/jane", MakeURL("https://www.linkedin.com/in/jane", "linkedin.com/in/"))
	assert.Equal(t, "https://www.linkedin.com/in/jane", MakeURL("linkedin.com/in/jane", "linkedin.com/in/"))
	assert.Equal(t, "https://www.linkedin.com/in/jane_doe", MakeURL("jane doe", "linkedin.com/in/"))
}
