package utils

import (
	"net/url"
	"reflect"
	"runtime"
	"strings"
	"time"

	"golang.org/x/exp/slices"
)

const (
	DateLayout = time.DateOnly
	TimeLayout = "15:04"
	Day        = 24 * time.Hour
)

func MakeURL(text string, urlPrefix string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}
	if _, err := url.ParseRequestURI(text); err == nil {
		return text
	}
	if strings.HasPrefix(text, "www.") {
		return "https://" + text
	}
	if strings.HasPrefix(text, urlPrefix) {
		return "https://www." + text
	}

	return "https://www." + urlPrefix + strings.ReplaceAll(text, " ", "_")
}

// ParseDay reads "2006-01-02" or an RFC3339 timestamp and returns UTC midnight of that calendar day.
func ParseDay(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		t, err = time.Parse(time.RFC3339, value)
		if err != nil {
			return time.Time{}, err
		}
	}
	return StartOfDay(t), nil
}

func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ParseSlotLabel validates a "15:04-16:04" label and returns its bounds as offsets from midnight.
func ParseSlotLabel(label string) (time.Duration, time.Duration, error) {
	from, to, ok := strings.Cut(strings.TrimSpace(label), "-")
	if !ok {
		return 0, 0, NewValidationError("Invalid time slot %q, expected HH:MM-HH:MM", label)
	}
	start, err := time.Parse(TimeLayout, strings.TrimSpace(from))
	if err != nil {
		return 0, 0, NewValidationError("Invalid time slot start %q", from)
	}
	end, err := time.Parse(TimeLayout, strings.TrimSpace(to))
	if err != nil {
		return 0, 0, NewValidationError("Invalid time slot end %q", to)
	}
	if !end.After(start) {
		return 0, 0, NewValidationError("Time slot %q ends before it starts", label)
	}
	midnight := time.Date(0, 1, 1, 0, 0, 0, 0, time.UTC)
	return start.Sub(midnight), end.Sub(midnight), nil
}

// NormalizeSlotLabels validates labels, rewrites them as "HH:MM-HH:MM" and drops duplicates, keeping order.
func NormalizeSlotLabels(labels []string) ([]string, error) {
	result := make([]string, 0, len(labels))
	for _, label := range labels {
		start, end, err := ParseSlotLabel(label)
		if err != nil {
			return nil, err
		}
		normalized := formatOffset(start) + "-" + formatOffset(end)
		if !slices.Contains(result, normalized) {
			result = append(result, normalized)
		}
	}
	return result, nil
}

func formatOffset(d time.Duration) string {
	return time.Date(0, 1, 1, 0, 0, 0, 0, time.UTC).Add(d).Format(TimeLayout)
}

func TimePtr(t time.Time) *time.Time {
	return &t
}

func GetFunctionName(i any) string {
	return runtime.FuncForPC(reflect.ValueOf(i).Pointer()).Name()
}
