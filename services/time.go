package services

import "time"

// Accepted layouts for stored date strings, tried in order. Timestamps the
// site writes itself use RFC 3339; the other layouts cover hand-entered
// event dates and data imported from older deployments.
var dateLayouts = []string{
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
}

// parseFlexibleTime tries each accepted layout; nil means undated.
// Zone-less values are wall-clock times in the server's zone, so comparing
// them against time.Now() splits events where a visitor would expect.
// Layouts with an explicit offset (RFC 3339) keep it.
func parseFlexibleTime(value string) *time.Time {
	if value == "" {
		return nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, value, time.Local); err == nil {
			return &t
		}
	}
	return nil
}

func nowISO() string {
	return time.Now().UTC().Format(time.RFC3339)
}
