package application

import (
	"fmt"
	"strings"
	"time"

	bookingDomain "github.com/lakeside-retreat/service-booking/internal/domain/booking"
)

const dateLayout = "2006-01-02"

// parseStayDate accepts an ISO date ("2024-06-01") or a full RFC 3339 timestamp.
func parseStayDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(dateLayout, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q", s)
	}
	return t.UTC(), nil
}

// formatStayDate renders midnight-UTC values as plain dates.
func formatStayDate(t time.Time) string {
	t = t.UTC()
	if t.Equal(t.Truncate(24 * time.Hour)) {
		return t.Format(dateLayout)
	}
	return t.Format(time.RFC3339)
}

func parseStayWindow(checkIn, checkOut string) (time.Time, time.Time, error) {
	var missing, invalid []string
	if strings.TrimSpace(checkIn) == "" {
		missing = append(missing, "checkIn")
	}
	if strings.TrimSpace(checkOut) == "" {
		missing = append(missing, "checkOut")
	}
	if len(missing) > 0 {
		return time.Time{}, time.Time{}, &bookingDomain.ValidationError{Missing: missing}
	}

	in, err := parseStayDate(checkIn)
	if err != nil {
		invalid = append(invalid, "checkIn")
	}
	out, err := parseStayDate(checkOut)
	if err != nil {
		invalid = append(invalid, "checkOut")
	}
	if len(invalid) > 0 {
		return time.Time{}, time.Time{}, &bookingDomain.ValidationError{Invalid: invalid}
	}
	return in, out, nil
}
