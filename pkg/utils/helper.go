package utils

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/aws/aws-lambda-go/events"
)

const (
	DateLayout      = "2006-01-02"
	TimestampLayout = "2006-01-02T15:04:05.999999"

	secondsPerDay = 24 * 60 * 60
)

var dateLayouts = []string{
	DateLayout,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04:05.999999999",
	time.RFC3339,
	time.RFC3339Nano,
	"2006-01-02 15:04:05",
}

// ParseOptionalInt parses an optional query value. Empty means absent.
func ParseOptionalInt(value string) (*int64, error) {
	if value == "" {
		return nil, nil
	}

	result, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid integer %q: %w", value, err)
	}

	return &result, nil
}

// ParseDate accepts a bare date or an ISO-8601 date-time and keeps only the calendar date.
func ParseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q", value)
}

// CountNights returns the calendar-day difference checkOut - checkIn.
// The result is zero or negative when checkOut is not after checkIn.
func CountNights(checkIn, checkOut time.Time) int {
	in := time.Date(checkIn.Year(), checkIn.Month(), checkIn.Day(), 0, 0, 0, 0, time.UTC)
	out := time.Date(checkOut.Year(), checkOut.Month(), checkOut.Day(), 0, 0, 0, 0, time.UTC)
	return int((out.Unix() - in.Unix()) / secondsPerDay)
}

// RequestBody returns the raw request body, decoding it when the gateway marked it base64.
// An empty body reads as "{}".
func RequestBody(req events.APIGatewayProxyRequest) ([]byte, error) {
	body := req.Body
	if req.IsBase64Encoded && body != "" {
		decoded, err := base64.StdEncoding.DecodeString(body)
		if err != nil {
			return nil, fmt.Errorf("decode base64 body: %w", err)
		}
		body = string(decoded)
	}

	if strings.TrimSpace(body) == "" {
		return []byte("{}"), nil
	}
	return []byte(body), nil
}
