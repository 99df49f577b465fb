package dto

import "time"

const fechaLayout = "2006-01-02"

// ParseFecha parses the YYYY-MM-DD dates used across the API.
func ParseFecha(s string) (time.Time, error) {
	return time.Parse(fechaLayout, s)
}

func formatFecha(t time.Time) string {
	return t.Format(fechaLayout)
}

func formatFechaPtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(fechaLayout)
	return &s
}

func formatTimestamp(t time.Time) string {
	return t.Format(time.RFC3339)
}
