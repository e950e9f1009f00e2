package domain

import "fmt"

// FormatDuration renders a non-negative duration in milliseconds as a
// zero-padded clock label: "HH:MM:SS" when there is at least one full
// hour, "MM:SS" otherwise. Negative input is rejected.
func FormatDuration(ms int64) (string, error) {
	if ms < 0 {
		return "", &ValidationError{Input: fmt.Sprintf("%d", ms), Reason: "duration must not be negative"}
	}

	seconds := ms / 1000
	h := seconds / 3600
	m := (seconds % 3600) / 60
	s := seconds % 60

	if h > 0 {
		return fmt.Sprintf("%02d:%02d:%02d", h, m, s), nil
	}
	return fmt.Sprintf("%02d:%02d", m, s), nil
}
