package helper

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ParseAllottedTime parses a "HH:MM:SS" quiz duration into a time.Duration.
// "MM:SS" is accepted as a short form.
func ParseAllottedTime(s string) (time.Duration, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) < 2 || len(parts) > 3 {
		return 0, fmt.Errorf("invalid duration %q, expected HH:MM:SS", s)
	}
	if len(parts) == 2 {
		parts = append([]string{"0"}, parts...)
	}

	nums := make([]int, 3)
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil || n < 0 {
			return 0, fmt.Errorf("invalid duration %q, expected HH:MM:SS", s)
		}
		nums[i] = n
	}
	if nums[1] > 59 || nums[2] > 59 {
		return 0, fmt.Errorf("invalid duration %q, minutes/seconds out of range", s)
	}

	d := time.Duration(nums[0])*time.Hour +
		time.Duration(nums[1])*time.Minute +
		time.Duration(nums[2])*time.Second
	if d == 0 {
		return 0, fmt.Errorf("duration must be greater than zero")
	}
	return d, nil
}

// FormatAllottedTime renders a second count back to "HH:MM:SS".
func FormatAllottedTime(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	h := seconds / 3600
	m := (seconds % 3600) / 60
	s := seconds % 60
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}
