package main

import (
	"fmt"
	"strconv"
	"strings"
)

// parseScaledInt parses an integer flag accepting a K/M/B scale suffix,
// e.g. "150K" == 150000, "2M" == 2000000, "1B" == 1000000000.
func parseScaledInt(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty integer")
	}
	mult := 1
	switch last := s[len(s)-1]; last {
	case 'k', 'K':
		mult = 1_000
		s = s[:len(s)-1]
	case 'm', 'M':
		mult = 1_000_000
		s = s[:len(s)-1]
	case 'b', 'B':
		mult = 1_000_000_000
		s = s[:len(s)-1]
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid integer %q: %w", s, err)
	}
	return int(v * float64(mult)), nil
}
