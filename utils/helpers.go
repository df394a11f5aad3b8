package utils

import (
	"errors"
	"strconv"
	"strings"
)

var (
	ErrBadMMR   = errors.New("mmr must be a non-negative integer")
	ErrBadRange = errors.New("range must look like min-max with min <= max")
)

// ParseMMR parses a rating answer; negative and non-numeric input is
// rejected so the question can be asked again.
func ParseMMR(text string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil || n < 0 {
		return 0, ErrBadMMR
	}
	return n, nil
}

// ParseMMRRange parses a "min-max" filter answer, e.g. "1000-1500".
func ParseMMRRange(text string) (min, max int, err error) {
	parts := strings.SplitN(strings.TrimSpace(text), "-", 2)
	if len(parts) != 2 {
		return 0, 0, ErrBadRange
	}
	min, err = ParseMMR(parts[0])
	if err != nil {
		return 0, 0, ErrBadRange
	}
	max, err = ParseMMR(parts[1])
	if err != nil || max < min {
		return 0, 0, ErrBadRange
	}
	return min, max, nil
}
