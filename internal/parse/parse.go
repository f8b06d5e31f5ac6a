// Package parse turns the free-form text of the input fields into integers.
package parse

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

var (
	// ErrInvalidTarget indicates a target that is not an optionally signed integer.
	ErrInvalidTarget = errors.New("parse: invalid target")

	// ErrNoNumbers indicates array text with no digit runs in it.
	ErrNoNumbers = errors.New("parse: no numbers in input")
)

var (
	numberRun = regexp.MustCompile(`-*\d+`)
	signedInt = regexp.MustCompile(`^-?\d+$`)
)

// Ints extracts every run of digits from text. A run preceded by exactly one
// minus sign is negative; a run preceded by several minus signs keeps only
// its digits. All other characters are dropped. Ints never fails.
func Ints(text string) []int {
	matches := numberRun.FindAllString(text, -1)
	out := make([]int, 0, len(matches))
	for _, m := range matches {
		digits := strings.TrimLeft(m, "-")
		if len(m)-len(digits) == 1 {
			digits = "-" + digits
		}
		out = append(out, atoiClamped(digits))
	}
	return out
}

// Target validates the target field. An empty field reports ok == false
// without an error so the caller can treat it as a no-op.
func Target(text string) (value int, ok bool, err error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0, false, nil
	}
	if !signedInt.MatchString(text) {
		return 0, false, fmt.Errorf("%w: %q", ErrInvalidTarget, text)
	}
	v, err := strconv.Atoi(text)
	if err != nil {
		return 0, false, fmt.Errorf("%w: %q out of range", ErrInvalidTarget, text)
	}
	return v, true, nil
}

// Array parses the array field and returns its values sorted ascending.
func Array(text string) (values []int, ok bool, err error) {
	if strings.TrimSpace(text) == "" {
		return nil, false, nil
	}
	values = Ints(text)
	if len(values) == 0 {
		return nil, false, fmt.Errorf("%w: %q", ErrNoNumbers, text)
	}
	sort.Ints(values)
	return values, true, nil
}

// Join renders values the way the array field expects them.
func Join(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ",")
}

func atoiClamped(s string) int {
	v, err := strconv.ParseInt(s, 10, 0)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0
	}
	return int(v)
}
