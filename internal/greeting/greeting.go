// Package greeting builds the text shown by the development studio check.
package greeting

import (
	"strconv"
	"strings"
)

const (
	// Banner is the first line printed by the report.
	Banner = "Hello from Development Studio!"

	// DefaultName is the subject greeted by the report.
	DefaultName = "Developer"

	// SquaresUpTo is the upper bound of the squared sequence.
	SquaresUpTo = 5
)

// Greet returns the welcome message for name. The name is used verbatim.
func Greet(name string) string {
	return "Hello, " + name + "! Welcome to the Development Studio."
}

// Squares returns the squares of 1 through n, in order.
func Squares(n int) []int {
	if n <= 0 {
		return []int{}
	}
	out := make([]int, 0, n)
	for i := 1; i <= n; i++ {
		out = append(out, i*i)
	}
	return out
}

// FormatInts renders values as a bracketed, comma-separated list,
// e.g. "[1, 4, 9]".
func FormatInts(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
