// Package numfmt renders numbers for the terminal and for the history file.
// Formatting never changes stored or returned values.
package numfmt

import (
	"fmt"
	"math"
	"strconv"
)

// Display renders v for humans: "0" for zero, up to six significant digits
// for magnitudes in [1e-6, 1e6), and two-digit scientific notation otherwise.
func Display(v float64) string {
	if v == 0 {
		return "0"
	}
	if a := math.Abs(v); a < 1e-6 || a >= 1e6 {
		return fmt.Sprintf("%.2e", v)
	}
	return fmt.Sprintf("%.6g", v)
}

// Record renders v with up to eight significant digits, the precision of
// the history file and the CSV export.
func Record(v float64) string {
	return fmt.Sprintf("%.8g", v)
}

// Parse reads a finite decimal number, rejecting NaN and infinities.
func Parse(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%q is not a finite number", s)
	}
	return v, nil
}
