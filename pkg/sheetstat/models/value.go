package models

import (
	"math"
	"strconv"
	"strings"
)

// naTokens are the strings read as missing values by the local loaders.
var naTokens = map[string]struct{}{
	"":         {},
	"#N/A":     {},
	"#N/A N/A": {},
	"#NA":      {},
	"-1.#IND":  {},
	"-1.#QNAN": {},
	"-NaN":     {},
	"-nan":     {},
	"1.#IND":   {},
	"1.#QNAN":  {},
	"<NA>":     {},
	"N/A":      {},
	"NA":       {},
	"NULL":     {},
	"NaN":      {},
	"None":     {},
	"n/a":      {},
	"nan":      {},
	"null":     {},
}

// IsNA reports whether s is one of the recognised missing-value tokens.
func IsNA(s string) bool {
	_, ok := naTokens[strings.TrimSpace(s)]
	return ok
}

// ParseNumber parses s as a decimal float after trimming whitespace.
func ParseNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// ParseValue types a raw string: NA tokens become missing, numbers become
// numeric cells and everything else stays text.
func ParseValue(s string) Cell {
	if IsNA(s) {
		return Missing()
	}
	if f, ok := ParseNumber(s); ok {
		if math.IsNaN(f) {
			return Missing()
		}
		return Number(f)
	}
	return Text(s)
}
