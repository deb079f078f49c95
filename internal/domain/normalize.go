package domain

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// casePreserved lists symbols returned verbatim by Normalize. Upper-casing them
// would collide with other units, e.g. m (meter) with M or L (liter) with l.
var casePreserved = map[string]struct{}{
	"m": {}, "km": {}, "cm": {}, "mm": {}, "in": {}, "ft": {}, "yd": {}, "mi": {},
	"s": {}, "min": {}, "hr": {}, "h": {}, "d": {}, "w": {}, "day": {}, "week": {},
	"L": {}, "mL": {},
	"W": {}, "kW": {}, "MW": {}, "hp": {},
	"Pa": {}, "kPa": {}, "bar": {}, "atm": {}, "psi": {},
}

// IsCasePreserved reports whether raw is on the case-preserving allow-list.
func IsCasePreserved(raw string) bool {
	_, ok := casePreserved[raw]
	return ok
}

// Normalize maps a raw user token to its canonical lookup key.
// Allow-listed symbols are returned unchanged; anything else is upper-cased
// with all whitespace removed. Normalize is idempotent.
func Normalize(raw string) string {
	if IsCasePreserved(raw) {
		return raw
	}
	upper := cases.Upper(language.Und).String(raw)
	return strings.Join(strings.Fields(upper), "")
}
