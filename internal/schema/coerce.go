package schema

import (
	"math"
	"strconv"
	"strings"

	"adlens/domain/core"
)

// currencyMarkers are stripped before numeric parsing. Exports frequently
// carry formatted money columns ("$1,234.50", "(12.00)").
var currencyMarkers = []string{"$", "€", "£", "¥", "USD", "EUR", "GBP", "%"}

// parseNumber coerces a raw cell into a nullable numeric. Anything that
// does not survive cleanup parses to undefined, never to zero and never to
// an error: a bad cell must stay visible as "no data" downstream.
func parseNumber(raw string) core.Number {
	cleaned := strings.TrimSpace(raw)
	if cleaned == "" {
		return core.None()
	}

	// Accounting notation: (123.45) means -123.45.
	negative := false
	if strings.HasPrefix(cleaned, "(") && strings.HasSuffix(cleaned, ")") {
		cleaned = strings.TrimSuffix(strings.TrimPrefix(cleaned, "("), ")")
		negative = true
	}

	for _, marker := range currencyMarkers {
		cleaned = strings.ReplaceAll(cleaned, marker, "")
	}

	// Thousands separators.
	cleaned = strings.ReplaceAll(cleaned, ",", "")
	cleaned = strings.ReplaceAll(cleaned, " ", "")

	if cleaned == "" {
		return core.None()
	}
	if negative {
		cleaned = "-" + cleaned
	}

	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
		return core.None()
	}
	return core.Num(v)
}

// parseDate coerces a raw cell into a nullable calendar day.
func parseDate(raw string) *core.Date {
	d, ok := core.ParseDate(raw)
	if !ok {
		return nil
	}
	return &d
}
