package decode

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/lumetric/lockbox-go/internal/errors"
)

// magnitudes maps a trailing letter on a numeric reply to its multiplier.
// Case matters: "m" is milli, "M" is mega.
var magnitudes = map[byte]float64{
	'm': 1e-3,
	'u': 1e-6,
	'n': 1e-9,
	'k': 1e3,
	'M': 1e6,
	'G': 1e9,
}

// Numeric parses a scalar reply into a float64, applying an SI magnitude
// suffix if present.
//
// Plain numeric forms, including signs and exponents, parse directly and
// never reach the suffix logic, so exponent markers cannot be mistaken for
// magnitude letters. An empty or otherwise unparseable reply yields an
// InvalidResponseError carrying the offending text.
func Numeric(text string) (float64, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return 0, &errors.InvalidResponseError{
			Text: text,
			Err:  fmt.Errorf("empty reply"),
		}
	}

	if v, err := strconv.ParseFloat(trimmed, 64); err == nil {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, &errors.InvalidResponseError{
				Text: text,
				Err:  fmt.Errorf("non-finite value"),
			}
		}
		return v, nil
	}

	// A single trailing non-digit may be a magnitude suffix.
	if len(trimmed) > 1 {
		if mult, ok := magnitudes[trimmed[len(trimmed)-1]]; ok {
			if v, err := strconv.ParseFloat(trimmed[:len(trimmed)-1], 64); err == nil {
				return v * mult, nil
			}
		}
	}

	return 0, &errors.InvalidResponseError{
		Text: text,
		Err:  fmt.Errorf("not a numeric reply"),
	}
}
