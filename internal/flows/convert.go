package flows

import (
	"strings"

	"github.com/shopspring/decimal"
)

// conversionPlaces is the number of decimal places a converted
// currency-unit amount is rounded to at submission time.
const conversionPlaces = 8

// ConvertAmount converts a USD amount string into a currency-unit amount
// at the given USD-per-unit rate, formatted to 8 decimal places.
// Returns the empty string when the amount is empty or non-numeric, or the
// rate is non-positive; never "0" or "NaN".
func ConvertAmount(usdAmount string, rate float64) string {
	usdAmount = strings.TrimSpace(usdAmount)
	if usdAmount == "" || rate <= 0 {
		return ""
	}

	usd, err := decimal.NewFromString(usdAmount)
	if err != nil {
		return ""
	}

	return usd.DivRound(decimal.NewFromFloat(rate), conversionPlaces).StringFixed(conversionPlaces)
}
