package services

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// FormatUSD renders a balance the way the dashboard displays it:
// dollar sign, thousands separators, two decimal places.
func FormatUSD(amount float64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}

	s := fmt.Sprintf("%.2f", amount)
	parts := strings.SplitN(s, ".", 2)

	intPart := parts[0]
	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}

	return sign + "$" + b.String() + "." + parts[1]
}

// newReference issues an opaque user-facing reference like DEP-3F9A21C4D0.
func newReference(prefix string) string {
	hex := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
	return prefix + "-" + hex[:10]
}
