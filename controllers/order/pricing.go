package orderControllers

import (
	"fmt"
	"math"
	"math/rand"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/yosergargouri/boutique-api/models"
)

var currencySuffix = regexp.MustCompile(`(?i)\s*DTN\s*`)

// ParsePrice turns a display price like "120,50 DTN" into its numeric value.
// Anything unparseable yields 0 so a bad legacy price never blocks checkout.
func ParsePrice(value string) float64 {
	cleaned := currencySuffix.ReplaceAllString(value, "")
	cleaned = strings.ReplaceAll(cleaned, ",", ".")
	cleaned = strings.TrimSpace(cleaned)
	n, err := strconv.ParseFloat(cleaned, 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
		return 0
	}
	return n
}

// BuildNumeroCommande generates a human-readable order number, e.g.
// CMD-20251226-123456-4821. The random suffix is a display convenience; the
// database id is what actually identifies the order.
func BuildNumeroCommande() string {
	now := time.Now()
	suffix := rand.Intn(9000) + 1000
	return fmt.Sprintf("CMD-%s-%s-%d", now.Format("20060102"), now.Format("150405"), suffix)
}

// ComputeTotals sums price_number × quantity over the snapshot and adds the
// shipping fee.
func ComputeTotals(items []models.SnapshotItem, fraisLivraison decimal.Decimal) (sousTotal, total decimal.Decimal) {
	sousTotal = decimal.Zero
	for _, item := range items {
		q := item.Quantity
		if q < 1 {
			q = 1
		}
		line := decimal.NewFromFloat(item.PriceNumber).Mul(decimal.NewFromInt(int64(q)))
		sousTotal = sousTotal.Add(line)
	}
	return sousTotal, sousTotal.Add(fraisLivraison)
}

// NormalizeFee guards a configured shipping fee: it must be finite and
// non-negative, anything else becomes 0.
func NormalizeFee(fee *float64) decimal.Decimal {
	if fee == nil {
		return decimal.Zero
	}
	v := *fee
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return decimal.Zero
	}
	return decimal.NewFromFloat(v)
}
