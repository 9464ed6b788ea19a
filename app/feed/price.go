package feed

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Discount percentages outside this range are treated as data-entry
// artifacts (a nominal 0.01 "old price" would otherwise yield a 99%+
// discount) and rejected.
const (
	MinDiscount = 1
	MaxDiscount = 90
)

// Candidate keys for the current (sale) price, promo fields first, and for
// the pre-discount price. Several partial or stale "was price" fields may
// appear at once; the largest one is taken as the pre-discount price.
var (
	currentPriceKeys = []string{
		"sale_price", "price_vat", "price_with_vat", "price_final", "price_huf",
		"price", "price_amount", "current_price", "amount",
	}
	originalPriceKeys = []string{
		"old_price", "price_before", "was_price", "list_price", "regular_price", "old_price_vat",
	}
	discountKeys = []string{"discount", "discount_percent", "discount_percentage"}
)

var nonPriceChars = regexp.MustCompile(`[^\d.,-]`)
var nonDigits = regexp.MustCompile(`[^\d]`)

// NormalizePrice parses a free-form price value into a whole amount.
// Numbers pass through rounded; strings are stripped down to digits, comma,
// period and minus, with comma treated as the decimal separator. Returns
// nil for empty, zero or unparseable input.
func NormalizePrice(v any) *int {
	switch val := v.(type) {
	case nil:
		return nil
	case float64:
		return positiveInt(int(math.Round(val)))
	case int:
		return positiveInt(val)
	case string:
		s := strings.ReplaceAll(nonPriceChars.ReplaceAllString(val, ""), " ", "")
		if s == "" || s == "-" {
			return nil
		}
		f, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", "."), 64)
		if err == nil {
			return positiveInt(int(math.Round(f)))
		}
		digits := nonDigits.ReplaceAllString(val, "")
		if digits == "" {
			return nil
		}
		n, err := strconv.Atoi(digits)
		if err != nil {
			return nil
		}
		return positiveInt(n)
	default:
		return nil
	}
}

func positiveInt(n int) *int {
	if n <= 0 {
		return nil
	}
	return &n
}

// Prices is the resolved price triple of one item.
type Prices struct {
	Current  *int
	Original *int
	Discount *int
}

// ResolvePrices determines current price, pre-discount price and discount
// percent from a raw record.
//
// The current price is the first parseable candidate, sale fields first.
// The original price is the maximum across all "was price" candidates. An
// explicit feed discount wins over a computed one; either way the result is
// accepted only within [MinDiscount, MaxDiscount]. The original price is
// dropped when it does not exceed the current price, so current <= original
// holds by construction whenever both survive.
func ResolvePrices(raw RawItem) Prices {
	var p Prices

	for _, key := range currentPriceKeys {
		if v := NormalizePrice(raw.FirstRaw(key)); v != nil {
			p.Current = v
			break
		}
	}

	for _, key := range originalPriceKeys {
		v := NormalizePrice(raw.FirstRaw(key))
		if v == nil {
			continue
		}
		if p.Original == nil || *v > *p.Original {
			p.Original = v
		}
	}

	if p.Current != nil && p.Original != nil && *p.Original <= *p.Current {
		p.Original = nil
	}

	if explicit := NormalizePrice(raw.FirstRaw(discountKeys...)); explicit != nil {
		p.Discount = boundedDiscount(*explicit)
	}

	if p.Discount == nil && p.Current != nil && p.Original != nil {
		computed := int(math.Round(100 * (1 - float64(*p.Current)/float64(*p.Original))))
		p.Discount = boundedDiscount(computed)
	}

	// back-compute the pre-discount price when the feed only supplied a
	// discount percent
	if p.Original == nil && p.Discount != nil && p.Current != nil {
		original := int(math.Round(float64(*p.Current) / (1 - float64(*p.Discount)/100)))
		if original > *p.Current {
			p.Original = &original
		}
	}

	return p
}

func boundedDiscount(d int) *int {
	if d < MinDiscount || d > MaxDiscount {
		return nil
	}
	return &d
}
