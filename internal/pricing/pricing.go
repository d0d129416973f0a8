// Package pricing computes event quotes and renders INR amounts. All
// functions are pure: totals are derived from current selections and never
// stored authoritatively.
package pricing

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/spec-kit/event-service/internal/domain"
)

// Quote returns package cost plus venue rent for the current selection.
// Either selection may be nil; nothing selected yields zero.
func Quote(pkg *domain.Package, venue *domain.Venue, guests int) decimal.Decimal {
	total := decimal.Zero
	if pkg != nil {
		total = total.Add(pkg.Cost(guests))
	}
	if venue != nil {
		total = total.Add(venue.BaseRent)
	}
	return total
}

// VendorLine is a vendor assignment contributing to an event total.
type VendorLine struct {
	Assignment    domain.EventVendor
	StandardPrice decimal.Decimal
}

// EventTotal extends Quote with vendor line totals.
func EventTotal(pkg *domain.Package, venue *domain.Venue, guests int, vendors []VendorLine) decimal.Decimal {
	total := Quote(pkg, venue, guests)
	for i := range vendors {
		total = total.Add(vendors[i].Assignment.LineTotal(vendors[i].StandardPrice))
	}
	return total
}

// FormatINR renders an amount as rupees with two decimals and Indian digit
// grouping, e.g. 80000 -> "₹80,000.00" and 125000 -> "₹1,25,000.00".
func FormatINR(amount decimal.Decimal) string {
	fixed := amount.StringFixed(2)

	negative := strings.HasPrefix(fixed, "-")
	if negative {
		fixed = fixed[1:]
	}

	intPart, fracPart, _ := strings.Cut(fixed, ".")

	var b strings.Builder
	if negative {
		b.WriteByte('-')
	}
	b.WriteString("₹")
	b.WriteString(groupIndian(intPart))
	b.WriteByte('.')
	b.WriteString(fracPart)
	return b.String()
}

// groupIndian inserts commas after the last three digits and then every two,
// per the en-IN convention.
func groupIndian(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	head := digits[:len(digits)-3]
	tail := digits[len(digits)-3:]

	var groups []string
	for len(head) > 2 {
		groups = append([]string{head[len(head)-2:]}, groups...)
		head = head[:len(head)-2]
	}
	if head != "" {
		groups = append([]string{head}, groups...)
	}
	groups = append(groups, tail)
	return strings.Join(groups, ",")
}
