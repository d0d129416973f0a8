package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/spec-kit/event-service/internal/domain"
)

func d(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func TestQuote_SelectionCombinations(t *testing.T) {
	gold := &domain.Package{Name: "Gold", BasePrice: d(50000)}
	lawn := &domain.Venue{Name: "Lawn A", BaseRent: d(30000)}

	cases := []struct {
		name  string
		pkg   *domain.Package
		venue *domain.Venue
		want  int64
	}{
		{"both selected", gold, lawn, 80000},
		{"package only", gold, nil, 50000},
		{"venue only", nil, lawn, 30000},
		{"nothing selected", nil, nil, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Quote(tc.pkg, tc.venue, 0)
			assert.True(t, got.Equal(d(tc.want)), "got %s", got)
		})
	}
}

func TestQuote_PerGuestPricing(t *testing.T) {
	pkg := &domain.Package{BasePrice: d(35000), PricePerGuest: d(150)}
	venue := &domain.Venue{BaseRent: d(25000)}

	// 35000 + 150*50 + 25000
	got := Quote(pkg, venue, 50)
	assert.True(t, got.Equal(d(67500)), "got %s", got)

	// Negative guest counts never subtract.
	got = Quote(pkg, nil, -4)
	assert.True(t, got.Equal(d(35000)), "got %s", got)
}

func TestQuote_Idempotent(t *testing.T) {
	pkg := &domain.Package{BasePrice: d(75000), PricePerGuest: d(250)}
	venue := &domain.Venue{BaseRent: d(45000)}

	first := Quote(pkg, venue, 100)
	second := Quote(pkg, venue, 100)
	assert.True(t, first.Equal(second))
}

func TestEventTotal_IncludesVendorLines(t *testing.T) {
	pkg := &domain.Package{BasePrice: d(50000)}
	venue := &domain.Venue{BaseRent: d(30000)}
	custom := d(12000)

	vendors := []VendorLine{
		{Assignment: domain.EventVendor{Quantity: 2}, StandardPrice: d(5000)},
		{Assignment: domain.EventVendor{Quantity: 1, CustomPrice: &custom}, StandardPrice: d(20000)},
	}

	// 80000 + 2*5000 + 12000
	got := EventTotal(pkg, venue, 0, vendors)
	assert.True(t, got.Equal(d(102000)), "got %s", got)
}

func TestEventTotal_NoVendors(t *testing.T) {
	got := EventTotal(nil, nil, 10, nil)
	assert.True(t, got.IsZero())
}

func TestFormatINR(t *testing.T) {
	cases := []struct {
		amount decimal.Decimal
		want   string
	}{
		{d(80000), "₹80,000.00"},
		{d(0), "₹0.00"},
		{d(999), "₹999.00"},
		{d(1000), "₹1,000.00"},
		{d(100000), "₹1,00,000.00"},
		{d(125000), "₹1,25,000.00"},
		{d(10000000), "₹1,00,00,000.00"},
		{decimal.NewFromFloat(1234.5), "₹1,234.50"},
		{d(-45000), "-₹45,000.00"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, FormatINR(tc.amount))
	}
}

func TestFormatINR_SpecExample(t *testing.T) {
	gold := &domain.Package{Name: "Gold", BasePrice: d(50000)}
	lawn := &domain.Venue{Name: "Lawn A", BaseRent: d(30000)}

	assert.Equal(t, "₹80,000.00", FormatINR(Quote(gold, lawn, 0)))
	assert.Equal(t, "₹0.00", FormatINR(Quote(nil, nil, 0)))
}
