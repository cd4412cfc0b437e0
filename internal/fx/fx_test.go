package fx

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/ledgerlite/ledgerlite/pkg/currencypkg"
	"github.com/ledgerlite/ledgerlite/pkg/randompkg"
)

func testTable() Table {
	return NewTable(map[string]float64{
		"EUR": 1,
		"USD": 1.08,
		"RUB": 95,
	})
}

func TestConvert(t *testing.T) {
	t.Parallel()

	table := testTable()

	testCases := []struct {
		name   string
		amount float64
		from   string
		to     string
		want   float64
	}{
		{name: "Identity", amount: 123.45, from: "USD", to: "USD", want: 123.45},
		{name: "BaseToOther", amount: 100, from: "EUR", to: "RUB", want: 9500},
		{name: "OtherToOther", amount: 100, from: "USD", to: "RUB", want: 100 * 95 / 1.08},
		{name: "OtherToBase", amount: 50, from: "USD", to: "EUR", want: 50 / 1.08},
		{name: "UnknownFromActsAsBase", amount: 10, from: "XXX", to: "RUB", want: 950},
		{name: "UnknownToActsAsBase", amount: 95, from: "RUB", to: "XXX", want: 1},
		{name: "NaNAmount", amount: math.NaN(), from: "EUR", to: "USD", want: 0},
		{name: "InfAmount", amount: math.Inf(1), from: "EUR", to: "USD", want: 0},
	}

	for _, tc := range testCases {
		tc := tc

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got := table.Convert(tc.amount, tc.from, tc.to)

			if diff := cmp.Diff(tc.want, got, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
				t.Errorf("Convert(%v, %v, %v) mismatch (-want +got):\n%s", tc.amount, tc.from, tc.to, diff)
			}
		})
	}
}

func TestConvertRoundTrip(t *testing.T) {
	t.Parallel()

	table := testTable()

	for i := 0; i < 100; i++ {
		amount := randompkg.FloatBetween(0.01, 100_000)
		from := randompkg.Currency()
		to := randompkg.Currency()

		got := table.Convert(table.Convert(amount, from, to), to, from)

		if math.Abs(got-amount) > 1e-6 {
			t.Errorf("round trip of %v via %v->%v = %v, want %v", amount, from, to, got, amount)
		}
	}
}

func TestMerge(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		partial map[string]float64
		want    Table
	}{
		{
			name:    "ValidUpdate",
			partial: map[string]float64{"USD": 1.1},
			want:    Table{"EUR": 1, "USD": 1.1, "RUB": 95},
		},
		{
			name:    "NewCurrency",
			partial: map[string]float64{"GBP": 0.85},
			want:    Table{"EUR": 1, "USD": 1.08, "RUB": 95, "GBP": 0.85},
		},
		{
			name:    "NegativeIgnored",
			partial: map[string]float64{"USD": -3},
			want:    Table{"EUR": 1, "USD": 1.08, "RUB": 95},
		},
		{
			name:    "ZeroIgnored",
			partial: map[string]float64{"RUB": 0},
			want:    Table{"EUR": 1, "USD": 1.08, "RUB": 95},
		},
		{
			name:    "NaNIgnored",
			partial: map[string]float64{"RUB": math.NaN()},
			want:    Table{"EUR": 1, "USD": 1.08, "RUB": 95},
		},
		{
			name:    "InfIgnored",
			partial: map[string]float64{"RUB": math.Inf(1)},
			want:    Table{"EUR": 1, "USD": 1.08, "RUB": 95},
		},
		{
			name:    "BaseStaysFixed",
			partial: map[string]float64{"EUR": 42},
			want:    Table{"EUR": 1, "USD": 1.08, "RUB": 95},
		},
	}

	for _, tc := range testCases {
		tc := tc

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got := testTable().Merge(tc.partial)

			if diff := cmp.Diff(tc.want, got, cmpopts.EquateNaNs()); diff != "" {
				t.Errorf("Merge(%v) mismatch (-want +got):\n%s", tc.partial, diff)
			}

			if got[currencypkg.Base] != 1 {
				t.Errorf("Merge(%v) base rate = %v, want exactly 1", tc.partial, got[currencypkg.Base])
			}
		})
	}
}

func TestMergeDoesNotMutateReceiver(t *testing.T) {
	t.Parallel()

	table := testTable()
	table.Merge(map[string]float64{"USD": 2})

	if table["USD"] != 1.08 {
		t.Errorf("receiver table mutated: USD = %v, want 1.08", table["USD"])
	}
}

func TestNewTableDropsInvalidEntries(t *testing.T) {
	t.Parallel()

	got := NewTable(map[string]float64{
		"EUR": 5,
		"USD": 1.08,
		"BAD": -1,
	})

	want := Table{"EUR": 1, "USD": 1.08}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("NewTable mismatch (-want +got):\n%s", diff)
	}
}
