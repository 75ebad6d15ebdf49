package interval

import (
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestCanonicalize(t *testing.T) {
	tests := []struct {
		name           string
		interval       *Interval
		lowerInclusive bool
		upperInclusive bool
		expected       string
	}{
		{name: "closed to half-open", interval: Closed(Int64Value(1), Int64Value(4)), lowerInclusive: true, upperInclusive: false, expected: "[1, 5)"},
		{name: "open to closed", interval: Open(Int64Value(1), Int64Value(7)), lowerInclusive: true, upperInclusive: true, expected: "[2, 6]"},
		{name: "closed to open-closed", interval: Closed(Int64Value(1), Int64Value(7)), lowerInclusive: false, upperInclusive: true, expected: "(0, 7]"},
		{name: "already canonical", interval: ClosedOpen(Int64Value(1), Int64Value(5)), lowerInclusive: true, upperInclusive: false, expected: "[1, 5)"},
		{name: "open to open", interval: Open(Int64Value(-3), Int64Value(3)), lowerInclusive: false, upperInclusive: false, expected: "(-3, 3)"},
		{name: "unbounded", interval: All(), lowerInclusive: true, upperInclusive: true, expected: "(-inf, inf)"},
		{name: "unbounded below", interval: AtMost(Int64Value(3)), lowerInclusive: true, upperInclusive: false, expected: "(-inf, 4)"},
		{name: "unbounded above", interval: GreaterThan(Int64Value(3)), lowerInclusive: true, upperInclusive: false, expected: "[4, inf)"},
		{name: "uint64", interval: OpenClosed(Uint64Value(0), Uint64Value(9)), lowerInclusive: true, upperInclusive: false, expected: "[1, 10)"},
		{name: "date", interval: Closed(NewDateValue(2000, 2, 2), NewDateValue(2000, 2, 6)), lowerInclusive: true, upperInclusive: false, expected: "[2000-02-02, 2000-02-07)"},
		{name: "date across month", interval: Open(NewDateValue(2000, 1, 31), NewDateValue(2000, 3, 1)), lowerInclusive: true, upperInclusive: true, expected: "[2000-02-01, 2000-02-29]"},
		{name: "continuous float", interval: Closed(Float64Value(1.5), Float64Value(2.5)), lowerInclusive: true, upperInclusive: false, expected: "[1.5, 2.5)"},
		{name: "continuous decimal", interval: Open(MustParseDecimal("0.1"), MustParseDecimal("0.2")), lowerInclusive: true, upperInclusive: true, expected: "[0.1, 0.2]"},
		{name: "empty stays crossed", interval: Open(Int64Value(3), Int64Value(4)), lowerInclusive: true, upperInclusive: true, expected: "[4, 3]"},
		{name: "max inclusive upper", interval: Closed(Int64Value(0), Int64Value(math.MaxInt64)), lowerInclusive: true, upperInclusive: false, expected: "[0, inf)"},
		{name: "min inclusive lower", interval: Closed(Int64Value(math.MinInt64), Int64Value(0)), lowerInclusive: false, upperInclusive: true, expected: "(-inf, 0]"},
		{name: "max exclusive lower", interval: OpenClosed(Int64Value(math.MaxInt64), Int64Value(math.MaxInt64)), lowerInclusive: true, upperInclusive: true, expected: fmt.Sprintf("(%d, %d]", int64(math.MaxInt64), int64(math.MaxInt64))},
		{name: "zero exclusive upper", interval: ClosedOpen(Uint64Value(0), Uint64Value(0)), lowerInclusive: true, upperInclusive: true, expected: "[0, 0)"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require.Equal(t, test.expected, CanonicalizeTo(test.interval, test.lowerInclusive, test.upperInclusive).String())
		})
	}
}

func TestCanonicalize_Defaults(t *testing.T) {
	require.Equal(t, "[1, 5)", Canonicalize(Closed(Int64Value(1), Int64Value(4))).String())
	require.Equal(t, "[2000-02-02, 2000-02-07)", Canonicalize(Closed(NewDateValue(2000, 2, 2), NewDateValue(2000, 2, 6))).String())

	canonical := Canonicalize(Closed(NewDateValue(2000, 2, 2), NewDateValue(2000, 2, 6)))
	require.Equal(t, NewDateValue(2000, 2, 2), canonical.Lower())
	require.Equal(t, 7, canonical.Upper().(DateValue).Day())
	require.True(t, canonical.LowerInc())
	require.False(t, canonical.UpperInc())
}

func TestCanonicalize_StepRegistry(t *testing.T) {
	registry := NewStepRegistry()
	registry.Register(DecimalValue{}, NewDecimalStep(decimal.RequireFromString("0.01")))
	registry.Register(TimeValue{}, NewDurationStep(time.Second))

	require.Equal(t, "[1.01, 1.99)", Canonicalize(Open(MustParseDecimal("1"), MustParseDecimal("1.99")), WithStepRegistry(registry)).String())
	require.Equal(t, "[2024-01-01T00:00:00Z, 2024-01-01T00:00:01Z)", Canonicalize(Singleton(NewTimeValue(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))), WithStepRegistry(registry)).String())

	// integers are continuous in a registry that does not know them
	require.Equal(t, "[1, 4)", Canonicalize(Closed(Int64Value(1), Int64Value(4)), WithStepRegistry(registry)).String())
}

func TestCanonicalize_Properties(t *testing.T) {
	flags := []bool{false, true}
	bounds := []Value{nil, Int64Value(-2), Int64Value(0), Int64Value(1), Int64Value(3)}

	for _, lower := range bounds {
		for _, upper := range bounds {
			for _, lowerInclusive := range flags {
				for _, upperInclusive := range flags {
					interval, err := New(lower, upper, lowerInclusive, upperInclusive)
					require.NoError(t, err)

					crossed := lower != nil && upper != nil && lower.Compare(upper) > 0
					if crossed {
						require.True(t, interval.IsEmpty(), "%s is empty", interval)
					}

					for _, targetLowerInclusive := range flags {
						for _, targetUpperInclusive := range flags {
							name := fmt.Sprintf("%s->%t,%t", interval, targetLowerInclusive, targetUpperInclusive)
							canonical := CanonicalizeTo(interval, targetLowerInclusive, targetUpperInclusive)

							// same members
							for member := Int64Value(-6); member <= 6; member++ {
								require.Equal(t, interval.Contains(member), canonical.Contains(member), "%s contains %d", name, member)
							}

							// requested flags on bounded ends, unbounded ends report exclusive
							require.Equal(t, canonical.HasLowerBound() && targetLowerInclusive, canonical.LowerInc(), name)
							require.Equal(t, canonical.HasUpperBound() && targetUpperInclusive, canonical.UpperInc(), name)
							require.Equal(t, interval.HasLowerBound(), canonical.HasLowerBound(), name)
							require.Equal(t, interval.HasUpperBound(), canonical.HasUpperBound(), name)

							// idempotent
							require.True(t, canonical.Equal(CanonicalizeTo(canonical, targetLowerInclusive, targetUpperInclusive)), name)

							// requesting the current flags is the identity
							require.True(t, interval.Equal(CanonicalizeTo(interval, interval.LowerInc(), interval.UpperInc())), name)

							// empty intervals stay empty
							require.Equal(t, interval.IsEmpty(), canonical.IsEmpty(), name)
							if crossed {
								require.True(t, canonical.IsEmpty(), name)
							}

							// the canonical form can be read back from both encodings
							parsed, err := FromString(canonical.String(), ParseInt64)
							require.NoError(t, err, name)
							require.True(t, canonical.Equal(parsed), name)

							unmarshaled, _, err := FromBytes(canonical.Bytes())
							require.NoError(t, err, name)
							require.True(t, canonical.Equal(unmarshaled), name)
						}
					}
				}
			}
		}
	}
}

func TestCanonicalize_DoesNotModifyInput(t *testing.T) {
	interval := Closed(Int64Value(1), Int64Value(4))
	canonical := Canonicalize(interval)

	require.Equal(t, "[1, 4]", interval.String())
	require.Equal(t, "[1, 5)", canonical.String())
	require.Same(t, interval.lowerEndPoint, canonical.lowerEndPoint)
}

func TestInterval_IsEmpty(t *testing.T) {
	require.False(t, All().IsEmpty())
	require.False(t, AtLeast(Int64Value(1)).IsEmpty())
	require.False(t, Singleton(Int64Value(1)).IsEmpty())
	require.True(t, ClosedOpen(Int64Value(1), Int64Value(1)).IsEmpty())
	require.True(t, Open(Int64Value(1), Int64Value(2)).IsEmpty())
	require.False(t, Open(Int64Value(1), Int64Value(3)).IsEmpty())
	require.True(t, Open(NewDateValue(2000, 2, 2), NewDateValue(2000, 2, 3)).IsEmpty())
	require.True(t, GreaterThan(Int64Value(math.MaxInt64)).IsEmpty())
	require.True(t, LessThan(Uint64Value(0)).IsEmpty())

	// continuous values have room between any two distinct values
	require.False(t, Open(Float64Value(1), Float64Value(2)).IsEmpty())
	require.True(t, Open(Float64Value(1), Float64Value(1)).IsEmpty())
	require.False(t, Open(MustParseDecimal("1"), MustParseDecimal("1.01")).IsEmpty())

	registry := NewStepRegistry()
	registry.Register(DecimalValue{}, NewDecimalStep(decimal.RequireFromString("0.01")))
	require.True(t, Open(MustParseDecimal("1"), MustParseDecimal("1.01")).IsEmpty(WithStepRegistry(registry)))
}
