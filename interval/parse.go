package interval

import (
	"strings"

	"github.com/iotaledger/hive.go/ierrors"
)

const (
	negativeInfinity = "-inf"
	positiveInfinity = "inf"
)

// FromString parses an Interval from its textual form (i.e. "[1, 5)" or "(-inf, 2000-02-07]") using the given parser
// for the bounds. Unbounded ends are written as "-inf" / "inf" (or "+inf") or left empty, their brackets are ignored.
// The infinity tokens are matched case-sensitively, so the float infinities "-Inf" / "+Inf" stay bounded Values.
func FromString(text string, parser ValueParser) (*Interval, error) {
	trimmed := strings.TrimSpace(text)
	if len(trimmed) < 3 {
		return nil, ierrors.Wrapf(ErrParseStringFailed, "interval %q is too short", text)
	}

	lowerInclusive, err := parseBracket(trimmed[0], '[', '(')
	if err != nil {
		return nil, ierrors.Wrapf(err, "invalid lower bracket in %q", text)
	}

	upperInclusive, err := parseBracket(trimmed[len(trimmed)-1], ']', ')')
	if err != nil {
		return nil, ierrors.Wrapf(err, "invalid upper bracket in %q", text)
	}

	lowerText, upperText, found := strings.Cut(trimmed[1:len(trimmed)-1], ",")
	if !found {
		return nil, ierrors.Wrapf(ErrParseStringFailed, "missing separator in %q", text)
	}

	lower, err := parseBound(strings.TrimSpace(lowerText), parser, negativeInfinity)
	if err != nil {
		return nil, ierrors.Wrapf(err, "invalid lower bound in %q", text)
	}

	upper, err := parseBound(strings.TrimSpace(upperText), parser, positiveInfinity, "+"+positiveInfinity)
	if err != nil {
		return nil, ierrors.Wrapf(err, "invalid upper bound in %q", text)
	}

	return New(lower, upper, lowerInclusive, upperInclusive)
}

func parseBracket(bracket byte, inclusive byte, exclusive byte) (bool, error) {
	switch bracket {
	case inclusive:
		return true, nil
	case exclusive:
		return false, nil
	default:
		return false, ierrors.Wrapf(ErrParseStringFailed, "expected %q or %q but got %q", inclusive, exclusive, bracket)
	}
}

func parseBound(text string, parser ValueParser, infinity ...string) (Value, error) {
	if text == "" {
		return nil, nil
	}

	for _, infinityText := range infinity {
		if text == infinityText {
			return nil, nil
		}
	}

	return parser(text)
}
