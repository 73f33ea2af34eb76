package tracking

import (
	"math/big"
	"strings"
)

// SentinelSet is the set of lower-case tokens that mean "true" in a flag column.
type SentinelSet map[string]struct{}

// NewSentinelSet builds a set from tokens. Tokens are lower-cased.
func NewSentinelSet(tokens ...string) SentinelSet {
	s := make(SentinelSet, len(tokens))
	for _, t := range tokens {
		s[strings.ToLower(strings.TrimSpace(t))] = struct{}{}
	}
	return s
}

// DefaultReceivedSentinels are the tokens operators use to tick the
// "received by customer" column.
func DefaultReceivedSentinels() SentinelSet {
	return NewSentinelSet("true", "yes", "1", "✓")
}

func (s SentinelSet) Contains(token string) bool {
	_, ok := s[token]
	return ok
}

// InterpretHomeDelivery reports whether the home delivery cell asks for a
// delivery. A positive integer means yes. When allowYes is set, a cell that is
// not a number is also accepted when it reads "YES" after upper-casing.
// Everything else, including garbage and empty cells, means no.
func InterpretHomeDelivery(raw string, allowYes bool) bool {
	value := strings.TrimSpace(raw)

	if n, ok := parseInteger(value); ok {
		return n.Sign() > 0
	}

	if allowYes {
		return strings.ToUpper(value) == "YES"
	}
	return false
}

// parseInteger reads a base 10 integer of any size with an optional sign.
// Single underscores may group the digits, as in "1_000".
func parseInteger(value string) (*big.Int, bool) {
	digits := strings.TrimPrefix(strings.TrimPrefix(value, "+"), "-")
	if len(digits) < len(value)-1 {
		return nil, false
	}
	if digits == "" || digits[0] == '_' || digits[len(digits)-1] == '_' || strings.Contains(digits, "__") {
		return nil, false
	}
	sign := value[:len(value)-len(digits)]
	return new(big.Int).SetString(sign+strings.ReplaceAll(digits, "_", ""), 10)
}

// InterpretReceived reports whether raw is one of the sentinels, ignoring case
// and surrounding whitespace.
func InterpretReceived(raw string, sentinels SentinelSet) bool {
	return sentinels.Contains(strings.ToLower(strings.TrimSpace(raw)))
}
