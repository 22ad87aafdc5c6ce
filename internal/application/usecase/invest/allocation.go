// Package invest contains rule-based investment suggestions derived from monthly savings.
package invest

import (
	"strings"

	"github.com/shopspring/decimal"
)

// RiskProfile selects an allocation preset.
type RiskProfile string

const (
	RiskConservative RiskProfile = "conservative"
	RiskModerate     RiskProfile = "moderate"
	RiskAggressive   RiskProfile = "aggressive"
)

// ParseRiskProfile maps a profile name to a RiskProfile. Unknown names fall back to moderate.
func ParseRiskProfile(s string) RiskProfile {
	switch p := RiskProfile(strings.ToLower(strings.TrimSpace(s))); p {
	case RiskConservative, RiskModerate, RiskAggressive:
		return p
	}
	return RiskModerate
}

// AllocationLine is one asset class of a suggested allocation.
type AllocationLine struct {
	Name    string
	Percent int
	Reason  string
	Amount  decimal.Decimal
}

// Allocation splits a monthly savings amount across asset classes.
type Allocation struct {
	Risk  RiskProfile
	Total decimal.Decimal
	Lines []AllocationLine
}

type presetLine struct {
	name    string
	percent int
	reason  string
}

var presets = map[RiskProfile][]presetLine{
	RiskConservative: {
		{"Savings account (liquidity)", 50, "Safety and liquidity"},
		{"Bond / fixed income funds", 30, "Stable yield"},
		{"Diversified equity ETF", 15, "Long-term growth"},
		{"Crypto (small allocation)", 5, "High risk, high potential"},
	},
	RiskModerate: {
		{"Savings account (liquidity)", 20, "Emergency cushion"},
		{"Diversified equity ETF", 50, "Balanced growth"},
		{"Bond funds", 20, "Stability"},
		{"Crypto", 10, "High risk, limited portion"},
	},
	RiskAggressive: {
		{"Diversified equity ETF", 60, "Growth priority"},
		{"Startups / P2P", 20, "High potential but risky"},
		{"Crypto", 15, "High risk"},
		{"Savings account", 5, "Minimal liquidity"},
	},
}

var hundred = decimal.NewFromInt(100)

// SuggestAllocation splits savings according to the risk preset, rounding each line to cents.
// Zero or negative savings yield an empty allocation.
func SuggestAllocation(savings decimal.Decimal, risk RiskProfile) Allocation {
	risk = ParseRiskProfile(string(risk))
	if !savings.IsPositive() {
		return Allocation{Risk: risk, Total: decimal.Zero, Lines: []AllocationLine{}}
	}

	preset := presets[risk]
	lines := make([]AllocationLine, 0, len(preset))
	for _, p := range preset {
		lines = append(lines, AllocationLine{
			Name:    p.name,
			Percent: p.percent,
			Reason:  p.reason,
			Amount:  savings.Mul(decimal.NewFromInt(int64(p.percent))).Div(hundred).Round(2),
		})
	}
	return Allocation{Risk: risk, Total: savings, Lines: lines}
}
