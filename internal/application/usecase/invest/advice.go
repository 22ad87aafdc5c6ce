package invest

import (
	"fmt"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/planner/internal/domain/entity"
)

// DisplayCurrency is the currency amounts are rendered in.
const DisplayCurrency = money.EUR

// Thresholds of the savings heuristics.
var (
	AllocationThreshold     = decimal.NewFromInt(200)
	MicroInvestingThreshold = decimal.NewFromInt(100)
	emergencyMonths         = decimal.NewFromInt(3)
	half                    = decimal.RequireFromString("0.5")
	quarter                 = decimal.RequireFromString("0.25")
)

// Advice is one heuristic recommendation.
type Advice struct {
	Title       string
	Description string
}

// AnalyzeInvestments returns heuristic advice for the monthly savings. The emergency fund
// goal is three months of essential expenses.
func AnalyzeInvestments(savings decimal.Decimal, expenses []entity.Transaction) []Advice {
	if !savings.IsPositive() {
		return []Advice{{
			Title:       "No surplus this month",
			Description: "You have no positive savings this month. Consider reducing expenses or increasing income.",
		}}
	}

	var advice []Advice
	goal := EssentialExpenses(expenses).Mul(emergencyMonths)
	switch {
	case savings.LessThan(goal.Mul(quarter)):
		advice = append(advice, Advice{
			Title:       "Priority: emergency fund",
			Description: fmt.Sprintf("Start building an emergency fund (~%s). Keep it in a liquid savings account.", FormatAmount(goal)),
		})
	case savings.LessThan(goal):
		advice = append(advice, Advice{
			Title:       "Complete emergency fund",
			Description: fmt.Sprintf("You are progressing towards your emergency fund (~%s). Keep contributing monthly.", FormatAmount(goal)),
		})
	default:
		advice = append(advice, Advice{
			Title:       "Emergency fund reached",
			Description: "Your emergency fund is covered. You can consider investing part of your savings in higher-yield assets.",
		})
	}

	if savings.GreaterThanOrEqual(AllocationThreshold) {
		advice = append(advice, Advice{
			Title:       "Recommended allocation",
			Description: "Example monthly allocation: 50% index ETFs (equities), 30% bonds/fixed income, 10% short-term savings, 10% diversification (crypto/real estate). Adjust to your profile.",
		})
	} else {
		advice = append(advice, Advice{
			Title:       "Small surplus, cautious approach",
			Description: "If you have a small amount to invest, prefer a high-yield savings account or a low-cost ETF.",
		})
	}

	if savings.LessThan(MicroInvestingThreshold) {
		advice = append(advice, Advice{
			Title:       "Micro-investing",
			Description: "Consider automated small monthly investments, such as recurring ETF purchases, to benefit from dollar-cost averaging.",
		})
	}

	return advice
}

// EssentialExpenses estimates the monthly essential spending: every recurring expense
// plus half of the non-recurring ones.
func EssentialExpenses(expenses []entity.Transaction) decimal.Decimal {
	total := decimal.Zero
	for _, e := range expenses {
		amount := entity.NormalizeAmount(e.Amount)
		if !e.Recurring {
			amount = amount.Mul(half)
		}
		total = total.Add(amount)
	}
	return total
}

// FormatAmount renders an amount in DisplayCurrency, e.g. "€1,234.50".
func FormatAmount(amount decimal.Decimal) string {
	cur := money.GetCurrency(DisplayCurrency)
	minor := amount.Shift(int32(cur.Fraction)).Round(0).IntPart()
	return money.New(minor, DisplayCurrency).Display()
}
