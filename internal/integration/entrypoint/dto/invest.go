package dto

import (
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/planner/internal/application/usecase/invest"
)

// AllocationLineResponse is one asset class of a suggested allocation.
type AllocationLineResponse struct {
	Name    string          `json:"name"`
	Percent int             `json:"percent"`
	Reason  string          `json:"reason"`
	Amount  decimal.Decimal `json:"amount"`
}

// AdviceResponse is one heuristic hint.
type AdviceResponse struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// SuggestionsResponse represents investment suggestions for the active month.
type SuggestionsResponse struct {
	Savings        decimal.Decimal          `json:"savings"`
	SavingsDisplay string                   `json:"savings_display"`
	Risk           string                   `json:"risk"`
	Allocation     []AllocationLineResponse `json:"allocation"`
	Advice         []AdviceResponse         `json:"advice"`
}

// ToSuggestionsResponse converts the output of the get-suggestions use case.
func ToSuggestionsResponse(out *invest.GetSuggestionsOutput) SuggestionsResponse {
	lines := make([]AllocationLineResponse, len(out.Allocation.Lines))
	for i, l := range out.Allocation.Lines {
		lines[i] = AllocationLineResponse{
			Name:    l.Name,
			Percent: l.Percent,
			Reason:  l.Reason,
			Amount:  l.Amount,
		}
	}
	advice := make([]AdviceResponse, len(out.Advice))
	for i, a := range out.Advice {
		advice[i] = AdviceResponse{Title: a.Title, Description: a.Description}
	}
	return SuggestionsResponse{
		Savings:        out.Savings,
		SavingsDisplay: invest.FormatAmount(out.Savings),
		Risk:           string(out.Allocation.Risk),
		Allocation:     lines,
		Advice:         advice,
	}
}
