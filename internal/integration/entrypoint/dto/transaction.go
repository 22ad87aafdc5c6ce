package dto

import (
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/planner/internal/domain/entity"
)

// TransactionRequest represents the request body for adding a transaction.
type TransactionRequest struct {
	Name           string      `json:"name"`
	Category       string      `json:"category"`
	Amount         interface{} `json:"amount"`
	Date           string      `json:"date"`
	Recurring      bool        `json:"recurring"`
	RecurringStart string      `json:"recurring_start"`
	RecurringEnd   string      `json:"recurring_end"`
}

// UpdateTransactionRequest represents a partial update. Absent fields are left untouched.
type UpdateTransactionRequest struct {
	Name           *string     `json:"name,omitempty"`
	Category       *string     `json:"category,omitempty"`
	Amount         interface{} `json:"amount,omitempty"`
	Date           *string     `json:"date,omitempty"`
	Recurring      *bool       `json:"recurring,omitempty"`
	RecurringStart *string     `json:"recurring_start,omitempty"`
	RecurringEnd   *string     `json:"recurring_end,omitempty"`
}

// TransactionResponse represents a single transaction in API responses.
type TransactionResponse struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Category       string          `json:"category"`
	Amount         decimal.Decimal `json:"amount"`
	Date           string          `json:"date,omitempty"`
	Recurring      bool            `json:"recurring"`
	RecurringStart string          `json:"recurring_start,omitempty"`
	RecurringEnd   string          `json:"recurring_end,omitempty"`
}

// AddTransactionResponse tells where a new transaction was filed.
type AddTransactionResponse struct {
	Transaction TransactionResponse `json:"transaction"`
	Archived    bool                `json:"archived"`
	MonthKey    string              `json:"month_key"`
}

// ToDraft converts the request into a transaction draft.
func (r TransactionRequest) ToDraft() entity.TransactionDraft {
	return entity.TransactionDraft{
		Name:           r.Name,
		Category:       r.Category,
		Amount:         entity.ParseAmount(r.Amount),
		Date:           r.Date,
		Recurring:      r.Recurring,
		RecurringStart: r.RecurringStart,
		RecurringEnd:   r.RecurringEnd,
	}
}

// ToPatch converts the request into a transaction patch.
func (r UpdateTransactionRequest) ToPatch() entity.TransactionPatch {
	patch := entity.TransactionPatch{
		Name:           r.Name,
		Category:       r.Category,
		Date:           r.Date,
		Recurring:      r.Recurring,
		RecurringStart: r.RecurringStart,
		RecurringEnd:   r.RecurringEnd,
	}
	if r.Amount != nil {
		amount := entity.ParseAmount(r.Amount)
		patch.Amount = &amount
	}
	return patch
}

// ToTransactionResponse converts a domain Transaction to a TransactionResponse DTO.
func ToTransactionResponse(t entity.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:             t.ID,
		Name:           t.Name,
		Category:       t.Category,
		Amount:         t.Amount,
		Date:           t.Date,
		Recurring:      t.Recurring,
		RecurringStart: t.RecurringStart,
		RecurringEnd:   t.RecurringEnd,
	}
}

// ToTransactionResponses converts a list of transactions. A nil list becomes empty.
func ToTransactionResponses(txs []entity.Transaction) []TransactionResponse {
	out := make([]TransactionResponse, len(txs))
	for i, t := range txs {
		out[i] = ToTransactionResponse(t)
	}
	return out
}
