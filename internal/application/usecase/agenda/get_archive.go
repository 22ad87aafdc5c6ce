package agenda

import (
	"context"

	"github.com/finance-tracker/planner/internal/application/ledger"
	"github.com/finance-tracker/planner/internal/domain/entity"
	domainerror "github.com/finance-tracker/planner/internal/domain/error"
	"github.com/finance-tracker/planner/internal/domain/valueobject"
)

// GetArchiveInput represents the input for reading an archived month.
type GetArchiveInput struct {
	UserID   string
	MonthKey string
}

// GetArchiveOutput represents one archive bucket.
type GetArchiveOutput struct {
	MonthKey string
	Bucket   entity.MonthBucket
	// Months lists every month-key holding archived transactions.
	Months []string
}

// GetArchiveUseCase reads the archived transactions of a month.
type GetArchiveUseCase struct {
	sessions *ledger.Sessions
}

// NewGetArchiveUseCase creates a new GetArchiveUseCase instance.
func NewGetArchiveUseCase(sessions *ledger.Sessions) *GetArchiveUseCase {
	return &GetArchiveUseCase{
		sessions: sessions,
	}
}

// Execute returns the bucket for the month-key, empty when nothing is archived there.
func (uc *GetArchiveUseCase) Execute(ctx context.Context, input GetArchiveInput) (*GetArchiveOutput, error) {
	if _, _, ok := valueobject.ParseMonthKey(input.MonthKey); !ok {
		return nil, domainerror.NewLedgerError(
			domainerror.ErrCodeInvalidMonthKey,
			"month must be formatted as YYYY-MM",
			domainerror.ErrInvalidMonthKey,
		)
	}

	store, err := uc.sessions.Get(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	return &GetArchiveOutput{
		MonthKey: input.MonthKey,
		Bucket:   store.ArchiveBucket(input.MonthKey),
		Months:   store.ArchiveMonths(),
	}, nil
}
