package category

import (
	"context"

	"github.com/finance-tracker/planner/internal/application/ledger"
	domainerror "github.com/finance-tracker/planner/internal/domain/error"
)

// DeleteCategoryInput represents the input for category deletion.
type DeleteCategoryInput struct {
	UserID string
	Name   string
	// Replacement, when set, relabels every transaction of the deleted category.
	Replacement string
}

// DeleteCategoryUseCase handles category deletion logic.
type DeleteCategoryUseCase struct {
	sessions *ledger.Sessions
}

// NewDeleteCategoryUseCase creates a new DeleteCategoryUseCase instance.
func NewDeleteCategoryUseCase(sessions *ledger.Sessions) *DeleteCategoryUseCase {
	return &DeleteCategoryUseCase{
		sessions: sessions,
	}
}

// Execute performs the category deletion. An unregistered name is only an error when no
// transaction was relabeled either.
func (uc *DeleteCategoryUseCase) Execute(ctx context.Context, input DeleteCategoryInput) error {
	store, err := uc.sessions.Get(ctx, input.UserID)
	if err != nil {
		return err
	}

	deleted, relabeled, err := store.DeleteCategory(ctx, input.Name, input.Replacement)
	if err != nil {
		return err
	}
	if !deleted && relabeled == 0 {
		return domainerror.NewCategoryError(
			domainerror.ErrCodeCategoryNotFound,
			"category not found",
			domainerror.ErrCategoryNotFound,
		)
	}
	return nil
}
