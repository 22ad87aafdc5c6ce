package category

import (
	"context"

	"github.com/finance-tracker/planner/internal/application/ledger"
	"github.com/finance-tracker/planner/internal/domain/entity"
)

// ListCategoriesInput represents the input for listing categories.
type ListCategoriesInput struct {
	UserID string
}

// ListCategoriesOutput represents the output of listing categories.
type ListCategoriesOutput struct {
	Categories []entity.Category
}

// ListCategoriesUseCase returns the user's category registry.
type ListCategoriesUseCase struct {
	sessions *ledger.Sessions
}

// NewListCategoriesUseCase creates a new ListCategoriesUseCase instance.
func NewListCategoriesUseCase(sessions *ledger.Sessions) *ListCategoriesUseCase {
	return &ListCategoriesUseCase{
		sessions: sessions,
	}
}

// Execute lists the categories in registry order.
func (uc *ListCategoriesUseCase) Execute(ctx context.Context, input ListCategoriesInput) (*ListCategoriesOutput, error) {
	store, err := uc.sessions.Get(ctx, input.UserID)
	if err != nil {
		return nil, err
	}
	return &ListCategoriesOutput{Categories: store.Categories()}, nil
}
