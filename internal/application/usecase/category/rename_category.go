package category

import (
	"context"
	"log/slog"

	"github.com/finance-tracker/planner/internal/application/ledger"
	"github.com/finance-tracker/planner/internal/domain/entity"
)

// RenameCategoryInput represents the input for renaming a category.
type RenameCategoryInput struct {
	UserID  string
	OldName string
	NewName string
}

// RenameCategoryOutput represents the output of renaming a category.
type RenameCategoryOutput struct {
	Renamed    bool
	Categories []entity.Category
}

// RenameCategoryUseCase renames a category and relabels its transactions.
type RenameCategoryUseCase struct {
	sessions *ledger.Sessions
}

// NewRenameCategoryUseCase creates a new RenameCategoryUseCase instance.
func NewRenameCategoryUseCase(sessions *ledger.Sessions) *RenameCategoryUseCase {
	return &RenameCategoryUseCase{
		sessions: sessions,
	}
}

// Execute performs the rename. Renaming onto the same name changes nothing.
func (uc *RenameCategoryUseCase) Execute(ctx context.Context, input RenameCategoryInput) (*RenameCategoryOutput, error) {
	newName, err := validateName(input.NewName)
	if err != nil {
		return nil, err
	}

	store, err := uc.sessions.Get(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	renamed, err := store.RenameCategory(ctx, input.OldName, newName)
	if err != nil {
		return nil, err
	}
	if renamed {
		slog.Debug("Renamed category", "user_id", store.UserID(), "from", input.OldName, "to", newName)
	}

	return &RenameCategoryOutput{
		Renamed:    renamed,
		Categories: store.Categories(),
	}, nil
}
