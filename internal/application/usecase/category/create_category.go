package category

import (
	"context"
	"fmt"
	"strings"

	"github.com/finance-tracker/planner/internal/application/ledger"
	"github.com/finance-tracker/planner/internal/domain/entity"
	domainerror "github.com/finance-tracker/planner/internal/domain/error"
)

// CreateCategoryInput represents the input for category creation.
type CreateCategoryInput struct {
	UserID string
	Name   string
	Color  string // Optional, defaults to the palette color for the registry size
	Icon   string // Optional, defaults to DefaultCategoryIcon
}

// CreateCategoryOutput represents the output of category creation.
type CreateCategoryOutput struct {
	Category entity.Category
	// Created is false when a category with the same name already existed.
	Created bool
}

// CreateCategoryUseCase handles category creation logic.
type CreateCategoryUseCase struct {
	sessions *ledger.Sessions
}

// NewCreateCategoryUseCase creates a new CreateCategoryUseCase instance.
func NewCreateCategoryUseCase(sessions *ledger.Sessions) *CreateCategoryUseCase {
	return &CreateCategoryUseCase{
		sessions: sessions,
	}
}

// Execute performs the category creation. Creating a name that already exists,
// ignoring case, returns the existing category.
func (uc *CreateCategoryUseCase) Execute(ctx context.Context, input CreateCategoryInput) (*CreateCategoryOutput, error) {
	name, err := validateName(input.Name)
	if err != nil {
		return nil, err
	}

	color := strings.TrimSpace(input.Color)
	if color != "" && !isValidHexColor(color) {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeInvalidColorFormat,
			"color must be a valid hex format (#XXXXXX)",
			domainerror.ErrInvalidColorFormat,
		)
	}

	icon := strings.TrimSpace(input.Icon)
	if len(icon) > MaxIconLength {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeCategoryIconTooLong,
			fmt.Sprintf("icon must not exceed %d characters", MaxIconLength),
			domainerror.ErrCategoryIconTooLong,
		)
	}

	store, err := uc.sessions.Get(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	category, added, err := store.AddCategory(ctx, entity.Category{Name: name, Color: color, Icon: icon})
	if err != nil {
		return nil, err
	}
	if !added {
		for _, c := range store.Categories() {
			if strings.EqualFold(c.Name, name) {
				category = c
				break
			}
		}
	}

	return &CreateCategoryOutput{
		Category: category,
		Created:  added,
	}, nil
}
