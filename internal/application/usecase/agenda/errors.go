package agenda

import (
	domainerror "github.com/finance-tracker/planner/internal/domain/error"
	"github.com/finance-tracker/planner/internal/domain/valueobject"
)

func validateMonth(year, month int) error {
	if !valueobject.ValidYearMonth(year, month) {
		return domainerror.NewLedgerError(
			domainerror.ErrCodeInvalidMonth,
			"year must be between 0 and 9999 and month between 1 and 12",
			domainerror.ErrInvalidMonth,
		)
	}
	return nil
}
