package holiday

import (
	"github.com/smartattend/attendance-backend-go/internal/pkg/validator"
)

// UpsertHolidayRequest carries an admin create or update of a holiday.
type UpsertHolidayRequest struct {
	Date string `json:"date"`
	Name string `json:"name"`
}

func (r *UpsertHolidayRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be YYYY-MM-DD",
		})
	}

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
