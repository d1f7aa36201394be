package broadcast

import (
	"github.com/smartattend/attendance-backend-go/internal/pkg/validator"
)

// SendRequest carries an admin broadcast.
type SendRequest struct {
	Title   string `json:"title"`
	Message string `json:"message"`
}

func (r *SendRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Title) {
		errs = append(errs, validator.ValidationError{
			Field:   "title",
			Message: "title is required",
		})
	}

	if validator.IsEmpty(r.Message) {
		errs = append(errs, validator.ValidationError{
			Field:   "message",
			Message: "message is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
