package mongo

import (
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/doja-oual/portfolio-backend/internal/utils"
)

// Write-time field validation, the document-store analogue of schema
// validation: every Create/Update runs its typed input through here
// before touching the collection.
var validate = validator.New()

func validateInput(op string, in any) error {
	if err := validate.Struct(in); err != nil {
		return utils.E(utils.CodeInvalidArgument, op, "Données invalides: "+err.Error(), err)
	}
	return nil
}

// validateDates enforces end >= start when an end date is present.
func validateDates(op string, start time.Time, end *time.Time) error {
	if end != nil && end.Before(start) {
		return utils.E(utils.CodeInvalidArgument, op, "La date de fin doit être après la date de début", nil)
	}
	return nil
}

// Optional input fields are pointers; Create materializes absent ones
// with their zero value.

func strVal(p *string) string {
	if p != nil {
		return *p
	}
	return ""
}

func intVal(p *int) int {
	if p != nil {
		return *p
	}
	return 0
}

func boolVal(p *bool) bool {
	if p != nil {
		return *p
	}
	return false
}
