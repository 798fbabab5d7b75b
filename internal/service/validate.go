package service

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// validateDateRange checks the ISO start/end pair every statistics call takes.
func validateDateRange(start, end string) error {
	if err := validate.Var(start, "required,datetime=2006-01-02"); err != nil {
		return fmt.Errorf("invalid start_date %q: %w", start, err)
	}
	if err := validate.Var(end, "required,datetime=2006-01-02"); err != nil {
		return fmt.Errorf("invalid end_date %q: %w", end, err)
	}
	if end < start {
		return fmt.Errorf("end_date %q precedes start_date %q", end, start)
	}
	return nil
}
