package config

import "fmt"

// ValidationError describes a single invalid configuration field.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func validatePositiveInt(field string, value int) []ValidationError {
	if value <= 0 {
		return []ValidationError{{Field: field, Message: "must be positive"}}
	}
	return nil
}

func validateNonNegative(field string, value float64) []ValidationError {
	if value < 0 {
		return []ValidationError{{Field: field, Message: "must be non-negative"}}
	}
	return nil
}

// Validate checks the configuration and returns all problems found.
func (c *Config) Validate() []ValidationError {
	var errs []ValidationError

	if c.Input.Plan.Path == "" {
		errs = append(errs, ValidationError{Field: "input.plan.path", Message: "is required"})
	}

	errs = append(errs, validatePositiveInt("section.x_size", c.Section.XSize)...)
	errs = append(errs, validatePositiveInt("section.y_size", c.Section.YSize)...)
	errs = append(errs, validateNonNegative("section.margin", c.Section.Margin)...)
	errs = append(errs, validateNonNegative("section.height", c.Section.Height)...)

	if c.Server.Addr == "" {
		errs = append(errs, ValidationError{Field: "server.addr", Message: "is required"})
	}

	return errs
}
