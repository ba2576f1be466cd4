package facility

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var ErrInvalidConfig = errors.New("invalid facility config")

var validate = validator.New()

// ValidateConfig checks struct constraints and the opening hours. Every error
// wraps ErrInvalidConfig.
func ValidateConfig(cfg Config) error {
	if err := validate.Struct(cfg); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				msgs = append(msgs, fieldMessage(fe))
			}
			return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(msgs, "; "))
		}
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	if !cfg.IsBookable() {
		return nil
	}

	if err := cfg.OpeningHours.Validate(); err != nil {
		return fmt.Errorf("%w: opening_hours: %v", ErrInvalidConfig, err)
	}

	return nil
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "required_if":
		return fe.Field() + " is required"
	case "oneof":
		return fe.Field() + " must be one of: " + fe.Param()
	case "gte":
		return fe.Field() + " must be greater than or equal to " + fe.Param()
	case "lte":
		return fe.Field() + " must be less than or equal to " + fe.Param()
	case "len":
		return fe.Field() + " must be " + fe.Param() + " characters long"
	default:
		return fe.Field() + " is invalid"
	}
}
