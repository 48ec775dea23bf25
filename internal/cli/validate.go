package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/zarlcorp/zperson/internal/format"
	"github.com/zarlcorp/zperson/internal/person"
)

// GenerateRequest holds the arguments of a generate run.
type GenerateRequest struct {
	Sex    string `validate:"omitempty,oneof=male female m f"`
	MinAge int    `validate:"gte=0"`
	MaxAge int    `validate:"gtefield=MinAge,lte=150"`
	Count  int    `validate:"gte=1,lte=100000"`
	Format string `validate:"required"`
	Seed   uint64
}

// flag names used in validation messages
var flagNames = map[string]string{
	"Sex":    "--sex",
	"MinAge": "--min-age",
	"MaxAge": "--max-age",
	"Count":  "--count",
	"Format": "--format",
}

var validate = validator.New()

// Validate checks the request and reports the first problem in terms of
// the command-line flags.
func (r GenerateRequest) Validate() error {
	r.Sex = strings.ToLower(strings.TrimSpace(r.Sex))

	err := validate.Struct(r)
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return describeFieldError(verrs[0])
	}
	if err != nil {
		return fmt.Errorf("validate: %w", err)
	}

	if _, err := format.Parse(r.Format); err != nil {
		return err
	}
	return nil
}

// Options converts a validated request into generator options.
func (r GenerateRequest) Options() (person.GenerateOptions, error) {
	opts := person.GenerateOptions{MinAge: r.MinAge, MaxAge: r.MaxAge}
	if r.Sex == "" {
		return opts, nil
	}
	sex, err := person.ParseSex(r.Sex)
	if err != nil {
		return opts, err
	}
	opts.Sex = sex
	return opts, nil
}

func describeFieldError(fe validator.FieldError) error {
	name := flagNames[fe.Field()]
	if name == "" {
		name = fe.Field()
	}

	switch fe.Tag() {
	case "oneof":
		return fmt.Errorf("%s must be male or female, got %q", name, fe.Value())
	case "gte":
		return fmt.Errorf("%s must be at least %s, got %v", name, fe.Param(), fe.Value())
	case "lte":
		return fmt.Errorf("%s must be at most %s, got %v", name, fe.Param(), fe.Value())
	case "gtefield":
		return fmt.Errorf("%s must not be less than %s, got %v", name, flagNames[fe.Param()], fe.Value())
	case "required":
		return fmt.Errorf("%s is required", name)
	}
	return fmt.Errorf("%s is invalid (%s)", name, fe.Tag())
}
