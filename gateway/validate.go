package gateway

import (
	"errors"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

type rateInput struct {
	ProjectID string `validate:"required"`
	Rating    int    `validate:"min=1,max=5"`
}

var ratingMessages = map[string]string{
	"ProjectID": "Project id is required",
	"Rating":    "Rating must be between 1 and 5 stars",
}

// validateRating checks rateInput and converts the first failure into a
// ValidationError.
func validateRating(projectID string, rating int) error {
	err := getValidator().Struct(rateInput{ProjectID: projectID, Rating: rating})
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		field := fieldErrs[0].Field()
		return &ValidationError{Field: field, Message: ratingMessages[field]}
	}
	return &ValidationError{Message: err.Error()}
}
