package paysdk

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

const paymentTypeCard = "CARD"

var validate = newValidator()

// payRequestSubmission is the PATCH body that submits card details to the
// pay gateway.
type payRequestSubmission struct {
	CardDetails submittedCardDetails `json:"cardDetails" validate:"required"`
	// PaymentType is always CARD; wallet payments never travel this path.
	PaymentType string `json:"paymentType" validate:"required,eq=CARD"`
}

// submittedCardDetails is the wire shape of the card input. The number is
// unformatted digits and the month is zero-padded before marshalling.
type submittedCardDetails struct {
	Name         string              `json:"nameOnCard" validate:"required"`
	Number       string              `json:"number" validate:"required,numeric,min=12,max=19"`
	Expiry       submittedCardExpiry `json:"expiry" validate:"required"`
	SecurityCode string              `json:"securityCode" validate:"required,numeric,min=3,max=4"`
}

type submittedCardExpiry struct {
	Month string `json:"month" validate:"required,len=2,numeric"`
	Year  string `json:"year" validate:"required,len=2,numeric"`
}

// Validate ensures the submission matches the gateway schema before it is
// sent. The field validators gate user input; this catches wire-level
// mistakes in the integration itself.
func (r payRequestSubmission) Validate() error {
	if err := validate.Struct(r); err != nil {
		return normalizeValidationError(err)
	}
	return nil
}

// newSubmission builds the wire payload from the entered card details.
func newSubmission(details CardDetails) payRequestSubmission {
	return payRequestSubmission{
		CardDetails: submittedCardDetails{
			Name:   details.Name,
			Number: stripNonDigits(details.Number),
			Expiry: submittedCardExpiry{
				Month: padExpiryMonth(details.Expiry.Month),
				Year:  details.Expiry.Year,
			},
			SecurityCode: stripNonDigits(details.SecurityCode),
		},
		PaymentType: paymentTypeCard,
	}
}

// padExpiryMonth widens an unpadded month ("9") to the two-digit wire shape.
func padExpiryMonth(month string) string {
	if len(month) == 1 {
		return "0" + month
	}
	return month
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.Split(field.Tag.Get("json"), ",")[0]
		if name == "" || name == "-" {
			return field.Name
		}
		return name
	})
	return v
}

func normalizeValidationError(err error) error {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return err
	}
	first := validationErrs[0]
	return fmt.Errorf("%s %s", jsonPath(first), validationMessage(first))
}

func jsonPath(fe validator.FieldError) string {
	path := fe.Namespace()
	if idx := strings.Index(path, "."); idx >= 0 {
		path = path[idx+1:]
	}
	if path == "" {
		return fe.Field()
	}
	return path
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "len":
		return fmt.Sprintf("must be exactly %s characters", fe.Param())
	case "min":
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "max":
		return fmt.Sprintf("cannot exceed %s characters", fe.Param())
	case "numeric":
		return "must contain digits only"
	case "eq":
		return fmt.Sprintf("must equal %s", fe.Param())
	default:
		return fmt.Sprintf("failed validation: %s", fe.Tag())
	}
}
