package shared

import (
	"encoding/json"
	"errors"
	"net/http"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/bunshock/hipbank/internal/domain"
)

var (
	mobilePattern   = regexp.MustCompile(`^\+?\d{1,4}?[-.\s]?\(?\d{1,3}?\)?[-.\s]?\d{1,4}[-.\s]?\d{1,4}[-.\s]?\d{1,9}$`)
	tenDigitPattern = regexp.MustCompile(`^\d{10}$`)
)

// Global validator instance for reuse. Field names in validation errors
// come from json tags so they match the request body keys.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	mustRegister(v, "mobile", func(fl validator.FieldLevel) bool {
		return mobilePattern.MatchString(fl.Field().String())
	})
	mustRegister(v, "accounttype", func(fl validator.FieldLevel) bool {
		_, err := domain.ParseAccountType(fl.Field().String())
		return err == nil
	})
	mustRegister(v, "cardtype", func(fl validator.FieldLevel) bool {
		_, err := domain.ParseCardType(fl.Field().String())
		return err == nil
	})
	mustRegister(v, "loantype", func(fl validator.FieldLevel) bool {
		_, err := domain.ParseLoanType(fl.Field().String())
		return err == nil
	})
	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(err)
	}
}

// IsMobileNumber reports whether s is an acceptable mobile number literal.
func IsMobileNumber(s string) bool {
	return mobilePattern.MatchString(s)
}

// IsTenDigits reports whether s is exactly 10 decimal digits, the shape of
// every account, card and loan number.
func IsTenDigits(s string) bool {
	return tenDigitPattern.MatchString(s)
}

// DecodeJSON decodes the request body into the given struct.
func DecodeJSON(r *http.Request, v any) error {
	return json.NewDecoder(r.Body).Decode(v)
}

// ValidateRequest validates the given struct using the shared validator.
func ValidateRequest(v any) error {
	return validate.Struct(v)
}

// ValidationMessages turns a validation failure into the field-to-message
// map of the error envelope. Errors that are not field validation failures
// (a malformed body, for instance) land under the "request" key.
func ValidationMessages(err error) map[string]string {
	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return map[string]string{"request": err.Error()}
	}
	out := make(map[string]string, len(fieldErrors))
	for _, fe := range fieldErrors {
		out[fe.Field()] = validationMessage(fe)
	}
	return out
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fieldLabel(fe.Field()) + " cannot be null or empty"
	case "email":
		return "Invalid email address format"
	case "mobile":
		return "Invalid mobile number format"
	case "accounttype":
		return "Invalid account type"
	case "cardtype":
		return "Invalid card type"
	case "loantype":
		return "Invalid loan type"
	case "min", "max":
		if fe.Field() == "name" {
			return "Name must be between 3 and 50 characters"
		}
		return fieldLabel(fe.Field()) + " has an invalid length"
	case "gt":
		return fieldLabel(fe.Field()) + " must be greater than " + fe.Param()
	case "gte":
		return fieldLabel(fe.Field()) + " must be greater than or equal to " + fe.Param()
	default:
		return fieldLabel(fe.Field()) + " is invalid"
	}
}

var fieldLabels = map[string]string{
	"name":              "Name",
	"email":             "Email address",
	"mobileNumber":      "Mobile number",
	"accountType":       "Account type",
	"branchAddress":     "Branch address",
	"cardType":          "Card type",
	"cardLimit":         "Card limit",
	"loanType":          "Loan type",
	"totalLoan":         "Total loan",
	"amountPaid":        "Amount paid",
	"outstandingAmount": "Outstanding amount",
	"amount":            "Amount",
}

func fieldLabel(field string) string {
	if label, ok := fieldLabels[field]; ok {
		return label
	}
	return field
}
