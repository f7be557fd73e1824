package services

import (
	"errors"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/markethub/marketcli/internal/client/api"
	"github.com/markethub/marketcli/internal/client/models"
)

var validate = validator.New()

// ValidationErrors maps a form field to the message shown inline next to it.
// Validation happens before any request is built; a non-empty result means
// nothing reaches the network.
type ValidationErrors map[string]string

func (v ValidationErrors) Error() string {
	fields := make([]string, 0, len(v))
	for f := range v {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(v))
	for _, f := range fields {
		parts = append(parts, v[f])
	}
	return strings.Join(parts, "; ")
}

// Field returns the message for a single field, or "".
func (v ValidationErrors) Field(name string) string {
	return v[name]
}

// AsValidationErrors unwraps err into ValidationErrors, if it is one.
func AsValidationErrors(err error) (ValidationErrors, bool) {
	var verrs ValidationErrors
	if errors.As(err, &verrs) {
		return verrs, true
	}
	return nil, false
}

var productMessages = map[string]string{
	"Name":     "Product name is required",
	"Price":    "Price is required",
	"Category": "Please select a category",
}

// ValidateProductForm applies the storefront's create/update rules: name and
// price non-empty, category selected from the vocabulary, description
// optional. Price is deliberately only checked for presence, not numeric
// range; the backend re-validates.
func ValidateProductForm(form api.ProductForm, vocabulary []models.Category) ValidationErrors {
	verrs := collect(form, productMessages)

	if form.Category != "" && len(vocabulary) > 0 && !models.ContainsCategory(vocabulary, form.Category) {
		verrs["Category"] = productMessages["Category"]
	}

	if len(verrs) == 0 {
		return nil
	}
	return verrs
}

var registerMessages = map[string]string{
	"Name":     "Name is required",
	"Email":    "A valid email is required",
	"Phone":    "Phone is required",
	"Password": "Password is required",
}

// ValidateRegisterForm checks the registration fields before the multipart
// request is assembled.
func ValidateRegisterForm(form api.RegisterForm) ValidationErrors {
	verrs := collect(form, registerMessages)
	if len(verrs) == 0 {
		return nil
	}
	return verrs
}

// ValidateProfileForm checks the profile update fields.
func ValidateProfileForm(form api.ProfileForm) ValidationErrors {
	verrs := collect(form, registerMessages)
	if len(verrs) == 0 {
		return nil
	}
	return verrs
}

func collect(form any, messages map[string]string) ValidationErrors {
	verrs := make(ValidationErrors)

	err := validate.Struct(form)
	if err == nil {
		return verrs
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		verrs["_"] = err.Error()
		return verrs
	}

	for _, fe := range fieldErrs {
		msg, ok := messages[fe.StructField()]
		if !ok {
			msg = fe.StructField() + " is invalid"
		}
		verrs[fe.StructField()] = msg
	}
	return verrs
}
