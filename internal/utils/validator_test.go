// internal/utils/validator_test.go
package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidEmail(t *testing.T) {
	valid := []string{
		"john@example.com",
		"john.doe+tag@example.co.uk",
		"ayse@firma.com.tr",
	}
	invalid := []string{
		"",
		"foo@bar",
		"foo bar@example.com",
		"@example.com",
		"foo@",
		"foo@@example.com",
	}

	for _, email := range valid {
		assert.True(t, IsValidEmail(email), "expected %q to be valid", email)
	}
	for _, email := range invalid {
		assert.False(t, IsValidEmail(email), "expected %q to be invalid", email)
	}
}

func TestValidateStructCustomTags(t *testing.T) {
	type form struct {
		Email string `validate:"required,contact_email"`
		Slug  string `validate:"omitempty,slug"`
	}

	assert.NoError(t, ValidateStruct(&form{Email: "john@example.com", Slug: "wall-panels"}))
	assert.Error(t, ValidateStruct(&form{Email: "foo@bar"}))
	assert.Error(t, ValidateStruct(&form{Email: "john@example.com", Slug: "Wall Panels"}))
}

func TestGetValidationErrors(t *testing.T) {
	type form struct {
		Name  string `validate:"required"`
		Email string `validate:"required,contact_email"`
	}

	err := ValidateStruct(&form{Email: "foo@bar"})
	fieldErrors := GetValidationErrors(err)

	assert.Len(t, fieldErrors, 2)
	assert.Equal(t, "name", fieldErrors[0].Field)
	assert.Equal(t, "Name is required", fieldErrors[0].Message)
	assert.Equal(t, "email", fieldErrors[1].Field)
	assert.Equal(t, "Invalid email format", fieldErrors[1].Message)
}

func TestGetValidationErrorsNonValidationError(t *testing.T) {
	assert.Empty(t, GetValidationErrors(assert.AnError))
	assert.Empty(t, GetValidationErrors(nil))
}
