package checkout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validForm() OrderForm {
	return OrderForm{
		FullName: "Rami Khalil",
		Phone:    "+96170123456",
		Address:  "Hamra Street, Beirut",
	}
}

func TestValidateFormAccepts(t *testing.T) {
	assert.Empty(t, ValidateForm(validForm()))

	f := validForm()
	f.Email = "rami@example.com"
	f.WhatsApp = "70 123 456"
	assert.Empty(t, ValidateForm(f))
}

func TestValidateFormRequiredFields(t *testing.T) {
	errs := ValidateForm(OrderForm{})
	require.Len(t, errs, 3)

	fields := make([]string, 0, len(errs))
	for _, e := range errs {
		fields = append(fields, e.Field)
	}
	assert.ElementsMatch(t, []string{"full_name", "address", "phone"}, fields)
}

func TestValidateFormWhitespaceIsNotEnough(t *testing.T) {
	f := validForm()
	f.FullName = "   "
	errs := ValidateForm(f)
	require.Len(t, errs, 1)
	assert.Equal(t, "full_name", errs[0].Field)
}

func TestValidateFormBadPhone(t *testing.T) {
	f := validForm()
	f.Phone = "0123"
	errs := ValidateForm(f)
	require.Len(t, errs, 1)
	assert.Equal(t, "phone", errs[0].Field)
}

func TestValidateFormOptionalFieldsOnlyCheckedWhenPresent(t *testing.T) {
	f := validForm()
	f.Email = "not-an-email"
	f.WhatsApp = "abc"
	errs := ValidateForm(f)
	require.Len(t, errs, 2)
}

func TestValidEmail(t *testing.T) {
	assert.True(t, ValidEmail("a@b.co"))
	assert.False(t, ValidEmail("a@b"))
	assert.False(t, ValidEmail("a b@c.co"))
}

func TestValidPhone(t *testing.T) {
	assert.True(t, ValidPhone("+96170123456"))
	assert.True(t, ValidPhone("70 123 456"))
	assert.False(t, ValidPhone("0777"))
	assert.False(t, ValidPhone("+phone"))
}
