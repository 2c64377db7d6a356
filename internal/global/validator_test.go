package global

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"touch_crm/internal/common"
)

type color string

func (c color) IsValid() bool { return c == "red" || c == "blue" }

type sample struct {
	Name  string  `json:"cust_name" validate:"required,not_blank"`
	Email string  `json:"cust_email" validate:"omitempty,email"`
	Color color   `json:"color" validate:"omitempty,enum"`
	Shade *color  `json:"shade" validate:"omitnil,enum"`
	Nick  *string `json:"nick,omitempty" validate:"omitnil,min=1"`
}

func fieldErrors(t *testing.T, err error) []FieldError {
	t.Helper()
	var appErr *common.Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, common.StatusUnprocessableEntity, appErr.StatusCode)
	fields, ok := appErr.Details.([]FieldError)
	require.True(t, ok)
	return fields
}

func TestValidateStruct_Valid(t *testing.T) {
	blue := color("blue")
	assert.NoError(t, ValidateStruct(sample{Name: "김철수", Color: "red", Shade: &blue}))
	assert.NoError(t, ValidateStruct(&sample{Name: "a"}))
}

func TestValidateStruct_UsesJSONNames(t *testing.T) {
	err := ValidateStruct(sample{Email: "nope"})
	fields := fieldErrors(t, err)
	assert.ElementsMatch(t, []FieldError{
		{Field: "cust_name", Tag: "required"},
		{Field: "cust_email", Tag: "email"},
	}, fields)
}

func TestValidateStruct_Enum(t *testing.T) {
	green := color("green")
	err := ValidateStruct(sample{Name: "a", Color: "green", Shade: &green})
	fields := fieldErrors(t, err)
	assert.ElementsMatch(t, []FieldError{
		{Field: "color", Tag: "enum"},
		{Field: "shade", Tag: "enum"},
	}, fields)
}

func TestValidateStruct_BlankAndPointerMin(t *testing.T) {
	empty := ""
	err := ValidateStruct(sample{Name: "   ", Nick: &empty})
	fields := fieldErrors(t, err)
	assert.ElementsMatch(t, []FieldError{
		{Field: "cust_name", Tag: "not_blank"},
		{Field: "nick", Tag: "min", Param: "1"},
	}, fields)
}
