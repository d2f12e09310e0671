package util

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fontQuery struct {
	Ext  string `validate:"omitempty,oneof=woff woff2 ttf otf eot"`
	Name string `validate:"strNotEmpty"`
}

func newTestValidator(t *testing.T) *validator.Validate {
	v := validator.New()
	require.NoError(t, v.RegisterValidation("strNotEmpty", StrNotEmpty))
	return v
}

func TestGenerateErrorMessagesValidation(t *testing.T) {
	v := newTestValidator(t)

	err := v.Struct(fontQuery{Ext: "svg", Name: "   "})
	require.Error(t, err)

	msgs := GenerateErrorMessages(err, map[string]string{"Ext": "ext"})
	require.Len(t, msgs, 2)
	assert.Equal(t, ApiError{Field: "ext", Message: "ext must be one of: woff, woff2, ttf, otf, eot"}, msgs[0])
	assert.Equal(t, "Name", msgs[1].Field)
	assert.Contains(t, msgs[1].Message, "must not be empty")
}

func TestGenerateErrorMessagesPlainError(t *testing.T) {
	msgs := GenerateErrorMessages(errors.New("boom"))
	assert.Equal(t, []ApiError{{Field: "Unknown", Message: "boom"}}, msgs)

	msgs = GenerateErrorMessages(errors.New("boom"), "dir")
	assert.Equal(t, []ApiError{{Field: "dir", Message: "boom"}}, msgs)
}

func TestStrNotEmpty(t *testing.T) {
	v := newTestValidator(t)

	assert.NoError(t, v.Var("Lobster", "strNotEmpty"))
	assert.Error(t, v.Var(" \t ", "strNotEmpty"))
	assert.Error(t, v.Var(12, "strNotEmpty"))
}
