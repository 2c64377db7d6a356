package common

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestNotFoundError_MatchesSentinel(t *testing.T) {
	err := NewNotFoundError("고객을", "김철")
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.Equal(t, "김철 고객을 찾을수 없습니다.", err.Error())

	var appErr *Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, StatusNotFound, appErr.StatusCode)
	assert.Equal(t, map[string]any{"id": "김철"}, appErr.Details)
}

func TestNotFoundError_SurvivesWrapping(t *testing.T) {
	err := fmt.Errorf("update touch: %w", NewNotFoundError("터치를", "abc"))
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NotErrorIs(t, err, ErrInvalidIdentifier)
}

func TestInvalidIdentifierError(t *testing.T) {
	err := NewInvalidIdentifierError("xyz")
	var appErr *Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, StatusBadRequest, appErr.StatusCode)
	assert.Equal(t, ErrCodeInvalidIdentifier.Code, appErr.Code.Code)
	assert.Contains(t, appErr.Message, "xyz")
}

func TestValidationError_Is422(t *testing.T) {
	err := NewValidationError([]string{"cust_name"})
	var appErr *Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, StatusUnprocessableEntity, appErr.StatusCode)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestConvertMongoError(t *testing.T) {
	cases := []struct {
		name string
		in   error
		want error
	}{
		{"nil", nil, nil},
		{"no documents", mongo.ErrNoDocuments, ErrNotFound},
		{"wrapped no documents", fmt.Errorf("find: %w", mongo.ErrNoDocuments), ErrNotFound},
		{"duplicate key", mongo.WriteException{WriteErrors: []mongo.WriteError{{Code: 11000, Message: "dup"}}}, ErrMongoDuplicate},
		{"write exception", mongo.WriteException{WriteErrors: []mongo.WriteError{{Code: 121, Message: "validation"}}}, ErrMongoWrite},
		{"command query", mongo.CommandError{Code: 301, Message: "cursor"}, ErrMongoQuery},
		{"command system", mongo.CommandError{Code: 8000, Message: "atlas"}, ErrMongoSystem},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ConvertMongoError(tc.in)
			if tc.want == nil {
				assert.NoError(t, got)
				return
			}
			assert.Same(t, tc.want, got)
		})
	}
}

func TestConvertMongoError_KeepsAppError(t *testing.T) {
	in := NewNotFoundError("고객을", "x")
	assert.Same(t, in, ConvertMongoError(in))
}

func TestConvertMongoError_Unknown(t *testing.T) {
	raw := errors.New("boom")
	got := ConvertMongoError(raw)

	var appErr *Error
	require.True(t, errors.As(got, &appErr))
	assert.Equal(t, StatusInternalServerError, appErr.StatusCode)
	assert.ErrorIs(t, got, raw)
}
