package registry

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"touch_crm/internal/common"
)

func TestRegistry_RegisterAndGet(t *testing.T) {
	reg := NewRegistry[string]()

	isNew, err := reg.Register("customers", "a")
	require.NoError(t, err)
	assert.True(t, isNew)

	isNew, err = reg.Register("customers", "b")
	require.NoError(t, err)
	assert.False(t, isNew)

	v, ok := reg.Get("customers")
	assert.True(t, ok)
	assert.Equal(t, "b", v)

	_, ok = reg.Get("touchs")
	assert.False(t, ok)
}

func TestRegistry_EmptyName(t *testing.T) {
	reg := NewRegistry[int]()
	_, err := reg.Register("", 1)
	assert.ErrorIs(t, err, common.ErrInvalidInput)
}

func TestRegistry_MustGet(t *testing.T) {
	reg := NewRegistry[int]()
	_, err := reg.MustGet("touchs")
	assert.ErrorIs(t, err, common.ErrNotFound)

	_, _ = reg.Register("touchs", 7)
	v, err := reg.MustGet("touchs")
	require.NoError(t, err)
	assert.Equal(t, 7, v)
}

func TestRegistry_NamesAndClearAll(t *testing.T) {
	reg := NewRegistry[string]()
	_, _ = reg.Register("touchs", "t")
	_, _ = reg.Register("customers", "c")
	assert.Equal(t, []string{"customers", "touchs"}, reg.Names())

	var cleaned []string
	count, err := reg.ClearAll(func(s string) error {
		cleaned = append(cleaned, s)
		if s == "t" {
			return errors.New("close failed")
		}
		return nil
	})
	assert.Error(t, err)
	assert.Equal(t, 2, count)
	assert.ElementsMatch(t, []string{"c", "t"}, cleaned)
	assert.Empty(t, reg.Names())
}
