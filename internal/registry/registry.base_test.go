// Package registry - Test registry generic: register/get/clear.
package registry

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_RegisterAndGet(t *testing.T) {
	r := NewRegistry[string]()

	isNew, err := r.Register("one", "giá trị")
	require.NoError(t, err)
	assert.True(t, isNew)

	got, exists := r.Get("one")
	require.True(t, exists)
	assert.Equal(t, "giá trị", got)

	_, exists = r.Get("missing")
	assert.False(t, exists)
}

func TestRegistry_RegisterOverwrite(t *testing.T) {
	r := NewRegistry[int]()

	isNew, err := r.Register("key", 1)
	require.NoError(t, err)
	assert.True(t, isNew)

	isNew, err = r.Register("key", 2)
	require.NoError(t, err)
	assert.False(t, isNew, "ghi đè item cũ phải trả về isNew=false")

	got, _ := r.Get("key")
	assert.Equal(t, 2, got)
}

func TestRegistry_EmptyNameRejected(t *testing.T) {
	r := NewRegistry[int]()
	_, err := r.Register("", 1)
	assert.Error(t, err)
}

func TestRegistry_GetOrCreate(t *testing.T) {
	r := NewRegistry[int]()
	calls := 0

	got, err := r.GetOrCreate("n", func() (int, error) {
		calls++
		return 7, nil
	})
	require.NoError(t, err)
	assert.Equal(t, 7, got)

	got, err = r.GetOrCreate("n", func() (int, error) {
		calls++
		return 9, nil
	})
	require.NoError(t, err)
	assert.Equal(t, 7, got, "item đã tồn tại không được tạo lại")
	assert.Equal(t, 1, calls)

	_, err = r.GetOrCreate("fail", func() (int, error) {
		return 0, errors.New("boom")
	})
	assert.Error(t, err)
}

func TestRegistry_ClearAll(t *testing.T) {
	r := NewRegistry[string]()
	r.Register("a", "x")
	r.Register("b", "y")

	cleaned := 0
	count, err := r.ClearAll(func(string) error {
		cleaned++
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 2, count)
	assert.Equal(t, 2, cleaned)
	assert.Empty(t, r.Names())
}
