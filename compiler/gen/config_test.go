package gen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		c, err := NewConfig()
		require.NoError(t, err)
		assert.Equal(t, DefaultModule, c.Module)
		assert.Nil(t, c.ScalarTypes)
	})
	t.Run("module", func(t *testing.T) {
		c, err := NewConfig(WithModule("blog"))
		require.NoError(t, err)
		assert.Equal(t, "blog", c.Module)
	})
	t.Run("empty module rejected", func(t *testing.T) {
		_, err := NewConfig(WithModule(""))
		assert.Error(t, err)
	})
	t.Run("empty scalar mapping rejected", func(t *testing.T) {
		_, err := NewConfig(WithScalarType("Citext", ""))
		assert.Error(t, err)
		_, err = NewConfig(WithScalarType("", "str"))
		assert.Error(t, err)
	})
}

func TestScalarResolution(t *testing.T) {
	c, err := NewConfig(
		WithScalarType("Citext", "str"),
		WithScalarType("Int", "int32"),
	)
	require.NoError(t, err)

	t.Run("builtin", func(t *testing.T) {
		got, ok := c.scalar("String")
		assert.True(t, ok)
		assert.Equal(t, "str", got)
	})
	t.Run("added", func(t *testing.T) {
		got, ok := c.scalar("Citext")
		assert.True(t, ok)
		assert.Equal(t, "str", got)
	})
	t.Run("override wins over builtin", func(t *testing.T) {
		got, ok := c.scalar("Int")
		assert.True(t, ok)
		assert.Equal(t, "int32", got)
	})
	t.Run("unknown", func(t *testing.T) {
		_, ok := c.scalar("Point")
		assert.False(t, ok)
	})
}
