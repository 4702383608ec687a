package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeVariables(t *testing.T) {
	t.Run("Round trip preserves the mapping", func(t *testing.T) {
		original := Variables{
			"gold":  float64(10),
			"flags": []interface{}{"a"},
		}

		encoded, err := EncodeVariables(original)
		require.NoError(t, err)

		decoded := DecodeVariables(encoded)
		assert.Equal(t, original, decoded)
	})

	t.Run("Nil mapping encodes as empty object", func(t *testing.T) {
		encoded, err := EncodeVariables(nil)
		require.NoError(t, err)
		assert.Equal(t, "{}", encoded)
	})

	t.Run("Empty stored value decodes to empty mapping", func(t *testing.T) {
		assert.Equal(t, Variables{}, DecodeVariables(""))
		assert.Equal(t, Variables{}, DecodeVariables("   "))
	})

	t.Run("Malformed stored value decodes to empty mapping", func(t *testing.T) {
		assert.Equal(t, Variables{}, DecodeVariables("{not json"))
		assert.Equal(t, Variables{}, DecodeVariables("[1,2,3]"))
		assert.Equal(t, Variables{}, DecodeVariables("null"))
	})
}
