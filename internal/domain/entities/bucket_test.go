package entities_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scoopforge/bucketsync/internal/domain/entities"
)

func TestRegistry_UnmarshalJSON(t *testing.T) {
	t.Parallel()

	t.Run("should preserve the declaration order of the source file", func(t *testing.T) {
		t.Parallel()

		// given
		data := []byte(`{
			"zulu": "https://example.com/zulu.git",
			"alpha": "https://example.com/alpha.git",
			"mike": "https://example.com/mike.git"
		}`)

		// when
		var registry entities.Registry
		err := json.Unmarshal(data, &registry)

		// then
		require.NoError(t, err)
		require.Equal(t, 3, registry.Len())
		assert.Equal(t, "zulu", registry.Buckets[0].Name)
		assert.Equal(t, "alpha", registry.Buckets[1].Name)
		assert.Equal(t, "mike", registry.Buckets[2].Name)
		assert.Equal(t, "https://example.com/alpha.git", registry.Buckets[1].URL)
	})

	t.Run("should decode an empty object to an empty registry", func(t *testing.T) {
		t.Parallel()

		// given
		data := []byte(`{}`)

		// when
		var registry entities.Registry
		err := json.Unmarshal(data, &registry)

		// then
		require.NoError(t, err)
		assert.Equal(t, 0, registry.Len())
	})

	t.Run("should reject a JSON array", func(t *testing.T) {
		t.Parallel()

		// given
		data := []byte(`["main", "extras"]`)

		// when
		var registry entities.Registry
		err := json.Unmarshal(data, &registry)

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "JSON object")
	})

	t.Run("should reject a non-string URL value", func(t *testing.T) {
		t.Parallel()

		// given
		data := []byte(`{"main": {"url": "https://example.com"}}`)

		// when
		var registry entities.Registry
		err := json.Unmarshal(data, &registry)

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), `bucket "main"`)
	})
}
