package entities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scoopforge/bucketsync/internal/domain/entities"
)

func TestParseSubmoduleStatus(t *testing.T) {
	t.Parallel()

	t.Run("should keep embedded whitespace in the description", func(t *testing.T) {
		t.Parallel()

		// given
		output := "abc123 bucket-name Some description with spaces\n"

		// when
		submodules, err := entities.ParseSubmoduleStatus(output)

		// then
		require.NoError(t, err)
		require.Len(t, submodules, 1)
		assert.Equal(t, "abc123", submodules[0].Revision)
		assert.Equal(t, "bucket-name", submodules[0].Path)
		assert.Equal(t, "Some description with spaces", submodules[0].Description)
	})

	t.Run("should parse a line without a description", func(t *testing.T) {
		t.Parallel()

		// given
		output := "-abc123 bucket-name\n"

		// when
		submodules, err := entities.ParseSubmoduleStatus(output)

		// then
		require.NoError(t, err)
		require.Len(t, submodules, 1)
		assert.Equal(t, "-abc123", submodules[0].Revision,
			"the state prefix stays attached to the revision")
		assert.Equal(t, "bucket-name", submodules[0].Path)
		assert.Empty(t, submodules[0].Description)
	})

	t.Run("should parse multiple indented lines", func(t *testing.T) {
		t.Parallel()

		// given
		output := " abc123 main (v1.0-2-gabc123)\n def456 extras (heads/master)\n"

		// when
		submodules, err := entities.ParseSubmoduleStatus(output)

		// then
		require.NoError(t, err)
		require.Len(t, submodules, 2)
		assert.Equal(t, "main", submodules[0].Path)
		assert.Equal(t, "(v1.0-2-gabc123)", submodules[0].Description)
		assert.Equal(t, "extras", submodules[1].Path)
	})

	t.Run("should ignore blank lines", func(t *testing.T) {
		t.Parallel()

		// given
		output := "\n abc123 main (v1.0)\n\n"

		// when
		submodules, err := entities.ParseSubmoduleStatus(output)

		// then
		require.NoError(t, err)
		assert.Len(t, submodules, 1)
	})

	t.Run("should return no records for empty output", func(t *testing.T) {
		t.Parallel()

		// given
		output := ""

		// when
		submodules, err := entities.ParseSubmoduleStatus(output)

		// then
		require.NoError(t, err)
		assert.Empty(t, submodules)
	})

	t.Run("should fail the whole read on a malformed line", func(t *testing.T) {
		t.Parallel()

		// given
		output := " abc123 main (v1.0)\nonly-one-field\n"

		// when
		submodules, err := entities.ParseSubmoduleStatus(output)

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "only-one-field")
		assert.Nil(t, submodules)
	})
}
