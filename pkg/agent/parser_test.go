package agent

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractJSON(t *testing.T) {
	type payload struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}

	t.Run("parses fenced json block", func(t *testing.T) {
		var out payload
		err := ExtractJSON("Here you go:\n```json\n{\"name\": \"a\", \"count\": 2}\n```\nDone.", &out)
		require.NoError(t, err)
		assert.Equal(t, "a", out.Name)
		assert.Equal(t, 2, out.Count)
	})

	t.Run("parses fence without language tag", func(t *testing.T) {
		var out payload
		err := ExtractJSON("```\n{\"name\": \"b\"}\n```", &out)
		require.NoError(t, err)
		assert.Equal(t, "b", out.Name)
	})

	t.Run("parses brace span inside prose", func(t *testing.T) {
		var out payload
		err := ExtractJSON("The answer is {\"name\": \"c\", \"count\": 1} as requested.", &out)
		require.NoError(t, err)
		assert.Equal(t, "c", out.Name)
	})

	t.Run("repairs trailing commas", func(t *testing.T) {
		var out payload
		err := ExtractJSON("{\"name\": \"d\", \"count\": 3,}", &out)
		require.NoError(t, err)
		assert.Equal(t, "d", out.Name)
		assert.Equal(t, 3, out.Count)
	})

	t.Run("no json object", func(t *testing.T) {
		var out payload
		err := ExtractJSON("I could not produce any structured output.", &out)
		assert.ErrorIs(t, err, ErrNoJSON)
	})

	t.Run("unrepairable garbage", func(t *testing.T) {
		var out payload
		err := ExtractJSON("{name: broken", &out)
		assert.ErrorIs(t, err, ErrNoJSON)
	})
}
