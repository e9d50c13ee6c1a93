package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOptionsNormalize(t *testing.T) {
	t.Run("zero value gets defaults", func(t *testing.T) {
		var opts Options
		opts.Normalize()

		assert.Equal(t, 3, opts.MaxIterations)
		assert.Equal(t, 12, opts.MaxSources)
		assert.Equal(t, 4, opts.MaxSourcesPerQuestion)
		assert.Equal(t, 5, opts.SearchResultsPerQuery)
		assert.Equal(t, 6, opts.SummarizerSourceLimit)
		assert.Equal(t, ReportLengthMedium, opts.ReportLength)
		assert.True(t, opts.DiversityEnabled())
		assert.True(t, opts.MemoryEnabled())
		assert.Equal(t, 3, opts.MemoryLimit())
	})

	t.Run("values clamp to bounds", func(t *testing.T) {
		opts := Options{
			MaxIterations:         99,
			MaxSources:            1,
			MaxSourcesPerQuestion: 50,
			SearchResultsPerQuery: -2,
			SummarizerSourceLimit: 100,
			ReportLength:          "epic",
		}
		opts.Normalize()

		assert.Equal(t, 10, opts.MaxIterations)
		assert.Equal(t, 3, opts.MaxSources)
		assert.Equal(t, 12, opts.MaxSourcesPerQuestion)
		assert.Equal(t, 1, opts.SearchResultsPerQuery)
		assert.Equal(t, 20, opts.SummarizerSourceLimit)
		assert.Equal(t, ReportLengthMedium, opts.ReportLength)
	})

	t.Run("explicit false memory flag survives", func(t *testing.T) {
		off := false
		opts := Options{IncludeSessionMemory: &off}
		opts.Normalize()
		assert.False(t, opts.MemoryEnabled())
	})

	t.Run("memory limit clamps", func(t *testing.T) {
		limit := 99
		opts := Options{SessionMemoryLimit: &limit}
		opts.Normalize()
		assert.Equal(t, 8, opts.MemoryLimit())

		zero := 0
		opts = Options{SessionMemoryLimit: &zero}
		opts.Normalize()
		assert.Equal(t, 0, opts.MemoryLimit())
	})
}

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()
	assert.Equal(t, 3, opts.MaxIterations)
	assert.Equal(t, ReportLengthMedium, opts.ReportLength)
	assert.True(t, opts.DiversityEnabled())
}
