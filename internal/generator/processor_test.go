package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wispcss/internal/cache"
)

func TestProcessorOneShotRendersEveryCandidateEachRun(t *testing.T) {
	sys := newTestSystem(t)
	proc := NewProcessor(sys, cache.NewOneShot())

	first := proc.Run([]string{"flex", "not-a-class"})
	assert.Contains(t, first, "display: flex;")

	second := proc.Run([]string{"flex"})
	assert.Contains(t, second, "display: flex;", "OneShot never remembers, so a repeat candidate regenerates")
}

func TestProcessorCachedModeOnlyGeneratesNewCandidates(t *testing.T) {
	sys := newTestSystem(t)
	cc := cache.New(1)
	proc := NewProcessor(sys, cc)

	proc.Run([]string{"flex"})
	require.Equal(t, cache.Cached, cc.State())

	full := proc.Stylesheet()
	assert.Contains(t, full, "display: flex;")

	proc.Run([]string{"flex", "block"})
	full = proc.Stylesheet()
	assert.Contains(t, full, "display: flex;")
	assert.Contains(t, full, "display: block;")
}

func TestProcessorDropsUnrecognizedCandidatesSilently(t *testing.T) {
	sys := newTestSystem(t)
	proc := NewProcessor(sys, cache.NewOneShot())
	out := proc.Run([]string{"totally-bogus-class"})
	assert.Empty(t, out)
}

func TestProcessorMergesGroupedTransformUtilitiesIntoOneSharedRule(t *testing.T) {
	sys := newTestSystem(t)
	proc := NewProcessor(sys, cache.NewOneShot())
	out := proc.Run([]string{"rotate-45", "scale-110"})
	assert.Contains(t, out, "transform:")
}
