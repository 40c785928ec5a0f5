package service

import (
	"testing"

	"github.com/smallbiznis/tycoon/internal/employee/domain"
	"github.com/smallbiznis/tycoon/internal/rng"
	"github.com/stretchr/testify/assert"
)

func TestGenerateTraitsDeterministic(t *testing.T) {
	// Base draws land on 1.0 exactly: 0.8 + 0.5*0.4.
	random := &rng.Fixed{Floats: []float64{0.5, 0.5}, Ints: []int{0}}

	got := generateTraits("developer", random)
	assert.InDelta(t, 1.2, got.productivity, 1e-9)
	assert.InDelta(t, 0.9, got.morale, 1e-9)
	assert.Equal(t, 2, got.experience)
}

func TestGenerateTraitsKeywordOrder(t *testing.T) {
	// "senior developer" must resolve to developer, not senior: the
	// multiplier table is matched in declaration order.
	random := &rng.Fixed{Floats: []float64{0.5, 0.5}, Ints: []int{1}}

	got := generateTraits("Senior Developer", random)
	assert.InDelta(t, 1.2, got.productivity, 1e-9)
	assert.InDelta(t, 0.9, got.morale, 1e-9)
	assert.Equal(t, 3, got.experience)
}

func TestGenerateTraitsUnknownPosition(t *testing.T) {
	random := &rng.Fixed{Floats: []float64{0.25, 0.75}, Ints: []int{0}}

	got := generateTraits("astronaut", random)
	assert.InDelta(t, 0.9, got.productivity, 1e-9)
	assert.InDelta(t, 1.1, got.morale, 1e-9)
	assert.Equal(t, 1, got.experience)
}

func TestGenerateTraitsClamps(t *testing.T) {
	random := &rng.Fixed{Floats: []float64{0.999999, 0.0}, Ints: []int{1}}

	got := generateTraits("senior", random)
	assert.LessOrEqual(t, got.productivity, domain.MaxScore)
	assert.GreaterOrEqual(t, got.morale, domain.MinScore)
	assert.GreaterOrEqual(t, got.experience, domain.MinExperience)
	assert.LessOrEqual(t, got.experience, domain.MaxExperience)
}

func TestGenerateTraitsExecutiveExperienceRange(t *testing.T) {
	for _, roll := range []int{0, 1} {
		random := &rng.Fixed{Floats: []float64{0.5, 0.5}, Ints: []int{roll}}
		got := generateTraits("executive", random)
		assert.Equal(t, 7+roll, got.experience)
	}
}
