package statblock

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/statblock-api/internal/errors"
)

func TestAbilityModifier(t *testing.T) {
	testCases := []struct {
		score    int
		expected int
	}{
		{1, -5},
		{3, -4},
		{8, -1},
		{9, -1},
		{10, 0},
		{11, 0},
		{16, 3},
		{30, 10},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, AbilityModifier(tc.score), "score %d", tc.score)
	}

	for s := 1; s <= 30; s++ {
		assert.Equal(t, int(math.Floor(float64(s-10)/2)), AbilityModifier(s), "score %d", s)
	}
}

func TestProficiencyBonus(t *testing.T) {
	assert.Equal(t, 2, ProficiencyBonus(0.25))
	assert.Equal(t, 3, ProficiencyBonus(5))
	assert.Equal(t, 6, ProficiencyBonus(20))

	steps := map[float64]int{
		0: 2, 4: 2, 8: 3, 9: 4, 12: 4, 13: 5, 16: 5, 17: 6, 21: 7, 24: 7, 25: 8, 28: 8, 29: 9, 30: 9,
	}
	for cr, expected := range steps {
		assert.Equal(t, expected, ProficiencyBonus(cr), "cr %v", cr)
	}

	prev := ProficiencyBonus(0)
	for cr := 0.0; cr <= 30; cr += 0.125 {
		pb := ProficiencyBonus(cr)
		assert.GreaterOrEqual(t, pb, prev, "cr %v", cr)
		prev = pb
	}
}

func TestParseChallengeRating(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected float64
		wantErr  bool
	}{
		{name: "quarter", input: "1/4", expected: 0.25},
		{name: "eighth", input: "1/8", expected: 0.125},
		{name: "half", input: "1/2", expected: 0.5},
		{name: "integer", input: "5", expected: 5},
		{name: "decimal", input: "0.25", expected: 0.25},
		{name: "padded", input: " 1 / 2 ", expected: 0.5},
		{name: "zero denominator", input: "1/0", wantErr: true},
		{name: "expression", input: "2+2", wantErr: true},
		{name: "negative", input: "-1", wantErr: true},
		{name: "words", input: "abc", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cr, err := ParseChallengeRating(tc.input)
			if tc.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsInvalidArgument(err))
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tc.expected, cr, 1e-9)
		})
	}
}

func TestExperienceForCR(t *testing.T) {
	assert.Equal(t, 10, ExperienceForCR(0))
	assert.Equal(t, 25, ExperienceForCR(0.125))
	assert.Equal(t, 50, ExperienceForCR(0.25))
	assert.Equal(t, 1800, ExperienceForCR(5))
	assert.Equal(t, 155000, ExperienceForCR(30))
}

func TestFormatModifier(t *testing.T) {
	assert.Equal(t, "+0", FormatModifier(0))
	assert.Equal(t, "+3", FormatModifier(3))
	assert.Equal(t, "-1", FormatModifier(-1))
}
