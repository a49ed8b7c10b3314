package statblock

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatch(t *testing.T) {
	t.Run("misspelled keyword returns the number on its line", func(t *testing.T) {
		m, ok := Match([]string{"hp", "hit", "points"}, []string{"Goblin", "Hit Pionts 7 (2d6)"}, 2)
		require.True(t, ok)
		assert.Equal(t, "7", m.Value)
		assert.Equal(t, "hit", m.Keyword)
		assert.Equal(t, 1, m.Line)
		assert.Equal(t, FuzzyConfidence, m.Confidence)
	})

	t.Run("confidence is fixed regardless of distance", func(t *testing.T) {
		m, ok := Match([]string{"armor"}, []string{"Armr 12"}, 2)
		require.True(t, ok)
		assert.Equal(t, "12", m.Value)
		assert.Equal(t, 0.7, m.Confidence)
	})

	t.Run("number before the keyword is used when none follows", func(t *testing.T) {
		m, ok := Match([]string{"speed"}, []string{"30 ft sped"}, 2)
		require.True(t, ok)
		assert.Equal(t, "30", m.Value)
	})

	t.Run("fractions are numeric", func(t *testing.T) {
		m, ok := Match([]string{"challenge"}, []string{"Challange 1/4 (50 XP)"}, 2)
		require.True(t, ok)
		assert.Equal(t, "1/4", m.Value)
	})

	t.Run("short keywords need an exact token", func(t *testing.T) {
		_, ok := Match([]string{"ac"}, []string{"an 15"}, 2)
		assert.False(t, ok)

		m, ok := Match([]string{"ac"}, []string{"AC 15"}, 2)
		require.True(t, ok)
		assert.Equal(t, "15", m.Value)
	})

	t.Run("three and four letter keywords use the full threshold", func(t *testing.T) {
		m, ok := Match([]string{"walk"}, []string{"Wlak 30 ft"}, 2)
		require.True(t, ok)
		assert.Equal(t, "30", m.Value)

		m, ok = Match([]string{"hit"}, []string{"Hti 12"}, 2)
		require.True(t, ok)
		assert.Equal(t, "12", m.Value)

		m, ok = Match([]string{"spd"}, []string{"Sdp 40"}, 2)
		require.True(t, ok)
		assert.Equal(t, "40", m.Value)

		_, ok = Match([]string{"hit"}, []string{"Hti 12"}, 1)
		assert.False(t, ok)
	})

	t.Run("keyword without a number on its line is skipped", func(t *testing.T) {
		_, ok := Match([]string{"speed"}, []string{"Speed is fast"}, 2)
		assert.False(t, ok)
	})

	t.Run("nothing within threshold", func(t *testing.T) {
		_, ok := Match([]string{"speed"}, []string{"Goblin", "Armor Class 15"}, 2)
		assert.False(t, ok)
	})

	t.Run("only the lines given are scanned", func(t *testing.T) {
		lines := []string{"Goblin", "Small humanoid", "Armor Class 15", "Hit Points 7"}
		_, ok := Match([]string{"hit"}, window(lines, 3), 2)
		assert.False(t, ok)

		_, ok = Match([]string{"hit"}, window(lines, 4), 2)
		assert.True(t, ok)
	})
}

func TestMatchKeyword(t *testing.T) {
	m, ok := MatchKeyword([]string{"small", "medium", "large"}, []string{"Smal humanoid, neutral evil"}, 2)
	require.True(t, ok)
	assert.Equal(t, "small", m.Value)
	assert.Equal(t, "Smal", m.Token)

	_, ok = MatchKeyword([]string{"gargantuan"}, []string{"Small humanoid"}, 2)
	assert.False(t, ok)
}

func TestKeywordLimit(t *testing.T) {
	assert.Equal(t, 0, keywordLimit("ac", 2))
	assert.Equal(t, 2, keywordLimit("hit", 2))
	assert.Equal(t, 2, keywordLimit("walk", 2))
	assert.Equal(t, 2, keywordLimit("armor", 2))
	assert.Equal(t, 0, keywordLimit("armor", 0))
}
