package statblock

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseAbilityScores(t *testing.T) {
	testCases := []struct {
		name     string
		text     string
		expected AbilityScores
		found    bool
	}{
		{
			name:     "plain inline",
			text:     "STR 16 DEX 14 CON 14 INT 10 WIS 10 CHA 10",
			expected: AbilityScores{Str: 16, Dex: 14, Con: 14, Int: 10, Wis: 10, Cha: 10},
			found:    true,
		},
		{
			name:     "inline with parenthesized modifiers",
			text:     "STR 18 (+4) DEX 12 (+1) CON 16 (+3) INT 6 (-2) WIS 10 (+0) CHA 7 (-2)",
			expected: AbilityScores{Str: 18, Dex: 12, Con: 16, Int: 6, Wis: 10, Cha: 7},
			found:    true,
		},
		{
			name:     "inline with bare modifiers",
			text:     "STR 18 +4 DEX 12 +1 CON 16 +3 INT 6 -2 WIS 10 +0 CHA 7 -2",
			expected: AbilityScores{Str: 18, Dex: 12, Con: 16, Int: 6, Wis: 10, Cha: 7},
			found:    true,
		},
		{
			name:     "label row above score row",
			text:     "STR DEX CON INT WIS CHA\n18 (+4) 12 (+1) 16 (+3) 6 (-2) 10 (+0) 7 (-2)",
			expected: AbilityScores{Str: 18, Dex: 12, Con: 16, Int: 6, Wis: 10, Cha: 7},
			found:    true,
		},
		{
			name:     "table rows with saves",
			text:     "Str 18 +4 +4\nDex 12 +1 +1\nCon 16 +3 +5\nInt 6 -2 -2\nWis 10 +0 +0\nCha 7 -2 -2",
			expected: AbilityScores{Str: 18, Dex: 12, Con: 16, Int: 6, Wis: 10, Cha: 7},
			found:    true,
		},
		{
			name:     "individual labels leave the rest at 10",
			text:     "Strength: 14\nWisdom: 12",
			expected: AbilityScores{Str: 14, Dex: 10, Con: 10, Int: 10, Wis: 12, Cha: 10},
			found:    true,
		},
		{
			name:     "no scores",
			text:     "A creature of unknown strength",
			expected: DefaultAbilityScores(),
			found:    false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			scores, found := ParseAbilityScores(tc.text)
			assert.Equal(t, tc.found, found)
			assert.Equal(t, tc.expected, scores)
		})
	}
}

func TestAbilityScores_Modifier(t *testing.T) {
	scores := AbilityScores{Str: 8, Dex: 14, Con: 10, Int: 3, Wis: 20, Cha: 11}
	assert.Equal(t, -1, scores.Modifier(Strength))
	assert.Equal(t, 2, scores.Modifier(Dexterity))
	assert.Equal(t, -4, scores.Modifier(Intelligence))
	assert.Equal(t, 5, scores.Modifier(Wisdom))
}
