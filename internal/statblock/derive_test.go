package statblock

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveSaves(t *testing.T) {
	scores := AbilityScores{Str: 10, Dex: 14, Con: 10, Int: 10, Wis: 10, Cha: 8}

	saves, unknown := DeriveSaves("Dex +5, Wis +5, Con +0, Luck +2", scores)

	require.Len(t, saves, 6)
	assert.Equal(t, Save{Stated: true, Bonus: 5, Proficient: true}, saves[Dexterity])
	assert.Equal(t, Save{Stated: true, Bonus: 5, Proficient: true}, saves[Wisdom])
	// a stated bonus equal to the modifier is not proficiency
	assert.Equal(t, Save{Stated: true, Bonus: 0, Proficient: false}, saves[Constitution])
	assert.Equal(t, Save{Bonus: -1}, saves[Charisma])
	assert.Equal(t, []string{"Luck +2"}, unknown)
}

func TestDeriveSaves_FullNames(t *testing.T) {
	scores := AbilityScores{Str: 16, Dex: 10, Con: 10, Int: 10, Wis: 10, Cha: 10}

	saves, unknown := DeriveSaves("Strength +5; Charisma -1", scores)
	assert.Empty(t, unknown)
	assert.True(t, saves[Strength].Proficient)
	assert.False(t, saves[Charisma].Proficient)
	assert.Equal(t, -1, saves[Charisma].Bonus)
}

func TestSkillTier(t *testing.T) {
	testCases := []struct {
		name     string
		bonus    int
		base     int
		pb       int
		expected Tier
	}{
		{"expertise", 6, 2, 2, TierExpertise},
		{"proficient", 4, 2, 2, TierProficient},
		{"non-standard bonus above base", 3, 0, 2, TierProficient},
		{"equal to base", 2, 2, 2, TierNone},
		{"below base", 1, 2, 2, TierNone},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, SkillTier(tc.bonus, tc.base, tc.pb))
		})
	}
}

func TestDeriveSkills(t *testing.T) {
	scores := AbilityScores{Str: 10, Dex: 14, Con: 10, Int: 10, Wis: 10, Cha: 10}

	skills, unknown := DeriveSkills("Perception +4, Stealth +4, Athletics +3, History +0, Sleight of Hand +6, Cooking +3", scores, 2)

	require.Len(t, skills, len(Skills))
	assert.Equal(t, SkillEntry{Ability: Wisdom, Tier: TierExpertise, Stated: true, Bonus: 4}, skills["prc"])
	assert.Equal(t, SkillEntry{Ability: Dexterity, Tier: TierProficient, Stated: true, Bonus: 4}, skills["ste"])
	assert.Equal(t, TierProficient, skills["ath"].Tier)
	assert.Equal(t, SkillEntry{Ability: Intelligence, Tier: TierNone, Stated: true, Bonus: 0}, skills["his"])
	assert.Equal(t, TierExpertise, skills["slt"].Tier)
	assert.Equal(t, SkillEntry{Ability: Dexterity, Bonus: 2}, skills["acr"])
	assert.Equal(t, []string{"Cooking +3"}, unknown)
}

func TestDeriveSkills_Empty(t *testing.T) {
	skills, unknown := DeriveSkills("", DefaultAbilityScores(), 2)
	assert.Len(t, skills, 18)
	assert.Empty(t, unknown)
	for code, entry := range skills {
		assert.Equal(t, TierNone, entry.Tier, code)
		assert.False(t, entry.Stated, code)
	}
}
