package statblock

import (
	"strconv"
	"strings"

	"github.com/KirkDiggler/statblock-api/internal/errors"
)

// AbilityModifier returns floor((score-10)/2)
func AbilityModifier(score int) int {
	diff := score - 10
	if diff < 0 {
		return -((-diff + 1) / 2)
	}
	return diff / 2
}

// ProficiencyBonus returns the proficiency bonus for a challenge rating
func ProficiencyBonus(cr float64) int {
	switch {
	case cr < 5:
		return 2
	case cr < 9:
		return 3
	case cr < 13:
		return 4
	case cr < 17:
		return 5
	case cr < 21:
		return 6
	case cr < 25:
		return 7
	case cr < 29:
		return 8
	default:
		return 9
	}
}

// ParseChallengeRating converts "5", "1/4" or "0.25" to a float.
// Fractions are two integers divided; nothing else is evaluated.
func ParseChallengeRating(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, errors.InvalidArgument("challenge rating is empty")
	}

	if num, den, ok := strings.Cut(s, "/"); ok {
		n, err := strconv.Atoi(strings.TrimSpace(num))
		if err != nil || n < 0 {
			return 0, errors.InvalidArgumentf("invalid challenge rating numerator: %q", s)
		}
		d, err := strconv.Atoi(strings.TrimSpace(den))
		if err != nil || d <= 0 {
			return 0, errors.InvalidArgumentf("invalid challenge rating denominator: %q", s)
		}
		return float64(n) / float64(d), nil
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 0 {
		return 0, errors.InvalidArgumentf("invalid challenge rating: %q", s)
	}
	return v, nil
}

var crExperience = []struct {
	cr float64
	xp int
}{
	{0, 10}, {0.125, 25}, {0.25, 50}, {0.5, 100}, {1, 200}, {2, 450}, {3, 700},
	{4, 1100}, {5, 1800}, {6, 2300}, {7, 2900}, {8, 3900}, {9, 5000}, {10, 5900},
	{11, 7200}, {12, 8400}, {13, 10000}, {14, 11500}, {15, 13000}, {16, 15000},
	{17, 18000}, {18, 20000}, {19, 22000}, {20, 25000}, {21, 33000}, {22, 41000},
	{23, 50000}, {24, 62000}, {25, 75000}, {26, 90000}, {27, 105000}, {28, 120000},
	{29, 135000}, {30, 155000},
}

// ExperienceForCR returns the XP award for the highest table CR not above cr
func ExperienceForCR(cr float64) int {
	xp := 0
	for _, row := range crExperience {
		if cr+1e-9 < row.cr {
			break
		}
		xp = row.xp
	}
	return xp
}

// FormatModifier renders a bonus with an explicit sign
func FormatModifier(n int) string {
	if n >= 0 {
		return "+" + strconv.Itoa(n)
	}
	return strconv.Itoa(n)
}
