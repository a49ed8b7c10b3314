package statblock

import (
	"slices"
	"strconv"
	"strings"

	"github.com/KirkDiggler/statblock-api/internal/errors"
)

// SetOverride replaces the resolved value of one ledger field and returns the
// updated entry. Only the field's own value changes: modifiers, proficiency
// bonus, save flags, skill tiers and the initiative default keep the values
// computed at parse time, and Stats and Accuracy still describe the parse.
// Senses and languages are reparsed from the new text; a senses value without
// passive Perception keeps the previous score.
func (r *ParseResult) SetOverride(field Field, value string) (*FieldRecord, error) {
	rec, ok := r.Field(field)
	if !ok {
		return nil, errors.NotFoundf("field %q is not in the ledger", field)
	}

	value = strings.TrimSpace(value)
	if value == "" {
		return nil, errors.InvalidArgumentf("override value for %q is empty", field)
	}
	if err := r.applyOverride(field, value); err != nil {
		return nil, err
	}

	rec.RawValue = value
	rec.Method = MethodOverride
	rec.Confidence = 1
	return rec, nil
}

func (r *ParseResult) applyOverride(field Field, value string) error {
	switch field {
	case FieldName:
		r.Name = value
	case FieldSize:
		size := strings.ToLower(value)
		if !slices.Contains(Sizes, size) {
			return errors.InvalidArgumentf("unknown size %q", value)
		}
		r.Size = size
	case FieldType:
		r.Type = strings.ToLower(value)
	case FieldAlignment:
		r.Alignment = strings.ToLower(value)
	case FieldArmorClass:
		n, err := overrideInt(field, value)
		if err != nil {
			return err
		}
		r.ArmorClass = n
	case FieldHitPoints:
		n, err := overrideInt(field, value)
		if err != nil {
			return err
		}
		r.HitPoints = n
	case FieldSpeed:
		n, err := overrideInt(field, strings.TrimSuffix(strings.TrimSpace(strings.TrimSuffix(value, ".")), "ft"))
		if err != nil {
			return err
		}
		r.Speed.Walk = n
	case FieldAbilities:
		scores, ok := ParseAbilityScores(value)
		if !ok {
			return errors.InvalidArgumentf("no ability scores in %q", value)
		}
		r.Abilities = scores
	case FieldChallengeRating:
		cr, err := ParseChallengeRating(value)
		if err != nil {
			return err
		}
		r.ChallengeRating = value
		r.ChallengeValue = cr
	case FieldSenses:
		senses := ParseSenses(value)
		if senses.PassivePerception == 0 {
			senses.PassivePerception = r.Senses.PassivePerception
		}
		r.SensesText = value
		r.Senses = senses
	case FieldLanguages:
		r.LanguagesText = value
		r.Languages = ParseLanguages(value)
	case FieldInitiative:
		n, err := overrideInt(field, strings.TrimPrefix(value, "+"))
		if err != nil {
			return err
		}
		r.Initiative = n
	}
	// saves, skills and actions keep only the ledger text
	return nil
}

func overrideInt(field Field, value string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, errors.InvalidArgumentf("override value for %q must be an integer: %q", field, value)
	}
	return n, nil
}
