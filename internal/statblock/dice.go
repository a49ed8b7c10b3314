package statblock

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/statblock-api/internal/errors"
)

var diceFormula = regexp.MustCompile(`(?i)^(\d+)d(\d+)(?:([+-])(\d+))?$`)

// DiceFormula is a single-term dice expression such as 2d6+3
type DiceFormula struct {
	Count    int
	Size     int
	Modifier int
}

// ParseDiceFormula parses "NdS", "NdS+M" or "NdS-M", ignoring spaces
func ParseDiceFormula(s string) (DiceFormula, error) {
	compact := strings.ReplaceAll(strings.TrimSpace(s), " ", "")
	m := diceFormula.FindStringSubmatch(compact)
	if m == nil {
		return DiceFormula{}, errors.InvalidArgumentf("unsupported dice formula: %q", s)
	}

	count, _ := strconv.Atoi(m[1])
	size, _ := strconv.Atoi(m[2])
	if _, err := dice.NewRoll(count, size); err != nil {
		return DiceFormula{}, errors.WrapWithCode(err, errors.CodeInvalidArgument,
			fmt.Sprintf("invalid dice formula: %q", s))
	}

	f := DiceFormula{Count: count, Size: size}
	if m[3] != "" {
		mod, _ := strconv.Atoi(m[4])
		if m[3] == "-" {
			mod = -mod
		}
		f.Modifier = mod
	}
	return f, nil
}

// Average returns the rounded-down average printed in stat blocks
func (f DiceFormula) Average() int {
	return f.Count*(f.Size+1)/2 + f.Modifier
}

// String renders the formula in compact form
func (f DiceFormula) String() string {
	if f.Modifier == 0 {
		return fmt.Sprintf("%dd%d", f.Count, f.Size)
	}
	return fmt.Sprintf("%dd%d%s", f.Count, f.Size, FormatModifier(f.Modifier))
}

// checkAverage warns when formula is unsupported or its average is more than
// one away from the stated value
func (e *extraction) checkAverage(field Field, label, formula string, stated int) {
	if formula == "" {
		return
	}
	f, err := ParseDiceFormula(formula)
	if err != nil {
		e.warn(WarningInvalidDiceFormula, field, "%s: %v", label, err)
		return
	}
	if diff := f.Average() - stated; diff > 1 || diff < -1 {
		e.warn(WarningInconsistentValue, field, "%s: stated %d but %s averages %d", label, stated, f, f.Average())
	}
}
