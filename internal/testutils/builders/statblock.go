// Package builders provides test data builders for creating test fixtures
package builders

import (
	"fmt"
	"strings"
)

// StatBlockBuilder provides a fluent interface for building stat block text
type StatBlockBuilder struct {
	name      string
	typeLine  string
	ac        string
	hp        string
	speed     string
	abilities [6]int
	extra     []string
	challenge string
	traits    []string
	actions   []string
	reactions []string
}

// NewStatBlockBuilder creates a builder for a plain CR 1 humanoid
func NewStatBlockBuilder() *StatBlockBuilder {
	return &StatBlockBuilder{
		name:      "Test Creature",
		typeLine:  "Medium humanoid (any race), unaligned",
		ac:        "12",
		hp:        "11 (2d8 + 2)",
		speed:     "30 ft.",
		abilities: [6]int{10, 10, 10, 10, 10, 10},
		challenge: "1 (200 XP)",
	}
}

// WithName sets the creature name
func (b *StatBlockBuilder) WithName(name string) *StatBlockBuilder {
	b.name = name
	return b
}

// WithType sets the size, type and alignment line
func (b *StatBlockBuilder) WithType(line string) *StatBlockBuilder {
	b.typeLine = line
	return b
}

// WithArmorClass sets AC with an optional armor source
func (b *StatBlockBuilder) WithArmorClass(ac int, source string) *StatBlockBuilder {
	b.ac = fmt.Sprint(ac)
	if source != "" {
		b.ac += " (" + source + ")"
	}
	return b
}

// WithHitPoints sets HP and the dice formula
func (b *StatBlockBuilder) WithHitPoints(hp int, formula string) *StatBlockBuilder {
	b.hp = fmt.Sprintf("%d (%s)", hp, formula)
	return b
}

// WithSpeed sets the speed line value
func (b *StatBlockBuilder) WithSpeed(speed string) *StatBlockBuilder {
	b.speed = speed
	return b
}

// WithAbilities sets the six scores in STR..CHA order
func (b *StatBlockBuilder) WithAbilities(str, dex, con, intel, wis, cha int) *StatBlockBuilder {
	b.abilities = [6]int{str, dex, con, intel, wis, cha}
	return b
}

// WithLine adds a labelled line such as "Saving Throws" or "Senses"
func (b *StatBlockBuilder) WithLine(label, value string) *StatBlockBuilder {
	b.extra = append(b.extra, label+" "+value)
	return b
}

// WithChallenge sets the challenge rating and XP
func (b *StatBlockBuilder) WithChallenge(cr string, xp int) *StatBlockBuilder {
	b.challenge = fmt.Sprintf("%s (%d XP)", cr, xp)
	return b
}

// WithTrait adds a trait paragraph
func (b *StatBlockBuilder) WithTrait(name, text string) *StatBlockBuilder {
	b.traits = append(b.traits, name+". "+text)
	return b
}

// WithAction adds an entry to the Actions section
func (b *StatBlockBuilder) WithAction(name, text string) *StatBlockBuilder {
	b.actions = append(b.actions, name+". "+text)
	return b
}

// WithReaction adds an entry to the Reactions section
func (b *StatBlockBuilder) WithReaction(name, text string) *StatBlockBuilder {
	b.reactions = append(b.reactions, name+". "+text)
	return b
}

// Build renders the stat block text
func (b *StatBlockBuilder) Build() string {
	var sb strings.Builder
	line := func(s string) {
		sb.WriteString(s)
		sb.WriteByte('\n')
	}

	line(b.name)
	line(b.typeLine)
	line("Armor Class " + b.ac)
	line("Hit Points " + b.hp)
	line("Speed " + b.speed)

	labels := []string{"STR", "DEX", "CON", "INT", "WIS", "CHA"}
	scores := make([]string, len(labels))
	for i, label := range labels {
		scores[i] = fmt.Sprintf("%s %d (%s)", label, b.abilities[i], modifier(b.abilities[i]))
	}
	line(strings.Join(scores, " "))

	for _, extra := range b.extra {
		line(extra)
	}
	line("Challenge " + b.challenge)

	for _, t := range b.traits {
		line(t)
	}
	if len(b.actions) > 0 {
		line("Actions")
		for _, a := range b.actions {
			line(a)
		}
	}
	if len(b.reactions) > 0 {
		line("Reactions")
		for _, r := range b.reactions {
			line(r)
		}
	}
	return sb.String()
}

func modifier(score int) string {
	mod := score/2 - 5
	if mod >= 0 {
		return fmt.Sprintf("+%d", mod)
	}
	return fmt.Sprint(mod)
}
