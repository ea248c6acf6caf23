package models

import (
	"strings"
	"time"
)

// DefaultTemplateName is the template used when NPC creation does not
// name one.
const DefaultTemplateName = "Average"

// BaseAttributes lists the attributes rolled for generated NPCs, in
// generation order.
var BaseAttributes = []string{"STR", "CON", "SIZ", "DEX", "APP", "INT", "POW", "EDU"}

// CombatSkills lists the skills rolled for generated NPCs, in
// generation order.
var CombatSkills = []string{"Brawl", "Dodge", "Firearms", "Throw", "Fighting"}

// NPCTemplate describes how NPC stats are generated.
//
// Builtin templates roll every attribute and skill from the Min/Max
// ranges, rounded to a multiple of five. Custom templates define a
// value expression per stat instead: a fixed number ("50"), an
// inclusive range ("20-30"), or a dice formula ("3d6+6") whose total
// is multiplied by five.
type NPCTemplate struct {
	// Name uniquely identifies the template
	Name string

	// Description is an optional note shown in listings
	Description string

	// Builtin marks templates that ship with the bot; they cannot be
	// overwritten or deleted
	Builtin bool

	// Attributes maps attribute names to value expressions
	Attributes map[string]string

	// Skills maps skill names to value expressions
	Skills map[string]string

	// AttrMin and AttrMax bound rolled attributes for range templates
	AttrMin int
	AttrMax int

	// SkillMin and SkillMax bound rolled skills for range templates
	SkillMin int
	SkillMax int

	// CreatedBy is the user who saved a custom template
	CreatedBy string

	// CreatedAt is when the template was saved
	CreatedAt time.Time
}

// IsRangeFormat reports whether the template rolls stats from the
// Min/Max ranges instead of per-stat expressions.
func (t *NPCTemplate) IsRangeFormat() bool {
	return len(t.Attributes) == 0 && len(t.Skills) == 0
}

// BuiltinTemplates returns the templates that ship with the bot,
// ordered by difficulty.
func BuiltinTemplates() []*NPCTemplate {
	return []*NPCTemplate{
		{
			Name:        "Average",
			Description: "An unremarkable opponent",
			Builtin:     true,
			AttrMin:     40,
			AttrMax:     60,
			SkillMin:    40,
			SkillMax:    50,
		},
		{
			Name:        "Tough",
			Description: "A seasoned opponent",
			Builtin:     true,
			AttrMin:     50,
			AttrMax:     70,
			SkillMin:    50,
			SkillMax:    60,
		},
		{
			Name:        "Elite",
			Description: "A formidable opponent",
			Builtin:     true,
			AttrMin:     60,
			AttrMax:     80,
			SkillMin:    60,
			SkillMax:    70,
		},
	}
}

// CanonicalAttribute maps an attribute name in any case to its
// canonical upper-case form. LUK is accepted for luck. The second
// return reports whether the name is a known attribute.
func CanonicalAttribute(name string) (string, bool) {
	upper := strings.ToUpper(name)

	switch upper {
	case "STR", "CON", "SIZ", "DEX", "APP", "INT", "POW", "EDU", "LUK":
		return upper, true
	}

	return "", false
}
