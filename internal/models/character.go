package models

import (
	"fmt"
	"strconv"
	"strings"
)

// MaxSanity is the sanity ceiling for any sheet.
const MaxSanity = 99

// Character holds an investigator sheet: a player character or a
// generated NPC.
type Character struct {
	// Name is the character's display name
	Name string

	// UserID is the Discord user ID of the owner. Generated NPCs use
	// an "npc:<channel>" marker instead.
	UserID string

	// Attributes maps attribute names (STR, CON, SIZ, ...) to values
	Attributes map[string]int

	// Skills maps skill names to values
	Skills map[string]int

	// HP is the current hit points
	HP int

	// MaxHP is the maximum hit points
	MaxHP int

	// MP is the current magic points
	MP int

	// MaxMP is the maximum magic points
	MaxMP int

	// SAN is the current sanity
	SAN int

	// MaxSAN is the maximum sanity
	MaxSAN int

	// Luck is the luck value
	Luck int
}

// GetSkill looks up a value by skill name first, then by upper-cased
// attribute name. The second return reports whether a value was found.
func (c *Character) GetSkill(name string) (int, bool) {
	if value, ok := c.Skills[name]; ok {
		return value, true
	}

	if value, ok := c.Attributes[strings.ToUpper(name)]; ok {
		return value, true
	}

	return 0, false
}

// Build returns the character's build, derived from STR plus SIZ.
func (c *Character) Build() int {
	sum := c.Attributes["STR"] + c.Attributes["SIZ"]

	switch {
	case sum < 65:
		return -2
	case sum < 85:
		return -1
	case sum < 125:
		return 0
	case sum < 165:
		return 1
	case sum < 205:
		return 2
	}

	return 3 + (sum-205)/80
}

// DamageBonus returns the damage bonus die for the character's build.
func (c *Character) DamageBonus() string {
	build := c.Build()

	switch {
	case build < 0:
		return strconv.Itoa(build)
	case build == 0:
		return "0"
	case build == 1:
		return "+1d4"
	}

	return fmt.Sprintf("+%dd6", build-1)
}
