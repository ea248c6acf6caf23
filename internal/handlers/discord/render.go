package discord

import (
	"fmt"
	"sort"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/rollkeeper/rollkeeper/internal/models"
	"github.com/rollkeeper/rollkeeper/internal/services/burst"
	"github.com/rollkeeper/rollkeeper/internal/services/game"
)

// attributeOrder is the display order for the standard attributes
var attributeOrder = []string{"STR", "CON", "SIZ", "DEX", "APP", "INT", "POW", "EDU"}

// checkRollLines renders one line per graded roll. Rolls made with
// extra dice keep their tens-draw breakdown.
func checkRollLines(rolls []*game.SkillRoll) []string {
	lines := make([]string, 0, len(rolls))
	for _, roll := range rolls {
		line := fmt.Sprintf("**%s**", roll.Result.String())
		if strings.Contains(roll.Detail, "[") {
			line += fmt.Sprintf(" (%s)", roll.Detail)
		}
		lines = append(lines, line)
	}
	return lines
}

// sanityDescription summarizes a resolved sanity check
func sanityDescription(result *game.SanityResult) string {
	var b strings.Builder

	fmt.Fprintf(&b, "**%s**\n", result.Detail)

	if result.Loss > 0 {
		fmt.Fprintf(&b, "%s loses %d sanity (%s) and sits at %d.",
			result.CharacterName, result.Loss, result.LossExpression, result.NewSanity)
	} else {
		fmt.Fprintf(&b, "%s keeps their composure at %d sanity.",
			result.CharacterName, result.NewSanity)
	}

	return b.String()
}

// sanityFields carries the madness follow-ups when the loss was bad
// enough
func sanityFields(result *game.SanityResult) []*discordgo.MessageEmbedField {
	var fields []*discordgo.MessageEmbedField

	if result.Madness != nil {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name: fmt.Sprintf("Temporary madness: %s", result.Madness.Symptom.Name),
			Value: fmt.Sprintf("%s\nLasts %d rounds.",
				result.Madness.Symptom.Description, result.Madness.Duration),
		})
	}

	if result.PermanentInsanity {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:  "Permanent insanity",
			Value: fmt.Sprintf("%s's mind is gone. The investigation continues without them.", result.CharacterName),
		})
	}

	return fields
}

// opposedOutcomeFields lays both resolved sides next to each other
func opposedOutcomeFields(outcome *game.OpposedOutcome) []*discordgo.MessageEmbedField {
	return []*discordgo.MessageEmbedField{
		{
			Name:   outcome.InitiatorName,
			Value:  opposedSideValue(outcome.Initiator),
			Inline: true,
		},
		{
			Name:   outcome.TargetName,
			Value:  opposedSideValue(outcome.Target),
			Inline: true,
		},
	}
}

// opposedSideValue renders one side of a resolved opposed check
func opposedSideValue(side *game.OpposedSideResult) string {
	return fmt.Sprintf("%s: %s/%d [%s]", side.SkillName, side.Detail, side.Target, side.Level)
}

// damageFields renders applied damage with the target's condition.
// NPC hit points stay hidden; players see their exact numbers.
func damageFields(output *game.ConfirmDamageOutput) []*discordgo.MessageEmbedField {
	name := fmt.Sprintf("%s [%s]", output.TargetName, output.HealthLevel)
	if !output.HiddenHealth {
		name = fmt.Sprintf("%s [%s] %d/%d", output.TargetName, output.HealthLevel, output.NewHP, output.MaxHP)
	}

	condition := output.HealthDescription
	if output.HealthBar != "" && !output.HiddenHealth {
		condition = output.HealthBar + "\n" + output.HealthDescription
	}

	fields := []*discordgo.MessageEmbedField{
		{
			Name:  name,
			Value: condition,
		},
	}

	if output.ConResult != nil {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:  "Constitution check",
			Value: constitutionValue(output.ConResult),
		})
	}

	return fields
}

// constitutionValue renders a resolved major-wound constitution check
func constitutionValue(result *game.ConstitutionResult) string {
	if result.Success {
		return fmt.Sprintf("**%s**\n%s grits their teeth and stays up.", result.Detail, result.TargetName)
	}

	return fmt.Sprintf("**%s**\n%s collapses from the wound.", result.Detail, result.TargetName)
}

// volleyDescription renders a burst volley in firing order
func volleyDescription(volley *burst.ResolveOutput) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Firearm skill %d, %d bullets per burst\n\n", volley.Target, volley.BulletsPerBurst)

	for _, result := range volley.Bursts {
		fmt.Fprintf(&b, "**Burst %d**", result.Index)
		if result.Tier != burst.TierNone {
			fmt.Fprintf(&b, " (%s)", result.Tier)
		}

		if result.AutoFailed {
			b.WriteString(": wild spray, no effect\n")
			continue
		}

		fmt.Fprintf(&b, ": %s vs %d [%s]", result.Detail, result.Target, result.Level)
		if result.Hits > 0 {
			fmt.Fprintf(&b, ", %d hit(s)", result.Hits)
			if result.Penetrating > 0 {
				fmt.Fprintf(&b, ", %d penetrating", result.Penetrating)
			}
		}
		b.WriteString("\n")
	}

	return b.String()
}

// volleyFields tallies the volley's hits
func volleyFields(volley *burst.ResolveOutput) []*discordgo.MessageEmbedField {
	return []*discordgo.MessageEmbedField{
		{
			Name: "Total",
			Value: fmt.Sprintf("%d hit(s): %d penetrating, %d normal",
				volley.TotalHits, volley.TotalPenetrating, volley.TotalNormal),
		},
	}
}

// characterSheetFields renders a sheet as embed fields
func characterSheetFields(char *models.Character) []*discordgo.MessageEmbedField {
	var fields []*discordgo.MessageEmbedField

	if lines := attributeLines(char.Attributes); lines != "" {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:   "Attributes",
			Value:  lines,
			Inline: true,
		})
	}

	if lines := skillLines(char.Skills); lines != "" {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:   "Skills",
			Value:  lines,
			Inline: true,
		})
	}

	vitals := fmt.Sprintf("HP %d/%d\nMP %d/%d\nSAN %d/%d\nLuck %d",
		char.HP, char.MaxHP, char.MP, char.MaxMP, char.SAN, char.MaxSAN, char.Luck)

	// The damage bonus only means something once STR and SIZ are on the
	// sheet
	if char.Attributes["STR"] > 0 && char.Attributes["SIZ"] > 0 {
		vitals += fmt.Sprintf("\nDB %s", char.DamageBonus())
	}

	fields = append(fields, &discordgo.MessageEmbedField{
		Name:   "Vitals",
		Value:  vitals,
		Inline: true,
	})

	return fields
}

// npcSheetFields renders an NPC sheet with its template provenance
func npcSheetFields(npc *models.NPC) []*discordgo.MessageEmbedField {
	fields := characterSheetFields(&npc.Character)

	return append(fields, &discordgo.MessageEmbedField{
		Name:   "Template",
		Value:  npc.TemplateName,
		Inline: true,
	})
}

// attributeLines renders attributes in their standard order, then any
// extras alphabetically
func attributeLines(attributes map[string]int) string {
	var lines []string

	seen := make(map[string]bool, len(attributes))
	for _, name := range attributeOrder {
		if value, ok := attributes[name]; ok {
			lines = append(lines, fmt.Sprintf("%s %d", name, value))
			seen[name] = true
		}
	}

	var extras []string
	for name := range attributes {
		if !seen[name] {
			extras = append(extras, name)
		}
	}
	sort.Strings(extras)

	for _, name := range extras {
		lines = append(lines, fmt.Sprintf("%s %d", name, attributes[name]))
	}

	return strings.Join(lines, "\n")
}

// skillLines renders skills alphabetically
func skillLines(skills map[string]int) string {
	names := make([]string, 0, len(skills))
	for name := range skills {
		names = append(names, name)
	}
	sort.Strings(names)

	lines := make([]string, 0, len(names))
	for _, name := range names {
		lines = append(lines, fmt.Sprintf("%s %d", name, skills[name]))
	}

	return strings.Join(lines, "\n")
}

// charactersDescription lists a player's sheets, marking the active one
func charactersDescription(characters []*models.Character, activeName string) string {
	if len(characters) == 0 {
		return "No characters imported yet. Use /pc import to add one."
	}

	var b strings.Builder
	for _, char := range characters {
		if char.Name == activeName {
			fmt.Fprintf(&b, "**%s** (active)\n", char.Name)
			continue
		}
		fmt.Fprintf(&b, "%s\n", char.Name)
	}

	return b.String()
}

// npcListDescription lists a channel's NPCs with their templates
func npcListDescription(npcs []*models.NPC) string {
	if len(npcs) == 0 {
		return "No NPCs in this channel. Use /npc gen to create one."
	}

	var b strings.Builder
	for _, npc := range npcs {
		fmt.Fprintf(&b, "**%s** (%s)\n", npc.Name, npc.TemplateName)
	}

	return b.String()
}

// templatesDescription lists generation templates with their stat
// expressions
func templatesDescription(templates []*models.NPCTemplate) string {
	if len(templates) == 0 {
		return "No templates saved."
	}

	var b strings.Builder
	for _, template := range templates {
		fmt.Fprintf(&b, "**%s**", template.Name)
		if template.Builtin {
			b.WriteString(" (builtin)")
		}
		if template.Description != "" {
			fmt.Fprintf(&b, ": %s", template.Description)
		}
		b.WriteString("\n")

		if template.Builtin {
			fmt.Fprintf(&b, "attributes %d-%d, skills %d-%d\n",
				template.AttrMin, template.AttrMax, template.SkillMin, template.SkillMax)
			continue
		}

		fmt.Fprintf(&b, "%s\n", templateStatLine(template))
	}

	return b.String()
}

// templateStatLine flattens a custom template's stat expressions
func templateStatLine(template *models.NPCTemplate) string {
	parts := make([]string, 0, len(template.Attributes)+len(template.Skills))

	for _, name := range sortedExprKeys(template.Attributes) {
		parts = append(parts, fmt.Sprintf("%s=%s", name, template.Attributes[name]))
	}
	for _, name := range sortedExprKeys(template.Skills) {
		parts = append(parts, fmt.Sprintf("%s=%s", name, template.Skills[name]))
	}

	return strings.Join(parts, ", ")
}

// sortedExprKeys orders a stat expression map's keys
func sortedExprKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// ruleFields renders a user's grading configuration
func ruleFields(settings *models.UserSettings) []*discordgo.MessageEmbedField {
	return []*discordgo.MessageEmbedField{
		{
			Name:   "Ruleset",
			Value:  settings.RuleName,
			Inline: true,
		},
		{
			Name:   "Critical",
			Value:  fmt.Sprintf("%d or less", settings.CriticalThreshold),
			Inline: true,
		},
		{
			Name:   "Fumble",
			Value:  fmt.Sprintf("%d or more", settings.FumbleThreshold),
			Inline: true,
		},
	}
}

// logDescription renders recent log entries, newest first
func logDescription(entries []*models.LogEntry) string {
	if len(entries) == 0 {
		return "Nothing has happened here yet."
	}

	var b strings.Builder
	for _, entry := range entries {
		fmt.Fprintf(&b, "`%s` **%s** %s\n",
			entry.Timestamp.Format("Jan 2 15:04"), entry.Author, entry.Content)
	}

	return b.String()
}
