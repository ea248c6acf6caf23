package models

// MadnessSymptom is one entry of the temporary insanity table.
type MadnessSymptom struct {
	// Name is the short symptom title
	Name string

	// Description tells the keeper how the symptom plays out
	Description string
}

// temporaryMadness is the 1d10 temporary insanity table.
var temporaryMadness = [10]MadnessSymptom{
	{
		Name:        "Amnesia",
		Description: "The investigator remembers nothing since last being somewhere safe, with no memory of how they came to be here.",
	},
	{
		Name:        "Psychosomatic disability",
		Description: "The investigator is struck by psychosomatic blindness, deafness, or loss of use of a limb.",
	},
	{
		Name:        "Violence",
		Description: "A red mist descends and the investigator lashes out at enemies and allies alike.",
	},
	{
		Name:        "Paranoia",
		Description: "Severe paranoia takes hold. Someone is watching, someone in the party is a traitor, and nothing can be trusted.",
	},
	{
		Name:        "Significant person",
		Description: "The investigator mistakes someone present for a significant person from their backstory and strives to keep that relationship.",
	},
	{
		Name:        "Faint",
		Description: "The investigator passes out on the spot and needs 1d10 rounds to come around.",
	},
	{
		Name:        "Flee in panic",
		Description: "The investigator flees by any means available, even if it means taking the only vehicle and leaving everyone else behind.",
	},
	{
		Name:        "Physical hysterics",
		Description: "The investigator breaks into extreme fits of laughing, crying, screaming, or terror.",
	},
	{
		Name:        "Phobia",
		Description: "The investigator gains a new phobia, rolled or chosen by the keeper, and suffers its symptoms even when the feared thing is absent.",
	},
	{
		Name:        "Mania",
		Description: "The investigator gains a new mania, rolled or chosen by the keeper, and the compulsion persists.",
	},
}

// TemporaryMadness returns the symptom for a 1d10 roll. Rolls outside
// the table are clamped to its bounds.
func TemporaryMadness(roll int) MadnessSymptom {
	if roll < 1 {
		roll = 1
	}

	if roll > 10 {
		roll = 10
	}

	return temporaryMadness[roll-1]
}
