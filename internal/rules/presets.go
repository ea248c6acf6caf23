package rules

// Preset bundles a named rule configuration for quick switching
type Preset struct {
	// ID is the quick-switch number
	ID int
	// Name is the user-facing preset name
	Name string
	// Description summarizes the preset in one line
	Description string
	// RuleName is the ruleset the preset applies
	RuleName string
	// CriticalThreshold applied by the preset
	CriticalThreshold int
	// FumbleThreshold applied by the preset
	FumbleThreshold int
}

// Presets returns the quick-switch rule presets in display order
func Presets() []Preset {
	return []Preset{
		{
			ID:                1,
			Name:              "Standard",
			Description:       "four-tier grading, critical on 1-5, fumble on 96-100",
			RuleName:          RulesetB,
			CriticalThreshold: 5,
			FumbleThreshold:   96,
		},
		{
			ID:                2,
			Name:              "Strict",
			Description:       "four-tier grading, critical only on 1, fumble only on 100",
			RuleName:          RulesetB,
			CriticalThreshold: 1,
			FumbleThreshold:   100,
		},
		{
			ID:                3,
			Name:              "Classic",
			Description:       "two-tier grading, critical on 1-5, fumble on 96-100",
			RuleName:          RulesetA,
			CriticalThreshold: 5,
			FumbleThreshold:   96,
		},
	}
}

// PresetByID returns the preset with the given quick-switch number
func PresetByID(id int) (Preset, bool) {
	for _, p := range Presets() {
		if p.ID == id {
			return p, true
		}
	}
	return Preset{}, false
}
