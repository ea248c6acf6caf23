package game

// GameError is a custom error type for game-related errors
type GameError string

// Error implements the error interface
func (e GameError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrCheckExpired        GameError = "check not found or expired"
	ErrAlreadyRolled       GameError = "user already rolled on this check"
	ErrNotParticipant      GameError = "user is not part of this check"
	ErrSideAlreadyResolved GameError = "this side of the check has already rolled"
	ErrSelfOpposition      GameError = "cannot start an opposed check against yourself"
	ErrNotInitiator        GameError = "only the check's initiator can confirm"
	ErrNotTarget           GameError = "only the check's target can roll"
	ErrNoActiveCharacter   GameError = "no active character"
	ErrTargetNoCharacter   GameError = "target has no active character"
	ErrSkillNotFound       GameError = "skill not found on the character sheet"
	ErrNoSanityLeft        GameError = "sanity is already zero"
	ErrUnknownStat         GameError = "unknown stat"
	ErrUnknownOperation    GameError = "unknown stat operation"
	ErrUnknownRuleset      GameError = "unknown ruleset"
	ErrUnknownPreset       GameError = "unknown rule preset"
	ErrNilConfig           GameError = "config cannot be nil"
	ErrNilCharacterRepo    GameError = "character repository cannot be nil"
	ErrNilNPCRepo          GameError = "npc repository cannot be nil"
	ErrNilCheckRepo        GameError = "check repository cannot be nil"
	ErrNilSettingsRepo     GameError = "settings repository cannot be nil"
	ErrNilGameLogRepo      GameError = "game log repository cannot be nil"
	ErrNilBurstService     GameError = "burst service cannot be nil"
	ErrNilMessagingService GameError = "messaging service cannot be nil"
	ErrNilDiceRoller       GameError = "dice roller cannot be nil"
)
