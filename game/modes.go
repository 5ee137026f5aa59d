package game

import "fmt"

// Mode is the closed set of game modes. It began life in older persisted
// data as a boolean "expert mode" flag; ModeFromLegacy upgrades that
// shape.
type Mode int

const (
	// ModeStandard blocks a submission whenever any formed word is not in
	// the dictionary; the player may edit and resubmit.
	ModeStandard Mode = iota
	// ModeExpert forfeits the turn on a dictionary failure instead of
	// blocking it.
	ModeExpert
	// ModeFreePlay skips the dictionary entirely and scores raw tile
	// values only.
	ModeFreePlay
	// ModeTournament defers the dictionary check behind a post-move
	// challenge window.
	ModeTournament
)

func (m Mode) String() string {
	switch m {
	case ModeStandard:
		return "standard"
	case ModeExpert:
		return "expert"
	case ModeFreePlay:
		return "freeplay"
	case ModeTournament:
		return "tournament"
	}
	return "unknown"
}

// ParseMode parses a mode name.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "standard", "":
		return ModeStandard, nil
	case "expert":
		return ModeExpert, nil
	case "freeplay", "free-play":
		return ModeFreePlay, nil
	case "tournament":
		return ModeTournament, nil
	}
	return ModeStandard, fmt.Errorf("unknown game mode %q", s)
}

// ModeFromLegacy upgrades a persisted mode shape. Newer records carry a
// mode name; older ones carry only a boolean expert flag, and the oldest
// carry neither.
func ModeFromLegacy(expertFlag *bool, name string) Mode {
	if name != "" {
		if m, err := ParseMode(name); err == nil {
			return m
		}
	}
	if expertFlag != nil && *expertFlag {
		return ModeExpert
	}
	return ModeStandard
}
