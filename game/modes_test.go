package game

import (
	"testing"

	"github.com/matryer/is"
)

func TestParseMode(t *testing.T) {
	is := is.New(t)

	for in, want := range map[string]Mode{
		"standard":   ModeStandard,
		"":           ModeStandard,
		"expert":     ModeExpert,
		"freeplay":   ModeFreePlay,
		"free-play":  ModeFreePlay,
		"tournament": ModeTournament,
	} {
		got, err := ParseMode(in)
		is.NoErr(err)
		is.Equal(got, want)
	}

	_, err := ParseMode("blitz")
	is.True(err != nil)
}

func TestModeString(t *testing.T) {
	is := is.New(t)

	for _, m := range []Mode{ModeStandard, ModeExpert, ModeFreePlay, ModeTournament} {
		parsed, err := ParseMode(m.String())
		is.NoErr(err)
		is.Equal(parsed, m)
	}
}

func TestModeFromLegacy(t *testing.T) {
	is := is.New(t)

	expert := true
	relaxed := false

	// A mode name wins over the boolean flag.
	is.Equal(ModeFromLegacy(&expert, "tournament"), ModeTournament)
	// Old records carry only the flag.
	is.Equal(ModeFromLegacy(&expert, ""), ModeExpert)
	is.Equal(ModeFromLegacy(&relaxed, ""), ModeStandard)
	// The oldest records carry neither.
	is.Equal(ModeFromLegacy(nil, ""), ModeStandard)
	// An unrecognized name falls back to the flag.
	is.Equal(ModeFromLegacy(&expert, "blitz"), ModeExpert)
}
