package game

import "github.com/wordrack/wordrack/tiles"

type playerState struct {
	name   string
	points int
	rack   *tiles.Rack
}

func newPlayerState(name string) *playerState {
	return &playerState{name: name, rack: tiles.NewRack()}
}

type playerStates []*playerState

func (p playerStates) resetScores() {
	for idx := range p {
		p[idx].points = 0
	}
}
