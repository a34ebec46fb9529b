package entity

// Player is an engine-controlled side in a self-play match.
type Player struct {
	Mark         Mark `json:"mark"`
	UseAlphaBeta bool `json:"use_alpha_beta"`
}

func NewBotPlayer(mark Mark, useAlphaBeta bool) *Player {
	return &Player{
		Mark:         mark,
		UseAlphaBeta: useAlphaBeta,
	}
}
