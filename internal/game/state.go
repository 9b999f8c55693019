package game

// GameState represents where the round engine is in its lifecycle
type GameState int

const (
	StateBetting GameState = iota
	StatePlayerTurn
	StateDealerTurn
	StateRoundOver
)

// String returns the string representation of a game state
func (s GameState) String() string {
	switch s {
	case StateBetting:
		return "betting"
	case StatePlayerTurn:
		return "player-turn"
	case StateDealerTurn:
		return "dealer-turn"
	case StateRoundOver:
		return "round-over"
	default:
		return "unknown"
	}
}

// RoundResult is the outcome of a finished round. ResultNone means the
// current round has not been settled yet.
type RoundResult int

const (
	ResultNone RoundResult = iota
	ResultVictory
	ResultLoss
	ResultTie
	ResultBlackjack
	ResultBusted
)

// String returns the string representation of a round result
func (r RoundResult) String() string {
	switch r {
	case ResultNone:
		return "none"
	case ResultVictory:
		return "victory"
	case ResultLoss:
		return "loss"
	case ResultTie:
		return "tie"
	case ResultBlackjack:
		return "blackjack"
	case ResultBusted:
		return "busted"
	default:
		return "unknown"
	}
}
