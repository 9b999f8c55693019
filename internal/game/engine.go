package game

import (
	rand "math/rand/v2"

	"github.com/lox/blackjack-cli/internal/deck"
)

// Default table rules, matching a six-deck shoe with a 10..500 spread.
const (
	DefaultMinBet   = 10
	DefaultMaxBet   = 500
	DefaultBankroll = 1000
)

// Engine drives a single-player blackjack round through its states:
// betting, player turn, dealer turn, round over. The shoe is created
// once and persists across rounds; hands are cleared at the start of
// each round. All methods are synchronous and single-threaded.
type Engine struct {
	shoe       *deck.Shoe
	player     *Player
	dealerHand Hand
	minBet     int
	maxBet     int
	state      GameState
	result     RoundResult
}

// EngineOption configures an Engine during creation.
type EngineOption func(*engineConfig)

type engineConfig struct {
	numDecks   int
	minBet     int
	maxBet     int
	bankroll   int
	playerName string
	shoe       *deck.Shoe
}

// WithDecks sets the number of decks in the shoe
func WithDecks(n int) EngineOption {
	return func(cfg *engineConfig) { cfg.numDecks = n }
}

// WithBetLimits sets the minimum and maximum accepted bet
func WithBetLimits(min, max int) EngineOption {
	return func(cfg *engineConfig) {
		cfg.minBet = min
		cfg.maxBet = max
	}
}

// WithBankroll sets the player's starting bankroll
func WithBankroll(n int) EngineOption {
	return func(cfg *engineConfig) { cfg.bankroll = n }
}

// WithPlayerName sets the player's name
func WithPlayerName(name string) EngineOption {
	return func(cfg *engineConfig) { cfg.playerName = name }
}

// WithShoe supplies a pre-built shoe, overriding WithDecks. Used to rig
// exact deals in tests.
func WithShoe(s *deck.Shoe) EngineOption {
	return func(cfg *engineConfig) { cfg.shoe = s }
}

// NewEngine creates a round engine. The rng is required so that the
// shoe's shuffles are reproducible when seeded.
func NewEngine(rng *rand.Rand, opts ...EngineOption) *Engine {
	if rng == nil {
		panic("rng is required for engine creation")
	}

	cfg := &engineConfig{
		numDecks:   deck.DefaultDecks,
		minBet:     DefaultMinBet,
		maxBet:     DefaultMaxBet,
		bankroll:   DefaultBankroll,
		playerName: "Player",
	}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.minBet < 1 || cfg.maxBet < cfg.minBet {
		panic("invalid bet limits")
	}

	shoe := cfg.shoe
	if shoe == nil {
		shoe = deck.NewShoe(rng, cfg.numDecks)
	}

	return &Engine{
		shoe:   shoe,
		player: NewPlayer(cfg.playerName, cfg.bankroll),
		minBet: cfg.minBet,
		maxBet: cfg.maxBet,
		state:  StateBetting,
	}
}

// Player returns the player so collaborators (the save system, the CLI)
// can read name and bankroll. Mutation stays inside the engine.
func (e *Engine) Player() *Player {
	return e.player
}

// MinBet returns the smallest accepted bet
func (e *Engine) MinBet() int {
	return e.minBet
}

// MaxBet returns the largest accepted bet
func (e *Engine) MaxBet() int {
	return e.maxBet
}

// PlaceBet commits a bet and deals the opening hands. It returns false
// with no state change unless the engine is in the betting state, the
// amount is within table limits and the player can cover it. On success
// play moves to the player's turn, or straight to settlement when the
// opening hand is a natural blackjack.
func (e *Engine) PlaceBet(amount int) bool {
	if e.state != StateBetting {
		return false
	}
	if amount < e.minBet || amount > e.maxBet {
		return false
	}
	if !e.player.PlaceBet(amount) {
		return false
	}
	e.startRound()
	return true
}

// startRound clears both hands and deals player, dealer, player, dealer.
// The committed bet survives the clear because PlaceBet set it after the
// previous round's hands were already empty; re-setting it here keeps
// the order of operations safe regardless.
func (e *Engine) startRound() {
	bet := e.player.Hand.Bet
	e.player.ResetHand()
	e.dealerHand.Clear()
	e.player.Hand.Bet = bet

	e.player.Hand.AddCard(e.shoe.Draw())
	e.dealerHand.AddCard(e.shoe.Draw())
	e.player.Hand.AddCard(e.shoe.Draw())
	e.dealerHand.AddCard(e.shoe.Draw())

	e.state = StatePlayerTurn

	if e.player.Hand.IsBlackjack() {
		e.settleBlackjack()
	}
}

// settleBlackjack resolves a natural 21 in the opening deal. The push
// check only looks at whether the dealer's up-card is worth ten or more;
// it is deliberately not the casino "peek on ace or ten" rule.
func (e *Engine) settleBlackjack() {
	upCard, _ := e.dealerHand.UpCard()
	if upCard.Value() >= 10 && e.dealerHand.Len() == 2 && e.dealerHand.Value() == 21 {
		e.result = ResultTie
		e.player.Bankroll += e.player.Hand.Bet
	} else {
		// Natural pays 3:2, floored on odd bets.
		e.result = ResultBlackjack
		e.player.Bankroll += e.player.Hand.Bet * 5 / 2
	}
	e.state = StateRoundOver
}

// Hit draws one card into the player's hand. It returns false if it is
// not the player's turn, and true whenever the draw happens, busting
// included. Busting settles the round immediately with no payout.
func (e *Engine) Hit() bool {
	if e.state != StatePlayerTurn {
		return false
	}

	e.player.Hand.AddCard(e.shoe.Draw())

	if e.player.Hand.IsBusted() {
		e.result = ResultBusted
		e.state = StateRoundOver
	}
	return true
}

// Stand ends the player's turn. The dealer's draws and the settlement
// run synchronously to completion before Stand returns.
func (e *Engine) Stand() bool {
	if e.state != StatePlayerTurn {
		return false
	}
	e.dealerPlay()
	return true
}

// dealerPlay runs the fixed dealer policy: draw while under 17, stand on
// any 17 (soft 17 included).
func (e *Engine) dealerPlay() {
	e.state = StateDealerTurn

	for e.dealerHand.Value() < 17 {
		e.dealerHand.AddCard(e.shoe.Draw())
	}

	e.settle()
}

// settle compares the final hands and credits the bankroll. Order
// matters: a busted player loses even when the dealer busts too.
func (e *Engine) settle() {
	playerValue := e.player.Hand.Value()
	dealerValue := e.dealerHand.Value()
	bet := e.player.Hand.Bet

	switch {
	case e.player.Hand.IsBusted():
		e.result = ResultBusted
	case e.dealerHand.IsBusted():
		e.result = ResultVictory
		e.player.Bankroll += bet * 2
	case playerValue > dealerValue:
		e.result = ResultVictory
		e.player.Bankroll += bet * 2
	case playerValue < dealerValue:
		e.result = ResultLoss
	default:
		e.result = ResultTie
		e.player.Bankroll += bet
	}

	e.state = StateRoundOver
}

// StartNewRound returns the engine to the betting state and clears the
// stored result. It is a no-op from any state other than round over.
func (e *Engine) StartNewRound() {
	if e.state != StateRoundOver {
		return
	}
	e.state = StateBetting
	e.result = ResultNone
}

// Info is a read-only snapshot of the table, the engine's sole query
// surface for the CLI.
type Info struct {
	State        GameState
	Result       RoundResult
	Bankroll     int
	PlayerHand   string
	PlayerValue  int
	DealerHand   string
	DealerValue  int
	DealerUpCard string
	CanHit       bool
	CanStand     bool
	ShoeSize     int
}

// Info snapshots the current state. It has no side effects and is valid
// in every state; hand strings are empty before the first deal.
func (e *Engine) Info() Info {
	info := Info{
		State:       e.state,
		Result:      e.result,
		Bankroll:    e.player.Bankroll,
		PlayerHand:  e.player.Hand.String(),
		PlayerValue: e.player.Hand.Value(),
		DealerHand:  e.dealerHand.String(),
		DealerValue: e.dealerHand.Value(),
		CanHit:      e.state == StatePlayerTurn && !e.player.Hand.IsBusted(),
		CanStand:    e.state == StatePlayerTurn,
		ShoeSize:    e.shoe.Size(),
	}
	if upCard, ok := e.dealerHand.UpCard(); ok {
		info.DealerUpCard = upCard.String()
	}
	return info
}
