package game

import "fmt"

// Player holds the bettor's identity, bankroll and current hand.
// The bankroll never goes negative: bets are only committed when the
// player can cover them, and the stake leaves the bankroll at commit
// time rather than at settlement.
type Player struct {
	Name     string
	Bankroll int
	Hand     Hand
}

// NewPlayer creates a player with a starting bankroll
func NewPlayer(name string, bankroll int) *Player {
	return &Player{Name: name, Bankroll: bankroll}
}

// PlaceBet commits amount from the bankroll onto the hand. It returns
// false without mutating anything if the bankroll cannot cover it.
func (p *Player) PlaceBet(amount int) bool {
	if amount > p.Bankroll {
		return false
	}
	p.Bankroll -= amount
	p.Hand.Bet = amount
	return true
}

// ResetHand clears the hand's cards and bet without touching the bankroll
func (p *Player) ResetHand() {
	p.Hand.Clear()
}

// String returns the player's display form, e.g. "Player ($1000)"
func (p *Player) String() string {
	return fmt.Sprintf("%s ($%d)", p.Name, p.Bankroll)
}
