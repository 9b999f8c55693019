package game

import (
	"strings"

	"github.com/lox/blackjack-cli/internal/deck"
)

// Hand is an ordered set of cards plus the amount wagered on them.
// Card order is deal order and only matters for display.
type Hand struct {
	cards []deck.Card
	Bet   int
}

// AddCard appends a card to the hand
func (h *Hand) AddCard(card deck.Card) {
	h.cards = append(h.cards, card)
}

// Value returns the blackjack total of the hand. Aces start at 11 and
// are softened to 1 one at a time while the total is over 21, each ace
// at most once. Computed fresh on every call so it can never go stale.
func (h *Hand) Value() int {
	total := 0
	aces := 0
	for _, c := range h.cards {
		total += c.Value()
		if c.IsAce() {
			aces++
		}
	}
	for total > 21 && aces > 0 {
		total -= 10
		aces--
	}
	return total
}

// IsBlackjack returns true for a natural: exactly two cards totalling 21.
// A 21 made with three or more cards is not a blackjack.
func (h *Hand) IsBlackjack() bool {
	return len(h.cards) == 2 && h.Value() == 21
}

// IsBusted returns true if the hand's value exceeds 21
func (h *Hand) IsBusted() bool {
	return h.Value() > 21
}

// Clear removes all cards and zeroes the bet
func (h *Hand) Clear() {
	h.cards = h.cards[:0]
	h.Bet = 0
}

// Len returns the number of cards in the hand
func (h *Hand) Len() int {
	return len(h.cards)
}

// Cards returns a copy of the hand's cards in deal order
func (h *Hand) Cards() []deck.Card {
	out := make([]deck.Card, len(h.cards))
	copy(out, h.cards)
	return out
}

// UpCard returns the first card dealt to the hand, if any. For the
// dealer this is the face-up card the player sees.
func (h *Hand) UpCard() (deck.Card, bool) {
	if len(h.cards) == 0 {
		return deck.Card{}, false
	}
	return h.cards[0], true
}

// String returns the space-joined display form, e.g. "AH 10S"
func (h *Hand) String() string {
	parts := make([]string, len(h.cards))
	for i, c := range h.cards {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}
