package game

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lox/blackjack-cli/internal/deck"
)

func handOf(cards ...deck.Card) *Hand {
	h := &Hand{}
	for _, c := range cards {
		h.AddCard(c)
	}
	return h
}

func TestHandValue(t *testing.T) {
	tests := []struct {
		name     string
		cards    []deck.Card
		expected int
	}{
		{
			name:     "simple total",
			cards:    []deck.Card{{Suit: deck.Hearts, Rank: deck.Five}, {Suit: deck.Clubs, Rank: deck.Nine}},
			expected: 14,
		},
		{
			name:     "face cards count ten",
			cards:    []deck.Card{{Suit: deck.Hearts, Rank: deck.Jack}, {Suit: deck.Clubs, Rank: deck.Queen}},
			expected: 20,
		},
		{
			name:     "ace counts eleven while safe",
			cards:    []deck.Card{{Suit: deck.Hearts, Rank: deck.Ace}, {Suit: deck.Clubs, Rank: deck.Six}},
			expected: 17,
		},
		{
			name:     "ace softens to avoid bust",
			cards:    []deck.Card{{Suit: deck.Hearts, Rank: deck.Ace}, {Suit: deck.Clubs, Rank: deck.Six}, {Suit: deck.Spades, Rank: deck.Nine}},
			expected: 16,
		},
		{
			name: "two aces soften one at a time",
			cards: []deck.Card{
				{Suit: deck.Hearts, Rank: deck.Ace},
				{Suit: deck.Spades, Rank: deck.Ace},
				{Suit: deck.Clubs, Rank: deck.Nine},
			},
			expected: 21,
		},
		{
			name: "all four aces",
			cards: []deck.Card{
				{Suit: deck.Hearts, Rank: deck.Ace},
				{Suit: deck.Diamonds, Rank: deck.Ace},
				{Suit: deck.Clubs, Rank: deck.Ace},
				{Suit: deck.Spades, Rank: deck.Ace},
			},
			expected: 14,
		},
		{
			name: "bust reports minimal achievable total",
			cards: []deck.Card{
				{Suit: deck.Hearts, Rank: deck.King},
				{Suit: deck.Clubs, Rank: deck.Queen},
				{Suit: deck.Spades, Rank: deck.Ace},
				{Suit: deck.Diamonds, Rank: deck.Five},
			},
			expected: 26,
		},
		{
			name:     "empty hand",
			cards:    nil,
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, handOf(tt.cards...).Value())
		})
	}
}

func TestHandIsBlackjack(t *testing.T) {
	natural := handOf(
		deck.Card{Suit: deck.Spades, Rank: deck.Ace},
		deck.Card{Suit: deck.Hearts, Rank: deck.King},
	)
	assert.True(t, natural.IsBlackjack())

	// 21 made with three cards is not a blackjack.
	threeCard := handOf(
		deck.Card{Suit: deck.Spades, Rank: deck.Seven},
		deck.Card{Suit: deck.Hearts, Rank: deck.Seven},
		deck.Card{Suit: deck.Clubs, Rank: deck.Seven},
	)
	assert.Equal(t, 21, threeCard.Value())
	assert.False(t, threeCard.IsBlackjack())

	twenty := handOf(
		deck.Card{Suit: deck.Spades, Rank: deck.King},
		deck.Card{Suit: deck.Hearts, Rank: deck.Queen},
	)
	assert.False(t, twenty.IsBlackjack())
}

func TestHandIsBusted(t *testing.T) {
	h := handOf(
		deck.Card{Suit: deck.Spades, Rank: deck.King},
		deck.Card{Suit: deck.Hearts, Rank: deck.Queen},
	)
	assert.False(t, h.IsBusted())

	h.AddCard(deck.Card{Suit: deck.Clubs, Rank: deck.Five})
	assert.True(t, h.IsBusted())
}

func TestHandClear(t *testing.T) {
	h := handOf(deck.Card{Suit: deck.Spades, Rank: deck.King})
	h.Bet = 50

	h.Clear()

	assert.Equal(t, 0, h.Len())
	assert.Equal(t, 0, h.Bet)
	assert.Equal(t, 0, h.Value())
}

func TestHandString(t *testing.T) {
	h := handOf(
		deck.Card{Suit: deck.Hearts, Rank: deck.Ace},
		deck.Card{Suit: deck.Spades, Rank: deck.Ten},
	)
	assert.Equal(t, "AH 10S", h.String())
	assert.Equal(t, "", (&Hand{}).String())
}

func TestHandUpCard(t *testing.T) {
	h := &Hand{}
	_, ok := h.UpCard()
	assert.False(t, ok)

	first := deck.Card{Suit: deck.Hearts, Rank: deck.Seven}
	h.AddCard(first)
	h.AddCard(deck.Card{Suit: deck.Spades, Rank: deck.King})

	up, ok := h.UpCard()
	assert.True(t, ok)
	assert.Equal(t, first, up)
}

func TestHandCardsReturnsCopy(t *testing.T) {
	h := handOf(deck.Card{Suit: deck.Hearts, Rank: deck.Seven})
	cards := h.Cards()
	cards[0] = deck.Card{Suit: deck.Spades, Rank: deck.Two}

	assert.Equal(t, deck.Card{Suit: deck.Hearts, Rank: deck.Seven}, h.Cards()[0])
}
