package deck

import (
	rand "math/rand/v2"
)

// DefaultDecks is the number of 52-card decks a shoe holds unless
// configured otherwise.
const DefaultDecks = 6

// Shoe is a multi-deck draw pile. Cards are drawn from the end of the
// slice; when the shoe runs dry it silently rebuilds and reshuffles, so
// Draw never fails.
type Shoe struct {
	cards    []Card
	numDecks int
	rng      *rand.Rand
}

// NewShoe creates a shuffled shoe holding numDecks standard decks.
// The rng is required so shuffles are reproducible under test.
func NewShoe(rng *rand.Rand, numDecks int) *Shoe {
	if rng == nil {
		panic("rng is required for shoe creation")
	}
	if numDecks < 1 {
		numDecks = 1
	}
	s := &Shoe{
		cards:    make([]Card, 0, 52*numDecks),
		numDecks: numDecks,
		rng:      rng,
	}
	s.build()
	s.Shuffle()
	return s
}

// NewShoeFromCards creates a shoe with a fixed card order, used for
// deterministic game scenarios. Cards are drawn from the end, so the
// last card in the slice is the first one dealt. If the fixed cards run
// out the shoe replenishes itself like a normal one.
func NewShoeFromCards(rng *rand.Rand, cards ...Card) *Shoe {
	if rng == nil {
		panic("rng is required for shoe creation")
	}
	s := &Shoe{
		cards:    append([]Card(nil), cards...),
		numDecks: DefaultDecks,
		rng:      rng,
	}
	return s
}

// build repopulates the shoe with every suit/rank combination repeated
// numDecks times, in deterministic order. It does not shuffle.
func (s *Shoe) build() {
	s.cards = s.cards[:0]
	for d := 0; d < s.numDecks; d++ {
		for suit := Hearts; suit <= Spades; suit++ {
			for rank := Two; rank <= Ace; rank++ {
				s.cards = append(s.cards, NewCard(suit, rank))
			}
		}
	}
}

// Shuffle randomizes the order of the remaining cards
func (s *Shoe) Shuffle() {
	for i := len(s.cards) - 1; i > 0; i-- {
		j := s.rng.IntN(i + 1)
		s.cards[i], s.cards[j] = s.cards[j], s.cards[i]
	}
}

// Draw removes and returns the top card. An empty shoe is rebuilt and
// reshuffled first, so drawing always succeeds; the replenish is
// observable only as a jump in Size.
func (s *Shoe) Draw() Card {
	if len(s.cards) == 0 {
		s.build()
		s.Shuffle()
	}
	card := s.cards[len(s.cards)-1]
	s.cards = s.cards[:len(s.cards)-1]
	return card
}

// Size returns the number of cards remaining in the shoe
func (s *Shoe) Size() int {
	return len(s.cards)
}
