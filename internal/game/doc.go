// Package game implements the core blackjack round logic.
//
// The main type is Engine, a synchronous state machine that walks each
// round through betting, the player's turn, the dealer's fixed policy
// and settlement. Every action either completes deterministically or is
// rejected with a false return; nothing in the package raises, blocks
// or spawns goroutines.
//
// # Basic Usage
//
//	rng := randutil.New(time.Now().UnixNano())
//	e := game.NewEngine(rng)
//	e.PlaceBet(100)
//	for e.Info().CanHit { ... }
//	e.Stand()
//	info := e.Info() // read the outcome
//	e.StartNewRound()
//
// # Deterministic Testing
//
// The engine's only source of nondeterminism is the shuffle. Pass a
// seeded rng, or rig the whole deal with a fixed-order shoe:
//
//	shoe := deck.NewShoeFromCards(rng, cards...)
//	e := game.NewEngine(rng, game.WithShoe(shoe))
package game
