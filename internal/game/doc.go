// Package game implements a single hand of no-limit Texas Hold'em without
// blinds: dealing, one betting round per street, and a single-winner
// showdown.
//
// The main type is Hand. Players are seated in order and each one is driven
// by an Agent (a human prompt or a bot):
//
//	players := []*game.Player{
//	    game.NewPlayer(0, "Alice", 1000, alice),
//	    game.NewPlayer(1, "Bob", 1000, bob),
//	}
//	h := game.NewHand(deck.New(rng), players, game.WithLogger(logger))
//	result, err := h.Play(ctx)
//
// # Betting
//
// Every street runs exactly one pass over the players who have not folded
// and still hold chips. A raise is an increment on top of the amount owed;
// requests above a player's stack are clamped, so no stack ever goes
// negative. After every action the hand verifies that chips are conserved
// and fails with ErrChipAccounting if they are not.
//
// # Events
//
// The hand publishes HandStart, HoleCards, StreetChange, PlayerAction,
// Showdown and HandEnd events to an EventBus. The console display and
// HandHistory subscribe to them.
package game
