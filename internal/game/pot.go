package game

// Pot tracks the chips committed in a hand and the bet to call on the
// current street. The hand is its only writer.
type Pot struct {
	Total      int // Accumulated over every street of the hand
	CurrentBet int // Highest street commitment, reset at each street
}

// Add adds committed chips to the pot
func (p *Pot) Add(amount int) {
	p.Total += amount
}

// Raise lifts the bet to call if streetBet exceeds it
func (p *Pot) Raise(streetBet int) {
	p.CurrentBet = max(p.CurrentBet, streetBet)
}

// ToCall returns what a player with the given street commitment owes
func (p *Pot) ToCall(streetBet int) int {
	return max(0, p.CurrentBet-streetBet)
}

func (p *Pot) resetStreet() {
	p.CurrentBet = 0
}
