package player

import "github.com/KirkDiggler/delve-vitals/internal/domain/shared"

// DigCandidate is a melee weapon the player could dig with
type DigCandidate struct {
	ID      string
	Number  int
	Sticky  bool // cursed so it cannot be taken off
	Digging int  // digging bonus the weapon itself grants
}

// DigScorer computes the digging skill the player would have wielding c.
// It must not modify the player.
type DigScorer func(p *Player, c DigCandidate) int

// BaseDigScore is the scorer used when none is supplied
func BaseDigScore(p *Player, c DigCandidate) int {
	return c.Digging
}

// BestDigger picks the best digging weapon from candidates without touching
// what is currently wielded. Nil means digging bare handed is best.
func (p *Player) BestDigger(candidates []DigCandidate, forbidStack bool, score DigScorer) *DigCandidate {
	if score == nil {
		score = BaseDigScore
	}

	// prefer any weapon over bare hands, unless made of wood
	bestScore := -1
	if p.Has(shared.TraitWooden) {
		bestScore = p.Level * 10
	}

	var best *DigCandidate
	for i := range candidates {
		c := &candidates[i]
		if c.Number < 1 || (forbidStack && c.Number > 1) {
			continue
		}
		if c.Sticky {
			continue
		}

		if s := score(p, *c); s > bestScore {
			best = c
			bestScore = s
		}
	}
	return best
}
