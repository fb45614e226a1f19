package shared

// Trait is an innate class or race ability
type Trait string

const (
	TraitRegeneration Trait = "regeneration"
	TraitMeditation   Trait = "meditation"
	TraitCombatRegen  Trait = "combat_regen"
	TraitFury         Trait = "fury"
	TraitWooden       Trait = "wooden"
)

// Traits is the set of abilities a player has
type Traits map[Trait]bool

// NewTraits builds a set from a list
func NewTraits(traits ...Trait) Traits {
	out := make(Traits, len(traits))
	for _, tr := range traits {
		out[tr] = true
	}
	return out
}

// Has reports whether the trait is present
func (t Traits) Has(trait Trait) bool {
	return t[trait]
}
