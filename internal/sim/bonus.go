package sim

import (
	"math/rand"

	"github.com/iburimskiy/absorb/internal/config"
)

// Bonus is a permanent upgrade offered on the win screen.
type Bonus struct {
	Name  string
	Apply func(t *config.Tuning)
}

var Bonuses = []Bonus{
	{Name: "Absorb faster", Apply: func(t *config.Tuning) { t.AbsorbSpeed += 0.05 }},
	{Name: "Grow bigger", Apply: func(t *config.Tuning) { t.PopSize += 25 }},
	{Name: "Thrust harder", Apply: func(t *config.Tuning) { t.ThrustSpeed += 0.05 }},
	{Name: "Start bigger", Apply: func(t *config.Tuning) { t.PlayerRadius += 5 }},
}

// RandomBonus picks one entry of Bonuses uniformly.
func RandomBonus(rng *rand.Rand) Bonus {
	return Bonuses[rng.Intn(len(Bonuses))]
}
