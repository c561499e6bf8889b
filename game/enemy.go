package game

import (
	"fmt"

	"golang.org/x/exp/rand"
)

// Combatant is anything with health that can be targeted: the player or an enemy.
type Combatant struct {
	Name       string
	HP         int
	MaxHP      int
	Block      int
	Strength   int
	Vulnerable int // Remaining turns of +50% damage taken
}

func (c *Combatant) Alive() bool {
	return c.HP > 0
}

// TakeDamage applies vulnerable and block to an incoming hit and returns the
// health actually lost.
func (c *Combatant) TakeDamage(amount int) int {
	if amount <= 0 {
		return 0
	}
	if c.Vulnerable > 0 {
		amount = amount * 3 / 2
	}
	absorbed := min(c.Block, amount)
	c.Block -= absorbed
	lost := min(c.HP, amount-absorbed)
	c.HP -= lost
	return lost
}

type IntentKind string

const (
	IntentAttack IntentKind = "attack"
	IntentDefend IntentKind = "defend"
	IntentBuff   IntentKind = "buff"
)

// Intent is one move an enemy may roll for its next turn.
type Intent struct {
	Kind   IntentKind `yaml:"kind" validate:"oneof=attack defend buff"`
	Amount int        `yaml:"amount" validate:"gte=0"`
	Spread int        `yaml:"spread" validate:"gte=0"` // Attack damage varies uniformly in [Amount, Amount+Spread]
	Weight int        `yaml:"weight" validate:"gt=0"`
}

func (i Intent) String() string {
	switch i.Kind {
	case IntentAttack:
		if i.Spread > 0 {
			return fmt.Sprintf("attack %d-%d", i.Amount, i.Amount+i.Spread)
		}
		return fmt.Sprintf("attack %d", i.Amount)
	default:
		return fmt.Sprintf("%s %d", i.Kind, i.Amount)
	}
}

// Enemy is a combatant driven by weighted random intents. Next is visible to
// the player; every intent after it is hidden randomness.
type Enemy struct {
	Combatant
	Intents []Intent
	Next    Intent
}

func (e *Enemy) rollIntent(rng *rand.Rand) {
	total := 0
	for _, intent := range e.Intents {
		total += intent.Weight
	}
	if total <= 0 {
		e.Next = Intent{}
		return
	}
	roll := rng.Intn(total)
	for _, intent := range e.Intents {
		roll -= intent.Weight
		if roll < 0 {
			e.Next = intent
			return
		}
	}
}

// act resolves the enemy's current intent against the player and rolls the next one.
func (e *Enemy) act(player *Combatant, rng *rand.Rand) {
	e.Block = 0
	switch e.Next.Kind {
	case IntentAttack:
		damage := e.Next.Amount + e.Strength
		if e.Next.Spread > 0 {
			damage += rng.Intn(e.Next.Spread + 1)
		}
		player.TakeDamage(damage)
	case IntentDefend:
		e.Block += e.Next.Amount
	case IntentBuff:
		e.Strength += e.Next.Amount
	}
	if e.Vulnerable > 0 {
		e.Vulnerable--
	}
	e.rollIntent(rng)
}
