package game

import (
	"fmt"

	"golang.org/x/exp/rand"
)

// Scenario describes the starting position of a battle. It is loaded from the
// scenario section of the YAML config.
type Scenario struct {
	Name     string      `yaml:"name" validate:"required"`
	MaxTurns int         `yaml:"max_turns" validate:"gt=0"`
	Player   PlayerSpec  `yaml:"player"`
	Enemies  []EnemySpec `yaml:"enemies" validate:"min=1,dive"`
	Cards    []Card      `yaml:"cards" validate:"dive"` // Extra cards on top of StandardCards
}

type PlayerSpec struct {
	HP       int      `yaml:"hp" validate:"gt=0"`
	Energy   int      `yaml:"energy" validate:"gt=0"`
	HandSize int      `yaml:"hand_size" validate:"gt=0"`
	Deck     []string `yaml:"deck" validate:"min=1"`
}

type EnemySpec struct {
	Name    string   `yaml:"name" validate:"required"`
	HP      int      `yaml:"hp" validate:"gt=0"`
	Intents []Intent `yaml:"intents" validate:"min=1,dive"`
}

// DefaultScenario is a single-enemy fight with the starter deck.
func DefaultScenario() Scenario {
	return Scenario{
		Name:     "starter",
		MaxTurns: 20,
		Player: PlayerSpec{
			HP:       50,
			Energy:   3,
			HandSize: 5,
			Deck: []string{
				"Strike", "Strike", "Strike", "Strike", "Strike",
				"Defend", "Defend", "Defend", "Defend",
				"Bash", "Pommel Strike", "Shrug It Off",
			},
		},
		Enemies: []EnemySpec{
			{
				Name: "Jaw Worm",
				HP:   42,
				Intents: []Intent{
					{Kind: IntentAttack, Amount: 11, Weight: 4},
					{Kind: IntentAttack, Amount: 6, Spread: 3, Weight: 3},
					{Kind: IntentDefend, Amount: 6, Weight: 2},
					{Kind: IntentBuff, Amount: 3, Weight: 1},
				},
			},
		},
	}
}

// Library returns the cards a scenario may refer to, keyed by name.
func (s Scenario) Library() map[string]Card {
	library := make(map[string]Card)
	for _, card := range StandardCards() {
		library[card.Name] = card
	}
	for _, card := range s.Cards {
		library[card.Name] = card
	}
	return library
}

// Check verifies the cross references a struct validator cannot see.
func (s Scenario) Check() error {
	library := s.Library()
	for _, name := range s.Player.Deck {
		if _, ok := library[name]; !ok {
			return fmt.Errorf("scenario %q: unknown card %q in deck", s.Name, name)
		}
	}
	return nil
}

// NewBattle deals the opening hand of a scenario. rng becomes the battle's
// own source of randomness.
func NewBattle(s Scenario, rng *rand.Rand) (*Battle, error) {
	if err := s.Check(); err != nil {
		return nil, err
	}

	library := s.Library()
	deck := make([]Card, 0, len(s.Player.Deck))
	for _, name := range s.Player.Deck {
		deck = append(deck, library[name])
	}
	rng.Shuffle(len(deck), func(i, j int) {
		deck[i], deck[j] = deck[j], deck[i]
	})

	b := &Battle{
		Player: Combatant{
			Name:  "Player",
			HP:    s.Player.HP,
			MaxHP: s.Player.HP,
		},
		MaxEnergy: s.Player.Energy,
		HandSize:  s.Player.HandSize,
		DrawPile:  deck,
		Turn:      1,
		MaxTurns:  s.MaxTurns,
		rng:       rng,
	}
	for _, def := range s.Enemies {
		enemy := &Enemy{
			Combatant: Combatant{Name: def.Name, HP: def.HP, MaxHP: def.HP},
			Intents:   append([]Intent(nil), def.Intents...),
		}
		enemy.rollIntent(rng)
		b.Enemies = append(b.Enemies, enemy)
	}
	b.startTurn()
	return b, nil
}
