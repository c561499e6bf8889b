package game

// Card is a playable card. Cards are plain values so they can be compared and
// copied freely between resampled battles.
type Card struct {
	Name       string `yaml:"name" validate:"required"`
	Cost       int    `yaml:"cost" validate:"gte=0"`
	Damage     int    `yaml:"damage" validate:"gte=0"`
	Block      int    `yaml:"block" validate:"gte=0"`
	Draw       int    `yaml:"draw" validate:"gte=0"`
	Vulnerable int    `yaml:"vulnerable" validate:"gte=0"` // Turns of vulnerable applied to the target
	Energy     int    `yaml:"energy" validate:"gte=0"`     // Energy gained when played
}

// Targeted reports whether playing the card needs an enemy target.
func (c Card) Targeted() bool {
	return c.Damage > 0 || c.Vulnerable > 0
}

var (
	Strike       = Card{Name: "Strike", Cost: 1, Damage: 6}
	Defend       = Card{Name: "Defend", Cost: 1, Block: 5}
	Bash         = Card{Name: "Bash", Cost: 2, Damage: 8, Vulnerable: 2}
	PommelStrike = Card{Name: "Pommel Strike", Cost: 1, Damage: 9, Draw: 1}
	ShrugItOff   = Card{Name: "Shrug It Off", Cost: 1, Block: 8, Draw: 1}
	Adrenaline   = Card{Name: "Adrenaline", Cost: 0, Energy: 1, Draw: 2}
)

// StandardCards is the built-in card library scenarios can refer to by name.
func StandardCards() []Card {
	return []Card{Strike, Defend, Bash, PommelStrike, ShrugItOff, Adrenaline}
}

// PlayCard plays one card from hand. All copies of a card share one key.
type PlayCard struct {
	Card Card
}

func (p PlayCard) Key() ActionKey {
	return ActionKey("play:" + p.Card.Name)
}

func (p PlayCard) String() string {
	return p.Card.Name
}

// EndTurn discards the hand and lets the enemies act.
type EndTurn struct{}

func (EndTurn) Key() ActionKey {
	return "end"
}

func (EndTurn) String() string {
	return "EndTurn"
}
