package game

import (
	"fmt"
	"strings"

	"ggpa/utils"

	"golang.org/x/exp/rand"
)

// Battle is one fight between the player and a group of enemies. It is the
// State the agent searches over.
type Battle struct {
	Player    Combatant
	Energy    int
	MaxEnergy int
	HandSize  int
	Enemies   []*Enemy
	DrawPile  []Card
	Hand      []Card
	Discard   []Card
	Turn      int
	MaxTurns  int
	rng       *rand.Rand
}

// Copy returns a deep copy sharing the random source.
func (b *Battle) Copy() *Battle {
	enemies := make([]*Enemy, len(b.Enemies))
	for i, enemy := range b.Enemies {
		e := *enemy
		e.Intents = append([]Intent(nil), enemy.Intents...)
		enemies[i] = &e
	}

	return &Battle{
		Player:    b.Player,
		Energy:    b.Energy,
		MaxEnergy: b.MaxEnergy,
		HandSize:  b.HandSize,
		Enemies:   enemies,
		DrawPile:  append([]Card(nil), b.DrawPile...),
		Hand:      append([]Card(nil), b.Hand...),
		Discard:   append([]Card(nil), b.Discard...),
		Turn:      b.Turn,
		MaxTurns:  b.MaxTurns,
		rng:       b.rng,
	}
}

// Resample copies the battle and re-draws its hidden information: the order of
// the draw pile and the random stream that decides future intents and damage.
// The visible hand and the enemies' announced intents are kept.
func (b *Battle) Resample(rng *rand.Rand) State {
	c := b.Copy()
	c.rng = rand.New(rand.NewSource(rng.Uint64()))
	c.rng.Shuffle(len(c.DrawPile), func(i, j int) {
		c.DrawPile[i], c.DrawPile[j] = c.DrawPile[j], c.DrawPile[i]
	})
	return c
}

// Actions lists one PlayCard per affordable distinct card in hand, in hand
// order, followed by EndTurn.
func (b *Battle) Actions() []Action {
	if b.Ended() {
		return nil
	}

	actions := []Action{}
	seen := make(map[string]bool)
	for _, card := range b.Hand {
		if card.Cost > b.Energy || seen[card.Name] {
			continue
		}
		seen[card.Name] = true
		actions = append(actions, PlayCard{Card: card})
	}
	return append(actions, EndTurn{})
}

// Step applies an action, targeting the first living enemy.
func (b *Battle) Step(action Action) {
	if err := b.Apply(action, nil); err != nil {
		panic(err)
	}
}

// Apply applies an action against an explicit target. A nil target means the
// first living enemy.
func (b *Battle) Apply(action Action, target *Combatant) error {
	switch a := action.(type) {
	case PlayCard:
		return b.play(a.Card, target)
	case EndTurn:
		b.endTurn()
		return nil
	default:
		return fmt.Errorf("unexpected action type %T", action)
	}
}

func (b *Battle) play(card Card, target *Combatant) error {
	index := utils.FindIndex(b.Hand, card)
	if index < 0 {
		return fmt.Errorf("cannot play %s: not in hand", card.Name)
	}
	if card.Cost > b.Energy {
		return fmt.Errorf("cannot play %s: needs %d energy, have %d", card.Name, card.Cost, b.Energy)
	}

	enemy := b.enemyFor(target)
	if card.Targeted() && enemy == nil {
		return fmt.Errorf("cannot play %s: no living target", card.Name)
	}

	b.Energy -= card.Cost
	b.Hand = utils.RemoveAt(b.Hand, index)
	b.Discard = append(b.Discard, card)

	if enemy != nil && card.Damage > 0 {
		enemy.TakeDamage(card.Damage + b.Player.Strength)
	}
	if enemy != nil && card.Vulnerable > 0 {
		enemy.Vulnerable += card.Vulnerable
	}
	b.Player.Block += card.Block
	b.Energy += card.Energy
	b.draw(card.Draw)
	return nil
}

func (b *Battle) enemyFor(target *Combatant) *Enemy {
	for _, enemy := range b.Enemies {
		if !enemy.Alive() {
			continue
		}
		if target == nil || &enemy.Combatant == target {
			return enemy
		}
	}
	return nil
}

func (b *Battle) endTurn() {
	b.Discard = append(b.Discard, b.Hand...)
	b.Hand = nil

	for _, enemy := range b.Enemies {
		if enemy.Alive() && b.Player.Alive() {
			enemy.act(&b.Player, b.rng)
		}
	}
	if b.Player.Vulnerable > 0 {
		b.Player.Vulnerable--
	}

	b.Turn++
	if !b.Ended() {
		b.startTurn()
	}
}

func (b *Battle) startTurn() {
	b.Player.Block = 0
	b.Energy = b.MaxEnergy
	b.draw(b.HandSize)
}

// draw moves n cards into the hand, reshuffling the discard pile when the draw
// pile runs out.
func (b *Battle) draw(n int) {
	for i := 0; i < n; i++ {
		if len(b.DrawPile) == 0 {
			if len(b.Discard) == 0 {
				return
			}
			b.DrawPile, b.Discard = b.Discard, nil
			b.rng.Shuffle(len(b.DrawPile), func(i, j int) {
				b.DrawPile[i], b.DrawPile[j] = b.DrawPile[j], b.DrawPile[i]
			})
		}
		b.Hand = append(b.Hand, b.DrawPile[0])
		b.DrawPile = b.DrawPile[1:]
	}
}

// AliveEnemies returns the targetable enemies in order.
func (b *Battle) AliveEnemies() []*Combatant {
	alive := []*Combatant{}
	for _, enemy := range b.Enemies {
		if enemy.Alive() {
			alive = append(alive, &enemy.Combatant)
		}
	}
	return alive
}

func (b *Battle) enemiesDefeated() bool {
	for _, enemy := range b.Enemies {
		if enemy.Alive() {
			return false
		}
	}
	return true
}

func (b *Battle) Ended() bool {
	return !b.Player.Alive() || b.enemiesDefeated() || b.Turn > b.MaxTurns
}

func (b *Battle) Result() Outcome {
	switch {
	case b.enemiesDefeated():
		return Win
	case !b.Player.Alive():
		return Loss
	default:
		return Draw
	}
}

func (b *Battle) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "turn %d/%d | %s %d/%d hp %d block %d energy",
		b.Turn, b.MaxTurns, b.Player.Name, b.Player.HP, b.Player.MaxHP, b.Player.Block, b.Energy)
	for _, enemy := range b.Enemies {
		fmt.Fprintf(&sb, " | %s %d/%d hp %d block (%s)", enemy.Name, enemy.HP, enemy.MaxHP, enemy.Block, enemy.Next)
	}
	names := make([]string, len(b.Hand))
	for i, card := range b.Hand {
		names[i] = card.Name
	}
	fmt.Fprintf(&sb, " | hand [%s]", strings.Join(names, ", "))
	return sb.String()
}
