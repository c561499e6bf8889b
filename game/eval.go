package game

// Score is the fraction of total enemy health removed, between 0 and 1.
func (b *Battle) Score() float64 {
	dealt, total := 0, 0
	for _, enemy := range b.Enemies {
		dealt += enemy.MaxHP - max(enemy.HP, 0)
		total += enemy.MaxHP
	}
	return fraction(float64(dealt), float64(total))
}

// Health is the player's remaining health as a fraction of maximum.
func (b *Battle) Health() float64 {
	return fraction(float64(max(b.Player.HP, 0)), float64(b.Player.MaxHP))
}

// fraction divides value by total, clamped to [0, 1]
func fraction(value float64, total float64) float64 {
	if total <= 0 {
		return 0
	}
	f := value / total
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}
