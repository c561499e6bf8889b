package engine

// MaxDecisions caps a single battle so a misbehaving agent cannot loop forever.
const MaxDecisions = 10000
