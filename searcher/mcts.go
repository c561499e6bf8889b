package searcher

import (
	"io"
	"time"

	"ggpa/experiments/metrics"
	"ggpa/game"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

type Option func(mcts *MCTS)

// MCTS chooses actions by building a fresh search tree for every decision.
type MCTS struct {
	iterations  int
	duration    time.Duration
	exploration float64
	score       ScoreFn
	rng         *rand.Rand
	verbose     io.Writer
	metrics     metrics.Collector
}

func WithIterations(iterations int) Option {
	return func(m *MCTS) {
		if iterations > 0 {
			m.iterations = iterations
		}
	}
}

// WithDuration bounds each search by wall-clock time, checked between
// iterations. Combined with WithIterations, whichever runs out first stops the
// search.
func WithDuration(duration time.Duration) Option {
	return func(m *MCTS) {
		if duration > 0 {
			m.duration = duration
		}
	}
}

func WithExploration(c float64) Option {
	return func(m *MCTS) {
		if c >= 0 {
			m.exploration = c
		}
	}
}

func WithSeed(seed uint64) Option {
	return func(m *MCTS) {
		m.rng = rand.New(rand.NewSource(seed))
	}
}

func WithRand(rng *rand.Rand) Option {
	return func(m *MCTS) {
		if rng != nil {
			m.rng = rng
		}
	}
}

func WithScoreFn(score ScoreFn) Option {
	return func(m *MCTS) {
		if score != nil {
			m.score = score
		}
	}
}

// WithVerbose prints the search tree to w after every search.
func WithVerbose(w io.Writer) Option {
	return func(m *MCTS) {
		m.verbose = w
	}
}

func WithMetrics() Option {
	return func(m *MCTS) {
		m.metrics = metrics.NewCollector()
	}
}

func NewMCTS(options ...Option) *MCTS {
	m := &MCTS{ // Default values
		exploration: DefaultExploration,
		score:       BlendedScore,
		metrics:     metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(m)
	}
	if m.iterations <= 0 && m.duration <= 0 {
		panic("Must specify search iterations or duration")
	}
	if m.rng == nil {
		m.rng = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}
	return m
}

// FindAction searches from state and returns the chosen legal action. It
// returns nil only when state has no legal actions.
func (m *MCTS) FindAction(state game.State) (game.Action, metrics.SearchMetric) {
	m.metrics.Start(m.iterations, m.exploration)

	actions := state.Actions()
	switch len(actions) {
	case 0:
		return nil, m.metrics.Complete()
	case 1:
		m.metrics.SetShortcut()
		return actions[0], m.metrics.Complete()
	}

	tree := NewTree(m.exploration, m.score, m.rng, m.metrics)
	start := time.Now()
	for i := 0; m.iterations <= 0 || i < m.iterations; i++ {
		if m.duration > 0 && time.Since(start) >= m.duration {
			break
		}
		tree.Step(state.Resample(m.rng))
		m.metrics.AddEpisode()
	}

	best, found := tree.Best(state)
	if m.verbose != nil {
		if err := tree.PrintTree(m.verbose); err != nil {
			log.Warn().Err(err).Msg("failed to print search tree")
		}
	}
	if !found {
		log.Warn().Msgf("MCTS did not find an explored action among %d legal actions, falling back to %s", len(actions), best)
		m.metrics.SetFallback()
	}
	return best, m.metrics.Complete()
}
