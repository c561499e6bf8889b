package metrics

import (
	"time"
)

type SearchMetric struct {
	Iterations  int // Configured budget, 0 when bounded by duration only
	Exploration float64
	Duration    time.Duration
	Episodes    int // Iterations actually run
	Rollouts    int
	Nodes       int // Nodes created below the root
	MaxDepth    int // Deepest node created
	Shortcut    bool
	Fallback    bool
}

type DecisionMetric struct {
	Step   int
	Turn   int
	Action string
	SearchMetric
}

type BattleMetric struct {
	Scenario  string
	Result    string
	Turns     int
	Decisions int
	Health    float64
	Score     float64
	StartTime time.Time
	EndTime   time.Time
	Duration  time.Duration
}

// Collector records what happens during one decision's search. Searches are
// single threaded so implementations need no synchronisation.
type Collector interface {
	Start(iterations int, exploration float64)
	AddEpisode()
	AddRollout()
	AddNode(depth int)
	SetShortcut()
	SetFallback()
	Complete() SearchMetric
}

type collector struct {
	startTime time.Time
	metric    SearchMetric
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(iterations int, exploration float64) {
	m.startTime = time.Now()
	m.metric = SearchMetric{Iterations: iterations, Exploration: exploration}
}

func (m *collector) AddEpisode() {
	m.metric.Episodes++
}

func (m *collector) AddRollout() {
	m.metric.Rollouts++
}

func (m *collector) AddNode(depth int) {
	m.metric.Nodes++
	m.metric.MaxDepth = max(m.metric.MaxDepth, depth)
}

func (m *collector) SetShortcut() {
	m.metric.Shortcut = true
}

func (m *collector) SetFallback() {
	m.metric.Fallback = true
}

func (m *collector) Complete() SearchMetric {
	metric := m.metric
	metric.Duration = time.Since(m.startTime)
	return metric
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(iterations int, exploration float64) {}
func (m *dummyCollector) AddEpisode()                               {}
func (m *dummyCollector) AddRollout()                               {}
func (m *dummyCollector) AddNode(depth int)                         {}
func (m *dummyCollector) SetShortcut()                              {}
func (m *dummyCollector) SetFallback()                              {}
func (m *dummyCollector) Complete() SearchMetric                    { return SearchMetric{} }
