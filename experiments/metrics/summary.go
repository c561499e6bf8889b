package metrics

import (
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Summary aggregates the battles one agent played.
type Summary struct {
	Agent      int
	Battles    int
	Wins       int
	Losses     int
	Draws      int
	WinRate    float64
	MeanHealth float64
	StdHealth  float64
	MeanScore  float64
	MeanTurns  float64
}

// Summarize groups battle records by agent, ordered by agent id.
func Summarize(records []BattleRecord) []Summary {
	byAgent := make(map[int][]BattleRecord)
	for _, record := range records {
		byAgent[record.Agent] = append(byAgent[record.Agent], record)
	}

	summaries := make([]Summary, 0, len(byAgent))
	for agent, battles := range byAgent {
		summaries = append(summaries, summarize(agent, battles))
	}
	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].Agent < summaries[j].Agent
	})
	return summaries
}

func summarize(agent int, battles []BattleRecord) Summary {
	s := Summary{Agent: agent, Battles: len(battles)}
	health := make([]float64, len(battles))
	score := make([]float64, len(battles))
	turns := make([]float64, len(battles))
	for i, battle := range battles {
		switch battle.Result {
		case "win":
			s.Wins++
		case "loss":
			s.Losses++
		default:
			s.Draws++
		}
		health[i] = battle.Health
		score[i] = battle.Score
		turns[i] = float64(battle.Turns)
	}

	s.WinRate = float64(s.Wins) / float64(s.Battles)
	s.MeanHealth, s.StdHealth = stat.MeanStdDev(health, nil)
	if s.Battles < 2 {
		s.StdHealth = 0 // Sample deviation is undefined for one battle
	}
	s.MeanScore = stat.Mean(score, nil)
	s.MeanTurns = stat.Mean(turns, nil)
	return s
}
