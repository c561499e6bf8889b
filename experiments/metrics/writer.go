package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// AgentConfig describes one contestant of an experiment.
type AgentConfig struct {
	ID          int           `yaml:"id" validate:"gte=0"`
	Kind        string        `yaml:"kind" validate:"oneof=mcts random"`
	Iterations  int           `yaml:"iterations" validate:"gte=0"`
	Duration    time.Duration `yaml:"duration" validate:"gte=0"`
	Exploration float64       `yaml:"exploration" validate:"gte=0"`
	Scoring     string        `yaml:"scoring" validate:"omitempty,oneof=blend strict"`
}

type BattleRecord struct {
	ID    int
	Agent int // AgentConfig.ID
	Seed  uint64
	BattleMetric
}

type DecisionRecord struct {
	Battle int // BattleRecord.ID
	Agent  int // AgentConfig.ID
	DecisionMetric
}

// Writer stores the records of one experiment run as CSV files in its own
// directory.
type Writer struct {
	baseDir string
}

func NewWriter(outputDir, name, runID string) (*Writer, error) {
	baseDir := filepath.Join(outputDir, name, runID)
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}
	return &Writer{baseDir: baseDir}, nil
}

func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) WriteAgentConfigs(configs []AgentConfig) error {
	header := []string{"id", "kind", "iterations", "duration", "exploration", "scoring"}
	rows := make([][]string, 0, len(configs))
	for _, config := range configs {
		rows = append(rows, []string{
			strconv.Itoa(config.ID),
			config.Kind,
			strconv.Itoa(config.Iterations),
			config.Duration.String(),
			formatFloat(config.Exploration),
			config.Scoring,
		})
	}
	return w.write("agent_configs.csv", header, rows)
}

func (w *Writer) WriteBattleRecords(records []BattleRecord) error {
	header := []string{"id", "agent", "seed", "scenario", "result", "turns", "decisions", "health", "score", "start_time", "end_time", "duration"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.ID),
			strconv.Itoa(record.Agent),
			strconv.FormatUint(record.Seed, 10),
			record.Scenario,
			record.Result,
			strconv.Itoa(record.Turns),
			strconv.Itoa(record.Decisions),
			formatFloat(record.Health),
			formatFloat(record.Score),
			record.StartTime.Format(time.RFC3339),
			record.EndTime.Format(time.RFC3339),
			record.Duration.String(),
		})
	}
	return w.write("battle_records.csv", header, rows)
}

func (w *Writer) WriteDecisionRecords(records []DecisionRecord) error {
	header := []string{"battle", "agent", "step", "turn", "action", "duration", "episodes", "rollouts", "nodes", "max_depth", "shortcut", "fallback"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.Battle),
			strconv.Itoa(record.Agent),
			strconv.Itoa(record.Step),
			strconv.Itoa(record.Turn),
			record.Action,
			record.Duration.String(),
			strconv.Itoa(record.Episodes),
			strconv.Itoa(record.Rollouts),
			strconv.Itoa(record.Nodes),
			strconv.Itoa(record.MaxDepth),
			strconv.FormatBool(record.Shortcut),
			strconv.FormatBool(record.Fallback),
		})
	}
	return w.write("decision_records.csv", header, rows)
}

func (w *Writer) write(file string, header []string, rows [][]string) error {
	path := filepath.Join(w.baseDir, file)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", file, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write %s header: %w", file, err)
	}
	if err := writer.WriteAll(rows); err != nil {
		return fmt.Errorf("failed to write %s rows: %w", file, err)
	}
	return nil
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', 4, 64)
}
