// Package timing classifies household tasks into preferred time-of-day
// windows using a local LLM. It satisfies the scheduler's TimingOracle
// contract; callers decide what to do when analysis fails.
package timing

import (
	"context"
	"fmt"
	"strings"

	"blockplan/internal/domain"
	"blockplan/internal/llm"
)

// Analyzer determines when a household task should happen during the day.
type Analyzer struct {
	client llm.Client
}

// NewAnalyzer creates an Analyzer backed by an LLM client.
func NewAnalyzer(client llm.Client) *Analyzer {
	return &Analyzer{client: client}
}

// Analyze asks the model for the task's timing window. The returned timing
// is always valid; any model failure or malformed output comes back as an
// error and the caller falls back to the default window.
func (a *Analyzer) Analyze(ctx context.Context, taskName, description string) (domain.TaskTiming, error) {
	prompt := "Task: " + taskName
	if description != "" {
		prompt += "\nDescription: " + description
	}

	resp, err := a.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskTimingAnalysis,
		SystemPrompt: analysisSystemPrompt,
		UserPrompt:   prompt,
	})
	if err != nil {
		return domain.TaskTiming{}, fmt.Errorf("analyzing task timing: %w", err)
	}

	timing, err := llm.ExtractJSON[domain.TaskTiming](resp.Text, nil)
	if err != nil {
		return domain.TaskTiming{}, fmt.Errorf("analyzing task timing: %w", err)
	}

	// Multi-value preferences like "morning|afternoon" degrade to anytime
	// rather than failing the whole analysis.
	timing.Preferred = normalizePreference(string(timing.Preferred))

	if err := timing.Validate(); err != nil {
		return domain.TaskTiming{}, fmt.Errorf("analyzing task timing: %w: %v", llm.ErrInvalidOutput, err)
	}
	return timing, nil
}

// normalizePreference maps multi-value model answers onto the closed set.
func normalizePreference(raw string) domain.TimePreference {
	if strings.ContainsAny(raw, "|/") {
		return domain.PreferAnytime
	}
	return domain.TimePreference(raw)
}
