// Package insight asks a text-generation model for a short narrative
// summary of the fleet's maintenance state.
package insight

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/ukydev/apex-maintenance/internal/models"
)

// Messages returned in place of an analysis.
const (
	NotConfiguredMessage = "API Key not configured. Please check environment variables."
	FailedMessage        = "Error generating analysis."
	EmptyMessage         = "No analysis available."
)

// recentJobLimit caps how many job cards go into the prompt.
const recentJobLimit = 5

// Generator turns a prompt into text.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

type machineSummary struct {
	Brand models.Brand `json:"brand"`
	Model string       `json:"model"`
	Hours float64      `json:"hours"`
}

type jobSummary struct {
	Type     models.JobType     `json:"type"`
	Findings string             `json:"findings"`
	Parts    []models.SparePart `json:"parts"`
}

// BuildPrompt embeds machine and recent job summaries into the analysis prompt.
func BuildPrompt(jobs []models.JobCard, machines []models.Machine) (string, error) {
	ms := make([]machineSummary, len(machines))
	for i, m := range machines {
		ms[i] = machineSummary{Brand: m.Brand, Model: m.Model, Hours: m.CurrentHours}
	}
	if len(jobs) > recentJobLimit {
		jobs = jobs[:recentJobLimit]
	}
	js := make([]jobSummary, len(jobs))
	for i, j := range jobs {
		parts := j.SpareParts
		if parts == nil {
			parts = []models.SparePart{}
		}
		js[i] = jobSummary{Type: j.JobType, Findings: j.Findings, Parts: parts}
	}

	machinesJSON, err := json.Marshal(ms)
	if err != nil {
		return "", fmt.Errorf("encode machines: %w", err)
	}
	jobsJSON, err := json.Marshal(js)
	if err != nil {
		return "", fmt.Errorf("encode job cards: %w", err)
	}

	var b strings.Builder
	b.WriteString("Analyze the following maintenance data for heavy machinery:\n")
	fmt.Fprintf(&b, "Machines: %s\n", machinesJSON)
	fmt.Fprintf(&b, "Recent Job Cards: %s\n\n", jobsJSON)
	b.WriteString("Provide a brief professional summary of the current maintenance health, top recurring issues, and a recommendation for next month's focus.\n")
	b.WriteString("Keep it concise and formatted in Markdown.\n")
	return b.String(), nil
}

// Service produces analyses. A nil generator means no API key was configured.
type Service struct {
	generator Generator
	logger    *log.Logger
}

// NewService creates an insight service.
func NewService(generator Generator, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.StandardLogger()
	}
	return &Service{generator: generator, logger: logger}
}

// Analyze never fails; problems are reported as one of the fixed messages.
func (s *Service) Analyze(ctx context.Context, jobs []models.JobCard, machines []models.Machine) string {
	if s.generator == nil {
		return NotConfiguredMessage
	}
	prompt, err := BuildPrompt(jobs, machines)
	if err != nil {
		s.logger.WithError(err).Error("Failed to build analysis prompt")
		return FailedMessage
	}
	text, err := s.generator.Generate(ctx, prompt)
	if err != nil {
		s.logger.WithError(err).Error("Analysis generation failed")
		return FailedMessage
	}
	if strings.TrimSpace(text) == "" {
		return EmptyMessage
	}
	return text
}
