// Package analysis builds the stress-assessment prompt from a parsed
// dataset, invokes the configured LLM, and parses its response into a
// structured verdict.
package analysis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"stresswatch/backend/internal/metrics"
	"stresswatch/backend/internal/stress/domain"
)

// Client is the completion backend the analyzer calls. Satisfied by the
// llm package's providers and by test stubs.
type Client interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Analyzer turns a telemetry dataset into a stress verdict via one LLM call.
// No retries are performed here; a failed or timed-out call is terminal for
// the submission.
type Analyzer struct {
	client  Client
	timeout time.Duration
}

// New returns an Analyzer that bounds every LLM call with timeout.
func New(client Client, timeout time.Duration) *Analyzer {
	return &Analyzer{client: client, timeout: timeout}
}

// verdictPayload is the JSON shape the model is instructed to return.
// Reason is the legacy name for the rationale field; Analysis wins when
// both are present.
type verdictPayload struct {
	StressScore *float64 `json:"stress_score"`
	Analysis    string   `json:"analysis"`
	Reason      string   `json:"reason"`
}

// Analyze scores the dataset. Fails with domain.ErrInsufficientData before
// any network call when the dataset has no rows, domain.ErrAnalysisTimeout
// when the call exceeds the configured deadline, and a
// domain.AnalysisParseError (carrying the raw body) when the response is
// not the expected JSON shape.
func (a *Analyzer) Analyze(ctx context.Context, ds *domain.Dataset) (*domain.StressVerdict, error) {
	if ds.Empty() {
		return nil, domain.ErrInsufficientData
	}

	prompt := BuildPrompt(ds)

	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	start := time.Now()
	raw, err := a.client.Generate(ctx, prompt)
	metrics.LLMRequestDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, fmt.Errorf("%w after %s", domain.ErrAnalysisTimeout, a.timeout)
		}
		return nil, fmt.Errorf("analysis: %w", err)
	}

	var payload verdictPayload
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return nil, &domain.AnalysisParseError{Raw: raw, Cause: err}
	}
	if payload.StressScore == nil {
		return nil, &domain.AnalysisParseError{Raw: raw, Cause: errors.New("missing stress_score field")}
	}

	rationale := payload.Analysis
	if rationale == "" {
		rationale = payload.Reason
	}
	if rationale == "" {
		slog.Warn("LLM verdict has no rationale text")
	}

	score := *payload.StressScore
	// Out-of-range scores are accepted as-is; the analyzer does not
	// second-guess the model's numeric output.
	if score < 0 || score > 100 {
		slog.Warn("stress score outside expected range", "stress_score", score)
	}

	return &domain.StressVerdict{StressScore: score, Analysis: rationale}, nil
}

// BuildPrompt renders the instruction block and a per-row listing of the
// dataset's fields in header order. The output is deterministic for
// identical input so stubbed-LLM tests are reproducible.
func BuildPrompt(ds *domain.Dataset) string {
	var b strings.Builder
	b.WriteString("You are a mental health expert analyzing stress levels.\n\n")
	b.WriteString("CRITICAL: You must respond with ONLY valid JSON in the exact format specified below. Do not include any other text, explanations, or formatting.\n\n")
	b.WriteString("Task: Analyze the following telemetry to determine if there are signs of stress:\n\n")

	for i, row := range ds.Rows {
		fmt.Fprintf(&b, "row %d: ", i+1)
		for j, name := range ds.Header {
			if j > 0 {
				b.WriteString(", ")
			}
			value := ""
			if j < len(row) {
				value = row[j]
			}
			fmt.Fprintf(&b, "%s=%s", name, value)
		}
		b.WriteString("\n")
	}

	b.WriteString("\nAnalysis Guidelines:\n")
	b.WriteString("- Focus on stress, sleep, mood, and mental-health indicators when present\n")
	b.WriteString("- stress_level > 40 indicates elevated stress\n")
	b.WriteString("- sleep_hours < 6 indicates insufficient sleep\n")
	b.WriteString("- mood_score < 2.0 indicates poor mood\n\n")
	b.WriteString("IMPORTANT: Write concisely. State facts directly; avoid filler like \"after analyzing\" or \"based on the data\".\n\n")
	b.WriteString("Return ONLY this JSON structure:\n")
	b.WriteString(`{"stress_score": <number between 0 and 100, where 0 is no stress and 100 is extreme stress>, "analysis": "<your assessment in 500 words or less, citing the specific data points that indicate stress or its absence>"}`)
	b.WriteString("\n")
	return b.String()
}
