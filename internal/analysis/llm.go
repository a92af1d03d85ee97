package analysis

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/finwell/finhealth-cli/internal/model"
	"github.com/finwell/finhealth-cli/internal/resilience"
	"github.com/finwell/finhealth-cli/pkg/anthropic"
)

// Narrator produces the LLM-generated parts of a report: personalized metric
// weights, the profile review and the closing summary. All three calls
// degrade gracefully; a failed narrator never sinks the deterministic core.
type Narrator struct {
	client      anthropic.Client
	model       string
	maxTokens   int64
	temperature float64
	retry       resilience.RetryConfig
	breaker     *resilience.CircuitBreaker
}

// NewNarrator wraps an Anthropic client for report narration.
func NewNarrator(client anthropic.Client, modelID string, maxTokens int64, temperature float64) *Narrator {
	return &Narrator{
		client:      client,
		model:       modelID,
		maxTokens:   maxTokens,
		temperature: temperature,
		retry:       resilience.DefaultRetryConfig(),
		breaker:     resilience.NewCircuitBreaker(resilience.DefaultCircuitBreakerConfig()),
	}
}

// WithRetry overrides the default retry policy.
func (n *Narrator) WithRetry(cfg resilience.RetryConfig) *Narrator {
	n.retry = cfg
	return n
}

// GenerateWeights asks the model for personalized importance weights. The
// response keys are display names; they are canonicalized and scaled so the
// returned map sums to exactly 100. Unknown keys are dropped.
func (n *Narrator) GenerateWeights(ctx context.Context, profile *model.UserProfile) (map[string]int, error) {
	profileJSON, err := json.MarshalIndent(profile, "", "  ")
	if err != nil {
		return nil, eris.Wrap(err, "narrator: marshal profile")
	}

	text, err := n.call(ctx, "generate_weights", weightsSystemPrompt,
		fmt.Sprintf(weightsUserPrompt, profileJSON))
	if err != nil {
		return nil, err
	}

	var labeled map[string]float64
	if err := json.Unmarshal([]byte(stripFence(text)), &labeled); err != nil {
		return nil, eris.Wrap(err, "narrator: parse weights response")
	}

	raw := make(map[string]float64, len(labeled))
	for label, w := range labeled {
		name := model.CanonicalMetricName(label)
		if !model.IsAssessedMetric(name) {
			zap.L().Warn("dropping unknown metric in weights response", zap.String("label", label))
			continue
		}
		raw[name] = w
	}

	weights, err := model.NormalizeWeights(raw)
	if err != nil {
		return nil, eris.Wrap(err, "narrator: normalize weights")
	}
	return weights, nil
}

// ProfileReview generates a short narrative understanding of the profile.
func (n *Narrator) ProfileReview(ctx context.Context, profile *model.UserProfile, pfm *model.PersonalFinanceMetrics) (string, error) {
	profileJSON, err := json.MarshalIndent(profile, "", "  ")
	if err != nil {
		return "", eris.Wrap(err, "narrator: marshal profile")
	}
	metricsJSON, err := json.MarshalIndent(pfm, "", "  ")
	if err != nil {
		return "", eris.Wrap(err, "narrator: marshal metrics")
	}

	text, err := n.call(ctx, "profile_review", profileReviewSystemPrompt,
		fmt.Sprintf(profileReviewUserPrompt, profileJSON, metricsJSON))
	if err != nil {
		return "", err
	}
	return parseSingleKey(text, "overall_profile_review")
}

// Summary condenses the profile and feedback sections into a closing note.
func (n *Narrator) Summary(ctx context.Context, profile *model.UserProfile, report *model.Report) (string, error) {
	profileJSON, err := json.MarshalIndent(profile, "", "  ")
	if err != nil {
		return "", eris.Wrap(err, "narrator: marshal profile")
	}
	goodJSON, err := json.MarshalIndent(report.Commendable, "", "  ")
	if err != nil {
		return "", eris.Wrap(err, "narrator: marshal commendable points")
	}
	badJSON, err := json.MarshalIndent(report.Improvements, "", "  ")
	if err != nil {
		return "", eris.Wrap(err, "narrator: marshal improvement points")
	}

	text, err := n.call(ctx, "summary", summarySystemPrompt,
		fmt.Sprintf(summaryUserPrompt, profileJSON, goodJSON, badJSON))
	if err != nil {
		return "", err
	}
	return parseSingleKey(text, "summary")
}

// call runs one message exchange with retry on transient failures and logs
// token usage for cost tracking.
func (n *Narrator) call(ctx context.Context, operation, system, user string) (string, error) {
	cfg := n.retry
	cfg.OnRetry = resilience.RetryLogger("anthropic", operation)

	resp, err := resilience.DoVal(ctx, cfg, func(ctx context.Context) (*anthropic.MessageResponse, error) {
		return resilience.ExecuteVal(ctx, n.breaker, func(ctx context.Context) (*anthropic.MessageResponse, error) {
			return n.client.CreateMessage(ctx, anthropic.MessageRequest{
				Model:       n.model,
				MaxTokens:   n.maxTokens,
				System:      anthropic.BuildCachedSystemBlocks(system),
				Messages:    []anthropic.Message{{Role: "user", Content: user}},
				Temperature: &n.temperature,
			})
		})
	})
	if err != nil {
		return "", eris.Wrapf(err, "narrator: %s call failed", operation)
	}

	zap.L().Debug("narrator call complete",
		zap.String("operation", operation),
		zap.Int64("input_tokens", resp.Usage.InputTokens),
		zap.Int64("output_tokens", resp.Usage.OutputTokens),
		zap.Float64("est_cost_usd", resp.Usage.EstimateCost(n.model)),
	)

	text := resp.Text()
	if strings.TrimSpace(text) == "" {
		return "", eris.Errorf("narrator: %s returned empty response", operation)
	}
	return text, nil
}

// parseSingleKey extracts the string value of key from a single-key JSON
// object, tolerating markdown fences around the object.
func parseSingleKey(text, key string) (string, error) {
	var obj map[string]string
	if err := json.Unmarshal([]byte(stripFence(text)), &obj); err != nil {
		return "", eris.Wrapf(err, "narrator: parse %s response", key)
	}
	val, ok := obj[key]
	if !ok || strings.TrimSpace(val) == "" {
		return "", eris.Errorf("narrator: response missing %q", key)
	}
	return val, nil
}

// stripFence removes a surrounding markdown code fence, if present, and
// trims anything before the first brace so stray prose does not break the
// JSON decoder.
func stripFence(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
		if i := strings.LastIndex(s, "```"); i >= 0 {
			s = s[:i]
		}
		s = strings.TrimSpace(s)
	}
	if i := strings.Index(s, "{"); i > 0 {
		s = s[i:]
	}
	if i := strings.LastIndex(s, "}"); i >= 0 && i < len(s)-1 {
		s = s[:i+1]
	}
	return s
}
