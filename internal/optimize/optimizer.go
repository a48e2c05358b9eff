package optimize

import (
	"context"
	"fmt"
	"time"

	"resume-builder/internal/llm"
	"resume-builder/internal/llm/providers"
	"resume-builder/internal/shared/metrics"
	"resume-builder/internal/shared/telemetry"
	"resume-builder/internal/shared/util"
	"resume-builder/resume/model"
)

// ClientFactory builds the client for a selected provider.
type ClientFactory func(p llm.Provider, creds llm.Credentials) (llm.Client, error)

// Optimizer runs the prompt, provider call and normalization for one request.
type Optimizer struct {
	Credentials llm.Credentials
	Preferred   llm.Provider
	NewClient   ClientFactory
}

// Result is the outcome of a successful optimization.
type Result struct {
	Optimized model.Optimized
	Provider  llm.Provider
}

// New returns an Optimizer that builds real provider clients.
func New(creds llm.Credentials, preferred llm.Provider) *Optimizer {
	return &Optimizer{Credentials: creds, Preferred: preferred, NewClient: providers.New}
}

// Optimize rewrites req through the selected provider. A non-empty override
// takes precedence over the configured preference.
func (o *Optimizer) Optimize(ctx context.Context, req model.Request, override llm.Provider) (Result, error) {
	preferred := o.Preferred
	if override != "" {
		preferred = override
	}
	provider, err := llm.SelectProvider(preferred, o.Credentials)
	if err != nil {
		return Result{}, err
	}

	newClient := o.NewClient
	if newClient == nil {
		newClient = providers.New
	}
	client, err := newClient(provider, o.Credentials)
	if err != nil {
		return Result{}, fmt.Errorf("build %s client: %w", provider, err)
	}

	prompt := llm.BuildResumePrompt(req)
	start := time.Now()
	raw, err := client.Complete(ctx, prompt)
	durationMs := float64(time.Since(start).Milliseconds())
	metrics.ObserveLLMCall(string(provider), durationMs, err != nil)
	telemetry.Info("llm.call", map[string]any{
		"provider":    string(provider),
		"model":       o.Credentials.ModelFor(provider),
		"prompt_hash": util.HashString(prompt),
		"duration_ms": durationMs,
		"ok":          err == nil,
	})
	if err != nil {
		return Result{}, fmt.Errorf("complete resume prompt: %w", err)
	}

	if violations := CheckShape(raw); len(violations) > 0 {
		telemetry.Warn("optimize.shape_violation", map[string]any{
			"provider":   string(provider),
			"violations": violations,
		})
	}

	optimized, err := Normalize(raw, req)
	if err != nil {
		return Result{}, fmt.Errorf("normalize %s output: %w", provider, err)
	}
	if len(req.Experience) > 0 && len(optimized.Experience) != len(req.Experience) {
		telemetry.Warn("optimize.experience_count_changed", map[string]any{
			"provider": string(provider),
			"input":    len(req.Experience),
			"output":   len(optimized.Experience),
		})
	}
	return Result{Optimized: optimized, Provider: provider}, nil
}
