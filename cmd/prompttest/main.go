package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"resume-builder/internal/llm"
	"resume-builder/internal/optimize"
	"resume-builder/internal/shared/config"
	"resume-builder/internal/shared/server"
	"resume-builder/resume/model"
)

func main() {
	cfg := config.Load()

	requestPath := flag.String("request", "", "Path to a resume request JSON file")
	call := flag.Bool("call", false, "Call the provider and print the optimized JSON")
	provider := flag.String("provider", cfg.LLMProvider, "Preferred LLM provider (openai, anthropic, gemini)")
	outPath := flag.String("out", "", "Path to write the optimized JSON (optional)")
	flag.Parse()

	if strings.TrimSpace(*requestPath) == "" {
		exitErr("request path is required")
	}
	raw, err := os.ReadFile(*requestPath)
	if err != nil {
		exitErr(fmt.Sprintf("read request: %v", err))
	}
	var req model.Request
	if err := json.Unmarshal(raw, &req); err != nil {
		exitErr(fmt.Sprintf("decode request: %v", err))
	}
	if err := req.Validate(); err != nil {
		exitErr(err.Error())
	}

	if !*call {
		fmt.Println(llm.BuildResumePrompt(req))
		return
	}

	preferred, _ := llm.ParseProvider(*provider)
	res, err := optimize.New(server.LLMCredentials(cfg), preferred).Optimize(context.Background(), req, "")
	if err != nil {
		exitErr(fmt.Sprintf("optimize: %v", err))
	}
	payload, err := json.MarshalIndent(struct {
		model.Optimized
		Provider llm.Provider `json:"provider"`
	}{res.Optimized, res.Provider}, "", "  ")
	if err != nil {
		exitErr(fmt.Sprintf("encode: %v", err))
	}

	if strings.TrimSpace(*outPath) != "" {
		if err := os.WriteFile(*outPath, payload, 0o644); err != nil {
			exitErr(fmt.Sprintf("write output: %v", err))
		}
	}
	fmt.Println(string(payload))
}

func exitErr(msg string) {
	fmt.Fprintln(os.Stderr, msg)
	os.Exit(1)
}
