package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/kube-rca/incident-comms/internal/client"
	"github.com/kube-rca/incident-comms/internal/config"
	"github.com/kube-rca/incident-comms/internal/model"
	"github.com/kube-rca/incident-comms/internal/service"
	"github.com/kube-rca/incident-comms/internal/styleguide"
)

var stageFlags struct {
	phase string
	dir   string
}

var evaluateFlags struct {
	input string
	judge bool
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the full pipeline and print the draft response",
	RunE:  runPipeline,
}

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract structured evidence only",
	RunE:  runExtract,
}

var evaluateCmd = &cobra.Command{
	Use:   "evaluate",
	Short: "Evaluate a draft against its evidence",
	Long:  "Reads a JSON file of the form {\"draft\": {...}, \"evidence\": {...}} and prints the evaluation.",
	RunE:  runEvaluate,
}

func init() {
	for _, cmd := range []*cobra.Command{runCmd, extractCmd} {
		f := cmd.Flags()
		f.StringVar(&stageFlags.phase, "phase", model.PhaseInvestigating, "Incident phase (investigating|identified|monitoring|resolved)")
		f.StringVar(&stageFlags.dir, "dir", "", "Directory of incident files (required)")
		_ = cmd.MarkFlagRequired("dir")
	}

	f := evaluateCmd.Flags()
	f.StringVar(&evaluateFlags.input, "input", "", "Path to a {draft, evidence} JSON file (required)")
	f.BoolVar(&evaluateFlags.judge, "judge", false, "Also score the draft with the LLM judge")
	_ = evaluateCmd.MarkFlagRequired("input")
}

type stages struct {
	extractor *service.Extractor
	generator *service.Generator
	judge     *service.Judge
}

func newStages(ctx context.Context) (*stages, error) {
	cfg := config.Load()
	llm, err := client.NewJSONGenerator(ctx, cfg.LLM)
	if err != nil {
		return nil, err
	}
	guide := styleguide.NewLoader(cfg.StyleGuide.Dir)
	return &stages{
		extractor: service.NewExtractor(llm, cfg.LLM.ExtractModel),
		generator: service.NewGenerator(llm, cfg.LLM.GenerateModel, guide),
		judge:     service.NewJudge(llm, cfg.LLM.JudgeModel, guide),
	}, nil
}

func runPipeline(cmd *cobra.Command, _ []string) error {
	signals, err := loadSignals(stageFlags.dir, stageFlags.phase)
	if err != nil {
		return err
	}
	s, err := newStages(cmd.Context())
	if err != nil {
		return err
	}
	resp, err := service.NewPipeline(s.extractor, s.generator, s.judge).Run(cmd.Context(), signals)
	if err != nil {
		return err
	}
	return writeJSON(cmd.OutOrStdout(), resp)
}

func runExtract(cmd *cobra.Command, _ []string) error {
	signals, err := loadSignals(stageFlags.dir, stageFlags.phase)
	if err != nil {
		return err
	}
	s, err := newStages(cmd.Context())
	if err != nil {
		return err
	}
	evidence, err := s.extractor.Extract(cmd.Context(), signals)
	if err != nil {
		return err
	}
	return writeJSON(cmd.OutOrStdout(), evidence)
}

func runEvaluate(cmd *cobra.Command, _ []string) error {
	data, err := os.ReadFile(evaluateFlags.input)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	var req model.EvaluateRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return fmt.Errorf("decode input: %w", err)
	}
	if req.Draft == nil || req.Evidence == nil {
		return fmt.Errorf("%w: input must contain draft and evidence", service.ErrInvalidRequest)
	}

	result := service.Evaluate(*req.Draft, *req.Evidence)
	if evaluateFlags.judge {
		s, err := newStages(cmd.Context())
		if err != nil {
			return err
		}
		judged, err := s.judge.Judge(cmd.Context(), *req.Draft, *req.Evidence)
		if err != nil {
			return err
		}
		result.LLMJudgeResult = judged
	}
	return writeJSON(cmd.OutOrStdout(), result)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
