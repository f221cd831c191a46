package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/script-refine/internal/config"
	"github.com/nguyentantai21042004/script-refine/internal/logger"
	"github.com/nguyentantai21042004/script-refine/internal/refiner"
	"github.com/nguyentantai21042004/script-refine/pkg/llm"
)

// app holds the dependencies shared by every subcommand
type app struct {
	cfg     *config.Config
	log     logger.Logger
	refiner refiner.Refiner
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string
	a := &app{}

	root := &cobra.Command{
		Use:           "scriptrefine",
		Short:         "Turn raw video transcripts into clean, readable scripts",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd.Context(), configPath)
		},
	}
	root.PersistentFlags().StringVarP(&configPath, "config", "c", "config.yaml", "path to the YAML config file")

	root.AddCommand(
		newServeCmd(a),
		newRefineCmd(a),
		newWatchCmd(a),
	)
	return root
}

func (a *app) init(ctx context.Context, configPath string) error {
	cfg, err := config.LoadOrDefault(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log := logger.NewWithFormat(cfg.Logging.Level, cfg.Logging.Format, os.Stderr)

	generator, err := llm.New(llm.Config{
		Provider:   cfg.LLM.Provider,
		Model:      cfg.LLM.Model,
		APIKeys:    cfg.LLM.APIKeys,
		BaseURL:    cfg.LLM.BaseURL,
		Timeout:    *cfg.LLM.Timeout,
		MaxRetries: cfg.LLM.MaxRetries,
	}, log)
	if err != nil {
		return fmt.Errorf("create %s client: %w", cfg.LLM.Provider, err)
	}
	if len(cfg.LLM.APIKeys) == 0 {
		log.Warn(ctx, "No API key found in the environment; refine calls will fail")
	}

	log.Debug(ctx, "Configuration loaded (provider: %s, model: %s)", cfg.LLM.Provider, cfg.LLM.Model)

	a.cfg = cfg
	a.log = log
	a.refiner = refiner.New(generator, log)
	return nil
}

func (a *app) defaultOptions() refiner.Options {
	return refiner.Options{
		AddHeadings: *a.cfg.Defaults.AddHeadings,
		SEOFocus:    *a.cfg.Defaults.SEOFocus,
	}
}
