package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"codeberg.org/snonux/redub/internal/batch"
	"codeberg.org/snonux/redub/internal/cli"
	"codeberg.org/snonux/redub/internal/logging"
	"codeberg.org/snonux/redub/internal/models"
	"codeberg.org/snonux/redub/internal/pipeline"
)

func main() {
	// Load API keys from a .env file if one is present
	_ = godotenv.Load()

	flags := cli.NewFlags()
	rootCmd := cli.CreateRootCommand(flags)

	cobra.OnInitialize(func() {
		cli.InitConfig(flags.CfgFile)
	})

	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		return runCommand(cmd, args, flags)
	}
	rootCmd.SilenceUsage = true

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runCommand(cmd *cobra.Command, args []string, flags *cli.Flags) error {
	// Handle --list-models flag
	if flags.ListModels {
		lister := models.NewLister(cli.GetOpenAIKey())
		return lister.ListAvailableModels()
	}

	logger, err := logging.New(flags.LogLevel)
	if err != nil {
		return err
	}

	ctx := context.Background()

	// Handle batch processing
	if flags.BatchFile != "" {
		entries, err := batch.ReadSourceFile(flags.BatchFile)
		if err != nil {
			return err
		}
		proc := batch.NewProcessor(&pipelineRunner{flags: flags, logger: logger}, flags.OutputName)
		if err := proc.ProcessAll(ctx, entries); err != nil {
			return err
		}
		fmt.Printf("\nDone! Dubbed audio saved to: %s\n", flags.OutputDir)
		return nil
	}

	if len(args) == 0 {
		return fmt.Errorf("no source given (expected a URL or a local media file, see --help)")
	}

	p, err := pipeline.Build(flags, logger)
	if err != nil {
		return err
	}

	outcome, err := p.Run(ctx, args[0])
	if err != nil {
		return err
	}

	for _, path := range outcome.OutputPaths {
		fmt.Println(path)
	}
	fmt.Printf("\nDone! Dubbed audio saved to: %s\n", flags.OutputDir)
	return nil
}

// pipelineRunner adapts pipeline.Build to the batch runner, building a fresh
// pipeline per source so each one gets its own output name.
type pipelineRunner struct {
	flags  *cli.Flags
	logger zerolog.Logger
}

func (r *pipelineRunner) Run(ctx context.Context, source, outputName string) error {
	flags := *r.flags
	flags.OutputName = outputName

	p, err := pipeline.Build(&flags, r.logger)
	if err != nil {
		return err
	}
	_, err = p.Run(ctx, source)
	return err
}
