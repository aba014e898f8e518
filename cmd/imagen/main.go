// SPDX-FileCopyrightText: 2025 TechAir Media <ops@techair.media>
//
// SPDX-License-Identifier: AGPL-3.0-only

package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/techair/mediakit"
	"github.com/techair/mediakit/internal/credentials"
	"github.com/techair/mediakit/internal/imagegen"
	"github.com/techair/mediakit/internal/quota"
	"github.com/urfave/cli/v3"
)

// DefaultOutputPath is used when no output argument is given
const DefaultOutputPath = "output.png"

func main() {
	cmd := &cli.Command{
		Name:      "imagen",
		Usage:     "Cost-controlled image generation with a hard monthly cap",
		Version:   "0.1.0",
		ArgsUsage: "<prompt> [output path]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "provider",
				Value:   "vertex",
				Usage:   "Generation backend (vertex or openai)",
				Sources: cli.EnvVars("IMAGEN_PROVIDER"),
			},
			&cli.StringFlag{
				Name:    "project",
				Value:   imagegen.DefaultProject,
				Usage:   "Google Cloud project",
				Sources: cli.EnvVars("GOOGLE_CLOUD_PROJECT"),
			},
			&cli.StringFlag{
				Name:    "location",
				Value:   imagegen.DefaultLocation,
				Usage:   "Vertex AI region",
				Sources: cli.EnvVars("GOOGLE_CLOUD_LOCATION"),
			},
			&cli.StringFlag{
				Name:    "model",
				Usage:   "Model identifier (defaults per provider)",
				Sources: cli.EnvVars("IMAGEN_MODEL"),
			},
			&cli.IntFlag{
				Name:    "cap",
				Value:   quota.DefaultMonthlyCap,
				Usage:   "Maximum generation calls per calendar month",
				Sources: cli.EnvVars("IMAGEN_MONTHLY_CAP"),
			},
			&cli.StringFlag{
				Name:    "usage-file",
				Value:   quota.DefaultUsagePath,
				Usage:   "Path to the JSON usage record",
				Sources: cli.EnvVars("IMAGEN_USAGE_FILE"),
			},
			&cli.StringFlag{
				Name:    "credentials-file",
				Value:   "credentials/vertex_service_account.json",
				Usage:   "Path to the Google service account JSON (vertex provider)",
				Sources: cli.EnvVars("IMAGEN_CREDENTIALS_FILE"),
			},
			&cli.BoolFlag{
				Name:    "debug",
				Usage:   "Enable debug logging",
				Sources: cli.EnvVars("MEDIAKIT_DEBUG"),
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "usage",
				Usage:  "Show month-to-date usage without consuming quota",
				Action: runUsage,
			},
		},
		Action: runGenerate,
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		switch {
		case errors.Is(err, mediakit.ErrQuotaExceeded):
			slog.Error("Monthly cap reached; no billing will occur", "error", err)
		case errors.Is(err, mediakit.ErrConfigMissing):
			slog.Error("Missing configuration", "error", err)
		case errors.Is(err, mediakit.ErrDependencyUnavailable):
			slog.Error("Generation backend unavailable", "error", err)
		case errors.Is(err, mediakit.ErrTransport):
			slog.Error("Generation call failed", "error", err)
		default:
			slog.Error("Failed to run command", "error", err)
		}
		os.Exit(1)
	}
}

func setupLogger(c *cli.Command) *slog.Logger {
	logLevel := slog.LevelInfo
	if c.Bool("debug") {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)
	return logger
}

func newGate(c *cli.Command, logger *slog.Logger) (*quota.Gate, error) {
	store, err := quota.NewFileStore(
		quota.WithFileStoreLogger(logger),
		quota.WithFileStorePath(c.String("usage-file")),
	)
	if err != nil {
		return nil, err
	}

	return quota.NewGate(
		quota.WithGateLogger(logger),
		quota.WithGateStore(store),
		quota.WithGateCap(int(c.Int("cap"))),
	)
}

func runGenerate(ctx context.Context, c *cli.Command) error {
	logger := setupLogger(c)

	prompt := strings.TrimSpace(c.Args().First())
	if prompt == "" {
		_ = cli.ShowAppHelp(c)
		return errors.New("a prompt is required")
	}

	output := c.Args().Get(1)
	if output == "" {
		output = DefaultOutputPath
	}

	gate, err := newGate(c, logger)
	if err != nil {
		return err
	}

	// The cap is checked and the reservation persisted before anything
	// billable happens.
	allowed, err := gate.CheckAndReserve(ctx)
	if err != nil {
		return err
	}
	if !allowed {
		record, usageErr := gate.Usage(ctx)
		if usageErr != nil {
			return fmt.Errorf("%w: cap is %d", mediakit.ErrQuotaExceeded, gate.Cap())
		}
		return fmt.Errorf("%w: %d/%d images used in %s", mediakit.ErrQuotaExceeded, record.Count, gate.Cap(), record.Month)
	}

	record, err := gate.Usage(ctx)
	if err == nil {
		spend := quota.EstimateSpendCents(record.Count, quota.DefaultImagePriceCents)
		fmt.Printf("Usage: %d/%d this month (estimated %s)\n", record.Count, gate.Cap(), quota.FormatUSD(spend))
	}

	generator, err := newGenerator(ctx, c, logger)
	if err != nil {
		return err
	}

	logger.Info("Generating image", "prompt", truncate(prompt, 50), "output", output)

	data, err := generator.Generate(ctx, prompt)
	if err != nil {
		return err
	}

	if err := os.WriteFile(output, data, 0o644); err != nil {
		return fmt.Errorf("write image to %s: %w", output, err)
	}

	fmt.Printf("Image saved to %s\n", output)
	return nil
}

func newGenerator(ctx context.Context, c *cli.Command, logger *slog.Logger) (mediakit.ImageGenerator, error) {
	switch provider := c.String("provider"); provider {
	case "vertex":
		if err := credentials.ValidateServiceAccount(ctx, c.String("credentials-file")); err != nil {
			return nil, err
		}
		model := c.String("model")
		if model == "" {
			model = imagegen.DefaultVertexModel
		}
		return imagegen.NewVertexGenerator(
			imagegen.WithVertexGeneratorLogger(logger),
			imagegen.WithVertexGeneratorProject(c.String("project")),
			imagegen.WithVertexGeneratorLocation(c.String("location")),
			imagegen.WithVertexGeneratorModel(model),
		)
	case "openai":
		model := c.String("model")
		if model == "" {
			model = imagegen.DefaultOpenAIModel
		}
		return imagegen.NewOpenAIGenerator(
			imagegen.WithOpenAIGeneratorLogger(logger),
			imagegen.WithOpenAIGeneratorModel(model),
		)
	default:
		return nil, fmt.Errorf("unknown provider %q (expected vertex or openai)", provider)
	}
}

func runUsage(ctx context.Context, c *cli.Command) error {
	logger := setupLogger(c)

	gate, err := newGate(c, logger)
	if err != nil {
		return err
	}

	record, err := gate.Usage(ctx)
	if err != nil {
		return err
	}

	spend := quota.EstimateSpendCents(record.Count, quota.DefaultImagePriceCents)
	fmt.Printf("Usage for %s: %d/%d images (estimated %s)\n", record.Month, record.Count, gate.Cap(), quota.FormatUSD(spend))
	return nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
