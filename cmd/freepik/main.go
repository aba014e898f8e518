// SPDX-FileCopyrightText: 2025 TechAir Media <ops@techair.media>
//
// SPDX-License-Identifier: AGPL-3.0-only

package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/techair/mediakit"
	"github.com/techair/mediakit/internal/credentials"
	"github.com/techair/mediakit/internal/freepik"
	"github.com/urfave/cli/v3"
)

// FreepikKeyName is the key looked up in the credentials file
const FreepikKeyName = "FREEPIK_API_KEY"

func main() {
	cmd := &cli.Command{
		Name:    "freepik",
		Usage:   "Freepik stock-asset search client",
		Version: "0.1.0",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "search",
				Usage: "Search query",
			},
			&cli.StringFlag{
				Name:  "download",
				Usage: "Resource ID to download",
			},
			&cli.IntFlag{
				Name:  "limit",
				Value: freepik.DefaultLimit,
				Usage: "Results per page",
			},
			&cli.IntFlag{
				Name:  "page",
				Value: freepik.DefaultPage,
				Usage: "Page number",
			},
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Print results as JSON",
			},
			&cli.StringFlag{
				Name:    "env-file",
				Value:   "credentials/master_keys.env",
				Usage:   "Path to the key-value credentials file",
				Sources: cli.EnvVars("MEDIAKIT_ENV_FILE"),
			},
			&cli.StringFlag{
				Name:    "base-url",
				Value:   freepik.DefaultBaseURL,
				Usage:   "Freepik API base URL",
				Sources: cli.EnvVars("FREEPIK_BASE_URL"),
			},
			&cli.BoolFlag{
				Name:    "debug",
				Usage:   "Enable debug logging",
				Sources: cli.EnvVars("MEDIAKIT_DEBUG"),
			},
		},
		Action: run,
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		if errors.Is(err, mediakit.ErrConfigMissing) {
			slog.Error("Missing configuration", "error", err)
		} else {
			slog.Error("Failed to run command", "error", err)
		}
		os.Exit(1)
	}
}

func run(ctx context.Context, c *cli.Command) error {
	logLevel := slog.LevelInfo
	if c.Bool("debug") {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	switch {
	case c.String("search") != "":
		return runSearch(ctx, c, logger)
	case c.String("download") != "":
		return runDownload(c)
	default:
		return cli.ShowAppHelp(c)
	}
}

func runSearch(ctx context.Context, c *cli.Command, logger *slog.Logger) error {
	if err := credentials.LoadEnvFile(c.String("env-file")); err != nil {
		return err
	}

	key, err := credentials.APIKey(FreepikKeyName)
	if err != nil {
		return err
	}

	client, err := freepik.NewClient(
		freepik.WithClientLogger(logger),
		freepik.WithClientBaseURL(c.String("base-url")),
		freepik.WithClientAPIKey(key),
	)
	if err != nil {
		return err
	}

	query := c.String("search")
	logger.Info("Searching Freepik", "query", query)

	results, err := client.Search(ctx, query, int(c.Int("page")), int(c.Int("limit")))
	if err != nil {
		// A failed search reports and yields an empty result set; it does
		// not abort the process.
		if errors.Is(err, mediakit.ErrTransport) {
			logger.Error("Search failed", "error", err)
			return nil
		}
		return err
	}

	if c.Bool("json") {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}

	fmt.Printf("Found %d resources:\n", len(results))
	for _, res := range results {
		fmt.Printf("  - [%s] %s (%s)\n", res.ID, res.Title, res.URL)
	}
	return nil
}

func runDownload(c *cli.Command) error {
	// The Freepik download flow needs plan-specific endpoints and
	// attribution handling; search results carry a URL to use directly in
	// the meantime.
	fmt.Printf("Download for resource %s is not implemented yet.\n", c.String("download"))
	fmt.Println("Use the URL from the search results to download manually.")
	return nil
}
