package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"github.com/vizquery-org/vizquery/engine"
	"github.com/vizquery-org/vizquery/schema"
)

// ============================================================================
// VIZQUERY CLI — ask questions, get chart specifications
// ============================================================================

const version = "0.1.0"

func main() {
	app := &cli.Command{
		Name:    "vizquery",
		Usage:   "Turn natural-language questions into chart specifications",
		Version: version,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "enable debug logging",
			},
		},
		Commands: []*cli.Command{
			discoverCommand(),
			askCommand(),
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func buildLogger(cmd *cli.Command) (*zap.Logger, error) {
	if !cmd.Bool("verbose") {
		return zap.NewNop(), nil
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	return cfg.Build()
}

// ============================================================================
// DISCOVER — print or save an auto-detected schema
// ============================================================================

func discoverCommand() *cli.Command {
	return &cli.Command{
		Name:  "discover",
		Usage: "Inspect a CSV file and print the detected field schema",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "file",
				Aliases:  []string{"f"},
				Usage:    "path to CSV data file",
				Required: true,
			},
			&cli.StringFlag{
				Name:    "out",
				Aliases: []string{"o"},
				Usage:   "write schema to file (.json, .yaml) instead of stdout",
			},
			&cli.StringFlag{
				Name:  "name",
				Usage: "dataset name override",
			},
			&cli.StringSliceFlag{
				Name:  "recover",
				Usage: "force-include a column that auto-discovery skipped",
			},
		},
		Action: runDiscover,
	}
}

func runDiscover(ctx context.Context, cmd *cli.Command) error {
	data, err := os.ReadFile(cmd.String("file"))
	if err != nil {
		return fmt.Errorf("reading data file: %w", err)
	}

	cfg, err := schema.DiscoverCSV(data, schema.DiscoverOptions{
		Name:           cmd.String("name"),
		RecoverColumns: cmd.StringSlice("recover"),
	})
	if err != nil {
		return fmt.Errorf("discovering schema: %w", err)
	}

	if out := cmd.String("out"); out != "" {
		if err := schema.SaveFile(out, cfg); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "schema written to %s (%d fields, %d skipped)\n",
			out, len(cfg.Fields), len(cfg.SkippedColumns))
		return nil
	}

	pretty, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(pretty))
	return nil
}

// ============================================================================
// ASK — run a query against a schema
// ============================================================================

func askCommand() *cli.Command {
	return &cli.Command{
		Name:      "ask",
		Usage:     "Translate a question into a chart specification",
		ArgsUsage: "\"revenue by region\"",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "file",
				Aliases: []string{"f"},
				Usage:   "path to CSV data file (schema is auto-detected)",
			},
			&cli.StringFlag{
				Name:    "schema",
				Aliases: []string{"s"},
				Usage:   "path to a schema file (.json, .yaml); skips auto-detect",
			},
			&cli.StringFlag{
				Name:    "type",
				Aliases: []string{"t"},
				Usage:   "preferred chart type (bar, line, area, scatter, stacked)",
			},
			&cli.StringFlag{
				Name:    "format",
				Usage:   "output format: json, pretty, text",
				Value:   "json",
			},
			&cli.StringFlag{
				Name:    "out",
				Aliases: []string{"o"},
				Usage:   "write output to file instead of stdout",
			},
		},
		Action: runAsk,
	}
}

func runAsk(ctx context.Context, cmd *cli.Command) error {
	query := cmd.Args().First()
	if query == "" {
		return fmt.Errorf("a query argument is required")
	}

	logger, err := buildLogger(cmd)
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck // stderr sync failure is harmless

	cfg, err := loadSchema(cmd)
	if err != nil {
		return err
	}
	logger.Debug("schema loaded",
		zap.String("name", cfg.Name),
		zap.Int("fields", len(cfg.Fields)),
	)

	result := engine.Generate(query, cfg.Fields,
		engine.WithPreferredChartType(cmd.String("type")),
		engine.WithLogger(logger),
	)

	writer := os.Stdout
	if out := cmd.String("out"); out != "" {
		f, err := os.Create(out)
		if err != nil {
			return fmt.Errorf("creating output file: %w", err)
		}
		defer f.Close()
		writer = f
	}

	switch cmd.String("format") {
	case "text":
		fmt.Fprint(writer, renderText(query, result))
	case "pretty":
		out, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(writer, string(out))
	default:
		out, err := json.Marshal(result)
		if err != nil {
			return err
		}
		fmt.Fprintln(writer, string(out))
	}

	if !result.Success {
		os.Exit(2)
	}
	return nil
}

func loadSchema(cmd *cli.Command) (*schema.Config, error) {
	if path := cmd.String("schema"); path != "" {
		return schema.LoadFile(path)
	}
	if path := cmd.String("file"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading data file: %w", err)
		}
		return schema.DiscoverCSV(data)
	}
	return nil, fmt.Errorf("either --file or --schema is required")
}
