package main

import (
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/mmrzaf/tabgen"
	"github.com/mmrzaf/tabgen/internal/config"
	"github.com/mmrzaf/tabgen/internal/logging"
	"github.com/mmrzaf/tabgen/samples"
)

var logLevel string

func main() {
	cfg := config.Load()

	rootCmd := &cobra.Command{
		Use:   "tabgen",
		Short: "Synthetic tabular data generator",
	}
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", cfg.LogLevel, "Log level")

	rootCmd.AddCommand(generateCmd(cfg))
	rootCmd.AddCommand(exampleCmd(cfg))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func generateCmd(cfg *config.Config) *cobra.Command {
	var (
		rows     int
		seed     int64
		colArgs  []string
		out      string
		output   string
		sqlite   string
		postgres string
		pgSchema string
		table    string
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a table from --col specs",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.NewLogger(logLevel).WithComponent("generate")

			if len(colArgs) == 0 {
				return fmt.Errorf("at least one --col is required")
			}

			b := tabgen.New()
			seedSet := cmd.Flags().Changed("seed")
			switch {
			case seedSet:
				b.Seed(seed)
			case cfg.Seed != nil:
				b.Seed(*cfg.Seed)
			}

			now := time.Now()
			for _, arg := range colArgs {
				if err := parseColArg(b, arg, now); err != nil {
					return err
				}
			}

			runID := uuid.NewString()
			fp, err := b.Fingerprint()
			if err != nil {
				return err
			}
			logger.Infow("generate.start", map[string]any{
				"run_id": runID, "schema": fp, "rows": rows, "columns": b.Len(),
			})

			start := time.Now()
			f, err := b.Generate(rows)
			if err != nil {
				return err
			}
			logger.Infow("generate.done", map[string]any{
				"run_id": runID, "rows": f.NumRows(), "duration_ms": time.Since(start).Milliseconds(),
			})

			if sqlite != "" {
				return writeSQLite(logger, runID, sqlite, table, f)
			}
			if postgres != "" {
				return writePostgres(logger, runID, postgres, pgSchema, table, f)
			}
			return writeOutput(f, out, output)
		},
	}

	cmd.Flags().IntVar(&rows, "rows", cfg.Rows, "Number of rows to generate")
	cmd.Flags().Int64Var(&seed, "seed", 0, "Random seed (omit for a fresh draw)")
	cmd.Flags().StringArrayVar(&colArgs, "col", nil, "Column spec, e.g. age:int:0:99 (repeatable)")
	cmd.Flags().StringVar(&out, "out", "table", "Output format (table|markdown|csv|parquet)")
	cmd.Flags().StringVar(&output, "output", "", "Output file (default stdout; required for parquet)")
	cmd.Flags().StringVar(&sqlite, "sqlite", "", "Insert into this SQLite database instead of printing")
	cmd.Flags().StringVar(&postgres, "postgres", "", "Insert into this PostgreSQL DSN instead of printing")
	cmd.Flags().StringVar(&pgSchema, "pg-schema", "", "PostgreSQL schema (default public)")
	cmd.Flags().StringVar(&table, "table", "tabgen", "Target table name for database output")

	return cmd
}

func exampleCmd(cfg *config.Config) *cobra.Command {
	var rows int

	cmd := &cobra.Command{
		Use:   "example",
		Short: "Generate the demo schema and print it as markdown",
		RunE: func(cmd *cobra.Command, args []string) error {
			b := tabgen.New()
			if cfg.Seed != nil {
				b.Seed(*cfg.Seed)
			}
			if err := b.AddIntCol("age", 0, 99); err != nil {
				return err
			}
			if err := b.AddIntCol("favorite_number", -100, 100, tabgen.Nullable(10)); err != nil {
				return err
			}
			if err := b.AddFloatCol("distance", 0.0, 200.0); err != nil {
				return err
			}
			if err := b.AddCatCol("city", samples.Cities(3), tabgen.Nullable(10)); err != nil {
				return err
			}
			if err := b.AddDateCol("last_seen", "2020-01-01", "2023-02-01"); err != nil {
				return err
			}

			f, err := b.Generate(rows)
			if err != nil {
				return err
			}
			return f.WriteMarkdown(os.Stdout)
		},
	}

	cmd.Flags().IntVar(&rows, "rows", 10, "Number of rows to generate")
	return cmd
}
