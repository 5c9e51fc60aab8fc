package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/trends-intl/internal/config"
	"github.com/trends-intl/internal/db"
	"github.com/trends-intl/internal/etl"
	"github.com/trends-intl/internal/geo"
	"github.com/trends-intl/internal/store"
)

func main() {
	config.LoadEnv()

	rootCmd := &cobra.Command{
		Use:   "trends",
		Short: "International search-trends pipeline",
		Long:  `Ingests search-trend CSV exports, normalizes region names against boundary data, and loads the result into Postgres`,
	}

	rootCmd.AddCommand(createPingCmd())
	rootCmd.AddCommand(createInitCmd())
	rootCmd.AddCommand(createTransformCmd())
	rootCmd.AddCommand(createAuditCmd())
	rootCmd.AddCommand(createLoadCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// createPingCmd creates a command to test database connectivity
func createPingCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ping",
		Short: "Test database connectivity",
		Run: func(cmd *cobra.Command, args []string) {
			conn, err := db.NewConnection()
			if err != nil {
				log.Fatalf("Failed to connect to database: %v", err)
			}
			defer conn.Close()

			fmt.Println("Database connection successful!")

			var count int
			if err := conn.DB.QueryRow("SELECT COUNT(*) FROM trends").Scan(&count); err != nil {
				log.Printf("Error counting trend rows: %v", err)
			} else {
				fmt.Printf("Trend rows loaded: %d\n", count)
			}
		},
	}
}

// createInitCmd creates the normalized schema.
func createInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create the normalized schema",
		Run: func(cmd *cobra.Command, args []string) {
			conn, err := db.NewConnection()
			if err != nil {
				log.Fatalf("Failed to connect to database: %v", err)
			}
			defer conn.Close()

			if err := store.New(conn.DB).CreateSchema(); err != nil {
				log.Fatalf("Failed to create schema: %v", err)
			}
			fmt.Println("Schema created")
		},
	}
}

func createTransformCmd() *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "transform [filename]",
		Short: "Run the enrichment pipeline and write a cleaned CSV",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			result := runPipeline(args[0])

			for _, report := range result.DateReports {
				if report.AllValid {
					fmt.Printf("Column %s: all dates valid\n", report.Column)
					continue
				}
				fmt.Printf("Column %s: %d invalid dates\n", report.Column, len(report.Invalid))
				for _, inv := range report.Invalid {
					fmt.Printf("  row %d: %q\n", inv.Row, inv.Value)
				}
			}

			mismatches := etl.VerifyCountryCodes(result.Records)
			if len(mismatches) > 0 {
				fmt.Printf("Country code mismatches: %d\n", len(mismatches))
				for _, m := range mismatches {
					fmt.Printf("  row %d: %s has %s, expected %s\n",
						m.Row, m.CountryName, m.CountryCode, m.ExpectedCode)
				}
			}

			etl.PrintAuditSummary(result.Audit)

			if err := etl.WriteTrends(out, result.Records); err != nil {
				log.Fatalf("Failed to write cleaned CSV: %v", err)
			}
			fmt.Printf("Data cleaned and saved to %s\n", out)
		},
	}
	cmd.Flags().StringVar(&out, "out", "trends_cleaned.csv", "output CSV path")
	return cmd
}

func createAuditCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "audit [filename]",
		Short: "Report regions whose best catalog match falls below the threshold",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			result := runPipeline(args[0])
			etl.PrintAuditSummary(result.Audit)
		},
	}
}

func createLoadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "load [filename]",
		Short: "Run the pipeline and load the result into Postgres",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			result := runPipeline(args[0])

			conn, err := db.NewConnection()
			if err != nil {
				log.Fatalf("Failed to connect to database: %v", err)
			}
			defer conn.Close()

			st := store.New(conn.DB)
			if err := st.CreateSchema(); err != nil {
				log.Fatalf("Failed to create schema: %v", err)
			}

			runID, err := st.LoadRecords(result.Records)
			if err != nil {
				log.Fatalf("Failed to load records: %v", err)
			}
			fmt.Printf("Load complete (run %s)\n", runID)
		},
	}
}

// runPipeline reads a trends CSV and runs the full enrichment pipeline with
// settings from the environment.
func runPipeline(csvPath string) *etl.Result {
	records, err := etl.ReadTrends(csvPath)
	if err != nil {
		log.Fatalf("Failed to read trends CSV: %v", err)
	}
	fmt.Printf("Read %d rows from %s\n", len(records), csvPath)

	catalog := geo.NewCatalog(config.GetEnv("CATALOG_DIR", "Country_Regions"))
	pipeline := etl.NewPipeline(catalog)
	pipeline.Threshold = config.GetEnvFloat("TRENDS_MATCH_THRESHOLD", pipeline.Threshold)

	result, err := pipeline.Run(records)
	if err != nil {
		log.Fatalf("Pipeline failed: %v", err)
	}
	return result
}
