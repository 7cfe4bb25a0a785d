package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
	"github.com/spf13/cobra"

	"github.com/openfitness/tcxsync/internal/database"
	"github.com/openfitness/tcxsync/internal/importer"
	"github.com/openfitness/tcxsync/internal/parser"
	"github.com/openfitness/tcxsync/internal/tcx"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	rootCmd := &cobra.Command{
		Use:   "tcxsync",
		Short: "Parse TCX/FIT activity files and keep a local activity index",
	}

	rootCmd.AddCommand(parseCmd())
	rootCmd.AddCommand(exportCmd())
	rootCmd.AddCommand(importCmd())
	rootCmd.AddCommand(watchCmd())
	rootCmd.AddCommand(listCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func openStore() (*database.Store, error) {
	return database.Open(envOr("TCXSYNC_DB", "./tcxsync.db"))
}

func parseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse [file]",
		Short: "Parse an activity file and print its summary",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := parser.New(args[0])
			if err != nil {
				return err
			}
			metrics, err := p.ParseFile(args[0])
			if err != nil {
				return err
			}

			fmt.Printf("Sport:        %s\n", metrics.Sport)
			fmt.Printf("Start:        %s\n", metrics.StartTime.Format(time.RFC3339))
			fmt.Printf("Duration:     %s\n", metrics.Duration)
			fmt.Printf("Distance:     %.1f m\n", metrics.Distance)
			fmt.Printf("Laps:         %d\n", metrics.Laps)
			fmt.Printf("Trackpoints:  %d\n", metrics.Trackpoints)
			fmt.Printf("Calories:     %d\n", metrics.Calories)
			if metrics.MaxHeartRate > 0 {
				fmt.Printf("Avg HR:       %.1f bpm\n", metrics.AvgHeartRate)
				fmt.Printf("Max HR:       %.1f bpm\n", metrics.MaxHeartRate)
			}
			if metrics.AvgPower > 0 {
				fmt.Printf("Avg power:    %.1f W\n", metrics.AvgPower)
			}
			return nil
		},
	}
}

func exportCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export [file]",
		Short: "Parse a TCX file, compute heart rates, and export it as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := tcx.ReadFile(args[0])
			if err != nil {
				return err
			}
			tcx.ComputeHeartRates(db)

			if err := tcx.ExportJSON(db, output); err != nil {
				return err
			}
			fmt.Printf("Wrote %s\n", output)
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "activity.json", "output JSON path")
	return cmd
}

func importCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import [dir]",
		Short: "Import every activity file in a directory into the index",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			return importer.NewService(store, args[0]).Run(cmd.Context())
		},
	}
}

func watchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch [dir]",
		Short: "Import a directory on a schedule until interrupted",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			svc := importer.NewService(store, args[0])
			schedule := envOr("TCXSYNC_SCHEDULE", "@hourly")

			c := cron.New()
			_, err = c.AddFunc(schedule, func() {
				if err := svc.Run(context.Background()); err != nil {
					log.Printf("Import failed: %v", err)
				}
			})
			if err != nil {
				return fmt.Errorf("invalid schedule %q: %w", schedule, err)
			}

			// Run once immediately, then on the schedule.
			if err := svc.Run(cmd.Context()); err != nil {
				log.Printf("Import failed: %v", err)
			}
			c.Start()
			log.Printf("Watching %s (%s)", args[0], schedule)

			shutdown := make(chan os.Signal, 1)
			signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)
			<-shutdown

			<-c.Stop().Done()
			return nil
		},
	}
}

func listCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List indexed activities",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			activities, err := store.ListActivities(limit, 0)
			if err != nil {
				return err
			}
			stats, err := store.Stats()
			if err != nil {
				return err
			}

			for _, a := range activities {
				fmt.Printf("%s  %-10s %8.1f m  %6ds  %s\n",
					a.StartTime.Format("2006-01-02 15:04"), a.Sport, a.Distance, a.Duration, a.Filename)
			}
			fmt.Printf("%d activities (%d with heart rate)\n", stats.Total, stats.WithHeartRate)
			return nil
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 50, "maximum number of activities to list")
	return cmd
}
