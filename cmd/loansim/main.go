package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"

	"github.com/finplan/loansim/internal/api"
	"github.com/finplan/loansim/internal/config"
	"github.com/finplan/loansim/internal/export"
	"github.com/finplan/loansim/internal/scenario"
	"github.com/finplan/loansim/internal/simulator"
)

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		slog.Warn("could not load .env file", "error", err)
	}

	app := &cli.App{
		Name:  "loansim",
		Usage: "simulate disposable cash flow over the life of an amortizing loan",
		Commands: []*cli.Command{
			runCommand(),
			serveCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func runCommand() *cli.Command {
	return &cli.Command{
		Name:  "run",
		Usage: "run one simulation from a scenario file and print the summary",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "scenario",
				Aliases: []string{"s"},
				Usage:   "path to the scenario JSON file (omit for the default loan)",
			},
			&cli.StringFlag{
				Name:  "xlsx",
				Usage: "write the ledger, summary and charts to an xlsx workbook",
			},
			&cli.BoolFlag{
				Name:  "sheets",
				Usage: "write the ledger to the configured Google spreadsheet",
			},
			&cli.BoolFlag{
				Name:  "json",
				Usage: "print the full ledger as JSON instead of the summary",
			},
		},
		Action: runAction,
	}
}

func runAction(c *cli.Context) error {
	sc := scenario.Scenario{}
	if path := c.String("scenario"); path != "" {
		var err error
		if sc, err = scenario.Load(path); err != nil {
			return err
		}
	}

	svc := simulator.NewService(simulator.NewMemoryRepository())
	run, err := svc.Run(c.Context, sc)
	if err != nil {
		return err
	}

	if path := c.String("xlsx"); path != "" {
		if err := export.NewExcelWriter(path).Write(c.Context, run.Result); err != nil {
			return err
		}
		fmt.Fprintf(c.App.Writer, "workbook written to %s\n", path)
	}

	if c.Bool("sheets") {
		cfg := config.Load()
		if cfg.SheetsSpreadsheetID == "" || cfg.GoogleCredentials == "" {
			return errors.New("SHEETS_SPREADSHEET_ID and GOOGLE_CREDENTIALS_JSON must be set for --sheets")
		}
		writer, err := export.NewSheetsWriter(c.Context, cfg.SheetsSpreadsheetID, cfg.GoogleCredentials)
		if err != nil {
			return err
		}
		if err := writer.Write(c.Context, run.Result); err != nil {
			return err
		}
		fmt.Fprintln(c.App.Writer, "ledger written to Google Sheets")
	}

	if c.Bool("json") {
		return printJSON(c, run)
	}
	return printSummary(c, svc, run)
}

func printSummary(c *cli.Context, svc *simulator.Service, run simulator.Run) error {
	summary, err := svc.Summary()
	if err != nil {
		fmt.Fprintln(c.App.Writer, "no result available, run the simulation with a positive principal and term")
		return nil
	}

	verdict := "failure, the plan loses money"
	if summary.Success {
		verdict = "success, the plan is profitable"
	}
	fmt.Fprintf(c.App.Writer, "periods:        %d\n", len(run.Result.Rows))
	fmt.Fprintf(c.App.Writer, "total invested: %s\n", summary.TotalInvested)
	fmt.Fprintf(c.App.Writer, "final fund:     %s\n", summary.FinalFund)
	fmt.Fprintf(c.App.Writer, "profit:         %s\n", summary.Profit)
	fmt.Fprintf(c.App.Writer, "verdict:        %s\n", verdict)

	if n := run.Result.SkippedEvents; n > 0 {
		fmt.Fprintf(c.App.Writer, "warning: %d event(s) did not fall on a period date and were ignored\n", n)
	}
	if n := run.Result.SkippedDistributions; n > 0 {
		fmt.Fprintf(c.App.Writer, "warning: %d dividend distribution(s) did not fall on a period date and were ignored\n", n)
	}
	return nil
}

func printJSON(c *cli.Context, run simulator.Run) error {
	data, err := json.MarshalIndent(run, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(c.App.Writer, string(data))
	return nil
}

func serveCommand() *cli.Command {
	return &cli.Command{
		Name:   "serve",
		Usage:  "serve the simulation HTTP API for an interactive front end",
		Action: serveAction,
	}
}

func serveAction(c *cli.Context) error {
	ctx, stop := signal.NotifyContext(c.Context, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.Load()
	if cfg.AdminAPIKey == "" {
		slog.Warn("ADMIN_API_KEY not set, run endpoint is unprotected")
	}

	svc := simulator.NewService(simulator.NewMemoryRepository())
	srv := api.NewServer(cfg.HTTPPort, svc, cfg.AdminAPIKey)

	errCh := make(chan error, 1)
	go func() {
		log.Printf("HTTP server listening on :%s", cfg.HTTPPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Println("Shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("HTTP server shutdown error: %v", err)
	}
	log.Println("Shutdown complete")
	return nil
}
