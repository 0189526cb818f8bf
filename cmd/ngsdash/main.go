package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/k0kubun/pp/v3"
	"github.com/spf13/cobra"

	"github.com/anandaputra/ngsdash/pkg/config"
	"github.com/anandaputra/ngsdash/pkg/datefilter"
	"github.com/anandaputra/ngsdash/pkg/export"
	"github.com/anandaputra/ngsdash/pkg/fetcher"
	"github.com/anandaputra/ngsdash/pkg/parser"
	"github.com/anandaputra/ngsdash/pkg/server"
	"github.com/anandaputra/ngsdash/pkg/service"
	"github.com/anandaputra/ngsdash/pkg/sources"
	"github.com/anandaputra/ngsdash/pkg/summary"
)

var cfgFile string

func newLogger(debug bool) *log.Logger {
	opts := log.Options{
		ReportCaller:    true,
		ReportTimestamp: true,
		Prefix:          "ngsdash",
	}
	if debug {
		opts.Level = log.DebugLevel
	}
	return log.NewWithOptions(os.Stderr, opts)
}

var rootCmd = &cobra.Command{
	Use:   "ngsdash",
	Short: "Spreadsheet-backed sales dashboard backend",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return cmd.Help()
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the dashboard JSON API server",
	RunE: func(cmd *cobra.Command, _ []string) error {
		logger := newLogger(false)

		cfg, err := config.Build(cfgFile, cmd.Flags())
		if err != nil {
			return err
		}

		svc := service.New(cfg, fetcher.New(cfg, logger), logger)
		srv := server.New(cfg, svc, logger)

		addr := fmt.Sprintf("0.0.0.0:%s", cfg.Port)
		logger.Info("starting server", "addr", addr)
		return srv.Start(addr)
	},
}

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Fetch every sheet and print the derived summaries",
	RunE: func(cmd *cobra.Command, _ []string) error {
		debug, _ := cmd.Flags().GetBool("debug")
		logger := newLogger(debug)

		cfg, err := config.Build(cfgFile, nil)
		if err != nil {
			return err
		}

		if sourcesFile, _ := cmd.Flags().GetString("sources"); sourcesFile != "" {
			src, err := sources.Load(sourcesFile)
			if err != nil {
				return err
			}
			src.Print()
			if src.SpreadsheetID != "" {
				cfg.SpreadsheetID = src.SpreadsheetID
			}
			for kind, gid := range src.GIDs() {
				cfg.GIDs[strings.ToLower(kind)] = gid
			}
		}

		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()

		svc := service.New(cfg, fetcher.New(cfg, logger), logger)
		snap := svc.Refresh(ctx)

		if rawSel, _ := cmd.Flags().GetString("range"); rawSel != "" {
			sel, ok := datefilter.ParseSelector(rawSel)
			if !ok {
				return fmt.Errorf("unknown range selector %q", rawSel)
			}
			now := time.Now()
			snap.Sales = datefilter.Sales(snap.Sales, sel, now)
			snap.Transactions = datefilter.Transactions(snap.Transactions, sel, now)
			snap.SoldItems = datefilter.SoldItems(snap.SoldItems, sel, now)
		}

		if debug {
			pp.Println(snap)
		}

		debtSummary := summary.Debts(snap.Debts)
		salesSummary := summary.Sales(snap.Sales)
		itemsSummary := summary.SoldItems(snap.SoldItems)

		fmt.Printf("Debts: %d records | outstanding %.0f (hutang %.0f, nitip %.0f, lunas %.0f)\n",
			len(snap.Debts), debtSummary.Total, debtSummary.Hutang, debtSummary.Nitip, debtSummary.Lunas)
		fmt.Printf("Sales: %d records | revenue %.0f purchase %.0f profit %.0f avg %.2f\n",
			salesSummary.TotalTransactions, salesSummary.TotalRevenue, salesSummary.TotalPurchase,
			salesSummary.TotalProfit, salesSummary.AverageTransaction)
		fmt.Printf("Transactions: %d records\n", len(snap.Transactions))
		fmt.Printf("Sold items: %d records | qty %.0f revenue %.0f\n",
			itemsSummary.TotalItems, itemsSummary.TotalQuantitySold, itemsSummary.TotalRevenue)
		for _, c := range snap.CategorySales {
			fmt.Printf("Category %-10s qty %6d revenue %.0f\n", c.DisplayName, c.TotalQuantity, c.TotalRevenue)
		}
		for kind, err := range snap.Errors {
			fmt.Printf("! %s failed: %v\n", kind, err)
		}
		return nil
	},
}

var convertCmd = &cobra.Command{
	Use:   "convert [flags] <export_file>",
	Short: "Parse a local CSV/XLSX sheet export and print normalized CSV",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		debug, _ := cmd.Flags().GetBool("debug")
		logger := newLogger(debug)

		kind, _ := cmd.Flags().GetString("kind")

		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read file: %w", err)
		}

		p := parser.New(logger)
		rows, err := p.Rows(data, filepath.Base(args[0]))
		if err != nil {
			return fmt.Errorf("failed to process file: %w", err)
		}

		switch parser.Kind(kind) {
		case parser.KindDebt:
			fmt.Print(string(export.Debts(p.ParseDebts(rows), nil)))
		case parser.KindSales:
			fmt.Print(string(export.Sales(p.ParseSales(rows), nil)))
		case parser.KindTransaction:
			fmt.Print(string(export.Transactions(p.ParseTransactions(rows), nil)))
		case parser.KindSoldItems:
			fmt.Print(string(export.SoldItems(p.ParseSoldItems(rows, time.Now()), nil)))
		default:
			return fmt.Errorf("unknown kind %q (expected debt, sales, transaction or soldItems)", kind)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "Config file (default is config.yaml)")
	rootCmd.PersistentFlags().Bool("debug", false, "Verbose debug logging")

	serveCmd.Flags().String("port", "3000", "Server port")

	reportCmd.Flags().String("range", "", "Date range selector (today, yesterday, week, 2weeks, month, year, lastYear)")
	reportCmd.Flags().String("sources", "", "YAML file overriding sheet tabs")

	convertCmd.Flags().String("kind", "debt", "Sheet kind of the export (debt, sales, transaction, soldItems)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(convertCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
