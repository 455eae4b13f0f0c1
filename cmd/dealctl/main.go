// dealctl is a small operator CLI for the finance engine: it runs financing
// simulations and CSV cash-flow imports against the configured database
// without going through the HTTP surface.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/dealerdesk/finance-engine/internal/config"
	"github.com/dealerdesk/finance-engine/internal/domain"
	"github.com/dealerdesk/finance-engine/internal/financing"
	"github.com/dealerdesk/finance-engine/internal/importer"
	"github.com/dealerdesk/finance-engine/internal/repository"
	"github.com/dealerdesk/finance-engine/internal/service"
	"github.com/dealerdesk/finance-engine/pkg/utils"
)

func main() {
	root := &cobra.Command{
		Use:          "dealctl",
		Short:        "Dealership finance engine command line",
		SilenceUsage: true,
	}

	root.AddCommand(newQuoteCmd())
	root.AddCommand(newImportCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func newQuoteCmd() *cobra.Command {
	var (
		price        string
		down         string
		rate         string
		installments int
		dealerFee    string
		regFee       string
		otherFees    string
		taxRate      string
	)

	cmd := &cobra.Command{
		Use:   "quote",
		Short: "Compute a financing simulation",
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := buildParameters(price, down, rate, installments, dealerFee, regFee, otherFees, taxRate)
			if err != nil {
				return err
			}

			result := financing.ComputeLoan(params)

			fmt.Printf("Down payment:    %s\n", utils.Round2(result.DownPaymentAmount))
			fmt.Printf("Taxes:           %s\n", utils.Round2(result.TotalTaxes))
			fmt.Printf("Fees:            %s\n", utils.Round2(result.TotalFees))
			fmt.Printf("Financed amount: %s\n", utils.Round2(result.FinancedAmount))
			fmt.Printf("Monthly payment: %s x %d\n", utils.Round2(result.MonthlyPayment), params.Installments)
			fmt.Printf("Total cost:      %s\n", utils.Round2(result.TotalAmount))
			return nil
		},
	}

	cmd.Flags().StringVar(&price, "price", "", "vehicle price (required)")
	cmd.Flags().StringVar(&down, "down", "0", "down payment amount")
	cmd.Flags().StringVar(&rate, "rate", "0", "annual interest rate percent")
	cmd.Flags().IntVar(&installments, "installments", 48, "number of monthly installments")
	cmd.Flags().StringVar(&dealerFee, "dealer-fee", "0", "dealer fee")
	cmd.Flags().StringVar(&regFee, "registration-fee", "0", "registration fee")
	cmd.Flags().StringVar(&otherFees, "other-fees", "0", "other fees")
	cmd.Flags().StringVar(&taxRate, "tax-rate", "0", "sales tax rate percent")
	_ = cmd.MarkFlagRequired("price")

	return cmd
}

func buildParameters(price, down, rate string, installments int, dealerFee, regFee, otherFees, taxRate string) (domain.LoanParameters, error) {
	var params domain.LoanParameters
	var err error

	fields := []struct {
		name string
		raw  string
		dst  *decimal.Decimal
	}{
		{"price", price, &params.VehiclePrice},
		{"down", down, &params.DownPayment},
		{"rate", rate, &params.InterestRateAnnualPercent},
		{"dealer-fee", dealerFee, &params.DealerFee},
		{"registration-fee", regFee, &params.RegistrationFee},
		{"other-fees", otherFees, &params.OtherFees},
		{"tax-rate", taxRate, &params.TaxRatePercent},
	}
	for _, f := range fields {
		if *f.dst, err = decimal.NewFromString(f.raw); err != nil {
			return params, fmt.Errorf("invalid --%s value %q: %w", f.name, f.raw, err)
		}
	}

	if installments < 1 {
		return params, fmt.Errorf("--installments must be at least 1")
	}
	params.Installments = installments

	return params, nil
}

func newImportCmd() *cobra.Command {
	var commit bool

	cmd := &cobra.Command{
		Use:   "import <file.csv>",
		Short: "Preview or commit a cash-flow CSV import",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading %s: %w", args[0], err)
			}

			cfg, err := config.Load()
			if err != nil {
				return err
			}

			db, err := sqlx.Connect("postgres", cfg.Database.URL)
			if err != nil {
				return fmt.Errorf("connecting to database: %w", err)
			}
			defer db.Close()

			svc := service.NewImportService(
				importer.New(nil),
				repository.NewTransactionRepository(db),
				repository.NewCategoryRepository(db),
				nil,
			)
			ctx := context.Background()

			if !commit {
				preview, err := svc.Preview(ctx, string(raw))
				if err != nil {
					return err
				}
				return printPreview(preview)
			}

			summary, validationErrs, err := svc.Commit(ctx, string(raw))
			if err != nil {
				for _, e := range validationErrs {
					fmt.Fprintln(os.Stderr, e.String())
				}
				return err
			}

			fmt.Printf("Imported %d record(s), %d failed\n", summary.Imported, summary.Failed)
			for _, e := range summary.Errors {
				fmt.Fprintln(os.Stderr, e)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&commit, "commit", false, "persist the batch instead of previewing")

	return cmd
}

func printPreview(preview *domain.ImportPreviewResponse) error {
	for _, rec := range preview.Records {
		category := "-"
		if rec.CategoryID != nil {
			category = *rec.CategoryID
		}
		fmt.Printf("%s  %-8s %12s  %s  [%s]\n", rec.Date, rec.Type, rec.Amount.StringFixed(2), rec.Description, category)
	}

	if preview.SkippedLines > 0 {
		fmt.Printf("Skipped %d malformed line(s)\n", preview.SkippedLines)
	}

	if len(preview.ValidationErrors) > 0 {
		fmt.Printf("%d validation error(s):\n", len(preview.ValidationErrors))
		for _, e := range preview.ValidationErrors {
			fmt.Println("  " + e.String())
		}
		return fmt.Errorf("batch is not importable")
	}

	fmt.Printf("%d record(s) ready to import\n", len(preview.Records))
	return nil
}
