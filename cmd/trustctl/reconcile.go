package main

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/SscSPs/trust_ledger_app/internal/core/domain"
	"github.com/SscSPs/trust_ledger_app/internal/utils"
)

func reconcileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reconcile",
		Short: "Reconciliation reports",
	}
	cmd.AddCommand(reconcileReportCmd())
	return cmd
}

func reconcileReportCmd() *cobra.Command {
	var from, to, bank string
	cmd := &cobra.Command{
		Use:   "report <advocate-id>",
		Short: "Print a reconciliation report for a date range",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			start, err := time.Parse(domain.DateLayout, from)
			if err != nil {
				return fmt.Errorf("--from must be YYYY-MM-DD: %w", err)
			}
			end, err := time.Parse(domain.DateLayout, to)
			if err != nil {
				return fmt.Errorf("--to must be YYYY-MM-DD: %w", err)
			}
			var bankBalance *decimal.Decimal
			if bank != "" {
				b, err := decimal.NewFromString(bank)
				if err != nil {
					return fmt.Errorf("--bank-balance must be a number: %w", err)
				}
				bankBalance = &b
			}

			ctx := commandContext(cmd)
			svc, closeFn, err := openServices(ctx)
			if err != nil {
				return err
			}
			defer closeFn()

			report, err := svc.Reconciliation.GenerateReport(ctx, args[0], start, end, bankBalance)
			if err != nil {
				return err
			}

			money := func(d decimal.Decimal) string { return utils.FormatMoney(d, cfg.CurrencyCode) }
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintf(w, "Trust account\t%s (%s)\n", report.TrustAccount.TrustAccountID, report.TrustAccount.BankName)
			fmt.Fprintf(w, "Period\t%s to %s\n", report.StartDate.Format(domain.DateLayout), report.EndDate.Format(domain.DateLayout))
			fmt.Fprintf(w, "Opening balance\t%s\n", money(report.OpeningBalance))
			fmt.Fprintf(w, "Deposits\t%s\n", money(report.TotalDeposits))
			fmt.Fprintf(w, "Drawdowns\t%s\n", money(report.TotalDrawdowns))
			fmt.Fprintf(w, "Refunds\t%s\n", money(report.TotalRefunds))
			fmt.Fprintf(w, "Adjustments\t%s\n", money(report.TotalAdjustments))
			fmt.Fprintf(w, "Transfers to business\t%s\n", money(report.TotalTransfers))
			fmt.Fprintf(w, "Closing balance\t%s\n", money(report.ClosingBalance))
			if report.HasPostPeriodActivity {
				fmt.Fprintf(w, "Derived opening balance\t%s\t(entries exist after the period)\n", money(report.DerivedOpeningBalance))
			}
			if report.BankBalance != nil {
				fmt.Fprintf(w, "Bank balance\t%s\n", money(*report.BankBalance))
				fmt.Fprintf(w, "Discrepancy\t%s\n", money(report.Discrepancy))
			}
			fmt.Fprintf(w, "Entries\t%d transactions, %d transfers\n", len(report.Transactions), len(report.Transfers))
			fmt.Fprintf(w, "Reconciled\t%t\n", report.IsReconciled)
			return w.Flush()
		},
	}
	cmd.Flags().StringVar(&from, "from", "", "inclusive start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&to, "to", "", "inclusive end date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&bank, "bank-balance", "", "bank statement balance at the end date")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")
	return cmd
}
