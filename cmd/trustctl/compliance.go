package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/SscSPs/trust_ledger_app/internal/core/domain"
	"github.com/SscSPs/trust_ledger_app/internal/utils"
)

func complianceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compliance",
		Short: "Check trust accounts against the non-negative balance rule",
	}
	cmd.AddCommand(complianceCheckCmd())
	cmd.AddCommand(complianceSweepCmd())
	return cmd
}

func complianceCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <advocate-id>",
		Short: "Report one advocate's trust account status",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := commandContext(cmd)
			svc, closeFn, err := openServices(ctx)
			if err != nil {
				return err
			}
			defer closeFn()

			status, err := svc.Compliance.CheckForViolations(ctx, args[0])
			if err != nil {
				return err
			}
			return printStatuses(cmd.OutOrStdout(), cfg.CurrencyCode, []domain.ViolationStatus{*status})
		},
	}
}

func complianceSweepCmd() *cobra.Command {
	var failOnViolation bool
	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Check every trust account and list violations and low balances",
		Long: `Sweep pages through every trust account. Accounts with a negative balance
are violations; accounts below their low-balance threshold are listed separately.
With --fail-on-violation the command exits non-zero when any violation is found,
which suits a scheduled job.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := commandContext(cmd)
			svc, closeFn, err := openServices(ctx)
			if err != nil {
				return err
			}
			defer closeFn()

			result, err := svc.Compliance.Sweep(ctx)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Checked %d trust accounts: %d violations, %d low balance\n\n",
				result.Checked, len(result.Violations), len(result.LowBalance))
			flagged := append(append([]domain.ViolationStatus{}, result.Violations...), result.LowBalance...)
			if len(flagged) > 0 {
				if err := printStatuses(out, cfg.CurrencyCode, flagged); err != nil {
					return err
				}
			}
			if failOnViolation && len(result.Violations) > 0 {
				return fmt.Errorf("%d trust accounts have a negative balance", len(result.Violations))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&failOnViolation, "fail-on-violation", false, "exit non-zero if any account is negative")
	return cmd
}

func printStatuses(out io.Writer, currency string, statuses []domain.ViolationStatus) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ADVOCATE\tACCOUNT\tBALANCE\tVIOLATION\tLOW\tALERTED\tMESSAGE")
	for _, s := range statuses {
		fmt.Fprintf(w, "%s\t%s\t%s\t%t\t%t\t%t\t%s\n",
			s.AdvocateID, s.TrustAccountID, utils.FormatMoney(s.Balance, currency),
			s.HasViolation, s.IsLowBalance, s.AlertAlreadySent, s.Message)
	}
	return w.Flush()
}
