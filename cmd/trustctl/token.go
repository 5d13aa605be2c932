package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/SscSPs/trust_ledger_app/internal/utils"
)

func tokenCmd() *cobra.Command {
	var ttl time.Duration
	cmd := &cobra.Command{
		Use:   "token <advocate-id>",
		Short: "Mint a bearer token for local development",
		Long: `token signs a JWT with JWT_SECRET and JWT_ISSUER whose subject is the given
advocate. Use it to call the API locally; production tokens are issued by the
identity provider.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cfg.IsProduction {
				return fmt.Errorf("refusing to mint tokens with IS_PRODUCTION set")
			}
			signed, err := utils.GenerateAdvocateToken(args[0], cfg.JWTSecret, cfg.JWTIssuer, ttl)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), signed)
			return nil
		},
	}
	cmd.Flags().DurationVar(&ttl, "ttl", time.Hour, "token lifetime")
	return cmd
}
