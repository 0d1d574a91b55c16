package main

// Mint an operator token for the /api/v1/admin routes:
//   go run ./cmd/admintoken --subject ops@example.com --ttl 12h

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"fitcheck-backend/internal/shared/auth"
	"fitcheck-backend/internal/shared/config"
)

func newRootCmd() *cobra.Command {
	var (
		subject string
		ttl     time.Duration
		secret  string
	)

	cmd := &cobra.Command{
		Use:          "admintoken",
		Short:        "Sign an admin bearer token with ADMIN_JWT_SECRET",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if strings.TrimSpace(secret) == "" {
				secret = config.Load().AdminJWTSecret
			}
			token, err := auth.SignAdminToken(secret, subject, ttl)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), token)
			return err
		},
	}

	cmd.Flags().StringVar(&subject, "subject", "", "operator identity stored in the sub claim")
	cmd.Flags().DurationVar(&ttl, "ttl", 12*time.Hour, "token lifetime")
	cmd.Flags().StringVar(&secret, "secret", "", "signing secret (defaults to ADMIN_JWT_SECRET)")
	_ = cmd.MarkFlagRequired("subject")
	return cmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
