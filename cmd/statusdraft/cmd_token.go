package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/kube-rca/incident-comms/internal/config"
	"github.com/kube-rca/incident-comms/internal/service"
)

var tokenFlags struct {
	subject string
	ttl     time.Duration
}

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Issue a bearer token for the API (signed with API_JWT_SECRET)",
	RunE:  runToken,
}

func init() {
	f := tokenCmd.Flags()
	f.StringVar(&tokenFlags.subject, "subject", "", "Token subject, e.g. the caller's name (required)")
	f.DurationVar(&tokenFlags.ttl, "ttl", 24*time.Hour, "Token lifetime")
	_ = tokenCmd.MarkFlagRequired("subject")
}

func runToken(cmd *cobra.Command, _ []string) error {
	auth, err := service.NewAuthService(config.Load().Auth)
	if err != nil {
		return err
	}
	token, err := auth.IssueToken(tokenFlags.subject, tokenFlags.ttl)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), token)
	return nil
}
