package main

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/marsrover/internal/config"
	"github.com/robalobadob/marsrover/internal/httpserver"
)

func newTokenCmd(a *app) *cobra.Command {
	var subject string
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint a bearer token for the catalog endpoints",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.cfg.JWTSecret == config.DefaultJWTSecret {
				log.Warn().Msg("signing with the development JWT secret")
			}
			ttl := time.Duration(a.cfg.JWTExpiresDays) * 24 * time.Hour
			token, exp, err := httpserver.SignToken(a.cfg.JWTSecret, subject, ttl)
			if err != nil {
				return err
			}
			log.Info().Str("subject", subject).Time("expires", exp).Msg("token issued")
			_, err = fmt.Fprintln(cmd.OutOrStdout(), token)
			return err
		},
	}
	cmd.Flags().StringVar(&subject, "subject", "", "token subject, e.g. an operator name")
	_ = cmd.MarkFlagRequired("subject")
	return cmd
}
