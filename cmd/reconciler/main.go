// Command reconciler merges duplicate accounts sharing an email. It is an
// operator tool, independent of the request path, and safe to re-run.
package main

import (
	"context"
	"os"

	"github.com/rs/zerolog/log"

	"nyaya/internal/infra"
	"nyaya/internal/repositories"
	"nyaya/internal/services"
	"nyaya/pkg/logger"
)

func main() {
	logger.Init("nyaya-reconciler", false)

	cfg, err := infra.LoadConfig()
	if err != nil {
		log.Error().Err(err).Msg("loading config")
		os.Exit(1)
	}

	db, err := infra.NewPostgres(cfg)
	if err != nil {
		log.Error().Err(err).Msg("connecting to database")
		os.Exit(1)
	}
	defer infra.ClosePostgres(db)

	reconciler := services.NewReconcilerService(db, repositories.NewAccountRepository(db))
	summaries, err := reconciler.Run(context.Background())
	if err != nil {
		log.Error().Err(err).Msg("reconciliation failed")
		os.Exit(1)
	}

	for _, s := range summaries {
		log.Info().
			Str("email", s.Email).
			Str("keeper_id", s.KeeperID.String()).
			Int("losers_merged", s.LosersMerged).
			Msg("merged")
	}
	log.Info().Int("groups_repaired", len(summaries)).Msg("reconciliation complete")
}
