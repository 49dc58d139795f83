package main

import (
	"context"
	"os"

	"github.com/rs/zerolog/log"
)

func main() {
	ctx := log.Logger.WithContext(context.Background())

	rootCmd := newRootCmd()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}
