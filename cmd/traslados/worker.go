package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	adapterotel "github.com/campusops/traslados/internal/adapter/otel"
	adapterriver "github.com/campusops/traslados/internal/adapter/river"
	"github.com/campusops/traslados/internal/adapter/sqlite"
)

var workerCmd = &cobra.Command{
	Use:   "worker",
	Short: "Run the fallback-alert worker until interrupted",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		providers, err := adapterotel.Setup(ctx, adapterotel.ConfigFromEnv())
		if err != nil {
			return err
		}
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := providers.Shutdown(shutdownCtx); err != nil {
				log.Printf("otel shutdown: %v", err)
			}
		}()

		db, err := adapterotel.OpenDB(viper.GetString("database_path"))
		if err != nil {
			return err
		}

		store, err := sqlite.NewFromDB(db)
		if err != nil {
			db.Close()
			return err
		}
		defer store.Close()

		client, err := adapterriver.Setup(ctx, store.DB())
		if err != nil {
			return err
		}

		if err := client.Start(ctx); err != nil {
			return err
		}
		log.Println("fallback-alert worker running")

		// Graceful shutdown.
		done := make(chan os.Signal, 1)
		signal.Notify(done, os.Interrupt, syscall.SIGTERM)
		<-done
		log.Println("shutting down...")

		stopCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := client.Stop(stopCtx); err != nil {
			return err
		}

		log.Println("stopped")
		return nil
	},
}
