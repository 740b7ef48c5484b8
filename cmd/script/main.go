package main

import (
	"coinwatch/cmd"
	"coinwatch/internal/logger"
	"coinwatch/internal/util"
	"context"
	"fmt"
	"log"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/lib/pq"
	"github.com/spf13/cobra"
)

// operational one-offs that do not belong in the api process

func main() {
	rootCmd := &cobra.Command{
		Use:   "coinwatch",
		Short: "coinwatch operational scripts",
	}
	rootCmd.AddCommand(syncCmd(), migrateCmd())

	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}

func syncCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sync",
		Short: "run one price sync and exit",
		RunE: func(c *cobra.Command, args []string) error {
			apiHandler, syncScheduler, err := cmd.InitializeDependencies()
			if err != nil {
				return err
			}
			defer cmd.CloseDependencies(apiHandler, syncScheduler)

			ctx := context.WithValue(context.Background(), logger.ContextKey, logger.New())
			result, err := apiHandler.CryptoService.Sync(ctx)
			if err != nil {
				return err
			}

			fmt.Println(result.Message)
			return nil
		},
	}
}

func migrateCmd() *cobra.Command {
	var down bool

	out := &cobra.Command{
		Use:   "migrate",
		Short: "apply schema migrations",
		RunE: func(c *cobra.Command, args []string) error {
			cfg, err := util.LoadConfig()
			if err != nil {
				return err
			}

			m, err := migrate.New("file://migrations", cfg.Db.ToConnectionUrl())
			if err != nil {
				return fmt.Errorf("failed to init migrations: %w", err)
			}
			defer m.Close()

			if down {
				err = m.Down()
			} else {
				err = m.Up()
			}
			if err == migrate.ErrNoChange {
				fmt.Println("schema already up to date")
				return nil
			}
			return err
		},
	}
	out.Flags().BoolVar(&down, "down", false, "roll the schema back instead of forward")

	return out
}
