package main

import (
	"fmt"
	"os"

	"Blog/config"
	"Blog/pkg/database"
	"Blog/pkg/log"
	"Blog/pkg/server"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

func main() {
	// .env 不存在时忽略
	_ = godotenv.Load()

	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}
	path := fmt.Sprintf("configs/config.%s.yaml", env)
	cfg := config.New(path)
	if cfg.App != nil && cfg.App.Env == "" {
		cfg.App.Env = env
	}

	cliApp := &cli.App{
		Name:  "api-server",
		Usage: "blog http api",
		Commands: []*cli.Command{
			{
				Name:  "serve",
				Usage: "start http server",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "migrate", Usage: "auto migrate tables before serving"},
				},
				Action: func(ctx *cli.Context) error {
					appProvider, cleanup, err := InitServer(cfg)
					if err != nil {
						return err
					}
					defer cleanup()

					if ctx.Bool("migrate") {
						if err := database.Migrate(ctx.Context, appProvider.DB); err != nil {
							return err
						}
					}
					return server.Run(ctx, appProvider)
				},
			},
			{
				Name:  "migrate",
				Usage: "create or update tables",
				Action: func(ctx *cli.Context) error {
					db, cleanup, err := database.NewDB(cfg)
					if err != nil {
						return err
					}
					defer cleanup()

					if err := database.Migrate(ctx.Context, db); err != nil {
						return err
					}
					log.L.Info("migrate done", zap.String("driver", cfg.Database.Driver))
					return nil
				},
			},
		},
	}
	if err := cliApp.Run(os.Args); err != nil {
		log.L.Fatal("failed to start server", zap.Error(err))
	}
}
