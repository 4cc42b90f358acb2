package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/aadhya/eduverse/config"
	"github.com/aadhya/eduverse/internal/api"
	"github.com/aadhya/eduverse/internal/app"
	"github.com/aadhya/eduverse/internal/catalog"
	"github.com/aadhya/eduverse/internal/domain"
	"github.com/aadhya/eduverse/internal/mailer"
	"github.com/aadhya/eduverse/internal/repository"
	"github.com/aadhya/eduverse/internal/webserver"
)

var cfile string

func main() {
	root := &cobra.Command{
		Use:          "eduverse",
		Short:        "Aadhya Eduverse site backend",
		SilenceUsage: true,
		RunE:         runServe,
	}
	root.PersistentFlags().StringVarP(&cfile, "config", "c", "", "config file (yaml)")

	root.AddCommand(
		&cobra.Command{
			Use:   "serve",
			Short: "Seed an empty store and serve the HTTP API",
			RunE:  runServe,
		},
		&cobra.Command{
			Use:   "migrate",
			Short: "Create or update the database tables",
			RunE: func(cmd *cobra.Command, args []string) error {
				a, err := setup()
				if err != nil {
					return err
				}
				defer a.Release()
				zap.L().Info("database migrated")
				return nil
			},
		},
		&cobra.Command{
			Use:   "seed",
			Short: "Insert the sample catalogue when the store is empty",
			RunE: func(cmd *cobra.Command, args []string) error {
				a, err := setup()
				if err != nil {
					return err
				}
				defer a.Release()
				return seed(cmd.Context(), a)
			},
		},
		&cobra.Command{
			Use:   "initdb",
			Short: "Drop and recreate every table (destroys data)",
			RunE: func(cmd *cobra.Command, args []string) error {
				a, err := setup()
				if err != nil {
					return err
				}
				defer a.Release()
				return resetDatabase(a)
			},
		},
	)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func setup() (*app.Application, error) {
	cfg, err := config.LoadConfig(cfile)
	if err != nil {
		return nil, err
	}
	a := app.NewApplication(cfg)
	if err := a.Init(); err != nil {
		return nil, err
	}
	return a, nil
}

func seed(ctx context.Context, ac app.AppContext) error {
	seeded, err := ac.SeedCatalog(ctx)
	if err != nil {
		return err
	}
	if seeded {
		zap.L().Info("sample catalogue inserted")
	}
	return nil
}

func runServe(cmd *cobra.Command, args []string) error {
	a, err := setup()
	if err != nil {
		return err
	}
	defer a.Release()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := seed(ctx, a); err != nil {
		return err
	}

	server := newServer(a)
	return server.Run(ctx)
}

func resetDatabase(ac app.AppContext) error {
	if err := ac.InitDb(); err != nil {
		return err
	}
	zap.L().Warn("database reinitialized")
	return nil
}

// newServer wires the stores, catalogue services and mailer of ac into the
// HTTP API.
func newServer(ac app.AppContext) *webserver.WebServer {
	cfg := ac.Config()
	db := ac.DB()
	handler := api.NewHandler(
		catalog.NewCompanyInfoService(repository.NewGormStore[domain.CompanyInfo](db)),
		catalog.NewProductService(repository.NewGormStore[domain.Product](db)),
		catalog.NewServiceCatalog(repository.NewGormStore[domain.Service](db)),
		mailer.New(mailer.NewDialer(cfg.Mail), cfg.Mail, cfg.Contact),
		ac,
	)

	server := webserver.NewWebServer(cfg.Web)
	handler.Register(server)
	return server
}
