package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"freight/cmd"
	"freight/internal/adapters/out/postgres"
	"freight/internal/core/application/usecases/commands"
	"freight/internal/core/application/usecases/queries"
	"freight/internal/core/domain/model/kernel"

	"github.com/urfave/cli/v2"
	"gorm.io/gorm"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newApp().RunContext(ctx, os.Args); err != nil {
		logger.Error("freightctl failed", "error", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "freightctl",
		Usage: "administer the freight database",
		Commands: []*cli.Command{
			{
				Name:   "migrate",
				Usage:  "create or update the schema",
				Action: migrate,
			},
			{
				Name:  "create-operator",
				Usage: "register a back-office operator",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "email", Required: true},
					&cli.StringFlag{Name: "username", Required: true},
					&cli.StringFlag{
						Name:     "password",
						Usage:    "plain password, hashed before storage",
						EnvVars:  []string{"FREIGHT_OPERATOR_PASSWORD"},
						Required: true,
					},
					&cli.BoolFlag{Name: "staff"},
					&cli.BoolFlag{Name: "superuser"},
				},
				Action: createOperator,
			},
			{
				Name:   "dashboard",
				Usage:  "print the reporting dashboard as JSON",
				Action: dashboard,
			},
		},
	}
}

func openDB(c *cli.Context) (*gorm.DB, cmd.Config, error) {
	configs, err := cmd.LoadConfig()
	if err != nil {
		return nil, cmd.Config{}, err
	}
	db, err := postgres.Open(c.Context, configs.ConnectionConfig())
	if err != nil {
		return nil, cmd.Config{}, err
	}
	return db, configs, nil
}

func migrate(c *cli.Context) error {
	db, _, err := openDB(c)
	if err != nil {
		return err
	}
	if err = postgres.Migrate(db); err != nil {
		return err
	}
	fmt.Fprintln(c.App.Writer, "schema is up to date")
	return nil
}

func createOperator(c *cli.Context) error {
	db, configs, err := openDB(c)
	if err != nil {
		return err
	}
	app := cmd.NewCompositionRoot(configs, db)

	command, err := commands.NewRegisterOperatorCommand(
		kernel.NewUUID(),
		c.String("email"),
		c.String("username"),
		c.String("password"),
		c.Bool("staff"),
		c.Bool("superuser"),
	)
	if err != nil {
		return err
	}
	created, err := app.CreateRegisterOperatorCommandHandler().Handle(c.Context, command)
	if err != nil {
		return err
	}

	fmt.Fprintf(c.App.Writer, "operator %s registered with id %s\n", created.Email(), created.ID())
	return nil
}

func dashboard(c *cli.Context) error {
	db, configs, err := openDB(c)
	if err != nil {
		return err
	}
	app := cmd.NewCompositionRoot(configs, db)

	query, err := queries.NewGetDashboardQuery(time.Now())
	if err != nil {
		return err
	}
	report, err := app.CreateGetDashboardQueryHandler().Handle(c.Context, query)
	if err != nil {
		return err
	}

	encoder := json.NewEncoder(c.App.Writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(report)
}
