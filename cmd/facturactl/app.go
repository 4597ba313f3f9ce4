package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
	"go.temporal.io/sdk/client"

	"admin.app/billing"
	"admin.app/billing/api"
	"admin.app/billing/presentation/invoicepage"
	"admin.app/billing/repository"
	"admin.app/billing/service"
	"admin.app/billing/workflow"
	"admin.app/internal/config"
	"admin.app/internal/logging"
)

// env holds the process dependencies built once the flags are parsed.
type env struct {
	out io.Writer
	in  io.Reader

	cfg      *config.Config
	log      *logrus.Logger
	services service.Services
	temporal client.Client
	facade   *billing.Service
}

func newApp(out io.Writer, in io.Reader) *cli.App {
	e := &env{out: out, in: in}

	return &cli.App{
		Name:      "facturactl",
		Usage:     "administer invoices on the facturas backend",
		Writer:    out,
		ErrWriter: os.Stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "env-file", Usage: "dotenv file to load", Value: ".env"},
			&cli.BoolFlag{Name: "yes", Aliases: []string{"y"}, Usage: "confirm destructive actions without prompting"},
		},
		Before: e.setup,
		After:  e.teardown,
		Commands: []*cli.Command{
			e.invoicesCommand(),
			e.clientsCommand(),
			e.productsCommand(),
			e.usersCommand(),
			e.workerCommand(),
		},
	}
}

func (e *env) setup(c *cli.Context) error {
	cfg, err := config.Load(c.String("env-file"))
	if err != nil {
		return err
	}
	log, err := logging.New(os.Stderr, cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return err
	}
	e.cfg, e.log = cfg, log
	entry := logrus.NewEntry(log)

	apiClient := api.NewClient(api.Config{
		BaseURL:    cfg.API.BaseURL,
		Timeout:    cfg.API.Timeout,
		Logger:     entry,
		Registerer: prometheus.NewRegistry(),
	})
	e.services = service.NewServices(repository.NewRepository(apiClient))

	var saver invoicepage.Saver
	if cfg.Temporal.Enabled() {
		tc, err := client.Dial(client.Options{
			HostPort:  cfg.Temporal.Host,
			Namespace: cfg.Temporal.Namespace,
		})
		if err != nil {
			return fmt.Errorf("connect to temporal at %s: %w", cfg.Temporal.Host, err)
		}
		e.temporal = tc
		saver = workflow.NewSaver(tc, cfg.Temporal.TaskQueue, entry)
	}

	e.facade = billing.NewService(e.services, billing.Options{
		Notifier:  consoleNotifier{out: e.out},
		Confirmer: consoleConfirmer{in: e.in, out: e.out, assumeYes: c.Bool("yes")},
		Saver:     saver,
		Logger:    entry,
		UserID:    cfg.UserID,
		PageSize:  cfg.PageSize,
	})
	return nil
}

func (e *env) teardown(*cli.Context) error {
	if e.temporal != nil {
		e.temporal.Close()
	}
	return nil
}

func (e *env) print(v any) error {
	enc := json.NewEncoder(e.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
