package main

import (
	"fmt"

	"github.com/urfave/cli/v2"
	"go.temporal.io/sdk/worker"

	"admin.app/billing/workflow"
)

func (e *env) workerCommand() *cli.Command {
	return &cli.Command{
		Name:  "worker",
		Usage: "run the Temporal worker that executes invoice saves",
		Action: func(c *cli.Context) error {
			if e.temporal == nil {
				return fmt.Errorf("FACTURAS_TEMPORAL_HOST is not set")
			}
			e.log.WithField("task_queue", e.cfg.Temporal.TaskQueue).Info("starting invoice save worker")
			return workflow.RunWorker(e.temporal, e.cfg.Temporal.TaskQueue, e.services.Invoice, worker.InterruptCh())
		},
	}
}
