package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/urfave/cli/v2"

	"admin.app/billing"
	"admin.app/billing/model"
)

func (e *env) invoicesCommand() *cli.Command {
	return &cli.Command{
		Name:  "invoices",
		Usage: "list, show, create, edit and delete invoices",
		Subcommands: []*cli.Command{
			{
				Name:  "list",
				Usage: "list one page of invoices",
				Flags: append(pageFlags(),
					&cli.StringFlag{Name: "number", Usage: "filter by invoice number"},
					&cli.StringFlag{Name: "date", Usage: "filter by date (YYYY-MM-DD)"},
					&cli.Float64Flag{Name: "amount", Usage: "filter by total"},
					&cli.BoolFlag{Name: "active", Usage: "filter by active flag"},
				),
				Action: e.listInvoices,
			},
			{
				Name:      "show",
				Usage:     "show an invoice with its lines",
				ArgsUsage: "<id>",
				Action:    e.showInvoice,
			},
			{
				Name:  "create",
				Usage: "compose and save a new invoice",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "client", Usage: "active client id", Required: true},
					&cli.StringFlag{Name: "method", Usage: "payment method (Efectivo, Tarjeta, Transferencia)"},
					&cli.StringFlag{Name: "status", Usage: "payment status (Pendiente, Pagada, Cancelada)"},
					&cli.StringSliceFlag{Name: "line", Usage: "line as <product id>:<quantity>, repeatable", Required: true},
				},
				Action: e.createInvoice,
			},
			{
				Name:      "edit",
				Usage:     "remove or add lines on an existing invoice",
				ArgsUsage: "<id>",
				Flags: []cli.Flag{
					&cli.IntSliceFlag{Name: "remove", Usage: "detail id to delete, repeatable"},
					&cli.StringSliceFlag{Name: "line", Usage: "line to add as <product id>:<quantity>, repeatable"},
				},
				Action: e.editInvoice,
			},
			{
				Name:      "delete",
				Usage:     "delete an invoice",
				ArgsUsage: "<id>",
				Action:    e.deleteInvoice,
			},
		},
	}
}

func (e *env) listInvoices(c *cli.Context) error {
	req := &billing.ListInvoicesRequest{
		PageNumber: c.Int("page"),
		PageSize:   c.Int("size"),
		Number:     c.String("number"),
		Date:       c.String("date"),
	}
	if c.IsSet("amount") {
		amount := c.Float64("amount")
		req.Amount = &amount
	}
	if c.IsSet("active") {
		active := c.Bool("active")
		req.Active = &active
	}

	resp, err := e.facade.ListInvoices(c.Context, req)
	if err != nil {
		return err
	}
	return e.print(resp)
}

func (e *env) showInvoice(c *cli.Context) error {
	id, err := idArg(c)
	if err != nil {
		return err
	}
	resp, err := e.facade.GetInvoice(c.Context, id)
	if err != nil {
		return err
	}
	return e.print(resp.Invoice)
}

func (e *env) createInvoice(c *cli.Context) error {
	lines, err := parseLines(c.StringSlice("line"))
	if err != nil {
		return err
	}
	resp, err := e.facade.CreateInvoice(c.Context, &billing.CreateInvoiceRequest{
		ClientID:      c.Int("client"),
		PaymentMethod: model.PaymentMethod(c.String("method")),
		PaymentStatus: model.PaymentStatus(c.String("status")),
		Lines:         lines,
	})
	if err != nil {
		return err
	}
	return e.print(resp.Outcome)
}

func (e *env) editInvoice(c *cli.Context) error {
	id, err := idArg(c)
	if err != nil {
		return err
	}
	lines, err := parseLines(c.StringSlice("line"))
	if err != nil {
		return err
	}
	resp, err := e.facade.EditInvoice(c.Context, &billing.EditInvoiceRequest{
		InvoiceID:       id,
		RemoveDetailIDs: c.IntSlice("remove"),
		AddLines:        lines,
	})
	if err != nil {
		return err
	}
	return e.print(resp.Outcome)
}

func (e *env) deleteInvoice(c *cli.Context) error {
	id, err := idArg(c)
	if err != nil {
		return err
	}
	resp, err := e.facade.DeleteInvoice(c.Context, &billing.DeleteInvoiceRequest{ID: id})
	if err != nil {
		return err
	}
	return e.print(resp)
}

func idArg(c *cli.Context) (int, error) {
	if c.NArg() != 1 {
		return 0, fmt.Errorf("expected exactly one invoice id")
	}
	id, err := strconv.Atoi(c.Args().First())
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid invoice id %q", c.Args().First())
	}
	return id, nil
}

// parseLines reads "<product id>:<quantity>" pairs.
func parseLines(raw []string) ([]billing.LineRequest, error) {
	lines := make([]billing.LineRequest, 0, len(raw))
	for _, r := range raw {
		product, qty, ok := strings.Cut(r, ":")
		if !ok {
			return nil, fmt.Errorf("line %q: expected <product id>:<quantity>", r)
		}
		productID, err := strconv.Atoi(strings.TrimSpace(product))
		if err != nil {
			return nil, fmt.Errorf("line %q: invalid product id", r)
		}
		quantity, err := strconv.Atoi(strings.TrimSpace(qty))
		if err != nil {
			return nil, fmt.Errorf("line %q: invalid quantity", r)
		}
		lines = append(lines, billing.LineRequest{ProductID: productID, Quantity: quantity})
	}
	return lines, nil
}
