package main

import (
	"github.com/urfave/cli/v2"

	"admin.app/billing"
)

func pageFlags() []cli.Flag {
	return []cli.Flag{
		&cli.IntFlag{Name: "page", Usage: "page number", Value: 1},
		&cli.IntFlag{Name: "size", Usage: "page size (defaults to FACTURAS_PAGE_SIZE)"},
	}
}

func activeFilter(c *cli.Context) *bool {
	if !c.IsSet("active") {
		return nil
	}
	active := c.Bool("active")
	return &active
}

func (e *env) clientsCommand() *cli.Command {
	return &cli.Command{
		Name:  "clients",
		Usage: "browse clients",
		Subcommands: []*cli.Command{{
			Name:  "list",
			Usage: "list one page of clients",
			Flags: append(pageFlags(),
				&cli.StringFlag{Name: "name", Usage: "filter by name"},
				&cli.BoolFlag{Name: "active", Usage: "filter by active flag"},
			),
			Action: func(c *cli.Context) error {
				resp, err := e.facade.ListClients(c.Context, &billing.ListClientsRequest{
					PageNumber: c.Int("page"),
					PageSize:   c.Int("size"),
					Name:       c.String("name"),
					Active:     activeFilter(c),
				})
				if err != nil {
					return err
				}
				return e.print(resp.Clients)
			},
		}},
	}
}

func (e *env) usersCommand() *cli.Command {
	return &cli.Command{
		Name:  "users",
		Usage: "browse users",
		Subcommands: []*cli.Command{{
			Name:  "list",
			Usage: "list one page of users",
			Flags: append(pageFlags(),
				&cli.StringFlag{Name: "name", Usage: "filter by name"},
				&cli.BoolFlag{Name: "active", Usage: "filter by active flag"},
			),
			Action: func(c *cli.Context) error {
				resp, err := e.facade.ListUsers(c.Context, &billing.ListUsersRequest{
					PageNumber: c.Int("page"),
					PageSize:   c.Int("size"),
					Name:       c.String("name"),
					Active:     activeFilter(c),
				})
				if err != nil {
					return err
				}
				return e.print(resp.Users)
			},
		}},
	}
}

func (e *env) productsCommand() *cli.Command {
	return &cli.Command{
		Name:  "products",
		Usage: "browse products",
		Subcommands: []*cli.Command{{
			Name:  "list",
			Usage: "list the product catalog",
			Action: func(c *cli.Context) error {
				resp, err := e.facade.ListProducts(c.Context)
				if err != nil {
					return err
				}
				return e.print(resp.Products)
			},
		}},
	}
}
