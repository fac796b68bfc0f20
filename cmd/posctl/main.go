// posctl is the terminal client for the tire shop POS backend. It caches
// the login session on disk and refuses to fire requests once the cached
// token has expired.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/urfave/cli/v2"

	"github.com/tireshop/pos-system/internal/session"
	"github.com/tireshop/pos-system/pkg/logger"
)

func main() {
	app := &cli.App{
		Name:  "posctl",
		Usage: "tire shop point-of-sale terminal client",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "api",
				Usage:   "base URL of the POS backend",
				Value:   "http://localhost:8080",
				EnvVars: []string{"POS_API"},
			},
			&cli.StringFlag{
				Name:    "session-file",
				Usage:   "path of the cached session",
				Value:   defaultSessionPath(),
				EnvVars: []string{"POS_SESSION_FILE"},
			},
			&cli.StringFlag{
				Name:    "session-redis",
				Usage:   "redis address for a session shared between terminals; overrides --session-file",
				EnvVars: []string{"POS_SESSION_REDIS"},
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "enable debug logging",
			},
		},
		Commands: []*cli.Command{
			loginCommand(),
			logoutCommand(),
			whoamiCommand(),
			tiresCommand(),
			saleCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func defaultSessionPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".posctl-session.json"
	}
	return filepath.Join(home, ".config", "posctl", "session.json")
}

func buildClient(c *cli.Context) *apiClient {
	level := "error"
	if c.Bool("verbose") {
		level = "debug"
	}
	log := logger.Init(logger.Options{Level: level, Pretty: true, Output: os.Stderr})

	var store session.Store = session.NewFileStore(c.String("session-file"))
	if addr := c.String("session-redis"); addr != "" {
		store = session.NewRedisStore(
			redis.NewClient(&redis.Options{Addr: addr}),
			"posctl",
			24*time.Hour,
		)
	}
	guard := session.NewGuard(store, log)
	return newAPIClient(c.String("api"), guard)
}

func loginCommand() *cli.Command {
	return &cli.Command{
		Name:  "login",
		Usage: "authenticate and cache the session",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "username", Aliases: []string{"u"}, Required: true},
			&cli.StringFlag{Name: "password", Aliases: []string{"p"}, Required: true},
		},
		Action: func(c *cli.Context) error {
			client := buildClient(c)
			user, err := client.login(c.String("username"), c.String("password"))
			if err != nil {
				return err
			}
			fmt.Printf("logged in as %s (%s)\n", user.Username, user.Role)
			return nil
		},
	}
}

func logoutCommand() *cli.Command {
	return &cli.Command{
		Name:  "logout",
		Usage: "discard the cached session",
		Action: func(c *cli.Context) error {
			client := buildClient(c)
			if err := client.guard.Logout(); err != nil {
				return err
			}
			fmt.Println("logged out")
			return nil
		},
	}
}

func whoamiCommand() *cli.Command {
	return &cli.Command{
		Name:  "whoami",
		Usage: "show the logged-in user, if the session is still valid",
		Action: func(c *cli.Context) error {
			client := buildClient(c)
			user, ok := client.guard.CurrentUser()
			if !ok {
				fmt.Println("not logged in")
				return nil
			}
			fmt.Printf("%s (%s)\n", user.Username, user.Role)
			return nil
		},
	}
}

func tiresCommand() *cli.Command {
	return &cli.Command{
		Name:  "tires",
		Usage: "inventory operations",
		Subcommands: []*cli.Command{
			{
				Name:  "list",
				Usage: "list tires in stock",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "search", Usage: "filter by brand or size"},
					&cli.IntFlag{Name: "limit", Value: 20},
					&cli.IntFlag{Name: "skip"},
				},
				Action: func(c *cli.Context) error {
					client := buildClient(c)

					path := fmt.Sprintf("/v1/tires?skip=%d&limit=%d", c.Int("skip"), c.Int("limit"))
					if s := c.String("search"); s != "" {
						path += "&search=" + s
					}

					var tires []struct {
						ID           string  `json:"id"`
						Brand        string  `json:"brand"`
						TireSize     string  `json:"tire_size"`
						TireType     string  `json:"tire_type"`
						Quantity     int     `json:"quantity"`
						SellingPrice float64 `json:"selling_price"`
					}
					if err := client.do("GET", path, nil, nil, &tires); err != nil {
						return err
					}

					w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
					fmt.Fprintln(w, "ID\tBRAND\tSIZE\tTYPE\tQTY\tPRICE")
					for _, t := range tires {
						fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%.2f\n",
							t.ID, t.Brand, t.TireSize, t.TireType, t.Quantity, t.SellingPrice)
					}
					return w.Flush()
				},
			},
		},
	}
}

func saleCommand() *cli.Command {
	return &cli.Command{
		Name:  "sale",
		Usage: "billing operations",
		Subcommands: []*cli.Command{
			{
				Name:  "create",
				Usage: "record a sale",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "customer", Required: true},
					&cli.StringFlag{Name: "mobile", Required: true},
					&cli.StringFlag{Name: "payment", Value: "cash", Usage: "cash, upi, or card"},
					&cli.StringFlag{Name: "discount-type", Usage: "flat or percent"},
					&cli.Float64Flag{Name: "discount-value"},
					&cli.StringFlag{Name: "notes"},
					&cli.StringSliceFlag{
						Name:     "item",
						Usage:    "tire_id:quantity, repeatable",
						Required: true,
					},
				},
				Action: func(c *cli.Context) error {
					client := buildClient(c)

					type itemPayload struct {
						TireID   string `json:"tire_id"`
						Quantity int    `json:"quantity"`
					}
					items := make([]itemPayload, 0, len(c.StringSlice("item")))
					for _, raw := range c.StringSlice("item") {
						id, qtyStr, found := strings.Cut(raw, ":")
						if !found {
							return fmt.Errorf("item %q must be tire_id:quantity", raw)
						}
						qty, err := strconv.Atoi(qtyStr)
						if err != nil || qty < 1 {
							return fmt.Errorf("item %q has an invalid quantity", raw)
						}
						items = append(items, itemPayload{TireID: id, Quantity: qty})
					}

					payload := map[string]any{
						"customer_name":   c.String("customer"),
						"customer_mobile": c.String("mobile"),
						"payment_mode":    c.String("payment"),
						"notes":           c.String("notes"),
						"items":           items,
					}
					if dt := c.String("discount-type"); dt != "" {
						payload["discount_type"] = dt
						payload["discount_value"] = c.Float64("discount-value")
					}

					// A fresh key per invocation; retried network calls of
					// this same command cannot double-bill.
					headers := map[string]string{"Idempotency-Key": uuid.NewString()}

					var sale struct {
						ID          string  `json:"id"`
						InvoiceID   string  `json:"invoice_id"`
						Subtotal    float64 `json:"subtotal"`
						Discount    float64 `json:"discount_amount"`
						TotalAmount float64 `json:"total_amount"`
					}
					if err := client.do("POST", "/v1/sales", headers, payload, &sale); err != nil {
						return err
					}

					fmt.Printf("sale recorded: %s\n", sale.InvoiceID)
					fmt.Printf("  subtotal: %.2f\n", sale.Subtotal)
					if sale.Discount > 0 {
						fmt.Printf("  discount: %.2f\n", sale.Discount)
					}
					fmt.Printf("  total:    %.2f\n", sale.TotalAmount)
					return nil
				},
			},
		},
	}
}
