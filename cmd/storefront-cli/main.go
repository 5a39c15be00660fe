// Package main is a terminal front end for the storefront API.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/nikolayk812/storefront-demo/internal/client"
	"github.com/nikolayk812/storefront-demo/internal/config"
	"github.com/shopspring/decimal"
	"github.com/spf13/pflag"
	"golang.org/x/text/currency"
)

const usage = `usage: storefront-cli [--api-base URL] <command> [args]

commands:
  products                  list products
  cart                      show the cart
  add <productId> [qty]     add a product (qty defaults to 1)
  update <itemId> <qty>     set the quantity of a cart line
  remove <itemId>           remove a cart line
  checkout --name N --email E
`

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, out io.Writer) error {
	fs := pflag.NewFlagSet("storefront-cli", pflag.ContinueOnError)
	fs.SetInterspersed(false)
	apiBase := fs.String("api-base", "", "base URL of the storefront API")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load("storefront-cli", nil)
	if err != nil {
		return fmt.Errorf("config.Load: %w", err)
	}
	if *apiBase != "" {
		cfg.APIBase = *apiBase
	}

	rest := fs.Args()
	if len(rest) == 0 {
		return errors.New(usage)
	}

	c := client.New(cfg.APIBase, nil)
	cmd, cmdArgs := rest[0], rest[1:]

	switch cmd {
	case "products":
		return listProducts(ctx, c, out)
	case "cart":
		return showCart(ctx, c, out)
	case "add":
		if len(cmdArgs) < 1 {
			return errors.New(usage)
		}
		qty := 1
		if len(cmdArgs) > 1 {
			if qty, err = strconv.Atoi(cmdArgs[1]); err != nil {
				return fmt.Errorf("qty[%s] is not a number", cmdArgs[1])
			}
		}
		if err := c.AddToCart(ctx, cmdArgs[0], qty); err != nil {
			return err
		}
		return showCart(ctx, c, out)
	case "update":
		if len(cmdArgs) != 2 {
			return errors.New(usage)
		}
		qty, err := strconv.Atoi(cmdArgs[1])
		if err != nil {
			return fmt.Errorf("qty[%s] is not a number", cmdArgs[1])
		}
		if err := c.UpdateItem(ctx, cmdArgs[0], qty); err != nil {
			return err
		}
		return showCart(ctx, c, out)
	case "remove":
		if len(cmdArgs) != 1 {
			return errors.New(usage)
		}
		if err := c.RemoveItem(ctx, cmdArgs[0]); err != nil {
			return err
		}
		return showCart(ctx, c, out)
	case "checkout":
		return checkout(ctx, c, cmdArgs, out)
	default:
		return fmt.Errorf("unknown command %q\n%s", cmd, usage)
	}
}

func listProducts(ctx context.Context, c *client.Client, out io.Writer) error {
	products, err := c.Products(ctx)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tPRICE")
	for _, p := range client.CleanProducts(products) {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", p.ID, p.Name, client.FormatAmount(p.Price, currency.INR))
	}
	return tw.Flush()
}

func showCart(ctx context.Context, c *client.Client, out io.Writer) error {
	cart, err := c.Cart(ctx)
	if err != nil {
		return err
	}

	if len(cart.Items) == 0 {
		fmt.Fprintln(out, "No items in cart.")
		return nil
	}

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ITEM\tNAME\tPRICE\tQTY\tSUBTOTAL")
	for _, it := range cart.Items {
		subtotal := it.Price.Mul(decimalFromInt(it.Qty))
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%s\n",
			it.ID, it.Name, client.FormatAmount(it.Price, currency.INR), it.Qty, client.FormatAmount(subtotal, currency.INR))
	}
	fmt.Fprintf(tw, "\t\t\tTOTAL\t%s\n", client.FormatAmount(cart.Total, currency.INR))
	return tw.Flush()
}

func checkout(ctx context.Context, c *client.Client, args []string, out io.Writer) error {
	fs := pflag.NewFlagSet("checkout", pflag.ContinueOnError)
	name := fs.String("name", "", "customer name")
	email := fs.String("email", "", "customer email")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *name == "" || *email == "" {
		return errors.New("checkout needs --name and --email")
	}

	cart, err := c.Cart(ctx)
	if err != nil {
		return err
	}

	receipt, err := c.Checkout(ctx, cart.Items, *name, *email)
	if err != nil {
		return err
	}

	fmt.Fprintln(out, "Order Receipt")
	fmt.Fprintln(out, "Thank you for shopping with us!")
	fmt.Fprintf(out, "Order ID: %s\n", receipt.OrderID)
	fmt.Fprintf(out, "Total: %s\n", client.FormatAmount(receipt.Total, currency.INR))
	fmt.Fprintf(out, "Time: %s\n", receipt.Timestamp)
	return nil
}

func decimalFromInt(n int) decimal.Decimal {
	return decimal.NewFromInt(int64(n))
}
