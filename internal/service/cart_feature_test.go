package service_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/cucumber/godog"
	"github.com/nikolayk812/storefront-demo/internal/domain"
	"github.com/nikolayk812/storefront-demo/internal/repository"
	"github.com/nikolayk812/storefront-demo/internal/service"
	"github.com/shopspring/decimal"
)

type cartTestContext struct {
	svc      *service.CartService
	err      error
	outcome  service.Outcome
	receipts []domain.Receipt
}

func (c *cartTestContext) reset() {
	c.svc = nil
	c.err = nil
	c.outcome = 0
	c.receipts = nil
}

func (c *cartTestContext) theSampleCatalog() error {
	catalog, err := repository.NewCatalog(repository.SampleProducts())
	if err != nil {
		return err
	}
	c.svc = service.New(repository.NewCart(repository.NewStore()), catalog)
	return nil
}

func (c *cartTestContext) iAddProductWithQty(ctx context.Context, productID string, qty int) error {
	c.err = c.svc.AddItem(ctx, productID, qty)
	return nil
}

func (c *cartTestContext) iUpdateTheLineForProductToQty(ctx context.Context, productID string, qty int) error {
	item, err := c.lineFor(ctx, productID)
	if err != nil {
		return err
	}
	c.outcome, c.err = c.svc.UpdateItem(ctx, item.ID, qty)
	return nil
}

func (c *cartTestContext) iUpdateLineToQty(ctx context.Context, itemID string, qty int) error {
	c.outcome, c.err = c.svc.UpdateItem(ctx, itemID, qty)
	return nil
}

func (c *cartTestContext) iRemoveTheLineForProduct(ctx context.Context, productID string) error {
	item, err := c.lineFor(ctx, productID)
	if err != nil {
		return err
	}
	c.outcome, c.err = c.svc.RemoveItem(ctx, item.ID)
	return nil
}

func (c *cartTestContext) iRemoveLine(ctx context.Context, itemID string) error {
	c.outcome, c.err = c.svc.RemoveItem(ctx, itemID)
	return nil
}

func (c *cartTestContext) iCheckOut(ctx context.Context) error {
	receipt, err := c.svc.Checkout(ctx)
	if err != nil {
		return fmt.Errorf("checkout: %w", err)
	}
	c.receipts = append(c.receipts, receipt)
	return nil
}

func (c *cartTestContext) theCartHasLines(ctx context.Context, n int) error {
	cart, err := c.svc.GetCart(ctx)
	if err != nil {
		return err
	}
	if len(cart.Items) != n {
		return fmt.Errorf("expected %d lines, got %d", n, len(cart.Items))
	}
	return nil
}

func (c *cartTestContext) theLineForProductHasQty(ctx context.Context, productID string, qty int) error {
	item, err := c.lineFor(ctx, productID)
	if err != nil {
		return err
	}
	if item.Qty != qty {
		return fmt.Errorf("expected qty %d, got %d", qty, item.Qty)
	}
	return nil
}

func (c *cartTestContext) theCartTotalIs(ctx context.Context, total int64) error {
	cart, err := c.svc.GetCart(ctx)
	if err != nil {
		return err
	}
	if !cart.Total.Amount.Equal(decimal.NewFromInt(total)) {
		return fmt.Errorf("expected total %d, got %s", total, cart.Total.Amount)
	}
	return nil
}

func (c *cartTestContext) theCartIsEmpty(ctx context.Context) error {
	if err := c.theCartHasLines(ctx, 0); err != nil {
		return err
	}
	return c.theCartTotalIs(ctx, 0)
}

func (c *cartTestContext) theReceiptTotalIs(total int64) error {
	if len(c.receipts) == 0 {
		return errors.New("no receipt")
	}
	last := c.receipts[len(c.receipts)-1]
	if !last.Total.Amount.Equal(decimal.NewFromInt(total)) {
		return fmt.Errorf("expected receipt total %d, got %s", total, last.Total.Amount)
	}
	return nil
}

func (c *cartTestContext) theLastTwoOrderIDsDiffer() error {
	if len(c.receipts) < 2 {
		return fmt.Errorf("expected at least 2 receipts, got %d", len(c.receipts))
	}
	a, b := c.receipts[len(c.receipts)-2], c.receipts[len(c.receipts)-1]
	if a.OrderID == b.OrderID {
		return fmt.Errorf("order id %s was issued twice", a.OrderID)
	}
	return nil
}

func (c *cartTestContext) theOutcomeIs(want string) error {
	if c.err != nil {
		return fmt.Errorf("expected success, got %w", c.err)
	}
	if c.outcome.String() != want {
		return fmt.Errorf("expected outcome %s, got %s", want, c.outcome)
	}
	return nil
}

func (c *cartTestContext) theOperationFailsWith(msg string) error {
	if c.err == nil {
		return errors.New("expected an error")
	}
	if !strings.Contains(c.err.Error(), msg) {
		return fmt.Errorf("expected error containing %q, got %q", msg, c.err)
	}
	return nil
}

func (c *cartTestContext) lineFor(ctx context.Context, productID string) (domain.CartItem, error) {
	cart, err := c.svc.GetCart(ctx)
	if err != nil {
		return domain.CartItem{}, err
	}
	for _, item := range cart.Items {
		if item.ProductID == productID {
			return item, nil
		}
	}
	return domain.CartItem{}, fmt.Errorf("no line for product %s", productID)
}

func InitializeScenario(ctx *godog.ScenarioContext) {
	tc := &cartTestContext{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		tc.reset()
		return ctx, nil
	})

	// Given steps
	ctx.Step(`^the sample catalog$`, tc.theSampleCatalog)

	// When steps
	ctx.Step(`^I add product "([^"]*)" with qty (-?\d+)$`, tc.iAddProductWithQty)
	ctx.Step(`^I update the line for product "([^"]*)" to qty (-?\d+)$`, tc.iUpdateTheLineForProductToQty)
	ctx.Step(`^I update line "([^"]*)" to qty (-?\d+)$`, tc.iUpdateLineToQty)
	ctx.Step(`^I remove the line for product "([^"]*)"$`, tc.iRemoveTheLineForProduct)
	ctx.Step(`^I remove line "([^"]*)"$`, tc.iRemoveLine)
	ctx.Step(`^I check out$`, tc.iCheckOut)

	// Then steps
	ctx.Step(`^the cart has (\d+) lines?$`, tc.theCartHasLines)
	ctx.Step(`^the line for product "([^"]*)" has qty (-?\d+)$`, tc.theLineForProductHasQty)
	ctx.Step(`^the cart total is (-?\d+)$`, tc.theCartTotalIs)
	ctx.Step(`^the cart is empty$`, tc.theCartIsEmpty)
	ctx.Step(`^the receipt total is (-?\d+)$`, tc.theReceiptTotalIs)
	ctx.Step(`^the last two order ids differ$`, tc.theLastTwoOrderIDsDiffer)
	ctx.Step(`^the outcome is "([^"]*)"$`, tc.theOutcomeIs)
	ctx.Step(`^the operation fails with "([^"]*)"$`, tc.theOperationFailsWith)
}

func TestFeatures(t *testing.T) {
	suite := godog.TestSuite{
		ScenarioInitializer: InitializeScenario,
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"features/cart.feature"},
			TestingT: t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}
