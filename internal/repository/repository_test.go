package repository_test

import (
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/nikolayk812/storefront-demo/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"golang.org/x/text/currency"
)

func randomCartItem() domain.CartItem {
	return domain.CartItem{
		ID:        gofakeit.UUID(),
		ProductID: gofakeit.UUID(),
		Name:      gofakeit.ProductName(),
		Price:     randomMoney(),
		Qty:       gofakeit.IntRange(1, 10),
		CreatedAt: gofakeit.Date(),
	}
}

func randomMoney() domain.Money {
	return domain.Money{
		Amount:   decimal.NewFromFloat(gofakeit.Price(1, 100)),
		Currency: randomCurrency(),
	}
}

func randomCurrency() currency.Unit {
	var (
		result currency.Unit
		err    error
	)

	for {
		// tag is not a recognized currency
		result, err = currency.ParseISO(gofakeit.CurrencyShort())
		if err == nil {
			break
		}
	}

	return result
}

var cmpOpts = cmp.Options{
	cmp.Comparer(func(x, y currency.Unit) bool {
		return x.String() == y.String()
	}),
	cmp.Comparer(func(x, y decimal.Decimal) bool {
		return x.Equal(y)
	}),
	cmpopts.EquateEmpty(),
}

func assertCartItems(t *testing.T, expected, actual []domain.CartItem) {
	t.Helper()

	diff := cmp.Diff(expected, actual, cmpOpts)
	assert.Empty(t, diff)
}
