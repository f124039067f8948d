// Package cart manages the shopping cart stored in the cart slot.
package cart

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"elitcards/pkg/catalog"
	"elitcards/pkg/shop"
	"elitcards/pkg/store"
)

// Manager mutates the cart. Every call re-reads the store.
type Manager struct {
	store   *store.Store
	catalog *catalog.Catalog
}

// New returns a Manager over s that resolves prices through c.
func New(s *store.Store, c *catalog.Catalog) *Manager {
	return &Manager{store: s, catalog: c}
}

// Lines returns the cart in persisted order.
func (m *Manager) Lines(ctx context.Context) ([]shop.CartLine, error) {
	return m.store.Cart(ctx)
}

// Count returns the total quantity across all lines.
func (m *Manager) Count(ctx context.Context) (int, error) {
	lines, err := m.store.Cart(ctx)
	if err != nil {
		return 0, err
	}
	return countLines(lines), nil
}

// Subtotal sums price × quantity. Lines whose product has disappeared from
// the catalog contribute nothing.
func (m *Manager) Subtotal(ctx context.Context) (decimal.Decimal, error) {
	lines, err := m.store.Cart(ctx)
	if err != nil {
		return decimal.Zero, err
	}
	products, err := m.catalog.List(ctx)
	if err != nil {
		return decimal.Zero, err
	}
	total := decimal.Zero
	for _, line := range lines {
		if p, ok := catalog.Find(products, line.ProductID); ok {
			total = total.Add(Price(p).Mul(decimal.NewFromInt(int64(line.Quantity))))
		}
	}
	return total, nil
}

// Add puts one more unit of productID in the cart, creating the line if
// needed. Unknown products are rejected with shop.ErrNotFound.
func (m *Manager) Add(ctx context.Context, productID int) error {
	if _, err := m.catalog.Get(ctx, productID); err != nil {
		return err
	}
	return store.Update(ctx, m.store, store.SlotCart, func(lines []shop.CartLine) ([]shop.CartLine, error) {
		for i := range lines {
			if lines[i].ProductID == productID {
				lines[i].Quantity++
				return lines, nil
			}
		}
		return append(lines, shop.CartLine{ProductID: productID, Quantity: 1}), nil
	})
}

// Remove drops the whole line for productID. Removing a product that is not
// in the cart is a no-op.
func (m *Manager) Remove(ctx context.Context, productID int) error {
	return store.Update(ctx, m.store, store.SlotCart, func(lines []shop.CartLine) ([]shop.CartLine, error) {
		kept := make([]shop.CartLine, 0, len(lines))
		for _, line := range lines {
			if line.ProductID != productID {
				kept = append(kept, line)
			}
		}
		return kept, nil
	})
}

// Clear empties the cart.
func (m *Manager) Clear(ctx context.Context) error {
	return m.store.SetCart(ctx, []shop.CartLine{})
}

// ToLocalCurrency converts a USD amount with the stored exchange rate.
func (m *Manager) ToLocalCurrency(ctx context.Context, usd decimal.Decimal) (string, error) {
	rate, err := m.store.ExchangeRate(ctx)
	if err != nil {
		return "", err
	}
	return ConvertToLocal(usd, rate), nil
}

// FormatUSD renders amount in dollars.
func (m *Manager) FormatUSD(amount decimal.Decimal) string {
	return FormatUSD(amount)
}

// Item is a cart line resolved against the catalog.
type Item struct {
	Product   shop.Product    `json:"product"`
	Quantity  int             `json:"quantity"`
	LineTotal decimal.Decimal `json:"lineTotal"`
}

// Summary is what a cart page renders.
type Summary struct {
	Items         []Item          `json:"items"`
	Count         int             `json:"count"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	SubtotalUSD   string          `json:"subtotalUsd"`
	SubtotalLocal string          `json:"subtotalLocal"`
}

// Summary resolves every line and computes the totals from one snapshot of
// the cart, catalog and rate.
func (m *Manager) Summary(ctx context.Context) (Summary, error) {
	lines, err := m.store.Cart(ctx)
	if err != nil {
		return Summary{}, err
	}
	products, err := m.catalog.List(ctx)
	if err != nil {
		return Summary{}, err
	}
	rate, err := m.store.ExchangeRate(ctx)
	if err != nil {
		return Summary{}, err
	}

	sum := Summary{Items: make([]Item, 0, len(lines)), Count: countLines(lines), Subtotal: decimal.Zero}
	for _, line := range lines {
		p, ok := catalog.Find(products, line.ProductID)
		if !ok {
			continue
		}
		total := Price(p).Mul(decimal.NewFromInt(int64(line.Quantity)))
		sum.Items = append(sum.Items, Item{Product: p, Quantity: line.Quantity, LineTotal: total})
		sum.Subtotal = sum.Subtotal.Add(total)
	}
	sum.SubtotalUSD = FormatUSD(sum.Subtotal)
	sum.SubtotalLocal = ConvertToLocal(sum.Subtotal, rate)
	return sum, nil
}

func countLines(lines []shop.CartLine) int {
	n := 0
	for _, line := range lines {
		n += line.Quantity
	}
	return n
}

// String is used by the terminal client.
func (i Item) String() string {
	return fmt.Sprintf("%d × %s (%s)", i.Quantity, i.Product.Title, FormatUSD(i.LineTotal))
}
