// Package checkout runs the manual mobile-money confirmation: the buyer
// submits an email and a screenshot of the transfer, the screenshot is
// kept as a receipt and the cart is cleared. No payment is verified.
package checkout

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"elitcards/pkg/account"
	"elitcards/pkg/cart"
	"elitcards/pkg/logger"
	"elitcards/pkg/shop"
)

var (
	ErrEmptyCart             = errors.New("cart is empty")
	ErrEmailRequired         = errors.New("email address is required")
	ErrScreenshotRequired    = errors.New("payment screenshot is required")
	ErrUnsupportedScreenshot = errors.New("payment screenshot must be an image")
)

// Request is what the buyer submits on the payment form.
type Request struct {
	Email      string
	Screenshot []byte
}

// Confirmation describes a completed checkout.
type Confirmation struct {
	Reference   string          `json:"reference"`
	Email       string          `json:"email"`
	Items       []cart.Item     `json:"items"`
	Subtotal    decimal.Decimal `json:"subtotal"`
	TotalUSD    string          `json:"totalUsd"`
	TotalLocal  string          `json:"totalLocal"`
	ReceiptKey  string          `json:"receiptKey"`
	ConfirmedAt time.Time       `json:"confirmedAt"`
}

// Service wires the cart, the session and a receipt store together.
type Service struct {
	cart     *cart.Manager
	accounts *account.Manager
	receipts ReceiptStore
	log      *logger.Logger
	now      func() time.Time
}

// New returns a checkout Service.
func New(c *cart.Manager, a *account.Manager, r ReceiptStore, log *logger.Logger) *Service {
	return &Service{cart: c, accounts: a, receipts: r, log: log, now: time.Now}
}

// Confirm validates the request, stores the screenshot and clears the cart.
func (s *Service) Confirm(ctx context.Context, req Request) (Confirmation, error) {
	_, ok, err := s.accounts.CurrentUser(ctx)
	if err != nil {
		return Confirmation{}, err
	}
	if !ok {
		return Confirmation{}, shop.ErrUnauthenticated
	}

	summary, err := s.cart.Summary(ctx)
	if err != nil {
		return Confirmation{}, err
	}
	if summary.Count == 0 {
		return Confirmation{}, ErrEmptyCart
	}

	email := strings.TrimSpace(req.Email)
	if email == "" {
		return Confirmation{}, ErrEmailRequired
	}

	if len(req.Screenshot) == 0 {
		return Confirmation{}, ErrScreenshotRequired
	}
	mime := mimetype.Detect(req.Screenshot)
	if !strings.HasPrefix(mime.String(), "image/") {
		return Confirmation{}, fmt.Errorf("%w: got %s", ErrUnsupportedScreenshot, mime.String())
	}

	ref := uuid.NewString()
	key := "receipts/" + ref + mime.Extension()
	if err := s.receipts.Put(ctx, key, mime.String(), req.Screenshot); err != nil {
		return Confirmation{}, fmt.Errorf("store receipt: %w", err)
	}

	if err := s.cart.Clear(ctx); err != nil {
		return Confirmation{}, err
	}

	conf := Confirmation{
		Reference:   ref,
		Email:       email,
		Items:       summary.Items,
		Subtotal:    summary.Subtotal,
		TotalUSD:    summary.SubtotalUSD,
		TotalLocal:  summary.SubtotalLocal,
		ReceiptKey:  key,
		ConfirmedAt: s.now().UTC(),
	}
	s.log.Info(ctx, "payment confirmed", "reference", ref, "email", email, "items", summary.Count, "total_usd", summary.SubtotalUSD)
	return conf, nil
}
