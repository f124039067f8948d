// Package shop holds the storefront entities shared by the store and its
// accessors.
package shop

import "errors"

// Product is a virtual card offered in the catalog.
type Product struct {
	ID     int     `json:"id"`
	Title  string  `json:"title"`
	Number string  `json:"number"`
	Limit  string  `json:"limit"`
	Price  float64 `json:"price"`
	Image  string  `json:"image"`
}

// CartLine pairs a product with the quantity held in the cart.
type CartLine struct {
	ProductID int `json:"id"`
	Quantity  int `json:"quantity"`
}

// User is a registered storefront account.
type User struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	JoinDate string `json:"joinDate"`
}

// ExchangeRate converts USD prices into the local currency (GHS).
type ExchangeRate struct {
	USDToLocal float64 `json:"usdToGhs"`
}

var (
	// ErrNotFound indicates a product or user lookup miss.
	ErrNotFound = errors.New("not found")
	// ErrDuplicateEmail is returned when registering an email already in use.
	ErrDuplicateEmail = errors.New("email already registered")
	// ErrCorruptState indicates a persisted slot that could not be decoded.
	ErrCorruptState = errors.New("corrupt state")
	// ErrInvalidRate rejects non-positive or non-finite exchange rates.
	ErrInvalidRate = errors.New("exchange rate must be a positive number")
	// ErrUnauthenticated is returned when an operation needs a current user.
	ErrUnauthenticated = errors.New("not logged in")
	// ErrPasswordMismatch is returned when a password confirmation differs.
	ErrPasswordMismatch = errors.New("passwords do not match")
	// ErrInvalidInput covers malformed caller input.
	ErrInvalidInput = errors.New("invalid input")
)
