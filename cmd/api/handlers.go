package main

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"

	"elitcards/pkg/app"
	"elitcards/pkg/checkout"
	"elitcards/pkg/logger"
	"elitcards/pkg/otel"
	"elitcards/pkg/shop"
)

const maxScreenshotBytes = 10 << 20

type server struct {
	app      *app.App
	log      *logger.Logger
	validate *validator.Validate
}

func newServer(a *app.App, log *logger.Logger) *server {
	return &server{app: a, log: log, validate: validator.New()}
}

// registerRequest is the sign-up form.
type registerRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Confirm  string `json:"confirm" validate:"required"`
}

// loginRequest represents login credentials.
type loginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// rateRequest replaces the exchange rate.
type rateRequest struct {
	Rate float64 `json:"usdToGhs" validate:"gt=0"`
}

type rateResponse struct {
	Rate float64 `json:"usdToGhs"`
}

// userResponse is an account as the API shows it.
type userResponse struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	JoinDate string `json:"joinDate"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// listProductsHandler lists the catalog.
// @Summary List products
// @Produce json
// @Success 200 {array} shop.Product
// @Failure 401 {object} errorResponse
// @Router /products [get]
func (s *server) listProductsHandler(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "listProductsHandler")
	defer span.End()

	products, err := s.app.Catalog.List(ctx)
	if err != nil {
		s.fail(w, r, "list products", err)
		return
	}
	writeJSON(w, http.StatusOK, products)
}

// getProductHandler retrieves a product by ID.
// @Summary Get product
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} shop.Product
// @Failure 404 {object} errorResponse
// @Router /products/{id} [get]
func (s *server) getProductHandler(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "getProductHandler")
	defer span.End()

	id, ok := productID(w, r)
	if !ok {
		return
	}
	p, err := s.app.Catalog.Get(ctx, id)
	if err != nil {
		s.fail(w, r, "get product", err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// getCartHandler returns the resolved cart with totals.
// @Summary Get cart
// @Produce json
// @Success 200 {object} cart.Summary
// @Router /cart [get]
func (s *server) getCartHandler(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "getCartHandler")
	defer span.End()

	sum, err := s.app.Cart.Summary(ctx)
	if err != nil {
		s.fail(w, r, "cart summary", err)
		return
	}
	writeJSON(w, http.StatusOK, sum)
}

// addCartItemHandler adds one unit of a product.
// @Summary Add to cart
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} cart.Summary
// @Failure 404 {object} errorResponse
// @Router /cart/items/{id} [post]
func (s *server) addCartItemHandler(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "addCartItemHandler")
	defer span.End()

	id, ok := productID(w, r)
	if !ok {
		return
	}
	if err := s.app.Cart.Add(ctx, id); err != nil {
		s.fail(w, r, "add to cart", err)
		return
	}
	s.getCartHandler(w, r.WithContext(ctx))
}

// removeCartItemHandler removes a product line.
// @Summary Remove from cart
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} cart.Summary
// @Router /cart/items/{id} [delete]
func (s *server) removeCartItemHandler(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "removeCartItemHandler")
	defer span.End()

	id, ok := productID(w, r)
	if !ok {
		return
	}
	if err := s.app.Cart.Remove(ctx, id); err != nil {
		s.fail(w, r, "remove from cart", err)
		return
	}
	s.getCartHandler(w, r.WithContext(ctx))
}

// clearCartHandler empties the cart.
// @Summary Clear cart
// @Success 204
// @Router /cart [delete]
func (s *server) clearCartHandler(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "clearCartHandler")
	defer span.End()

	if err := s.app.Cart.Clear(ctx); err != nil {
		s.fail(w, r, "clear cart", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// registerHandler creates an account and logs it in.
// @Summary Register
// @Accept json
// @Produce json
// @Param user body registerRequest true "Registration"
// @Success 201 {object} userResponse
// @Failure 409 {object} errorResponse
// @Router /auth/register [post]
func (s *server) registerHandler(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "registerHandler")
	defer span.End()

	var req registerRequest
	if !s.decode(w, r, &req) {
		return
	}
	u, err := s.app.Accounts.SignUp(ctx, req.Name, req.Email, req.Password, req.Confirm)
	if err != nil {
		s.fail(w, r, "register", err)
		return
	}
	s.log.Info(ctx, "user registered", "email", u.Email)
	writeJSON(w, http.StatusCreated, publicUser(u))
}

// loginHandler authenticates and opens the session.
// @Summary Login
// @Accept json
// @Produce json
// @Param creds body loginRequest true "Credentials"
// @Success 200 {object} userResponse
// @Failure 401 {object} errorResponse
// @Router /auth/login [post]
func (s *server) loginHandler(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "loginHandler")
	defer span.End()

	var req loginRequest
	if !s.decode(w, r, &req) {
		return
	}
	u, err := s.app.Accounts.Login(ctx, req.Email, req.Password)
	if errors.Is(err, shop.ErrNotFound) {
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "invalid email or password"})
		return
	}
	if err != nil {
		s.fail(w, r, "login", err)
		return
	}
	writeJSON(w, http.StatusOK, publicUser(u))
}

// logoutHandler ends the session.
// @Summary Logout
// @Success 204
// @Router /auth/logout [post]
func (s *server) logoutHandler(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "logoutHandler")
	defer span.End()

	if err := s.app.Accounts.Logout(ctx); err != nil {
		s.fail(w, r, "logout", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// meHandler returns the current user.
// @Summary Current user
// @Produce json
// @Success 200 {object} userResponse
// @Failure 401 {object} errorResponse
// @Router /auth/me [get]
func (s *server) meHandler(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "meHandler")
	defer span.End()

	u, ok, err := s.app.Accounts.CurrentUser(ctx)
	if err != nil {
		s.fail(w, r, "current user", err)
		return
	}
	if !ok {
		s.fail(w, r, "current user", shop.ErrUnauthenticated)
		return
	}
	writeJSON(w, http.StatusOK, publicUser(u))
}

// getRateHandler returns the exchange rate.
// @Summary Get exchange rate
// @Produce json
// @Success 200 {object} rateResponse
// @Router /exchange-rate [get]
func (s *server) getRateHandler(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "getRateHandler")
	defer span.End()

	rate, err := s.app.Accounts.ExchangeRate(ctx)
	if err != nil {
		s.fail(w, r, "exchange rate", err)
		return
	}
	writeJSON(w, http.StatusOK, rateResponse{Rate: rate})
}

// setRateHandler replaces the exchange rate.
// @Summary Set exchange rate
// @Accept json
// @Produce json
// @Param rate body rateRequest true "Rate"
// @Success 200 {object} rateResponse
// @Failure 400 {object} errorResponse
// @Router /exchange-rate [put]
func (s *server) setRateHandler(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "setRateHandler")
	defer span.End()

	var req rateRequest
	if !s.decode(w, r, &req) {
		return
	}
	if err := s.app.Accounts.SetExchangeRate(ctx, req.Rate); err != nil {
		s.fail(w, r, "set exchange rate", err)
		return
	}
	writeJSON(w, http.StatusOK, rateResponse{Rate: req.Rate})
}

// checkoutHandler confirms a manual payment.
// @Summary Confirm payment
// @Accept mpfd
// @Produce json
// @Param email formData string true "Payer email"
// @Param screenshot formData file true "Payment screenshot"
// @Success 201 {object} checkout.Confirmation
// @Failure 400 {object} errorResponse
// @Router /checkout [post]
func (s *server) checkoutHandler(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "checkoutHandler")
	defer span.End()

	r.Body = http.MaxBytesReader(w, r.Body, maxScreenshotBytes+1<<20)
	if err := r.ParseMultipartForm(maxScreenshotBytes); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid form"})
		return
	}

	req := checkout.Request{Email: r.FormValue("email")}
	file, _, err := r.FormFile("screenshot")
	switch {
	case errors.Is(err, http.ErrMissingFile):
		// Confirm reports the missing screenshot.
	case err != nil:
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid screenshot"})
		return
	default:
		defer file.Close()
		req.Screenshot, err = io.ReadAll(io.LimitReader(file, maxScreenshotBytes))
		if err != nil {
			s.fail(w, r, "read screenshot", err)
			return
		}
	}

	conf, err := s.app.Checkout.Confirm(ctx, req)
	if err != nil {
		s.fail(w, r, "checkout", err)
		return
	}
	writeJSON(w, http.StatusCreated, conf)
}

// sessionMiddleware rejects requests while nobody is logged in.
func (s *server) sessionMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, ok, err := s.app.Accounts.CurrentUser(r.Context())
		if err != nil {
			s.fail(w, r, "session", err)
			return
		}
		if !ok {
			writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "please log in"})
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *server) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid json"})
		return false
	}
	if err := s.validate.Struct(v); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return false
	}
	return true
}

// fail maps domain errors onto status codes and logs anything unexpected.
func (s *server) fail(w http.ResponseWriter, r *http.Request, op string, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, shop.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, shop.ErrDuplicateEmail):
		status = http.StatusConflict
	case errors.Is(err, shop.ErrUnauthenticated):
		status = http.StatusUnauthorized
	case errors.Is(err, shop.ErrInvalidRate),
		errors.Is(err, shop.ErrPasswordMismatch),
		errors.Is(err, shop.ErrInvalidInput),
		errors.Is(err, checkout.ErrEmptyCart),
		errors.Is(err, checkout.ErrEmailRequired),
		errors.Is(err, checkout.ErrScreenshotRequired),
		errors.Is(err, checkout.ErrUnsupportedScreenshot):
		status = http.StatusBadRequest
	}
	if status == http.StatusInternalServerError {
		s.log.Error(r.Context(), op, "error", err)
		writeJSON(w, status, errorResponse{Error: "internal error"})
		return
	}
	writeJSON(w, status, errorResponse{Error: err.Error()})
}

func productID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid product id"})
		return 0, false
	}
	return id, true
}

// publicUser drops the stored password before a user leaves the process.
func publicUser(u shop.User) userResponse {
	return userResponse{Name: u.Name, Email: u.Email, JoinDate: u.JoinDate}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
