package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.opentelemetry.io/otel/trace"

	_ "elitcards/docs"
	"elitcards/pkg/app"
	"elitcards/pkg/config"
	"elitcards/pkg/logger"
	"elitcards/pkg/otel"
)

// @title ElitCards API
// @version 1.0
// @description Storefront state for the ElitCards virtual card shop
// @host localhost:8443
// @BasePath /
func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.New(os.Stderr, logger.LevelError, "elitcards", nil).Error(context.Background(), "load config", "error", err)
		os.Exit(1)
	}

	log := logger.New(os.Stdout, logger.ParseLevel(cfg.LogLevel), "elitcards", otel.GetTraceID)
	defer log.Sync()

	tp, shutdown, err := otel.InitTracing(log, otel.Config{ServiceName: "elitcards", Host: cfg.OTELHost, Probability: cfg.OTELSampling})
	if err != nil {
		log.Error(context.Background(), "init tracing", "error", err)
		os.Exit(1)
	}
	defer shutdown(context.Background())

	a, err := app.Open(context.Background(), cfg, log)
	if err != nil {
		log.Error(context.Background(), "open store", "backend", cfg.Backend, "error", err)
		os.Exit(1)
	}
	defer a.Close()

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           newRouter(newServer(a, log), tp.Tracer("elitcards")),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info(context.Background(), "listening", "addr", cfg.Addr, "backend", cfg.Backend)
		var err error
		if cfg.TLSCert != "" && cfg.TLSKey != "" {
			err = srv.ListenAndServeTLS(cfg.TLSCert, cfg.TLSKey)
		} else {
			err = srv.ListenAndServe()
		}
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error(context.Background(), "server closed", "error", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error(ctx, "shutdown", "error", err)
	}
}

func newRouter(s *server, tracer trace.Tracer) *mux.Router {
	r := mux.NewRouter()
	r.Use(traceMiddleware(tracer))

	r.HandleFunc("/auth/register", s.registerHandler).Methods(http.MethodPost)
	r.HandleFunc("/auth/login", s.loginHandler).Methods(http.MethodPost)
	r.HandleFunc("/auth/logout", s.logoutHandler).Methods(http.MethodPost)
	r.HandleFunc("/auth/me", s.meHandler).Methods(http.MethodGet)
	r.HandleFunc("/exchange-rate", s.getRateHandler).Methods(http.MethodGet)
	r.HandleFunc("/exchange-rate", s.setRateHandler).Methods(http.MethodPut)

	guarded := r.NewRoute().Subrouter()
	guarded.Use(s.sessionMiddleware)
	guarded.HandleFunc("/products", s.listProductsHandler).Methods(http.MethodGet)
	guarded.HandleFunc("/products/{id}", s.getProductHandler).Methods(http.MethodGet)
	guarded.HandleFunc("/cart", s.getCartHandler).Methods(http.MethodGet)
	guarded.HandleFunc("/cart", s.clearCartHandler).Methods(http.MethodDelete)
	guarded.HandleFunc("/cart/items/{id}", s.addCartItemHandler).Methods(http.MethodPost)
	guarded.HandleFunc("/cart/items/{id}", s.removeCartItemHandler).Methods(http.MethodDelete)
	guarded.HandleFunc("/checkout", s.checkoutHandler).Methods(http.MethodPost)

	r.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)
	return r
}

func traceMiddleware(tracer trace.Tracer) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := otel.InjectTracing(r.Context(), tracer)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
