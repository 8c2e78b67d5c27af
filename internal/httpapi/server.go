// Package httpapi serves the catalog as JSON over HTTP.
package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/Nomet5/cake-app-sub003/internal/apperr"
	"github.com/Nomet5/cake-app-sub003/internal/category"
	"github.com/Nomet5/cake-app-sub003/internal/chef"
	chefDTO "github.com/Nomet5/cake-app-sub003/internal/chef/dto"
	"github.com/Nomet5/cake-app-sub003/internal/envelope"
	"github.com/Nomet5/cake-app-sub003/internal/product"
	productDTO "github.com/Nomet5/cake-app-sub003/internal/product/dto"
	"github.com/Nomet5/cake-app-sub003/pkg/logger"
	"github.com/Nomet5/cake-app-sub003/pkg/middleware"
)

// Pinger reports whether storage is reachable. *sqlx.DB satisfies it.
type Pinger interface {
	PingContext(ctx context.Context) error
}

type Options struct {
	AllowedOrigins []string
	RequestTimeout time.Duration
}

type Server struct {
	products   product.UseCase
	categories category.UseCase
	chefs      chef.UseCase
	db         Pinger
	opts       Options
	logger     logger.ZapLogger
}

func NewServer(products product.UseCase, categories category.UseCase, chefs chef.UseCase, db Pinger, opts Options, log logger.ZapLogger) *Server {
	if len(opts.AllowedOrigins) == 0 {
		opts.AllowedOrigins = []string{"*"}
	}
	if opts.RequestTimeout <= 0 {
		opts.RequestTimeout = 30 * time.Second
	}
	return &Server{
		products:   products,
		categories: categories,
		chefs:      chefs,
		db:         db,
		opts:       opts,
		logger:     log,
	}
}

func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(s.logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(s.opts.RequestTimeout))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: s.opts.AllowedOrigins,
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/health", s.health)

	r.Route("/api", func(r chi.Router) {
		r.Get("/products", s.listProducts)
		r.Get("/categories", s.listCategories)
		r.Get("/chefs", s.listChefs)
	})

	return r
}

// listProducts handles GET /api/products?search&category&categories&limit&page
func (s *Server) listProducts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	params := productDTO.ListParams{
		Search:     q.Get("search"),
		Category:   q.Get("category"),
		Categories: q.Get("categories"),
		Limit:      q.Get("limit"),
		Page:       q.Get("page"),
	}

	products, page, err := s.products.ListProducts(r.Context(), params)
	if err != nil {
		s.writeFailure(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, envelope.Success(products, page.Meta()))
}

// listCategories handles GET /api/categories
func (s *Server) listCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := s.categories.ListCategories(r.Context())
	if err != nil {
		s.writeFailure(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, envelope.Success(categories, envelope.Meta{Total: len(categories)}))
}

// listChefs handles GET /api/chefs?limit&page
func (s *Server) listChefs(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	chefs, page, err := s.chefs.ListChefs(r.Context(), chefDTO.ChefParams{Limit: q.Get("limit"), Page: q.Get("page")})
	if err != nil {
		s.writeFailure(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, envelope.Success(chefs, page.Meta()))
}

type healthStatus struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := s.db.PingContext(ctx); err != nil {
		s.logger.Error("health check failed", zap.Error(err))
		s.writeJSON(w, http.StatusInternalServerError,
			envelope.Failure[healthStatus]("", "UNAVAILABLE", envelope.Meta{}))
		return
	}
	s.writeJSON(w, http.StatusOK, envelope.Success(healthStatus{Status: "healthy", Database: "up"}, envelope.Meta{}))
}

// writeFailure answers every failure with 500 and a body that carries no
// storage detail.
func (s *Server) writeFailure(w http.ResponseWriter, err error) {
	s.writeJSON(w, http.StatusInternalServerError,
		envelope.Failure[any](apperr.PublicMessage(err, envelope.GenericMessage), apperr.Code(err), envelope.Meta{}))
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Error("failed to encode JSON response", zap.Error(err))
	}
}
