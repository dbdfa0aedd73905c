package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mvillaluz/tindera-backend/api/controllers"
	"github.com/mvillaluz/tindera-backend/api/middleware"
	cartsvc "github.com/mvillaluz/tindera-backend/internal/cart"
	catalogsvc "github.com/mvillaluz/tindera-backend/internal/catalog"
	checkoutsvc "github.com/mvillaluz/tindera-backend/internal/checkout"
	ptsvc "github.com/mvillaluz/tindera-backend/internal/paymenttypes"
	txsvc "github.com/mvillaluz/tindera-backend/internal/transactions"
	"github.com/mvillaluz/tindera-backend/pkg/config"
	"github.com/mvillaluz/tindera-backend/pkg/logger"
	"github.com/mvillaluz/tindera-backend/pkg/metrics"
	pkgredis "github.com/mvillaluz/tindera-backend/pkg/redis"
	"github.com/mvillaluz/tindera-backend/pkg/session"
)

// Deps carries everything the HTTP surface needs.
type Deps struct {
	Config       *config.Config
	Logger       *logger.Logger
	DB           controllers.Pinger
	Redis        *pkgredis.Client
	Sessions     *session.Manager
	HTTPMetrics  *metrics.HTTPMetrics
	PromGatherer prometheus.Gatherer

	Catalog      catalogsvc.Service
	PaymentTypes ptsvc.Service
	Cart         cartsvc.Service
	Checkout     checkoutsvc.Service
	Transactions txsvc.Service
}

func NewRouter(deps Deps) http.Handler {
	cfg := deps.Config
	logg := deps.Logger

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(),
		middleware.Metrics(deps.HTTPMetrics),
	)

	r.Route("/health", func(r chi.Router) {
		pingers := map[string]controllers.Pinger{
			"database": deps.DB,
		}
		if deps.Redis != nil {
			pingers["redis"] = deps.Redis
		}
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, pingers))
	})

	if deps.PromGatherer != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(deps.PromGatherer, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/sessions", controllers.OpenSession(deps.Sessions, logg))

		// Catalog management is open to the back office; no terminal
		// session is required.
		r.Route("/categories", func(r chi.Router) {
			r.Get("/", controllers.ListCategories(deps.Catalog, logg))
			r.Post("/", controllers.CreateCategory(deps.Catalog, logg))
			r.Get("/{categoryId}", controllers.GetCategory(deps.Catalog, logg))
			r.Put("/{categoryId}", controllers.UpdateCategory(deps.Catalog, logg))
			r.Delete("/{categoryId}", controllers.DeleteCategory(deps.Catalog, logg))
		})

		r.Route("/subcategories", func(r chi.Router) {
			r.Get("/", controllers.ListSubcategories(deps.Catalog, logg))
			r.Post("/", controllers.CreateSubcategory(deps.Catalog, logg))
			r.Get("/{subcategoryId}", controllers.GetSubcategory(deps.Catalog, logg))
			r.Put("/{subcategoryId}", controllers.UpdateSubcategory(deps.Catalog, logg))
			r.Delete("/{subcategoryId}", controllers.DeleteSubcategory(deps.Catalog, logg))
		})

		r.Route("/items", func(r chi.Router) {
			r.Get("/", controllers.ListItems(deps.Catalog, logg))
			r.Post("/", controllers.CreateItem(deps.Catalog, logg))
			r.Get("/{itemId}", controllers.GetItem(deps.Catalog, logg))
			r.Put("/{itemId}", controllers.UpdateItem(deps.Catalog, logg))
			r.Delete("/{itemId}", controllers.DeleteItem(deps.Catalog, logg))
		})

		r.Get("/catalog/menu", controllers.Menu(deps.Catalog, logg))

		r.Route("/payment-types", func(r chi.Router) {
			r.Get("/", controllers.ListPaymentTypes(deps.PaymentTypes, logg))
			r.Post("/", controllers.CreatePaymentType(deps.PaymentTypes, logg))
			r.Get("/{paymentTypeId}", controllers.GetPaymentType(deps.PaymentTypes, logg))
			r.Put("/{paymentTypeId}", controllers.UpdatePaymentType(deps.PaymentTypes, logg))
			r.Delete("/{paymentTypeId}", controllers.DeletePaymentType(deps.PaymentTypes, logg))
		})

		// Terminal routes. Each session carries its own cart, so these
		// require a session token.
		r.Group(func(r chi.Router) {
			r.Use(middleware.SessionAuth(deps.Sessions, logg))

			r.Route("/cart", func(r chi.Router) {
				r.Get("/", controllers.ViewCart(deps.Cart, logg))
				r.Delete("/", controllers.ClearCart(deps.Cart, logg))
				r.Post("/items", controllers.AddCartItem(deps.Cart, logg))
				r.Post("/items/remove", controllers.RemoveCartItem(deps.Cart, logg))
				r.Post("/items/remove-all", controllers.RemoveCartLine(deps.Cart, logg))
			})

			var store pkgredis.IdempotencyStore
			if deps.Redis != nil {
				store = deps.Redis
			}
			r.With(middleware.Idempotency(store, logg)).
				Post("/checkout", controllers.Checkout(deps.Checkout, logg))

			r.Route("/transactions", func(r chi.Router) {
				r.Get("/", controllers.ListTransactions(deps.Transactions, logg))
				r.Get("/{transactionId}", controllers.GetTransaction(deps.Transactions, logg))
			})
		})
	})

	return r
}
