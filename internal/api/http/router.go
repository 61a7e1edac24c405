package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"myhustle-backend/internal/security"
	"myhustle-backend/internal/service"
)

type Services struct {
	Auth          service.AuthService
	Shops         service.ShopService
	Catalog       service.CatalogService
	Bookings      service.BookingService
	Orders        service.OrderService
	Analytics     service.AnalyticsService
	Notifications service.NotificationService
}

// NewRouter wires all handlers. Public routes are browseable without a
// token; everything else requires a valid access token.
func NewRouter(svcs Services, tokens security.TokenManager) *mux.Router {
	router := mux.NewRouter()
	router.Use(LoggingMiddleware)

	router.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods("GET")

	protected := router.NewRoute().Subrouter()
	protected.Use(AuthMiddleware(tokens))

	RegisterAuthRoutes(router, svcs.Auth)
	RegisterShopRoutes(router, protected, svcs.Shops)
	RegisterCatalogRoutes(router, protected, svcs.Catalog)
	RegisterBookingRoutes(protected, svcs.Bookings)
	RegisterOrderRoutes(protected, svcs.Orders)
	RegisterAnalyticsRoutes(protected, svcs.Analytics)
	RegisterNotificationRoutes(protected, svcs.Notifications)

	return router
}
