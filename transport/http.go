package transport

import (
	"net/http"

	eventrequestapp "github.com/browbeat/event-marketplace/application/eventrequest"
	reviewapp "github.com/browbeat/event-marketplace/application/review"
	userapp "github.com/browbeat/event-marketplace/application/user"
	vendorapp "github.com/browbeat/event-marketplace/application/vendor"
	"github.com/browbeat/event-marketplace/cmd/config"
	"github.com/browbeat/event-marketplace/constant"
	redisrepo "github.com/browbeat/event-marketplace/repository/redis"
	"github.com/gorilla/mux"
	httpSwagger "github.com/swaggo/http-swagger"
)

type RestHandler struct {
	UserApp         userapp.UserApp
	VendorApp       vendorapp.VendorApp
	EventRequestApp eventrequestapp.EventRequestApp
	ReviewApp       reviewapp.ReviewApp
}

func NewTransport(cfg *config.Config, cacheRepo redisrepo.Repository, UserApp userapp.UserApp, VendorApp vendorapp.VendorApp, EventRequestApp eventrequestapp.EventRequestApp, ReviewApp reviewapp.ReviewApp) http.Handler {
	router := mux.NewRouter()
	router.NotFoundHandler = http.HandlerFunc(notFoundHandler)
	router.MethodNotAllowedHandler = http.HandlerFunc(methodNotAllowedHandler)

	rh := &RestHandler{
		UserApp:         UserApp,
		VendorApp:       VendorApp,
		EventRequestApp: EventRequestApp,
		ReviewApp:       ReviewApp,
	}

	// Swagger UI
	router.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)
	router.HandleFunc("/healthz", rh.Health).Methods(http.MethodGet)

	api := router.PathPrefix("/api").Subrouter()

	// users and sessions
	api.HandleFunc("/users", rh.CreateUser).Methods(http.MethodPost)
	api.HandleFunc("/users/{id:[0-9]+}", rh.GetUser).Methods(http.MethodGet)
	api.HandleFunc("/users/{id:[0-9]+}", rh.UpdateUser).Methods(http.MethodPatch)
	api.HandleFunc("/users/{id:[0-9]+}/vendor", rh.GetUserVendor).Methods(http.MethodGet)
	api.Handle("/auth/login", NewRateLimiter(cfg.RateLimit).Wrap(http.HandlerFunc(rh.Login))).Methods(http.MethodPost)
	api.HandleFunc("/auth/logout", rh.Logout).Methods(http.MethodPost)
	api.HandleFunc("/auth/me", rh.Me).Methods(http.MethodGet)

	// vendors; featured must be registered before the id route
	api.HandleFunc("/vendors", rh.ListVendors).Methods(http.MethodGet)
	api.HandleFunc("/vendors/featured", rh.ListFeaturedVendors).Methods(http.MethodGet)
	api.HandleFunc("/vendors/{id:[0-9]+}", rh.GetVendor).Methods(http.MethodGet)
	api.HandleFunc("/vendors", rh.CreateVendor).Methods(http.MethodPost)
	api.HandleFunc("/vendors/{id:[0-9]+}", rh.UpdateVendor).Methods(http.MethodPatch)

	// event requests
	api.HandleFunc("/event-requests", rh.ListEventRequests).Methods(http.MethodGet)
	api.HandleFunc("/event-requests/{id:[0-9]+}", rh.GetEventRequest).Methods(http.MethodGet)
	api.HandleFunc("/event-requests", rh.CreateEventRequest).Methods(http.MethodPost)
	api.HandleFunc("/event-requests/{id:[0-9]+}", rh.UpdateEventRequest).Methods(http.MethodPatch)

	// reviews
	api.HandleFunc("/reviews", rh.ListReviews).Methods(http.MethodGet)
	api.HandleFunc("/reviews", rh.CreateReview).Methods(http.MethodPost)

	// reference data
	api.HandleFunc("/categories", rh.ListCategories).Methods(http.MethodGet)
	api.HandleFunc("/event-types", rh.ListEventTypes).Methods(http.MethodGet)

	api.NotFoundHandler = http.HandlerFunc(notFoundHandler)
	api.MethodNotAllowedHandler = http.HandlerFunc(methodNotAllowedHandler)
	api.Use(AuthMiddleware(UserApp))
	api.Use(NewCacheMiddleware(cacheRepo, cfg.Cache).Middleware)

	// internal routes, called by the notifier
	internal := router.PathPrefix("/internal/v1").Subrouter()
	internal.HandleFunc("/event-requests/{id:[0-9]+}/complete", rh.CompleteEventRequest).Methods(http.MethodPost)
	internal.Use(InternalMiddleware(cfg.Auth.InternalAPIKey))

	if cfg.Server.StaticDir != "" {
		router.PathPrefix("/").Handler(newSPAHandler(cfg.Server.StaticDir))
	}

	// logging and CORS wrap the whole router so preflights and 404s pass through them
	return LoggingMiddleware()(CORSMiddleware(cfg.Server.AllowedOrigins)(router))
}

// Health handler
// @Summary Health check
// @Tags System
// @Produce json
// @Success 200 {object} map[string]string
// @Router /healthz [get]
func (s *RestHandler) Health(w http.ResponseWriter, _ *http.Request) {
	writeSuccess(w, map[string]string{"status": "ok"})
}

// ListCategories handler
// @Summary List vendor categories
// @Tags Reference
// @Produce json
// @Success 200 {array} string
// @Router /api/categories [get]
func (s *RestHandler) ListCategories(w http.ResponseWriter, _ *http.Request) {
	writeSuccess(w, constant.VendorCategories)
}

// ListEventTypes handler
// @Summary List event types
// @Tags Reference
// @Produce json
// @Success 200 {array} string
// @Router /api/event-types [get]
func (s *RestHandler) ListEventTypes(w http.ResponseWriter, _ *http.Request) {
	writeSuccess(w, constant.EventTypes)
}
