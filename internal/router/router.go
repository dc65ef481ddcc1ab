// Package router arma el árbol de rutas completo: middlewares
// ambientales, gates de rol por grupo y el wiring de repos/services
// sobre el agregado local.
package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"

	_ "pochita-clinic/docs"
	"pochita-clinic/internal/adapters/backend/clinicapi"
	"pochita-clinic/internal/adapters/storage/aggregate"
	"pochita-clinic/internal/adapters/storage/kv"
	"pochita-clinic/internal/domain/adminusers"
	"pochita-clinic/internal/domain/appointments"
	"pochita-clinic/internal/domain/authn"
	"pochita-clinic/internal/domain/booking"
	"pochita-clinic/internal/domain/clients"
	"pochita-clinic/internal/domain/inventory"
	"pochita-clinic/internal/domain/pets"
	"pochita-clinic/internal/domain/treatments"
	"pochita-clinic/internal/domain/vets"
	"pochita-clinic/internal/middleware"
	"pochita-clinic/internal/notifications"
	"pochita-clinic/internal/observability/metrics"
	"pochita-clinic/internal/ports/auth"
)

type Options struct {
	Logger   *zap.Logger
	Sessions auth.Store // puede ser nil (modo dev con headers de debug)
	API      *clinicapi.Client
	Hub      *notifications.Hub
	Metrics  *metrics.HTTPMetrics

	// Backend del agregado local. Si es nil, se usa uno in-memory.
	KV kv.Store

	// Zona horaria para la grilla de slots y los follow-ups.
	Location *time.Location
}

func NewRouter(opts Options) http.Handler {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	backend := opts.KV
	if backend == nil {
		backend = kv.NewMemoryStore()
	}

	loc := opts.Location
	if loc == nil {
		loc = time.UTC
	}

	// Repos sobre el agregado local (un solo documento versionado).
	store := aggregate.NewStore(backend, loc)
	clientsSvc := clients.NewService(aggregate.NewClientsRepo(store))
	petsSvc := pets.NewService(aggregate.NewPetsRepo(store))
	vetsSvc := vets.NewService(aggregate.NewVetsRepo(store))
	apptsSvc := appointments.NewService(aggregate.NewAppointmentsRepo(store), loc)
	treatSvc := treatments.NewService(aggregate.NewTreatmentsRepo(store), apptsSvc, loc)
	invSvc := inventory.NewService(aggregate.NewInventoryRepo(store))

	// Services sobre el servicio clínico remoto.
	authSvc := authn.NewService(opts.API, opts.Sessions)
	bookingSvc := booking.NewService(opts.API, loc)
	adminSvc := adminusers.NewService(opts.API)

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(requestLogger(logger))
	if opts.Metrics != nil {
		r.Use(opts.Metrics.Middleware)
	}
	r.Use(middleware.AuthContext(opts.Sessions))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", metrics.Handler())
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	// Público: login/registro y catálogo remoto de vets/slots.
	authn.RegisterRoutes(r, authSvc)
	booking.RegisterPublicRoutes(r, bookingSvc)

	// Cualquier rol logueado.
	r.Group(func(gr chi.Router) {
		gr.Use(middleware.RequireAuth())

		booking.RegisterRoutes(gr, bookingSvc)
		vets.RegisterRoutes(gr, vetsSvc)
		inventory.RegisterRoutes(gr, invSvc)
	})

	// Mutaciones de agenda remota: cliente (y el vet cancela lo suyo).
	r.Group(func(gr chi.Router) {
		gr.Use(middleware.RequireRole(auth.RoleCliente, auth.RoleVeterinario, auth.RoleAdmin))

		booking.RegisterClientRoutes(gr, bookingSvc)
	})

	// Mostrador: registros locales, agenda local y caja.
	r.Group(func(gr chi.Router) {
		gr.Use(middleware.RequireRole(auth.RoleRecepcionista, auth.RoleAdmin))

		clients.RegisterRoutes(gr, clientsSvc)
		pets.RegisterRoutes(gr, petsSvc)
		appointments.RegisterRoutes(gr, apptsSvc)
		inventory.RegisterCounterRoutes(gr, invSvc)
		booking.RegisterManageRoutes(gr, bookingSvc)
	})

	// Consulta médica: transiciones de cita y tratamientos.
	r.Group(func(gr chi.Router) {
		gr.Use(middleware.RequireRole(auth.RoleVeterinario, auth.RoleAdmin))

		appointments.RegisterStatusRoutes(gr, apptsSvc)
		treatments.RegisterRoutes(gr, treatSvc)
	})

	// Solo admin.
	r.Group(func(gr chi.Router) {
		gr.Use(middleware.RequireRole(auth.RoleAdmin))

		adminusers.RegisterRoutes(gr, adminSvc)
	})

	// Avisos en tiempo real.
	if opts.Hub != nil {
		r.Group(func(gr chi.Router) {
			gr.Use(middleware.RequireAuth())
			gr.Get("/notifications/ws", opts.Hub.HandleWS)
		})
	}

	return r
}

// requestLogger loguea método, ruta, status y duración de cada request.
func requestLogger(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)

			logger.Info("http request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Duration("elapsed", time.Since(start)),
				zap.String("request_id", chimw.GetReqID(r.Context())),
			)
		})
	}
}
