package router

import (
	"net/http"

	mem "animals-api/internal/adapters/storage/memory"
	_ "animals-api/internal/docs"
	"animals-api/internal/domain/animals"
	"animals-api/internal/domain/locomotion"
	"animals-api/internal/middleware"
	"animals-api/internal/platform/logger"
	"animals-api/internal/platform/metrics"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

const rootBanner = "API Animales + Desplazamientos OK!"

type Options struct {
	// Opcional: si es nil se crea un store con DefaultSeed().
	Store *mem.Store

	// Opcional: si es nil se usa logger.NewFromEnv().
	Logger logger.Logger

	// Opcional: si es nil se crea un registry propio sobre Store.
	Metrics *metrics.Metrics
}

func NewRouter(opts Options) http.Handler {
	store := opts.Store
	if store == nil {
		store = mem.NewStore(mem.DefaultSeed())
	}
	log := opts.Logger
	if log == nil {
		log = logger.NewFromEnv()
	}
	m := opts.Metrics
	if m == nil {
		m = metrics.New(store)
	}

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.AccessLog(log))
	r.Use(m.Middleware)
	r.Use(middleware.Recover(log))

	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(rootBanner))
	})
	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Method(http.MethodGet, "/metrics", m.Handler())
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	// Ambos repos comparten el lock del store.
	animalsSvc := animals.NewService(store.Animals())
	locomotionSvc := locomotion.NewService(store.LocomotionModes())

	animals.RegisterRoutes(r, animalsSvc)
	locomotion.RegisterRoutes(r, locomotionSvc)

	return r
}
