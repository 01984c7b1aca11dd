//POST /api/login          # Проверка логина водителя (публичный)
//GET  /api/routes         # Записи доставки с расшифрованным адресом
//GET  /api/v1/health      # Состояние сервиса и базы

package api

import (
	healthAPI "courierdesk/internal/app/server/api/http/health"
	loginAPI "courierdesk/internal/app/server/api/http/login"
	"courierdesk/internal/app/server/api/http/middleware/logger"
	routesAPI "courierdesk/internal/app/server/api/http/routes"
	"courierdesk/internal/app/server/config"
	"courierdesk/internal/app/server/crypto"
	"courierdesk/internal/domain/address"
	"courierdesk/internal/domain/delivery"
	"courierdesk/internal/domain/driver"
	"courierdesk/internal/infrastructure/directory"
	"courierdesk/internal/infrastructure/storage/postgres"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"golang.org/x/exp/slog"
)

type Handlers struct {
	Health *healthAPI.Handler
	Login  *loginAPI.Handler
	Routes *routesAPI.Handler
}

// Deps - всё, что собирается один раз при старте serve.
type Deps struct {
	Config  *config.Config
	Storage *postgres.Storage
	Codec   *crypto.FieldCodec
	Log     *slog.Logger
}

// New создает *chi.Mux со всеми операциями через huma.Register
func New(deps Deps) *chi.Mux {
	mux := chi.NewMux()

	cfg := huma.DefaultConfig("Courierdesk API", "1.0.0")
	// без $schema в теле: фронтенд ждет ровно {success, message, ...}
	cfg.CreateHooks = nil

	API := humachi.New(mux, cfg)

	h := handlers(deps)
	h.Health.SetupRoutes(API)
	h.Login.SetupRoutes(API)
	h.Routes.SetupRoutes(API)

	return mux
}

func handlers(deps Deps) *Handlers {
	log := deps.Log
	pool := deps.Storage.Pool()
	// у всех операций один набор: только логирование запросов
	logged := huma.Middlewares{logger.New(log).Middleware()}

	healthHandler := healthAPI.NewHandler(deps.Storage, log, logged)

	driverRepo := postgres.NewDriverRepository(pool, log)
	driverService := driver.NewService(driverRepo, driver.NewRequiredValidator(), log)
	loginHandler := loginAPI.NewHandler(driverService, deps.Config.DB, log, logged)

	resolver := NewResolver(deps.Config.Address, log)
	aggregator := delivery.NewAggregator(deps.Codec, resolver, deps.Config.Address.Concurrency, deps.Config.Display.Location(), log)
	orderRepo := postgres.NewOrderRepository(pool, log)
	deliveryService := delivery.NewService(orderRepo, aggregator, log)
	routesHandler := routesAPI.NewHandler(deliveryService, deps.Config.DB, log, logged)

	return &Handlers{
		Health: healthHandler,
		Login:  loginHandler,
		Routes: routesHandler,
	}
}

// NewResolver собирает цепочку справочников: сначала внутренний, затем публичный.
// Используется и сервером, и командой resolve.
func NewResolver(cfg config.Address, log *slog.Logger) *address.Resolver {
	client := directory.NewCachingHTTPClient()
	return address.NewResolver(cfg.LookupTimeout, log,
		directory.NewInternal(client, cfg.InternalURL),
		directory.NewPublic(client, cfg.PublicURL),
	)
}
