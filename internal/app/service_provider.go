package app

import (
	gameAPI "casino_settlement/internal/api/game"
	healthAPI "casino_settlement/internal/api/health"
	playerAPI "casino_settlement/internal/api/player"
	"casino_settlement/internal/concurrency"
	"casino_settlement/internal/config"
	"casino_settlement/internal/config/env"
	"casino_settlement/internal/logger"
	"casino_settlement/internal/metrics"
	"casino_settlement/internal/middleware"
	"casino_settlement/internal/repository"
	"casino_settlement/internal/repository/achievement_repo"
	"casino_settlement/internal/repository/game_repo"
	"casino_settlement/internal/repository/idempotency_repo"
	"casino_settlement/internal/repository/memory_repo"
	"casino_settlement/internal/repository/player_repo"
	"casino_settlement/internal/repository/round_repo"
	"casino_settlement/internal/repository/session_repo"
	"casino_settlement/internal/repository/stats_repo"
	"casino_settlement/internal/repository/transaction_repo"
	"casino_settlement/internal/rng"
	"casino_settlement/internal/service"
	"casino_settlement/internal/service/catalog"
	"casino_settlement/internal/service/hooks"
	"casino_settlement/internal/service/ledger"
	"casino_settlement/internal/service/outcome"
	"casino_settlement/internal/service/profile"
	"casino_settlement/internal/service/recorder"
	"casino_settlement/internal/service/settlement"
	"context"
	"log/slog"

	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2/manager"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
)

type ServiceProvider struct {
	//TXManager
	txManager trm.Manager

	// Database
	pgConfig config.PGConfig
	dbClient *pgxpool.Pool
	// store хранилище в памяти, когда PG_DSN не задан
	store *memory_repo.Store

	// Redis
	redisConfig config.RedisConfig
	redisClient *redis.Client

	// Repositories
	playerRepo      repository.PlayerRepository
	transactionRepo repository.TransactionRepository
	roundRepo       repository.RoundRepository
	sessionRepo     repository.SessionRepository
	gameRepo        repository.GameRepository
	idempotencyRepo repository.IdempotencyRepository
	achievementRepo repository.AchievementRepository
	statsRepo       *stats_repo.StatsRepo

	// Settlement bits
	settlementCfg config.SettlementConfig
	catalogCfg    config.CatalogConfig
	rngFactory    rng.Factory
	lockManager   *concurrency.LockManager
	ledgerServ    service.LedgerService
	recorderServ  service.RecorderService
	catalogServ   service.CatalogService
	statsHook     *hooks.StatsHook
	dispatcher    *hooks.Dispatcher
	settleServ    service.SettlementService
	profileServ   service.ProfileService

	// Handlers
	gameHand   *gameAPI.Handler
	playerHand *playerAPI.Handler
	healthHand *healthAPI.Handler

	// Router and HTTP config
	loggerCfg config.LoggerConfig
	jwtCfg    config.JWTConfig
	httpCfg   config.HTTPConfig
	router    chi.Router
}

func newServiceProvider() *ServiceProvider {
	return &ServiceProvider{}
}

func (sp *ServiceProvider) PgConfig() config.PGConfig {
	if sp.pgConfig == nil {
		cfg, err := env.NewPGConfig()
		if err != nil {
			panic("failed to get database config: " + err.Error())
		}
		sp.pgConfig = cfg
	}
	return sp.pgConfig
}

// DBClient nil, если Postgres не настроен
func (sp *ServiceProvider) DBClient(ctx context.Context) *pgxpool.Pool {
	if !sp.PgConfig().Enabled() {
		return nil
	}
	if sp.dbClient == nil {
		dbc, err := pgxpool.New(ctx, sp.PgConfig().DSN())
		if err != nil {
			panic("failed to create db pool: " + err.Error())
		}
		err = dbc.Ping(ctx)
		if err != nil {
			panic("failed to ping db: " + err.Error())
		}
		sp.dbClient = dbc
	}
	return sp.dbClient
}

func (sp *ServiceProvider) Store() *memory_repo.Store {
	if sp.store == nil {
		sp.store = memory_repo.NewStore()
	}
	return sp.store
}

func (sp *ServiceProvider) usePG() bool {
	return sp.PgConfig().Enabled()
}

func (sp *ServiceProvider) TXManager(ctx context.Context) trm.Manager {
	if sp.txManager == nil {
		if !sp.usePG() {
			sp.txManager = sp.Store()
			return sp.txManager
		}

		m, err := manager.New(trmpgx.NewDefaultFactory(sp.DBClient(ctx)))
		if err != nil {
			panic("failed to create tx manager: " + err.Error())
		}
		sp.txManager = m
	}

	return sp.txManager
}

func (sp *ServiceProvider) RedisConfig() config.RedisConfig {
	if sp.redisConfig == nil {
		cfg, err := env.NewRedisConfig()
		if err != nil {
			panic("failed to get redis config: " + err.Error())
		}
		sp.redisConfig = cfg
	}
	return sp.redisConfig
}

// RedisClient nil, если REDIS_ADDR не задан
func (sp *ServiceProvider) RedisClient(ctx context.Context) *redis.Client {
	cfg := sp.RedisConfig()
	if !cfg.Enabled() {
		return nil
	}
	if sp.redisClient == nil {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Address(),
			Password: cfg.Password(),
			DB:       cfg.DB(),
		})
		if err := client.Ping(ctx).Err(); err != nil {
			panic("failed to ping redis: " + err.Error())
		}
		sp.redisClient = client
	}
	return sp.redisClient
}

func (sp *ServiceProvider) PlayerRepo(ctx context.Context) repository.PlayerRepository {
	if sp.playerRepo == nil {
		if sp.usePG() {
			sp.playerRepo = player_repo.NewPlayerRepository(sp.DBClient(ctx))
		} else {
			sp.playerRepo = memory_repo.NewPlayerRepository(sp.Store())
		}
	}
	return sp.playerRepo
}

func (sp *ServiceProvider) TransactionRepo(ctx context.Context) repository.TransactionRepository {
	if sp.transactionRepo == nil {
		if sp.usePG() {
			sp.transactionRepo = transaction_repo.NewTransactionRepository(sp.DBClient(ctx))
		} else {
			sp.transactionRepo = memory_repo.NewTransactionRepository(sp.Store())
		}
	}
	return sp.transactionRepo
}

func (sp *ServiceProvider) RoundRepo(ctx context.Context) repository.RoundRepository {
	if sp.roundRepo == nil {
		if sp.usePG() {
			sp.roundRepo = round_repo.NewRoundRepository(sp.DBClient(ctx))
		} else {
			sp.roundRepo = memory_repo.NewRoundRepository(sp.Store())
		}
	}
	return sp.roundRepo
}

func (sp *ServiceProvider) SessionRepo(ctx context.Context) repository.SessionRepository {
	if sp.sessionRepo == nil {
		if sp.usePG() {
			sp.sessionRepo = session_repo.NewSessionRepository(sp.DBClient(ctx))
		} else {
			sp.sessionRepo = memory_repo.NewSessionRepository(sp.Store())
		}
	}
	return sp.sessionRepo
}

func (sp *ServiceProvider) GameRepo(ctx context.Context) repository.GameRepository {
	if sp.gameRepo == nil {
		if sp.usePG() {
			sp.gameRepo = game_repo.NewGameRepository(sp.DBClient(ctx))
		} else {
			sp.gameRepo = memory_repo.NewGameRepository(sp.Store())
		}
	}
	return sp.gameRepo
}

func (sp *ServiceProvider) IdempotencyRepo(ctx context.Context) repository.IdempotencyRepository {
	if sp.idempotencyRepo == nil {
		if sp.usePG() {
			sp.idempotencyRepo = idempotency_repo.NewIdempotencyRepository(sp.DBClient(ctx))
		} else {
			sp.idempotencyRepo = memory_repo.NewIdempotencyRepository(sp.Store())
		}
	}
	return sp.idempotencyRepo
}

func (sp *ServiceProvider) AchievementRepo(ctx context.Context) repository.AchievementRepository {
	if sp.achievementRepo == nil {
		if sp.usePG() {
			sp.achievementRepo = achievement_repo.NewAchievementRepository(sp.DBClient(ctx))
		} else {
			sp.achievementRepo = memory_repo.NewAchievementRepository(sp.Store())
		}
	}
	return sp.achievementRepo
}

func (sp *ServiceProvider) StatsRepo() *stats_repo.StatsRepo {
	if sp.statsRepo == nil {
		sp.statsRepo = stats_repo.NewStatsRepository(stats_repo.DefaultWindowSize)
	}
	return sp.statsRepo
}

func (sp *ServiceProvider) SettlementCfg() config.SettlementConfig {
	if sp.settlementCfg == nil {
		cfg, err := env.NewSettlementConfig()
		if err != nil {
			panic("failed to get settlement config: " + err.Error())
		}
		sp.settlementCfg = cfg
	}
	return sp.settlementCfg
}

func (sp *ServiceProvider) CatalogCfg() config.CatalogConfig {
	if sp.catalogCfg == nil {
		cfg, err := env.NewCatalogConfigFromYAML(env.CatalogPath())
		if err != nil {
			panic("failed to get game catalog: " + err.Error())
		}
		sp.catalogCfg = cfg
	}
	return sp.catalogCfg
}

// SeedCatalog записывает игры из YAML в репозиторий игр.
// С Postgres каталог может уже лежать в базе, поэтому отсутствие файла не фатально.
func (sp *ServiceProvider) SeedCatalog(ctx context.Context) error {
	if sp.usePG() && sp.catalogCfg == nil {
		cfg, err := env.NewCatalogConfigFromYAML(env.CatalogPath())
		if err != nil {
			slog.Warn("game catalog not seeded", "path", env.CatalogPath(), "error", err)
			return nil
		}
		sp.catalogCfg = cfg
	}

	repo := sp.GameRepo(ctx)
	for _, g := range sp.CatalogCfg().Games() {
		if err := repo.UpsertGame(ctx, g); err != nil {
			return err
		}
		sp.CatalogService(ctx).Invalidate(g.Slug)
	}
	slog.Info("game catalog seeded", "games", len(sp.CatalogCfg().Games()))
	return nil
}

func (sp *ServiceProvider) RNGFactory() rng.Factory {
	if sp.rngFactory == nil {
		cfg := sp.SettlementCfg()
		if cfg.RNGMode() == env.RNGModeHMAC {
			f := rng.NewHMACFactory(cfg.ServerSeed())
			slog.Info("hmac rng enabled", "commitment", f.Commitment())
			sp.rngFactory = f
		} else {
			sp.rngFactory = rng.NewSystemFactory()
		}
	}
	return sp.rngFactory
}

func (sp *ServiceProvider) LockManager() *concurrency.LockManager {
	if sp.lockManager == nil {
		sp.lockManager = concurrency.NewLockManager()
	}
	return sp.lockManager
}

func (sp *ServiceProvider) LedgerService(ctx context.Context) service.LedgerService {
	if sp.ledgerServ == nil {
		sp.ledgerServ = ledger.NewLedgerService(
			sp.TXManager(ctx),
			sp.PlayerRepo(ctx),
			sp.TransactionRepo(ctx),
			sp.IdempotencyRepo(ctx),
		)
	}
	return sp.ledgerServ
}

func (sp *ServiceProvider) RecorderService(ctx context.Context) service.RecorderService {
	if sp.recorderServ == nil {
		sp.recorderServ = recorder.NewRecorderService(sp.RoundRepo(ctx), sp.SessionRepo(ctx))
	}
	return sp.recorderServ
}

func (sp *ServiceProvider) CatalogService(ctx context.Context) service.CatalogService {
	if sp.catalogServ == nil {
		cfg := sp.SettlementCfg()
		sp.catalogServ = catalog.NewCatalogService(sp.GameRepo(ctx), cfg.GameCacheSize(), cfg.GameCacheTTL())
	}
	return sp.catalogServ
}

func (sp *ServiceProvider) StatsHook() *hooks.StatsHook {
	if sp.statsHook == nil {
		sp.statsHook = hooks.NewStatsHook(sp.StatsRepo())
	}
	return sp.statsHook
}

func (sp *ServiceProvider) Dispatcher(ctx context.Context) *hooks.Dispatcher {
	if sp.dispatcher == nil {
		list := []hooks.Hook{
			hooks.NewMetricsHook(),
			sp.StatsHook(),
			hooks.NewAchievementHook(sp.AchievementRepo(ctx)),
		}
		if client := sp.RedisClient(ctx); client != nil {
			list = append(list, hooks.NewNotifyHook(client))
		}
		sp.dispatcher = hooks.NewDispatcher(list...)
	}
	return sp.dispatcher
}

func (sp *ServiceProvider) SettlementService(ctx context.Context) service.SettlementService {
	if sp.settleServ == nil {
		sp.settleServ = settlement.NewSettlementService(
			sp.TXManager(ctx),
			sp.LedgerService(ctx),
			sp.RecorderService(ctx),
			sp.CatalogService(ctx),
			sp.IdempotencyRepo(ctx),
			outcome.NewRegistry(),
			sp.RNGFactory(),
			sp.LockManager(),
			sp.Dispatcher(ctx),
			sp.SettlementCfg().RecordPolicy(),
		)
	}
	return sp.settleServ
}

func (sp *ServiceProvider) ProfileService(ctx context.Context) service.ProfileService {
	if sp.profileServ == nil {
		sp.profileServ = profile.NewProfileService(sp.RoundRepo(ctx), sp.AchievementRepo(ctx))
	}
	return sp.profileServ
}

func (sp *ServiceProvider) GameHandler(ctx context.Context) *gameAPI.Handler {
	if sp.gameHand == nil {
		sp.gameHand = gameAPI.NewHandler(gameAPI.HandlerDeps{
			Serv:    sp.SettlementService(ctx),
			Catalog: sp.CatalogService(ctx),
			Stats:   sp.StatsHook(),
		})
	}
	return sp.gameHand
}

func (sp *ServiceProvider) PlayerHandler(ctx context.Context) *playerAPI.Handler {
	if sp.playerHand == nil {
		sp.playerHand = playerAPI.NewHandler(playerAPI.HandlerDeps{
			Serv:    sp.SettlementService(ctx),
			Profile: sp.ProfileService(ctx),
		})
	}
	return sp.playerHand
}

func (sp *ServiceProvider) HealthHandler(ctx context.Context) *healthAPI.Handler {
	if sp.healthHand == nil {
		deps := map[string]healthAPI.Pinger{}
		if pool := sp.DBClient(ctx); pool != nil {
			deps["postgres"] = pool
		}
		if client := sp.RedisClient(ctx); client != nil {
			deps["redis"] = healthAPI.PingFunc(func(ctx context.Context) error {
				return client.Ping(ctx).Err()
			})
		}
		sp.healthHand = healthAPI.NewHandler(deps)
	}
	return sp.healthHand
}

func (sp *ServiceProvider) LoggerCfg() config.LoggerConfig {
	if sp.loggerCfg == nil {
		cfg, err := env.NewLoggerConfig()
		if err != nil {
			panic("failed to get logger config: " + err.Error())
		}
		sp.loggerCfg = cfg
	}
	return sp.loggerCfg
}

func (sp *ServiceProvider) InitLogger() *slog.Logger {
	cfg := sp.LoggerCfg()
	return logger.Init(logger.Config{
		Level:       cfg.Level(),
		Format:      cfg.Format(),
		Environment: cfg.Environment(),
	})
}

func (sp *ServiceProvider) JWTCfg() config.JWTConfig {
	if sp.jwtCfg == nil {
		cfg, err := env.NewJWTConfig()
		if err != nil {
			panic("failed to get jwt config: " + err.Error())
		}
		sp.jwtCfg = cfg
	}
	return sp.jwtCfg
}

func (sp *ServiceProvider) HTTPCfg() config.HTTPConfig {
	if sp.httpCfg == nil {
		cfg, err := env.NewHTTPConfig()
		if err != nil {
			panic("failed to get http config: " + err.Error())
		}
		sp.httpCfg = cfg
	}

	return sp.httpCfg
}

func (sp *ServiceProvider) Router(ctx context.Context) chi.Router {
	if sp.router == nil {
		r := chi.NewRouter()

		r.Use(middleware.RequestID)
		r.Use(metrics.Middleware)

		// CORS middleware
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"*"},
			AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", middleware.PlayerIDHeader, middleware.RequestIDHeader},
			ExposedHeaders:   []string{middleware.RequestIDHeader},
			AllowCredentials: false,
			MaxAge:           60 * 15,
		}))

		r.Get("/health", sp.HealthHandler(ctx).Health)
		r.Handle("/metrics", promhttp.Handler())

		playerAuth := middleware.Player(sp.JWTCfg().AccessTokenSecretKey())

		// Game endpoints
		gameHandler := sp.GameHandler(ctx)
		r.Route("/games", func(rr chi.Router) {
			rr.Get("/", gameHandler.List)
			rr.Get("/{slug}/stats", gameHandler.Stats)
			rr.With(playerAuth).Post("/{slug}/actions", gameHandler.Act)
		})

		// Player endpoints
		playerHandler := sp.PlayerHandler(ctx)
		r.Route("/players/me", func(rr chi.Router) {
			rr.Use(playerAuth)
			rr.Get("/balance", playerHandler.Balance)
			rr.Get("/rounds", playerHandler.Rounds)
			rr.Get("/transactions", playerHandler.Transactions)
			rr.Get("/stats", playerHandler.Stats)
			rr.Get("/achievements", playerHandler.Achievements)
		})

		// Платёжный шлюз, только с сервисным токеном
		r.With(middleware.Service(sp.JWTCfg().ServiceTokenSecretKey())).
			Post("/internal/deposits", playerHandler.Deposit)

		sp.router = r
	}

	return sp.router
}

// Close освобождает соединения
func (sp *ServiceProvider) Close() {
	if sp.redisClient != nil {
		_ = sp.redisClient.Close()
	}
	if sp.dbClient != nil {
		sp.dbClient.Close()
	}
}
