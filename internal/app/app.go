package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jimlawless/whereami"
	config "github.com/lumera-shop/catalog-backend/internal/cfg"
	v1Http "github.com/lumera-shop/catalog-backend/internal/delivery/v1/http"
	"github.com/lumera-shop/catalog-backend/internal/infrastructure/kafka"
	minioInfra "github.com/lumera-shop/catalog-backend/internal/infrastructure/minio"
	s3Repo "github.com/lumera-shop/catalog-backend/internal/repository/minio"
	"github.com/lumera-shop/catalog-backend/internal/repository/pgdb"
	pgdbConv "github.com/lumera-shop/catalog-backend/internal/repository/pgdb/converter/generated"
	"github.com/lumera-shop/catalog-backend/internal/repository/redis"
	redisConv "github.com/lumera-shop/catalog-backend/internal/repository/redis/converter/generated"
	"github.com/lumera-shop/catalog-backend/internal/usecase"
	"github.com/lumera-shop/catalog-backend/pkg/clients"
	"github.com/lumera-shop/catalog-backend/pkg/closer"
	"github.com/lumera-shop/catalog-backend/pkg/e"
	"github.com/lumera-shop/catalog-backend/pkg/logger"
	"github.com/lumera-shop/catalog-backend/pkg/postgres"
)

// App собирает зависимости сервиса каталога и управляет их жизненным циклом.
// Ресурсы регистрируются в closer и закрываются в порядке LIFO.
type App struct {
	cfg     *config.Config
	logger  logger.Logger
	closer  *closer.Closer
	httpSrv *v1Http.Server
}

func NewApp(cfg *config.Config, log logger.Logger) (*App, error) {
	cl := closer.NewCloser(0)

	db, err := initPGDB(log, cfg)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	cl.Add(func(ctx context.Context) error {
		db.Close()
		return nil
	})

	redisClient := clients.NewRedisClient(cfg.Redis)
	redisCtx, redisCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer redisCancel()
	if err := redisClient.Ping(redisCtx); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	cl.Add(func(ctx context.Context) error {
		return redisClient.Client.Close()
	})

	minioClient, err := clients.NewMinIOClient(cfg.Minio)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	minioCtx, minioCancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := clients.EnsureBucket(minioCtx, minioClient, cfg.Minio.BucketName); err != nil {
		minioCancel()
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	minioCancel()

	producer, err := kafka.NewProducer(log, cfg.Kafka)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	cl.Add(func(ctx context.Context) error {
		return producer.Close()
	})

	// Аналитика best-effort: отсутствие топика не мешает отдавать выдачу
	if err := producer.EnsureTopic(10 * time.Second); err != nil {
		log.Warnf("Failed to ensure kafka topic: %v", err)
	}

	prConv := pgdbConv.NewProductConverterImpl()
	aggConv := redisConv.NewRatingAggConverterImpl()

	categoryRepo := pgdb.NewCategoryRepo(db.Pool)
	productRepo := pgdb.NewProductRepo(db.Pool, prConv)
	variantRepo := pgdb.NewVariantRepo(db.Pool)
	reviewRepo := pgdb.NewReviewRepo(db.Pool)
	cacheRepo := redis.NewCacheRepo(redisClient, aggConv, cfg.Redis, log)

	mediaRepo := s3Repo.NewMediaRepo(minioClient, cfg.Minio)
	mediaInfra := minioInfra.NewMediaInfra(mediaRepo, log, cfg.Minio)

	catalogUC := usecase.NewCatalogUC(
		categoryRepo,
		productRepo,
		variantRepo,
		reviewRepo,
		cacheRepo,
		mediaInfra,
		producer,
		log,
		cfg.Catalog.ProductsPerPage,
	)

	r := chi.NewRouter()
	router := v1Http.NewRouter(r, log)
	router.Init(catalogUC)

	httpSrv := v1Http.NewServer(r, cfg.Http)
	cl.Add(func(ctx context.Context) error {
		return httpSrv.Stop(ctx)
	})

	return &App{
		cfg:     cfg,
		logger:  log,
		closer:  cl,
		httpSrv: httpSrv,
	}, nil
}

// Run запускает HTTP-сервер и блокируется до сигнала остановки
// или фатальной ошибки сервера.
func (a *App) Run() error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Infof("HTTP server started on port %s", a.cfg.Http.Port)
		if err := a.httpSrv.Run(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.logger.Errorf(err, "HTTP server failed")
			errCh <- err
		}
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	var appErr error
	select {
	case appErr = <-errCh:
		a.logger.Errorf(appErr, "HTTP server fatal error")
	case <-shutdown:
		a.logger.Infof("Received shutdown signal, stopping gracefully...")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := a.closer.Close(shutdownCtx); err != nil {
		a.logger.Warnf("Shutdown finished with errors: %v", err)
	} else {
		a.logger.Infof("Application shutdown complete")
	}

	return appErr
}

func initPGDB(logger logger.Logger, cfg *config.Config) (*postgres.PgDatabase, error) {
	db, err := postgres.Connect(cfg.Db)
	if err != nil {
		logger.Errorf(err, "failed to connect to database")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	if err := db.RunMigrations(logger); err != nil {
		logger.Errorf(err, "failed to run migrations")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	if err := db.Ping(); err != nil {
		logger.Errorf(err, "failed to ping database")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return db, nil
}
