package app

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	config "github.com/DRSN-tech/catalog-admin/internal/cfg"
	v1Grpc "github.com/DRSN-tech/catalog-admin/internal/delivery/v1/grpc"
	v1Http "github.com/DRSN-tech/catalog-admin/internal/delivery/v1/http"
	"github.com/DRSN-tech/catalog-admin/internal/infrastructure/idgen"
	"github.com/DRSN-tech/catalog-admin/internal/infrastructure/kafka"
	"github.com/DRSN-tech/catalog-admin/internal/repository/memory"
	"github.com/DRSN-tech/catalog-admin/internal/repository/redis"
	redisConv "github.com/DRSN-tech/catalog-admin/internal/repository/redis/converter"
	"github.com/DRSN-tech/catalog-admin/internal/usecase"
	"github.com/DRSN-tech/catalog-admin/pkg/clients"
	"github.com/DRSN-tech/catalog-admin/pkg/closer"
	"github.com/DRSN-tech/catalog-admin/pkg/e"
	"github.com/DRSN-tech/catalog-admin/pkg/logger"
	"github.com/go-chi/chi/v5"
	"github.com/jimlawless/whereami"
	"golang.org/x/sync/errgroup"
)

type App struct {
	cfg     *config.Config
	logger  logger.Logger
	closer  *closer.Closer
	httpSrv *v1Http.Server
	grpcSrv *v1Grpc.GRPCServer
}

// NewApp собирает зависимости. Ресурсы регистрируются в closer в порядке создания,
// поэтому закрываются в обратном: серверы, outbox, продюсер, Redis.
func NewApp(cfg *config.Config, logger logger.Logger) (*App, error) {
	cl := closer.NewCloser(cfg.Admin.ShutdownTimeout / 2)

	redisClient := clients.NewRedisClient(cfg.Redis)
	redisCtx, redisCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer redisCancel()
	if err := redisClient.Ping(redisCtx); err != nil {
		_ = redisClient.Close()
		logger.Errorf(err, "failed to connect to redis")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	cl.AddSimple("redis", redisClient.Close)

	cacheRepo := redis.NewCacheRepo(redisClient, redisConv.NewProductConverterImpl(), cfg.Redis, logger)
	catalogRepo := memory.NewCatalogRepo(nil, nil)

	producer, err := initProducer(cfg.Kafka, logger, cl)
	if err != nil {
		_ = cl.Close(context.Background())
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	outbox := kafka.NewOutboxWorker(logger, producer, cfg.Outbox)
	outbox.Start(context.Background())
	cl.Add("outbox", outbox.Stop)

	catalogUC := usecase.NewCatalogUC(catalogRepo, cacheRepo, outbox, logger)
	adminUC := usecase.NewAdminUC(catalogUC, idgen.New(cfg.Admin), logger)

	grpcSrv := v1Grpc.NewGRPCServer(cfg.Grpc, logger)
	grpcSrv.RegisterServices()
	cl.Add("grpc", grpcSrv.Stop)

	r := chi.NewRouter()
	v1Http.NewRouter(r, logger).Init(adminUC, catalogUC)
	httpSrv := v1Http.NewServer(r, cfg.Http)
	cl.Add("http", httpSrv.Stop)

	return &App{
		cfg:     cfg,
		logger:  logger,
		closer:  cl,
		httpSrv: httpSrv,
		grpcSrv: grpcSrv,
	}, nil
}

func initProducer(cfg *config.KafkaCfg, logger logger.Logger, cl *closer.Closer) (usecase.MessageProducer, error) {
	if !cfg.Enabled() {
		logger.Warnf("KAFKA_BROKERS is empty, catalog events will only be logged")
		return kafka.NewLogProducer(logger), nil
	}

	producer, err := kafka.NewProducer(logger, cfg)
	if err != nil {
		logger.Errorf(err, "failed to initialize kafka producer")
		return nil, err
	}
	cl.AddSimple("kafka producer", producer.Close)

	if err := producer.EnsureTopic(10 * time.Second); err != nil {
		logger.Warnf("failed to ensure kafka topic %s: %v", cfg.Topic, err)
	}

	return producer, nil
}

// Run запускает серверы и блокируется до сигнала остановки или ошибки одного из них.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		a.logger.Infof("HTTP server started on port %s", a.cfg.Http.Port)
		if err := a.httpSrv.Run(); err != nil {
			a.logger.Errorf(err, "HTTP server failed")
			return e.Wrap(whereami.WhereAmI(), err)
		}
		return nil
	})

	g.Go(func() error {
		a.logger.Infof("gRPC server starting on %s:%s", a.cfg.Grpc.NetworkMode, a.cfg.Grpc.Port)
		if err := a.grpcSrv.Start(); err != nil {
			a.logger.Errorf(err, "gRPC server failed")
			return e.Wrap(whereami.WhereAmI(), err)
		}
		return nil
	})

	g.Go(func() error {
		<-gCtx.Done()
		a.logger.Infof("Stopping gracefully...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.Admin.ShutdownTimeout)
		defer cancel()

		if err := a.closer.Close(shutdownCtx); err != nil {
			a.logger.Errorf(err, "shutdown finished with errors")
			return err
		}
		a.logger.Infof("Application shutdown complete")
		return nil
	})

	return g.Wait()
}
