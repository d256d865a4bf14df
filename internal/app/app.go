package app

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/fitclub/server/internal/controller"
	connInmemory "github.com/fitclub/server/internal/repository/connection/inmemory"
	identityRedis "github.com/fitclub/server/internal/repository/identity/redis"
	mediaWs "github.com/fitclub/server/internal/repository/media/ws"
	sessionInmemory "github.com/fitclub/server/internal/repository/session/inmemory"
	storeRedis "github.com/fitclub/server/internal/repository/store/redis"
	"github.com/fitclub/server/internal/service/catalog"
	"github.com/fitclub/server/internal/service/identity"
	"github.com/fitclub/server/internal/service/member"
	"github.com/fitclub/server/internal/service/watch"
	"github.com/fitclub/server/pkg/ctxlogger"
	"github.com/fitclub/server/pkg/redisclient"
)

type AppConfig struct {
	Secret        string  `json:"-"`
	Host          string  `json:"host"`
	Port          int     `json:"port"`
	LogLevel      string  `json:"log_level"`
	RegisterRate  float64 `json:"register_rate"`
	RegisterBurst int     `json:"register_burst"`
	RedisPort     int     `json:"redis_port"`
	RedisHost     string  `json:"redis_host"`
	RedisPassword string  `json:"-"`
}

func (cfg *AppConfig) Validate() error {
	if cfg.Secret == "" {
		return fmt.Errorf("secret must not be empty")
	}
	if cfg.RegisterRate <= 0 {
		return fmt.Errorf("register rate must be greater than 0")
	}
	if cfg.RegisterBurst < 1 {
		return fmt.Errorf("register burst must be greater than 0")
	}
	return nil
}

func Run(ctx context.Context, cfg *AppConfig) error {
	logLevel := slog.LevelInfo
	if err := logLevel.UnmarshalText([]byte(strings.ToUpper(cfg.LogLevel))); err != nil {
		log.Fatal(err)
	}

	h := ctxlogger.ContextHandler{
		Handler: slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level:     logLevel,
			AddSource: true,
		}),
	}

	logger := slog.New(&h)

	rc, err := redisclient.NewRedisClient(&redisclient.Config{
		Port:     cfg.RedisPort,
		Host:     cfg.RedisHost,
		Password: cfg.RedisPassword,
	})
	if err != nil {
		return fmt.Errorf("failed to create redis client: %w", err)
	}
	defer rc.Close()

	storeRepo := storeRedis.NewRepo(rc, logger)
	identityRepo := identityRedis.NewRepo(rc, logger)
	sessionRepo := sessionInmemory.NewRepo(logger)
	connRepo := connInmemory.NewRepo(logger)
	mediaRepo := mediaWs.NewRepo(connRepo, logger)

	identityService := identity.NewService(identityRepo, cfg.Secret, logger)
	memberService := member.NewService(identityService, storeRepo, logger)
	catalogService := catalog.NewService(storeRepo, nil, logger)
	watchService := watch.NewService(sessionRepo, mediaRepo, catalogService, logger)

	controller := controller.NewController(memberService, catalogService, watchService, connRepo, &controller.Config{
		RegisterRate:  cfg.RegisterRate,
		RegisterBurst: cfg.RegisterBurst,
	}, logger)
	server := &http.Server{Addr: fmt.Sprintf("%s:%d", cfg.Host, cfg.Port), Handler: controller.Mux()}

	// graceful shutdown
	serverCtx, serverStopCtx := context.WithCancel(ctx)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	go func() {
		<-sig

		shutdownCtx, c := context.WithTimeout(serverCtx, 30*time.Second)
		defer c()

		go func() {
			<-shutdownCtx.Done()
			if shutdownCtx.Err() == context.DeadlineExceeded {
				log.Fatal("graceful shutdown timed out.. forcing exit.")
			}
		}()

		err := server.Shutdown(shutdownCtx)
		if err != nil {
			log.Fatal(err)
		}
		serverStopCtx()
	}()

	logger.InfoContext(serverCtx, "starting server", "address", server.Addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}

	<-serverCtx.Done()

	return nil
}
