package main

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/xiebiao/userservice/internal/domain/user"
	"github.com/xiebiao/userservice/internal/infrastructure/config"
	"github.com/xiebiao/userservice/pkg/logger"
	"github.com/xiebiao/userservice/pkg/metrics"
	"github.com/xiebiao/userservice/pkg/tracing"
)

// App 组装完成的应用
type App struct {
	cfg     *config.Config
	logger  zerolog.Logger
	server  *http.Server
	tracing Tracing
}

// Tracing 链路追踪是否已启用
type Tracing struct {
	Enabled bool
}

func newApp(cfg *config.Config, log zerolog.Logger, engine *gin.Engine, t Tracing) *App {
	return &App{
		cfg:    cfg,
		logger: log,
		server: &http.Server{
			Addr:         cfg.Server.Addr(),
			Handler:      engine,
			ReadTimeout:  cfg.Server.ReadTimeout,
			WriteTimeout: cfg.Server.WriteTimeout,
		},
		tracing: t,
	}
}

// Run 启动HTTP服务，ctx取消后优雅关闭
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info().
			Str("addr", a.server.Addr).
			Str("mode", a.cfg.Server.Mode).
			Bool("tracing", a.tracing.Enabled).
			Bool("mq", a.cfg.MQ.Enabled).
			Msg("服务启动")
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	a.logger.Info().Msg("正在优雅关闭服务")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.Server.ShutdownTimeout)
	defer cancel()
	return a.server.Shutdown(shutdownCtx)
}

// =========================================
// 自定义Provider
// =========================================

func provideLogger(cfg *config.Config) zerolog.Logger {
	return logger.New(logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
	})
}

func provideValidator(cfg *config.Config) *user.Validator {
	return user.NewValidator(cfg.User.MinAge)
}

// provideTracing 按配置初始化OpenTelemetry，未启用时使用otel默认的空实现
// 指标注册也在这里完成，保证promhttp暴露的指标在第一个请求前就存在
func provideTracing(cfg *config.Config, log zerolog.Logger) (Tracing, func(), error) {
	if cfg.Metrics.Enabled {
		metrics.InitMetrics()
	}

	if !cfg.Tracing.Enabled {
		return Tracing{}, func() {}, nil
	}

	shutdown, err := tracing.InitTracer(cfg.Tracing.ServiceName, cfg.Tracing.Endpoint)
	if err != nil {
		return Tracing{}, nil, err
	}

	cleanup := func() {
		if err := shutdown(context.Background()); err != nil {
			log.Error().Err(err).Msg("关闭Tracer失败")
		}
	}
	return Tracing{Enabled: true}, cleanup, nil
}
