// YouBan 排班优化引擎服务
// 主程序入口

package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/youban/youban/internal/config"
	"github.com/youban/youban/internal/handler"
	"github.com/youban/youban/internal/metrics"
	"github.com/youban/youban/internal/middleware"
	"github.com/youban/youban/pkg/engine"
	"github.com/youban/youban/pkg/logger"
	"github.com/youban/youban/pkg/optimizer"
)

// 构建信息（通过 ldflags 注入）
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// 加载配置
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "配置加载失败: %v\n", err)
		os.Exit(1)
	}

	// 初始化日志
	logger.Init(logger.Config{
		Level:  cfg.App.LogLevel,
		Format: "console",
	})

	// 打印版本信息
	fmt.Printf("YouBan 排班优化引擎 v%s\n", Version)
	fmt.Printf("Build: %s (%s)\n", BuildTime, GitCommit)
	fmt.Println()

	// 创建优化引擎与处理器
	optCfg := optimizer.DefaultConfig()
	optCfg.MaxGenerations = cfg.Optimizer.MaxGenerations
	optCfg.MaxIterations = cfg.Optimizer.MaxIterations
	optCfg.PopulationSize = cfg.Optimizer.PopulationSize
	optCfg.SwarmSize = cfg.Optimizer.SwarmSize

	eng := engine.New(optCfg)
	optimizeHandler := handler.NewOptimizeHandler(eng, engine.Options{
		Seed:                cfg.Optimizer.Seed,
		Timeout:             time.Duration(cfg.Optimizer.DefaultTimeout) * time.Second,
		AllowSampleFallback: cfg.Optimizer.AllowSampleFallback,
	})

	// 创建 HTTP 服务器
	mux := http.NewServeMux()

	// ========================================
	// 系统端点
	// ========================================

	// 健康检查端点
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok","service":"youban"}`))
	})

	// 版本信息端点
	mux.HandleFunc("/version", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, `{"version":"%s","build_time":"%s","git_commit":"%s"}`, Version, BuildTime, GitCommit)
	})

	// ========================================
	// API v1 端点
	// ========================================

	// API 根路由
	mux.HandleFunc("/api/v1/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{
			"message": "YouBan 排班优化引擎 API v1",
			"endpoints": {
				"optimize": "POST /api/v1/optimize"
			}
		}`))
	})

	// 排班优化 API
	mux.HandleFunc("/api/v1/optimize", optimizeHandler.Optimize)

	// ========================================
	// 监控端点
	// ========================================

	// Prometheus 指标端点
	mux.Handle("/metrics", metrics.Handler())

	// ========================================
	// 中间件
	// ========================================

	// 中间件执行顺序：requestID -> cors -> logging -> handler
	rootHandler := middleware.RequestID(middleware.CORS(middleware.Logging(mux)))

	server := &http.Server{
		Addr:         ":" + cfg.App.Port,
		Handler:      rootHandler,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// 启动服务器（非阻塞）
	go func() {
		logger.Info().
			Str("port", cfg.App.Port).
			Str("version", Version).
			Str("url", fmt.Sprintf("http://localhost:%s", cfg.App.Port)).
			Str("api_docs", fmt.Sprintf("http://localhost:%s/api/v1/", cfg.App.Port)).
			Msg("服务器启动")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error().Err(err).Msg("服务器启动失败")
			os.Exit(1)
		}
	}()

	// 优雅关闭
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("正在关闭服务器...")

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("服务器关闭失败")
		os.Exit(1)
	}

	logger.Info().Msg("服务器已关闭")
}
