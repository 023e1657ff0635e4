package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/avanisehgal/ATTENDANCE-TRACKER/config"
	"github.com/avanisehgal/ATTENDANCE-TRACKER/internal/api/handler"
	"github.com/avanisehgal/ATTENDANCE-TRACKER/internal/api/router"
	"github.com/avanisehgal/ATTENDANCE-TRACKER/internal/service"
	"github.com/avanisehgal/ATTENDANCE-TRACKER/internal/state"
	"github.com/avanisehgal/ATTENDANCE-TRACKER/internal/store"
	applogger "github.com/avanisehgal/ATTENDANCE-TRACKER/pkg/logger"
)

func main() {
	// 1. 加载配置
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "加载配置失败: %v\n", err)
		os.Exit(1)
	}

	// 2. 初始化日志
	logger, err := applogger.NewLogger(&cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "初始化日志失败: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("应用启动中...",
		zap.Int("port", cfg.Server.Port),
		zap.String("log_level", cfg.Log.Level),
		zap.String("snapshot_path", cfg.Storage.SnapshotPath),
	)

	// 3. 初始化快照存储与应用状态
	// 快照损坏时 Init 会记录日志并以全新状态启动，不中断服务
	snapshot := store.NewFileStore(cfg.Storage.SnapshotPath)
	mgr := state.NewManager(snapshot, logger)
	if err := mgr.Init(); err != nil {
		logger.Fatal("加载应用状态失败", zap.Error(err))
	}
	logger.Info("应用状态加载完成")

	// 4. 依赖注入: Manager → Service → Handler
	svc := service.NewService(mgr, logger)
	h := handler.NewHandler(svc)

	// 5. 初始化路由
	engine := router.Setup(cfg, h, logger)

	// 6. 启动 HTTP 服务器（优雅关闭）
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("HTTP 服务器已启动", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP 服务器异常", zap.Error(err))
		}
	}()

	// 7. 监听系统信号，优雅关闭
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	logger.Info("收到关闭信号，开始优雅关闭...", zap.String("signal", sig.String()))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("服务器关闭异常", zap.Error(err))
	}

	logger.Info("服务器已关闭")
}
