package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/xxxsen/common/logger"
	"go.uber.org/zap"

	"github.com/pslkit/suffixd/internal/cache"
	"github.com/pslkit/suffixd/internal/config"
	"github.com/pslkit/suffixd/internal/psl"
	"github.com/pslkit/suffixd/internal/server"
	"github.com/pslkit/suffixd/internal/source"
)

func main() {
	cfgPath := flag.String("config", "", "path to YAML configuration file")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		// logger not initialised yet, fallback to stderr
		log.Fatalf("init config failed, err:%v", err)
	}
	logkit := logger.Init(cfg.Log.File, cfg.Log.Level, int(cfg.Log.FileCount),
		int(cfg.Log.FileSize), int(cfg.Log.KeepDays), cfg.Log.Console)
	defer logkit.Sync() //nolint:errcheck

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.Pprof.Enable {
		startPprofServer(cfg.Pprof.Bind, logkit)
	}

	src, err := source.MakeSource(cfg.List.Source)
	if err != nil {
		logkit.Fatal("build list source failed", zap.Error(err))
	}
	holder := source.NewHolder(src, time.Duration(cfg.List.Refresh)*time.Second,
		buildListOptions(cfg.List)...)
	if err := holder.Load(ctx); err != nil {
		logkit.Fatal("load public suffix list failed", zap.Error(err))
	}
	logkit.Info("public suffix list loaded",
		zap.String("source", src.String()), zap.Int("rule_count", holder.List().Len()))
	go holder.Start(ctx)

	lookupCache, err := cache.New(int(cfg.Cache.Size))
	if err != nil {
		logkit.Fatal("init lookup cache failed", zap.Error(err))
	}

	svr, err := server.New(
		server.WithBind(cfg.Bind),
		server.WithZone(cfg.Zone),
		server.WithHolder(holder),
		server.WithCache(lookupCache),
	)
	if err != nil {
		logkit.Fatal("initialise server failed", zap.Error(err))
	}

	logkit.Info("suffix lookup service listening", zap.String("addr", cfg.Bind))
	if err := svr.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logkit.Fatal("server error", zap.Error(err))
	}
	logkit.Info("shutdown complete")
}

func buildListOptions(cfg config.ListConfig) []psl.Option {
	var opts []psl.Option
	if cfg.AnyCase {
		opts = append(opts, psl.WithAnyCase())
	}
	if cfg.Punycode {
		opts = append(opts, psl.WithPunycode())
	}
	return opts
}
