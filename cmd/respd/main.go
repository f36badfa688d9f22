// Command respd runs a standalone RESP-speaking key-value server backed
// by an in-memory sharded store. Flag handling and the signal-driven
// shutdown sequence follow obfs4proxy's main().
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/flarekv/respd/server"
	"github.com/flarekv/respd/store"
)

func main() {
	addr := flag.String("addr", ":6379", "TCP address to listen on")
	shards := flag.Int("shards", store.DefaultShardCount, "number of store shards (rounded up to a power of two)")
	maxConns := flag.Int("max-conns", 0, "maximum concurrent connections, 0 for unlimited")
	idleTimeout := flag.Duration("idle-timeout", 5*time.Minute, "close a connection idle for this long, 0 to disable")
	devLogging := flag.Bool("dev-logging", false, "use zap's human-readable development logger instead of JSON")
	flag.Parse()

	log, err := newLogger(*devLogging)
	if err != nil {
		os.Exit(1)
	}
	defer log.Sync()

	mem := store.NewMemory(*shards)

	srv := server.New(server.Config{
		Addr:        *addr,
		MaxConns:    *maxConns,
		IdleTimeout: *idleTimeout,
	}, mem, log)

	ctx, cancel := context.WithCancel(context.Background())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigChan
		log.Info("received signal, shutting down", zap.String("signal", sig.String()))
		cancel()
	}()

	if err := srv.Serve(ctx); err != nil && ctx.Err() == nil {
		log.Fatal("serve", zap.Error(err))
	}
	log.Info("terminated")
}

func newLogger(dev bool) (*zap.Logger, error) {
	if dev {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
