package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cave-golf/internal/level"
	"cave-golf/internal/server"
)

func main() {
	cfg := level.DefaultConfig()
	cfg.Bind(flag.CommandLine)
	addr := flag.String("addr", ":8080", "listen address")
	meshes := flag.Bool("meshes", false, "include render meshes in streamed levels")
	verbose := flag.Bool("v", false, "log generation progress")
	flag.Parse()
	if *verbose {
		cfg.Logger = log.Default()
	}

	srv, err := server.New(cfg, *meshes)
	if err != nil {
		log.Fatalf("generate: %v", err)
	}
	httpServer := &http.Server{
		Addr:              *addr,
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go func() {
		<-ctx.Done()
		shutdown, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = httpServer.Shutdown(shutdown)
	}()

	log.Printf("serving levels on %s (ws /stream, GET /levels/{seed})", *addr)
	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal(err)
	}
}
