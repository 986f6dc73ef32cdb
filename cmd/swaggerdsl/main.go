package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	swaggerdsl "github.com/FlowMo7/SwaggerDSL"
	"github.com/FlowMo7/SwaggerDSL/internal/petstore"
	"github.com/FlowMo7/SwaggerDSL/swaggerui"
	"github.com/FlowMo7/SwaggerDSL/swaggeryaml"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	sub := os.Args[1]
	switch sub {
	case "render":
		renderCmd(os.Args[2:])
	case "serve":
		serveCmd(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "swaggerdsl CLI\n\nUsage:\n  swaggerdsl render [-o swagger.yaml]\n  swaggerdsl serve [-addr :8080] [-config ui.yaml] [-v]\n\nNotes:\n  - Both commands use the built-in petstore reference document.")
}

func renderCmd(args []string) {
	fs := flag.NewFlagSet("render", flag.ExitOnError)
	var out string
	fs.StringVar(&out, "o", "", "output filename (stdout when empty)")
	_ = fs.Parse(args)

	def := buildDefinition()
	if out == "" {
		if err := swaggeryaml.Write(os.Stdout, def); err != nil {
			fatalf("writing output: %v", err)
		}
		return
	}
	if err := os.MkdirAll(filepath.Dir(out), 0o755); err != nil {
		fatalf("creating output dir: %v", err)
	}
	if err := os.WriteFile(out, swaggeryaml.Bytes(def), 0o644); err != nil {
		fatalf("writing output: %v", err)
	}
}

func serveCmd(args []string) {
	fs := flag.NewFlagSet("serve", flag.ExitOnError)
	var addr, configPath string
	var verbose bool
	fs.StringVar(&addr, "addr", ":8080", "listen address")
	fs.StringVar(&configPath, "config", "", "YAML responder config")
	fs.BoolVar(&verbose, "v", false, "enable debug logs")
	_ = fs.Parse(args)

	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	cfg := swaggerui.DefaultConfig()
	if configPath != "" {
		raw, err := os.ReadFile(configPath)
		if err != nil {
			fatalf("reading config: %v", err)
		}
		if cfg, err = swaggerui.LoadConfig(raw); err != nil {
			fatalf("%v", err)
		}
	}

	responder := swaggerui.New(cfg, swaggeryaml.Bytes(buildDefinition()), swaggerui.WithLogger(logger))
	srv := &http.Server{Addr: addr, Handler: responder, ReadHeaderTimeout: 5 * time.Second}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	logger.Info("serving swagger ui", "addr", addr, "spec", cfg.SpecFileName)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		fatalf("serve: %v", err)
	}
}

func buildDefinition() *swaggerdsl.Definition {
	def, err := petstore.Definition()
	if err != nil {
		if iss, ok := swaggerdsl.AsIssues(err); ok {
			for _, it := range iss {
				fmt.Fprintf(os.Stderr, "- %s at %s: %s\n", it.Code, it.Path, it.Message)
			}
		}
		fatalf("build document: %v", err)
	}
	return def
}

func fatalf(format string, a ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", a...)
	os.Exit(1)
}
