package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/exec"
	"os/signal"
	"runtime"
	"strings"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"
	"janggi/internal/config"
	"janggi/internal/server/game"
	httpserver "janggi/internal/server/http"
	"janggi/internal/store"
)

func openBrowser(url string) {
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	case "darwin":
		cmd = exec.Command("open", url)
	default: // linux / bsd
		cmd = exec.Command("xdg-open", url)
	}

	_ = cmd.Start() // 不阻塞，没有图形界面时失败也无所谓
}

func main() {
	cfgPath := flag.String("config", "janggi.yaml", "optional YAML config file")
	addr := flag.String("addr", "", "listen address (overrides config)")
	webDir := flag.String("web", "", "directory with index.html / js / svg (overrides config)")
	dataDir := flag.String("data", "", "directory for games.json (overrides config)")
	memOnly := flag.Bool("memory", false, "keep games in memory only")
	noBrowser := flag.Bool("no-browser", false, "do not open a browser")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Fatalf("load config %s: %v", *cfgPath, err)
	}
	cfg.ApplyEnv()
	if *addr != "" {
		cfg.Addr = *addr
	}
	if *webDir != "" {
		cfg.WebDir = *webDir
	}
	if *dataDir != "" {
		cfg.DataDir = *dataDir
	}
	if *memOnly {
		cfg.DataDir = ""
	}
	if *noBrowser {
		cfg.OpenBrowser = false
	}

	var repo store.Repo = store.NewMemoryRepo()
	if cfg.DataDir != "" {
		fr, err := store.NewFileRepo(cfg.DataDir)
		if err != nil {
			log.Fatalf("open data dir %s: %v", cfg.DataDir, err)
		}
		repo = fr
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	mgr := game.NewManager(repo)
	n, err := mgr.Load(ctx)
	if err != nil {
		log.Fatalf("restore games: %v", err)
	}
	if n > 0 {
		log.Printf("restored %d games from %s", n, cfg.DataDir)
	}

	srv := &http.Server{
		Addr: cfg.Addr,
		Handler: httpserver.NewRouter(mgr, httpserver.Options{
			Logger:    log.Default(),
			WebDir:    cfg.WebDir,
			AccessLog: cfg.AccessLog,
		}),
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Printf("listening on %s, serving static from %s", cfg.Addr, cfg.WebDir)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if cfg.OpenBrowser {
		// 延迟 100ms 再打开浏览器，等服务器起来
		go func() {
			time.Sleep(100 * time.Millisecond)
			openBrowser(browserURL(cfg.Addr))
		}()
	}

	if err := g.Wait(); err != nil {
		log.Fatal(err)
	}
	log.Println("bye")
}

func browserURL(addr string) string {
	if strings.HasPrefix(addr, ":") {
		return "http://127.0.0.1" + addr + "/"
	}
	return "http://" + addr + "/"
}
