package app

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/VallenDraa/mock-development-api/internal/auth"
	"github.com/VallenDraa/mock-development-api/internal/auth/token"
	"github.com/VallenDraa/mock-development-api/internal/config"
	"github.com/VallenDraa/mock-development-api/internal/infra/memory"
	"github.com/VallenDraa/mock-development-api/internal/seed"
	"github.com/VallenDraa/mock-development-api/internal/store"
	"github.com/VallenDraa/mock-development-api/internal/transport/web"
)

type App struct {
	config    *config.Config
	server    *web.Server
	log       *log.Logger
	store     *store.Store
	refresher *seed.Refresher
}

func Build(ctx context.Context) (*App, error) {
	base := log.New(os.Stdout, "[app] ", log.LstdFlags)

	serverLog := log.New(base.Writer(), base.Prefix()+"[server] ", base.Flags())
	repoLog := log.New(base.Writer(), base.Prefix()+"[memory] ", base.Flags())
	seedLog := log.New(base.Writer(), base.Prefix()+"[seed] ", base.Flags())
	authLog := log.New(base.Writer(), base.Prefix()+"[auth] ", base.Flags())

	cfg, err := config.LoadFromEnv()
	if err != nil {
		return nil, fmt.Errorf("failed load config: %w", err)
	}
	base.Printf("\n  configuration: %s-------------------", cfg)

	base.Println("init store")
	st := store.New()
	counts := seed.Counts{
		Users:    cfg.FakeUserAmount,
		Posts:    cfg.FakePostAmount,
		Comments: cfg.FakeCommentAmount,
	}
	seed.Apply(st, counts)
	snap := st.Read()
	base.Printf("store seeded: users=%d posts=%d comments=%d",
		len(snap.Users), len(snap.Posts), len(snap.Comments))

	refresher := seed.NewRefresher(seedLog, st, counts, cfg.StoreRefreshInterval)

	// Auth primitives
	repo := memory.NewRepo(repoLog, st)
	accessTM := token.New(cfg.AccessTokenSecret, cfg.AccessTokenTTL)
	refreshTM := token.New(cfg.RefreshTokenSecret, cfg.RefreshTokenTTL)
	authSvc := auth.New(authLog, repo, accessTM, refreshTM)

	base.Println("init Server")
	repos := web.Repos{Users: repo, Posts: repo, Comments: repo}
	authDeps := web.AuthDeps{Service: authSvc, Access: accessTM}
	server := web.New(serverLog, cfg, st, repos, authDeps)
	base.Println("Server is initialized")

	base.Println("build ended")
	return &App{
		config:    cfg,
		server:    server,
		log:       base,
		store:     st,
		refresher: refresher,
	}, nil
}

func (a *App) Run(ctx context.Context) error {
	a.log.Println("start application...")
	go a.server.Run()
	go a.refresher.Run(ctx)
	<-ctx.Done()
	a.log.Println("stop application...")

	stopCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	a.server.Close(stopCtx)

	return nil
}
