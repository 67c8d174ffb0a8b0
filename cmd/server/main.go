package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/moodmenu/recipe-api/internal/api"
	"github.com/moodmenu/recipe-api/internal/api/handler"
	"github.com/moodmenu/recipe-api/internal/core/domain"
	"github.com/moodmenu/recipe-api/internal/core/ports"
	"github.com/moodmenu/recipe-api/internal/core/service"
	"github.com/moodmenu/recipe-api/internal/infrastructure/db/memory"
	mongostore "github.com/moodmenu/recipe-api/internal/infrastructure/db/mongo"
	redisstore "github.com/moodmenu/recipe-api/internal/infrastructure/db/redis"
	"github.com/moodmenu/recipe-api/internal/infrastructure/db/sqlstore"
	"github.com/moodmenu/recipe-api/internal/pkg/config"
	"github.com/moodmenu/recipe-api/pkg/logger"
)

const janitorInterval = 5 * time.Minute

// @title        Mood Recipes API
// @version      1.0
// @description  Session-authenticated recipe catalog keyed by mood.
// @BasePath     /
func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.Development(),
		Service: "mood-recipes",
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}

// backends holds the storage selected by configuration.
type backends struct {
	identities ports.IdentityRepository
	recipes    ports.RecipeRepository
	sessions   ports.SessionStore
	readiness  map[string]handler.Pinger
	closers    []func(context.Context) error
}

func (b *backends) close(ctx context.Context, log zerolog.Logger) {
	for i := len(b.closers) - 1; i >= 0; i-- {
		if err := b.closers[i](ctx); err != nil {
			log.Warn().Err(err).Msg("backend close failed")
		}
	}
}

func run(ctx context.Context, cfg *config.Config, log zerolog.Logger) error {
	b := &backends{readiness: map[string]handler.Pinger{}}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		b.close(closeCtx, log)
	}()

	if err := openRecordStore(ctx, cfg, b); err != nil {
		return err
	}

	g, gctx := errgroup.WithContext(ctx)

	if err := openSessionStore(gctx, cfg, b, g, log); err != nil {
		return err
	}

	hasher := service.NewPasswordHasher(0)
	credentials := service.NewCredentialStore(b.identities, hasher, log)
	sessions := service.NewSessionManager(b.sessions)
	authService := service.NewAuthService(credentials, sessions, log)
	recipeService := service.NewRecipeService(b.recipes, nil, log)

	if err := seed(ctx, cfg, authService, recipeService, b.recipes, log); err != nil {
		return err
	}

	e := api.NewRouter(api.Dependencies{
		Auth:    authService,
		Recipes: recipeService,
		Cookie: handler.CookieConfig{
			Name:   cfg.Session.CookieName,
			Secure: cfg.Session.CookieSecure,
		},
		Logger:    log,
		Readiness: b.readiness,
	})

	g.Go(func() error {
		log.Info().
			Str("port", cfg.Port).
			Str("store", cfg.Store.Driver).
			Str("sessions", cfg.Session.Backend).
			Msg("listening")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		log.Info().Msg("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		return e.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

func openRecordStore(ctx context.Context, cfg *config.Config, b *backends) error {
	switch cfg.Store.Driver {
	case config.DriverMongo:
		client, db, err := mongostore.Connect(ctx, mongostore.Config{
			URI:      cfg.Mongo.URI,
			Database: cfg.Mongo.Database,
		})
		if err != nil {
			return err
		}
		b.closers = append(b.closers, client.Disconnect)
		if err := mongostore.EnsureIndexes(ctx, db); err != nil {
			return err
		}
		b.identities = mongostore.NewIdentityRepository(db)
		b.recipes = mongostore.NewRecipeRepository(db)
		b.readiness["mongo"] = handler.PingFunc(func(ctx context.Context) error {
			return client.Ping(ctx, nil)
		})
	default:
		dialect := sqlstore.DialectSQLite
		if cfg.Store.Driver == config.DriverPostgres {
			dialect = sqlstore.DialectPostgres
		}
		db, err := sqlstore.Open(ctx, sqlstore.Config{Dialect: dialect, DSN: cfg.Store.SQLDSN})
		if err != nil {
			return err
		}
		b.closers = append(b.closers, func(context.Context) error { return db.Close() })
		b.identities = sqlstore.NewIdentityRepository(db)
		b.recipes = sqlstore.NewRecipeRepository(db)
		b.readiness[string(dialect)] = db
	}
	return nil
}

// openSessionStore starts the janitor on g for the in-memory backend.
func openSessionStore(ctx context.Context, cfg *config.Config, b *backends, g *errgroup.Group, log zerolog.Logger) error {
	if cfg.Session.Backend == config.SessionRedis {
		client, err := redisstore.Connect(ctx, redisstore.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
		if err != nil {
			return err
		}
		b.closers = append(b.closers, func(context.Context) error { return client.Close() })
		b.sessions = redisstore.NewSessionStore(client)
		b.readiness["redis"] = handler.PingFunc(func(ctx context.Context) error {
			return client.Ping(ctx).Err()
		})
		return nil
	}

	store := memory.NewSessionStore()
	b.sessions = store
	g.Go(func() error {
		store.RunJanitor(ctx, janitorInterval, func(removed int) {
			log.Debug().Int("removed", removed).Msg("expired sessions pruned")
		})
		return nil
	})
	return nil
}

func seed(ctx context.Context, cfg *config.Config, auth ports.AuthService, recipes ports.RecipeService, repo ports.RecipeRepository, log zerolog.Logger) error {
	seeder := service.NewSeeder(auth, recipes, repo, log)

	if err := seeder.Accounts(ctx,
		service.SeedAccount{LoginKey: cfg.Seed.AdminEmail, Secret: cfg.Seed.AdminPassword, Role: domain.RoleElevated},
		service.SeedAccount{LoginKey: cfg.Seed.UserEmail, Secret: cfg.Seed.UserPassword, Role: domain.RoleStandard},
	); err != nil {
		return fmt.Errorf("seed accounts: %w", err)
	}

	if !cfg.Seed.Recipes {
		return nil
	}
	if _, err := seeder.Recipes(ctx, service.SampleRecipes); err != nil {
		return fmt.Errorf("seed recipes: %w", err)
	}
	return nil
}
