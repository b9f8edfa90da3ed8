package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"go.uber.org/multierr"

	"github.com/angelmondragon/shopfront-client/internal/admin"
	"github.com/angelmondragon/shopfront-client/internal/api"
	"github.com/angelmondragon/shopfront-client/internal/cart"
	"github.com/angelmondragon/shopfront-client/internal/notify"
	"github.com/angelmondragon/shopfront-client/internal/session"
	"github.com/angelmondragon/shopfront-client/internal/state"
	"github.com/angelmondragon/shopfront-client/internal/syncer"
	"github.com/angelmondragon/shopfront-client/pkg/config"
	"github.com/angelmondragon/shopfront-client/pkg/logger"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "shopfront"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "shopfront",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	stateClient, err := state.New(ctx, cfg.State, logg)
	if err != nil {
		logg.Error(ctx, "failed to open local state", err)
		os.Exit(1)
	}

	sessionStore, err := session.NewStore(state.NewCredentialRepo(stateClient.DB()), logg)
	if err != nil {
		logg.Error(ctx, "failed to create session store", err)
		os.Exit(1)
	}
	if err := sessionStore.Restore(ctx); err != nil {
		logg.Error(ctx, "failed to restore session", err)
		os.Exit(1)
	}

	cartLines := state.NewCartLineRepo(stateClient)
	cartStore := cart.NewStore()
	scope := sessionStore.Scope()
	if scope != session.GuestScope {
		cartStore.SwitchScope(scope, nil)
	}
	lines, err := cartLines.LoadLines(ctx, scope)
	if err != nil {
		logg.Error(ctx, "failed to load persisted cart", err)
		os.Exit(1)
	}
	cartStore.Restore(lines)
	cartStore.Subscribe(state.CartPersister(cartLines, logg))

	notifier := notify.NewNotifier()
	notifier.Subscribe(func(n notify.Notice) {
		logg.Info(logg.WithField(ctx, "level", string(n.Level)), n.Message)
	})

	sync, err := syncer.New(syncer.NewViewCache(), notifier, logg)
	if err != nil {
		logg.Error(ctx, "failed to create syncer", err)
		os.Exit(1)
	}

	apiClient, err := api.NewClient(cfg.API, logg,
		api.WithTokenSource(sessionStore),
		api.WithUnauthorizedHook(func() {
			sessionStore.ForceLogout("session expired")
			sync.InvalidateAll()
		}),
	)
	if err != nil {
		logg.Error(ctx, "failed to create api client", err)
		os.Exit(1)
	}

	// Every session change rebinds the cart to the principal's persisted
	// scope and drops cached admin views fetched under the old identity.
	sessionStore.Subscribe(func(snap session.Snapshot) {
		lines, err := cartLines.LoadLines(ctx, snap.Scope)
		if err != nil {
			logg.Error(ctx, "failed to load cart for scope", err)
			lines = nil
		}
		cartStore.SwitchScope(snap.Scope, lines)
		sync.InvalidateAll()
	})

	if _, err := buildServices(apiClient, sync); err != nil {
		logg.Error(ctx, "failed to wire admin services", err)
		os.Exit(1)
	}

	readyCtx := logg.WithFields(ctx, map[string]any{
		"env":           cfg.App.Env,
		"api_base_url":  cfg.API.BaseURL,
		"state_path":    cfg.State.Path,
		"authenticated": sessionStore.IsAuthenticated(),
		"cart_scope":    cartStore.Scope(),
		"cart_lines":    len(cartStore.Items()),
	})
	logg.Info(readyCtx, "shopfront client ready")

	<-ctx.Done()
	logg.Info(context.Background(), "shutting down")
	if err := shutdown(stateClient); err != nil {
		logg.Error(context.Background(), "error during shutdown", err)
		os.Exit(1)
	}
}

type services struct {
	products      admin.ProductService
	inventory     admin.InventoryService
	orders        admin.OrderService
	users         admin.UserService
	notifications admin.NotificationService
}

func buildServices(client *api.Client, sync *syncer.Syncer) (*services, error) {
	products, err := admin.NewProductService(api.NewProductAPI(client), sync)
	if err != nil {
		return nil, err
	}
	inventory, err := admin.NewInventoryService(api.NewInventoryAPI(client), sync)
	if err != nil {
		return nil, err
	}
	orders, err := admin.NewOrderService(api.NewOrderAPI(client), sync)
	if err != nil {
		return nil, err
	}
	users, err := admin.NewUserService(api.NewUserAPI(client), sync)
	if err != nil {
		return nil, err
	}
	notifications, err := admin.NewNotificationService(api.NewNotificationAPI(client), sync)
	if err != nil {
		return nil, err
	}
	return &services{
		products:      products,
		inventory:     inventory,
		orders:        orders,
		users:         users,
		notifications: notifications,
	}, nil
}

func shutdown(closers ...interface{ Close() error }) error {
	var errs error
	for _, closer := range closers {
		errs = multierr.Append(errs, closer.Close())
	}
	return errs
}
