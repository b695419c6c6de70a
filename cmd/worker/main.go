package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	inventoryapp "github.com/minierp/backend/internal/application/inventory"
	notificationapp "github.com/minierp/backend/internal/application/notification"
	settingsapp "github.com/minierp/backend/internal/application/settings"
	tradeapp "github.com/minierp/backend/internal/application/trade"
	"github.com/minierp/backend/internal/infrastructure/config"
	"github.com/minierp/backend/internal/infrastructure/event"
	"github.com/minierp/backend/internal/infrastructure/logger"
	"github.com/minierp/backend/internal/infrastructure/persistence"
)

// overdueSweepInterval controls how often unpaid invoices are checked
// against their due date.
const overdueSweepInterval = 1 * time.Hour

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(cfg.Log)
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = log.Sync()
	}()

	log.Info("Starting MiniERP worker",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
	)

	// Create GORM logger backed by zap
	gormLogLevel := logger.MapGormLogLevel(cfg.Log.Level)
	gormLog := logger.NewGormLogger(log, gormLogLevel)

	// Initialize database connection with custom logger
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	// Initialize repositories
	productRepo := persistence.NewGormProductRepository(db.DB)
	inventoryRepo := persistence.NewGormInventoryRepository(db.DB)
	movementRepo := persistence.NewGormStockMovementRepository(db.DB)
	orderRepo := persistence.NewGormOrderRepository(db.DB)
	invoiceRepo := persistence.NewGormInvoiceRepository(db.DB)
	userRepo := persistence.NewGormUserRepository(db.DB)
	notificationRepo := persistence.NewGormNotificationRepository(db.DB)
	settingsRepo := persistence.NewGormSettingsRepository(db.DB)

	// Transaction scopes
	inventoryTxScope := persistence.NewGormInventoryTransactionScope(db.DB)
	tradeTxScope := persistence.NewGormTradeTransactionScope(db.DB)

	// Initialize application services
	settingsService := settingsapp.NewSettingsService(settingsRepo)
	ledgerService := inventoryapp.NewLedgerService(inventoryRepo, movementRepo, inventoryTxScope)
	orderService := tradeapp.NewOrderService(orderRepo, invoiceRepo, settingsRepo, tradeTxScope)
	invoiceService := tradeapp.NewInvoiceService(invoiceRepo)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Seed the settings row so the low-stock threshold is readable
	if err := settingsService.EnsureInitialized(ctx); err != nil {
		log.Fatal("Failed to initialize settings", zap.Error(err))
	}

	// Initialize event bus and wire the low-stock notifier
	eventBus := event.NewInMemoryEventBus(log)
	ledgerService.SetEventPublisher(eventBus)
	orderService.SetEventPublisher(eventBus)

	lowStockNotifier := notificationapp.NewLowStockNotifier(
		notificationRepo,
		userRepo,
		productRepo,
		settingsService,
		log,
	)
	eventBus.Subscribe(lowStockNotifier)

	log.Info("Event handlers registered",
		zap.Strings("low_stock_events", lowStockNotifier.EventTypes()),
	)

	// Start event bus
	if err := eventBus.Start(ctx); err != nil {
		log.Fatal("Failed to start event bus", zap.Error(err))
	}
	defer func() {
		if err := eventBus.Stop(context.Background()); err != nil {
			log.Error("Error stopping event bus", zap.Error(err))
		}
	}()

	log.Info("Worker started",
		zap.Duration("overdue_sweep_interval", overdueSweepInterval),
	)

	// Periodically flip unpaid invoices past their due date to overdue
	ticker := time.NewTicker(overdueSweepInterval)
	defer ticker.Stop()

	runOverdueSweep(ctx, invoiceService, log)
	for {
		select {
		case <-ticker.C:
			runOverdueSweep(ctx, invoiceService, log)
		case <-ctx.Done():
			log.Info("Shutting down worker")
			return
		}
	}
}

func runOverdueSweep(ctx context.Context, svc *tradeapp.InvoiceService, log *zap.Logger) {
	count, err := svc.MarkOverdue(ctx, time.Now())
	if err != nil {
		log.Error("Overdue invoice sweep failed", zap.Error(err))
		return
	}
	if count > 0 {
		log.Info("Marked invoices overdue", zap.Int("count", count))
	}
}
