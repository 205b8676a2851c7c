package main

import (
	"context"
	"log"
	"time"

	"sponsorback/internal/billing"
	"sponsorback/internal/config"
	"sponsorback/internal/deal/lifecycle"
	"sponsorback/internal/handlers"
	"sponsorback/internal/repositories"
	"sponsorback/internal/services"
	"sponsorback/utils"
)

type application struct {
	errorLog *log.Logger
	infoLog  *log.Logger

	userRepo     *repositories.UserRepository
	tokenManager *utils.Manager
	accessTTL    time.Duration

	hub *NotificationHub

	userHandler     *handlers.UserHandler
	eventHandler    *handlers.EventHandler
	proposalHandler *handlers.ProposalHandler
	billingHandler  *handlers.BillingHandler
	messageHandler  *handlers.MessageHandler
}

func initializeApp(cfg config.Config, errorLog, infoLog *log.Logger) *application {
	// Repositories
	userRepo := repositories.NewUserRepository()
	eventRepo := repositories.NewEventRepository()
	proposalRepo := repositories.NewProposalRepository()
	invoiceRepo := repositories.NewInvoiceRepository()
	transactionRepo := repositories.NewTransactionRepository()
	messageRepo := repositories.NewMessageRepository()

	if err := repositories.Seed(context.Background(), repositories.SeedStores{
		Users:        userRepo,
		Events:       eventRepo,
		Proposals:    proposalRepo,
		Invoices:     invoiceRepo,
		Transactions: transactionRepo,
		Messages:     messageRepo,
	}); err != nil {
		errorLog.Fatalf("Failed to seed demo data: %v", err)
	}

	tokenManager, err := utils.NewManager(cfg.Auth.SigningKey)
	if err != nil {
		errorLog.Fatalf("Failed to create token manager: %v", err)
	}

	hub := NewNotificationHub()
	ledger := billing.NewLedger(invoiceRepo, transactionRepo, cfg.CommissionRate())

	// Services
	userService := &services.UserService{
		Users:        userRepo,
		TokenManager: tokenManager,
		AccessTTL:    cfg.AccessTTL(),
		RefreshTTL:   cfg.RefreshTTL(),
	}
	eventService := &services.EventService{Events: eventRepo, Users: userRepo}
	proposalService := &services.ProposalService{
		Proposals: proposalRepo,
		Events:    eventRepo,
		Lifecycle: lifecycle.NewService(lifecycle.Config{}),
		Ledger:    ledger,
		Notifier:  hub,
	}
	billingService := &services.BillingService{Ledger: ledger, Notifier: hub}
	messageService := &services.MessageService{Messages: messageRepo, Notifier: hub}

	return &application{
		errorLog:     errorLog,
		infoLog:      infoLog,
		userRepo:     userRepo,
		tokenManager: tokenManager,
		accessTTL:    cfg.AccessTTL(),
		hub:          hub,

		userHandler:     &handlers.UserHandler{Service: userService},
		eventHandler:    &handlers.EventHandler{Service: eventService},
		proposalHandler: &handlers.ProposalHandler{Service: proposalService},
		billingHandler:  &handlers.BillingHandler{Service: billingService},
		messageHandler:  &handlers.MessageHandler{Service: messageService},
	}
}
