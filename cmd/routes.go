package main

import (
	"net/http"

	"github.com/bmizerany/pat"
	"github.com/justinas/alice"

	"sponsorback/internal/models"
)

func (app *application) JWTMiddlewareWithRole(requiredRole string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return app.JWTMiddleware(next, requiredRole)
	}
}

func (app *application) routes() http.Handler {
	standardMiddleware := alice.New(app.recoverPanic, app.logRequest, secureHeaders, makeResponseJSON)
	authMiddleware := standardMiddleware.Append(app.JWTMiddlewareWithRole(""))
	sponsorAuthMiddleware := standardMiddleware.Append(app.JWTMiddlewareWithRole(models.RoleSponsor))
	organizerAuthMiddleware := standardMiddleware.Append(app.JWTMiddlewareWithRole(models.RoleOrganizer))
	adminAuthMiddleware := standardMiddleware.Append(app.JWTMiddlewareWithRole(models.RoleAdmin))

	mux := pat.New()

	// Auth
	mux.Post("/api/sign_up", standardMiddleware.ThenFunc(app.userHandler.SignUp))
	mux.Post("/api/sign_in", standardMiddleware.ThenFunc(app.userHandler.SignIn))
	mux.Post("/api/refresh", standardMiddleware.ThenFunc(app.userHandler.Refresh))
	mux.Get("/api/users/:id", authMiddleware.ThenFunc(app.userHandler.GetUser))

	// Events
	mux.Get("/api/events/recommended", sponsorAuthMiddleware.ThenFunc(app.eventHandler.RecommendedEvents))
	mux.Get("/api/events/:id", authMiddleware.ThenFunc(app.eventHandler.GetEvent))
	mux.Get("/api/events", authMiddleware.ThenFunc(app.eventHandler.ListEvents))
	mux.Post("/api/events", organizerAuthMiddleware.ThenFunc(app.eventHandler.CreateEvent))
	mux.Put("/api/events/:id", organizerAuthMiddleware.ThenFunc(app.eventHandler.UpdateEvent))

	// Proposals
	mux.Post("/api/proposals", sponsorAuthMiddleware.ThenFunc(app.proposalHandler.CreateProposal))
	mux.Get("/api/proposals/:id", authMiddleware.ThenFunc(app.proposalHandler.GetProposal))
	mux.Get("/api/proposals", authMiddleware.ThenFunc(app.proposalHandler.ListProposals))
	mux.Put("/api/proposals/:id/status", authMiddleware.ThenFunc(app.proposalHandler.UpdateStatus))
	mux.Post("/api/proposals/:id/negotiation", authMiddleware.ThenFunc(app.proposalHandler.AddNegotiation))

	// Billing
	mux.Get("/api/billing/invoices/:id", authMiddleware.ThenFunc(app.billingHandler.GetInvoice))
	mux.Get("/api/billing/invoices", authMiddleware.ThenFunc(app.billingHandler.ListInvoices))
	mux.Post("/api/billing/invoices/:id/pay", sponsorAuthMiddleware.ThenFunc(app.billingHandler.PayInvoice))
	mux.Get("/api/billing/transactions", authMiddleware.ThenFunc(app.billingHandler.ListTransactions))
	mux.Get("/api/billing/summary", authMiddleware.ThenFunc(app.billingHandler.GetSummary))
	mux.Get("/api/billing/settings", adminAuthMiddleware.ThenFunc(app.billingHandler.GetSettings))
	mux.Put("/api/billing/settings/rate", adminAuthMiddleware.ThenFunc(app.billingHandler.UpdateRate))

	// Messages
	mux.Post("/api/messages", authMiddleware.ThenFunc(app.messageHandler.SendMessage))
	mux.Get("/api/messages", authMiddleware.ThenFunc(app.messageHandler.ListMessages))
	mux.Put("/api/messages/:id/read", authMiddleware.ThenFunc(app.messageHandler.MarkRead))

	// Realtime notifications
	mux.Get("/ws", standardMiddleware.ThenFunc(app.WebSocketHandler))

	return standardMiddleware.Then(mux)
}
