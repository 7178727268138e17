// Package rest implements the HTTP API for partners, administrators, family
// clients and the detection intake.
package rest

import (
	"net/http"
	"time"

	"github.com/harborlight/harborlight/internal/authorization"
	"github.com/harborlight/harborlight/internal/blackout"
	"github.com/harborlight/harborlight/internal/escalation"
	"github.com/harborlight/harborlight/internal/pipeline"
	"github.com/harborlight/harborlight/internal/redis"
	"github.com/harborlight/harborlight/internal/rest/handler"
	"github.com/harborlight/harborlight/internal/rest/middleware/auth"
	"github.com/harborlight/harborlight/internal/routing"
	"github.com/harborlight/harborlight/internal/setup"
	"github.com/uptrace/bunrouter"
)

// Server implements the REST API service.
type Server struct {
	intakeHandler  *handler.IntakeHandler
	partnerHandler *handler.PartnerHandler
	adminHandler   *handler.AdminHandler
	familyHandler  *handler.FamilyHandler
}

// NewServer creates the REST API server with its routes and middleware.
func NewServer(app *setup.App) (http.Handler, error) {
	db := app.DB
	logger := app.Logger
	safety := &app.Config.Common.Safety

	// Crisis partner routing with the Redis-backed triage fallback
	triageClient, err := app.RedisManager.GetClient(redis.TriageDBIndex)
	if err != nil {
		return nil, err
	}

	dispatcher := routing.NewWebhookDispatcher(
		time.Duration(safety.WebhookTimeout)*time.Millisecond,
		time.Duration(safety.WebhookRetryDelay)*time.Millisecond,
		safety.WebhookMaxAttempts,
		logger,
	)
	triage := routing.NewRedisTriageQueue(triageClient, logger)

	cacheClient, err := app.RedisManager.GetClient(redis.PartnerCacheDBIndex)
	if err != nil {
		return nil, err
	}

	partners := routing.NewCachedPartnerSource(db.Model().Partner(), cacheClient, 5*time.Minute, logger)
	router := routing.NewRouter(partners, db.Model().Routing(), dispatcher, triage, logger)

	// Domain services
	blackouts := blackout.NewController(db.Model().Blackout(), safety, logger)
	authorizations := authorization.NewService(db.Model().Authorization(), safety, logger)
	tracker := escalation.NewTracker(db.Model().Escalation(), db.Model().Legal(), logger)

	// Intake pipeline
	thresholder := pipeline.NewThresholder(safety)
	governor := pipeline.NewGovernor(db.Model().Flag(), safety, logger)
	suppressor := pipeline.NewSuppressor(db.Model().Suppression(), blackouts, safety, logger)
	intake := pipeline.New(thresholder, db.Model().Flag(), governor, suppressor, blackouts, router, logger)

	server := &Server{
		intakeHandler:  handler.NewIntakeHandler(intake, logger),
		partnerHandler: handler.NewPartnerHandler(db, blackouts, suppressor, tracker, logger),
		adminHandler:   handler.NewAdminHandler(db, authorizations, tracker, partners, logger),
		familyHandler:  handler.NewFamilyHandler(db, logger),
	}

	authMiddleware := auth.New(db.Model().Partner(), &app.Config.API, logger)

	httpRouter := bunrouter.New()

	httpRouter.Use(authMiddleware.Admin).WithGroup("/v1/intake", func(g *bunrouter.Group) {
		g.POST("/signals", server.intakeHandler.SubmitSignal)
	})

	httpRouter.Use(authMiddleware.Partner).WithGroup("/v1/partner", func(g *bunrouter.Group) {
		g.POST("/signals/:id/acknowledge", server.partnerHandler.Acknowledge)
		g.POST("/signals/:id/blackout/extend", server.partnerHandler.ExtendBlackout)
		g.POST("/signals/:id/blackout/release", server.partnerHandler.ReleaseBlackout)
		g.POST("/signals/:id/hold/release", server.partnerHandler.ReleaseHold)
		g.POST("/signals/:id/escalations", server.partnerHandler.ReportEscalation)
	})

	httpRouter.Use(authMiddleware.Admin).WithGroup("/v1/admin", func(g *bunrouter.Group) {
		g.PUT("/partners", server.adminHandler.UpsertPartner)
		g.GET("/signals/:id/routing", server.adminHandler.GetRoutingResults)
		g.GET("/children/:childId/throttle", server.adminHandler.GetThrottleState)
		g.POST("/authorizations", server.adminHandler.RequestAuthorization)
		g.POST("/authorizations/:id/approve", server.adminHandler.ApproveAuthorization)
		g.POST("/authorizations/:id/deny", server.adminHandler.DenyAuthorization)
		g.GET("/authorizations/:id/validate", server.adminHandler.ValidateAuthorization)
		g.POST("/authorizations/:id/consume", server.adminHandler.ConsumeAuthorization)
		g.GET("/signals/:id/escalations", server.adminHandler.GetEscalations)
		g.POST("/escalations/:id/seal", server.adminHandler.SealEscalation)
		g.POST("/legal-requests", server.adminHandler.OpenLegalRequest)
		g.POST("/legal-requests/:id/review", server.adminHandler.ReviewLegalRequest)
		g.POST("/legal-requests/:id/fulfill", server.adminHandler.FulfillLegalRequest)
		g.GET("/children/:childId/suppression-logs", server.adminHandler.GetSuppressionLogs)
	})

	httpRouter.WithGroup("/v1/family", func(g *bunrouter.Group) {
		g.GET("/:familyId/flags", server.familyHandler.GetFlags)
		g.POST("/:familyId/flags/:id/review", server.familyHandler.ReviewFlag)
	})

	return httpRouter, nil
}
