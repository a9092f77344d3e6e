package handler

import (
	"github.com/heavensaji/fundtos/internal/adapter/http/middleware"
	redisStore "github.com/heavensaji/fundtos/internal/adapter/storage/redis"
	"github.com/heavensaji/fundtos/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	CampaignSvc    ports.CampaignService
	Orchestrator   ports.Orchestrator
	OperationLog   ports.OperationLogRepository // nil = history disabled
	RateLimitStore *redisStore.RateLimitStore   // nil = rate limiting disabled
	HealthCheckers []ports.HealthChecker
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit

	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	rules := middleware.DefaultRateLimitRules()
	rl := func(group string) gin.HandlerFunc {
		rule, ok := rules[group]
		if deps.RateLimitStore == nil || !ok {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.RateLimiter(deps.RateLimitStore, group, rule, deps.Logger)
	}

	v1 := r.Group("/api/v1")

	// --- Read path: no wallet session required ---
	campaignHandler := NewCampaignHandler(deps.CampaignSvc)
	v1.GET("/campaigns", campaignHandler.ListCampaigns)
	v1.GET("/owners/:address/campaigns", campaignHandler.OwnerCampaigns)

	// --- Mutating path: wallet session required ---
	wallet := middleware.WalletSession(true)
	opHandler := NewOperationHandler(deps.Orchestrator, deps.OperationLog)

	v1.POST("/donations", wallet, rl("donations"), opHandler.Donate)

	campaigns := v1.Group("/campaigns")
	{
		campaigns.POST("", wallet, rl("campaigns_create"), opHandler.CreateCampaign)
		campaigns.POST("/:id/withdraw", wallet, rl("campaigns_manage"), opHandler.Withdraw)
		campaigns.POST("/:id/close", wallet, rl("campaigns_manage"), opHandler.CloseCampaign)
		campaigns.GET("/:id/status", opHandler.CampaignStatus)
	}

	operations := v1.Group("/operations", wallet)
	{
		operations.GET("", opHandler.History)
		operations.GET("/creation-status", opHandler.CreationStatus)
	}

	return r
}
