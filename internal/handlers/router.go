package handlers

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"github.com/ukydev/apex-maintenance/internal/cloudsync"
	"github.com/ukydev/apex-maintenance/internal/insight"
	"github.com/ukydev/apex-maintenance/internal/middleware"
	"github.com/ukydev/apex-maintenance/internal/report"
)

// Insight requests are limited per client because each one calls the
// hosted model.
const (
	insightRateLimit  = 10
	insightRateWindow = time.Minute
)

// RouterDeps carries everything the routes need.
type RouterDeps struct {
	Store       RecordStore
	Reports     *report.Service
	Insights    *insight.Service
	Syncer      *cloudsync.Syncer
	Logger      *log.Logger
	CORSOrigins []string
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.DefaultConfig()
	allowAll := len(origins) == 0
	for _, o := range origins {
		if o == "*" {
			allowAll = true
		}
	}
	if allowAll {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	cfg.AddAllowMethods(http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions)
	cfg.AddAllowHeaders("Origin", "Content-Type")
	cfg.AddExposeHeaders("Content-Disposition")
	return cfg
}

// SetupRouter wires handlers and middleware into a gin engine.
func SetupRouter(deps RouterDeps) *gin.Engine {
	logger := deps.Logger
	if logger == nil {
		logger = log.StandardLogger()
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(logger))
	router.Use(cors.New(corsConfig(deps.CORSOrigins)))

	owners := NewOwnerHandler(deps.Store, logger)
	machines := NewMachineHandler(deps.Store, logger)
	jobCards := NewJobCardHandler(deps.Store, logger)
	reports := NewReportHandler(deps.Reports, logger)
	data := NewDataHandler(deps.Store, logger)
	insights := NewInsightHandler(deps.Store, deps.Insights, logger)
	syncs := NewSyncHandler(deps.Syncer, logger)
	limiter := middleware.NewRateLimitMiddleware()

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api")
	{
		api.GET("/data", data.Get)
		api.PUT("/data", data.Replace)

		api.GET("/owners", owners.List)
		api.POST("/owners", owners.Create)
		api.PUT("/owners/:id", owners.Update)
		api.DELETE("/owners/:id", middleware.RequireConfirmation(DeleteOwnerPrompt), owners.Delete)

		api.GET("/brands", machines.Brands)
		api.GET("/machines", machines.List)
		api.POST("/machines", machines.Create)
		api.PUT("/machines/:id", machines.Update)
		api.DELETE("/machines/:id", middleware.RequireConfirmation(DeleteMachinePrompt), machines.Delete)

		api.GET("/jobcards", jobCards.List)
		api.GET("/jobcards/new", jobCards.New)
		api.POST("/jobcards", jobCards.Create)
		api.GET("/jobcards/:id", jobCards.Get)
		api.PUT("/jobcards/:id", jobCards.Update)
		api.DELETE("/jobcards/:id", middleware.RequireConfirmation(DeleteJobCardPrompt), jobCards.Delete)
		api.GET("/jobcards/:id/print", jobCards.Print)

		api.GET("/reports/monthly", reports.Monthly)
		api.GET("/reports/monthly/export", reports.Export)
		api.PUT("/reports/monthly/jobcards/:id/parts-cost", reports.UpdatePartsCost)
		api.GET("/dashboard", reports.Dashboard)

		api.POST("/insight", limiter.RateLimit(insightRateLimit, insightRateWindow), insights.Analyze)
		api.POST("/sync", syncs.Start)
	}

	return router
}
