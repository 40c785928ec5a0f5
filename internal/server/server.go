package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	achievementdomain "github.com/smallbiznis/tycoon/internal/achievement/domain"
	businessdomain "github.com/smallbiznis/tycoon/internal/business/domain"
	"github.com/smallbiznis/tycoon/internal/config"
	dashboarddomain "github.com/smallbiznis/tycoon/internal/dashboard/domain"
	employeedomain "github.com/smallbiznis/tycoon/internal/employee/domain"
	historydomain "github.com/smallbiznis/tycoon/internal/history/domain"
	investmentdomain "github.com/smallbiznis/tycoon/internal/investment/domain"
	leaderboarddomain "github.com/smallbiznis/tycoon/internal/leaderboard/domain"
	lifechoicedomain "github.com/smallbiznis/tycoon/internal/lifechoice/domain"
	marketeventdomain "github.com/smallbiznis/tycoon/internal/marketevent/domain"
	obsmiddleware "github.com/smallbiznis/tycoon/internal/observability/logger"
	obsmetrics "github.com/smallbiznis/tycoon/internal/observability/metrics"
	playerdomain "github.com/smallbiznis/tycoon/internal/player/domain"
	"github.com/smallbiznis/tycoon/internal/ratelimit"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Module("http.server",
	fx.Provide(registerGin),
	fx.Invoke(NewServer),
	fx.Invoke(run),
)

func NewEngine(log *zap.Logger, httpMetrics *obsmetrics.HTTPMetrics) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(obsmiddleware.GinMiddleware(obsmiddleware.MiddlewareConfig{
		Log:             log,
		ErrorClassifier: classifyErrorForLog,
	}))
	r.Use(obsmetrics.GinMiddleware(httpMetrics))
	r.Use(ErrorHandlingMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "ok",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}

func registerGin(log *zap.Logger, httpMetrics *obsmetrics.HTTPMetrics) *gin.Engine {
	return NewEngine(log, httpMetrics)
}

func run(lc fx.Lifecycle, r *gin.Engine, cfg config.Config) {
	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: r,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					panic(err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	})
}

type Server struct {
	engine          *gin.Engine
	cfg             config.Config
	mutationLimiter *ratelimit.MutationLimiter

	playerSvc      playerdomain.Service
	businessSvc    businessdomain.Service
	employeeSvc    employeedomain.Service
	marketEventSvc marketeventdomain.Service
	lifeChoiceSvc  lifechoicedomain.Service
	investmentSvc  investmentdomain.Service
	achievementSvc achievementdomain.Service
	historySvc     historydomain.Service
	dashboardSvc   dashboarddomain.Service
	leaderboardSvc leaderboarddomain.Service
}

type ServerParams struct {
	fx.In

	Gin             *gin.Engine
	Cfg             config.Config
	MutationLimiter *ratelimit.MutationLimiter `optional:"true"`

	PlayerSvc      playerdomain.Service
	BusinessSvc    businessdomain.Service
	EmployeeSvc    employeedomain.Service
	MarketEventSvc marketeventdomain.Service
	LifeChoiceSvc  lifechoicedomain.Service
	InvestmentSvc  investmentdomain.Service
	AchievementSvc achievementdomain.Service
	HistorySvc     historydomain.Service
	DashboardSvc   dashboarddomain.Service
	LeaderboardSvc leaderboarddomain.Service
}

func NewServer(p ServerParams) *Server {
	s := &Server{
		engine:          p.Gin,
		cfg:             p.Cfg,
		mutationLimiter: p.MutationLimiter,
		playerSvc:       p.PlayerSvc,
		businessSvc:     p.BusinessSvc,
		employeeSvc:     p.EmployeeSvc,
		marketEventSvc:  p.MarketEventSvc,
		lifeChoiceSvc:   p.LifeChoiceSvc,
		investmentSvc:   p.InvestmentSvc,
		achievementSvc:  p.AchievementSvc,
		historySvc:      p.HistorySvc,
		dashboardSvc:    p.DashboardSvc,
		leaderboardSvc:  p.LeaderboardSvc,
	}
	s.RegisterRoutes()
	return s
}

func (s *Server) RegisterRoutes() {
	api := s.engine.Group("/api/v1")
	api.Use(PlayerIdentityMiddleware())

	mutations := s.MutationRateLimitMiddleware()

	players := api.Group("/players")
	{
		players.POST("", mutations, s.CreatePlayer)
		players.GET("/:id", s.GetPlayerByID)
		players.PATCH("/:id", mutations, s.UpdatePlayer)
		players.GET("/:id/businesses", s.ListBusinesses)
		players.GET("/:id/life-choices", s.ListLifeChoices)
		players.GET("/:id/investments", s.ListInvestments)
		players.GET("/:id/achievements", s.ListAchievements)
		players.GET("/:id/wealth-history", s.ListPlayerWealthHistory)
		players.GET("/:id/dashboard", s.GetDashboard)
	}

	businesses := api.Group("/businesses")
	{
		businesses.POST("", mutations, s.CreateBusiness)
		businesses.PATCH("/:id", mutations, s.UpdateBusiness)
		businesses.GET("/:id/employees", s.ListEmployees)
		businesses.GET("/:id/performance-history", s.ListBusinessPerformance)
		businesses.POST("/:id/performance-history", mutations, s.RecordBusinessPerformance)
	}

	employees := api.Group("/employees")
	{
		employees.POST("", mutations, s.HireEmployee)
		employees.PATCH("/:id", mutations, s.UpdateEmployee)
	}

	events := api.Group("/market-events")
	{
		events.POST("", mutations, s.CreateMarketEvent)
		events.GET("/active", s.ListActiveMarketEvents)
	}

	api.POST("/life-choices", mutations, s.CreateLifeChoice)

	investments := api.Group("/investments")
	{
		investments.POST("", mutations, s.CreateInvestment)
		investments.POST("/:id/complete", mutations, s.CompleteInvestment)
	}

	api.POST("/achievements", mutations, s.CreateAchievement)
	api.POST("/players/:id/wealth-history", mutations, s.RecordPlayerWealth)

	api.GET("/leaderboard", s.GetLeaderboard)
}
