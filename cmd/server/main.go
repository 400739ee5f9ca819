package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"focus-writer/internal/config"
	"focus-writer/internal/handler"
	"focus-writer/internal/logger"
	"focus-writer/internal/middleware"
	"focus-writer/internal/service"
	"focus-writer/internal/store"
)

func main() {
	configFile := flag.String("config", "", "config file path (e.g. etc/config-dev.yaml)")
	flag.Parse()

	cfg := config.Load(*configFile)
	logger.Init(cfg.Log)
	middleware.Init(cfg.Auth.JWTSecret)

	db, err := cfg.OpenGormDB()
	if err != nil {
		slog.Error("db connect failed", "err", err)
		os.Exit(1)
	}

	st := store.NewGormStore(db)
	if err := st.AutoMigrate(); err != nil {
		slog.Error("schema migrate failed", "err", err)
		os.Exit(1)
	}

	authSvc := service.NewAuthService(db)
	billingSvc := service.NewBillingService(st)
	projectSvc := service.NewProjectService(st, billingSvc)
	planSvc := service.NewPlanService(st)
	progressSvc := service.NewProgressService(st, billingSvc)
	migrateSvc := service.NewMigrateService(st)

	authH := handler.NewAuthHandler(authSvc)
	planH := handler.NewPlanHandler(projectSvc, planSvc)
	todayH := handler.NewTodayHandler(st)
	migrateH := handler.NewMigrateHandler(migrateSvc)
	miscH := handler.NewMiscHandler(st, billingSvc, progressSvc)

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	r.GET("/api/health", miscH.Health)
	r.POST("/api/login", authH.Login)
	r.POST("/api/register", authH.Register)

	api := r.Group("/api", middleware.JWTAuth())
	api.POST("/onboarding", planH.Onboard)
	api.GET("/plan", planH.Plan)
	api.POST("/plan/recalibrate", planH.Recalibrate)
	api.POST("/plan/catchup", planH.CatchUp)
	api.POST("/projects/:id/activate", planH.SetActive)

	api.GET("/today", todayH.Today)
	api.POST("/today/clarity", todayH.Clarity)
	api.POST("/today/checkin", todayH.CheckIn)
	api.POST("/today/signup-seen", todayH.SignupSeen)
	api.POST("/today/next-step", todayH.NextStep)
	api.POST("/today/intervention", todayH.Intervention)

	api.GET("/progress", miscH.Progress)
	api.GET("/settings", miscH.GetSettings)
	api.PUT("/settings", miscH.PutSettings)
	api.GET("/billing", miscH.Billing)
	api.POST("/migrate", migrateH.Migrate)

	slog.Info("server starting", "addr", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		slog.Error("server failed", "err", err)
	}
}
