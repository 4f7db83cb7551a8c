package main

import (
	"promptstudio/internal/config"
	"promptstudio/internal/db"
	"promptstudio/internal/logging"
	"promptstudio/internal/middleware"
	"promptstudio/internal/routes"
	"promptstudio/internal/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	if err := logging.Init(logging.Config{Level: cfg.LogLevel, Format: cfg.LogFormat}); err != nil {
		panic(err)
	}
	defer logging.Sync()

	counter, err := services.InitCounter(cfg.TokenizerModel)
	if err != nil {
		logging.L().Fatal("tokenizer setup failed", zap.Error(err))
	}

	services.InitAuthService(cfg.AuthSecret, cfg.TokenExpiry)
	services.InitExclusions(cfg.ExcludedExtensionSet())

	// Without a database the record endpoints report unavailable and the
	// tree's db/ and prompts/ groups stay empty.
	if cfg.DatabaseURL != "" {
		if err := db.Connect(cfg.DatabaseURL); err != nil {
			logging.L().Fatal("database setup failed", zap.Error(err))
		}
		if err := db.MigrationsUp("migrations"); err != nil {
			logging.L().Fatal("database migrations failed", zap.Error(err))
		}
	} else {
		logging.L().Warn("no database configured, record storage disabled")
	}

	extras, err := services.LoadExtraFiles()
	if err != nil {
		logging.L().Fatal("loading bundled extras failed", zap.Error(err))
	}

	github := services.NewGithubClient(cfg.GithubAPIBase, cfg.GithubToken, cfg.FetchTimeout)
	services.InitTreeBuilder(github, counter, extras)

	r := gin.Default()
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.CORSMiddleware(cfg.AllowedOrigins))
	r.Use(middleware.RateLimitMiddleware(middleware.NewRateLimiter()))

	// Serve static files and templates
	r.Static("/static", "./web/static")
	r.LoadHTMLGlob("./web/templates/*.html")

	routes.RegisterAPIRoutes(r)
	routes.RegisterStreamRoutes(r)

	// Dashboard route
	r.GET("/", func(c *gin.Context) {
		c.HTML(200, "dashboard.html", gin.H{
			"authEnabled": services.AuthEnabled(),
			"excluded":    cfg.ExcludedExtensions,
		})
	})

	logging.L().Info("listening", zap.String("addr", cfg.ListenAddr))
	if err := r.Run(cfg.ListenAddr); err != nil {
		logging.L().Fatal("server exited", zap.Error(err))
	}
}
