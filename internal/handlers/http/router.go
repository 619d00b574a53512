package http

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/rafabene/hiresphere-backend/internal/domain/entities"
	"github.com/rafabene/hiresphere-backend/internal/domain/ports"
	"github.com/rafabene/hiresphere-backend/internal/handlers/middleware"
	"github.com/rafabene/hiresphere-backend/internal/infrastructure/i18n"
)

// Handlers agrupa os handlers registrados no router
type Handlers struct {
	Auth        *AuthHandler
	User        *UserHandler
	Company     *CompanyHandler
	Category    *CategoryHandler
	Job         *JobHandler
	Application *ApplicationHandler
	Home        *HomeHandler
	WebSocket   *WebSocketHandler
	Health      *HealthHandler
}

// RouterConfig contém as dependências transversais do router
type RouterConfig struct {
	BaseURL        string
	AllowedOrigins []string
	EnableSwagger  bool
	Tokens         ports.TokenIssuer
	I18n           *i18n.Service
	Logger         ports.Logger
}

// NewRouter monta o engine Gin com middlewares e rotas
func NewRouter(cfg RouterConfig, h Handlers) *gin.Engine {
	router := gin.New()

	router.Use(middleware.Recovery(cfg.Logger))
	router.Use(middleware.RequestLogger(cfg.Logger))

	// Base URL usada no campo type dos problem details
	router.Use(func(c *gin.Context) {
		c.Set("base_url", cfg.BaseURL)
		c.Next()
	})

	router.Use(middleware.NewI18nMiddleware(cfg.I18n).DetectLanguage())
	router.Use(middleware.CORS(cfg.AllowedOrigins))

	router.GET("/health", h.Health.Health)
	if cfg.EnableSwagger {
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	auth := middleware.NewAuthMiddleware(cfg.Tokens, cfg.Logger)
	requireAuth := auth.RequireAuth()
	adminOnly := middleware.RequireRoles(entities.RoleAdmin)

	api := router.Group("/api")
	{
		authRoutes := api.Group("/auth")
		{
			authRoutes.POST("/register", h.Auth.Register)
			authRoutes.POST("/login", h.Auth.Login)
			authRoutes.POST("/refresh", h.Auth.Refresh)
			authRoutes.POST("/logout", h.Auth.Logout)
			authRoutes.POST("/forgot-password", h.Auth.ForgotPassword)
			authRoutes.POST("/reset-password", h.Auth.ResetPassword)
			authRoutes.GET("/me", requireAuth, h.Auth.Me)
		}

		users := api.Group("/user", requireAuth)
		{
			users.GET("", h.User.ListUsers)
			users.GET("/:id", h.User.GetUser)
			users.PUT("/:id", h.User.UpdateUser)
			users.PATCH("/:id/email", h.User.ChangeEmail)
			users.PATCH("/:id/password", h.User.ChangePassword)
			users.PATCH("/:id/role", adminOnly, h.User.ChangeRole)
			users.DELETE("/:id", h.User.DeleteUser)
		}

		companies := api.Group("/company")
		{
			companies.GET("", h.Company.ListCompanies)
			companies.GET("/:id", h.Company.GetCompany)
			companies.GET("/owner/:id", h.Company.ListByOwner)
			companies.POST("", requireAuth, h.Company.CreateCompany)
			companies.PUT("/:id", requireAuth, h.Company.UpdateCompany)
			companies.PATCH("/:id/logo", requireAuth, h.Company.UpdateLogo)
			companies.DELETE("/:id", requireAuth, h.Company.DeleteCompany)
		}

		categories := api.Group("/category")
		{
			categories.GET("", h.Category.ListCategories)
			categories.GET("/:id", h.Category.GetCategory)
			categories.GET("/slug/:slug", h.Category.GetBySlug)
			categories.GET("/name/:name", h.Category.GetByName)
			categories.GET("/search/:name", h.Category.SearchCategories)
			categories.POST("", requireAuth, adminOnly, h.Category.CreateCategory)
			categories.PUT("/:id", requireAuth, adminOnly, h.Category.UpdateCategory)
			categories.DELETE("/:id", requireAuth, adminOnly, h.Category.DeleteCategory)
		}

		jobs := api.Group("/job")
		{
			jobs.GET("", h.Job.SearchJobs)
			jobs.GET("/active", h.Job.ListActive)
			jobs.GET("/:id", h.Job.GetJob)
			jobs.GET("/company/:id", h.Job.ListByCompany)
			jobs.GET("/category/:id", h.Job.ListByCategory)
			jobs.POST("", requireAuth, h.Job.CreateJob)
			jobs.PUT("/:id", requireAuth, h.Job.UpdateJob)
			jobs.PATCH("/:id/activate", requireAuth, h.Job.ActivateJob)
			jobs.PATCH("/:id/deactivate", requireAuth, h.Job.DeactivateJob)
			jobs.PATCH("/:id/extend", requireAuth, h.Job.ExtendJob)
			jobs.DELETE("/:id", requireAuth, h.Job.DeleteJob)
		}

		applications := api.Group("/jobapplication", requireAuth)
		{
			applications.POST("", h.Application.Apply)
			applications.GET("", h.Application.SearchApplications)
			applications.GET("/:id", h.Application.GetApplication)
			applications.GET("/job/:id", h.Application.ListByJob)
			applications.GET("/job/:id/applicant/:applicantId", h.Application.GetByJobAndApplicant)
			applications.GET("/applicant/:id", h.Application.ListByApplicant)
			applications.GET("/status/:status", h.Application.ListByStatus)
			applications.PATCH("/:id/status", h.Application.ChangeStatus)
			applications.PATCH("/:id/cover-letter", h.Application.UpdateCoverLetter)
			applications.DELETE("/:id", h.Application.DeleteApplication)
		}

		home := api.Group("/home")
		{
			home.GET("", h.Home.Overview)
			home.GET("/jobs", h.Home.SearchJobs)
			home.GET("/featured-jobs", h.Home.FeaturedJobs)
		}

		api.GET("/ws/applications", auth.RequireAuthWS(), h.WebSocket.Applications)
	}

	return router
}
