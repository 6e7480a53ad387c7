package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/stylematch/stylematch-api/internal/audit"
	"github.com/stylematch/stylematch-api/internal/avatar"
	"github.com/stylematch/stylematch-api/internal/config"
	"github.com/stylematch/stylematch-api/internal/handlers"
	infraRepo "github.com/stylematch/stylematch-api/internal/infra/repository"
	"github.com/stylematch/stylematch-api/internal/middleware"
	"github.com/stylematch/stylematch-api/internal/models"
	"github.com/stylematch/stylematch-api/internal/session"
	ucAccount "github.com/stylematch/stylematch-api/internal/usecase/account"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, rdb *redis.Client, cfg *config.Config) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	accountRepo := infraRepo.NewAccountGormRepository(db)
	sessions := session.NewRedisStore(rdb)
	uploader := avatar.NewS3Uploader(cfg)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// USE CASES — ACCOUNTS
	// ======================================================
	updateClientUC := ucAccount.NewUpdateClientAccount(
		accountRepo,
		auditDispatcher,
	)

	deleteClientUC := ucAccount.NewDeleteClientAccount(
		accountRepo,
		auditDispatcher,
	)

	updateStylistUC := ucAccount.NewUpdateStylistAccount(
		accountRepo,
		auditDispatcher,
	)

	deleteStylistUC := ucAccount.NewDeleteStylistAccount(
		accountRepo,
		auditDispatcher,
	)

	deleteSelfUC := ucAccount.NewDeleteOwnAccount(
		accountRepo,
		sessions,
		auditDispatcher,
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(accountRepo, sessions, auditDispatcher, cfg)
	meHandler := handlers.NewMeHandler(accountRepo, deleteSelfUC, auditDispatcher)
	clientHandler := handlers.NewClientHandler(accountRepo, auditDispatcher)
	stylistHandler := handlers.NewStylistHandler(accountRepo)
	avatarHandler := handlers.NewAvatarHandler(accountRepo, uploader, auditDispatcher)

	adminHandler := handlers.NewAdminHandler(
		accountRepo,
		updateClientUC,
		deleteClientUC,
		updateStylistUC,
		deleteStylistUC,
	)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC
		// ------------------------------
		api.POST("/register", authHandler.Register)
		api.POST("/login", authHandler.Login)
		api.GET("/stylists", stylistHandler.Index)

		// ------------------------------
		// AUTHENTICATED
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg, sessions))
		{
			secured.POST("/logout", authHandler.Logout)

			secured.GET("/user", meHandler.GetMe)
			secured.PUT("/user", meHandler.UpdateMe)
			secured.PATCH("/user", meHandler.UpdateMe)
			secured.DELETE("/user", meHandler.DeleteMe)
			secured.POST("/user/avatar", avatarHandler.Upload)

			// ------------------------------
			// CLIENT SELF-SERVICE
			// ------------------------------
			client := secured.Group("/client")
			client.Use(middleware.RequireRole(
				models.RoleClient,
				"Only clients can access this resource.",
			))
			{
				client.PUT("/profile", clientHandler.UpdateProfile)
				client.PATCH("/profile", clientHandler.UpdateProfile)
				client.POST("/choose-stylist", clientHandler.ChooseStylist)
			}

			// ------------------------------
			// STYLIST SELF-SERVICE
			// ------------------------------
			stylist := secured.Group("/stylist")
			stylist.Use(middleware.RequireRole(
				models.RoleStylist,
				"Only stylists can access this resource.",
			))
			{
				stylist.PUT("/profile", stylistHandler.UpdateProfile)
				stylist.PATCH("/profile", stylistHandler.UpdateProfile)
				stylist.GET("/clients", stylistHandler.MyClients)
			}

			// ------------------------------
			// ADMIN DASHBOARD
			// ------------------------------
			admin := secured.Group("/admin")
			admin.Use(middleware.RequireAdminDashboard())
			{
				admin.GET("/clients", adminHandler.ListClients)
				admin.GET("/clients/:id", adminHandler.GetClient)
				admin.PUT("/clients/:id", adminHandler.UpdateClient)
				admin.DELETE("/clients/:id", adminHandler.DeleteClient)

				admin.GET("/stylists", adminHandler.ListStylists)
				admin.GET("/stylists/:id", adminHandler.GetStylist)
				admin.PUT("/stylists/:id", adminHandler.UpdateStylist)
				admin.DELETE("/stylists/:id", adminHandler.DeleteStylist)
			}
		}
	}
}
