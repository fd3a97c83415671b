package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/voxly/voxly-api/internal/application/access"
	"github.com/voxly/voxly-api/internal/application/auth"
	"github.com/voxly/voxly-api/internal/application/usecase"
	"github.com/voxly/voxly-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC    *auth.AuthUseCase
	UserUC    *usecase.UserUseCase
	StoreUC   *usecase.StoreUseCase
	SellerUC  *usecase.SellerUseCase
	SurveyUC  *usecase.SurveyUseCase
	Guard     *access.Guard
	JWTSecret string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/forgot-password", authHandler.ForgotPassword)
	authGroup.Post("/reset-password", authHandler.ResetPassword)

	// Respuestas de encuestas (público, las consumen los clientes finales)
	surveyHandler := NewSurveyHandler(deps.SurveyUC, deps.Guard)
	api.Post("/surveys/:surveyId/responses", surveyHandler.AddResponse)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Perfil y refresh del usuario autenticado
	authProtected := protected.Group("/auth")
	authProtected.Get("/profile", authHandler.Profile)
	authProtected.Put("/profile", authHandler.UpdateProfile)
	authProtected.Post("/refresh", authHandler.Refresh)

	// Users (protegido; las mutaciones requieren rol admin)
	users := protected.Group("/users")
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/", userHandler.List)
	users.Get("/:id", userHandler.GetByID)
	users.Post("/register", RequireRole(entity.RoleAdmin), userHandler.Create)
	users.Put("/:id", RequireRole(entity.RoleAdmin), userHandler.Update)
	users.Delete("/:id", RequireRole(entity.RoleAdmin), userHandler.Delete)

	// Stores (protegido)
	stores := protected.Group("/stores")
	storeHandler := NewStoreHandler(deps.StoreUC, deps.Guard)
	stores.Post("/register", storeHandler.Create)
	stores.Get("/entity/:entityId", storeHandler.ListByEntity)
	stores.Get("/:storeId", storeHandler.GetByID)
	stores.Put("/:storeId", storeHandler.Update)
	stores.Delete("/:storeId", storeHandler.Delete)

	// Sellers (protegido)
	sellers := protected.Group("/sellers")
	sellerHandler := NewSellerHandler(deps.SellerUC, deps.Guard)
	sellers.Post("/register", sellerHandler.Create)
	sellers.Get("/store/:storeId", sellerHandler.ListByStore)
	sellers.Get("/:sellerId", sellerHandler.GetByID)
	sellers.Put("/:sellerId", sellerHandler.Update)
	sellers.Delete("/:sellerId", sellerHandler.Delete)

	// Surveys (protegido, gestión)
	surveys := protected.Group("/surveys")
	surveys.Post("/", surveyHandler.Create)
	surveys.Get("/seller/:sellerId", surveyHandler.ListBySeller)
	surveys.Get("/:surveyId/stats", surveyHandler.Stats)
	surveys.Get("/:surveyId", surveyHandler.GetByID)
}
