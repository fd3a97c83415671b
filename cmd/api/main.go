package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/voxly/voxly-api/internal/application/access"
	"github.com/voxly/voxly-api/internal/application/auth"
	"github.com/voxly/voxly-api/internal/application/usecase"
	"github.com/voxly/voxly-api/internal/infrastructure/mail"
	"github.com/voxly/voxly-api/internal/infrastructure/postgres"
	httpRouter "github.com/voxly/voxly-api/internal/interfaces/http"
	"github.com/voxly/voxly-api/pkg/config"
	"github.com/voxly/voxly-api/pkg/logger"
	"github.com/voxly/voxly-api/pkg/password"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	entityRepo := postgres.NewEntityRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	storeRepo := postgres.NewStoreRepository(pool)
	sellerRepo := postgres.NewSellerRepository(pool)
	resetRepo := postgres.NewPasswordResetRepository(pool)
	surveyRepo := postgres.NewSurveyRepository(pool)

	hasher := password.NewHasher(cfg.Auth.BcryptCost)
	resetSender := mail.NewLogSender(log, cfg.Auth.PublicResetURL)

	authUC := auth.NewAuthUseCase(
		userRepo, entityRepo, resetRepo, hasher, resetSender,
		auth.JWTConfig{
			Secret:     cfg.JWT.Secret,
			ExpMinutes: cfg.JWT.Expiration,
			Issuer:     cfg.JWT.Issuer,
		},
		time.Duration(cfg.Auth.ResetTokenTTL)*time.Minute,
	)
	userUC := usecase.NewUserUseCase(userRepo, entityRepo, hasher)
	storeUC := usecase.NewStoreUseCase(storeRepo, entityRepo)
	sellerUC := usecase.NewSellerUseCase(sellerRepo, storeRepo)
	surveyUC := usecase.NewSurveyUseCase(surveyRepo, sellerRepo)
	guard := access.NewGuard(storeRepo, sellerRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Voxly API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:    authUC,
		UserUC:    userUC,
		StoreUC:   storeUC,
		SellerUC:  sellerUC,
		SurveyUC:  surveyUC,
		Guard:     guard,
		JWTSecret: cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
