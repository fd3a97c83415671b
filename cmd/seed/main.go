// seed puebla la base con datos iniciales de desarrollo: una entidad de
// administración con su usuario admin y una entidad demo con manager, tienda,
// vendedores y encuestas de ejemplo.
//
// Uso: go run ./cmd/seed
// Es idempotente por email: si los usuarios ya existen no vuelve a insertar.
package main

import (
	"context"
	"time"

	"github.com/voxly/voxly-api/internal/domain/entity"
	"github.com/voxly/voxly-api/internal/infrastructure/postgres"
	"github.com/voxly/voxly-api/pkg/config"
	"github.com/voxly/voxly-api/pkg/logger"
	"github.com/voxly/voxly-api/pkg/password"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

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
	surveyRepo := postgres.NewSurveyRepository(pool)
	hasher := password.NewHasher(cfg.Auth.BcryptCost)

	now := time.Now()

	// Entidad de administración + usuario admin
	existing, err := userRepo.GetByEmail("admin@voxly.com")
	if err != nil {
		log.Fatal().Err(err).Msg("consultar usuario admin")
	}
	if existing != nil {
		log.Info().Msg("seed ya aplicado, nada que hacer")
		return
	}

	adminEntity := &entity.Entity{Name: "Administración", CreatedAt: now}
	if err := entityRepo.Create(adminEntity); err != nil {
		log.Fatal().Err(err).Msg("crear entidad de administración")
	}
	adminHash, err := hasher.Hash("admin123")
	if err != nil {
		log.Fatal().Err(err).Msg("hashear contraseña admin")
	}
	admin := &entity.User{
		EntityID:     adminEntity.ID,
		Name:         "Administrator",
		Email:        "admin@voxly.com",
		PasswordHash: adminHash,
		Role:         entity.RoleAdmin,
		CreatedAt:    now,
	}
	if err := userRepo.Create(admin); err != nil {
		log.Fatal().Err(err).Msg("crear usuario admin")
	}
	log.Info().Int64("entity_id", adminEntity.ID).Str("email", admin.Email).Msg("admin creado")

	// Entidad demo con manager, tienda y vendedores
	demoEntity := &entity.Entity{Name: "Empresa Demo", CreatedAt: now}
	if err := entityRepo.Create(demoEntity); err != nil {
		log.Fatal().Err(err).Msg("crear entidad demo")
	}
	demoHash, err := hasher.Hash("demo123")
	if err != nil {
		log.Fatal().Err(err).Msg("hashear contraseña demo")
	}
	manager := &entity.User{
		EntityID:     demoEntity.ID,
		Name:         "Manager Demo",
		Email:        "demo@voxly.com",
		PasswordHash: demoHash,
		Role:         entity.RoleManager,
		CreatedAt:    now,
	}
	if err := userRepo.Create(manager); err != nil {
		log.Fatal().Err(err).Msg("crear usuario manager")
	}

	store := &entity.Store{EntityID: demoEntity.ID, Name: "Tienda Principal", CreatedAt: now}
	if err := storeRepo.Create(store); err != nil {
		log.Fatal().Err(err).Msg("crear tienda demo")
	}

	sellers := []*entity.Seller{
		{StoreID: store.ID, Name: "Vendedor Uno", Email: "vendedor1@voxly.com", CreatedAt: now},
		{StoreID: store.ID, Name: "Vendedor Dos", Email: "vendedor2@voxly.com", CreatedAt: now},
	}
	for _, s := range sellers {
		if err := sellerRepo.Create(s); err != nil {
			log.Fatal().Err(err).Str("email", s.Email).Msg("crear vendedor")
		}
	}

	// Encuestas NPS de ejemplo con algunas respuestas
	for i, s := range sellers {
		survey := &entity.Survey{
			SellerID:  s.ID,
			Name:      "NPS " + s.Name,
			Type:      entity.SurveyTypeNPS,
			CreatedBy: manager.ID,
			CreatedAt: now,
		}
		if err := surveyRepo.Create(survey); err != nil {
			log.Fatal().Err(err).Msg("crear encuesta")
		}
		for _, score := range [][]int{{9, 8, 10}, {7, 6}}[i] {
			resp := &entity.SurveyResponse{SurveyID: survey.ID, Score: score, CreatedAt: now}
			if err := surveyRepo.AddResponse(resp); err != nil {
				log.Fatal().Err(err).Msg("crear respuesta de encuesta")
			}
		}
	}

	log.Info().
		Int64("demo_entity_id", demoEntity.ID).
		Int64("store_id", store.ID).
		Msg("seed aplicado")
}
