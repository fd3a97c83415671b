package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voxly/voxly-api/internal/application/dto"
	"github.com/voxly/voxly-api/internal/domain"
	"github.com/voxly/voxly-api/internal/domain/entity"
)

func newSurveyFixture(t *testing.T) (*SurveyUseCase, *memSurveyRepo, *memSellerRepo) {
	t.Helper()
	surveys := newMemSurveyRepo()
	sellers := newMemSellerRepo()
	require.NoError(t, sellers.Create(&entity.Seller{StoreID: 1, Name: "Vendedor Uno", Email: "uno@test.com", CreatedAt: time.Now()}))
	return NewSurveyUseCase(surveys, sellers), surveys, sellers
}

func TestSurveyCreate_OK(t *testing.T) {
	uc, _, _ := newSurveyFixture(t)

	out, err := uc.Create(7, dto.CreateSurveyRequest{Name: "NPS Septiembre", Type: entity.SurveyTypeNPS, SellerID: 1})
	require.NoError(t, err)
	assert.Equal(t, entity.SurveyTypeNPS, out.Type)
	assert.Equal(t, int64(7), out.CreatedBy)
}

func TestSurveyCreate_TipoInvalido(t *testing.T) {
	uc, _, _ := newSurveyFixture(t)
	_, err := uc.Create(7, dto.CreateSurveyRequest{Name: "Encuesta", Type: "rating", SellerID: 1})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSurveyCreate_VendedorBorrado(t *testing.T) {
	uc, _, sellers := newSurveyFixture(t)
	now := time.Now()
	sellers.sellers[1].DeletedAt = &now

	_, err := uc.Create(7, dto.CreateSurveyRequest{Name: "Encuesta", Type: entity.SurveyTypeCSAT, SellerID: 1})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSurveyAddResponse_ScoreFueraDeRango(t *testing.T) {
	uc, _, _ := newSurveyFixture(t)
	created, err := uc.Create(7, dto.CreateSurveyRequest{Name: "NPS", Type: entity.SurveyTypeNPS, SellerID: 1})
	require.NoError(t, err)

	assert.ErrorIs(t, uc.AddResponse(created.ID, dto.AddSurveyResponseRequest{Score: 11}), domain.ErrInvalidInput)
	assert.ErrorIs(t, uc.AddResponse(created.ID, dto.AddSurveyResponseRequest{Score: -1}), domain.ErrInvalidInput)
	assert.NoError(t, uc.AddResponse(created.ID, dto.AddSurveyResponseRequest{Score: 0}), "0 es un score válido")
	assert.NoError(t, uc.AddResponse(created.ID, dto.AddSurveyResponseRequest{Score: 10}), "10 es un score válido")
}

func TestSurveyStats_PromedioConDosDecimales(t *testing.T) {
	uc, _, _ := newSurveyFixture(t)
	created, err := uc.Create(7, dto.CreateSurveyRequest{Name: "NPS", Type: entity.SurveyTypeNPS, SellerID: 1})
	require.NoError(t, err)

	for _, score := range []int{9, 7, 10} {
		require.NoError(t, uc.AddResponse(created.ID, dto.AddSurveyResponseRequest{Score: score}))
	}

	out, err := uc.Stats(created.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), out.Responses)
	assert.Equal(t, "8.67", out.AverageScore)
}

func TestSurveyStats_SinRespuestas(t *testing.T) {
	uc, _, _ := newSurveyFixture(t)
	created, err := uc.Create(7, dto.CreateSurveyRequest{Name: "CSAT", Type: entity.SurveyTypeCSAT, SellerID: 1})
	require.NoError(t, err)

	out, err := uc.Stats(created.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), out.Responses)
	assert.Equal(t, "0.00", out.AverageScore)
}

func TestSurveyStats_EncuestaInexistente(t *testing.T) {
	uc, _, _ := newSurveyFixture(t)
	_, err := uc.Stats(999)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
