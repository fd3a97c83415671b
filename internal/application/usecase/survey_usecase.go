package usecase

import (
	"time"

	"github.com/voxly/voxly-api/internal/application/dto"
	"github.com/voxly/voxly-api/internal/domain"
	"github.com/voxly/voxly-api/internal/domain/entity"
	"github.com/voxly/voxly-api/internal/domain/repository"
)

// SurveyUseCase casos de uso para encuestas de vendedores y sus respuestas.
type SurveyUseCase struct {
	surveyRepo repository.SurveyRepository
	sellerRepo repository.SellerRepository
}

// NewSurveyUseCase construye el caso de uso.
func NewSurveyUseCase(surveyRepo repository.SurveyRepository, sellerRepo repository.SellerRepository) *SurveyUseCase {
	return &SurveyUseCase{surveyRepo: surveyRepo, sellerRepo: sellerRepo}
}

// Create crea una encuesta sobre un vendedor vivo. El check de pertenencia al
// tenant del caller lo hace el guard en la capa HTTP antes de llegar aquí.
func (uc *SurveyUseCase) Create(createdBy int64, in dto.CreateSurveyRequest) (*dto.SurveyResponse, error) {
	if in.Type != entity.SurveyTypeNPS && in.Type != entity.SurveyTypeCSAT {
		return nil, domain.ErrInvalidInput
	}
	seller, err := uc.sellerRepo.GetByID(in.SellerID)
	if err != nil {
		return nil, err
	}
	if seller == nil {
		return nil, domain.ErrNotFound
	}
	survey := &entity.Survey{
		SellerID:  in.SellerID,
		Name:      in.Name,
		Type:      in.Type,
		CreatedBy: createdBy,
		CreatedAt: time.Now(),
	}
	if err := uc.surveyRepo.Create(survey); err != nil {
		return nil, err
	}
	return toSurveyResponse(survey), nil
}

// GetByID obtiene una encuesta viva; (nil, nil) si no existe.
func (uc *SurveyUseCase) GetByID(id int64) (*dto.SurveyResponse, error) {
	survey, err := uc.surveyRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if survey == nil {
		return nil, nil
	}
	return toSurveyResponse(survey), nil
}

// ListBySeller lista las encuestas vivas de un vendedor.
func (uc *SurveyUseCase) ListBySeller(sellerID int64) ([]dto.SurveyResponse, error) {
	surveys, err := uc.surveyRepo.ListBySeller(sellerID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SurveyResponse, 0, len(surveys))
	for _, s := range surveys {
		out = append(out, *toSurveyResponse(s))
	}
	return out, nil
}

// AddResponse registra una respuesta (score 0..10) sobre una encuesta viva.
func (uc *SurveyUseCase) AddResponse(surveyID int64, in dto.AddSurveyResponseRequest) error {
	if in.Score < 0 || in.Score > 10 {
		return domain.ErrInvalidInput
	}
	survey, err := uc.surveyRepo.GetByID(surveyID)
	if err != nil {
		return err
	}
	if survey == nil {
		return domain.ErrNotFound
	}
	return uc.surveyRepo.AddResponse(&entity.SurveyResponse{
		SurveyID:  surveyID,
		Score:     in.Score,
		Comment:   in.Comment,
		CreatedAt: time.Now(),
	})
}

// Stats devuelve conteo y promedio de score de una encuesta viva.
func (uc *SurveyUseCase) Stats(surveyID int64) (*dto.SurveyStatsResponse, error) {
	survey, err := uc.surveyRepo.GetByID(surveyID)
	if err != nil {
		return nil, err
	}
	if survey == nil {
		return nil, domain.ErrNotFound
	}
	stats, err := uc.surveyRepo.Stats(surveyID)
	if err != nil {
		return nil, err
	}
	return &dto.SurveyStatsResponse{
		SurveyID:     surveyID,
		Responses:    stats.Responses,
		AverageScore: stats.AverageScore.StringFixed(2),
	}, nil
}

func toSurveyResponse(s *entity.Survey) *dto.SurveyResponse {
	if s == nil {
		return nil
	}
	return &dto.SurveyResponse{
		ID:        s.ID,
		Name:      s.Name,
		Type:      s.Type,
		SellerID:  s.SellerID,
		CreatedBy: s.CreatedBy,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}
