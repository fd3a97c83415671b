package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/voxly/voxly-api/internal/domain/entity"
	"github.com/voxly/voxly-api/internal/domain/repository"
)

var _ repository.SurveyRepository = (*SurveyRepo)(nil)

// SurveyRepo implementación del puerto SurveyRepository sobre PostgreSQL.
type SurveyRepo struct {
	pool *pgxpool.Pool
}

// NewSurveyRepository construye el adaptador de persistencia para encuestas.
func NewSurveyRepository(pool *pgxpool.Pool) *SurveyRepo {
	return &SurveyRepo{pool: pool}
}

const surveyColumns = "id, seller_id, name, type, created_by, created_at, updated_at, deleted_at"

// Create persiste una nueva encuesta.
func (r *SurveyRepo) Create(s *entity.Survey) error {
	query := `
		INSERT INTO surveys (seller_id, name, type, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5) RETURNING id`
	err := r.pool.QueryRow(context.Background(), query,
		s.SellerID, s.Name, s.Type, s.CreatedBy, s.CreatedAt,
	).Scan(&s.ID)
	if err != nil {
		return fmt.Errorf("insert survey: %w", err)
	}
	return nil
}

// GetByID obtiene una encuesta viva por ID; (nil, nil) si no existe.
func (r *SurveyRepo) GetByID(id int64) (*entity.Survey, error) {
	query := `SELECT ` + surveyColumns + ` FROM surveys WHERE id = $1 AND ` + liveFilter
	var s entity.Survey
	err := r.pool.QueryRow(context.Background(), query, id).Scan(
		&s.ID, &s.SellerID, &s.Name, &s.Type, &s.CreatedBy,
		&s.CreatedAt, &s.UpdatedAt, &s.DeletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get survey by id: %w", err)
	}
	return &s, nil
}

// ListBySeller lista las encuestas vivas de un vendedor.
func (r *SurveyRepo) ListBySeller(sellerID int64) ([]*entity.Survey, error) {
	query := `SELECT ` + surveyColumns + ` FROM surveys WHERE seller_id = $1 AND ` + liveFilter + `
		ORDER BY created_at DESC`
	rows, err := r.pool.Query(context.Background(), query, sellerID)
	if err != nil {
		return nil, fmt.Errorf("list surveys: %w", err)
	}
	defer rows.Close()
	var list []*entity.Survey
	for rows.Next() {
		var s entity.Survey
		if err := rows.Scan(&s.ID, &s.SellerID, &s.Name, &s.Type, &s.CreatedBy,
			&s.CreatedAt, &s.UpdatedAt, &s.DeletedAt); err != nil {
			return nil, fmt.Errorf("scan survey: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// AddResponse registra una respuesta individual.
func (r *SurveyRepo) AddResponse(sr *entity.SurveyResponse) error {
	query := `
		INSERT INTO survey_responses (survey_id, score, comment, created_at)
		VALUES ($1, $2, $3, $4) RETURNING id`
	err := r.pool.QueryRow(context.Background(), query,
		sr.SurveyID, sr.Score, sr.Comment, sr.CreatedAt,
	).Scan(&sr.ID)
	if err != nil {
		return fmt.Errorf("insert survey response: %w", err)
	}
	return nil
}

// Stats devuelve conteo y promedio de score. El AVG llega como NUMERIC y el
// codec del pool lo entrega directamente como decimal.Decimal.
func (r *SurveyRepo) Stats(surveyID int64) (*repository.SurveyStats, error) {
	query := `
		SELECT COUNT(*), COALESCE(AVG(score)::numeric, 0)
		FROM survey_responses WHERE survey_id = $1`
	var stats repository.SurveyStats
	var avg decimal.Decimal
	err := r.pool.QueryRow(context.Background(), query, surveyID).Scan(&stats.Responses, &avg)
	if err != nil {
		return nil, fmt.Errorf("survey stats: %w", err)
	}
	stats.AverageScore = avg
	return &stats, nil
}
