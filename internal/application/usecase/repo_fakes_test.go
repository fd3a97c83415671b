package usecase

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/voxly/voxly-api/internal/domain"
	"github.com/voxly/voxly-api/internal/domain/entity"
	"github.com/voxly/voxly-api/internal/domain/repository"
)

// Fakes en memoria compartidos por los tests del paquete. Reproducen el
// contrato de los adaptadores de postgres: las lecturas aplican el predicado
// de vida y devuelven (nil, nil) cuando no hay fila viva.

type memEntityRepo struct {
	entities map[int64]*entity.Entity
	nextID   int64
}

func newMemEntityRepo() *memEntityRepo {
	return &memEntityRepo{entities: map[int64]*entity.Entity{}, nextID: 1}
}

func (r *memEntityRepo) Create(e *entity.Entity) error {
	e.ID = r.nextID
	r.nextID++
	cp := *e
	r.entities[e.ID] = &cp
	return nil
}

func (r *memEntityRepo) GetByID(id int64) (*entity.Entity, error) {
	e, ok := r.entities[id]
	if !ok || e.DeletedAt != nil {
		return nil, nil
	}
	cp := *e
	return &cp, nil
}

func (r *memEntityRepo) FindFirstLive() (*entity.Entity, error) {
	var first *entity.Entity
	for _, e := range r.entities {
		if e.DeletedAt != nil {
			continue
		}
		if first == nil || e.ID < first.ID {
			first = e
		}
	}
	if first == nil {
		return nil, nil
	}
	cp := *first
	return &cp, nil
}

type memUserRepo struct {
	users  map[int64]*entity.User
	nextID int64
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: map[int64]*entity.User{}, nextID: 1}
}

func (r *memUserRepo) Create(u *entity.User) error {
	u.ID = r.nextID
	r.nextID++
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *memUserRepo) GetByID(id int64) (*entity.User, error) {
	u, ok := r.users[id]
	if !ok || u.DeletedAt != nil {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *memUserRepo) GetByEmail(email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email && u.DeletedAt == nil {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) Update(u *entity.User) error {
	existing, ok := r.users[u.ID]
	if !ok || existing.DeletedAt != nil {
		return domain.ErrUserNotFound
	}
	cp := *u
	cp.EntityID = existing.EntityID // el UPDATE real no incluye entity_id en el SET
	r.users[u.ID] = &cp
	return nil
}

func (r *memUserRepo) UpdatePassword(id int64, passwordHash string) error {
	u, ok := r.users[id]
	if !ok || u.DeletedAt != nil {
		return domain.ErrUserNotFound
	}
	u.PasswordHash = passwordHash
	return nil
}

func (r *memUserRepo) ListByEntity(entityID int64) ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range r.users {
		if u.EntityID == entityID && u.DeletedAt == nil {
			cp := *u
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *memUserRepo) SoftDelete(id int64) error {
	u, ok := r.users[id]
	if !ok || u.DeletedAt != nil {
		return domain.ErrUserNotFound
	}
	now := time.Now()
	u.DeletedAt = &now
	return nil
}

type memStoreRepo struct {
	stores map[int64]*entity.Store
	nextID int64
}

func newMemStoreRepo() *memStoreRepo {
	return &memStoreRepo{stores: map[int64]*entity.Store{}, nextID: 1}
}

func (r *memStoreRepo) Create(s *entity.Store) error {
	s.ID = r.nextID
	r.nextID++
	cp := *s
	r.stores[s.ID] = &cp
	return nil
}

func (r *memStoreRepo) GetByID(id int64) (*entity.Store, error) {
	s, ok := r.stores[id]
	if !ok || s.DeletedAt != nil {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (r *memStoreRepo) GetByNameInEntity(entityID int64, name string) (*entity.Store, error) {
	for _, s := range r.stores {
		if s.EntityID == entityID && s.Name == name && s.DeletedAt == nil {
			cp := *s
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memStoreRepo) ListByEntity(entityID int64) ([]*entity.Store, error) {
	var out []*entity.Store
	for _, s := range r.stores {
		if s.EntityID == entityID && s.DeletedAt == nil {
			cp := *s
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *memStoreRepo) Update(s *entity.Store) error {
	existing, ok := r.stores[s.ID]
	if !ok || existing.DeletedAt != nil {
		return domain.ErrNotFound
	}
	cp := *s
	r.stores[s.ID] = &cp
	return nil
}

func (r *memStoreRepo) SoftDelete(id int64) error {
	s, ok := r.stores[id]
	if !ok || s.DeletedAt != nil {
		return domain.ErrNotFound
	}
	now := time.Now()
	s.DeletedAt = &now
	return nil
}

type memSellerRepo struct {
	sellers map[int64]*entity.Seller
	nextID  int64
}

func newMemSellerRepo() *memSellerRepo {
	return &memSellerRepo{sellers: map[int64]*entity.Seller{}, nextID: 1}
}

func (r *memSellerRepo) Create(s *entity.Seller) error {
	s.ID = r.nextID
	r.nextID++
	cp := *s
	r.sellers[s.ID] = &cp
	return nil
}

func (r *memSellerRepo) GetByID(id int64) (*entity.Seller, error) {
	s, ok := r.sellers[id]
	if !ok || s.DeletedAt != nil {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (r *memSellerRepo) GetByEmail(email string) (*entity.Seller, error) {
	for _, s := range r.sellers {
		if s.Email == email && s.DeletedAt == nil {
			cp := *s
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memSellerRepo) ListByStore(storeID int64) ([]*entity.Seller, error) {
	var out []*entity.Seller
	for _, s := range r.sellers {
		if s.StoreID == storeID && s.DeletedAt == nil {
			cp := *s
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *memSellerRepo) Update(s *entity.Seller) error {
	existing, ok := r.sellers[s.ID]
	if !ok || existing.DeletedAt != nil {
		return domain.ErrNotFound
	}
	cp := *s
	r.sellers[s.ID] = &cp
	return nil
}

func (r *memSellerRepo) SoftDelete(id int64) error {
	s, ok := r.sellers[id]
	if !ok || s.DeletedAt != nil {
		return domain.ErrNotFound
	}
	now := time.Now()
	s.DeletedAt = &now
	return nil
}

type memSurveyRepo struct {
	surveys   map[int64]*entity.Survey
	responses []*entity.SurveyResponse
	nextID    int64
}

func newMemSurveyRepo() *memSurveyRepo {
	return &memSurveyRepo{surveys: map[int64]*entity.Survey{}, nextID: 1}
}

func (r *memSurveyRepo) Create(s *entity.Survey) error {
	s.ID = r.nextID
	r.nextID++
	cp := *s
	r.surveys[s.ID] = &cp
	return nil
}

func (r *memSurveyRepo) GetByID(id int64) (*entity.Survey, error) {
	s, ok := r.surveys[id]
	if !ok || s.DeletedAt != nil {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (r *memSurveyRepo) ListBySeller(sellerID int64) ([]*entity.Survey, error) {
	var out []*entity.Survey
	for _, s := range r.surveys {
		if s.SellerID == sellerID && s.DeletedAt == nil {
			cp := *s
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *memSurveyRepo) AddResponse(resp *entity.SurveyResponse) error {
	cp := *resp
	r.responses = append(r.responses, &cp)
	return nil
}

func (r *memSurveyRepo) Stats(surveyID int64) (*repository.SurveyStats, error) {
	var count int64
	sum := decimal.Zero
	for _, resp := range r.responses {
		if resp.SurveyID == surveyID {
			count++
			sum = sum.Add(decimal.NewFromInt(int64(resp.Score)))
		}
	}
	avg := decimal.Zero
	if count > 0 {
		avg = sum.Div(decimal.NewFromInt(count))
	}
	return &repository.SurveyStats{Responses: count, AverageScore: avg}, nil
}
