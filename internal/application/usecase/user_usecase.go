package usecase

import (
	"time"

	"github.com/voxly/voxly-api/internal/application/dto"
	"github.com/voxly/voxly-api/internal/domain"
	"github.com/voxly/voxly-api/internal/domain/entity"
	"github.com/voxly/voxly-api/internal/domain/repository"
	"github.com/voxly/voxly-api/pkg/password"
)

// UserUseCase casos de uso CRUD para usuarios, siempre dentro de una entidad.
type UserUseCase struct {
	userRepo   repository.UserRepository
	entityRepo repository.EntityRepository
	hasher     *password.Hasher
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(userRepo repository.UserRepository, entityRepo repository.EntityRepository, hasher *password.Hasher) *UserUseCase {
	return &UserUseCase{userRepo: userRepo, entityRepo: entityRepo, hasher: hasher}
}

// Create crea un usuario dentro de la entidad del caller (admin). La entidad
// se re-valida viva aunque venga de un token recién verificado.
func (uc *UserUseCase) Create(entityID int64, in dto.CreateUserRequest) (*dto.UserResponse, error) {
	ent, err := uc.entityRepo.GetByID(entityID)
	if err != nil {
		return nil, err
	}
	if ent == nil {
		return nil, domain.ErrEntityInactive
	}
	if !entity.ValidRole(in.Role) {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.userRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := uc.hasher.Hash(in.Password)
	if err != nil {
		return nil, err
	}
	user := &entity.User{
		EntityID:     entityID,
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: hash,
		Role:         in.Role,
		CreatedAt:    time.Now(),
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}
	return toUserResponse(user, ent.Name), nil
}

// GetByID obtiene un usuario vivo con el nombre de su entidad.
func (uc *UserUseCase) GetByID(id int64) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	ent, err := uc.entityRepo.GetByID(user.EntityID)
	if err != nil {
		return nil, err
	}
	if ent == nil {
		return nil, domain.ErrEntityInactive
	}
	return toUserResponse(user, ent.Name), nil
}

// ListByEntity lista los usuarios vivos de una entidad viva.
func (uc *UserUseCase) ListByEntity(entityID int64) ([]dto.UserResponse, error) {
	ent, err := uc.entityRepo.GetByID(entityID)
	if err != nil {
		return nil, err
	}
	if ent == nil {
		return nil, domain.ErrEntityInactive
	}
	users, err := uc.userRepo.ListByEntity(entityID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, *toUserResponse(u, ent.Name))
	}
	return out, nil
}

// Update actualiza name/email/password/role de un usuario vivo. Un entity_id
// en la entrada se rechaza siempre: la pertenencia al tenant es inmutable.
func (uc *UserUseCase) Update(id int64, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	if in.EntityID != nil {
		return nil, domain.ErrEntityImmutable
	}
	if in.Name == nil && in.Email == nil && in.Password == nil && in.Role == nil {
		return nil, domain.ErrNoFieldsToUpdate
	}
	user, err := uc.userRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if in.Email != nil {
		other, err := uc.userRepo.GetByEmail(*in.Email)
		if err != nil {
			return nil, err
		}
		if other != nil && other.ID != id {
			return nil, domain.ErrEmailInUse
		}
		user.Email = *in.Email
	}
	if in.Name != nil {
		user.Name = *in.Name
	}
	if in.Role != nil {
		if !entity.ValidRole(*in.Role) {
			return nil, domain.ErrInvalidInput
		}
		user.Role = *in.Role
	}
	if in.Password != nil {
		hash, err := uc.hasher.Hash(*in.Password)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = hash
	}
	now := time.Now()
	user.UpdatedAt = &now
	if err := uc.userRepo.Update(user); err != nil {
		return nil, err
	}
	ent, err := uc.entityRepo.GetByID(user.EntityID)
	if err != nil {
		return nil, err
	}
	if ent == nil {
		return nil, domain.ErrEntityInactive
	}
	return toUserResponse(user, ent.Name), nil
}

// Delete marca el usuario como borrado (soft delete); no hay borrado físico.
func (uc *UserUseCase) Delete(id int64) error {
	user, err := uc.userRepo.GetByID(id)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}
	return uc.userRepo.SoftDelete(id)
}

func toUserResponse(u *entity.User, entityName string) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:         u.ID,
		Name:       u.Name,
		Email:      u.Email,
		Role:       u.Role,
		EntityID:   u.EntityID,
		EntityName: entityName,
		CreatedAt:  u.CreatedAt,
		UpdatedAt:  u.UpdatedAt,
	}
}
