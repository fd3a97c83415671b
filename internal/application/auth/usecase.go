package auth

import (
	"time"

	"github.com/google/uuid"

	"github.com/voxly/voxly-api/internal/application/dto"
	"github.com/voxly/voxly-api/internal/domain"
	"github.com/voxly/voxly-api/internal/domain/entity"
	"github.com/voxly/voxly-api/internal/domain/repository"
	"github.com/voxly/voxly-api/pkg/jwt"
	"github.com/voxly/voxly-api/pkg/password"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// ResetTokenSender puerto hacia el canal de entrega del link de reset.
// El correo real es un colaborador externo; en desarrollo se loguea.
type ResetTokenSender interface {
	Send(email, token string) error
}

// AuthUseCase casos de uso de autenticación: login, registro, perfil,
// refresh y reset de contraseña. Sin estado entre llamadas.
type AuthUseCase struct {
	userRepo   repository.UserRepository
	entityRepo repository.EntityRepository
	resetRepo  repository.PasswordResetRepository
	hasher     *password.Hasher
	sender     ResetTokenSender
	jwtCfg     JWTConfig
	resetTTL   time.Duration
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(
	userRepo repository.UserRepository,
	entityRepo repository.EntityRepository,
	resetRepo repository.PasswordResetRepository,
	hasher *password.Hasher,
	sender ResetTokenSender,
	jwtCfg JWTConfig,
	resetTTL time.Duration,
) *AuthUseCase {
	return &AuthUseCase{
		userRepo:   userRepo,
		entityRepo: entityRepo,
		resetRepo:  resetRepo,
		hasher:     hasher,
		sender:     sender,
		jwtCfg:     jwtCfg,
		resetTTL:   resetTTL,
	}
}

// Login verifica email/password contra usuarios vivos y emite un JWT.
// "usuario inexistente" y "contraseña incorrecta" devuelven el mismo
// ErrInvalidCredentials: la respuesta no permite enumerar emails.
// Un usuario con credenciales correctas pero entidad soft-deleted recibe
// ErrEntityInactive.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := uc.userRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrInvalidCredentials
	}
	if !uc.hasher.Verify(in.Password, user.PasswordHash) {
		return nil, domain.ErrInvalidCredentials
	}
	ent, err := uc.entityRepo.GetByID(user.EntityID)
	if err != nil {
		return nil, err
	}
	if ent == nil {
		return nil, domain.ErrEntityInactive
	}
	return uc.issueToken(user, ent)
}

// Register auto-registro: email único entre usuarios vivos, entidad por
// defecto (la primera viva) y rol seller. Devuelve el mismo shape que Login.
func (uc *AuthUseCase) Register(in dto.RegisterRequest) (*dto.AuthResponse, error) {
	existing, err := uc.userRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	defaultEntity, err := uc.entityRepo.FindFirstLive()
	if err != nil {
		return nil, err
	}
	if defaultEntity == nil {
		return nil, domain.ErrNoDefaultEntity
	}
	hash, err := uc.hasher.Hash(in.Password)
	if err != nil {
		return nil, err
	}
	user := &entity.User{
		EntityID:     defaultEntity.ID,
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: hash,
		Role:         entity.RoleSeller,
		CreatedAt:    time.Now(),
	}
	// El índice único parcial de la DB cierra la carrera del check-then-insert;
	// el repo traduce 23505 a ErrEmailAlreadyExists.
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}
	return uc.issueToken(user, defaultEntity)
}

// GetProfile exige usuario vivo y entidad viva. Nunca expone el hash.
func (uc *AuthUseCase) GetProfile(userID int64) (*dto.ProfileResponse, error) {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	ent, err := uc.entityRepo.GetByID(user.EntityID)
	if err != nil {
		return nil, err
	}
	if ent == nil {
		return nil, domain.ErrNotFound
	}
	return toProfile(user, ent), nil
}

// RefreshToken re-emite un token para un par usuario/entidad vivo sin
// re-verificar la contraseña. El transporte que lo expone debe venir de un
// canal ya autenticado; por sí solo es más débil que Login.
func (uc *AuthUseCase) RefreshToken(in dto.RefreshTokenRequest) (*dto.AuthResponse, error) {
	user, err := uc.userRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	ent, err := uc.entityRepo.GetByID(user.EntityID)
	if err != nil {
		return nil, err
	}
	if ent == nil {
		return nil, domain.ErrEntityInactive
	}
	return uc.issueToken(user, ent)
}

// ForgotPassword emite un token opaco de un solo uso con vigencia acotada y lo
// entrega por el canal externo. Devuelve ErrUserNotFound para emails
// desconocidos; el handler responde igual en ambos casos.
func (uc *AuthUseCase) ForgotPassword(email string) error {
	user, err := uc.userRepo.GetByEmail(email)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}
	now := time.Now()
	pr := &entity.PasswordReset{
		UserID:    user.ID,
		Token:     uuid.New().String(),
		ExpiresAt: now.Add(uc.resetTTL),
		CreatedAt: now,
	}
	if err := uc.resetRepo.Create(pr); err != nil {
		return err
	}
	return uc.sender.Send(user.Email, pr.Token)
}

// ResetPassword consume un token de reset vigente (uso único, atómico en el
// repo) y reemplaza el hash. El variante directo email+password del sistema
// legado no existe aquí: sin token no hay reset.
func (uc *AuthUseCase) ResetPassword(in dto.ResetPasswordRequest) (*dto.ResetPasswordResponse, error) {
	pr, err := uc.resetRepo.Consume(in.Token)
	if err != nil {
		return nil, err
	}
	if pr == nil {
		return nil, domain.ErrInvalidResetToken
	}
	user, err := uc.userRepo.GetByID(pr.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	hash, err := uc.hasher.Hash(in.Password)
	if err != nil {
		return nil, err
	}
	if err := uc.userRepo.UpdatePassword(user.ID, hash); err != nil {
		return nil, err
	}
	return &dto.ResetPasswordResponse{Email: user.Email}, nil
}

// UpdateProfile actualiza name/email/password del propio usuario. Al menos un
// campo debe venir. El email no puede pertenecer a otro usuario vivo. La
// entidad no es actualizable por este camino bajo ninguna entrada.
func (uc *AuthUseCase) UpdateProfile(userID int64, in dto.UpdateProfileRequest) (*dto.ProfileResponse, error) {
	if in.Name == nil && in.Email == nil && in.Password == nil {
		return nil, domain.ErrNoFieldsToUpdate
	}
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	if in.Email != nil {
		other, err := uc.userRepo.GetByEmail(*in.Email)
		if err != nil {
			return nil, err
		}
		if other != nil && other.ID != userID {
			return nil, domain.ErrEmailInUse
		}
		user.Email = *in.Email
	}
	if in.Name != nil {
		user.Name = *in.Name
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
	return toProfile(user, ent), nil
}

func (uc *AuthUseCase) issueToken(user *entity.User, ent *entity.Entity) (*dto.AuthResponse, error) {
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.EntityID, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.AuthResponse{User: *toProfile(user, ent), Token: token}, nil
}

func toProfile(u *entity.User, ent *entity.Entity) *dto.ProfileResponse {
	return &dto.ProfileResponse{
		ID:         u.ID,
		Name:       u.Name,
		Email:      u.Email,
		Role:       u.Role,
		EntityID:   u.EntityID,
		EntityName: ent.Name,
	}
}
