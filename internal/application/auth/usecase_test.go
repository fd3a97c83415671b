package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voxly/voxly-api/internal/application/dto"
	"github.com/voxly/voxly-api/internal/domain"
	"github.com/voxly/voxly-api/internal/domain/entity"
	"github.com/voxly/voxly-api/pkg/password"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria (mismos contratos que los adaptadores de postgres:
// (nil, nil) cuando no hay fila viva)
// ──────────────────────────────────────────────────────────────────────────────

type fakeUserRepo struct {
	users  map[int64]*entity.User
	nextID int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[int64]*entity.User{}, nextID: 1}
}

func (r *fakeUserRepo) Create(u *entity.User) error {
	u.ID = r.nextID
	r.nextID++
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *fakeUserRepo) GetByID(id int64) (*entity.User, error) {
	u, ok := r.users[id]
	if !ok || u.DeletedAt != nil {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) GetByEmail(email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email && u.DeletedAt == nil {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) Update(u *entity.User) error {
	existing, ok := r.users[u.ID]
	if !ok || existing.DeletedAt != nil {
		return domain.ErrUserNotFound
	}
	// entity_id inmutable, igual que el UPDATE real que no lo incluye en el SET
	cp := *u
	cp.EntityID = existing.EntityID
	r.users[u.ID] = &cp
	return nil
}

func (r *fakeUserRepo) UpdatePassword(id int64, passwordHash string) error {
	u, ok := r.users[id]
	if !ok || u.DeletedAt != nil {
		return domain.ErrUserNotFound
	}
	u.PasswordHash = passwordHash
	return nil
}

func (r *fakeUserRepo) ListByEntity(entityID int64) ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range r.users {
		if u.EntityID == entityID && u.DeletedAt == nil {
			cp := *u
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeUserRepo) SoftDelete(id int64) error {
	u, ok := r.users[id]
	if !ok || u.DeletedAt != nil {
		return domain.ErrUserNotFound
	}
	now := time.Now()
	u.DeletedAt = &now
	return nil
}

type fakeEntityRepo struct {
	entities map[int64]*entity.Entity
	nextID   int64
}

func newFakeEntityRepo() *fakeEntityRepo {
	return &fakeEntityRepo{entities: map[int64]*entity.Entity{}, nextID: 1}
}

func (r *fakeEntityRepo) Create(e *entity.Entity) error {
	e.ID = r.nextID
	r.nextID++
	cp := *e
	r.entities[e.ID] = &cp
	return nil
}

func (r *fakeEntityRepo) GetByID(id int64) (*entity.Entity, error) {
	e, ok := r.entities[id]
	if !ok || e.DeletedAt != nil {
		return nil, nil
	}
	cp := *e
	return &cp, nil
}

func (r *fakeEntityRepo) FindFirstLive() (*entity.Entity, error) {
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

type fakeResetRepo struct {
	resets map[string]*entity.PasswordReset
	nextID int64
}

func newFakeResetRepo() *fakeResetRepo {
	return &fakeResetRepo{resets: map[string]*entity.PasswordReset{}, nextID: 1}
}

func (r *fakeResetRepo) Create(pr *entity.PasswordReset) error {
	pr.ID = r.nextID
	r.nextID++
	cp := *pr
	r.resets[pr.Token] = &cp
	return nil
}

func (r *fakeResetRepo) Consume(token string) (*entity.PasswordReset, error) {
	pr, ok := r.resets[token]
	if !ok || pr.UsedAt != nil || time.Now().After(pr.ExpiresAt) {
		return nil, nil
	}
	now := time.Now()
	pr.UsedAt = &now
	cp := *pr
	return &cp, nil
}

// fakeSender captura el último token enviado.
type fakeSender struct {
	email string
	token string
}

func (s *fakeSender) Send(email, token string) error {
	s.email = email
	s.token = token
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Fixture
// ──────────────────────────────────────────────────────────────────────────────

type authFixture struct {
	uc       *AuthUseCase
	users    *fakeUserRepo
	entities *fakeEntityRepo
	resets   *fakeResetRepo
	sender   *fakeSender
}

func newAuthFixture(t *testing.T) *authFixture {
	t.Helper()
	f := &authFixture{
		users:    newFakeUserRepo(),
		entities: newFakeEntityRepo(),
		resets:   newFakeResetRepo(),
		sender:   &fakeSender{},
	}
	require.NoError(t, f.entities.Create(&entity.Entity{Name: "Entidad Principal", CreatedAt: time.Now()}))
	f.uc = NewAuthUseCase(
		f.users, f.entities, f.resets,
		// bcrypt.MinCost para que los tests no paguen las rondas de producción
		password.NewHasher(4),
		f.sender,
		JWTConfig{Secret: "test-secret", ExpMinutes: 60, Issuer: "voxly-test"},
		30*time.Minute,
	)
	return f
}

// ──────────────────────────────────────────────────────────────────────────────
// Register + Login
// ──────────────────────────────────────────────────────────────────────────────

func TestRegister_LuegoLogin_RoundTrip(t *testing.T) {
	f := newAuthFixture(t)

	reg, err := f.uc.Register(dto.RegisterRequest{Name: "Ana", Email: "ana@test.com", Password: "secreta1"})
	require.NoError(t, err)
	assert.NotEmpty(t, reg.Token)
	assert.Equal(t, entity.RoleSeller, reg.User.Role, "el auto-registro siempre asigna rol seller")
	assert.Equal(t, int64(1), reg.User.EntityID, "el auto-registro asigna la entidad por defecto")

	logged, err := f.uc.Login(dto.LoginRequest{Email: "ana@test.com", Password: "secreta1"})
	require.NoError(t, err)
	assert.Equal(t, reg.User.ID, logged.User.ID)
	assert.NotEmpty(t, logged.Token)
}

func TestRegister_EmailDuplicado_Falla(t *testing.T) {
	f := newAuthFixture(t)

	_, err := f.uc.Register(dto.RegisterRequest{Name: "Ana", Email: "ana@test.com", Password: "secreta1"})
	require.NoError(t, err)

	_, err = f.uc.Register(dto.RegisterRequest{Name: "Otra Ana", Email: "ana@test.com", Password: "secreta2"})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestRegister_SinEntidadPorDefecto_Falla(t *testing.T) {
	f := newAuthFixture(t)
	now := time.Now()
	f.entities.entities[1].DeletedAt = &now

	_, err := f.uc.Register(dto.RegisterRequest{Name: "Ana", Email: "ana@test.com", Password: "secreta1"})
	assert.ErrorIs(t, err, domain.ErrNoDefaultEntity)
}

// El error de login es el mismo para email inexistente y contraseña mala:
// la respuesta no debe permitir enumerar emails.
func TestLogin_CredencialesInvalidas_MismoError(t *testing.T) {
	f := newAuthFixture(t)
	_, err := f.uc.Register(dto.RegisterRequest{Name: "Ana", Email: "ana@test.com", Password: "secreta1"})
	require.NoError(t, err)

	_, errNoUser := f.uc.Login(dto.LoginRequest{Email: "nadie@test.com", Password: "loquesea"})
	_, errBadPass := f.uc.Login(dto.LoginRequest{Email: "ana@test.com", Password: "incorrecta"})

	assert.ErrorIs(t, errNoUser, domain.ErrInvalidCredentials)
	assert.ErrorIs(t, errBadPass, domain.ErrInvalidCredentials)
	assert.Equal(t, errNoUser, errBadPass, "ambos caminos deben producir exactamente el mismo error")
}

func TestLogin_EntidadInactiva_Falla(t *testing.T) {
	f := newAuthFixture(t)
	_, err := f.uc.Register(dto.RegisterRequest{Name: "Ana", Email: "ana@test.com", Password: "secreta1"})
	require.NoError(t, err)

	now := time.Now()
	f.entities.entities[1].DeletedAt = &now

	_, err = f.uc.Login(dto.LoginRequest{Email: "ana@test.com", Password: "secreta1"})
	assert.ErrorIs(t, err, domain.ErrEntityInactive)
}

// ──────────────────────────────────────────────────────────────────────────────
// Reset de contraseña
// ──────────────────────────────────────────────────────────────────────────────

func TestResetPassword_FlujoCompleto(t *testing.T) {
	f := newAuthFixture(t)
	_, err := f.uc.Register(dto.RegisterRequest{Name: "Ana", Email: "ana@test.com", Password: "vieja123"})
	require.NoError(t, err)

	require.NoError(t, f.uc.ForgotPassword("ana@test.com"))
	require.NotEmpty(t, f.sender.token, "el token debe salir por el sender")
	assert.Equal(t, "ana@test.com", f.sender.email)

	out, err := f.uc.ResetPassword(dto.ResetPasswordRequest{Token: f.sender.token, Password: "nueva456"})
	require.NoError(t, err)
	assert.Equal(t, "ana@test.com", out.Email)

	// La contraseña vieja deja de servir; la nueva sí.
	_, err = f.uc.Login(dto.LoginRequest{Email: "ana@test.com", Password: "vieja123"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	_, err = f.uc.Login(dto.LoginRequest{Email: "ana@test.com", Password: "nueva456"})
	assert.NoError(t, err)
}

func TestResetPassword_TokenUsoUnico(t *testing.T) {
	f := newAuthFixture(t)
	_, err := f.uc.Register(dto.RegisterRequest{Name: "Ana", Email: "ana@test.com", Password: "vieja123"})
	require.NoError(t, err)
	require.NoError(t, f.uc.ForgotPassword("ana@test.com"))

	_, err = f.uc.ResetPassword(dto.ResetPasswordRequest{Token: f.sender.token, Password: "nueva456"})
	require.NoError(t, err)

	_, err = f.uc.ResetPassword(dto.ResetPasswordRequest{Token: f.sender.token, Password: "otra789x"})
	assert.ErrorIs(t, err, domain.ErrInvalidResetToken, "un token consumido no vuelve a ser válido")
}

func TestResetPassword_TokenVencido(t *testing.T) {
	f := newAuthFixture(t)
	_, err := f.uc.Register(dto.RegisterRequest{Name: "Ana", Email: "ana@test.com", Password: "vieja123"})
	require.NoError(t, err)
	require.NoError(t, f.uc.ForgotPassword("ana@test.com"))

	f.resets.resets[f.sender.token].ExpiresAt = time.Now().Add(-time.Minute)

	_, err = f.uc.ResetPassword(dto.ResetPasswordRequest{Token: f.sender.token, Password: "nueva456"})
	assert.ErrorIs(t, err, domain.ErrInvalidResetToken)
}

func TestResetPassword_TokenDesconocido(t *testing.T) {
	f := newAuthFixture(t)
	_, err := f.uc.ResetPassword(dto.ResetPasswordRequest{Token: "no-existe", Password: "nueva456"})
	assert.ErrorIs(t, err, domain.ErrInvalidResetToken)
}

func TestForgotPassword_EmailDesconocido(t *testing.T) {
	f := newAuthFixture(t)
	err := f.uc.ForgotPassword("nadie@test.com")
	// El usecase distingue el caso; el handler lo vuelve indistinguible afuera.
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
	assert.Empty(t, f.sender.token, "no debe emitirse token para un email desconocido")
}

// ──────────────────────────────────────────────────────────────────────────────
// Perfil
// ──────────────────────────────────────────────────────────────────────────────

func TestUpdateProfile_SinCampos_Falla(t *testing.T) {
	f := newAuthFixture(t)
	reg, err := f.uc.Register(dto.RegisterRequest{Name: "Ana", Email: "ana@test.com", Password: "secreta1"})
	require.NoError(t, err)

	_, err = f.uc.UpdateProfile(reg.User.ID, dto.UpdateProfileRequest{})
	assert.ErrorIs(t, err, domain.ErrNoFieldsToUpdate)
}

func TestUpdateProfile_EmailDeOtroUsuario_Falla(t *testing.T) {
	f := newAuthFixture(t)
	_, err := f.uc.Register(dto.RegisterRequest{Name: "Ana", Email: "ana@test.com", Password: "secreta1"})
	require.NoError(t, err)
	reg2, err := f.uc.Register(dto.RegisterRequest{Name: "Beto", Email: "beto@test.com", Password: "secreta2"})
	require.NoError(t, err)

	email := "ana@test.com"
	_, err = f.uc.UpdateProfile(reg2.User.ID, dto.UpdateProfileRequest{Email: &email})
	assert.ErrorIs(t, err, domain.ErrEmailInUse)
}

func TestUpdateProfile_MismoEmailPropio_Pasa(t *testing.T) {
	f := newAuthFixture(t)
	reg, err := f.uc.Register(dto.RegisterRequest{Name: "Ana", Email: "ana@test.com", Password: "secreta1"})
	require.NoError(t, err)

	email := "ana@test.com"
	name := "Ana Actualizada"
	out, err := f.uc.UpdateProfile(reg.User.ID, dto.UpdateProfileRequest{Name: &name, Email: &email})
	require.NoError(t, err)
	assert.Equal(t, "Ana Actualizada", out.Name)
	assert.Equal(t, "ana@test.com", out.Email)
}

func TestUpdateProfile_NuncaCambiaEntidad(t *testing.T) {
	f := newAuthFixture(t)
	reg, err := f.uc.Register(dto.RegisterRequest{Name: "Ana", Email: "ana@test.com", Password: "secreta1"})
	require.NoError(t, err)

	name := "Ana"
	out, err := f.uc.UpdateProfile(reg.User.ID, dto.UpdateProfileRequest{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, reg.User.EntityID, out.EntityID, "la entidad de un usuario es inmutable")
}

func TestGetProfile_UsuarioInexistente(t *testing.T) {
	f := newAuthFixture(t)
	_, err := f.uc.GetProfile(999)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRefreshToken_EmiteNuevoToken(t *testing.T) {
	f := newAuthFixture(t)
	reg, err := f.uc.Register(dto.RegisterRequest{Name: "Ana", Email: "ana@test.com", Password: "secreta1"})
	require.NoError(t, err)

	out, err := f.uc.RefreshToken(dto.RefreshTokenRequest{Email: "ana@test.com"})
	require.NoError(t, err)
	assert.Equal(t, reg.User.ID, out.User.ID)
	assert.NotEmpty(t, out.Token)
}
