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

func newStoreFixture(t *testing.T) (*StoreUseCase, *memStoreRepo, *memEntityRepo) {
	t.Helper()
	stores := newMemStoreRepo()
	entities := newMemEntityRepo()
	require.NoError(t, entities.Create(&entity.Entity{Name: "Entidad Uno", CreatedAt: time.Now()}))
	require.NoError(t, entities.Create(&entity.Entity{Name: "Entidad Dos", CreatedAt: time.Now()}))
	return NewStoreUseCase(stores, entities), stores, entities
}

func TestStoreCreate_OK(t *testing.T) {
	uc, _, _ := newStoreFixture(t)

	out, err := uc.Create(1, dto.CreateStoreRequest{Name: "Tienda Centro"})
	require.NoError(t, err)
	assert.Equal(t, "Tienda Centro", out.Name)
	assert.Equal(t, int64(1), out.EntityID)
	assert.NotZero(t, out.ID)
}

func TestStoreCreate_NombreDuplicadoEnEntidad(t *testing.T) {
	uc, _, _ := newStoreFixture(t)
	_, err := uc.Create(1, dto.CreateStoreRequest{Name: "Tienda Centro"})
	require.NoError(t, err)

	_, err = uc.Create(1, dto.CreateStoreRequest{Name: "Tienda Centro"})
	assert.ErrorIs(t, err, domain.ErrStoreNameTaken)
}

// La unicidad de nombre es por entidad: dos entidades pueden tener tiendas
// con el mismo nombre.
func TestStoreCreate_MismoNombreOtraEntidad_OK(t *testing.T) {
	uc, _, _ := newStoreFixture(t)
	_, err := uc.Create(1, dto.CreateStoreRequest{Name: "Tienda Centro"})
	require.NoError(t, err)

	_, err = uc.Create(2, dto.CreateStoreRequest{Name: "Tienda Centro"})
	assert.NoError(t, err)
}

// Una tienda soft-deleted libera su nombre dentro de la entidad.
func TestStoreCreate_NombreLiberadoPorBorrado(t *testing.T) {
	uc, _, _ := newStoreFixture(t)
	first, err := uc.Create(1, dto.CreateStoreRequest{Name: "Tienda Centro"})
	require.NoError(t, err)
	require.NoError(t, uc.Delete(first.ID))

	_, err = uc.Create(1, dto.CreateStoreRequest{Name: "Tienda Centro"})
	assert.NoError(t, err)
}

func TestStoreCreate_EntidadInactiva(t *testing.T) {
	uc, _, entities := newStoreFixture(t)
	now := time.Now()
	entities.entities[1].DeletedAt = &now

	_, err := uc.Create(1, dto.CreateStoreRequest{Name: "Tienda Centro"})
	assert.ErrorIs(t, err, domain.ErrEntityInactive)
}

func TestStoreUpdate_RenombreConConflicto(t *testing.T) {
	uc, _, _ := newStoreFixture(t)
	_, err := uc.Create(1, dto.CreateStoreRequest{Name: "Tienda A"})
	require.NoError(t, err)
	second, err := uc.Create(1, dto.CreateStoreRequest{Name: "Tienda B"})
	require.NoError(t, err)

	name := "Tienda A"
	_, err = uc.Update(second.ID, dto.UpdateStoreRequest{Name: &name})
	assert.ErrorIs(t, err, domain.ErrStoreNameTaken)
}

func TestStoreUpdate_MismoNombrePropio_OK(t *testing.T) {
	uc, _, _ := newStoreFixture(t)
	created, err := uc.Create(1, dto.CreateStoreRequest{Name: "Tienda A"})
	require.NoError(t, err)

	name := "Tienda A"
	out, err := uc.Update(created.ID, dto.UpdateStoreRequest{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Tienda A", out.Name)
}

func TestStoreDelete_LuegoGet_NoExiste(t *testing.T) {
	uc, _, _ := newStoreFixture(t)
	created, err := uc.Create(1, dto.CreateStoreRequest{Name: "Tienda A"})
	require.NoError(t, err)

	require.NoError(t, uc.Delete(created.ID))

	out, err := uc.GetByID(created.ID)
	require.NoError(t, err)
	assert.Nil(t, out, "una tienda borrada no debe ser visible")

	err = uc.Delete(created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound, "borrar dos veces debe fallar con not found")
}

func TestStoreListByEntity_SoloVivas(t *testing.T) {
	uc, _, _ := newStoreFixture(t)
	_, err := uc.Create(1, dto.CreateStoreRequest{Name: "Tienda A"})
	require.NoError(t, err)
	second, err := uc.Create(1, dto.CreateStoreRequest{Name: "Tienda B"})
	require.NoError(t, err)
	require.NoError(t, uc.Delete(second.ID))

	out, err := uc.ListByEntity(1)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "Tienda A", out[0].Name)
}
