package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/TiendaPOS-api/internal/application/dto"
	"github.com/jhoicas/TiendaPOS-api/internal/application/usecase"
	"github.com/jhoicas/TiendaPOS-api/internal/domain"
	"github.com/jhoicas/TiendaPOS-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeCategoryRepo struct {
	categories map[int64]*entity.Category
	updates    int
}

func newFakeCategoryRepo(categories ...*entity.Category) *fakeCategoryRepo {
	r := &fakeCategoryRepo{categories: make(map[int64]*entity.Category)}
	for _, c := range categories {
		cp := *c
		r.categories[c.ID] = &cp
	}
	return r
}

func (r *fakeCategoryRepo) Create(c *entity.Category) error {
	r.categories[c.ID] = c
	return nil
}

func (r *fakeCategoryRepo) GetByID(id int64) (*entity.Category, error) {
	c, ok := r.categories[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *fakeCategoryRepo) List(limit, offset int) ([]*entity.Category, error) {
	out := make([]*entity.Category, 0, len(r.categories))
	for _, c := range r.categories {
		cp := *c
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeCategoryRepo) Update(c *entity.Category) error {
	cp := *c
	r.categories[c.ID] = &cp
	r.updates++
	return nil
}

func (r *fakeCategoryRepo) Delete(id int64) error {
	delete(r.categories, id)
	return nil
}

type fakeSupplierRepo struct {
	suppliers map[int64]*entity.Supplier
	updates   int
}

func newFakeSupplierRepo(suppliers ...*entity.Supplier) *fakeSupplierRepo {
	r := &fakeSupplierRepo{suppliers: make(map[int64]*entity.Supplier)}
	for _, s := range suppliers {
		cp := *s
		r.suppliers[s.ID] = &cp
	}
	return r
}

func (r *fakeSupplierRepo) Create(s *entity.Supplier) error {
	r.suppliers[s.ID] = s
	return nil
}

func (r *fakeSupplierRepo) GetByID(id int64) (*entity.Supplier, error) {
	s, ok := r.suppliers[id]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (r *fakeSupplierRepo) List(limit, offset int) ([]*entity.Supplier, error) {
	out := make([]*entity.Supplier, 0, len(r.suppliers))
	for _, s := range r.suppliers {
		cp := *s
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeSupplierRepo) Update(s *entity.Supplier) error {
	cp := *s
	r.suppliers[s.ID] = &cp
	r.updates++
	return nil
}

func (r *fakeSupplierRepo) Delete(id int64) error {
	delete(r.suppliers, id)
	return nil
}

func strPtr(s string) *string { return &s }

// ──────────────────────────────────────────────────────────────────────────────
// Tests Category Update
// ──────────────────────────────────────────────────────────────────────────────

func TestCategoryUpdate_ParcialConservaCamposNoEnviados(t *testing.T) {
	repo := newFakeCategoryRepo(&entity.Category{
		ID:          1,
		Name:        "Bebidas",
		Description: "Gaseosas y jugos",
		CreatedAt:   time.Now(),
	})
	uc := usecase.NewCategoryUseCase(repo)

	out, err := uc.Update(context.Background(), 1, dto.UpdateCategoryRequest{
		Name: strPtr("Bebidas frías"),
	})

	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, "Bebidas frías", out.Name)
	assert.Equal(t, "Gaseosas y jugos", out.Description, "description no enviado debe conservarse")
	assert.Equal(t, 1, repo.updates)

	stored, _ := repo.GetByID(1)
	assert.Equal(t, "Bebidas frías", stored.Name)
}

func TestCategoryUpdate_NombreVacioRechazado(t *testing.T) {
	repo := newFakeCategoryRepo(&entity.Category{ID: 1, Name: "Bebidas"})
	uc := usecase.NewCategoryUseCase(repo)

	out, err := uc.Update(context.Background(), 1, dto.UpdateCategoryRequest{
		Name: strPtr(""),
	})

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Nil(t, out)
	assert.Zero(t, repo.updates, "nada debe persistirse")
}

func TestCategoryUpdate_NoExisteDevuelveNilNil(t *testing.T) {
	repo := newFakeCategoryRepo()
	uc := usecase.NewCategoryUseCase(repo)

	out, err := uc.Update(context.Background(), 99, dto.UpdateCategoryRequest{
		Name: strPtr("Nueva"),
	})

	require.NoError(t, err)
	assert.Nil(t, out)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Supplier Update
// ──────────────────────────────────────────────────────────────────────────────

func TestSupplierUpdate_ParcialConservaCamposNoEnviados(t *testing.T) {
	repo := newFakeSupplierRepo(&entity.Supplier{
		ID:          5,
		Name:        "Distribuidora Norte",
		ContactName: "Ana Ruiz",
		Phone:       "555-0101",
		Email:       "ventas@norte.example",
		CreatedAt:   time.Now(),
	})
	uc := usecase.NewSupplierUseCase(repo)

	out, err := uc.Update(context.Background(), 5, dto.UpdateSupplierRequest{
		ContactName: strPtr("Luis Mora"),
		Phone:       strPtr("555-0202"),
	})

	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, "Distribuidora Norte", out.Name, "name no enviado debe conservarse")
	assert.Equal(t, "Luis Mora", out.ContactName)
	assert.Equal(t, "555-0202", out.Phone)
	assert.Equal(t, "ventas@norte.example", out.Email)
	assert.Equal(t, 1, repo.updates)
}

func TestSupplierUpdate_NombreVacioRechazado(t *testing.T) {
	repo := newFakeSupplierRepo(&entity.Supplier{ID: 5, Name: "Distribuidora Norte"})
	uc := usecase.NewSupplierUseCase(repo)

	out, err := uc.Update(context.Background(), 5, dto.UpdateSupplierRequest{
		Name: strPtr(""),
	})

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Nil(t, out)
	assert.Zero(t, repo.updates)
}

func TestSupplierUpdate_NoExisteDevuelveNilNil(t *testing.T) {
	repo := newFakeSupplierRepo()
	uc := usecase.NewSupplierUseCase(repo)

	out, err := uc.Update(context.Background(), 404, dto.UpdateSupplierRequest{
		Email: strPtr("otro@correo.example"),
	})

	require.NoError(t, err)
	assert.Nil(t, out)
}
