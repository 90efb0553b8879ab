package ledger_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/TiendaPOS-api/internal/application/ledger"
	"github.com/jhoicas/TiendaPOS-api/internal/domain"
	"github.com/jhoicas/TiendaPOS-api/internal/domain/entity"
	"github.com/jhoicas/TiendaPOS-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeProductRepo struct {
	products map[int64]*entity.Product
}

func newFakeProductRepo(products ...*entity.Product) *fakeProductRepo {
	r := &fakeProductRepo{products: make(map[int64]*entity.Product)}
	for _, p := range products {
		cp := *p
		r.products[p.ID] = &cp
	}
	return r
}

func (r *fakeProductRepo) Create(p *entity.Product) error {
	r.products[p.ID] = p
	return nil
}

func (r *fakeProductRepo) GetByID(id int64) (*entity.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProductRepo) GetForUpdate(id int64) (*entity.Product, error) {
	return r.GetByID(id)
}

func (r *fakeProductRepo) GetBySKU(sku string) (*entity.Product, error) {
	for _, p := range r.products {
		if p.SKU == sku {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeProductRepo) Update(p *entity.Product) error {
	if existing, ok := r.products[p.ID]; ok {
		qty := existing.Quantity
		cp := *p
		cp.Quantity = qty
		r.products[p.ID] = &cp
	}
	return nil
}

func (r *fakeProductRepo) UpdateQuantity(id int64, quantity int64) error {
	if p, ok := r.products[id]; ok {
		p.Quantity = quantity
	}
	return nil
}

func (r *fakeProductRepo) List(filter repository.ProductFilter) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.products {
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeProductRepo) Delete(id int64) error {
	delete(r.products, id)
	return nil
}

type fakeMovementRepo struct {
	movements []*entity.Movement
	nextID    int64
}

func (r *fakeMovementRepo) Create(m *entity.Movement) error {
	r.nextID++
	m.ID = r.nextID
	cp := *m
	r.movements = append(r.movements, &cp)
	return nil
}

func (r *fakeMovementRepo) List(filter repository.MovementFilter) ([]*entity.Movement, error) {
	return r.movements, nil
}

// fakeTxRunner ejecuta fn sobre los fakes y simula el Rollback: si fn falla,
// restaura el estado previo de productos y movimientos.
type fakeTxRunner struct {
	products  *fakeProductRepo
	movements *fakeMovementRepo
}

func (tx *fakeTxRunner) Run(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	movementRepo repository.MovementRepository,
) error) error {
	snapProducts := make(map[int64]*entity.Product, len(tx.products.products))
	for id, p := range tx.products.products {
		cp := *p
		snapProducts[id] = &cp
	}
	snapMovs := append([]*entity.Movement(nil), tx.movements.movements...)
	snapNext := tx.movements.nextID

	if err := fn(tx.products, tx.movements); err != nil {
		tx.products.products = snapProducts
		tx.movements.movements = snapMovs
		tx.movements.nextID = snapNext
		return err
	}
	return nil
}

func newLedger(products ...*entity.Product) (*ledger.StockLedger, *fakeProductRepo, *fakeMovementRepo) {
	productRepo := newFakeProductRepo(products...)
	movementRepo := &fakeMovementRepo{}
	l := ledger.NewStockLedger(&fakeTxRunner{products: productRepo, movements: movementRepo})
	return l, productRepo, movementRepo
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestApply_DeltaPositivoAcreditaStock(t *testing.T) {
	l, products, movements := newLedger(&entity.Product{ID: 1, SKU: "CRV-001", Quantity: 50})

	newQty, err := l.Apply(context.Background(), ledger.ApplyInput{
		ProductID: 1, Delta: 30, Reason: "Orden de compra #7 recibida",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(80), newQty)

	p, _ := products.GetByID(1)
	assert.Equal(t, int64(80), p.Quantity, "la cantidad persistida debe reflejar el delta exactamente una vez")

	require.Len(t, movements.movements, 1, "debe existir exactamente un movimiento por Apply")
	mov := movements.movements[0]
	assert.Equal(t, int64(30), mov.QtyChange)
	assert.Equal(t, "Orden de compra #7 recibida", mov.Reason)
	assert.NotEmpty(t, mov.TransactionID)
}

func TestApply_DeltaNegativoDescuentaStock(t *testing.T) {
	l, products, movements := newLedger(&entity.Product{ID: 1, Quantity: 50})

	newQty, err := l.Apply(context.Background(), ledger.ApplyInput{
		ProductID: 1, Delta: -10, Reason: "Venta de 10 unidades",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(40), newQty)

	p, _ := products.GetByID(1)
	assert.Equal(t, int64(40), p.Quantity)
	require.Len(t, movements.movements, 1)
	assert.Equal(t, int64(-10), movements.movements[0].QtyChange)
}

func TestApply_DeltaCeroRechazado(t *testing.T) {
	l, products, movements := newLedger(&entity.Product{ID: 1, Quantity: 50})

	_, err := l.Apply(context.Background(), ledger.ApplyInput{
		ProductID: 1, Delta: 0, Reason: "nada",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "delta cero generaría una entrada de auditoría vacía")

	p, _ := products.GetByID(1)
	assert.Equal(t, int64(50), p.Quantity, "el stock no debe cambiar")
	assert.Empty(t, movements.movements, "no debe registrarse movimiento alguno")
}

func TestApply_SobregiroRechazadoSinEfectoParcial(t *testing.T) {
	l, products, movements := newLedger(&entity.Product{ID: 1, Quantity: 5})

	_, err := l.Apply(context.Background(), ledger.ApplyInput{
		ProductID: 1, Delta: -6, Reason: "Venta de 6 unidades",
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	p, _ := products.GetByID(1)
	assert.Equal(t, int64(5), p.Quantity, "la cantidad nunca puede quedar negativa")
	assert.Empty(t, movements.movements)
}

func TestApply_DescuentaHastaCero(t *testing.T) {
	l, products, _ := newLedger(&entity.Product{ID: 1, Quantity: 5})

	newQty, err := l.Apply(context.Background(), ledger.ApplyInput{
		ProductID: 1, Delta: -5, Reason: "Venta de 5 unidades",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(0), newQty, "vender todo el stock es válido")

	p, _ := products.GetByID(1)
	assert.True(t, p.IsOutOfStock())
}

func TestApply_ProductoInexistente(t *testing.T) {
	l, _, movements := newLedger()

	_, err := l.Apply(context.Background(), ledger.ApplyInput{
		ProductID: 99, Delta: 10, Reason: "ajuste",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, movements.movements)
}

func TestApply_MovimientosSucesivosAcumulan(t *testing.T) {
	l, products, movements := newLedger(&entity.Product{ID: 1, Quantity: 10})

	ctx := context.Background()
	_, err := l.Apply(ctx, ledger.ApplyInput{ProductID: 1, Delta: -4, Reason: "Venta de 4 unidades"})
	require.NoError(t, err)
	_, err = l.Apply(ctx, ledger.ApplyInput{ProductID: 1, Delta: 8, Reason: "Ajuste manual: conteo físico"})
	require.NoError(t, err)

	p, _ := products.GetByID(1)
	assert.Equal(t, int64(14), p.Quantity)
	require.Len(t, movements.movements, 2)
	// Cada Apply lleva su propio TransactionID.
	assert.NotEqual(t, movements.movements[0].TransactionID, movements.movements[1].TransactionID)
}
