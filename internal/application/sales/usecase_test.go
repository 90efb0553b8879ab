package sales_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/TiendaPOS-api/internal/application/dto"
	"github.com/jhoicas/TiendaPOS-api/internal/application/sales"
	"github.com/jhoicas/TiendaPOS-api/internal/domain"
	"github.com/jhoicas/TiendaPOS-api/internal/domain/entity"
	"github.com/jhoicas/TiendaPOS-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeStore struct {
	products  map[int64]*entity.Product
	movements []*entity.Movement
	sales     map[int64]*entity.Sale
	returns   []*entity.Return
	nextID    int64
}

func newFakeStore(products ...*entity.Product) *fakeStore {
	s := &fakeStore{
		products: make(map[int64]*entity.Product),
		sales:    make(map[int64]*entity.Sale),
	}
	for _, p := range products {
		cp := *p
		s.products[p.ID] = &cp
	}
	return s
}

func (s *fakeStore) id() int64 {
	s.nextID++
	return s.nextID
}

// snapshot / restore simulan el Rollback de la transacción.
func (s *fakeStore) snapshot() *fakeStore {
	snap := newFakeStore()
	for id, p := range s.products {
		cp := *p
		snap.products[id] = &cp
	}
	for id, sa := range s.sales {
		cp := *sa
		snap.sales[id] = &cp
	}
	snap.movements = append([]*entity.Movement(nil), s.movements...)
	snap.returns = append([]*entity.Return(nil), s.returns...)
	snap.nextID = s.nextID
	return snap
}

func (s *fakeStore) restore(snap *fakeStore) {
	s.products = snap.products
	s.sales = snap.sales
	s.movements = snap.movements
	s.returns = snap.returns
	s.nextID = snap.nextID
}

type fakeProductRepo struct{ s *fakeStore }

func (r *fakeProductRepo) Create(p *entity.Product) error { r.s.products[p.ID] = p; return nil }
func (r *fakeProductRepo) GetByID(id int64) (*entity.Product, error) {
	p, ok := r.s.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}
func (r *fakeProductRepo) GetForUpdate(id int64) (*entity.Product, error) { return r.GetByID(id) }
func (r *fakeProductRepo) GetBySKU(string) (*entity.Product, error)       { return nil, nil }
func (r *fakeProductRepo) Update(*entity.Product) error                   { return nil }
func (r *fakeProductRepo) UpdateQuantity(id int64, quantity int64) error {
	if p, ok := r.s.products[id]; ok {
		p.Quantity = quantity
	}
	return nil
}
func (r *fakeProductRepo) List(repository.ProductFilter) ([]*entity.Product, error) {
	return nil, nil
}
func (r *fakeProductRepo) Delete(id int64) error { delete(r.s.products, id); return nil }

type fakeMovementRepo struct{ s *fakeStore }

func (r *fakeMovementRepo) Create(m *entity.Movement) error {
	m.ID = r.s.id()
	cp := *m
	r.s.movements = append(r.s.movements, &cp)
	return nil
}
func (r *fakeMovementRepo) List(repository.MovementFilter) ([]*entity.Movement, error) {
	return r.s.movements, nil
}

type fakeSaleRepo struct{ s *fakeStore }

func (r *fakeSaleRepo) Create(sale *entity.Sale) error {
	sale.ID = r.s.id()
	cp := *sale
	r.s.sales[sale.ID] = &cp
	return nil
}
func (r *fakeSaleRepo) GetByID(id int64) (*entity.Sale, error) {
	sale, ok := r.s.sales[id]
	if !ok {
		return nil, nil
	}
	cp := *sale
	return &cp, nil
}
func (r *fakeSaleRepo) GetForUpdate(id int64) (*entity.Sale, error) { return r.GetByID(id) }
func (r *fakeSaleRepo) List(repository.SaleFilter) ([]*entity.Sale, error) {
	var out []*entity.Sale
	for _, sale := range r.s.sales {
		cp := *sale
		out = append(out, &cp)
	}
	return out, nil
}

type fakeReturnRepo struct{ s *fakeStore }

func (r *fakeReturnRepo) Create(ret *entity.Return) error {
	ret.ID = r.s.id()
	cp := *ret
	r.s.returns = append(r.s.returns, &cp)
	return nil
}
func (r *fakeReturnRepo) SumQuantityBySale(saleID int64) (int64, error) {
	var total int64
	for _, ret := range r.s.returns {
		if ret.SaleID == saleID {
			total += ret.Quantity
		}
	}
	return total, nil
}
func (r *fakeReturnRepo) ListBySale(saleID int64) ([]*entity.Return, error) {
	var out []*entity.Return
	for _, ret := range r.s.returns {
		if ret.SaleID == saleID {
			out = append(out, ret)
		}
	}
	return out, nil
}
func (r *fakeReturnRepo) List(limit, offset int) ([]*entity.Return, error) {
	return r.s.returns, nil
}

type fakeTxRunner struct{ s *fakeStore }

func (tx *fakeTxRunner) RunSale(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	movementRepo repository.MovementRepository,
	saleRepo repository.SaleRepository,
	returnRepo repository.ReturnRepository,
) error) error {
	snap := tx.s.snapshot()
	err := fn(&fakeProductRepo{tx.s}, &fakeMovementRepo{tx.s}, &fakeSaleRepo{tx.s}, &fakeReturnRepo{tx.s})
	if err != nil {
		tx.s.restore(snap)
	}
	return err
}

func newUseCase(products ...*entity.Product) (*sales.SaleUseCase, *fakeStore) {
	s := newFakeStore(products...)
	uc := sales.NewSaleUseCase(&fakeTxRunner{s}, &fakeSaleRepo{s}, &fakeReturnRepo{s}, "principal")
	return uc, s
}

func price(v string) decimal.Decimal {
	return decimal.RequireFromString(v)
}

// ──────────────────────────────────────────────────────────────────────────────
// RecordSale
// ──────────────────────────────────────────────────────────────────────────────

func TestRecordSale_CalculaTotalYDescuentaStock(t *testing.T) {
	uc, s := newUseCase(&entity.Product{ID: 1, RetailPrice: price("2.50"), Quantity: 50})

	out, err := uc.RecordSale(context.Background(), "u1", dto.RecordSaleRequest{
		ProductID: 1, Quantity: 10,
	})
	require.NoError(t, err)

	assert.True(t, out.TotalAmount.Equal(price("25.00")), "total = precio de venta * cantidad, obtuvo %s", out.TotalAmount)
	assert.Equal(t, int64(40), out.RemainingStock)
	assert.Equal(t, "principal", out.Store, "sin tienda en la petición se usa la tienda por defecto")

	assert.Equal(t, int64(40), s.products[1].Quantity)
	require.Len(t, s.movements, 1)
	assert.Equal(t, int64(-10), s.movements[0].QtyChange)
	assert.Equal(t, "Venta de 10 unidades", s.movements[0].Reason)
}

func TestRecordSale_StockInsuficienteSinEfectoParcial(t *testing.T) {
	uc, s := newUseCase(&entity.Product{ID: 1, RetailPrice: price("2.50"), Quantity: 5})

	_, err := uc.RecordSale(context.Background(), "u1", dto.RecordSaleRequest{
		ProductID: 1, Quantity: 6,
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	assert.Equal(t, int64(5), s.products[1].Quantity, "el stock no debe cambiar")
	assert.Empty(t, s.sales, "la venta no debe persistirse")
	assert.Empty(t, s.movements, "no debe haber movimiento")
}

func TestRecordSale_ProductoInexistente(t *testing.T) {
	uc, _ := newUseCase()

	_, err := uc.RecordSale(context.Background(), "u1", dto.RecordSaleRequest{
		ProductID: 99, Quantity: 1,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRecordSale_CantidadInvalida(t *testing.T) {
	uc, _ := newUseCase(&entity.Product{ID: 1, Quantity: 10})

	_, err := uc.RecordSale(context.Background(), "u1", dto.RecordSaleRequest{
		ProductID: 1, Quantity: 0,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRecordBulk_NoAbortaEnElPrimerError(t *testing.T) {
	uc, s := newUseCase(&entity.Product{ID: 1, RetailPrice: price("1.00"), Quantity: 10})

	out := uc.RecordBulk(context.Background(), "u1", []dto.RecordSaleRequest{
		{ProductID: 1, Quantity: 4},
		{ProductID: 1, Quantity: 100}, // stock insuficiente
		{ProductID: 1, Quantity: 6},
	})

	assert.Equal(t, 2, out.Created)
	assert.Equal(t, 1, out.Failed)
	require.Len(t, out.Items, 3)
	assert.NotEmpty(t, out.Items[1].Error)
	assert.Equal(t, int64(0), s.products[1].Quantity, "los ítems válidos se aplican aunque otro falle")
}

// ──────────────────────────────────────────────────────────────────────────────
// ProcessReturn
// ──────────────────────────────────────────────────────────────────────────────

func TestProcessReturn_ReembolsoConPrecioHistorico(t *testing.T) {
	// La venta se hizo a 2.50; después el precio subió a 3.00.
	uc, s := newUseCase(&entity.Product{ID: 1, RetailPrice: price("2.50"), Quantity: 50})
	ctx := context.Background()

	sale, err := uc.RecordSale(ctx, "u1", dto.RecordSaleRequest{ProductID: 1, Quantity: 10})
	require.NoError(t, err)
	s.products[1].RetailPrice = price("3.00")

	out, err := uc.ProcessReturn(ctx, "u1", dto.ProcessReturnRequest{
		SaleID: sale.ID, Quantity: 4, Reason: "dañado",
	})
	require.NoError(t, err)

	assert.True(t, out.RefundAmount.Equal(price("10.00")),
		"reembolso = precio unitario histórico (2.50) * 4, obtuvo %s", out.RefundAmount)
	assert.Equal(t, int64(44), out.NewStock)
	assert.Equal(t, int64(44), s.products[1].Quantity)

	// El movimiento de la devolución es positivo y cita la venta.
	last := s.movements[len(s.movements)-1]
	assert.Equal(t, int64(4), last.QtyChange)
	assert.Contains(t, last.Reason, "Devolución venta")
}

func TestProcessReturn_VentaInexistente(t *testing.T) {
	uc, _ := newUseCase(&entity.Product{ID: 1, Quantity: 10})

	_, err := uc.ProcessReturn(context.Background(), "u1", dto.ProcessReturnRequest{
		SaleID: 42, Quantity: 1,
	})
	assert.ErrorIs(t, err, domain.ErrSaleNotFound)
}

func TestProcessReturn_ExcedeLaVenta(t *testing.T) {
	uc, s := newUseCase(&entity.Product{ID: 1, RetailPrice: price("1.00"), Quantity: 50})
	ctx := context.Background()

	sale, err := uc.RecordSale(ctx, "u1", dto.RecordSaleRequest{ProductID: 1, Quantity: 10})
	require.NoError(t, err)

	_, err = uc.ProcessReturn(ctx, "u1", dto.ProcessReturnRequest{SaleID: sale.ID, Quantity: 11})
	assert.ErrorIs(t, err, domain.ErrReturnExceedsSale)
	assert.Equal(t, int64(40), s.products[1].Quantity, "una devolución rechazada no toca el stock")
}

func TestProcessReturn_TopeAcumuladoEntreDevolucionesParciales(t *testing.T) {
	uc, s := newUseCase(&entity.Product{ID: 1, RetailPrice: price("1.00"), Quantity: 50})
	ctx := context.Background()

	sale, err := uc.RecordSale(ctx, "u1", dto.RecordSaleRequest{ProductID: 1, Quantity: 10})
	require.NoError(t, err)

	_, err = uc.ProcessReturn(ctx, "u1", dto.ProcessReturnRequest{SaleID: sale.ID, Quantity: 6})
	require.NoError(t, err)
	_, err = uc.ProcessReturn(ctx, "u1", dto.ProcessReturnRequest{SaleID: sale.ID, Quantity: 4})
	require.NoError(t, err, "6 + 4 = 10 devueltas es exactamente la venta")

	// Una unidad más de lo vendido debe rechazarse.
	_, err = uc.ProcessReturn(ctx, "u1", dto.ProcessReturnRequest{SaleID: sale.ID, Quantity: 1})
	assert.ErrorIs(t, err, domain.ErrReturnExceedsSale,
		"las devoluciones parciales acumuladas no pueden exceder la venta")
	assert.Equal(t, int64(50), s.products[1].Quantity)
}

// Escenario completo: 50 en stock, venta de 10, devolución de 4.
func TestVentaYDevolucion_EscenarioCompleto(t *testing.T) {
	uc, s := newUseCase(&entity.Product{ID: 1, SKU: "CRV-001", Name: "Cerveza corona sixpack",
		RetailPrice: price("11.99"), Quantity: 50})
	ctx := context.Background()

	sale, err := uc.RecordSale(ctx, "u1", dto.RecordSaleRequest{ProductID: 1, Quantity: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(40), sale.RemainingStock)

	ret, err := uc.ProcessReturn(ctx, "u1", dto.ProcessReturnRequest{SaleID: sale.ID, Quantity: 4})
	require.NoError(t, err)
	assert.Equal(t, int64(44), ret.NewStock)

	// El log cuenta la historia completa: -10 y +4.
	require.Len(t, s.movements, 2)
	assert.Equal(t, int64(-10), s.movements[0].QtyChange)
	assert.Equal(t, int64(4), s.movements[1].QtyChange)
	assert.Equal(t, int64(44), s.products[1].Quantity)
}
