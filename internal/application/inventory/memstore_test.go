package inventory_test

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/banco-alimentos/internal/application/inventory"
	"github.com/jhoicas/banco-alimentos/internal/domain/entity"
	"github.com/jhoicas/banco-alimentos/internal/domain/repository"
)

// stockColumnScale decimales de products.quantity (NUMERIC(21,7)); PostgreSQL redondea al guardar.
const stockColumnScale = 7

// memStore simula PostgreSQL: cada Run trabaja sobre una copia y solo la publica en Commit.
// El mutex serializa las transacciones como lo haría el SELECT FOR UPDATE sobre el mismo producto.
type memStore struct {
	mu        sync.Mutex
	products  map[int64]entity.Product
	movements []entity.StockMovement
	audits    []entity.AuditLog
	nextID    int64

	failMovement error
	failAudit    error
	failUpdate   error
}

var _ inventory.TxRunner = (*memStore)(nil)

func newMemStore() *memStore {
	return &memStore{products: map[int64]entity.Product{}, nextID: 100}
}

// seed inserta un producto ya existente (fuera de transacción).
func (s *memStore) seed(p entity.Product) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p.ID == 0 {
		s.nextID++
		p.ID = s.nextID
	}
	s.products[p.ID] = p
	return p.ID
}

func (s *memStore) product(id int64) entity.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.products[id]
}

func (s *memStore) counts() (products, movements, audits int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.products), len(s.movements), len(s.audits)
}

func (s *memStore) Run(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	movRepo repository.StockMovementRepository,
	auditRepo repository.AuditLogRepository,
) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx := &memTx{store: s, products: make(map[int64]entity.Product, len(s.products)), nextID: s.nextID}
	for k, v := range s.products {
		tx.products[k] = v
	}
	if err := fn(txProducts{tx}, txMovements{tx}, txAudits{tx}); err != nil {
		return err // rollback: la copia se descarta
	}
	s.products = tx.products
	s.movements = append(s.movements, tx.movements...)
	s.audits = append(s.audits, tx.audits...)
	s.nextID = tx.nextID
	return nil
}

type memTx struct {
	store     *memStore
	products  map[int64]entity.Product
	movements []entity.StockMovement
	audits    []entity.AuditLog
	nextID    int64
}

func (tx *memTx) id() int64 {
	tx.nextID++
	return tx.nextID
}

type txProducts struct{ tx *memTx }

func (r txProducts) Create(_ context.Context, p *entity.Product) error {
	p.ID = r.tx.id()
	p.Quantity = p.Quantity.Round(stockColumnScale)
	r.tx.products[p.ID] = *p
	return nil
}

func (r txProducts) GetByID(_ context.Context, id int64) (*entity.Product, error) {
	p, ok := r.tx.products[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (r txProducts) GetForUpdate(ctx context.Context, id int64) (*entity.Product, error) {
	return r.GetByID(ctx, id)
}

func (r txProducts) UpdateQuantity(_ context.Context, id int64, q decimal.Decimal) error {
	if r.tx.store.failUpdate != nil {
		return r.tx.store.failUpdate
	}
	p := r.tx.products[id]
	p.Quantity = q.Round(stockColumnScale)
	p.UpdatedAt = time.Now()
	r.tx.products[id] = p
	return nil
}

func (r txProducts) List(_ context.Context, _ repository.ProductFilter) ([]*entity.Product, error) {
	out := make([]*entity.Product, 0, len(r.tx.products))
	for _, p := range r.tx.products {
		p := p
		out = append(out, &p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

type txMovements struct{ tx *memTx }

func (r txMovements) Create(_ context.Context, m *entity.StockMovement) error {
	if r.tx.store.failMovement != nil {
		return r.tx.store.failMovement
	}
	m.ID = r.tx.id()
	r.tx.movements = append(r.tx.movements, *m)
	return nil
}

func (r txMovements) ListByTypes(context.Context, repository.MovementFilter) ([]*entity.MovementView, error) {
	return nil, nil
}

type txAudits struct{ tx *memTx }

func (r txAudits) Create(_ context.Context, a *entity.AuditLog) error {
	if r.tx.store.failAudit != nil {
		return r.tx.store.failAudit
	}
	a.ID = r.tx.id()
	r.tx.audits = append(r.tx.audits, *a)
	return nil
}

// memMasters catálogo de productos maestros en memoria.
type memMasters struct {
	items map[int64]*entity.MasterProduct
	err   error
}

func (m *memMasters) Create(_ context.Context, mp *entity.MasterProduct) error {
	mp.ID = int64(len(m.items) + 1)
	m.items[mp.ID] = mp
	return nil
}

func (m *memMasters) GetByID(_ context.Context, id int64) (*entity.MasterProduct, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.items[id], nil
}

func (m *memMasters) List(context.Context, int, int) ([]*entity.MasterProduct, error) {
	out := make([]*entity.MasterProduct, 0, len(m.items))
	for _, mp := range m.items {
		out = append(out, mp)
	}
	return out, nil
}

// recordingNotifier guarda los eventos publicados.
type recordingNotifier struct {
	mu     sync.Mutex
	events []inventory.StockEvent
}

func (n *recordingNotifier) StockChanged(ev inventory.StockEvent) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.events = append(n.events, ev)
}

// recordingMetrics guarda los resultados observados.
type recordingMetrics struct {
	mu       sync.Mutex
	outcomes []string
}

func (m *recordingMetrics) ObserveMovement(operation, outcome string, _ time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.outcomes = append(m.outcomes, operation+":"+outcome)
}
