package realtime_test

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/banco-alimentos/internal/application/inventory"
	"github.com/jhoicas/banco-alimentos/internal/domain/entity"
	"github.com/jhoicas/banco-alimentos/internal/infrastructure/realtime"
	"github.com/jhoicas/banco-alimentos/pkg/logger"
)

type fakeClient struct {
	mu       sync.Mutex
	messages chan []byte
	closed   bool
	failWith error
}

func newFakeClient() *fakeClient { return &fakeClient{messages: make(chan []byte, 4)} }

func (c *fakeClient) WriteMessage(_ int, data []byte) error {
	if c.failWith != nil {
		return c.failWith
	}
	c.messages <- data
	return nil
}

func (c *fakeClient) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	return nil
}

func (c *fakeClient) isClosed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closed
}

func startHub(t *testing.T, buffer int) (*realtime.Hub, context.CancelFunc) {
	t.Helper()
	hub := realtime.NewHub(buffer, logger.Nop())
	ctx, cancel := context.WithCancel(context.Background())
	go hub.Run(ctx)
	t.Cleanup(cancel)
	return hub, cancel
}

func TestHub_DifundeEventos(t *testing.T) {
	hub, _ := startHub(t, 8)
	c := newFakeClient()
	hub.Register(c)

	hub.StockChanged(inventory.StockEvent{
		ProductID: 7, MovementType: entity.MovementTypeOutput,
		Quantity: decimal.NewFromInt(3), Unit: entity.UnitKG, ResultingQuantity: decimal.NewFromInt(7),
	})

	select {
	case raw := <-c.messages:
		var msg struct {
			Type string         `json:"type"`
			Data map[string]any `json:"data"`
		}
		require.NoError(t, json.Unmarshal(raw, &msg))
		assert.Equal(t, "stock_changed", msg.Type)
		assert.EqualValues(t, 7, msg.Data["product_id"])
		assert.Equal(t, "OUTPUT", msg.Data["movement_type"])
		assert.Equal(t, "7", msg.Data["resulting_quantity"])
	case <-time.After(time.Second):
		t.Fatal("el cliente no recibió el evento")
	}
}

func TestHub_ClienteConErrorSeElimina(t *testing.T) {
	hub, _ := startHub(t, 8)
	bad := newFakeClient()
	bad.failWith = errors.New("broken pipe")
	hub.Register(bad)
	require.Eventually(t, func() bool { return hub.Clients() == 1 }, time.Second, 10*time.Millisecond)

	hub.StockChanged(inventory.StockEvent{ProductID: 1})

	assert.Eventually(t, func() bool { return hub.Clients() == 0 && bad.isClosed() }, time.Second, 10*time.Millisecond)
}

func TestHub_NoBloqueaSinConsumidor(t *testing.T) {
	hub := realtime.NewHub(1, logger.Nop()) // sin Run: nadie consume

	done := make(chan struct{})
	go func() {
		for i := 0; i < 10; i++ {
			hub.StockChanged(inventory.StockEvent{ProductID: int64(i)})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("StockChanged bloqueó")
	}
}

func TestHub_CancelarCierraClientes(t *testing.T) {
	hub, cancel := startHub(t, 1)
	c := newFakeClient()
	hub.Register(c)

	cancel()

	assert.Eventually(t, c.isClosed, time.Second, 10*time.Millisecond)
}

func TestHub_RegistrarTrasApagadoNoBloquea(t *testing.T) {
	hub, cancel := startHub(t, 1)
	cancel()
	require.Eventually(t, func() bool {
		c := newFakeClient()
		hub.Register(c)
		hub.Unregister(c)
		return c.isClosed()
	}, time.Second, 10*time.Millisecond)
}
