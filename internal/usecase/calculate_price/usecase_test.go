package calculate_price

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ParkingGateway/internal/domain"
	coreClient "github.com/m04kA/SMC-ParkingGateway/internal/integrations/parkingcore"
	"github.com/m04kA/SMC-ParkingGateway/internal/state"
)

type fakeClient struct {
	quote *domain.PriceQuote
	err   error
	calls int
}

func (f *fakeClient) CalculatePrice(_ context.Context, _ string, _ domain.TimeWindow) (*domain.PriceQuote, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	q := *f.quote
	return &q, nil
}

type fakeCache struct {
	items map[string]interface{}
}

func newFakeCache() *fakeCache {
	return &fakeCache{items: map[string]interface{}{}}
}

func (c *fakeCache) Get(key string) (interface{}, bool) {
	v, ok := c.items[key]
	return v, ok
}

func (c *fakeCache) SetDefault(key string, value interface{}) {
	c.items[key] = value
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testWindow() domain.TimeWindow {
	start := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)
	return domain.TimeWindow{Start: start, End: start.Add(2 * time.Hour)}
}

func TestUseCase_Execute(t *testing.T) {
	t.Run("authoritative quote from backend", func(t *testing.T) {
		client := &fakeClient{quote: &domain.PriceQuote{
			DurationHours: 2, Subtotal: 1000, ServiceFee: 150, Total: 1150, OwnerPayout: 900,
		}}
		store := state.NewStore()
		uc := NewUseCase(client, store, newFakeCache(), nopLogger{})

		resp, err := uc.Execute(context.Background(), &Request{ParkingSpotID: "spot-1", Window: testWindow()})
		require.NoError(t, err)
		assert.True(t, resp.Applied)
		assert.Equal(t, int64(1150), resp.Quote.Total)
		assert.False(t, resp.Quote.Estimated)

		applied := store.Quote()
		require.NotNil(t, applied)
		assert.Equal(t, int64(1150), applied.Total)
	})

	t.Run("invalid window yields no quote and no network call", func(t *testing.T) {
		client := &fakeClient{quote: &domain.PriceQuote{}}
		uc := NewUseCase(client, state.NewStore(), newFakeCache(), nopLogger{})

		w := testWindow()
		w.End = w.Start

		_, err := uc.Execute(context.Background(), &Request{ParkingSpotID: "spot-1", Window: w})
		assert.ErrorIs(t, err, ErrInvalidWindow)
		assert.Zero(t, client.calls)
	})

	t.Run("second identical request served from cache", func(t *testing.T) {
		client := &fakeClient{quote: &domain.PriceQuote{Total: 1150, Subtotal: 1000, ServiceFee: 150}}
		uc := NewUseCase(client, state.NewStore(), newFakeCache(), nopLogger{})

		req := &Request{ParkingSpotID: "spot-1", Window: testWindow()}
		_, err := uc.Execute(context.Background(), req)
		require.NoError(t, err)
		resp, err := uc.Execute(context.Background(), req)
		require.NoError(t, err)

		assert.Equal(t, 1, client.calls)
		assert.Equal(t, int64(1150), resp.Quote.Total)
	})

	t.Run("spot not found", func(t *testing.T) {
		client := &fakeClient{err: coreClient.ErrNotFound}
		uc := NewUseCase(client, state.NewStore(), newFakeCache(), nopLogger{})

		_, err := uc.Execute(context.Background(), &Request{ParkingSpotID: "ghost", Window: testWindow()})
		assert.ErrorIs(t, err, ErrSpotNotFound)
	})

	t.Run("backend down falls back to marked local estimate", func(t *testing.T) {
		client := &fakeClient{err: coreClient.ErrInternal}
		rate := int64(500)
		uc := NewUseCase(client, state.NewStore(), newFakeCache(), nopLogger{})

		resp, err := uc.Execute(context.Background(), &Request{
			ParkingSpotID: "spot-1",
			Window:        testWindow(),
			HourlyRate:    &rate,
		})
		require.NoError(t, err)
		assert.True(t, resp.Quote.Estimated)
		assert.Equal(t, int64(1150), resp.Quote.Total)
	})

	t.Run("backend down without rate is unavailable", func(t *testing.T) {
		client := &fakeClient{err: coreClient.ErrInternal}
		uc := NewUseCase(client, state.NewStore(), newFakeCache(), nopLogger{})

		_, err := uc.Execute(context.Background(), &Request{ParkingSpotID: "spot-1", Window: testWindow()})
		assert.ErrorIs(t, err, ErrQuoteUnavailable)
	})

	t.Run("stale response does not overwrite newer quote", func(t *testing.T) {
		store := state.NewStore()
		client := &fakeClient{quote: &domain.PriceQuote{Total: 999}}
		uc := NewUseCase(client, store, newFakeCache(), nopLogger{})

		// A newer request was issued and applied while ours was in flight
		staleSeq := store.BeginQuote()
		newerSeq := store.BeginQuote()
		require.True(t, store.ApplyQuote(newerSeq, &domain.PriceQuote{Total: 1150}))
		require.False(t, store.ApplyQuote(staleSeq, &domain.PriceQuote{Total: 999}))

		// The usecase's own request issues an even newer seq and wins
		resp, err := uc.Execute(context.Background(), &Request{ParkingSpotID: "spot-1", Window: testWindow()})
		require.NoError(t, err)
		assert.True(t, resp.Applied)
		assert.Equal(t, int64(999), store.Quote().Total)
	})

	t.Run("missing spot id", func(t *testing.T) {
		uc := NewUseCase(&fakeClient{}, state.NewStore(), newFakeCache(), nopLogger{})
		_, err := uc.Execute(context.Background(), &Request{Window: testWindow()})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}
