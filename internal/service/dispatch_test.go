package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/SergeyBogomolovv/ride-dispatch/internal/entities"
	"github.com/SergeyBogomolovv/ride-dispatch/internal/repo"
	"github.com/SergeyBogomolovv/ride-dispatch/internal/service"
	mocks "github.com/SergeyBogomolovv/ride-dispatch/internal/service/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type testDeps struct {
	ledger    *repo.Ledger
	customers *mocks.MockDocuments[entities.CustomerProfile]
	drivers   *mocks.MockDocuments[entities.DriverProfile]
}

func newTestService(t *testing.T) (*service.DispatchService, testDeps) {
	deps := testDeps{
		ledger:    repo.NewLedger(),
		customers: mocks.NewMockDocuments[entities.CustomerProfile](t),
		drivers:   mocks.NewMockDocuments[entities.DriverProfile](t),
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := service.NewDispatchService(logger, deps.ledger, repo.NewInterestRegistry(), deps.customers, deps.drivers)
	return svc, deps
}

func TestDispatchService_SubmitOrder(t *testing.T) {
	ctx := context.Background()

	t.Run("ids are dense and follow submission order", func(t *testing.T) {
		svc, _ := newTestService(t)

		for i := 1; i <= 3; i++ {
			o := svc.SubmitOrder(ctx, entities.RideRequest{PassengerID: "p"})
			assert.Equal(t, i, o.ID)
			assert.Equal(t, entities.StatusNew, o.Status)
		}

		orders := svc.DispatcherOrders(ctx)
		require.Len(t, orders, 3)
		for i, o := range orders {
			assert.Equal(t, i+1, o.ID)
		}
	})

	t.Run("derives pickup time", func(t *testing.T) {
		svc, _ := newTestService(t)

		o := svc.SubmitOrder(ctx, entities.RideRequest{PickupDate: "2024-06-01", PickupHour: "14", PickupMinute: "5"})
		assert.Equal(t, "2024-06-01 14:05", o.Time)
	})

	t.Run("remembers customer profile", func(t *testing.T) {
		svc, deps := newTestService(t)

		want := entities.CustomerProfile{Phone: "0911111111", PassengerID: "陳先生", Pickup: "桃園機場", Dropoff: "台北101"}
		deps.customers.EXPECT().
			Save(mock.Anything, map[string]entities.CustomerProfile{"0911111111": want}).
			Return(nil).Once()

		svc.SubmitOrder(ctx, entities.RideRequest{
			Phone:       "0911111111",
			PassengerID: "陳先生",
			Pickup:      "桃園機場",
			Dropoff:     "台北101",
			FlightNo:    "BR198",
		})

		got, ok := svc.CustomerProfile(ctx, "0911111111")
		require.True(t, ok)
		assert.Equal(t, want, got)
	})

	t.Run("no phone, no profile", func(t *testing.T) {
		svc, _ := newTestService(t)

		o := svc.SubmitOrder(ctx, entities.RideRequest{PassengerID: "anon"})
		assert.Equal(t, 1, o.ID)
	})

	t.Run("flush failure does not fail submission", func(t *testing.T) {
		svc, deps := newTestService(t)

		deps.customers.EXPECT().
			Save(mock.Anything, mock.Anything).
			Return(errors.New("disk full")).Once()

		o := svc.SubmitOrder(ctx, entities.RideRequest{Phone: "0911111111", PassengerID: "A"})
		assert.Equal(t, 1, o.ID)

		got, ok := svc.CustomerProfile(ctx, "0911111111")
		require.True(t, ok)
		assert.Equal(t, "A", got.PassengerID)
	})
}

func TestDispatchService_TakeOrder(t *testing.T) {
	ctx := context.Background()

	t.Run("existing order", func(t *testing.T) {
		svc, deps := newTestService(t)
		o := svc.SubmitOrder(ctx, entities.RideRequest{})

		assert.True(t, svc.TakeOrder(ctx, o.ID))
		assert.True(t, svc.TakeOrder(ctx, o.ID))

		got, err := deps.ledger.FindByID(o.ID)
		require.NoError(t, err)
		assert.Equal(t, entities.StatusTaken, got.Status)
		assert.Nil(t, got.Driver)
	})

	t.Run("unknown order is a no-op", func(t *testing.T) {
		svc, deps := newTestService(t)
		svc.SubmitOrder(ctx, entities.RideRequest{PassengerID: "a"})
		before := deps.ledger.ListAll()

		assert.False(t, svc.TakeOrder(ctx, 42))

		assert.Equal(t, before, deps.ledger.ListAll())
	})
}

func TestDispatchService_AssignDriver(t *testing.T) {
	ctx := context.Background()

	t.Run("existing order", func(t *testing.T) {
		svc, deps := newTestService(t)
		o := svc.SubmitOrder(ctx, entities.RideRequest{})

		require.NoError(t, svc.AssignDriver(ctx, o.ID, "司機A"))

		got, _ := deps.ledger.FindByID(o.ID)
		assert.Equal(t, entities.StatusAssigned, got.Status)
		require.NotNil(t, got.Driver)
		assert.Equal(t, "司機A", *got.Driver)
	})

	t.Run("unknown order", func(t *testing.T) {
		svc, deps := newTestService(t)
		svc.SubmitOrder(ctx, entities.RideRequest{})
		before := deps.ledger.ListAll()

		err := svc.AssignDriver(ctx, 7, "司機A")
		assert.ErrorIs(t, err, entities.ErrOrderNotFound)
		assert.Equal(t, before, deps.ledger.ListAll())
	})

	// take and assign do not exclude each other, the last call wins.
	t.Run("assign then take", func(t *testing.T) {
		svc, deps := newTestService(t)
		o := svc.SubmitOrder(ctx, entities.RideRequest{})

		require.NoError(t, svc.AssignDriver(ctx, o.ID, "司機A"))
		require.True(t, svc.TakeOrder(ctx, o.ID))

		got, _ := deps.ledger.FindByID(o.ID)
		assert.Equal(t, entities.StatusTaken, got.Status)
		require.NotNil(t, got.Driver)
		assert.Equal(t, "司機A", *got.Driver)
	})

	t.Run("take then assign", func(t *testing.T) {
		svc, deps := newTestService(t)
		o := svc.SubmitOrder(ctx, entities.RideRequest{})

		require.True(t, svc.TakeOrder(ctx, o.ID))
		require.NoError(t, svc.AssignDriver(ctx, o.ID, "司機B"))

		got, _ := deps.ledger.FindByID(o.ID)
		assert.Equal(t, entities.StatusAssigned, got.Status)
		require.NotNil(t, got.Driver)
		assert.Equal(t, "司機B", *got.Driver)
	})

	t.Run("reassign to another driver", func(t *testing.T) {
		svc, deps := newTestService(t)
		o := svc.SubmitOrder(ctx, entities.RideRequest{})

		require.NoError(t, svc.AssignDriver(ctx, o.ID, "司機A"))
		require.NoError(t, svc.AssignDriver(ctx, o.ID, "司機B"))

		got, _ := deps.ledger.FindByID(o.ID)
		assert.Equal(t, "司機B", *got.Driver)
	})
}

func TestDispatchService_DispatcherOrders(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	first := svc.SubmitOrder(ctx, entities.RideRequest{PassengerID: "first"})
	second := svc.SubmitOrder(ctx, entities.RideRequest{PassengerID: "second"})

	svc.ExpressInterest(ctx, first.ID, "A")
	svc.ExpressInterest(ctx, first.ID, "B")
	svc.ExpressInterest(ctx, first.ID, "A")
	svc.ExpressInterest(ctx, 100, "ghost")

	orders := svc.DispatcherOrders(ctx)
	require.Len(t, orders, 2)

	assert.Equal(t, first.ID, orders[0].ID)
	assert.Equal(t, []string{"A", "B", "A"}, orders[0].Wants)

	assert.Equal(t, second.ID, orders[1].ID)
	assert.NotNil(t, orders[1].Wants)
	assert.Empty(t, orders[1].Wants)
}

func TestDispatchService_DriverProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("last write wins", func(t *testing.T) {
		svc, deps := newTestService(t)

		deps.drivers.EXPECT().Save(mock.Anything, mock.Anything).Return(nil).Twice()

		require.NoError(t, svc.SaveDriverProfile(ctx, entities.DriverProfile{DriverPhone: "0900000000", DriverName: "A", CarNo: "AAA-1111"}))
		require.NoError(t, svc.SaveDriverProfile(ctx, entities.DriverProfile{DriverPhone: "0900000000", DriverName: "A", CarNo: "BBB-2222"}))

		got, ok := svc.DriverProfile(ctx, "0900000000")
		require.True(t, ok)
		assert.Equal(t, "BBB-2222", got.CarNo)
	})

	t.Run("flushes the whole document", func(t *testing.T) {
		svc, deps := newTestService(t)

		a := entities.DriverProfile{DriverPhone: "0900000001", DriverName: "A"}
		b := entities.DriverProfile{DriverPhone: "0900000002", DriverName: "B"}
		deps.drivers.EXPECT().Save(mock.Anything, map[string]entities.DriverProfile{"0900000001": a}).Return(nil).Once()
		deps.drivers.EXPECT().Save(mock.Anything, map[string]entities.DriverProfile{"0900000001": a, "0900000002": b}).Return(nil).Once()

		require.NoError(t, svc.SaveDriverProfile(ctx, a))
		require.NoError(t, svc.SaveDriverProfile(ctx, b))
	})

	t.Run("missing phone", func(t *testing.T) {
		svc, _ := newTestService(t)

		err := svc.SaveDriverProfile(ctx, entities.DriverProfile{DriverName: "A"})
		assert.ErrorIs(t, err, entities.ErrPhoneRequired)
	})

	t.Run("flush failure is swallowed", func(t *testing.T) {
		svc, deps := newTestService(t)

		deps.drivers.EXPECT().Save(mock.Anything, mock.Anything).Return(errors.New("disk full")).Once()

		assert.NoError(t, svc.SaveDriverProfile(ctx, entities.DriverProfile{DriverPhone: "0900000000"}))
		_, ok := svc.DriverProfile(ctx, "0900000000")
		assert.True(t, ok)
	})

	t.Run("unknown phone", func(t *testing.T) {
		svc, _ := newTestService(t)

		_, ok := svc.DriverProfile(ctx, "0999999999")
		assert.False(t, ok)
		_, ok = svc.CustomerProfile(ctx, "0999999999")
		assert.False(t, ok)
	})
}

func TestDispatchService_Start(t *testing.T) {
	ctx := context.Background()
	svc, deps := newTestService(t)

	deps.customers.EXPECT().Load(mock.Anything).
		Return(map[string]entities.CustomerProfile{"0911111111": {Phone: "0911111111", PassengerID: "A"}}, nil).Once()
	deps.drivers.EXPECT().Load(mock.Anything).
		Return(nil, errors.New("unexpected end of JSON input")).Once()

	require.NoError(t, svc.Start(ctx))

	got, ok := svc.CustomerProfile(ctx, "0911111111")
	require.True(t, ok)
	assert.Equal(t, "A", got.PassengerID)

	_, ok = svc.DriverProfile(ctx, "0900000000")
	assert.False(t, ok)
}

func TestDispatchService_Stop(t *testing.T) {
	ctx := context.Background()

	t.Run("skips documents without changes", func(t *testing.T) {
		svc, deps := newTestService(t)
		deps.customers.EXPECT().Save(mock.Anything, mock.Anything).Return(nil).Once()

		svc.SubmitOrder(ctx, entities.RideRequest{Phone: "0911111111"})

		assert.NoError(t, svc.Stop(ctx))
	})

	t.Run("retries a failed save", func(t *testing.T) {
		svc, deps := newTestService(t)
		want := map[string]entities.CustomerProfile{"0911111111": {Phone: "0911111111"}}
		deps.customers.EXPECT().Save(mock.Anything, want).Return(errors.New("disk full")).Once()
		deps.customers.EXPECT().Save(mock.Anything, want).Return(nil).Once()

		svc.SubmitOrder(ctx, entities.RideRequest{Phone: "0911111111"})

		assert.NoError(t, svc.Stop(ctx))
	})

	t.Run("keeps persisted documents after a failed load", func(t *testing.T) {
		svc, deps := newTestService(t)
		deps.customers.EXPECT().Load(mock.Anything).Return(nil, errors.New("connection refused")).Once()
		deps.drivers.EXPECT().Load(mock.Anything).Return(map[string]entities.DriverProfile{}, nil).Once()

		require.NoError(t, svc.Start(ctx))

		assert.NoError(t, svc.Stop(ctx))
		deps.customers.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
		deps.drivers.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("reports flush error", func(t *testing.T) {
		svc, deps := newTestService(t)
		flushErr := errors.New("read-only file system")
		deps.customers.EXPECT().Save(mock.Anything, mock.Anything).Return(flushErr).Twice()

		svc.SubmitOrder(ctx, entities.RideRequest{Phone: "0911111111"})

		assert.ErrorIs(t, svc.Stop(ctx), flushErr)
	})
}

func TestDispatchService_ConcurrentSubmits(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	const n = 100
	ids := make(chan int, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			o := svc.SubmitOrder(ctx, entities.RideRequest{})
			svc.ExpressInterest(ctx, o.ID, "A")
			ids <- o.ID
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[int]bool, n)
	for id := range ids {
		assert.False(t, seen[id], "duplicate id %d", id)
		seen[id] = true
	}
	for id := 1; id <= n; id++ {
		assert.True(t, seen[id], "missing id %d", id)
	}

	for _, o := range svc.DispatcherOrders(ctx) {
		assert.Equal(t, []string{"A"}, o.Wants)
	}
}
