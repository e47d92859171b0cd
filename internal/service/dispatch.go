package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/SergeyBogomolovv/ride-dispatch/internal/entities"

	"golang.org/x/sync/errgroup"
)

const (
	KindCustomer = "customer"
	KindDriver   = "driver"
)

type OrderLedger interface {
	Submit(req entities.RideRequest) entities.Order
	FindByID(id int) (entities.Order, error)
	ListAll() []entities.Order
	SetStatus(id int, status entities.Status, driver *string) error
}

type InterestRegistry interface {
	RecordInterest(orderID int, driver string)
	InterestsFor(orderID int) []string
}

// DispatchService is the only writer of orders, interests and profiles.
// One mutex guards all of them, so every operation sees the result of the previous one in full.
type DispatchService struct {
	logger *slog.Logger

	mu        sync.Mutex
	ledger    OrderLedger
	interests InterestRegistry
	customers *ProfileStore[entities.CustomerProfile]
	drivers   *ProfileStore[entities.DriverProfile]
}

func NewDispatchService(
	logger *slog.Logger,
	ledger OrderLedger,
	interests InterestRegistry,
	customerDocs Documents[entities.CustomerProfile],
	driverDocs Documents[entities.DriverProfile],
) *DispatchService {
	logger = logger.With(slog.String("service", "dispatch"))
	return &DispatchService{
		logger:    logger,
		ledger:    ledger,
		interests: interests,
		customers: NewProfileStore(logger, KindCustomer, customerDocs),
		drivers:   NewProfileStore(logger, KindDriver, driverDocs),
	}
}

// SubmitOrder never fails. The customer profile is remembered on a best-effort basis.
func (s *DispatchService) SubmitOrder(ctx context.Context, req entities.RideRequest) entities.Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	order := s.ledger.Submit(req)
	ordersSubmitted.Inc()
	s.logger.DebugContext(ctx, "order submitted", slog.Int("order_id", order.ID))

	if req.Phone != "" {
		profile := entities.CustomerProfile{
			Phone:       req.Phone,
			PassengerID: req.PassengerID,
			Pickup:      req.Pickup,
			Dropoff:     req.Dropoff,
		}
		if err := s.customers.Put(ctx, profile); err != nil {
			s.logger.WarnContext(ctx, "failed to save customer profile", slog.Any("error", err))
		}
	}
	return order
}

// ExpressInterest does not check that the order exists.
func (s *DispatchService) ExpressInterest(ctx context.Context, orderID int, driver string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.interests.RecordInterest(orderID, driver)
	interestsRecorded.Inc()
	s.logger.DebugContext(ctx, "interest recorded", slog.Int("order_id", orderID), slog.String("driver", driver))
}

// TakeOrder marks the order taken whatever its current status is.
// It reports whether the order existed; an unknown id is not an error.
func (s *DispatchService) TakeOrder(ctx context.Context, orderID int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ledger.SetStatus(orderID, entities.StatusTaken, nil); err != nil {
		s.logger.DebugContext(ctx, "take on unknown order", slog.Int("order_id", orderID))
		return false
	}
	orderStatusChanges.WithLabelValues(string(entities.StatusTaken)).Inc()
	return true
}

// AssignDriver binds the driver to the order whatever its current status is,
// including an order that is already taken or assigned to someone else.
func (s *DispatchService) AssignDriver(ctx context.Context, orderID int, driver string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ledger.SetStatus(orderID, entities.StatusAssigned, &driver); err != nil {
		return fmt.Errorf("failed to assign order %d: %w", orderID, err)
	}
	orderStatusChanges.WithLabelValues(string(entities.StatusAssigned)).Inc()
	s.logger.InfoContext(ctx, "driver assigned", slog.Int("order_id", orderID), slog.String("driver", driver))
	return nil
}

// DispatcherOrders joins every order with its interests. Orders nobody asked for get an empty list.
func (s *DispatchService) DispatcherOrders(ctx context.Context) []entities.DispatchOrder {
	s.mu.Lock()
	defer s.mu.Unlock()

	orders := s.ledger.ListAll()
	result := make([]entities.DispatchOrder, 0, len(orders))
	for _, o := range orders {
		result = append(result, entities.DispatchOrder{
			Order: o,
			Wants: s.interests.InterestsFor(o.ID),
		})
	}
	return result
}

func (s *DispatchService) CustomerProfile(ctx context.Context, phone string) (entities.CustomerProfile, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.customers.Get(phone)
}

func (s *DispatchService) DriverProfile(ctx context.Context, phone string) (entities.DriverProfile, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.drivers.Get(phone)
}

// SaveDriverProfile fails only on a missing phone. Storage errors are logged, not returned.
func (s *DispatchService) SaveDriverProfile(ctx context.Context, p entities.DriverProfile) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.drivers.Put(ctx, p)
}

// Start loads both profile documents.
func (s *DispatchService) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.customers.Load(ctx)
	s.drivers.Load(ctx)
	return nil
}

// Stop writes the profile documents that still have unsaved changes.
func (s *DispatchService) Stop(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := s.customers.FlushIfDirty(ctx); err != nil {
			return fmt.Errorf("failed to flush customer profiles: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		if err := s.drivers.FlushIfDirty(ctx); err != nil {
			return fmt.Errorf("failed to flush driver profiles: %w", err)
		}
		return nil
	})
	return g.Wait()
}
