package repo

import "github.com/SergeyBogomolovv/ride-dispatch/internal/entities"

// Ledger keeps ride orders in memory in submission order.
// It is not safe for concurrent use, callers serialize access.
type Ledger struct {
	lastID int
	orders []*entities.Order
	byID   map[int]*entities.Order
}

func NewLedger() *Ledger {
	return &Ledger{byID: make(map[int]*entities.Order)}
}

func (l *Ledger) Submit(req entities.RideRequest) entities.Order {
	l.lastID++
	o := &entities.Order{
		ID:           l.lastID,
		PassengerID:  req.PassengerID,
		Pickup:       req.Pickup,
		Dropoff:      req.Dropoff,
		Time:         req.PickupTime(),
		Phone:        req.Phone,
		FlightNo:     req.FlightNo,
		PeopleCount:  req.PeopleCount,
		LuggageCount: req.LuggageCount,
		Status:       entities.StatusNew,
	}
	l.orders = append(l.orders, o)
	l.byID[o.ID] = o
	return copyOrder(o)
}

func (l *Ledger) FindByID(id int) (entities.Order, error) {
	o, ok := l.byID[id]
	if !ok {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	return copyOrder(o), nil
}

func (l *Ledger) ListAll() []entities.Order {
	result := make([]entities.Order, 0, len(l.orders))
	for _, o := range l.orders {
		result = append(result, copyOrder(o))
	}
	return result
}

// SetStatus overwrites the status without looking at the current one.
// A nil driver leaves the assigned driver as it was.
func (l *Ledger) SetStatus(id int, status entities.Status, driver *string) error {
	o, ok := l.byID[id]
	if !ok {
		return entities.ErrOrderNotFound
	}
	o.Status = status
	if driver != nil {
		d := *driver
		o.Driver = &d
	}
	return nil
}

func (l *Ledger) Len() int {
	return len(l.orders)
}

func copyOrder(o *entities.Order) entities.Order {
	c := *o
	if o.Driver != nil {
		d := *o.Driver
		c.Driver = &d
	}
	return c
}
