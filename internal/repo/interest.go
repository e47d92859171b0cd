package repo

// InterestRegistry maps an order id to the drivers who asked for it, in the order they asked.
// Entries are never removed and the order id is not checked against the ledger.
type InterestRegistry struct {
	wants map[int][]string
}

func NewInterestRegistry() *InterestRegistry {
	return &InterestRegistry{wants: make(map[int][]string)}
}

func (r *InterestRegistry) RecordInterest(orderID int, driver string) {
	r.wants[orderID] = append(r.wants[orderID], driver)
}

func (r *InterestRegistry) InterestsFor(orderID int) []string {
	drivers := r.wants[orderID]
	result := make([]string, len(drivers))
	copy(result, drivers)
	return result
}
