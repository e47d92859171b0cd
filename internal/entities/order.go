package entities

import "strings"

type Status string

const (
	StatusNew      Status = "new"
	StatusTaken    Status = "taken"
	StatusAssigned Status = "assigned"
)

type Order struct {
	ID           int
	PassengerID  string
	Pickup       string
	Dropoff      string
	Time         string
	Phone        string
	FlightNo     string
	PeopleCount  string
	LuggageCount string
	Status       Status

	// выставляется только при назначении диспетчером
	Driver *string
}

// RideRequest is what a passenger submits. Fields are taken as-is, nothing is validated.
type RideRequest struct {
	PassengerID  string
	Pickup       string
	Dropoff      string
	PickupDate   string
	PickupHour   string
	PickupMinute string
	Phone        string
	FlightNo     string
	PeopleCount  string
	LuggageCount string
}

// PickupTime returns "<date> <HH>:<MM>" with hour and minute padded to two digits.
func (r RideRequest) PickupTime() string {
	return r.PickupDate + " " + padTwo(r.PickupHour) + ":" + padTwo(r.PickupMinute)
}

// DispatchOrder is an order joined with the drivers who asked for it.
type DispatchOrder struct {
	Order
	Wants []string
}

func padTwo(s string) string {
	if len(s) >= 2 {
		return s
	}
	return strings.Repeat("0", 2-len(s)) + s
}
