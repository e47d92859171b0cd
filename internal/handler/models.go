package handler

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/SergeyBogomolovv/ride-dispatch/internal/entities"
)

// OrderID accepts a JSON number or a numeric string. Anything else decodes
// without error and is left invalid, callers decide what an invalid id means.
type OrderID struct {
	Value int
	Valid bool
}

func (id *OrderID) UnmarshalJSON(data []byte) error {
	*id = OrderID{}
	raw := string(bytes.TrimSpace(data))
	if raw == "null" {
		return nil
	}
	if strings.HasPrefix(raw, `"`) {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return nil
		}
		raw = strings.TrimSpace(s)
	}

	if n, err := strconv.Atoi(raw); err == nil {
		*id = OrderID{Value: n, Valid: true}
		return nil
	}
	if f, err := strconv.ParseFloat(raw, 64); err == nil && f == math.Trunc(f) && math.Abs(f) <= math.MaxInt32 {
		*id = OrderID{Value: int(f), Valid: true}
	}
	return nil
}

// flexString keeps numbers as their literal text, forms send strings and scripts send numbers.
type flexString string

func (s *flexString) UnmarshalJSON(data []byte) error {
	raw := bytes.TrimSpace(data)
	switch {
	case bytes.Equal(raw, []byte("null")):
		*s = ""
	case bytes.HasPrefix(raw, []byte(`"`)):
		var v string
		if err := json.Unmarshal(raw, &v); err != nil {
			return err
		}
		*s = flexString(v)
	default:
		*s = flexString(raw)
	}
	return nil
}

type WantRequest struct {
	ID     OrderID    `json:"id" swaggertype:"integer"`
	Driver flexString `json:"driver" swaggertype:"string"`
}

type TakeRequest struct {
	ID OrderID `json:"id" swaggertype:"integer"`
}

type TakeResponse struct {
	OK bool `json:"ok"`
}

type AssignRequest struct {
	ID     OrderID `json:"id" swaggertype:"integer"`
	Driver string  `json:"driver"`
}

// RideRequest is the passenger form, also the Kafka message body.
// Validation tags apply to Kafka messages only, the form is taken as-is.
type RideRequest struct {
	PassengerID  flexString `json:"passengerId" swaggertype:"string"`
	Pickup       flexString `json:"pickup" swaggertype:"string"`
	Dropoff      flexString `json:"dropoff" swaggertype:"string"`
	PickupDate   flexString `json:"pickupDate" swaggertype:"string" validate:"required"`
	PickupHour   flexString `json:"pickupHour" swaggertype:"string"`
	PickupMinute flexString `json:"pickupMinute" swaggertype:"string"`
	Phone        flexString `json:"phone" swaggertype:"string" validate:"required"`
	FlightNo     flexString `json:"flightNo" swaggertype:"string"`
	PeopleCount  flexString `json:"peopleCount" swaggertype:"string"`
	LuggageCount flexString `json:"luggageCount" swaggertype:"string"`
}

// Order представляет заказ в списке диспетчера
type Order struct {
	ID           int      `json:"id"`
	PassengerID  string   `json:"passengerId"`
	Pickup       string   `json:"pickup"`
	Dropoff      string   `json:"dropoff"`
	Time         string   `json:"time"`
	Phone        string   `json:"phone"`
	FlightNo     string   `json:"flightNo"`
	PeopleCount  string   `json:"peopleCount"`
	LuggageCount string   `json:"luggageCount"`
	Status       string   `json:"status" enums:"new,taken,assigned"`
	Driver       *string  `json:"driver,omitempty"`
	Wants        []string `json:"wants"`
}

type CustomerProfile struct {
	Phone       string `json:"phone"`
	PassengerID string `json:"passengerId"`
	Pickup      string `json:"pickup"`
	Dropoff     string `json:"dropoff"`
}

type DriverProfile struct {
	DriverPhone string `json:"driverPhone" validate:"required"`
	DriverName  string `json:"driverName"`
	CarNo       string `json:"carNo"`
	CarType     string `json:"carType"`
}

func RideRequestToEntity(r RideRequest) entities.RideRequest {
	return entities.RideRequest{
		PassengerID:  string(r.PassengerID),
		Pickup:       string(r.Pickup),
		Dropoff:      string(r.Dropoff),
		PickupDate:   string(r.PickupDate),
		PickupHour:   string(r.PickupHour),
		PickupMinute: string(r.PickupMinute),
		Phone:        string(r.Phone),
		FlightNo:     string(r.FlightNo),
		PeopleCount:  string(r.PeopleCount),
		LuggageCount: string(r.LuggageCount),
	}
}

func DispatchOrderToJSON(o entities.DispatchOrder) Order {
	wants := o.Wants
	if wants == nil {
		wants = []string{}
	}
	return Order{
		ID:           o.ID,
		PassengerID:  o.PassengerID,
		Pickup:       o.Pickup,
		Dropoff:      o.Dropoff,
		Time:         o.Time,
		Phone:        o.Phone,
		FlightNo:     o.FlightNo,
		PeopleCount:  o.PeopleCount,
		LuggageCount: o.LuggageCount,
		Status:       string(o.Status),
		Driver:       o.Driver,
		Wants:        wants,
	}
}

func CustomerProfileToJSON(p entities.CustomerProfile) CustomerProfile {
	return CustomerProfile{
		Phone:       p.Phone,
		PassengerID: p.PassengerID,
		Pickup:      p.Pickup,
		Dropoff:     p.Dropoff,
	}
}

func DriverProfileToJSON(p entities.DriverProfile) DriverProfile {
	return DriverProfile{
		DriverPhone: p.DriverPhone,
		DriverName:  p.DriverName,
		CarNo:       p.CarNo,
		CarType:     p.CarType,
	}
}

func DriverProfileJSONToEntity(p DriverProfile) entities.DriverProfile {
	return entities.DriverProfile{
		DriverPhone: p.DriverPhone,
		DriverName:  p.DriverName,
		CarNo:       p.CarNo,
		CarType:     p.CarType,
	}
}
