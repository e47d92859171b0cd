package entities

// Profile is the last known self-reported data for a phone number.
type Profile interface {
	Key() string
}

type CustomerProfile struct {
	Phone       string `json:"phone"`
	PassengerID string `json:"passengerId"`
	Pickup      string `json:"pickup"`
	Dropoff     string `json:"dropoff"`
}

func (p CustomerProfile) Key() string { return p.Phone }

type DriverProfile struct {
	DriverPhone string `json:"driverPhone"`
	DriverName  string `json:"driverName"`
	CarNo       string `json:"carNo"`
	CarType     string `json:"carType"`
}

func (p DriverProfile) Key() string { return p.DriverPhone }
