package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"os/signal"
	"syscall"
	"time"

	"github.com/segmentio/kafka-go"
)

type RideRequest struct {
	PassengerID  string `json:"passengerId"`
	Pickup       string `json:"pickup"`
	Dropoff      string `json:"dropoff"`
	PickupDate   string `json:"pickupDate"`
	PickupHour   string `json:"pickupHour"`
	PickupMinute string `json:"pickupMinute"`
	Phone        string `json:"phone"`
	FlightNo     string `json:"flightNo"`
	PeopleCount  string `json:"peopleCount"`
	LuggageCount string `json:"luggageCount"`
}

var (
	names  = []string{"王小明", "陳美玲", "林志豪", "張雅婷", "李建宏"}
	places = []string{"桃園機場第一航廈", "桃園機場第二航廈", "台北車站", "台北101", "松山機場", "新竹高鐵站"}
)

func randomString(n int) string {
	letters := []rune("ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789")
	b := make([]rune, n)
	for i := range b {
		b[i] = letters[rand.Intn(len(letters))]
	}
	return string(b)
}

func generateRideRequest() RideRequest {
	pickup := places[rand.Intn(len(places))]
	dropoff := places[rand.Intn(len(places))]
	return RideRequest{
		PassengerID:  names[rand.Intn(len(names))],
		Pickup:       pickup,
		Dropoff:      dropoff,
		PickupDate:   time.Now().AddDate(0, 0, rand.Intn(14)).Format(time.DateOnly),
		PickupHour:   fmt.Sprintf("%d", rand.Intn(24)),
		PickupMinute: fmt.Sprintf("%d", rand.Intn(12)*5),
		Phone:        fmt.Sprintf("09%08d", rand.Intn(100000000)),
		FlightNo:     "BR" + randomString(3),
		PeopleCount:  fmt.Sprintf("%d", rand.Intn(4)+1),
		LuggageCount: fmt.Sprintf("%d", rand.Intn(5)),
	}
}

func main() {
	addr := kafka.TCP("localhost:9092")

	writer := &kafka.Writer{
		Addr:  addr,
		Topic: "ride-requests",
	}
	defer writer.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	ticker := time.NewTicker(2 * time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			req := generateRideRequest()
			data, _ := json.Marshal(req)
			key := randomString(12)
			if err := writer.WriteMessages(ctx, kafka.Message{Key: []byte(key), Value: data}); err != nil {
				log.Println("failed to write ride request:", err)
				continue
			}
			// каждое пятое сообщение отправляем повторно, сервис должен его пропустить
			if rand.Intn(5) == 0 {
				writer.WriteMessages(ctx, kafka.Message{Key: []byte(key), Value: data})
			}
			log.Println("ride request generated", key, req.PassengerID, req.PickupDate)
		case <-ctx.Done():
			return
		}
	}
}
