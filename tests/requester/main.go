package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"
)

const baseURL = "http://localhost:3000"

var drivers = []string{"司機A", "司機B", "司機C"}

type order struct {
	ID     int    `json:"id"`
	Status string `json:"status"`
}

func main() {
	for {
		var wg sync.WaitGroup
		for range rand.Intn(10) {
			wg.Go(doRequest)
		}
		wg.Wait()
		time.Sleep(20 * time.Millisecond)
	}
}

func doRequest() {
	switch rand.Intn(4) {
	case 0:
		submit()
	default:
		orders, err := listOrders()
		if err != nil {
			fmt.Println("Ошибка запроса:", err)
			return
		}
		if len(orders) == 0 {
			submit()
			return
		}
		o := orders[rand.Intn(len(orders))]
		switch rand.Intn(3) {
		case 0:
			post("/driver/want", map[string]any{"id": o.ID, "driver": drivers[rand.Intn(len(drivers))]})
		case 1:
			post("/driver/take", map[string]any{"id": o.ID})
		default:
			post("/dispatcher/assign", map[string]any{"id": o.ID, "driver": drivers[rand.Intn(len(drivers))]})
		}
	}
}

func submit() {
	form := url.Values{
		"passengerId":  {"load test"},
		"pickup":       {"台北車站"},
		"dropoff":      {"桃園機場第二航廈"},
		"pickupDate":   {time.Now().Format(time.DateOnly)},
		"pickupHour":   {fmt.Sprint(rand.Intn(24))},
		"pickupMinute": {fmt.Sprint(rand.Intn(60))},
		"phone":        {fmt.Sprintf("09%08d", rand.Intn(1000))},
	}
	resp, err := http.Post(baseURL+"/passenger/order", "application/x-www-form-urlencoded", strings.NewReader(form.Encode()))
	if err != nil {
		fmt.Println("Ошибка запроса:", err)
		return
	}
	fmt.Println("POST /passenger/order ->", resp.Status)
	resp.Body.Close()
}

func listOrders() ([]order, error) {
	resp, err := http.Get(baseURL + "/dispatcher/orders")
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var orders []order
	if err := json.NewDecoder(resp.Body).Decode(&orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func post(path string, body map[string]any) {
	data, _ := json.Marshal(body)
	resp, err := http.Post(baseURL+path, "application/json", bytes.NewReader(data))
	if err != nil {
		fmt.Println("Ошибка запроса:", err)
		return
	}
	fmt.Println("POST", path, body["id"], "->", resp.Status)
	resp.Body.Close()
}
