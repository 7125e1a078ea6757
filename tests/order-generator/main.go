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

type Topping struct {
	Name  string `json:"name"`
	Price int    `json:"price"`
}

type Item struct {
	MenuID   string    `json:"menuId"`
	Name     string    `json:"name"`
	Quantity int       `json:"quantity"`
	Price    int       `json:"price"`
	Sugar    string    `json:"sugarLevel"`
	Ice      string    `json:"iceLevel"`
	Toppings []Topping `json:"toppings"`
}

type Order struct {
	OrderID             string `json:"orderId"`
	ShopID              int    `json:"shopId"`
	CustomerName        string `json:"customerName"`
	CustomerPhoneNumber string `json:"customerPhoneNumber"`
	Items               []Item `json:"items"`
	TotalPrice          int    `json:"totalPrice"`
	Notes               string `json:"notes,omitempty"`
}

var (
	drinks   = []string{"Brown Sugar Boba", "Taro Milk Tea", "Matcha Latte", "Thai Tea", "Mango Slush"}
	levels   = []string{"0%", "25%", "50%", "75%", "100%"}
	toppings = []string{"Pearl", "Pudding", "Grass Jelly", "Cheese Foam"}
)

func randomString(n int) string {
	letters := []rune("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789")
	b := make([]rune, n)
	for i := range b {
		b[i] = letters[rand.Intn(len(letters))]
	}
	return string(b)
}

func generateRandomOrder() Order {
	order := Order{
		OrderID:             fmt.Sprintf("BOBA-%d-%s", time.Now().UnixMilli(), randomString(4)),
		ShopID:              rand.Intn(3) + 1,
		CustomerName:        "Customer " + randomString(4),
		CustomerPhoneNumber: fmt.Sprintf("+628%09d", rand.Intn(999999999)),
	}

	for range rand.Intn(3) + 1 {
		item := Item{
			MenuID:   fmt.Sprintf("m%d", rand.Intn(20)),
			Name:     drinks[rand.Intn(len(drinks))],
			Quantity: rand.Intn(3) + 1,
			Price:    (rand.Intn(20) + 15) * 1000,
			Sugar:    levels[rand.Intn(len(levels))],
			Ice:      levels[rand.Intn(len(levels))],
		}
		if rand.Intn(2) == 0 {
			item.Toppings = append(item.Toppings, Topping{Name: toppings[rand.Intn(len(toppings))], Price: 5000})
		}
		order.Items = append(order.Items, item)
		order.TotalPrice += item.Price * item.Quantity
	}

	if rand.Intn(4) == 0 {
		order.Notes = "less ice please"
	}
	return order
}

func main() {
	addr := kafka.TCP("localhost:9092")

	writer := &kafka.Writer{
		Addr:  addr,
		Topic: "orders",
	}
	defer writer.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	ticker := time.NewTicker(2 * time.Second)
	for {
		select {
		case <-ticker.C:
			order := generateRandomOrder()
			data, _ := json.Marshal(order)
			if err := writer.WriteMessages(ctx, kafka.Message{Key: []byte(order.OrderID), Value: data}); err != nil {
				log.Println("failed to publish order", err)
				continue
			}
			log.Println("order generated", order.OrderID)
		case <-ctx.Done():
			return
		}
	}
}
