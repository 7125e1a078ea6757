package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"sync"
	"time"
)

const baseURL = "http://localhost:3001/api"

var statuses = []string{"tertunda", "dikonfirmasi", "sedang_diproses", "siap_diambil", "selesai", "dibatalkan"}

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

func randomID(length int) string {
	chars := []rune("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789")
	id := make([]rune, length)
	for i := range id {
		id[i] = chars[rand.Intn(len(chars))]
	}
	return string(id)
}

func doRequest() {
	switch rand.Intn(4) {
	case 0:
		send(http.MethodPost, baseURL+"/orders", map[string]any{
			"orderId": "BOBA-" + randomID(8),
			"items":   []map[string]any{{"name": "Taro Milk Tea", "quantity": 1}},
		})
	case 1:
		send(http.MethodPatch, baseURL+"/orders/BOBA-"+randomID(8)+"/status", map[string]any{
			"status": statuses[rand.Intn(len(statuses))],
		})
	case 2:
		send(http.MethodGet, baseURL+"/shops", nil)
	default:
		send(http.MethodGet, baseURL+"/orders", nil)
	}
}

func send(method, url string, body any) {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}

	req, err := http.NewRequest(method, url, &buf)
	if err != nil {
		fmt.Println("request error:", err)
		return
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		fmt.Println("request error:", err)
		return
	}
	fmt.Println(method, url, "->", resp.Status)
	resp.Body.Close()
}
