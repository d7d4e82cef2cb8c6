package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"math/rand/v2"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Метрики
var (
	requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "tireshop_traffic_requests_total",
		Help: "Количество запросов генератора к витрине",
	}, []string{"endpoint", "code"})

	requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "tireshop_traffic_request_duration_seconds",
		Help:    "Длительность запросов генератора в секундах",
		Buckets: []float64{0.01, 0.05, 0.1, 0.3, 0.5, 1, 2},
	}, []string{"endpoint"})
)

type tire struct {
	ID int64 `json:"id"`
}

type generator struct {
	baseURL string
	client  *http.Client
}

func (g *generator) do(endpoint, method, path string, body any) ([]byte, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequest(method, g.baseURL+path, reader)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := g.client.Do(req)
	requestDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
	if err != nil {
		requestsTotal.WithLabelValues(endpoint, "error").Inc()
		return nil, err
	}
	defer resp.Body.Close()

	requestsTotal.WithLabelValues(endpoint, strconv.Itoa(resp.StatusCode)).Inc()
	return io.ReadAll(resp.Body)
}

// browse имитирует посетителя: каталог, акции и иногда заказ.
func (g *generator) browse() {
	raw, err := g.do("tires", http.MethodGet, "/api/tires", nil)
	if err != nil {
		log.Printf("get tires: %v", err)
		return
	}

	if _, err := g.do("promotions", http.MethodGet, "/api/promotions", nil); err != nil {
		log.Printf("get promotions: %v", err)
	}

	var tires []tire
	if err := json.Unmarshal(raw, &tires); err != nil || len(tires) == 0 {
		return
	}
	picked := tires[rand.IntN(len(tires))]

	if _, err := g.do("tire", http.MethodGet, fmt.Sprintf("/api/tires/%d", picked.ID), nil); err != nil {
		log.Printf("get tire: %v", err)
	}

	if rand.IntN(10) != 0 {
		return
	}

	order := map[string]any{
		"tireId":             picked.ID,
		"quantity":           4,
		"customerName":       "traffic generator",
		"phone":              "0900000000",
		"carModel":           "Toyota RAV4",
		"installationOption": "INSTALL",
	}
	if _, err := g.do("orders", http.MethodPost, "/api/orders", order); err != nil {
		log.Printf("post order: %v", err)
	}
}

func main() {
	baseURL := os.Getenv("TIRESHOP_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}

	g := &generator{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 5 * time.Second},
	}

	http.Handle("/metrics", promhttp.Handler())
	go func() {
		//nolint:gosec // генератор запускается только локально
		if err := http.ListenAndServe(":2112", nil); err != nil {
			log.Fatalf("metrics server: %v", err)
		}
	}()

	for {
		g.browse()
		time.Sleep(time.Duration(500+rand.IntN(1500)) * time.Millisecond)
	}
}
