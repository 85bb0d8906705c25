package services

import (
	"math"

	"apotheka/internal/domain"
	"apotheka/internal/repos"
)

// StatisticsService computes the dashboard aggregate on demand by folding
// over the product and order collections. Nothing is persisted.
type StatisticsService struct {
	Products *repos.Collection
	Orders   *repos.Collection
}

func NewStatisticsService(r *repos.Repos) *StatisticsService {
	return &StatisticsService{Products: r.Products, Orders: r.Orders}
}

func (s *StatisticsService) Compute() domain.Statistics {
	products := s.Products.List()
	orders := s.Orders.List()

	st := domain.Statistics{
		TotalProducts: len(products),
		TotalOrders:   len(orders),
	}
	for _, o := range orders {
		st.TotalSales += orderTotal(o)
		switch o["status"] {
		case "pending":
			st.PendingOrders++
		case "completed":
			st.CompletedOrders++
		}
	}
	if len(orders) > 0 {
		st.AverageOrderValue = math.Round(st.TotalSales / float64(len(orders)))
	}
	for _, p := range products {
		if d, ok := asNumber(p["discount"]); ok && d > 0 {
			st.DiscountedProducts++
		}
	}
	return st
}

// orderTotal prefers a stored total field and falls back to summing
// price x qty over the items list; orders carrying neither count as 0.
func orderTotal(o domain.Record) float64 {
	if t, ok := asNumber(o["total"]); ok {
		return t
	}
	items, ok := o["items"].([]any)
	if !ok {
		return 0
	}
	sum := 0.0
	for _, it := range items {
		m, ok := it.(map[string]any)
		if !ok {
			continue
		}
		price, _ := asNumber(m["price"])
		qty, _ := asNumber(m["qty"])
		sum += price * qty
	}
	return sum
}

// asNumber accepts the numeric shapes a decoded record can hold: float64
// from JSON, int or float64 from in-code defaults.
func asNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	default:
		return 0, false
	}
}
