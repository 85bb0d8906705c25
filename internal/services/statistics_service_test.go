package services_test

import (
	"testing"

	"apotheka/internal/domain"
	"apotheka/internal/repos"
	"apotheka/internal/services"
	"apotheka/internal/store"
)

func statsFixture(t *testing.T) (*repos.Repos, *services.StatisticsService) {
	t.Helper()
	r := repos.New(store.New(t.TempDir()))
	return r, services.NewStatisticsService(r)
}

func TestStatisticsTotalsAndAverage(t *testing.T) {
	r, svc := statsFixture(t)
	if _, err := r.Orders.Create(domain.Record{"total": 100.0}); err != nil {
		t.Fatal(err)
	}
	if _, err := r.Orders.Create(domain.Record{
		"items": []any{map[string]any{"price": 10.0, "qty": 2.0}},
	}); err != nil {
		t.Fatal(err)
	}

	st := svc.Compute()
	if st.TotalOrders != 2 {
		t.Fatalf("want 2 orders, got %d", st.TotalOrders)
	}
	if st.TotalSales != 120 {
		t.Fatalf("want totalSales 120, got %v", st.TotalSales)
	}
	if st.AverageOrderValue != 60 {
		t.Fatalf("want averageOrderValue 60, got %v", st.AverageOrderValue)
	}
}

func TestStatisticsEmptyCollections(t *testing.T) {
	_, svc := statsFixture(t)
	st := svc.Compute()
	if st.TotalOrders != 0 || st.TotalSales != 0 || st.AverageOrderValue != 0 || st.TotalProducts != 0 {
		t.Fatalf("fresh store should be all zeroes: %+v", st)
	}
}

func TestStatisticsStatusCountsAndDiscounts(t *testing.T) {
	r, svc := statsFixture(t)
	// default status is pending
	if _, err := r.Orders.Create(domain.Record{"total": 10.0}); err != nil {
		t.Fatal(err)
	}
	if _, err := r.Orders.Create(domain.Record{"total": 20.0, "status": "completed"}); err != nil {
		t.Fatal(err)
	}
	if _, err := r.Orders.Create(domain.Record{"total": 30.0, "status": "cancelled"}); err != nil {
		t.Fatal(err)
	}
	if _, err := r.Products.Create(domain.Record{"id": "a", "discount": 10.0}); err != nil {
		t.Fatal(err)
	}
	if _, err := r.Products.Create(domain.Record{"id": "b", "discount": 0.0}); err != nil {
		t.Fatal(err)
	}
	if _, err := r.Products.Create(domain.Record{"id": "c"}); err != nil {
		t.Fatal(err)
	}

	st := svc.Compute()
	if st.PendingOrders != 1 || st.CompletedOrders != 1 {
		t.Fatalf("want 1 pending / 1 completed, got %d / %d", st.PendingOrders, st.CompletedOrders)
	}
	if st.DiscountedProducts != 1 {
		t.Fatalf("want 1 discounted product, got %d", st.DiscountedProducts)
	}
	if st.TotalProducts != 3 {
		t.Fatalf("want 3 products, got %d", st.TotalProducts)
	}
}

func TestStatisticsOrderWithoutTotalOrItemsCountsZero(t *testing.T) {
	r, svc := statsFixture(t)
	if _, err := r.Orders.Create(domain.Record{"note": "phone order"}); err != nil {
		t.Fatal(err)
	}
	st := svc.Compute()
	if st.TotalSales != 0 {
		t.Fatalf("want 0 sales, got %v", st.TotalSales)
	}
}
