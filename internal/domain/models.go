package domain

// Record is one entry of a collection file. Collections are schemaless on
// disk; the repos layer only interprets the identity and timestamp fields.
type Record map[string]any

const (
	FieldCreatedAt = "createdAt"
	FieldUpdatedAt = "updatedAt"
)

// Clone returns a shallow copy so callers can mutate without touching the
// loaded slice.
func (r Record) Clone() Record {
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// Statistics is the on-demand aggregate served by /api/statistics.
type Statistics struct {
	TotalProducts      int     `json:"totalProducts"`
	TotalOrders        int     `json:"totalOrders"`
	TotalSales         float64 `json:"totalSales"`
	PendingOrders      int     `json:"pendingOrders"`
	CompletedOrders    int     `json:"completedOrders"`
	AverageOrderValue  float64 `json:"averageOrderValue"`
	DiscountedProducts int     `json:"discountedProducts"`
}
