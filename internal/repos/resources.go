package repos

import (
	"apotheka/internal/domain"
	"apotheka/internal/store"
)

// Repos bundles one Collection per resource plus the settings singleton.
type Repos struct {
	Products   *Collection
	Offers     *Collection
	Categories *Collection
	Orders     *Collection
	Pages      *Collection
	Settings   *SettingsRepo
}

func New(st *store.Store) *Repos {
	return &Repos{
		Products:   NewCollection(st, "products", "id", "product", nil, true),
		Offers:     NewCollection(st, "offers", "id", "offer", domain.Record{"discount": 0.0}, false),
		Categories: NewCollection(st, "categories", "id", "category", nil, false),
		Orders:     NewCollection(st, "orders", "id", "order", domain.Record{"status": "pending"}, false),
		Pages:      NewCollection(st, "pages", "slug", "page", nil, true),
		Settings:   NewSettingsRepo(st),
	}
}
