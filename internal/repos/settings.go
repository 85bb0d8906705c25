package repos

import (
	"apotheka/internal/domain"
	"apotheka/internal/store"
)

const settingsFile = "settings"

// DefaultSettings is served whenever no settings file exists yet.
func DefaultSettings() domain.Record {
	return domain.Record{
		"storeName":    "Apotheka Pharmacy",
		"tagline":      "Your neighborhood pharmacy, online",
		"contactEmail": "contact@apotheka.example",
		"contactPhone": "+1 (555) 010-0200",
		"address":      "12 Hippocrates Street",
		"currency":     "USD",
		"theme": map[string]any{
			"primaryColor":   "#2e7d32",
			"secondaryColor": "#f1f8e9",
			"accentColor":    "#ff8f00",
		},
	}
}

// SettingsRepo manages the singleton settings object. Get falls back to the
// built-in defaults; Put replaces the object wholesale, no merge.
type SettingsRepo struct {
	store *store.Store
}

func NewSettingsRepo(st *store.Store) *SettingsRepo {
	return &SettingsRepo{store: st}
}

func (r *SettingsRepo) Get() domain.Record {
	unlock := r.store.Lock(settingsFile)
	defer unlock()
	obj, ok, err := r.store.LoadObject(settingsFile)
	if !ok || err != nil {
		return DefaultSettings()
	}
	return obj
}

func (r *SettingsRepo) Put(obj domain.Record) (domain.Record, error) {
	unlock := r.store.Lock(settingsFile)
	defer unlock()
	if err := r.store.SaveObject(settingsFile, obj); err != nil {
		return nil, err
	}
	return obj, nil
}
