package repos

import (
	"errors"
	"strconv"
	"time"

	"github.com/google/uuid"

	"apotheka/internal/domain"
	"apotheka/internal/store"
	"apotheka/internal/validate"
)

var (
	ErrNotFound   = errors.New("record not found")
	ErrDuplicate  = errors.New("duplicate identity")
	ErrInvalidKey = errors.New("invalid identity")
)

// Collection provides CRUD over one JSON collection file. Each call is a full
// load-mutate-save cycle under the store's per-collection lock; there is no
// in-memory cache, the file is the source of truth.
type Collection struct {
	store *store.Store

	// Name is the file name without extension (e.g. "products").
	Name string
	// Key is the identity field, "id" for most resources, "slug" for pages.
	Key string
	// Prefix seeds generated identities: <prefix>-<epoch-millis>.
	Prefix string
	// Defaults are overlaid before the request body on create.
	Defaults domain.Record
	// Unique rejects creates whose caller-supplied identity already exists.
	Unique bool
}

func NewCollection(st *store.Store, name, key, prefix string, defaults domain.Record, unique bool) *Collection {
	return &Collection{store: st, Name: name, Key: key, Prefix: prefix, Defaults: defaults, Unique: unique}
}

// load degrades read and parse failures to an absent collection; the store
// has already logged the cause.
func (c *Collection) load() []domain.Record {
	recs, _, _ := c.store.LoadList(c.Name)
	return recs
}

func (c *Collection) find(recs []domain.Record, key string) int {
	for i, r := range recs {
		if v, ok := r[c.Key].(string); ok && v == key {
			return i
		}
	}
	return -1
}

func (c *Collection) List() []domain.Record {
	unlock := c.store.Lock(c.Name)
	defer unlock()
	recs := c.load()
	if recs == nil {
		return []domain.Record{}
	}
	return recs
}

func (c *Collection) Get(key string) (domain.Record, error) {
	unlock := c.store.Lock(c.Name)
	defer unlock()
	recs := c.load()
	i := c.find(recs, key)
	if i < 0 {
		return nil, ErrNotFound
	}
	return recs[i], nil
}

// Create appends a new record. Identity comes from the body's key field when
// present, otherwise it is synthesized from the collection prefix and the
// current epoch milliseconds; a synthesized collision gets a uuid fragment
// appended. Field precedence is deterministic: defaults, then body, then the
// identity, then the server-assigned createdAt.
func (c *Collection) Create(body domain.Record) (domain.Record, error) {
	unlock := c.store.Lock(c.Name)
	defer unlock()
	recs := c.load()

	key, supplied := body[c.Key].(string)
	if !supplied || key == "" {
		key = c.Prefix + "-" + strconv.FormatInt(time.Now().UnixMilli(), 10)
		if c.find(recs, key) >= 0 {
			key += "-" + uuid.NewString()[:8]
		}
	} else {
		// the keyed routes only accept identities matching validate.Key, so
		// anything else would be stored but never addressable again
		if _, ok := validate.Key(key); !ok {
			return nil, ErrInvalidKey
		}
		if c.Unique && c.find(recs, key) >= 0 {
			return nil, ErrDuplicate
		}
	}

	rec := make(domain.Record, len(c.Defaults)+len(body)+2)
	for k, v := range c.Defaults {
		rec[k] = v
	}
	for k, v := range body {
		rec[k] = v
	}
	rec[c.Key] = key
	rec[domain.FieldCreatedAt] = now()

	if err := c.store.SaveList(c.Name, append(recs, rec)); err != nil {
		return nil, err
	}
	return rec, nil
}

// Update merges exactly the keys present in the body onto the stored record:
// an absent key leaves the field untouched, an explicit null sets it to null.
// updatedAt is assigned after the merge, so it always reflects server time.
// The element is rewritten in place, preserving collection order.
func (c *Collection) Update(key string, body domain.Record) (domain.Record, error) {
	unlock := c.store.Lock(c.Name)
	defer unlock()
	recs := c.load()
	i := c.find(recs, key)
	if i < 0 {
		return nil, ErrNotFound
	}

	rec := recs[i].Clone()
	for k, v := range body {
		rec[k] = v
	}
	rec[c.Key] = key
	rec[domain.FieldUpdatedAt] = now()
	recs[i] = rec

	if err := c.store.SaveList(c.Name, recs); err != nil {
		return nil, err
	}
	return rec, nil
}

// Delete removes the record, preserving the survivors' order, and returns it.
func (c *Collection) Delete(key string) (domain.Record, error) {
	unlock := c.store.Lock(c.Name)
	defer unlock()
	recs := c.load()
	i := c.find(recs, key)
	if i < 0 {
		return nil, ErrNotFound
	}
	rec := recs[i]
	recs = append(recs[:i], recs[i+1:]...)
	if err := c.store.SaveList(c.Name, recs); err != nil {
		return nil, err
	}
	return rec, nil
}

func now() string {
	return time.Now().UTC().Format("2006-01-02T15:04:05.000Z07:00")
}
