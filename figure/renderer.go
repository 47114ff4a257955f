package figure

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/bluele/gcache"
	log "github.com/sirupsen/logrus"
)

const (
	logPrefix = "figure"

	DefaultCacheSize = 200
	DefaultCacheTTL  = 100 * time.Second
)

// Renderer encodes the figure per projection. Only the projections the
// page switches between are memoized, other names are encoded on every call.
type Renderer struct {
	sync.RWMutex
	base  Figure
	cache gcache.Cache
}

// NewRenderer - new renderer of a prepared figure
func NewRenderer(base Figure, size int, ttl time.Duration) *Renderer {
	if size <= 0 {
		size = DefaultCacheSize
	}
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}

	r := &Renderer{base: base}
	r.cache = gcache.New(size).
		LRU().
		Expiration(ttl).
		LoaderFunc(r.load).
		Build()

	return r
}

func (r *Renderer) load(key interface{}) (interface{}, error) {
	projection, ok := key.(string)
	if !ok {
		return nil, fmt.Errorf("invalid projection key %v", key)
	}

	log.WithFields(log.Fields{
		"prefix":     logPrefix,
		"projection": projection,
	}).Debug("render figure")

	return r.encode(projection)
}

func (r *Renderer) encode(projection string) ([]byte, error) {
	return json.Marshal(r.Figure(projection))
}

// Update replaces the figure and drops every memoized encoding
func (r *Renderer) Update(base Figure) {
	r.Lock()
	r.base = base
	r.Unlock()

	r.cache.Purge()
}

// Figure returns the figure with the given projection
func (r *Renderer) Figure(projection string) Figure {
	r.RLock()
	defer r.RUnlock()
	return r.base.WithProjection(projection)
}

// Render returns the encoded figure with the given projection
func (r *Renderer) Render(projection string) ([]byte, error) {
	if !cacheable(projection) {
		return r.encode(projection)
	}

	v, err := r.cache.Get(projection)
	if err != nil {
		return nil, err
	}
	return v.([]byte), nil
}

func cacheable(projection string) bool {
	return projection == ProjectionMercator || projection == ProjectionOrthographic
}
