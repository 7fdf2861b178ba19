package synthesis

import (
	"sync"
	"time"

	"voice_cloning/entity"
	"voice_cloning/pkg/logger"
)

const sweepInterval = time.Second

type record struct {
	syn        entity.Synthesis
	transcoded map[entity.AudioFormat][]byte
	lastAccess time.Time
}

// Registry holds synthesized audio in memory so the player and the download
// links can fetch it after the synthesis response. Entries expire after a TTL
// counted from last access; nothing is ever written to disk.
type Registry struct {
	mu    sync.Mutex
	items map[string]*record
	ttl   time.Duration
	l     logger.Interface
}

func NewRegistry(ttl time.Duration, l logger.Interface) *Registry {
	r := &Registry{
		items: make(map[string]*record),
		ttl:   ttl,
		l:     l,
	}

	go r.sweep()

	return r
}

func (r *Registry) Put(syn entity.Synthesis) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[syn.ID] = &record{
		syn:        syn,
		transcoded: make(map[entity.AudioFormat][]byte),
		lastAccess: time.Now(),
	}
}

// Get returns a stored synthesis and refreshes its TTL.
func (r *Registry) Get(id string) (entity.Synthesis, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec, ok := r.items[id]
	if !ok {
		return entity.Synthesis{}, false
	}

	rec.lastAccess = time.Now()

	return rec.syn, true
}

// GetTranscoded returns a cached conversion of a stored synthesis.
func (r *Registry) GetTranscoded(id string, format entity.AudioFormat) ([]byte, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec, ok := r.items[id]
	if !ok {
		return nil, false
	}

	body, ok := rec.transcoded[format]

	return body, ok
}

// PutTranscoded caches a conversion so repeated downloads skip ffmpeg.
func (r *Registry) PutTranscoded(id string, format entity.AudioFormat, body []byte) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec, ok := r.items[id]
	if !ok {
		return
	}

	rec.transcoded[format] = body
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.items)
}

func (r *Registry) sweep() {
	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()

	for range ticker.C {
		r.evictExpired(time.Now())
	}
}

func (r *Registry) evictExpired(now time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, rec := range r.items {
		if now.Sub(rec.lastAccess) > r.ttl {
			r.l.Info("evicting expired synthesis: %s", id)
			delete(r.items, id)
		}
	}
}
