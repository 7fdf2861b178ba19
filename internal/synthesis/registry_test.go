package synthesis

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voice_cloning/entity"
	"voice_cloning/pkg/logger"
)

func newTestRegistry(ttl time.Duration) *Registry {
	return NewRegistry(ttl, logger.New("error"))
}

func TestRegistryPutGet(t *testing.T) {
	r := newTestRegistry(time.Minute)

	syn := entity.Synthesis{ID: "a", WAV: []byte("wav"), CreatedAt: time.Now()}
	r.Put(syn)

	got, ok := r.Get("a")
	require.True(t, ok)
	assert.Equal(t, syn.WAV, got.WAV)

	_, ok = r.Get("missing")
	assert.False(t, ok)
}

func TestRegistryTranscodedCache(t *testing.T) {
	r := newTestRegistry(time.Minute)

	r.Put(entity.Synthesis{ID: "a", WAV: []byte("wav")})

	_, ok := r.GetTranscoded("a", entity.FormatMP3)
	assert.False(t, ok)

	r.PutTranscoded("a", entity.FormatMP3, []byte("mp3"))

	body, ok := r.GetTranscoded("a", entity.FormatMP3)
	require.True(t, ok)
	assert.Equal(t, []byte("mp3"), body)

	// caching against an evicted id is a no-op
	r.PutTranscoded("missing", entity.FormatMP3, []byte("mp3"))
	_, ok = r.GetTranscoded("missing", entity.FormatMP3)
	assert.False(t, ok)
}

func TestRegistryEvictsExpired(t *testing.T) {
	r := newTestRegistry(time.Minute)

	r.Put(entity.Synthesis{ID: "a", WAV: []byte("wav")})
	require.Equal(t, 1, r.Len())

	r.evictExpired(time.Now().Add(2 * time.Minute))

	assert.Zero(t, r.Len())

	_, ok := r.Get("a")
	assert.False(t, ok)
}

func TestRegistryGetRefreshesTTL(t *testing.T) {
	r := newTestRegistry(time.Minute)

	r.Put(entity.Synthesis{ID: "a", WAV: []byte("wav")})

	// access pushes last-access forward, so the old deadline no longer evicts
	time.Sleep(10 * time.Millisecond)
	_, ok := r.Get("a")
	require.True(t, ok)

	r.evictExpired(time.Now().Add(59 * time.Second))

	assert.Equal(t, 1, r.Len())
}
