package graphcache_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/restyle/internal/adapters/graphcache"
)

func TestCache_Get_NeverScanned(t *testing.T) {
	cache := graphcache.New()

	imports, ok := cache.Get("/styles/a.css")
	assert.False(t, ok)
	assert.Nil(t, imports)
	assert.Equal(t, 0, cache.Len())
}

func TestCache_Set_EmptyIsScanned(t *testing.T) {
	cache := graphcache.New()
	cache.Set("/styles/a.css", nil)

	imports, ok := cache.Get("/styles/a.css")
	require.True(t, ok)
	assert.NotNil(t, imports)
	assert.Empty(t, imports)
}

func TestCache_Set_ReplacesAndCopies(t *testing.T) {
	cache := graphcache.New()

	in := []string{"/styles/b.css", "/styles/c.css"}
	cache.Set("/styles/a.css", in)
	in[0] = "/mutated.css"

	imports, ok := cache.Get("/styles/a.css")
	require.True(t, ok)
	assert.Equal(t, []string{"/styles/b.css", "/styles/c.css"}, imports)

	imports[1] = "/mutated.css"
	again, _ := cache.Get("/styles/a.css")
	assert.Equal(t, "/styles/c.css", again[1])

	cache.Set("/styles/a.css", []string{"/styles/d.css"})
	imports, _ = cache.Get("/styles/a.css")
	assert.Equal(t, []string{"/styles/d.css"}, imports)
}

func TestCache_PreservesOrderAndDuplicates(t *testing.T) {
	cache := graphcache.New()
	cache.Set("/a.css", []string{"/b.css", "/a2.css", "/b.css"})

	imports, _ := cache.Get("/a.css")
	assert.Equal(t, []string{"/b.css", "/a2.css", "/b.css"}, imports)
}

func TestCache_CleansKeys(t *testing.T) {
	cache := graphcache.New()
	cache.Set("/styles/./sub/../a.css", []string{"/styles/b.css"})

	_, ok := cache.Get("/styles/a.css")
	assert.True(t, ok)
}

func TestCache_Forget(t *testing.T) {
	cache := graphcache.New()
	cache.Set("/a.css", nil)
	cache.Forget("/a.css")

	_, ok := cache.Get("/a.css")
	assert.False(t, ok)
}

func TestCache_Importers(t *testing.T) {
	cache := graphcache.New()
	cache.Set("/a.css", []string{"/shared.css"})
	cache.Set("/b.css", []string{"/other.css", "/shared.css"})
	cache.Set("/shared.css", nil)

	assert.Equal(t, 3, cache.Len())
	assert.ElementsMatch(t, []string{"/a.css", "/b.css"}, cache.Importers("/shared.css"))
	assert.Empty(t, cache.Importers("/a.css"))
}

func TestCache_ConcurrentAccess(t *testing.T) {
	cache := graphcache.New()

	var wg sync.WaitGroup
	for i := range 50 {
		path := fmt.Sprintf("/f%d.css", i%5)
		wg.Go(func() {
			cache.Set(path, []string{"/shared.css"})
		})
		wg.Go(func() {
			_, _ = cache.Get(path)
			_ = cache.Importers("/shared.css")
		})
	}
	wg.Wait()

	assert.Equal(t, 5, cache.Len())
}
