package event

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFavoritesListeners(t *testing.T) {
	bus := NewBus()

	var first, second int
	bus.OnFavoritesChanged(func() { first++ })
	bus.OnFavoritesChanged(func() { second++ })

	bus.FavoritesChanged()
	bus.FavoritesChanged()

	assert.Equal(t, 2, first)
	assert.Equal(t, 2, second)
}

func TestPublishToast(t *testing.T) {
	bus := NewBus()

	var got []Toast
	bus.OnToast(func(t Toast) { got = append(got, t) })

	bus.PublishToast("Added to favorites", SeveritySuccess)
	bus.PublishToast("Search is unavailable right now", SeverityError)

	assert.Equal(t, []Toast{
		{Message: "Added to favorites", Severity: SeveritySuccess},
		{Message: "Search is unavailable right now", Severity: SeverityError},
	}, got)
}

func TestPublishWithoutListeners(t *testing.T) {
	bus := NewBus()

	// Must not panic.
	bus.FavoritesChanged()
	bus.PublishToast("nobody listening", SeverityInfo)
}

func TestSeverityString(t *testing.T) {
	assert.Equal(t, "info", SeverityInfo.String())
	assert.Equal(t, "success", SeveritySuccess.String())
	assert.Equal(t, "error", SeverityError.String())
}

func TestConcurrentPublish(t *testing.T) {
	bus := NewBus()

	var mu sync.Mutex
	count := 0
	bus.OnFavoritesChanged(func() {
		mu.Lock()
		count++
		mu.Unlock()
	})

	var wg sync.WaitGroup
	for range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			bus.FavoritesChanged()
		}()
	}
	wg.Wait()

	assert.Equal(t, 10, count)
}
