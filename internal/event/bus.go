// Package event decouples state changes from presentation: stores publish
// notifications, interested surfaces subscribe. Subscribers run on the
// publisher's goroutine and must not block.
package event

import "sync"

// Severity classifies a toast for presentation.
type Severity int

const (
	// SeverityInfo is a neutral notice (e.g. an empty search result).
	SeverityInfo Severity = iota
	// SeveritySuccess confirms a completed user action.
	SeveritySuccess
	// SeverityError reports a failed operation.
	SeverityError
)

func (s Severity) String() string {
	switch s {
	case SeveritySuccess:
		return "success"
	case SeverityError:
		return "error"
	default:
		return "info"
	}
}

// Toast is a transient user-facing message.
type Toast struct {
	Message  string
	Severity Severity
}

// Bus fans notifications out to registered listeners. The zero value is not
// usable; create one with NewBus. All methods are safe for concurrent use.
type Bus struct {
	mu        sync.RWMutex
	favorites []func()
	toasts    []func(Toast)
}

// NewBus returns a bus with no listeners.
func NewBus() *Bus {
	return &Bus{}
}

// OnFavoritesChanged registers fn to run after every favorites mutation.
func (b *Bus) OnFavoritesChanged(fn func()) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.favorites = append(b.favorites, fn)
}

// FavoritesChanged notifies all favorites listeners.
func (b *Bus) FavoritesChanged() {
	b.mu.RLock()
	listeners := b.favorites
	b.mu.RUnlock()

	for _, fn := range listeners {
		fn()
	}
}

// OnToast registers fn to receive every published toast.
func (b *Bus) OnToast(fn func(Toast)) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.toasts = append(b.toasts, fn)
}

// PublishToast delivers a toast to all toast listeners.
func (b *Bus) PublishToast(message string, severity Severity) {
	b.mu.RLock()
	listeners := b.toasts
	b.mu.RUnlock()

	t := Toast{Message: message, Severity: severity}
	for _, fn := range listeners {
		fn(t)
	}
}
