package preferences

import (
	"sync"

	"github.com/go-pkgz/lgr"
)

// Change is a notification about a stored preference
type Change struct {
	Owner string `json:"owner"`
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Broadcaster fans preference changes out to subscribers. Slow subscribers lose
// notifications rather than blocking writers.
type Broadcaster struct {
	mu   sync.Mutex
	subs map[int]subscriber
	next int
}

type subscriber struct {
	owner string
	ch    chan Change
}

// NewBroadcaster makes a broadcaster without subscribers
func NewBroadcaster() *Broadcaster {
	return &Broadcaster{subs: map[int]subscriber{}}
}

// Subscribe returns a channel of changes for owner (empty owner receives everything)
// and a cancel func closing it
func (b *Broadcaster) Subscribe(owner string) (changes <-chan Change, cancel func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.next
	b.next++
	ch := make(chan Change, 16)
	b.subs[id] = subscriber{owner: owner, ch: ch}

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			b.mu.Lock()
			defer b.mu.Unlock()
			delete(b.subs, id)
			close(ch)
		})
	}
}

func (b *Broadcaster) publish(c Change) {
	if b == nil {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, s := range b.subs {
		if s.owner != "" && s.owner != c.Owner {
			continue
		}
		select {
		case s.ch <- c:
		default:
			lgr.Printf("[DEBUG] preference change %s dropped for slow subscriber", c.Key)
		}
	}
}
