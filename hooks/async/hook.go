// Package asynchook decouples hook work from the request path: events are
// queued and handled by worker goroutines, and dropped when the queue is
// full rather than blocking a cache call.
//
//	raw := sloghooks.New(slog.Default(), sloghooks.Options{DecodeEvery: 10})
//	hooks := asynchook.New(raw, 1, 1000) // 1 worker; queue 1000 events
//	defer hooks.Close()
//
//	client, _ := linkcache.New[User](linkcache.Options[User]{
//	    BaseURL: "http://cachelink:9001",
//	    Codec:   codec.JSON[User]{},
//	    Hooks:   hooks, // or `raw` if you don't want async
//	})
package asynchook

import (
	"sync"

	"github.com/unkn0wn-root/linkcache"
)

type Hooks struct {
	inner linkcache.Hooks
	q     chan func()
	wg    sync.WaitGroup
	once  sync.Once
}

var _ linkcache.Hooks = (*Hooks)(nil)

func New(inner linkcache.Hooks, workers, qlen int) *Hooks {
	if workers <= 0 {
		workers = 1
	}
	if qlen <= 0 {
		qlen = 1024
	}

	h := &Hooks{inner: inner, q: make(chan func(), qlen)}
	h.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer h.wg.Done()
			for f := range h.q {
				f()
			}
		}()
	}
	return h
}

func (h *Hooks) Close() {
	h.once.Do(func() {
		close(h.q)
		h.wg.Wait()
	})
}

func (h *Hooks) try(f func()) {
	select {
	case h.q <- f:
	default: // drop
	}
}

func (h *Hooks) StoreFault(n int, err error)  { h.try(func() { h.inner.StoreFault(n, err) }) }
func (h *Hooks) BackgroundAccepted(op string) { h.try(func() { h.inner.BackgroundAccepted(op) }) }
func (h *Hooks) DecodeFailure(key string, err error) {
	h.try(func() { h.inner.DecodeFailure(key, err) })
}
func (h *Hooks) ServiceFault(op string, status int) {
	h.try(func() { h.inner.ServiceFault(op, status) })
}
func (h *Hooks) TransportFault(op string, err error) {
	h.try(func() { h.inner.TransportFault(op, err) })
}
