package pubsub

import (
	"sync"

	"github.com/lightningnetwork/lnd/queue"
	"github.com/tdex-network/mvs-vault/internal/core/domain"
	"github.com/tdex-network/mvs-vault/internal/core/ports"
)

const queueSize = 20

// client is a single subscription to the feed. Published accounts go through
// an unbounded queue so that a slow reader never blocks the publisher.
type client struct {
	id      uint64
	updates *queue.ConcurrentQueue
	out     chan domain.Account
	quit    chan struct{}
	once    sync.Once
}

func newClient(id uint64) *client {
	return &client{
		id:      id,
		updates: queue.NewConcurrentQueue(queueSize),
		out:     make(chan domain.Account),
		quit:    make(chan struct{}),
	}
}

func (c *client) start() {
	c.updates.Start()
	go c.forward()
}

func (c *client) stop() {
	c.once.Do(func() {
		close(c.quit)
		c.updates.Stop()
	})
}

func (c *client) forward() {
	defer close(c.out)

	for {
		select {
		case item := <-c.updates.ChanOut():
			account, ok := item.(domain.Account)
			if !ok {
				continue
			}
			select {
			case c.out <- account:
			case <-c.quit:
				return
			}
		case <-c.quit:
			return
		}
	}
}

type accountFeed struct {
	lock    sync.Mutex
	latest  *domain.Account
	clients map[uint64]*client
	nextID  uint64
	closed  bool
}

// NewAccountFeed returns an empty feed. Subscribers receive the last
// published account first, followed by every later one in publish order.
func NewAccountFeed() ports.AccountFeed {
	return &accountFeed{
		clients: make(map[uint64]*client),
	}
}

func (f *accountFeed) Publish(account domain.Account) {
	f.lock.Lock()
	defer f.lock.Unlock()

	if f.closed {
		return
	}

	f.latest = &account
	for _, c := range f.clients {
		select {
		case c.updates.ChanIn() <- account:
		case <-c.quit:
		}
	}
}

func (f *accountFeed) Subscribe() (<-chan domain.Account, func()) {
	f.lock.Lock()
	defer f.lock.Unlock()

	if f.closed {
		out := make(chan domain.Account)
		close(out)
		return out, func() {}
	}

	c := newClient(f.nextID)
	f.nextID++
	c.start()
	if f.latest != nil {
		c.updates.ChanIn() <- *f.latest
	}
	f.clients[c.id] = c

	cancel := func() {
		f.lock.Lock()
		delete(f.clients, c.id)
		f.lock.Unlock()
		c.stop()
	}
	return c.out, cancel
}

func (f *accountFeed) Close() {
	f.lock.Lock()
	defer f.lock.Unlock()

	if f.closed {
		return
	}
	f.closed = true
	for id, c := range f.clients {
		c.stop()
		delete(f.clients, id)
	}
}
