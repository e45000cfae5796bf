// Package events provides the in-app publish/subscribe signal used to
// request UI actions from outside the owning view, e.g. opening the
// add-record form from the navigation chrome. Signals carry no payload
// beyond the topic name itself.
package events

import "sync"

// TopicOpenAddRecord asks the records view to open the add-record form.
const TopicOpenAddRecord = "records:open-add"

const subscriberBuffer = 8

// Bus is a named-topic broadcast hub. Publishing never blocks: a subscriber
// whose buffer is full misses the signal.
type Bus struct {
	mu     sync.RWMutex
	nextID int
	subs   map[string]map[int]chan string
}

// NewBus creates an empty Bus.
func NewBus() *Bus {
	return &Bus{subs: make(map[string]map[int]chan string)}
}

// Subscribe registers interest in the given topics. The returned channel
// receives the topic name on each publish. The cancel function removes the
// subscription and closes the channel; it is safe to call more than once.
func (b *Bus) Subscribe(topics ...string) (<-chan string, func()) {
	ch := make(chan string, subscriberBuffer)

	b.mu.Lock()
	id := b.nextID
	b.nextID++
	for _, topic := range topics {
		if b.subs[topic] == nil {
			b.subs[topic] = make(map[int]chan string)
		}
		b.subs[topic][id] = ch
	}
	b.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			b.mu.Lock()
			for _, topic := range topics {
				delete(b.subs[topic], id)
			}
			b.mu.Unlock()
			close(ch)
		})
	}
	return ch, cancel
}

// Publish signals every subscriber of the topic. Subscribers that cannot
// keep up are skipped rather than blocking the publisher.
func (b *Bus) Publish(topic string) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	for _, ch := range b.subs[topic] {
		select {
		case ch <- topic:
		default:
		}
	}
}
