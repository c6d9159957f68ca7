// Package eventbus fans graph events out to any number of subscribers.
//
// The last event of every topic is kept for Config.CacheTTL and replayed
// to new subscribers.
package eventbus

import (
	"errors"
	"log"
	"sync"
	"time"

	"github.com/jellydator/ttlcache/v3"
	"github.com/roffe/plotpad/pkg/debug"
	"github.com/roffe/plotpad/pkg/graph"
)

const (
	TopicPointAdded = "point.added"
	TopicCleared    = "points.cleared"
	TopicHover      = "pointer.hover"
)

var ErrClosed = errors.New("eventbus closed")

type Config struct {
	IncomingBuffer int
	// SubscribeBuffer sizes the queue shared by Subscribe and Unsubscribe.
	SubscribeBuffer int
	ChannelBuffer   int
	CacheTTL        time.Duration
}

var DefaultConfig = &Config{
	IncomingBuffer:  1000,
	SubscribeBuffer: 100,
	ChannelBuffer:   50,
	CacheTTL:        time.Minute,
}

// Event is what subscribers receive. Count is the number of points in the
// model after the change. Inside is only meaningful for TopicHover and
// reports whether the pointer is over the surface.
type Event struct {
	Topic  string
	Point  graph.Point
	Count  int
	Inside bool
}

type Controller struct {
	subs     sync.Map
	incoming chan Event
	subOps   chan subOp
	cache    *ttlcache.Cache[string, Event]
	chanSize int

	closeOnce sync.Once
	quit      chan struct{}
	done      chan struct{}

	onMessage func(Event)
}

// subOp is a subscribe or, when remove is set, an unsubscribe. Both travel
// on one channel so an Unsubscribe is never handled before its Subscribe.
type subOp struct {
	topic  string
	resp   chan Event
	remove bool
}

func New(cfg *Config) *Controller {
	if cfg == nil {
		cfg = DefaultConfig
	}
	c := &Controller{
		incoming: make(chan Event, cfg.IncomingBuffer),
		subOps:   make(chan subOp, cfg.SubscribeBuffer),
		cache:    ttlcache.New[string, Event](ttlcache.WithTTL[string, Event](cfg.CacheTTL)),
		chanSize: cfg.ChannelBuffer,
		quit:     make(chan struct{}),
		done:     make(chan struct{}),
	}
	go c.run()
	return c
}

// SetOnMessage installs a hook that sees every event before subscribers.
// It must be set before the first Publish.
func (e *Controller) SetOnMessage(f func(Event)) {
	e.onMessage = f
}

func (e *Controller) run() {
	defer close(e.done)
	for {
		select {
		case <-e.quit:
			e.cleanup()
			return
		case msg := <-e.incoming:
			if f := e.onMessage; f != nil {
				f(msg)
			}
			e.handleMessage(msg)
		case op := <-e.subOps:
			if op.remove {
				e.handleUnsubscription(op.resp)
			} else {
				e.handleSubscription(op)
			}
		}
	}
}

func (e *Controller) handleMessage(msg Event) {
	e.cache.Set(msg.Topic, msg, ttlcache.DefaultTTL)
	if value, ok := e.subs.Load(msg.Topic); ok {
		for _, sub := range value.([]chan Event) {
			select {
			case sub <- msg:
			default:
				log.Printf("Channel full for topic %s", msg.Topic)
			}
		}
	}
}

func (e *Controller) handleSubscription(sub subOp) {
	var subs []chan Event
	if value, ok := e.subs.Load(sub.topic); ok {
		subs = value.([]chan Event)
	}
	subs = append(subs, sub.resp)
	e.subs.Store(sub.topic, subs)

	if item := e.cache.Get(sub.topic); item != nil {
		select {
		case sub.resp <- item.Value():
		default:
			log.Printf("Cache hit but channel full for topic %s", sub.topic)
		}
	}
}

func (e *Controller) handleUnsubscription(unsub chan Event) {
	e.subs.Range(func(key, value interface{}) bool {
		topic := key.(string)
		subs := value.([]chan Event)
		for i, sub := range subs {
			if sub == unsub {
				newSubs := append(subs[:i:i], subs[i+1:]...)
				if len(newSubs) == 0 {
					e.subs.Delete(topic)
				} else {
					e.subs.Store(topic, newSubs)
				}
				close(unsub)
				return false
			}
		}
		return true
	})
}

// Close stops the bus and closes every subscriber channel.
func (e *Controller) Close() {
	e.closeOnce.Do(func() {
		close(e.quit)
	})
	<-e.done
}

func (e *Controller) cleanup() {
	e.cache.DeleteAll()
	e.subs.Range(func(key, value interface{}) bool {
		for _, sub := range value.([]chan Event) {
			close(sub)
		}
		e.subs.Delete(key)
		return true
	})
}

func (e *Controller) Publish(topic string, p graph.Point, count int) error {
	return e.PublishEvent(Event{Topic: topic, Point: p, Count: count})
}

// PublishHover publishes the pointer position on TopicHover.
func (e *Controller) PublishHover(p graph.Point, inside bool) error {
	return e.PublishEvent(Event{Topic: TopicHover, Point: p, Inside: inside})
}

func (e *Controller) PublishEvent(ev Event) error {
	topic := ev.Topic
	select {
	case <-e.quit:
		return ErrClosed
	default:
	}
	select {
	case e.incoming <- ev:
		return nil
	default:
		return errors.New(topic + " publish channel full")
	}
}

// SubscribeFunc calls fn for every event on topic from a separate
// goroutine. The returned func unsubscribes.
func (e *Controller) SubscribeFunc(topic string, fn func(Event)) (cancel func()) {
	respChan := e.Subscribe(topic)
	go func() {
		for v := range respChan {
			debug.Do(func() {
				fn(v)
			})
		}
	}()
	cancel = func() {
		e.Unsubscribe(respChan)
	}
	return
}

func (e *Controller) Subscribe(topic string) chan Event {
	respChan := make(chan Event, e.chanSize)
	select {
	case e.subOps <- subOp{topic: topic, resp: respChan}:
	case <-e.quit:
		close(respChan)
	}
	return respChan
}

func (e *Controller) Unsubscribe(channel chan Event) {
	select {
	case e.subOps <- subOp{resp: channel, remove: true}:
	case <-e.quit:
	}
}

// Last returns the cached event of topic.
func (e *Controller) Last(topic string) (Event, bool) {
	if item := e.cache.Get(topic); item != nil {
		return item.Value(), true
	}
	return Event{}, false
}
