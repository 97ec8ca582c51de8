// Package realtime reparte los cambios del store a los listeners suscritos por topic.
package realtime

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"child-immunization-tracker/internal/platform/logger"
)

// Message es lo que recibe un listener.
type Message struct {
	Type      string          `json:"type"`
	Topic     string          `json:"topic"`
	Timestamp time.Time       `json:"timestamp"`
	Data      json.RawMessage `json:"data,omitempty"`
}

const defaultBuffer = 64

// Hub implementa ports/realtime.Publisher.
type Hub struct {
	mu     sync.RWMutex
	topics map[string]map[*Subscription]struct{}
	now    func() time.Time
	log    logger.Logger
	buffer int
}

func NewHub(log logger.Logger) *Hub {
	if log == nil {
		log = logger.Nop()
	}
	return &Hub{
		topics: make(map[string]map[*Subscription]struct{}),
		now:    time.Now,
		log:    log,
		buffer: defaultBuffer,
	}
}

// Subscription es el handle de un listener. Después de Close no llega nada más.
type Subscription struct {
	C <-chan Message

	ch     chan Message
	hub    *Hub
	topics map[string]struct{}
	closed bool
	once   sync.Once
}

// Subscribe registra un listener para los topics dados (puede ampliarse con Add).
func (h *Hub) Subscribe(topics ...string) *Subscription {
	ch := make(chan Message, h.buffer)
	s := &Subscription{
		C:      ch,
		ch:     ch,
		hub:    h,
		topics: make(map[string]struct{}),
	}
	s.Add(topics...)
	return s
}

func (s *Subscription) Add(topics ...string) {
	h := s.hub
	h.mu.Lock()
	defer h.mu.Unlock()

	if s.closed {
		return
	}
	for _, t := range topics {
		if t == "" {
			continue
		}
		if h.topics[t] == nil {
			h.topics[t] = make(map[*Subscription]struct{})
		}
		h.topics[t][s] = struct{}{}
		s.topics[t] = struct{}{}
	}
}

func (s *Subscription) Remove(topics ...string) {
	h := s.hub
	h.mu.Lock()
	defer h.mu.Unlock()

	for _, t := range topics {
		h.detach(s, t)
	}
}

func (s *Subscription) Topics() []string {
	s.hub.mu.RLock()
	defer s.hub.mu.RUnlock()

	out := make([]string, 0, len(s.topics))
	for t := range s.topics {
		out = append(out, t)
	}
	return out
}

// Close suelta todas las suscripciones y cierra C. Es idempotente.
func (s *Subscription) Close() {
	s.once.Do(func() {
		h := s.hub
		h.mu.Lock()
		defer h.mu.Unlock()

		for t := range s.topics {
			h.detach(s, t)
		}
		s.closed = true
		close(s.ch)
	})
}

// detach requiere h.mu tomado.
func (h *Hub) detach(s *Subscription, topic string) {
	if subs, ok := h.topics[topic]; ok {
		delete(subs, s)
		if len(subs) == 0 {
			delete(h.topics, topic)
		}
	}
	delete(s.topics, topic)
}

// Publish entrega el cambio a cada listener del topic sin bloquear:
// si el buffer de un listener está lleno, ese mensaje se descarta para él.
func (h *Hub) Publish(_ context.Context, topic, kind string, data any) {
	var raw json.RawMessage
	if data != nil {
		b, err := json.Marshal(data)
		if err != nil {
			h.log.Warn("realtime: marshal payload", map[string]any{"topic": topic, "error": err})
			return
		}
		raw = b
	}

	msg := Message{Type: kind, Topic: topic, Timestamp: h.now().UTC(), Data: raw}

	h.mu.RLock()
	defer h.mu.RUnlock()

	for s := range h.topics[topic] {
		select {
		case s.ch <- msg:
		default:
			h.log.Debug("realtime: listener buffer full", map[string]any{"topic": topic})
		}
	}
}

func (h *Hub) TopicCount(topic string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.topics[topic])
}
