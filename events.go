package impulse

import (
	"sort"

	"github.com/vova616/impulse/vect"
)

const (
	Topic_AddBody             = "add:body"
	Topic_RemoveBody          = "remove:body"
	Topic_IntegrateVelocities = "integrate:velocities"
	Topic_IntegratePositions  = "integrate:positions"
	Topic_Candidates          = "collisions:candidates"
	Topic_Detected            = "collisions:detected"
	Topic_Anomaly             = "collisions:anomaly"
	Topic_Step                = "step"
)

// Event payload. Only the fields relevant to the topic are set, and slices are
// only valid during the callback.
type Event struct {
	Topic string
	World *World

	Body       *Body
	Pairs      []Pair
	Collisions []Collision
	Anomalies  []Anomaly

	Dt vect.Float
	// Fraction of a timestep left in the accumulator, for render interpolation.
	Alpha vect.Float
}

type Listener func(e *Event)

type subscription struct {
	id       int
	priority int
	fn       Listener
}

// Topic based listeners called in descending priority, ties in subscription order.
type events struct {
	topics map[string][]subscription
	nextId int
}

func (ev *events) on(topic string, priority int, fn Listener) int {
	if ev.topics == nil {
		ev.topics = make(map[string][]subscription)
	}
	ev.nextId++
	subs := append(ev.topics[topic], subscription{ev.nextId, priority, fn})
	sort.SliceStable(subs, func(i, j int) bool {
		return subs[i].priority > subs[j].priority
	})
	ev.topics[topic] = subs
	return ev.nextId
}

func (ev *events) off(topic string, id int) bool {
	subs := ev.topics[topic]
	for i, sub := range subs {
		if sub.id == id {
			ev.topics[topic] = append(subs[:i:i], subs[i+1:]...)
			return true
		}
	}
	return false
}

func (ev *events) has(topic string) bool {
	return len(ev.topics[topic]) > 0
}

func (ev *events) emit(e *Event) {
	for _, sub := range ev.topics[e.Topic] {
		sub.fn(e)
	}
}
