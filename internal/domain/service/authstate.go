package service

import (
	"sync"

	"storefront/pkg/logger"
)

type AuthState int

const (
	// AuthStateUnknown is reported until the first sign-in state resolves.
	AuthStateUnknown AuthState = iota
	AuthStateSignedIn
	AuthStateSignedOut
)

func (s AuthState) String() string {
	switch s {
	case AuthStateSignedIn:
		return "signed_in"
	case AuthStateSignedOut:
		return "signed_out"
	default:
		return "unknown"
	}
}

type Principal struct {
	UID   string
	Email string
}

type AuthStateEvent struct {
	State     AuthState
	Principal *Principal
}

// AuthStateNotifier delivers sign-in state changes to subscribers. Each
// subscription must be released when its consumer is torn down.
type AuthStateNotifier struct {
	mu      sync.Mutex
	current AuthStateEvent
	subs    map[int]chan AuthStateEvent
	nextID  int
}

func NewAuthStateNotifier() *AuthStateNotifier {
	return &AuthStateNotifier{
		current: AuthStateEvent{State: AuthStateUnknown},
		subs:    make(map[int]chan AuthStateEvent),
	}
}

// Publish records the new state and fans it out. A nil principal means
// signed out.
func (n *AuthStateNotifier) Publish(principal *Principal) {
	event := AuthStateEvent{State: AuthStateSignedOut}
	if principal != nil {
		event = AuthStateEvent{State: AuthStateSignedIn, Principal: principal}
	}

	n.mu.Lock()
	defer n.mu.Unlock()

	n.current = event
	for id, ch := range n.subs {
		select {
		case ch <- event:
		default:
			logger.Warn("auth state subscriber %d is not draining, event dropped", id)
		}
	}
}

func (n *AuthStateNotifier) Current() AuthStateEvent {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.current
}

// Subscribe returns the state at subscription time, a channel of subsequent
// events, and a release func. Release is idempotent and stops delivery.
func (n *AuthStateNotifier) Subscribe() (AuthStateEvent, <-chan AuthStateEvent, func()) {
	n.mu.Lock()
	defer n.mu.Unlock()

	id := n.nextID
	n.nextID++

	ch := make(chan AuthStateEvent, 16)
	n.subs[id] = ch

	release := func() {
		n.mu.Lock()
		defer n.mu.Unlock()
		if _, ok := n.subs[id]; ok {
			delete(n.subs, id)
			close(ch)
		}
	}

	return n.current, ch, release
}
