package notify

import "sync"

// Level classifies a user-facing notice.
type Level string

const (
	LevelSuccess Level = "success"
	LevelError   Level = "error"
	LevelInfo    Level = "info"
)

// Notice is the toast payload surfaced after an operation settles.
type Notice struct {
	Level   Level
	Message string
}

// Listener receives notices as they are published.
type Listener func(Notice)

// Notifier fans notices out to subscribed listeners. It is the transport
// between operation boundaries and whatever presents toasts; validation
// details never travel through it, they ride the error value inline.
type Notifier struct {
	mu        sync.Mutex
	listeners []Listener
}

func NewNotifier() *Notifier {
	return &Notifier{}
}

// Subscribe registers a listener for every subsequent notice.
func (n *Notifier) Subscribe(listener Listener) {
	if listener == nil {
		return
	}
	n.mu.Lock()
	defer n.mu.Unlock()
	n.listeners = append(n.listeners, listener)
}

func (n *Notifier) publish(level Level, message string) {
	if n == nil {
		return
	}
	n.mu.Lock()
	listeners := make([]Listener, len(n.listeners))
	copy(listeners, n.listeners)
	n.mu.Unlock()

	notice := Notice{Level: level, Message: message}
	for _, listener := range listeners {
		listener(notice)
	}
}

func (n *Notifier) Success(message string) {
	n.publish(LevelSuccess, message)
}

func (n *Notifier) Error(message string) {
	n.publish(LevelError, message)
}

func (n *Notifier) Info(message string) {
	n.publish(LevelInfo, message)
}
