package cart

import (
	"sync"

	"github.com/shopspring/decimal"

	"github.com/angelmondragon/shopfront-client/internal/api"
	"github.com/angelmondragon/shopfront-client/internal/session"
)

// Snapshot is the state listeners observe after every cart change.
type Snapshot struct {
	Scope string
	Lines []LineItem
}

// Listener receives cart snapshots. Durable persistence is implemented as
// a listener so the state-transition logic stays free of storage concerns.
type Listener func(Snapshot)

// Store holds the current cart for one persistence scope. Mutation entry
// points apply pure transitions and then notify subscribers; the store
// never performs I/O itself.
type Store struct {
	mu        sync.RWMutex
	scope     string
	cart      Cart
	listeners []Listener
}

// NewStore starts with an empty guest cart.
func NewStore() *Store {
	return &Store{scope: session.GuestScope}
}

// AddItem merges the product into the cart. The product's catalog price is
// captured into the line item here; stock validation is deferred to
// checkout so the add-to-cart path never blocks on an inventory call.
func (s *Store) AddItem(product api.Product, quantity int) {
	item := LineItem{
		ProductID: product.ID,
		SKUCode:   product.SKUCode,
		Name:      product.Name,
		UnitPrice: product.Price,
		Quantity:  quantity,
		ImageURL:  product.ImageURL,
	}

	s.mu.Lock()
	s.cart = add(s.cart, item)
	s.mu.Unlock()
	s.notify()
}

// UpdateQuantity sets a line's quantity; zero or below removes the line.
func (s *Store) UpdateQuantity(productID string, quantity int) {
	s.mu.Lock()
	s.cart = updateQuantity(s.cart, productID, quantity)
	s.mu.Unlock()
	s.notify()
}

// RemoveItem deletes the line if present; no-op otherwise.
func (s *Store) RemoveItem(productID string) {
	s.mu.Lock()
	s.cart = remove(s.cart, productID)
	s.mu.Unlock()
	s.notify()
}

// Clear empties the cart. The checkout coordinator calls this only after
// the backend confirms order creation.
func (s *Store) Clear() {
	s.mu.Lock()
	s.cart = Cart{}
	s.mu.Unlock()
	s.notify()
}

// Items returns a snapshot copy of the current lines.
func (s *Store) Items() []LineItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cart.clone().Lines
}

// Total is recomputed from the current lines on every call.
func (s *Store) Total() decimal.Decimal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cart.Total()
}

// IsEmpty reports whether the cart has no lines.
func (s *Store) IsEmpty() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cart.IsEmpty()
}

// Scope names the persistence partition this cart belongs to.
func (s *Store) Scope() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.scope
}

// Restore loads persisted lines into the current scope without notifying
// listeners. Used at startup, before the persister subscribes, so booting
// never rewrites the rows it just read.
func (s *Store) Restore(lines []LineItem) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart = Cart{Lines: lines}.clone()
}

// SwitchScope atomically rebinds the store to another principal's scope
// and replaces the lines with that scope's persisted cart. One principal's
// cart never leaks into another's.
func (s *Store) SwitchScope(scope string, lines []LineItem) {
	s.mu.Lock()
	if s.scope == scope {
		s.mu.Unlock()
		return
	}
	s.scope = scope
	s.cart = Cart{Lines: lines}.clone()
	s.mu.Unlock()
	s.notify()
}

// Subscribe registers a listener for every subsequent snapshot.
func (s *Store) Subscribe(listener Listener) {
	if listener == nil {
		return
	}
	s.mu.Lock()
	s.listeners = append(s.listeners, listener)
	s.mu.Unlock()
}

func (s *Store) notify() {
	s.mu.RLock()
	snap := Snapshot{Scope: s.scope, Lines: s.cart.clone().Lines}
	listeners := make([]Listener, len(s.listeners))
	copy(listeners, s.listeners)
	s.mu.RUnlock()

	for _, listener := range listeners {
		listener(snap)
	}
}
