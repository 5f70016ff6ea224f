package inventory

import (
	"slices"
	"strconv"
	"sync"
)

// Item is implemented by anything an Inventory can hold.
type Item interface {
	GetID() string
	GetName() string
}

// BaseItem is the minimal Item, intended for embedding.
type BaseItem struct {
	ID   string `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
}

// GetID implements Item.
func (b BaseItem) GetID() string { return b.ID }

// GetName implements Item.
func (b BaseItem) GetName() string { return b.Name }

// InvalidQuantityError is returned when a quantity below one is requested.
type InvalidQuantityError struct {
	ID       string
	Quantity int
}

// Error implements the error interface.
func (e InvalidQuantityError) Error() string {
	// Example: inventory: invalid quantity 0 for "sword_01"
	return "inventory: invalid quantity " + strconv.Itoa(e.Quantity) + " for " + strconv.Quote(e.ID)
}

// Stack is an item and how many of it are held.
type Stack[T Item] struct {
	Item     T   `json:"item"`
	Quantity int `json:"quantity"`
}

// Inventory holds stacks of T in the order their ids were first added.
type Inventory[T Item] struct {
	mu     sync.RWMutex
	stacks map[string]*Stack[T]
	order  []string
}

// New returns an empty Inventory.
func New[T Item]() *Inventory[T] {
	return &Inventory[T]{stacks: map[string]*Stack[T]{}}
}

// Add adds one of item.
func (inv *Inventory[T]) Add(item T) {
	// n is fixed at 1, which AddN always accepts.
	_ = inv.AddN(item, 1)
}

// AddN adds n of item. When the id is already held its quantity grows and the
// stored item is kept as first added.
func (inv *Inventory[T]) AddN(item T, n int) error {
	id := item.GetID()
	if n <= 0 {
		return InvalidQuantityError{ID: id, Quantity: n}
	}

	inv.mu.Lock()
	defer inv.mu.Unlock()

	if s, ok := inv.stacks[id]; ok {
		s.Quantity += n
		return nil
	}
	inv.stacks[id] = &Stack[T]{Item: item, Quantity: n}
	inv.order = append(inv.order, id)
	return nil
}

// Remove removes one item with id and reports whether the id was held.
func (inv *Inventory[T]) Remove(id string) bool {
	ok, _ := inv.RemoveN(id, 1)
	return ok
}

// RemoveN removes n items with id. The stack is dropped when its quantity
// falls to zero or below. ok is false when the id is not held.
func (inv *Inventory[T]) RemoveN(id string, n int) (ok bool, err error) {
	if n <= 0 {
		return false, InvalidQuantityError{ID: id, Quantity: n}
	}

	inv.mu.Lock()
	defer inv.mu.Unlock()

	s, held := inv.stacks[id]
	if !held {
		return false, nil
	}
	s.Quantity -= n
	if s.Quantity <= 0 {
		delete(inv.stacks, id)
		if i := slices.Index(inv.order, id); i >= 0 {
			inv.order = slices.Delete(inv.order, i, i+1)
		}
	}
	return true, nil
}

// Quantity returns how many items with id are held.
func (inv *Inventory[T]) Quantity(id string) int {
	inv.mu.RLock()
	defer inv.mu.RUnlock()

	if s, ok := inv.stacks[id]; ok {
		return s.Quantity
	}
	return 0
}

// Get returns the stored item with id.
func (inv *Inventory[T]) Get(id string) (T, bool) {
	inv.mu.RLock()
	defer inv.mu.RUnlock()

	if s, ok := inv.stacks[id]; ok {
		return s.Item, true
	}
	var zero T
	return zero, false
}

// List returns a copy of every stack in first-added order. It is never nil.
func (inv *Inventory[T]) List() []Stack[T] {
	return inv.Filter(nil)
}

// Items returns the held items without quantities, in first-added order.
func (inv *Inventory[T]) Items() []T {
	stacks := inv.List()
	out := make([]T, len(stacks))
	for i, s := range stacks {
		out[i] = s.Item
	}
	return out
}

// Filter returns the stacks whose item satisfies keep, in first-added order.
// A nil keep matches everything.
//
// keep runs on a snapshot taken without the lock held, so it may call back
// into the inventory; changes it makes show up in later calls only.
func (inv *Inventory[T]) Filter(keep func(T) bool) []Stack[T] {
	inv.mu.RLock()
	snapshot := make([]Stack[T], 0, len(inv.order))
	for _, id := range inv.order {
		snapshot = append(snapshot, *inv.stacks[id])
	}
	inv.mu.RUnlock()

	if keep == nil {
		return snapshot
	}
	out := snapshot[:0]
	for _, s := range snapshot {
		if keep(s.Item) {
			out = append(out, s)
		}
	}
	return out
}

// Len returns the number of distinct ids held.
func (inv *Inventory[T]) Len() int {
	inv.mu.RLock()
	defer inv.mu.RUnlock()
	return len(inv.stacks)
}

// Total returns the sum of all quantities.
func (inv *Inventory[T]) Total() int {
	inv.mu.RLock()
	defer inv.mu.RUnlock()

	total := 0
	for _, s := range inv.stacks {
		total += s.Quantity
	}
	return total
}
