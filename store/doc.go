// Package store provides small generic in-memory stores.
//
// It contains three stores:
//
//   - DataStore[T]: an append-only list of values
//   - KeyValueStore[K, V]: a map that remembers insertion order
//   - LRU[K, V]: a bounded key-value store that evicts the least recently used key
//
// All stores are safe for concurrent use. Both key-value stores satisfy KV.
//
// Import
//
//	"github.com/sghaida/genlab/store"
package store
