// Package genlab is a set of small, generic building blocks for Go.
//
// The repository grows from a progression of lessons on Go generics:
//
//   - generics: identity/wrap helpers, Box and Pair, constraints, utility types
//     (Optional, Nullable, Readonly, Record)
//   - store: DataStore, KeyValueStore and a bounded LRU store
//   - result: a typed success/failure Result plus TryCatch
//   - fetch: JSON API response handling over HTTP
//   - entity: entities with id, partial updates and reset, plus a Manager
//   - eventbus: typed topics, multiple listeners, listener removal
//   - inventory: stacked items with quantities and filtering
//
// Each package is independent. The lessons package prints a runnable
// demonstration of each one, and cmd/genlab runs them from the command line.
//
// Package genlab See subpackages:
//   - generics, store, result, fetch, entity, eventbus, inventory: library packages
//   - lessons, cmd/genlab: the runnable lesson catalogue
//   - config, internal/mockapi: CLI configuration and the local JSON API used by lessons
package genlab
