// Package inventory keeps stacks of items keyed by item id.
//
// Any type with an id and a name can be stored; BaseItem provides both and is
// meant to be embedded:
//
//	type Weapon struct {
//		inventory.BaseItem
//		Damage int
//	}
//
// Adding an item whose id is already present increases the stack's quantity.
// Removing reduces it and drops the stack once it reaches zero.
//
// Import
//
//	"github.com/sghaida/genlab/inventory"
package inventory
