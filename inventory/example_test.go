package inventory_test

import (
	"fmt"

	"github.com/sghaida/genlab/inventory"
)

func ExampleInventory_AddN() {
	type Weapon struct {
		inventory.BaseItem
		Damage int
	}

	sword := Weapon{BaseItem: inventory.BaseItem{ID: "sword_01", Name: "Iron Sword"}, Damage: 15}
	inv := inventory.New[Weapon]()

	_ = inv.AddN(sword, 2)
	for _, s := range inv.List() {
		fmt.Println(s.Item.ID, s.Item.Name, s.Item.Damage, s.Quantity)
	}

	_, _ = inv.RemoveN("sword_01", 1)
	for _, s := range inv.List() {
		fmt.Println(s.Item.ID, s.Item.Name, s.Item.Damage, s.Quantity)
	}
	// Output:
	// sword_01 Iron Sword 15 2
	// sword_01 Iron Sword 15 1
}
