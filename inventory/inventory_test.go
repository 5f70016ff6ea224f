package inventory_test

import (
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/sghaida/genlab/inventory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type weapon struct {
	inventory.BaseItem
	Damage int
}

func newWeapon(id, name string, damage int) weapon {
	return weapon{BaseItem: inventory.BaseItem{ID: id, Name: name}, Damage: damage}
}

var (
	sword = newWeapon("sword_01", "Iron Sword", 15)
	axe   = newWeapon("axe_01", "Battle Axe", 22)
	bow   = newWeapon("bow_01", "Short Bow", 9)
)

func TestAdd_ListsSingleStack(t *testing.T) {
	t.Parallel()

	inv := inventory.New[weapon]()
	inv.Add(sword)

	want := []inventory.Stack[weapon]{{Item: sword, Quantity: 1}}
	if diff := cmp.Diff(want, inv.List()); diff != "" {
		t.Errorf("List() mismatch (-want +got):\n%s", diff)
	}
}

func TestAddN_Stacks(t *testing.T) {
	t.Parallel()

	inv := inventory.New[weapon]()
	require.NoError(t, inv.AddN(sword, 2))
	require.NoError(t, inv.AddN(axe, 1))

	// same id, different payload: quantity grows, first item is kept
	renamed := newWeapon("sword_01", "Renamed", 99)
	require.NoError(t, inv.AddN(renamed, 3))

	want := []inventory.Stack[weapon]{
		{Item: sword, Quantity: 5},
		{Item: axe, Quantity: 1},
	}
	if diff := cmp.Diff(want, inv.List()); diff != "" {
		t.Errorf("List() mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, 2, inv.Len())
	assert.Equal(t, 6, inv.Total())
}

func TestAddN_InvalidQuantity(t *testing.T) {
	t.Parallel()

	inv := inventory.New[weapon]()

	for _, n := range []int{0, -3} {
		err := inv.AddN(sword, n)
		var iq inventory.InvalidQuantityError
		require.True(t, errors.As(err, &iq))
		assert.Equal(t, n, iq.Quantity)
		assert.Equal(t, "sword_01", iq.ID)
	}
	assert.Equal(t, 0, inv.Len())
	assert.Equal(t, `inventory: invalid quantity 0 for "sword_01"`,
		inventory.InvalidQuantityError{ID: "sword_01"}.Error())
}

func TestRemoveN(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		start    int
		remove   int
		wantOK   bool
		wantQty  int
		wantHeld bool
	}{
		{name: "partial", start: 2, remove: 1, wantOK: true, wantQty: 1, wantHeld: true},
		{name: "exact", start: 2, remove: 2, wantOK: true, wantQty: 0, wantHeld: false},
		{name: "more than held", start: 2, remove: 5, wantOK: true, wantQty: 0, wantHeld: false},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			inv := inventory.New[weapon]()
			require.NoError(t, inv.AddN(sword, tc.start))

			ok, err := inv.RemoveN(sword.ID, tc.remove)
			require.NoError(t, err)
			assert.Equal(t, tc.wantOK, ok)
			assert.Equal(t, tc.wantQty, inv.Quantity(sword.ID))

			_, held := inv.Get(sword.ID)
			assert.Equal(t, tc.wantHeld, held)
		})
	}
}

func TestRemove_UnknownAndInvalid(t *testing.T) {
	t.Parallel()

	inv := inventory.New[weapon]()
	assert.False(t, inv.Remove("missing"))

	ok, err := inv.RemoveN("missing", 0)
	assert.False(t, ok)
	require.Error(t, err)
}

func TestRemove_KeepsOrderOfRemaining(t *testing.T) {
	t.Parallel()

	inv := inventory.New[weapon]()
	inv.Add(sword)
	inv.Add(axe)
	inv.Add(bow)

	require.True(t, inv.Remove(axe.ID))

	assert.Equal(t, []weapon{sword, bow}, inv.Items())

	// re-adding goes to the end
	inv.Add(axe)
	assert.Equal(t, []weapon{sword, bow, axe}, inv.Items())
}

func TestFilter(t *testing.T) {
	t.Parallel()

	inv := inventory.New[weapon]()
	inv.Add(sword)
	require.NoError(t, inv.AddN(axe, 2))
	inv.Add(bow)

	strong := inv.Filter(func(w weapon) bool { return w.Damage >= 15 })
	want := []inventory.Stack[weapon]{
		{Item: sword, Quantity: 1},
		{Item: axe, Quantity: 2},
	}
	if diff := cmp.Diff(want, strong); diff != "" {
		t.Errorf("Filter() mismatch (-want +got):\n%s", diff)
	}

	assert.Empty(t, inv.Filter(func(weapon) bool { return false }))
	assert.NotNil(t, inventory.New[weapon]().List())
}

func TestList_ReturnsCopies(t *testing.T) {
	t.Parallel()

	inv := inventory.New[weapon]()
	inv.Add(sword)

	list := inv.List()
	list[0].Quantity = 100

	assert.Equal(t, 1, inv.Quantity(sword.ID))
}

func TestFilter_PredicateMayUseInventory(t *testing.T) {
	t.Parallel()

	inv := inventory.New[weapon]()
	inv.Add(sword)
	inv.Add(bow)

	done := make(chan []inventory.Stack[weapon], 1)
	go func() {
		done <- inv.Filter(func(w weapon) bool {
			inv.Add(axe)
			_, _ = inv.RemoveN(bow.ID, 1)
			return inv.Quantity(w.ID) >= 0
		})
	}()

	var got []inventory.Stack[weapon]
	select {
	case got = <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Filter did not return while its predicate modified the inventory")
	}

	// the result reflects the inventory as it was when Filter started
	want := []inventory.Stack[weapon]{
		{Item: sword, Quantity: 1},
		{Item: bow, Quantity: 1},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Filter() mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, 2, inv.Quantity(axe.ID))
	assert.Equal(t, 0, inv.Quantity(bow.ID))
}
