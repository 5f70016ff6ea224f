// Package entity provides Entity[T], a value with a stable id that can be
// partially updated and reset to the state it was created with, and Manager[T],
// a keyed collection of entities.
//
// Updates are expressed as Patch[T] functions that modify a copy of the
// current data, which is the Go counterpart of spreading a partial object
// over the existing one:
//
//	player := entity.New(Player{Name: "Hero", Health: 100})
//	player.Update(func(p *Player) { p.Health = 80 })
//	player.Reset() // back to {Hero 100}
//
// Import
//
//	"github.com/sghaida/genlab/entity"
package entity
