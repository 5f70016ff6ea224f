// Package eventbus is a small in-process publish/subscribe bus with typed topics.
//
// Listeners are registered against a Topic[T]; the type parameter ties the
// event name to its payload type so a listener for a Topic[int] can never be
// handed a string.
//
//	score := eventbus.NewTopic[int]("scoreUpdated")
//	id := eventbus.On(bus, score, func(s int) { fmt.Println("Score:", s) })
//	eventbus.Emit(bus, score, 100)  // Score: 100
//	eventbus.Off(bus, score.Name(), id)
//	eventbus.Emit(bus, score, 150)  // no output
//
// Emission is synchronous: Emit returns after every listener has run. Go
// functions are not comparable, so listeners are removed by the ListenerID
// returned at registration rather than by function identity.
//
// Import
//
//	"github.com/sghaida/genlab/eventbus"
package eventbus
