package lessons

import (
	"context"

	"github.com/go-json-experiment/json"

	"github.com/sghaida/genlab/generics"
)

type user struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// partialUser is user with every field optional.
type partialUser struct {
	ID   generics.Optional[int]    `json:"id,omitzero"`
	Name generics.Optional[string] `json:"name,omitzero"`
}

// nullableUser is user with every field nullable.
type nullableUser struct {
	ID   generics.Nullable[int]    `json:"id"`
	Name generics.Nullable[string] `json:"name"`
}

func utility(_ context.Context, env Env) error {
	p := newPrinter(env.Out)

	partial := partialUser{Name: generics.Some("Alice")}
	readonly := generics.Freeze(user{ID: 1, Name: "Bob"})
	users := generics.Record[int, user]{
		1: {ID: 1, Name: "John"},
		2: {ID: 2, Name: "Doe"},
	}

	b, err := json.Marshal(partial)
	if err != nil {
		return err
	}
	p.println(string(b))
	p.printf("%+v\n", readonly.Get())
	for _, id := range generics.SortedKeys(users) {
		p.printf("%d: %+v\n", id, users[id])
	}

	b, err = json.Marshal(nullableUser{ID: generics.Null[int](), Name: generics.Null[string]()})
	if err != nil {
		return err
	}
	p.println(string(b))
	return p.err
}
