package lessons

import (
	"context"
	"errors"
	"strconv"

	"github.com/sghaida/genlab/entity"
	"github.com/sghaida/genlab/eventbus"
	"github.com/sghaida/genlab/fetch"
	"github.com/sghaida/genlab/inventory"
	"github.com/sghaida/genlab/result"
)

type apiUser struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Age  int    `json:"age"`
}

func api(ctx context.Context, env Env) error {
	p := newPrinter(env.Out)
	c := fetch.New(env.APIBaseURL, fetch.WithTimeout(env.Timeout), fetch.WithLogger(env.logger()))

	res := fetch.Get[apiUser](ctx, c, "/users/1")
	if res.Success {
		p.println(res.Data.Name)
	} else {
		p.println("error:", res.Error)
	}

	name := fetch.GetTransform(ctx, c, "/users/1", func(u apiUser) string { return u.Name + " (" + strconv.Itoa(u.Age) + ")" })
	if name.Success {
		p.println(name.Data)
	}

	missing := fetch.FetchResult[apiUser](ctx, c, "/users/99")
	if se, ok := result.ErrorAs[fetch.StatusError](missing); ok {
		p.println("missing user, status", se.Code)
	} else if missing.Err != nil {
		p.println("missing user:", missing.Err)
	}

	all := fetch.GetAll[apiUser](ctx, c, []string{"/users/1", "/users/2", "/users/3"}, env.Concurrency)
	for _, r := range all {
		if r.Success {
			p.printf("%d %s\n", r.Data.ID, r.Data.Name)
		}
	}

	outcome := result.TryCatch(ctx, func(context.Context) (int, error) {
		return 0, errors.New("something went wrong")
	})
	p.println("tryCatch ok:", outcome.Ok(), "error:", outcome.Err)
	return p.err
}

type player struct {
	Name   string
	Health int
}

func entities(_ context.Context, env Env) error {
	p := newPrinter(env.Out)

	bus, err := eventbus.New(eventbus.WithLogger(env.logger()))
	if err != nil {
		return err
	}
	players := entity.NewManager(entity.WithBus[player](bus, "player"))
	eventbus.On(bus, players.Topics().Updated, func(ev entity.Event[player]) {
		p.printf("updated %s: health %d\n", ev.ID, ev.Data.Health)
	})

	hero := players.Spawn(player{Name: "Hero", Health: 100}, entity.WithID("hero"))
	if _, err := players.Update(hero.ID(), func(d *player) { d.Health = 80 }); err != nil {
		return err
	}
	p.printf("%+v\n", hero.Data())

	hero.Reset()
	p.printf("%+v\n", hero.Data())

	if _, err := players.Update("ghost"); err != nil {
		p.println(err)
	}
	return p.err
}

func events(_ context.Context, env Env) error {
	p := newPrinter(env.Out)

	bus, err := eventbus.New(eventbus.WithLogger(env.logger()))
	if err != nil {
		return err
	}
	score := eventbus.NewTopic[int]("scoreUpdated")

	onScore := eventbus.On(bus, score, func(s int) { p.printf("Score: %d\n", s) })
	eventbus.Once(bus, score, func(s int) { p.printf("first score: %d\n", s) })

	eventbus.Emit(bus, score, 100)

	eventbus.Off(bus, score.Name(), onScore)
	n := eventbus.Emit(bus, score, 150)
	p.println("listeners after removal:", n)
	return p.err
}

type weapon struct {
	inventory.BaseItem
	Damage int
}

func inventoryLesson(_ context.Context, env Env) error {
	p := newPrinter(env.Out)

	sword := weapon{BaseItem: inventory.BaseItem{ID: "sword_01", Name: "Iron Sword"}, Damage: 15}
	dagger := weapon{BaseItem: inventory.BaseItem{ID: "dagger_01", Name: "Dagger"}, Damage: 6}

	inv := inventory.New[weapon]()
	if err := inv.AddN(sword, 2); err != nil {
		return err
	}
	inv.Add(dagger)
	printStacks(p, inv.List())

	if _, err := inv.RemoveN("sword_01", 1); err != nil {
		return err
	}
	printStacks(p, inv.Filter(func(w weapon) bool { return w.Damage >= 10 }))

	if err := inv.AddN(sword, 0); err != nil {
		p.println(err)
	}
	return p.err
}

func printStacks(p *printer, stacks []inventory.Stack[weapon]) {
	for _, s := range stacks {
		p.printf("%s %q damage=%d x%d\n", s.Item.ID, s.Item.Name, s.Item.Damage, s.Quantity)
	}
}
