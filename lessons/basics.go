package lessons

import (
	"context"

	"github.com/sghaida/genlab/generics"
	"github.com/sghaida/genlab/store"
)

func basics(_ context.Context, env Env) error {
	p := newPrinter(env.Out)

	num := generics.Identity(42)
	str := generics.Identity("Hello")
	p.println(num, str)

	p.println(
		generics.WrapInArray(5),
		generics.WrapInArray("hello"),
		generics.WrapInArray(map[string]string{"name": "John"}),
		generics.WrapInArray([]int{1}),
		generics.WrapInArray([]int{1, 2}),
	)
	return p.err
}

func interfaces(_ context.Context, env Env) error {
	p := newPrinter(env.Out)

	numberBox := generics.Box[int]{Value: 100}
	stringBox := generics.NewBox("Go")
	p.printf("%+v %+v\n", numberBox, stringBox)

	numberPair := generics.NewPair(1, 2)
	stringPair := generics.Pair[string]{First: "A", Second: "B"}
	p.printf("%+v %+v\n", numberPair, stringPair)
	p.printf("swapped: %+v\n", stringPair.Swap())
	return p.err
}

func constraints(_ context.Context, env Env) error {
	p := newPrinter(env.Out)

	_ = generics.PrintLength(p, generics.Text("Hello"))
	_ = generics.PrintLength(p, generics.List[int]{1, 2, 3})
	_ = generics.PrintLength(p, generics.Length(10))
	_ = generics.StringLength(p, "plain string")

	merged := generics.Merge(
		map[string]any{"name": "John"},
		map[string]any{"age": 30},
	)
	p.println(merged)

	type named struct{ Name string }
	type aged struct{ Age int }
	both := generics.MergeStructs(named{Name: "John"}, aged{Age: 30})
	p.printf("%s is %d\n", both.Left.Name, both.Right.Age)
	return p.err
}

func classes(_ context.Context, env Env) error {
	p := newPrinter(env.Out)

	numbers := store.NewDataStore[int]()
	numbers.Add(1)
	numbers.Add(2)
	numbers.Add(3)
	p.println(numbers.GetAll())

	letters := store.NewDataStore[string]()
	letters.Add("A")
	letters.Add("B")
	letters.Add("C")
	p.println(letters.GetAll())

	kv := store.NewKeyValueStore[string, int]()
	kv.Set("age", 30)
	age, _ := kv.Get("age")
	p.println(age)
	if _, ok := kv.Get("height"); !ok {
		p.println("height: not set")
	}

	recent, err := store.NewLRU[string, int](2, func(k string, _ int) {
		p.println("evicted:", k)
	})
	if err != nil {
		return err
	}
	recent.Set("a", 1)
	recent.Set("b", 2)
	recent.Set("c", 3)
	p.println(recent.Keys())
	return p.err
}
