package lessons

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"time"

	"github.com/sghaida/genlab/store"
)

// ErrNoAPI is returned by lessons that need an HTTP API when Env has none.
var ErrNoAPI = errors.New("lessons: no API base URL configured")

// UnknownLessonError is returned by Lookup for a name not in the catalogue.
type UnknownLessonError struct{ Name string }

// Error implements the error interface.
func (e UnknownLessonError) Error() string {
	// Example: lessons: unknown lesson "nope"
	return "lessons: unknown lesson " + strconv.Quote(e.Name)
}

// Env is what a lesson may use while running.
type Env struct {
	Out        io.Writer
	Log        *slog.Logger
	APIBaseURL string
	Timeout    time.Duration
	// Concurrency bounds parallel requests in the api lesson.
	Concurrency int
}

func (e Env) logger() *slog.Logger {
	if e.Log != nil {
		return e.Log
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// Lesson is a named, runnable demonstration.
type Lesson struct {
	Name  string
	Title string
	// NeedsAPI is set for lessons that call Env.APIBaseURL.
	NeedsAPI bool
	Run      func(ctx context.Context, env Env) error
}

var catalogue = store.NewKeyValueStore[string, Lesson]().
	With("basics", Lesson{Name: "basics", Title: "Basic generics: reusable functions", Run: basics}).
	With("interfaces", Lesson{Name: "interfaces", Title: "Generic types: Box and Pair", Run: interfaces}).
	With("constraints", Lesson{Name: "constraints", Title: "Generic constraints", Run: constraints}).
	With("classes", Lesson{Name: "classes", Title: "Generic stores", Run: classes}).
	With("utility", Lesson{Name: "utility", Title: "Utility types", Run: utility}).
	With("api", Lesson{Name: "api", Title: "API response handling", NeedsAPI: true, Run: api}).
	With("entity", Lesson{Name: "entity", Title: "Entity manager for game objects", Run: entities}).
	With("events", Lesson{Name: "events", Title: "Event bus", Run: events}).
	With("inventory", Lesson{Name: "inventory", Title: "Inventory with stacking", Run: inventoryLesson})

// All returns every lesson in catalogue order.
func All() []Lesson { return catalogue.Values() }

// Names returns the lesson names in catalogue order.
func Names() []string { return catalogue.Keys() }

// Lookup returns the lesson called name.
func Lookup(name string) (Lesson, error) {
	l, ok := catalogue.Get(name)
	if !ok {
		return Lesson{}, UnknownLessonError{Name: name}
	}
	return l, nil
}

// Run runs lessons in order, printing a header before each, and stops at the
// first error.
func Run(ctx context.Context, env Env, ls ...Lesson) error {
	for _, l := range ls {
		if err := ctx.Err(); err != nil {
			return err
		}
		if l.NeedsAPI && env.APIBaseURL == "" {
			return ErrNoAPI
		}
		if _, err := io.WriteString(env.Out, "== "+l.Name+": "+l.Title+"\n"); err != nil {
			return err
		}
		env.logger().DebugContext(ctx, "running lesson", "lesson", l.Name)
		if err := l.Run(ctx, env); err != nil {
			return fmt.Errorf("lessons: %s: %w", l.Name, err)
		}
	}
	return nil
}
