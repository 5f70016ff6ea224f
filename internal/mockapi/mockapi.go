// Package mockapi serves a small JSON API on loopback for the fetch lessons.
//
// Routes:
//
//	GET /healthz     liveness check
//	GET /users       every seeded user
//	GET /users/:id   one user; 400 for a non-numeric id, 404 for an unknown one
//
// Error bodies use {"error":{"code":..., "message":...}}.
package mockapi

import (
	"context"
	"errors"
	"io"
	"net"
	"strconv"

	"github.com/go-json-experiment/json"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/sghaida/genlab/store"
)

// User is the resource served by the API.
type User struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Age  int    `json:"age"`
}

// DefaultUsers are the users a Server starts with when none are given.
var DefaultUsers = []User{
	{ID: 1, Name: "John", Age: 30},
	{ID: 2, Name: "Doe", Age: 41},
	{ID: 3, Name: "Alice", Age: 27},
}

type errorPayload struct {
	Error errorEnvelope `json:"error"`
}

type errorEnvelope struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrAlreadyStarted is returned by Start on a Server that is already serving.
var ErrAlreadyStarted = errors.New("mockapi: server already started")

// Server is the mock API.
type Server struct {
	app      *fiber.App
	users    *store.KeyValueStore[int, User]
	requests *prometheus.CounterVec

	ln     net.Listener
	served chan error
}

// Option configures a Server.
type Option func(*Server) error

// WithUsers replaces the seeded users.
func WithUsers(users ...User) Option {
	return func(s *Server) error {
		s.users = store.NewKeyValueStore[int, User]()
		for _, u := range users {
			s.users.Set(u.ID, u)
		}
		return nil
	}
}

// WithMetrics counts requests in mockapi_requests_total{path,status} on reg.
func WithMetrics(reg prometheus.Registerer) Option {
	return func(s *Server) error {
		if reg == nil {
			return errors.New("mockapi: nil prometheus registerer")
		}
		s.requests = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "mockapi_requests_total",
				Help: "Total number of mock API requests processed.",
			},
			[]string{"path", "status"},
		)
		return reg.Register(s.requests)
	}
}

// New builds a Server.
func New(opts ...Option) (*Server, error) {
	s := &Server{}
	if err := WithUsers(DefaultUsers...)(s); err != nil {
		return nil, err
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(s); err != nil {
			return nil, err
		}
	}

	s.app = fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ErrorHandler:          errorHandler,
		JSONEncoder:           func(v any) ([]byte, error) { return json.Marshal(v) },
		JSONDecoder:           func(data []byte, v any) error { return json.Unmarshal(data, v) },
	})
	if s.requests != nil {
		s.app.Use(s.countRequests)
	}
	s.app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
	s.app.Get("/users", s.listUsers)
	s.app.Get("/users/:id", s.getUser)

	return s, nil
}

// App returns the underlying fiber app, mainly for app.Test in tests.
func (s *Server) App() *fiber.App { return s.app }

// Start listens on addr (for example "127.0.0.1:0") and serves in the
// background. It returns the base URL of the server.
func (s *Server) Start(addr string) (string, error) {
	if s.ln != nil {
		return "", ErrAlreadyStarted
	}
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return "", err
	}
	s.ln = ln
	s.served = make(chan error, 1)
	go func() { s.served <- s.app.Listener(ln) }()
	return "http://" + ln.Addr().String(), nil
}

// Shutdown stops the server and waits for the serve loop to exit. It returns
// the error the serve loop stopped with, if any. Shutdown on a Server that
// was never started is a no-op.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.ln == nil {
		return nil
	}
	shutdownErr := s.app.ShutdownWithContext(ctx)

	// Closing the listener also stops a serve loop that had not yet
	// registered it with fiber when ShutdownWithContext ran.
	if err := s.ln.Close(); err != nil && !errors.Is(err, net.ErrClosed) {
		shutdownErr = errors.Join(shutdownErr, err)
	}

	select {
	case err := <-s.served:
		if err != nil && !errors.Is(err, net.ErrClosed) && !errors.Is(err, io.EOF) {
			return errors.Join(shutdownErr, err)
		}
		return shutdownErr
	case <-ctx.Done():
		return errors.Join(shutdownErr, ctx.Err())
	}
}

func (s *Server) listUsers(c *fiber.Ctx) error {
	return c.JSON(s.users.Values())
}

func (s *Server) getUser(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "id must be an integer")
	}
	u, ok := s.users.Get(id)
	if !ok {
		return fiber.NewError(fiber.StatusNotFound, "user "+strconv.Itoa(id)+" not found")
	}
	return c.JSON(u)
}

func (s *Server) countRequests(c *fiber.Ctx) error {
	err := c.Next()

	path := c.Route().Path
	if path == "" {
		path = c.Path()
	}
	status := c.Response().StatusCode()
	var fe *fiber.Error
	if errors.As(err, &fe) {
		status = fe.Code
	} else if err != nil {
		status = fiber.StatusInternalServerError
	}
	s.requests.WithLabelValues(path, strconv.Itoa(status)).Inc()
	return err
}

func errorHandler(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	msg := "internal error"
	var fe *fiber.Error
	if errors.As(err, &fe) {
		status = fe.Code
		msg = fe.Message
	}

	code := "INTERNAL_ERROR"
	switch status {
	case fiber.StatusBadRequest:
		code = "BAD_REQUEST"
	case fiber.StatusNotFound:
		code = "NOT_FOUND"
	}
	return c.Status(status).JSON(errorPayload{Error: errorEnvelope{Code: code, Message: msg}})
}
