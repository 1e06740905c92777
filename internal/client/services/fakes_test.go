package services

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/growlog/internal/client/client"
	"github.com/dmitrijs2005/growlog/internal/client/identity"
)

// ---- fake identity provider ----

type fakeProvider struct {
	Outcome    identity.Outcome
	SignOutErr error
	AvailErr   error

	SignInCalls  int
	SignOutCalls int
}

func (f *fakeProvider) SignIn(context.Context) identity.Outcome {
	f.SignInCalls++
	return f.Outcome
}

func (f *fakeProvider) SignOut(context.Context) error {
	f.SignOutCalls++
	return f.SignOutErr
}

func (f *fakeProvider) CheckAvailability(context.Context) error { return f.AvailErr }

// ---- fake API client ----

type call struct {
	Method string
	Path   string
	Body   any
}

// fakeClient records calls and answers from a per-path table of handlers.
type fakeClient struct {
	mu    sync.Mutex
	calls []call

	ExchangeRet  *client.AuthResponse
	ExchangeErr  error
	LastExchange *client.GoogleExchangeRequest

	// respond fills out for the given method+path; nil leaves out untouched.
	respond func(method, path string, body, out any) error
}

func (f *fakeClient) record(method, path string, body, out any) error {
	f.mu.Lock()
	f.calls = append(f.calls, call{Method: method, Path: path, Body: body})
	respond := f.respond
	f.mu.Unlock()

	if respond == nil {
		return nil
	}
	return respond(method, path, body, out)
}

func (f *fakeClient) Get(_ context.Context, path string, out any) error {
	return f.record("GET", path, nil, out)
}

func (f *fakeClient) Post(_ context.Context, path string, body, out any) error {
	return f.record("POST", path, body, out)
}

func (f *fakeClient) Put(_ context.Context, path string, body, out any) error {
	return f.record("PUT", path, body, out)
}

func (f *fakeClient) Patch(_ context.Context, path string, body, out any) error {
	return f.record("PATCH", path, body, out)
}

func (f *fakeClient) Delete(_ context.Context, path string, out any) error {
	return f.record("DELETE", path, nil, out)
}

func (f *fakeClient) ExchangeGoogleToken(_ context.Context, req client.GoogleExchangeRequest) (*client.AuthResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.LastExchange = &req
	f.calls = append(f.calls, call{Method: "POST", Path: client.GoogleExchangePath, Body: req})
	return f.ExchangeRet, f.ExchangeErr
}

func (f *fakeClient) Calls() []call {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]call(nil), f.calls...)
}

// ---- in-memory secure storage ----

type memStorage struct {
	mu        sync.Mutex
	data      map[string]string
	SetErr    error
	DeleteErr error
}

func newMemStorage() *memStorage { return &memStorage{data: map[string]string{}} }

func (m *memStorage) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *memStorage) SetAll(_ context.Context, values map[string]string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.SetErr != nil {
		return m.SetErr
	}
	for k, v := range values {
		m.data[k] = v
	}
	return nil
}

func (m *memStorage) Delete(_ context.Context, keys ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.DeleteErr != nil {
		return m.DeleteErr
	}
	for _, k := range keys {
		delete(m.data, k)
	}
	return nil
}

func (m *memStorage) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.data)
}
