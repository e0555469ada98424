package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tadbir-app/tadbir-backend-go/internal/domain/idempotency"
)

type memoryKeyStore struct {
	mu   sync.Mutex
	keys map[string]struct{}
}

func newMemoryKeyStore() *memoryKeyStore {
	return &memoryKeyStore{keys: make(map[string]struct{})}
}

func (s *memoryKeyStore) Register(_ context.Context, companyID, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	pair := companyID + "|" + key
	if _, ok := s.keys[pair]; ok {
		return idempotency.ErrDuplicateKey
	}
	s.keys[pair] = struct{}{}
	return nil
}

func (s *memoryKeyStore) Release(_ context.Context, companyID, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.keys, companyID+"|"+key)
	return nil
}

func (s *memoryKeyStore) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.keys)
}

func idempotencyTestRequest(t *testing.T, method, key string) *http.Request {
	tok := jwt.New()
	require.NoError(t, tok.Set("company_id", "co-1"))
	require.NoError(t, tok.Set("role", "owner"))
	require.NoError(t, tok.Set("is_parent", true))

	req := httptest.NewRequest(method, "/api/v1/expenses", nil)
	req = req.WithContext(jwtauth.NewContext(req.Context(), tok, nil))
	if key != "" {
		req.Header.Set("Idempotency-Key", key)
	}
	return req
}

func TestIdempotency_ReplayRejected(t *testing.T) {
	store := newMemoryKeyStore()
	calls := 0
	h := Idempotency(store)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusCreated)
	}))

	first := httptest.NewRecorder()
	h.ServeHTTP(first, idempotencyTestRequest(t, http.MethodPost, "key-1"))
	assert.Equal(t, http.StatusCreated, first.Code)
	assert.Equal(t, 1, calls)

	replay := httptest.NewRecorder()
	h.ServeHTTP(replay, idempotencyTestRequest(t, http.MethodPost, "key-1"))
	assert.Equal(t, http.StatusConflict, replay.Code)
	assert.Equal(t, 1, calls, "replayed request must not reach the handler")
}

func TestIdempotency_SafeMethodsSkipRegistration(t *testing.T) {
	store := newMemoryKeyStore()
	h := Idempotency(store)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, idempotencyTestRequest(t, http.MethodGet, "key-1"))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Zero(t, store.count(), "GET must not consume the key")

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, idempotencyTestRequest(t, http.MethodPost, "key-1"))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, store.count())
}

func TestIdempotency_NoHeaderPassesThrough(t *testing.T) {
	store := newMemoryKeyStore()
	h := Idempotency(store)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	}))

	for i := 0; i < 2; i++ {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, idempotencyTestRequest(t, http.MethodPost, ""))
		assert.Equal(t, http.StatusCreated, rec.Code)
	}
	assert.Zero(t, store.count())
}

func TestIdempotency_FailedMutationFreesKey(t *testing.T) {
	store := newMemoryKeyStore()
	fail := true
	h := Idempotency(store)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if fail {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusCreated)
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, idempotencyTestRequest(t, http.MethodPost, "key-1"))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Zero(t, store.count(), "failed mutation must not burn the key")

	fail = false
	retry := httptest.NewRecorder()
	h.ServeHTTP(retry, idempotencyTestRequest(t, http.MethodPost, "key-1"))
	assert.Equal(t, http.StatusCreated, retry.Code)
	assert.Equal(t, 1, store.count())
}
