package middleware

import (
	"net/http"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/tadbir-app/tadbir-backend-go/internal/domain/idempotency"
	"github.com/tadbir-app/tadbir-backend-go/internal/handler/http/response"
)

// Idempotency guards mutating requests carrying the optional Idempotency-Key
// header. The (company, key) pair is registered before the handler runs, so a
// concurrent or replayed request answers 409 and never executes. When the
// handler fails the pair is released again, letting the client retry with the
// same key. Safe methods pass through untouched.
func Idempotency(repo idempotency.Repository) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			switch r.Method {
			case http.MethodGet, http.MethodHead, http.MethodOptions:
				next.ServeHTTP(w, r)
				return
			}

			key := r.Header.Get("Idempotency-Key")
			if key == "" {
				next.ServeHTTP(w, r)
				return
			}

			tenant, err := Tenant(r)
			if err != nil {
				response.HandleError(w, err)
				return
			}

			if err := repo.Register(r.Context(), tenant.CompanyID, key); err != nil {
				response.HandleError(w, err)
				return
			}

			ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)

			if ww.Status() >= http.StatusBadRequest {
				// The mutation did not happen; free the key for a retry.
				_ = repo.Release(r.Context(), tenant.CompanyID, key)
			}
		}
		return http.HandlerFunc(hfn)
	}
}
