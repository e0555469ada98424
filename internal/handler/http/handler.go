package http

import (
	"net/http"

	"github.com/tadbir-app/tadbir-backend-go/internal/domain/user"
	"github.com/tadbir-app/tadbir-backend-go/internal/handler/http/middleware"
	"github.com/tadbir-app/tadbir-backend-go/internal/handler/http/response"
)

// tenantFrom resolves the acting tenant or writes the error response itself.
func tenantFrom(w http.ResponseWriter, r *http.Request) (user.TenantContext, bool) {
	tenant, err := middleware.Tenant(r)
	if err != nil {
		response.HandleError(w, err)
		return user.TenantContext{}, false
	}
	return tenant, true
}

// optionalQuery returns nil for an absent or empty query parameter.
func optionalQuery(r *http.Request, key string) *string {
	v := r.URL.Query().Get(key)
	if v == "" {
		return nil
	}
	return &v
}
