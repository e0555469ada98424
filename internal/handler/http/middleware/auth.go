package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/tadbir-app/tadbir-backend-go/internal/domain/auth"
	"github.com/tadbir-app/tadbir-backend-go/internal/domain/user"
	"github.com/tadbir-app/tadbir-backend-go/internal/handler/http/response"
)

func AuthRequired(ja *jwtauth.JWTAuth) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			token, _, err := jwtauth.FromContext(r.Context())

			if err != nil {
				response.Unauthorized(w, err.Error())
				return
			}

			if token == nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			claims, err := token.AsMap(r.Context())
			if err != nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}
			tokenType, ok := claims["type"].(string)
			if tokenType != "access" || !ok {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			next.ServeHTTP(w, r)
		}
		return http.HandlerFunc(hfn)
	}
}

// Tenant rebuilds the acting tenant from the verified access token claims.
// Services receive this instead of reading claims themselves.
func Tenant(r *http.Request) (user.TenantContext, error) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return user.TenantContext{}, auth.ErrInvalidToken
	}

	companyID, ok := claims["company_id"].(string)
	if !ok || companyID == "" {
		return user.TenantContext{}, auth.ErrInvalidToken
	}
	role, ok := claims["role"].(string)
	if !ok || role == "" {
		return user.TenantContext{}, auth.ErrInvalidToken
	}
	isParent, _ := claims["is_parent"].(bool)

	return user.TenantContext{
		CompanyID: companyID,
		IsParent:  isParent,
		Role:      user.Role(role),
	}, nil
}
