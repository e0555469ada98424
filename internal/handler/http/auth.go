package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/tadbir-app/tadbir-backend-go/internal/domain/auth"
	"github.com/tadbir-app/tadbir-backend-go/internal/handler/http/response"
	"github.com/tadbir-app/tadbir-backend-go/internal/pkg/jwt"
	serviceAuth "github.com/tadbir-app/tadbir-backend-go/internal/service/auth"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
	RefreshToken(w http.ResponseWriter, r *http.Request)
	Logout(w http.ResponseWriter, r *http.Request)
}

type AuthHandlerImpl struct {
	jwtService  jwt.Service
	authService serviceAuth.AuthService
}

func NewAuthHandler(jwtService jwt.Service, authService serviceAuth.AuthService) AuthHandler {
	return &AuthHandlerImpl{
		jwtService:  jwtService,
		authService: authService,
	}
}

// Register implements AuthHandler.
func (a *AuthHandlerImpl) Register(w http.ResponseWriter, r *http.Request) {
	var req auth.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Register decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	tokenResponse, refreshToken, refreshExpiresAt, err := a.authService.Register(r.Context(), req)
	if err != nil {
		slog.Error("Register service error", "error", err)
		response.HandleError(w, err)
		return
	}

	http.SetCookie(w, a.jwtService.RefreshTokenCookie(refreshToken, refreshExpiresAt))
	slog.Info("Tenant registered", "company_id", tokenResponse.CompanyID)
	response.Created(w, "Registered successfully", tokenResponse)
}

// Login implements AuthHandler.
func (a *AuthHandlerImpl) Login(w http.ResponseWriter, r *http.Request) {
	var req auth.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Login decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	tokenResponse, refreshToken, refreshExpiresAt, err := a.authService.Login(r.Context(), req)
	if err != nil {
		slog.Error("Login service error", "error", err)
		response.HandleError(w, err)
		return
	}

	http.SetCookie(w, a.jwtService.RefreshTokenCookie(refreshToken, refreshExpiresAt))
	slog.Info("User logged in", "user_id", tokenResponse.UserID)
	response.SuccessWithMessage(w, "Logged in successfully", tokenResponse)
}

// RefreshToken implements AuthHandler.
func (a *AuthHandlerImpl) RefreshToken(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie("refresh_token")
	if err != nil {
		response.Unauthorized(w, "Refresh token cookie missing")
		return
	}

	tokenResponse, err := a.authService.Refresh(r.Context(), cookie.Value)
	if err != nil {
		slog.Error("Refresh service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, tokenResponse)
}

// Logout implements AuthHandler.
func (a *AuthHandlerImpl) Logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie("refresh_token"); err == nil {
		a.authService.Logout(cookie.Value)
	}

	// Expire the cookie regardless of whether it was present.
	http.SetCookie(w, a.jwtService.RefreshTokenCookie("", 0))
	response.SuccessWithMessage(w, "Logged out successfully", nil)
}
