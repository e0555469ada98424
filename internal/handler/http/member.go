package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/tadbir-app/tadbir-backend-go/internal/domain/member"
	"github.com/tadbir-app/tadbir-backend-go/internal/handler/http/response"
	serviceMember "github.com/tadbir-app/tadbir-backend-go/internal/service/member"
)

type MemberHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)

	CreateTransfer(w http.ResponseWriter, r *http.Request)
	ListTransfers(w http.ResponseWriter, r *http.Request)
	DeleteTransfer(w http.ResponseWriter, r *http.Request)
}

type MemberHandlerImpl struct {
	memberService serviceMember.MemberService
}

func NewMemberHandler(memberService serviceMember.MemberService) MemberHandler {
	return &MemberHandlerImpl{memberService: memberService}
}

// Create implements MemberHandler.
func (m *MemberHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	tenant, ok := tenantFrom(w, r)
	if !ok {
		return
	}

	var req member.CreateMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create member decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := m.memberService.Create(r.Context(), tenant, req)
	if err != nil {
		slog.Error("Create member service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Member created successfully", created)
}

// List implements MemberHandler.
func (m *MemberHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	tenant, ok := tenantFrom(w, r)
	if !ok {
		return
	}

	members, err := m.memberService.List(r.Context(), tenant)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, members)
}

// Delete implements MemberHandler.
func (m *MemberHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	tenant, ok := tenantFrom(w, r)
	if !ok {
		return
	}

	if err := m.memberService.Delete(r.Context(), tenant, chi.URLParam(r, "id")); err != nil {
		slog.Error("Delete member service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Member deleted successfully", nil)
}

// CreateTransfer implements MemberHandler.
func (m *MemberHandlerImpl) CreateTransfer(w http.ResponseWriter, r *http.Request) {
	tenant, ok := tenantFrom(w, r)
	if !ok {
		return
	}

	var req member.CreateMemberTransferRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create member transfer decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.MemberID = chi.URLParam(r, "id")

	created, err := m.memberService.CreateTransfer(r.Context(), tenant, req)
	if err != nil {
		slog.Error("Create member transfer service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Member transfer created successfully", created)
}

// ListTransfers implements MemberHandler.
func (m *MemberHandlerImpl) ListTransfers(w http.ResponseWriter, r *http.Request) {
	tenant, ok := tenantFrom(w, r)
	if !ok {
		return
	}

	transfers, err := m.memberService.ListTransfers(r.Context(), tenant, chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, transfers)
}

// DeleteTransfer implements MemberHandler.
func (m *MemberHandlerImpl) DeleteTransfer(w http.ResponseWriter, r *http.Request) {
	tenant, ok := tenantFrom(w, r)
	if !ok {
		return
	}

	if err := m.memberService.DeleteTransfer(r.Context(), tenant, chi.URLParam(r, "transferID")); err != nil {
		slog.Error("Delete member transfer service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Member transfer deleted successfully", nil)
}
