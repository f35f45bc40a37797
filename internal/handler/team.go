package handler

import (
	"net/http"

	"github.com/dangerclosesec/vizboard/internal/serializer"
	"github.com/dangerclosesec/vizboard/internal/service"
	"github.com/google/uuid"
)

type TeamHandler struct {
	teamService *service.TeamService
}

func NewTeamHandler(teamService *service.TeamService) *TeamHandler {
	return &TeamHandler{teamService: teamService}
}

// AddMembersRequest accepts a single member ({userId, role}) or a batch
// ({members: [...]}). The batch wins when both are present.
type AddMembersRequest struct {
	UserID  *uuid.UUID            `json:"userId"`
	Role    string                `json:"role"`
	Members []service.MemberInput `json:"members"`
}

func (req AddMembersRequest) inputs() []service.MemberInput {
	if len(req.Members) > 0 {
		return req.Members
	}
	if req.UserID != nil {
		return []service.MemberInput{{UserID: *req.UserID, Role: req.Role}}
	}
	return nil
}

type DisbandResponse struct {
	BaseResponse
	ReassignedDatasets int64 `json:"reassignedDatasets"`
}

func (h *TeamHandler) List(w http.ResponseWriter, r *http.Request) {
	teams, err := h.teamService.ListMine(r.Context())
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, serializer.Many(teams, serializer.TeamSummary))
}

func (h *TeamHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input service.CreateTeamInput
	if !decodeJSON(w, r, &input) {
		return
	}

	team, err := h.teamService.Create(r.Context(), input)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, serializer.Team(team))
}

func (h *TeamHandler) Get(w http.ResponseWriter, r *http.Request) {
	teamID, ok := urlUUID(w, r, "teamID", "team")
	if !ok {
		return
	}

	team, err := h.teamService.Get(r.Context(), teamID)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, serializer.Team(team))
}

func (h *TeamHandler) Disband(w http.ResponseWriter, r *http.Request) {
	teamID, ok := urlUUID(w, r, "teamID", "team")
	if !ok {
		return
	}

	reassigned, err := h.teamService.Disband(r.Context(), teamID)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, DisbandResponse{
		BaseResponse:       BaseResponse{Ok: true},
		ReassignedDatasets: reassigned,
	})
}

// AddMembers answers 201 when at least one member was added and 200 when
// every requested user already belonged to the team.
func (h *TeamHandler) AddMembers(w http.ResponseWriter, r *http.Request) {
	teamID, ok := urlUUID(w, r, "teamID", "team")
	if !ok {
		return
	}

	var req AddMembersRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	result, err := h.teamService.AddMembers(r.Context(), teamID, req.inputs())
	if err != nil {
		handleError(w, r, err)
		return
	}

	status := http.StatusOK
	if len(result.Added) > 0 {
		status = http.StatusCreated
	}
	respondWithJSON(w, status, serializer.AddMembers(result))
}

func (h *TeamHandler) RemoveMember(w http.ResponseWriter, r *http.Request) {
	teamID, ok := urlUUID(w, r, "teamID", "team")
	if !ok {
		return
	}
	userID, ok := urlUUID(w, r, "userID", "user")
	if !ok {
		return
	}

	if err := h.teamService.RemoveMember(r.Context(), teamID, userID); err != nil {
		handleError(w, r, err)
		return
	}
	respondOK(w)
}
