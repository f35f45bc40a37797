package handler

import "net/http"

type HealthResponse struct {
	BaseResponse
	Status string `json:"status"`
}

func Health(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, HealthResponse{BaseResponse: BaseResponse{Ok: true}, Status: "healthy"})
}
