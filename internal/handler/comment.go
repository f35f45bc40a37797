package handler

import (
	"net/http"

	"github.com/dangerclosesec/vizboard/internal/serializer"
	"github.com/dangerclosesec/vizboard/internal/service"
)

type CommentHandler struct {
	commentService *service.CommentService
}

func NewCommentHandler(commentService *service.CommentService) *CommentHandler {
	return &CommentHandler{commentService: commentService}
}

// List requires a vizId query parameter.
func (h *CommentHandler) List(w http.ResponseWriter, r *http.Request) {
	vizID, ok := queryUUID(w, r, "vizId")
	if !ok {
		return
	}
	if vizID == nil {
		respondWithError(w, http.StatusBadRequest, "vizId is required")
		return
	}

	comments, err := h.commentService.List(r.Context(), *vizID)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, serializer.Many(comments, serializer.Comment))
}

func (h *CommentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input service.CreateCommentInput
	if !decodeJSON(w, r, &input) {
		return
	}

	comment, err := h.commentService.Create(r.Context(), input)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, serializer.Comment(comment))
}

func (h *CommentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := urlUUID(w, r, "commentID", "comment")
	if !ok {
		return
	}

	if err := h.commentService.Delete(r.Context(), id); err != nil {
		handleError(w, r, err)
		return
	}
	respondOK(w)
}
