package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"polymath-backend/internal/domains/note"
	"polymath-backend/internal/shared/response"
)

type NoteHandler struct {
	service note.Service
}

func NewNoteHandler(svc note.Service) *NoteHandler {
	return &NoteHandler{
		service: svc,
	}
}

// Create - POST /api/v1/subjects/:id/notes
// The subject id in the path must match the subject_id in the body.
func (h *NoteHandler) Create(c *gin.Context) {
	subjectID, ok := parseID(c, "Invalid subject id")
	if !ok {
		return
	}

	var req note.CreateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.UnprocessableEntity(c, err.Error())
		return
	}

	if req.SubjectID != subjectID {
		response.BadRequest(c, fmt.Sprintf(
			"Subject ID in URL (%d) does not match subject ID in body (%d)",
			subjectID, req.SubjectID,
		))
		return
	}

	if err := req.Validate(); err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, "INVALID_INPUT", err.Error())
		return
	}

	resp, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		response.ErrorResponse(c, note.ToHTTPStatus(err), note.ToErrorCode(err), err.Error())
		return
	}

	response.Success(c, http.StatusCreated, "Create note successfully", resp.ToResponse())
}

// ListBySubject - GET /api/v1/subjects/:id/notes
func (h *NoteHandler) ListBySubject(c *gin.Context) {
	subjectID, ok := parseID(c, "Invalid subject id")
	if !ok {
		return
	}

	notes, err := h.service.ListBySubject(c.Request.Context(), subjectID)
	if err != nil {
		if errors.Is(err, note.ErrSubjectNotFound) {
			response.NotFound(c, err.Error())
		} else {
			response.InternalServerError(c, err.Error())
		}
		return
	}

	items := make([]note.NoteResponse, len(notes))
	for i, n := range notes {
		items[i] = *n.ToResponse()
	}

	res := note.NoteListResponse{
		Notes:     items,
		Total:     len(items),
		SubjectID: &subjectID,
	}

	response.Success(c, http.StatusOK, "Success", res)
}

// GetByID - GET /api/v1/notes/:id
func (h *NoteHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c, "Invalid note id")
	if !ok {
		return
	}

	resp, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, note.ErrNoteNotFound) {
			response.NotFound(c, err.Error())
		} else {
			response.InternalServerError(c, err.Error())
		}
		return
	}

	response.Success(c, http.StatusOK, "Get note successfully", resp.ToResponse())
}

// Update - PUT /api/v1/notes/:id
// Auto-save endpoint: the editor calls this every few seconds.
func (h *NoteHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "Invalid note id")
	if !ok {
		return
	}

	var req note.UpdateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.UnprocessableEntity(c, err.Error())
		return
	}

	if err := req.Validate(); err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, "INVALID_INPUT", err.Error())
		return
	}

	resp, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		response.ErrorResponse(c, note.ToHTTPStatus(err), note.ToErrorCode(err), err.Error())
		return
	}

	response.Success(c, http.StatusOK, "Update note successfully", resp.ToResponse())
}

// Delete - DELETE /api/v1/notes/:id
func (h *NoteHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "Invalid note id")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, note.ErrNoteNotFound) {
			response.NotFound(c, err.Error())
		} else {
			response.InternalServerError(c, err.Error())
		}
		return
	}

	response.Success(c, http.StatusOK, "Note deleted successfully", gin.H{"note_id": id})
}

// Count - GET /api/v1/notes/count?subject_id=
func (h *NoteHandler) Count(c *gin.Context) {
	var subjectID *int64
	if raw := c.Query("subject_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			response.BadRequest(c, "Invalid subject_id query parameter")
			return
		}
		subjectID = &id
	}

	count, err := h.service.Count(c.Request.Context(), subjectID)
	if err != nil {
		response.InternalServerError(c, err.Error())
		return
	}

	response.Success(c, http.StatusOK, "Success", note.NoteCountResponse{
		Count:     count,
		SubjectID: subjectID,
	})
}

func parseID(c *gin.Context, message string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, message)
		return 0, false
	}
	return id, true
}
