package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"polymath-backend/internal/domains/subject"
	"polymath-backend/internal/shared/response"
)

type SubjectHandler struct {
	service subject.Service
}

func NewSubjectHandler(svc subject.Service) *SubjectHandler {
	return &SubjectHandler{
		service: svc,
	}
}

// Create - POST /api/v1/subjects
func (h *SubjectHandler) Create(c *gin.Context) {
	var req subject.CreateSubjectRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		response.UnprocessableEntity(c, err.Error())
		return
	}

	if err := req.Validate(); err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, "INVALID_INPUT", err.Error())
		return
	}

	resp, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		response.ErrorResponse(c, subject.ToHTTPStatus(err), subject.ToErrorCode(err), err.Error())
		return
	}

	response.Success(c, http.StatusCreated, "Create subject successfully", resp.ToResponse())
}

// GetAll - GET /api/v1/subjects
func (h *SubjectHandler) GetAll(c *gin.Context) {
	subjects, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		response.InternalServerError(c, err.Error())
		return
	}

	items := make([]subject.SubjectResponse, len(subjects))
	for i, s := range subjects {
		items[i] = *s.ToResponse()
	}

	res := subject.SubjectListResponse{
		Subjects: items,
		Total:    len(items),
	}

	response.Success(c, http.StatusOK, "Success", res)
}

// GetByID - GET /api/v1/subjects/:id
func (h *SubjectHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	resp, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, subject.ErrSubjectNotFound) {
			response.NotFound(c, err.Error())
		} else {
			response.InternalServerError(c, err.Error())
		}
		return
	}

	response.Success(c, http.StatusOK, "Get subject successfully", resp.ToResponse())
}

// Update - PUT /api/v1/subjects/:id
func (h *SubjectHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req subject.UpdateSubjectRequest
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
		response.ErrorResponse(c, subject.ToHTTPStatus(err), subject.ToErrorCode(err), err.Error())
		return
	}

	response.Success(c, http.StatusOK, "Update subject successfully", resp.ToResponse())
}

// Delete - DELETE /api/v1/subjects/:id
func (h *SubjectHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, subject.ErrSubjectNotFound) {
			response.NotFound(c, err.Error())
		} else {
			response.InternalServerError(c, err.Error())
		}
		return
	}

	response.Success(c, http.StatusOK, "Subject deleted successfully", gin.H{"subject_id": id})
}

// Count - GET /api/v1/subjects/count
func (h *SubjectHandler) Count(c *gin.Context) {
	count, err := h.service.Count(c.Request.Context())
	if err != nil {
		response.InternalServerError(c, err.Error())
		return
	}

	response.Success(c, http.StatusOK, "Success", subject.SubjectCountResponse{Count: count})
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid subject id")
		return 0, false
	}
	return id, true
}
