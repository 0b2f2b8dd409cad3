package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"trimatch/internal/csvexport"
	"trimatch/internal/domain"
	"trimatch/internal/middleware"
	"trimatch/internal/service"
	"trimatch/internal/xlsxexport"
)

// SessionHandler handles reconciliation session endpoints.
type SessionHandler struct {
	sessionService service.SessionService
}

// NewSessionHandler creates a new SessionHandler.
func NewSessionHandler(sessionService service.SessionService) *SessionHandler {
	return &SessionHandler{sessionService: sessionService}
}

// Create handles POST /api/v1/sessions
func (h *SessionHandler) Create(c *gin.Context) {
	var input service.CreateSessionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}
	input.CreatedBy = middleware.GetEmail(c)

	session, err := h.sessionService.Create(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, session)
}

// List handles GET /api/v1/sessions
func (h *SessionHandler) List(c *gin.Context) {
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	sessions, total, err := h.sessionService.List(c.Request.Context(), offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, sessions, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// GetByID handles GET /api/v1/sessions/:id
func (h *SessionHandler) GetByID(c *gin.Context) {
	sessionID, ok := parseSessionID(c)
	if !ok {
		return
	}

	session, err := h.sessionService.GetByID(c.Request.Context(), sessionID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, session)
}

// Delete handles DELETE /api/v1/sessions/:id
func (h *SessionHandler) Delete(c *gin.Context) {
	sessionID, ok := parseSessionID(c)
	if !ok {
		return
	}

	if err := h.sessionService.Delete(c.Request.Context(), sessionID); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"message": "session deleted"})
}

// AttachDocument handles POST /api/v1/sessions/:id/documents
func (h *SessionHandler) AttachDocument(c *gin.Context) {
	sessionID, ok := parseSessionID(c)
	if !ok {
		return
	}

	var body struct {
		FileID string `json:"file_id" binding:"required"`
		Role   string `json:"role" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	fileID, err := uuid.Parse(body.FileID)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid file id")
		return
	}
	role, ok := domain.ParseRole(body.Role)
	if !ok {
		HandleError(c, domain.ErrInvalidRole)
		return
	}

	doc, session, err := h.sessionService.AttachDocument(c.Request.Context(), service.AttachDocumentInput{
		SessionID: sessionID,
		FileID:    fileID,
		Role:      role,
	})
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, gin.H{"document": doc, "session": session})
}

// GetRecord handles GET /api/v1/sessions/:id/record
func (h *SessionHandler) GetRecord(c *gin.Context) {
	sessionID, ok := parseSessionID(c)
	if !ok {
		return
	}

	record, err := h.sessionService.GetRecord(c.Request.Context(), sessionID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, record)
}

// ExportCSV handles GET /api/v1/sessions/:id/export/csv
func (h *SessionHandler) ExportCSV(c *gin.Context) {
	sessionID, ok := parseSessionID(c)
	if !ok {
		return
	}

	session, err := h.sessionService.GetByID(c.Request.Context(), sessionID)
	if err != nil {
		HandleError(c, err)
		return
	}
	record, err := h.sessionService.GetRecord(c.Request.Context(), sessionID)
	if err != nil {
		HandleError(c, err)
		return
	}

	filename := csvexport.BuildFilename(session.Name, "csv")
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Status(http.StatusOK)

	if _, err := c.Writer.Write(csvexport.BOM); err != nil {
		return
	}
	w := csvexport.NewWriter(c.Writer)
	if err := w.WriteHeader(); err != nil {
		return
	}
	if err := w.WriteRecord(record); err != nil {
		return
	}
	w.Flush()
}

// ExportXLSX handles GET /api/v1/sessions/:id/export/xlsx
func (h *SessionHandler) ExportXLSX(c *gin.Context) {
	sessionID, ok := parseSessionID(c)
	if !ok {
		return
	}

	session, err := h.sessionService.GetByID(c.Request.Context(), sessionID)
	if err != nil {
		HandleError(c, err)
		return
	}
	record, err := h.sessionService.GetRecord(c.Request.Context(), sessionID)
	if err != nil {
		HandleError(c, err)
		return
	}

	data, err := xlsxexport.Export(record)
	if err != nil {
		HandleError(c, err)
		return
	}

	filename := csvexport.BuildFilename(session.Name, "xlsx")
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}

func parseSessionID(c *gin.Context) (uuid.UUID, bool) {
	sessionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid session id")
		return uuid.Nil, false
	}
	return sessionID, true
}
