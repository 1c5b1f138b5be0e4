package validation

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"datecheck-backend/internal/extract"
	"datecheck-backend/internal/shared/server/respond"
	"datecheck-backend/internal/shared/util"
)

const (
	maxUploadBytes = 5 << 20
	maxTextBytes   = 1 << 20
)

// Handler wires HTTP handlers to the validation service.
type Handler struct {
	Svc  *Service
	Runs Repo
}

// NewHandler constructs a Handler. runs may be nil when persistence is
// disabled; the lookup routes then return 404s.
func NewHandler(svc *Service, runs Repo) *Handler {
	return &Handler{Svc: svc, Runs: runs}
}

// RegisterRoutes attaches validation routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/validate", h.validateText)
	rg.POST("/validate/file", h.validateFile)
	rg.GET("/validations/:id", h.getRun)
	rg.GET("/validations", h.listRuns)
}

type validateRequest struct {
	Text string `json:"text"`
}

func (h *Handler) validateText(c *gin.Context) {
	var req validateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	if len(req.Text) > maxTextBytes {
		respond.Error(c, http.StatusRequestEntityTooLarge, "validation_error", "text exceeds size limit", nil)
		return
	}
	respond.OK(c, h.Svc.ValidateResumeDates(c.Request.Context(), req.Text))
}

func (h *Handler) validateFile(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "file is required", nil)
		return
	}
	if fileHeader.Size <= 0 || fileHeader.Size > maxUploadBytes {
		respond.Error(c, http.StatusRequestEntityTooLarge, "validation_error", "file exceeds size limit", nil)
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "could not read file", nil)
		return
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, maxUploadBytes+1))
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "could not read file", nil)
		return
	}
	if len(data) > maxUploadBytes {
		respond.Error(c, http.StatusRequestEntityTooLarge, "validation_error", "file exceeds size limit", nil)
		return
	}

	fileName, err := util.SanitizeFileName(fileHeader.Filename)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid file name", nil)
		return
	}

	mimeType := fileHeader.Header.Get("Content-Type")
	text, err := extract.TextFromBytes(c.Request.Context(), data, mimeType, fileName)
	if err != nil {
		if errors.Is(err, extract.ErrUnsupportedType) {
			respond.Error(c, http.StatusUnsupportedMediaType, "validation_error", "unsupported file type", nil)
			return
		}
		respond.Error(c, http.StatusUnprocessableEntity, "extraction_error", "could not extract text from file", nil)
		return
	}

	respond.OK(c, h.Svc.ValidateResumeDates(c.Request.Context(), text))
}

func (h *Handler) getRun(c *gin.Context) {
	if h.Runs == nil {
		respond.Error(c, http.StatusNotFound, "not_found", "validation run not found", nil)
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid run id", nil)
		return
	}
	run, err := h.Runs.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "not_found", "validation run not found", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to load validation run", nil)
		return
	}
	respond.OK(c, run)
}

func (h *Handler) listRuns(c *gin.Context) {
	if h.Runs == nil {
		respond.OK(c, []Run{})
		return
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	runs, err := h.Runs.List(c.Request.Context(), limit)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list validation runs", nil)
		return
	}
	if runs == nil {
		runs = []Run{}
	}
	respond.OK(c, runs)
}
