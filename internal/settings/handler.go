package settings

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"datecheck-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the settings service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches config routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/config", h.getConfig)
	rg.PUT("/config", h.updateConfig)
	rg.POST("/config/reset", h.resetConfig)
}

func (h *Handler) getConfig(c *gin.Context) {
	respond.OK(c, h.Svc.Get(c.Request.Context()))
}

// updateRequest carries a partial update; omitted fields keep their current
// value. Ranges are checked again by ValidationConfig.Validate before
// anything is persisted.
type updateRequest struct {
	MaxFutureEducationYears *int     `json:"maxFutureEducationYears" binding:"omitempty,min=0,max=10"`
	MaxFutureWorkMonths     *int     `json:"maxFutureWorkMonths" binding:"omitempty,min=0,max=12"`
	EnableTypoDetection     *bool    `json:"enableTypoDetection"`
	ConfidenceThreshold     *float64 `json:"confidenceThreshold" binding:"omitempty,min=0,max=1"`
	StrictMode              *bool    `json:"strictMode"`
}

func (h *Handler) updateConfig(c *gin.Context) {
	var req updateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid config payload", err.Error())
		return
	}

	cfg := h.Svc.Get(c.Request.Context())
	if req.MaxFutureEducationYears != nil {
		cfg.MaxFutureEducationYears = *req.MaxFutureEducationYears
	}
	if req.MaxFutureWorkMonths != nil {
		cfg.MaxFutureWorkMonths = *req.MaxFutureWorkMonths
	}
	if req.EnableTypoDetection != nil {
		cfg.EnableTypoDetection = *req.EnableTypoDetection
	}
	if req.ConfidenceThreshold != nil {
		cfg.ConfidenceThreshold = *req.ConfidenceThreshold
	}
	if req.StrictMode != nil {
		cfg.StrictMode = *req.StrictMode
	}

	if err := h.Svc.Update(c.Request.Context(), cfg); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		return
	}
	respond.OK(c, cfg)
}

func (h *Handler) resetConfig(c *gin.Context) {
	respond.OK(c, h.Svc.Reset(c.Request.Context()))
}
