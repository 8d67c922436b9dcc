package extraction

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"kyc-backend/internal/shared/metrics"
	"kyc-backend/internal/shared/server/middleware"
	"kyc-backend/internal/shared/server/respond"
	"kyc-backend/internal/shared/telemetry"
)

// Handler wires the extraction endpoint to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches extraction routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/extract-id-data", h.extract)
}

type extractRequest struct {
	ImageURL string `json:"imageUrl"`
	IDType   string `json:"idType"`
	UserID   string `json:"userId"`
}

type extractSuccess struct {
	Success            bool            `json:"success"`
	Data               ExtractedFields `json:"data"`
	PersonalDataAction string          `json:"personalDataAction"`
	PersonalDataResult PersonalData    `json:"personalDataResult"`
	Message            string          `json:"message"`
}

type extractFailure struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

func (h *Handler) extract(c *gin.Context) {
	metrics.IncExtractionStarted()
	start := time.Now()

	var req extractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.fail(c, "validation", "invalid request body")
		return
	}
	if req.UserID != "" {
		c.Set("userId", req.UserID)
	}

	result, err := h.Svc.Process(c.Request.Context(), Request{
		ImageURL: req.ImageURL,
		IDType:   req.IDType,
		UserID:   req.UserID,
	})
	if err != nil {
		h.fail(c, Stage(err), err.Error())
		return
	}

	metrics.IncExtractionCompleted()
	metrics.ObserveExtractionDurationMs(float64(time.Since(start).Milliseconds()))
	respond.OK(c, extractSuccess{
		Success:            true,
		Data:               result.Fields,
		PersonalDataAction: result.Action,
		PersonalDataResult: result.Profile,
		Message:            fmt.Sprintf("ID data extracted and personal data %s", result.Action),
	})
}

// fail logs the failed stage and emits the flat failure shape. Every stage
// maps to the same response contract; only the log names the stage.
func (h *Handler) fail(c *gin.Context, stage, message string) {
	metrics.IncExtractionFailed()
	c.Set("failedStage", stage)
	telemetry.Error("extraction.failed", map[string]any{
		"stage":      stage,
		"error":      message,
		"request_id": middleware.RequestIDFromContext(c),
		"user_id":    c.GetString("userId"),
	})
	respond.JSON(c, http.StatusBadRequest, extractFailure{Success: false, Error: message})
}
