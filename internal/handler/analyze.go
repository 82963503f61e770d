package handler

import (
	"github.com/gofiber/fiber/v3"

	"github.com/BlakeDanielson/CrowdWork/internal/middleware"
	"github.com/BlakeDanielson/CrowdWork/internal/model"
	"github.com/BlakeDanielson/CrowdWork/internal/service"
)

type AnalyzeHandler struct {
	svc *service.AnalysisService
}

func NewAnalyzeHandler(svc *service.AnalysisService) *AnalyzeHandler {
	return &AnalyzeHandler{svc: svc}
}

type analyzeRequest struct {
	ChannelURL string `json:"channelUrl"`
	MaxVideos  int    `json:"maxVideos"`
}

// Submit handles POST /api/analyze. It validates the channel reference,
// registers a background analysis task and returns its ID immediately; the
// caller polls GET /api/tasks/:taskId for progress.
func (h *AnalyzeHandler) Submit(c fiber.Ctx) error {
	var req analyzeRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_BODY", "Request body must be valid JSON")
	}

	channelRef, errMsg := middleware.ValidateChannelRef(req.ChannelURL)
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}

	taskID, err := h.svc.Submit(channelRef, req.MaxVideos)
	if err != nil {
		// Parse failure: the reference survives format checks but does not
		// match any supported channel form. No task is created.
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", err.Error())
	}

	return c.Status(fiber.StatusAccepted).JSON(model.SubmitResponse{TaskID: taskID})
}
