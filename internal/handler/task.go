package handler

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	"github.com/BlakeDanielson/CrowdWork/internal/middleware"
	"github.com/BlakeDanielson/CrowdWork/internal/model"
	"github.com/BlakeDanielson/CrowdWork/internal/service"
)

type TaskHandler struct {
	svc *service.AnalysisService
}

func NewTaskHandler(svc *service.AnalysisService) *TaskHandler {
	return &TaskHandler{svc: svc}
}

// Get handles GET /api/tasks/:taskId — the polling endpoint. Reading a
// task is side-effect free; it returns an immutable snapshot with result
// present only on COMPLETE and error only on ERROR.
func (h *TaskHandler) Get(c fiber.Ctx) error {
	taskID, errMsg := middleware.ValidateTaskID(c.Params("taskId"))
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}

	resp, ok := h.svc.GetTask(taskID)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "NOT_FOUND", "Task not found or expired")
	}

	return c.JSON(resp)
}

// Export handles GET /api/tasks/:taskId/export
// Serves a completed task's channel result as a JSON attachment.
func (h *TaskHandler) Export(c fiber.Ctx) error {
	taskID, errMsg := middleware.ValidateTaskID(c.Params("taskId"))
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}

	resp, ok := h.svc.GetTask(taskID)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "NOT_FOUND", "Task not found or expired")
	}
	if resp.Status != model.StatusComplete {
		return middleware.ErrorResponse(c, fiber.StatusConflict, "NOT_READY", "Task has not completed yet")
	}

	c.Set("Content-Disposition", fmt.Sprintf("attachment; filename=crowdwork-%s.json", taskID))
	return c.JSON(resp.Result)
}
