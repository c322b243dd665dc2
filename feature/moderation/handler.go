package moderation

import (
	"bytes"
	"errors"

	"moderation-diff/core/logger"
	"moderation-diff/core/reconcile"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ReportHeader carries the object name of an archived report.
const ReportHeader = "X-Report-Object"

// Handler handles HTTP requests for moderation requests.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the moderation routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/moderation")
	group.Get("/:id/attachments", h.HandleCompareAttachments)
	group.Get("/:id/attachments/summary", h.HandleSummary)
}

// HandleCompareAttachments returns the attachment reconciliation of a request.
// @Summary Compare Attachments
// @Description Reconcile the attachments proposed by a moderation request against the current document.
// @Tags moderation
// @Produce json
// @Produce plain
// @Param id path string true "Moderation Request ID"
// @Param archive query bool false "Archive the report to object storage"
// @Param format query string false "Output format (json or table)"
// @Success 200 {object} reconcile.Result "Reconciliation Result"
// @Failure 404 {object} map[string]string "Request Not Found"
// @Failure 422 {object} map[string]string "Invalid Request"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /moderation/{id}/attachments [get]
func (h *Handler) HandleCompareAttachments(c *fiber.Ctx) error {
	id := c.Params("id")
	l := logger.WithRayID(h.service.logger, c)

	result, err := h.service.Compare(c.Context(), id)
	if err != nil {
		return h.fail(c, l, "Attachment comparison failed", err)
	}

	if c.QueryBool("archive") {
		key, err := h.service.Archive(c.Context(), id, result)
		if err != nil {
			return h.fail(c, l, "Report archive failed", err)
		}
		l.Info("Archived moderation report", zap.String("request", id), zap.String("object", key))
		c.Set(ReportHeader, key)
	}

	if c.Query("format") == "table" {
		var buf bytes.Buffer
		if err := RenderTable(&buf, result); err != nil {
			return h.fail(c, l, "Table rendering failed", err)
		}
		c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
		return c.Send(buf.Bytes())
	}

	return c.JSON(result)
}

// HandleSummary returns the change counts of a request.
// @Summary Attachment Change Summary
// @Description Get added, deleted and changed attachment counts for a moderation request.
// @Tags moderation
// @Produce json
// @Param id path string true "Moderation Request ID"
// @Success 200 {object} reconcile.Summary "Summary"
// @Failure 404 {object} map[string]string "Request Not Found"
// @Failure 422 {object} map[string]string "Invalid Request"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /moderation/{id}/attachments/summary [get]
func (h *Handler) HandleSummary(c *fiber.Ctx) error {
	id := c.Params("id")
	l := logger.WithRayID(h.service.logger, c)

	result, err := h.service.Compare(c.Context(), id)
	if err != nil {
		return h.fail(c, l, "Attachment summary failed", err)
	}
	return c.JSON(result.Summary())
}

func (h *Handler) fail(c *fiber.Ctx, l *zap.Logger, msg string, err error) error {
	status := StatusFor(err)
	if status >= fiber.StatusInternalServerError {
		l.Error(msg, zap.Error(err))
	} else {
		l.Warn(msg, zap.Error(err))
	}
	return c.Status(status).JSON(fiber.Map{
		"error": err.Error(),
	})
}

// StatusFor maps service errors to HTTP status codes.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, ErrRequestNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, ErrInvalidRequestID),
		errors.Is(err, ErrInvalidSnapshot),
		errors.Is(err, reconcile.ErrDuplicateID):
		return fiber.StatusUnprocessableEntity
	default:
		return fiber.StatusInternalServerError
	}
}
