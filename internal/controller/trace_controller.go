package controller

import (
	"financegpt-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ITraceController interface {
	RegisterRoutes(r fiber.Router)
	ListTraces(ctx *fiber.Ctx) error
	GetTrace(ctx *fiber.Ctx) error
}

type traceController struct {
	service   service.ITraceService
	protected func(*fiber.Ctx) error
}

func NewTraceController(svc service.ITraceService, protected func(*fiber.Ctx) error) ITraceController {
	return &traceController{
		service:   svc,
		protected: protected,
	}
}

func (c *traceController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/traces", c.protected)
	h.Get("/", c.ListTraces)
	h.Get("/:trace_id", c.GetTrace)
}

func (c *traceController) ListTraces(ctx *fiber.Ctx) error {
	userIdStr, _ := ctx.Locals("user_id").(string)
	userId, err := uuid.Parse(userIdStr)
	if err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"code":    401,
			"message": "invalid session",
		})
	}

	limit := ctx.QueryInt("limit", 20)
	offset := ctx.QueryInt("offset", 0)

	traces, err := c.service.ListByUser(ctx.Context(), userId, limit, offset)
	if err != nil {
		return serverError(ctx, err)
	}
	return ctx.JSON(fiber.Map{
		"success": true,
		"code":    200,
		"message": "Traces fetched",
		"data":    traces,
	})
}

func (c *traceController) GetTrace(ctx *fiber.Ctx) error {
	trace, err := c.service.GetByTraceId(ctx.Context(), ctx.Params("trace_id"))
	if err != nil {
		return serverError(ctx, err)
	}
	if trace == nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"code":    404,
			"message": "trace not found",
		})
	}
	return ctx.JSON(fiber.Map{
		"success": true,
		"code":    200,
		"message": "Trace fetched",
		"data":    trace,
	})
}
