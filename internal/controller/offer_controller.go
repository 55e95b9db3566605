package controller

import (
	"financegpt-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IOfferController interface {
	RegisterRoutes(r fiber.Router)
	GetActiveOffers(ctx *fiber.Ctx) error
}

type offerController struct {
	service   service.IOfferService
	protected func(*fiber.Ctx) error
}

func NewOfferController(svc service.IOfferService, protected func(*fiber.Ctx) error) IOfferController {
	return &offerController{
		service:   svc,
		protected: protected,
	}
}

func (c *offerController) RegisterRoutes(r fiber.Router) {
	r.Get("/offers", c.protected, c.GetActiveOffers)
}

func (c *offerController) GetActiveOffers(ctx *fiber.Ctx) error {
	offers, err := c.service.GetActiveOffers(ctx.Context())
	if err != nil {
		return serverError(ctx, err)
	}
	return ctx.JSON(fiber.Map{
		"success": true,
		"code":    200,
		"message": "Active offers fetched",
		"data":    offers,
	})
}
