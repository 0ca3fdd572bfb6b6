package controllers

import (
	"github.com/Naitik2408/pizza-sub001/pkg/resp"
	"github.com/Naitik2408/pizza-sub001/repository"
	"github.com/Naitik2408/pizza-sub001/services"
	"github.com/Naitik2408/pizza-sub001/utils"

	"github.com/gin-gonic/gin"
)

type OfferController struct {
	Repo      *repository.OfferRepository
	Discounts *services.DiscountService
	Carts     *services.CartService
}

func NewOfferController(repo *repository.OfferRepository, d *services.DiscountService, carts *services.CartService) *OfferController {
	return &OfferController{Repo: repo, Discounts: d, Carts: carts}
}

// GET /offers
func (h *OfferController) List(c *gin.Context) {
	offers, err := h.Repo.ListActive()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, offers)
}

// GET /offers/:code — previews the code against the caller's live subtotal
// without committing it to the cart.
func (h *OfferController) Validate(c *gin.Context) {
	sub := h.Carts.Get(utils.OwnerKey(c)).Totals.Subtotal
	off, err := h.Discounts.ValidateCode(c.Param("code"), sub)
	if err != nil {
		cartError(c, err)
		return
	}
	resp.OK(c, off)
}
