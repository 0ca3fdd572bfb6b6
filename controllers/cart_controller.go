package controllers

import (
	"errors"

	"github.com/Naitik2408/pizza-sub001/pkg/resp"
	"github.com/Naitik2408/pizza-sub001/services"
	"github.com/Naitik2408/pizza-sub001/utils"

	"github.com/gin-gonic/gin"
)

type CartController struct{ Svc *services.CartService }

func NewCartController(s *services.CartService) *CartController { return &CartController{Svc: s} }

// cartError maps the engine's structured errors onto HTTP statuses.
func cartError(c *gin.Context, err error) {
	var rv *services.RuleViolation
	var mo *services.MinOrderNotMetError
	switch {
	case errors.As(err, &rv):
		resp.UnprocessableWith(c, rv.Message, gin.H{"groupId": rv.GroupID})
	case errors.As(err, &mo):
		resp.UnprocessableWith(c, mo.Error(), gin.H{"required": mo.Required, "shortfall": mo.Shortfall})
	case errors.Is(err, services.ErrItemNotFound),
		errors.Is(err, services.ErrLineNotFound),
		errors.Is(err, services.ErrOfferNotFound):
		resp.NotFound(c, err.Error())
	case errors.Is(err, services.ErrItemUnavailable),
		errors.Is(err, services.ErrOfferInactive),
		errors.Is(err, services.ErrBadAddOn):
		resp.BadRequest(c, err.Error())
	default:
		resp.ServerError(c, err)
	}
}

// GET /cart
func (h *CartController) Get(c *gin.Context) {
	key := utils.OwnerKey(c)
	resp.OK(c, h.Svc.Get(key))
}

// POST /cart/items
func (h *CartController) Add(c *gin.Context) {
	var req services.AddToCartIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	totals, err := h.Svc.Add(utils.OwnerKey(c), &req)
	if err != nil {
		cartError(c, err)
		return
	}
	resp.Created(c, totals)
}

// PATCH /cart/items/qty
func (h *CartController) UpdateQty(c *gin.Context) {
	var body struct {
		LineID uint `json:"lineId" binding:"required"`
		Qty    int  `json:"qty"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	totals, err := h.Svc.UpdateQty(utils.OwnerKey(c), body.LineID, body.Qty)
	if err != nil {
		cartError(c, err)
		return
	}
	resp.OK(c, totals)
}

// PATCH /cart/items/size
func (h *CartController) ChangeSize(c *gin.Context) {
	var body struct {
		LineID uint   `json:"lineId" binding:"required"`
		Size   string `json:"size" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	totals, err := h.Svc.ChangeSize(utils.OwnerKey(c), body.LineID, body.Size)
	if err != nil {
		cartError(c, err)
		return
	}
	resp.OK(c, totals)
}

// DELETE /cart/items
func (h *CartController) Remove(c *gin.Context) {
	var body struct {
		LineID uint `json:"lineId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	totals, err := h.Svc.Remove(utils.OwnerKey(c), body.LineID)
	if err != nil {
		cartError(c, err)
		return
	}
	resp.OK(c, totals)
}

// DELETE /cart
func (h *CartController) Clear(c *gin.Context) {
	resp.OK(c, h.Svc.Clear(utils.OwnerKey(c)))
}

// POST /cart/offer
func (h *CartController) ApplyOffer(c *gin.Context) {
	var body struct {
		Code string `json:"code" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	totals, err := h.Svc.ApplyOffer(utils.OwnerKey(c), body.Code)
	if err != nil {
		cartError(c, err)
		return
	}
	resp.OK(c, totals)
}

// DELETE /cart/offer
func (h *CartController) RemoveOffer(c *gin.Context) {
	resp.OK(c, h.Svc.RemoveOffer(utils.OwnerKey(c)))
}
