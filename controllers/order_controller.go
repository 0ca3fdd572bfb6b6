package controllers

import (
	"errors"
	"strconv"

	"github.com/Naitik2408/pizza-sub001/pkg/resp"
	"github.com/Naitik2408/pizza-sub001/services"
	"github.com/Naitik2408/pizza-sub001/utils"

	"github.com/gin-gonic/gin"
)

type OrderController struct{ Svc *services.OrderService }

func NewOrderController(s *services.OrderService) *OrderController { return &OrderController{Svc: s} }

// GET /orders
func (h *OrderController) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	out, err := h.Svc.ListForOwner(utils.CurrentUserID(c), utils.CurrentGuestID(c), limit)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, out)
}

// GET /orders/:id
func (h *OrderController) Detail(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		resp.BadRequest(c, "invalid id")
		return
	}
	o, err := h.Svc.DetailForOwner(utils.CurrentUserID(c), utils.CurrentGuestID(c), uint(id))
	if err != nil {
		if errors.Is(err, services.ErrOrderNotFound) {
			resp.NotFound(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, o)
}
