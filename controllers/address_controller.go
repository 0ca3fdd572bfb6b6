package controllers

import (
	"errors"
	"strconv"

	"github.com/Naitik2408/pizza-sub001/pkg/resp"
	"github.com/Naitik2408/pizza-sub001/services"
	"github.com/Naitik2408/pizza-sub001/utils"

	"github.com/gin-gonic/gin"
)

type AddressController struct{ Svc *services.AddressService }

func NewAddressController(s *services.AddressService) *AddressController {
	return &AddressController{Svc: s}
}

func pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		resp.BadRequest(c, "invalid id")
		return 0, false
	}
	return uint(id), true
}

// GET /addresses
func (h *AddressController) List(c *gin.Context) {
	out, err := h.Svc.List(utils.CurrentUserID(c), utils.CurrentGuestID(c))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, out)
}

// POST /addresses
func (h *AddressController) Create(c *gin.Context) {
	var req services.AddressIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	a, err := h.Svc.Create(utils.CurrentUserID(c), utils.CurrentGuestID(c), &req)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, a)
}

// PUT /addresses/:id
func (h *AddressController) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req services.AddressIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	a, err := h.Svc.Update(id, utils.CurrentUserID(c), utils.CurrentGuestID(c), &req)
	if err != nil {
		if errors.Is(err, services.ErrAddressNotFound) {
			resp.NotFound(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, a)
}

// DELETE /addresses/:id
func (h *AddressController) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.Svc.Delete(id, utils.CurrentUserID(c), utils.CurrentGuestID(c)); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": id})
}
