package controllers

import (
	"errors"
	"strings"

	"github.com/Naitik2408/pizza-sub001/pkg/resp"
	"github.com/Naitik2408/pizza-sub001/services"
	"github.com/Naitik2408/pizza-sub001/utils"

	"github.com/gin-gonic/gin"
)

type CheckoutController struct {
	Svc  *services.CheckoutService
	Auth *services.AuthService
}

func NewCheckoutController(s *services.CheckoutService, auth *services.AuthService) *CheckoutController {
	return &CheckoutController{Svc: s, Auth: auth}
}

func checkoutError(c *gin.Context, err error) {
	var closed *services.ClosedError
	var mo *services.MinOrderNotMetError
	switch {
	case errors.As(err, &closed):
		resp.UnprocessableWith(c, closed.Error(), gin.H{"reason": closed.Reason})
	case errors.As(err, &mo):
		resp.UnprocessableWith(c, mo.Error(), gin.H{"required": mo.Required, "shortfall": mo.Shortfall})
	case errors.Is(err, services.ErrEmptyCart),
		errors.Is(err, services.ErrNoAddress),
		errors.Is(err, services.ErrContactRequired),
		errors.Is(err, services.ErrInvalidPhone),
		errors.Is(err, services.ErrBadMethod):
		resp.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrBadTransition):
		resp.Conflict(c, err.Error())
	case errors.Is(err, services.ErrPaymentInFlight):
		resp.Conflict(c, err.Error())
	case errors.Is(err, services.ErrAddressNotFound):
		resp.NotFound(c, err.Error())
	default:
		resp.ServerError(c, err)
	}
}

// GET /checkout
func (h *CheckoutController) State(c *gin.Context) {
	key := utils.OwnerKey(c)
	sess := h.Svc.Session(key)
	out := gin.H{"session": sess}
	if w := h.Svc.LastWarning(key); w != "" {
		out["warning"] = w
	}
	resp.OK(c, out)
}

// POST /checkout/address
func (h *CheckoutController) ProceedToAddress(c *gin.Context) {
	key := utils.OwnerKey(c)
	if err := h.Svc.ProceedToAddress(key); err != nil {
		checkoutError(c, err)
		return
	}
	resp.OK(c, h.Svc.Session(key))
}

// POST /checkout/back
func (h *CheckoutController) Back(c *gin.Context) {
	key := utils.OwnerKey(c)
	if err := h.Svc.Back(key); err != nil {
		checkoutError(c, err)
		return
	}
	resp.OK(c, h.Svc.Session(key))
}

// POST /checkout/select-address
func (h *CheckoutController) SelectAddress(c *gin.Context) {
	var body struct {
		AddressID uint `json:"addressId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	key := utils.OwnerKey(c)
	err := h.Svc.SelectAddress(key, utils.CurrentUserID(c), utils.CurrentGuestID(c), body.AddressID)
	if err != nil {
		checkoutError(c, err)
		return
	}
	resp.OK(c, h.Svc.Session(key))
}

// POST /checkout/payment
func (h *CheckoutController) ProceedToPayment(c *gin.Context) {
	key := utils.OwnerKey(c)
	if err := h.Svc.ProceedToPayment(key); err != nil {
		checkoutError(c, err)
		return
	}
	resp.OK(c, h.Svc.Session(key))
}

// POST /checkout/guest-contact
func (h *CheckoutController) GuestContact(c *gin.Context) {
	var body struct {
		Name  string `json:"name" binding:"required"`
		Phone string `json:"phone" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	key := utils.OwnerKey(c)
	if err := h.Svc.SetGuestContact(key, body.Name, body.Phone); err != nil {
		checkoutError(c, err)
		return
	}
	resp.OK(c, h.Svc.Session(key))
}

// POST /checkout/pay
func (h *CheckoutController) Pay(c *gin.Context) {
	var body struct {
		Method string `json:"method" binding:"required,oneof=online cashOnDelivery"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	key := utils.OwnerKey(c)
	uid := utils.CurrentUserID(c)

	// authenticated orders snapshot the account profile as contact info;
	// guest contact comes from the session machine
	var name, phone string
	if uid != 0 {
		if u, err := h.Auth.GetProfile(uid); err == nil {
			name = strings.TrimSpace(u.FirstName + " " + u.LastName)
			phone = u.Phone
		}
	}
	order, err := h.Svc.Pay(c.Request.Context(), key, uid, utils.CurrentGuestID(c), body.Method, name, phone)
	if err != nil {
		checkoutError(c, err)
		return
	}
	out := gin.H{"order": order, "session": h.Svc.Session(key)}
	if w := h.Svc.LastWarning(key); w != "" {
		out["warning"] = w
	}
	resp.Created(c, out)
}

// POST /checkout/complete
func (h *CheckoutController) Complete(c *gin.Context) {
	key := utils.OwnerKey(c)
	if err := h.Svc.Complete(key); err != nil {
		checkoutError(c, err)
		return
	}
	resp.OK(c, h.Svc.Session(key))
}

// POST /checkout/cancel
func (h *CheckoutController) Cancel(c *gin.Context) {
	key := utils.OwnerKey(c)
	h.Svc.Cancel(key)
	resp.OK(c, h.Svc.Session(key))
}
