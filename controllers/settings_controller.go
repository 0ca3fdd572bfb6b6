package controllers

import (
	"github.com/Naitik2408/pizza-sub001/entity"
	"github.com/Naitik2408/pizza-sub001/pkg/resp"
	"github.com/Naitik2408/pizza-sub001/services"

	"github.com/gin-gonic/gin"
)

// SettingsController lets an admin replace the business rules wholesale.
type SettingsController struct{ Rules *services.BusinessRulesService }

func NewSettingsController(rules *services.BusinessRulesService) *SettingsController {
	return &SettingsController{Rules: rules}
}

// PUT /admin/settings
func (h *SettingsController) Update(c *gin.Context) {
	var req entity.BusinessSettings
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := h.Rules.Save(&req); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, h.Rules.Current())
}
