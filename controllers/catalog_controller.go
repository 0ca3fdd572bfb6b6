package controllers

import (
	"strconv"

	"github.com/Naitik2408/pizza-sub001/pkg/resp"
	"github.com/Naitik2408/pizza-sub001/repository"
	"github.com/Naitik2408/pizza-sub001/services"

	"github.com/gin-gonic/gin"
)

type CatalogController struct {
	Repo  *repository.CatalogRepository
	Rules *services.BusinessRulesService
}

func NewCatalogController(repo *repository.CatalogRepository, rules *services.BusinessRulesService) *CatalogController {
	return &CatalogController{Repo: repo, Rules: rules}
}

// GET /catalog/items
func (h *CatalogController) List(c *gin.Context) {
	items, err := h.Repo.ListItems()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, items)
}

// GET /catalog/items/:id
func (h *CatalogController) Detail(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		resp.BadRequest(c, "invalid id")
		return
	}
	item, err := h.Repo.GetItem(uint(id))
	if err != nil {
		resp.NotFound(c, "item not found")
		return
	}
	resp.OK(c, item)
}

// GET /catalog/settings
func (h *CatalogController) Settings(c *gin.Context) {
	resp.OK(c, h.Rules.Current())
}
