package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tripagent/internal/catalog"
	"tripagent/internal/models/response_models"
	"tripagent/pkg/utils"
)

type CatalogController struct {
	catalog *catalog.Catalog
}

func NewCatalogController(c *catalog.Catalog) *CatalogController {
	return &CatalogController{catalog: c}
}

func (cc *CatalogController) ListDestinationsHandler(c *gin.Context) {
	utils.RespondSuccess(c, response_models.NewDestinationResponses(cc.catalog), "")
}

func (cc *CatalogController) ListTemplatesHandler(c *gin.Context) {
	utils.RespondSuccess(c, response_models.PromptTemplates, "")
}

func (cc *CatalogController) HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":       "ok",
		"destinations": len(cc.catalog.Cities),
	})
}
