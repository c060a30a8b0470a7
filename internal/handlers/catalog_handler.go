package handlers

import (
	"github.com/gin-gonic/gin"

	domain "github.com/StudioBellaCilios/studio-scheduler/internal/domain/booking"
	"github.com/StudioBellaCilios/studio-scheduler/internal/httpresp"
)

// CatalogHandler expõe a tabela de serviços para o seletor do widget.
type CatalogHandler struct {
	catalog *domain.Catalog
}

func NewCatalogHandler(catalog *domain.Catalog) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

func (h *CatalogHandler) ListServices(c *gin.Context) {
	httpresp.List(c, h.catalog.List())
}
