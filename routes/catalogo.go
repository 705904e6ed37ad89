package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/miguelantonio01/mac-garden/controllers/catalogo"
)

// SetupCatalogoRoutes registra el catálogo público de productos y categorías.
func SetupCatalogoRoutes(api *gin.RouterGroup, db *gorm.DB) {
	productos := api.Group("/productos")
	{
		productos.GET("", catalogo.GetProductosHandler(db))
		productos.GET("/:id", catalogo.GetProductoByIDHandler(db))
		productos.GET("/:id/variantes", catalogo.GetVariantesHandler(db))
	}

	categorias := api.Group("/categorias")
	{
		categorias.GET("", catalogo.GetCategoriasHandler(db))
		categorias.GET("/:id/productos", catalogo.GetProductosPorCategoriaHandler(db))
	}
}
