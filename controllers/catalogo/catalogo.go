package catalogo

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/miguelantonio01/mac-garden/models"
)

// ProductoDetalle agrega el nombre de la categoría al producto, como lo
// espera la página de detalle.
type ProductoDetalle struct {
	models.Producto
	CategoriaNombre string `json:"categoria_nombre,omitempty"`
}

// GET /api/productos
func GetProductosHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var productos []models.Producto
		if err := db.
			Where("activo = ?", true).
			Order("destacado DESC, nombre ASC").
			Find(&productos).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error obteniendo productos"})
			return
		}
		c.JSON(http.StatusOK, productos)
	}
}

// GET /api/productos/:id
func GetProductoByIDHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var producto models.Producto
		if err := db.
			Preload("Variantes", "activo = ?", true).
			First(&producto, "id = ? AND activo = ?", id, true).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Producto no encontrado"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error obteniendo producto"})
			return
		}

		detalle := ProductoDetalle{Producto: producto}
		if producto.CategoriaID != nil {
			var categoria models.Categoria
			if err := db.First(&categoria, *producto.CategoriaID).Error; err == nil {
				detalle.CategoriaNombre = categoria.Nombre
			}
		}

		c.JSON(http.StatusOK, detalle)
	}
}

// GET /api/productos/:id/variantes
func GetVariantesHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		productoID := c.Param("id")

		var variantes []models.VarianteProducto
		if err := db.
			Where("producto_id = ? AND activo = ?", productoID, true).
			Find(&variantes).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error obteniendo variantes"})
			return
		}
		c.JSON(http.StatusOK, variantes)
	}
}

// GET /api/categorias
func GetCategoriasHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var categorias []models.Categoria
		if err := db.
			Where("activo = ?", true).
			Order("orden ASC, nombre ASC").
			Find(&categorias).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error obteniendo categorías"})
			return
		}
		c.JSON(http.StatusOK, categorias)
	}
}

// GET /api/categorias/:id/productos
func GetProductosPorCategoriaHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		categoriaID := c.Param("id")

		var productos []models.Producto
		if err := db.
			Where("categoria_id = ? AND activo = ?", categoriaID, true).
			Order("destacado DESC, nombre ASC").
			Find(&productos).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error obteniendo productos"})
			return
		}
		c.JSON(http.StatusOK, productos)
	}
}
