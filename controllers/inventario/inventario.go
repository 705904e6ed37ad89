package inventario

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/miguelantonio01/mac-garden/ledger"
	"github.com/miguelantonio01/mac-garden/models"
	"github.com/miguelantonio01/mac-garden/pkg/apperrors"
)

type AgregarInventarioRequest struct {
	ProductoID uint   `json:"producto_id"`
	VarianteID *uint  `json:"variante_id"`
	Cantidad   int    `json:"cantidad"`
	Motivo     string `json:"motivo"`
}

// POST /api/inventario/agregar
func AgregarInventarioHandler(db *gorm.DB, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req AgregarInventarioRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Datos de inventario inválidos"})
			return
		}
		if req.ProductoID == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "producto_id es requerido"})
			return
		}
		if req.Motivo == "" {
			req.Motivo = "Ingreso de inventario"
		}

		var movimiento *models.MovimientoInventario
		err := db.Transaction(func(tx *gorm.DB) error {
			var err error
			movimiento, err = ledger.Credit(tx, req.ProductoID, req.VarianteID, req.Cantidad, req.Motivo)
			return err
		})
		if err != nil {
			var appErr *apperrors.AppError
			if errors.As(err, &appErr) {
				c.JSON(appErr.HTTPStatus(), gin.H{"error": appErr.Message})
				return
			}
			log.Error("Error agregando inventario", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error agregando inventario"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"success":    true,
			"movimiento": movimiento,
			"message":    "Inventario agregado correctamente",
		})
	}
}

// GET /api/inventario/movimientos
func GetMovimientosHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		limite := ledger.DefaultHistoryLimit
		if v := c.Query("limite"); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil || n <= 0 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Límite inválido"})
				return
			}
			limite = n
		}

		movimientos, err := ledger.History(db, limite)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error obteniendo movimientos"})
			return
		}
		c.JSON(http.StatusOK, movimientos)
	}
}

// GET /api/inventario/stock-bajo
func GetStockBajoHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		productos, err := ledger.LowStock(db)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error obteniendo stock bajo"})
			return
		}
		c.JSON(http.StatusOK, productos)
	}
}
