package estadisticas

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/miguelantonio01/mac-garden/models"
)

type TopProducto struct {
	ID              uint   `json:"id"`
	Nombre          string `json:"nombre"`
	CantidadVendida int    `json:"cantidad_vendida"`
}

type Dashboard struct {
	TotalPedidos    int64         `json:"total_pedidos"`
	IngresosTotales float64       `json:"ingresos_totales"`
	TopProductos    []TopProducto `json:"top_productos"`
	TotalClientes   int64         `json:"total_clientes"`
	StockTotal      int           `json:"stock_total"`
}

// ObtenerDashboard recalcula los agregados en cada llamada; es una vista de
// admin de baja frecuencia y no se cachea. Los pedidos cancelados no cuentan
// ni para el total ni para los ingresos.
func ObtenerDashboard(db *gorm.DB) (*Dashboard, error) {
	var d Dashboard

	if err := db.Model(&models.Pedido{}).
		Where("estado <> ?", models.EstadoPedidoCancelado).
		Count(&d.TotalPedidos).Error; err != nil {
		return nil, err
	}

	if err := db.Model(&models.Pedido{}).
		Where("estado <> ?", models.EstadoPedidoCancelado).
		Select("COALESCE(SUM(total), 0)").
		Scan(&d.IngresosTotales).Error; err != nil {
		return nil, err
	}

	if err := db.Table("detalles_pedido d").
		Select("p.id, p.nombre, SUM(d.cantidad) AS cantidad_vendida").
		Joins("JOIN pedidos pe ON pe.id = d.pedido_id").
		Joins("JOIN productos p ON p.id = d.producto_id").
		Where("pe.estado <> ?", models.EstadoPedidoCancelado).
		Group("p.id, p.nombre").
		Order("cantidad_vendida DESC").
		Limit(5).
		Scan(&d.TopProductos).Error; err != nil {
		return nil, err
	}

	if err := db.Model(&models.Usuario{}).
		Where("activo = ?", true).
		Count(&d.TotalClientes).Error; err != nil {
		return nil, err
	}

	if err := db.Model(&models.Producto{}).
		Where("activo = ?", true).
		Select("COALESCE(SUM(stock_disponible), 0)").
		Scan(&d.StockTotal).Error; err != nil {
		return nil, err
	}

	return &d, nil
}

// GET /api/estadisticas/dashboard
func DashboardHandler(db *gorm.DB, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		dashboard, err := ObtenerDashboard(db)
		if err != nil {
			log.Error("Error calculando dashboard", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error obteniendo estadísticas"})
			return
		}
		c.JSON(http.StatusOK, dashboard)
	}
}
