package routes

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/miguelantonio01/mac-garden/controllers/estadisticas"
	"github.com/miguelantonio01/mac-garden/controllers/inventario"
)

func SetupInventarioRoutes(api *gin.RouterGroup, db *gorm.DB, log *zap.Logger) {
	grupo := api.Group("/inventario")
	{
		grupo.POST("/agregar", inventario.AgregarInventarioHandler(db, log))
		grupo.GET("/movimientos", inventario.GetMovimientosHandler(db))
		grupo.GET("/movimientos/export", inventario.ExportarMovimientosHandler(db))
		grupo.GET("/stock-bajo", inventario.GetStockBajoHandler(db))
	}
}

func SetupEstadisticasRoutes(api *gin.RouterGroup, db *gorm.DB, log *zap.Logger) {
	api.GET("/estadisticas/dashboard", estadisticas.DashboardHandler(db, log))
}
