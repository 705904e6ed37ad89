package routes

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/miguelantonio01/mac-garden/controllers/pedidos"
)

func SetupPedidoRoutes(api *gin.RouterGroup, db *gorm.DB, log *zap.Logger) {
	grupo := api.Group("/pedidos")
	{
		// Crear un pedido nuevo (cabecera + detalles + débitos de stock)
		grupo.POST("", pedidos.CrearPedidoHandler(db, log))

		// Pedido individual con sus detalles
		grupo.GET("/:id", pedidos.GetPedidoByIDHandler(db))

		// Cambiar estado (pendiente, procesando, enviado, entregado, cancelado)
		grupo.PUT("/:id/estado", pedidos.ActualizarEstadoHandler(db))
	}
}
