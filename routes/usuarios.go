package routes

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/miguelantonio01/mac-garden/controllers/pedidos"
	"github.com/miguelantonio01/mac-garden/controllers/usuarios"
)

func SetupUsuarioRoutes(api *gin.RouterGroup, db *gorm.DB, log *zap.Logger) {
	grupo := api.Group("/usuarios")
	{
		grupo.POST("/registro", usuarios.RegistroHandler(db, log))
		grupo.POST("/login", usuarios.LoginHandler(db, log))
		grupo.GET("/:id", usuarios.GetUsuarioHandler(db))
		grupo.GET("/:id/pedidos", pedidos.GetPedidosUsuarioHandler(db))
	}
}
