package routes

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// SetupRoutes es el único punto de entrada que registra todos los grupos de
// la API bajo /api.
func SetupRoutes(r *gin.Engine, db *gorm.DB, log *zap.Logger) {
	api := r.Group("/api")

	SetupCatalogoRoutes(api, db)
	SetupUsuarioRoutes(api, db, log)
	SetupPedidoRoutes(api, db, log)
	SetupInventarioRoutes(api, db, log)
	SetupEstadisticasRoutes(api, db, log)
}
