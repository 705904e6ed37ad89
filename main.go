package main

import (
	"fmt"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/miguelantonio01/mac-garden/models"
	"github.com/miguelantonio01/mac-garden/pkg/logger"
	"github.com/miguelantonio01/mac-garden/routes"
)

func main() {
	// Variables de entorno (.env en desarrollo)
	_ = godotenv.Load()

	log := logger.New(os.Getenv("APP_ENV"))
	defer log.Sync()

	db := initDatabase(log)

	if err := db.AutoMigrate(
		&models.Categoria{},
		&models.Producto{},
		&models.VarianteProducto{},
		&models.Usuario{},
		&models.Pedido{},
		&models.DetallePedido{},
		&models.MovimientoInventario{},
	); err != nil {
		log.Fatal("AutoMigrate falló", zap.Error(err))
	}

	if os.Getenv("APP_ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(logger.GinMiddleware(log))

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.SetupRoutes(r, db, log)

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}
	log.Info("🌱 Servidor MAC Garden corriendo", zap.String("port", port))
	if err := r.Run(":" + port); err != nil {
		log.Fatal("No se pudo iniciar el servidor", zap.Error(err))
	}
}

// initDatabase abre la conexión MySQL vía GORM y acota el pool a 10 sesiones
// concurrentes, igual que el límite del sistema original.
func initDatabase(log *zap.Logger) *gorm.DB {
	host := getenv("DB_HOST", "localhost")
	port := getenv("DB_PORT", "3306")
	user := getenv("DB_USER", "root")
	password := os.Getenv("DB_PASSWORD")
	dbname := getenv("DB_NAME", "mac_garden")

	dsn := fmt.Sprintf(
		"%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		user, password, host, port, dbname,
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatal("❌ Error conectando a MySQL", zap.Error(err))
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatal("No se pudo obtener el pool de conexiones", zap.Error(err))
	}
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(time.Hour)

	log.Info("✅ Conectado a MySQL", zap.String("host", host), zap.String("db", dbname))
	return db
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
