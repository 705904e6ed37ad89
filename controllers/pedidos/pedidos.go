package pedidos

import (
	"errors"
	"fmt"
	"math/rand"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/miguelantonio01/mac-garden/ledger"
	"github.com/miguelantonio01/mac-garden/models"
	"github.com/miguelantonio01/mac-garden/pkg/apperrors"
)

// -------- Request Structs --------

type ItemPedido struct {
	ProductoID     uint    `json:"producto_id"`
	VarianteID     *uint   `json:"variante_id"`
	Cantidad       int     `json:"cantidad"`
	PrecioUnitario float64 `json:"precio_unitario"`
}

type CrearPedidoRequest struct {
	UsuarioID        uint         `json:"usuario_id"`
	Items            []ItemPedido `json:"items"`
	DireccionEntrega string       `json:"direccion_entrega"`
	Notas            string       `json:"notas"`
}

type ActualizarEstadoRequest struct {
	Estado string `json:"estado"`
}

type CrearPedidoResult struct {
	PedidoID     uint
	NumeroPedido string
}

// -------- Helpers --------

func mapEstadoPedido(estado string) (models.EstadoPedido, error) {
	switch strings.ToLower(estado) {
	case string(models.EstadoPedidoPendiente):
		return models.EstadoPedidoPendiente, nil
	case string(models.EstadoPedidoProcesando):
		return models.EstadoPedidoProcesando, nil
	case string(models.EstadoPedidoEnviado):
		return models.EstadoPedidoEnviado, nil
	case string(models.EstadoPedidoEntregado):
		return models.EstadoPedidoEntregado, nil
	case string(models.EstadoPedidoCancelado):
		return models.EstadoPedidoCancelado, nil
	default:
		return "", apperrors.NewValidation("Estado de pedido inválido")
	}
}

// generarNumeroPedido produce un token tipo PED-1717171717171-042. La tabla
// tiene índice único sobre numero_pedido; ante una colisión se regenera.
// Variable de paquete para poder forzar colisiones desde los tests.
var generarNumeroPedido = func() string {
	return fmt.Sprintf("PED-%d-%03d", time.Now().UnixMilli(), rand.Intn(1000))
}

func validarPedido(req CrearPedidoRequest) error {
	if req.UsuarioID == 0 {
		return apperrors.NewValidation("usuario_id es requerido")
	}
	if len(req.Items) == 0 {
		return apperrors.NewValidation("El pedido debe tener al menos un item")
	}
	for _, item := range req.Items {
		if item.ProductoID == 0 {
			return apperrors.NewValidation("Cada item debe indicar producto_id")
		}
		if item.Cantidad <= 0 {
			return apperrors.NewValidation("La cantidad debe ser mayor a cero")
		}
		if item.PrecioUnitario < 0 {
			return apperrors.NewValidation("El precio unitario no puede ser negativo")
		}
	}
	return nil
}

// -------- Core Logic --------

// CrearPedido crea el pedido completo en una sola transacción: cabecera,
// detalles y débitos de inventario. Si cualquier paso falla no queda nada
// persistido. El precio unitario viene del carrito del cliente y no se
// recalcula contra el catálogo.
func CrearPedido(db *gorm.DB, req CrearPedidoRequest) (*CrearPedidoResult, error) {
	if err := validarPedido(req); err != nil {
		return nil, err
	}

	var subtotal float64
	for _, item := range req.Items {
		subtotal += item.PrecioUnitario * float64(item.Cantidad)
	}

	var pedido models.Pedido
	err := db.Transaction(func(tx *gorm.DB) error {
		pedido = models.Pedido{
			UsuarioID:        req.UsuarioID,
			NumeroPedido:     generarNumeroPedido(),
			Subtotal:         subtotal,
			Total:            subtotal,
			DireccionEntrega: req.DireccionEntrega,
			Notas:            req.Notas,
			Estado:           models.EstadoPedidoPendiente,
		}

		var err error
		for intento := 0; intento < 3; intento++ {
			err = tx.Create(&pedido).Error
			if err == nil {
				break
			}
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				pedido.ID = 0
				pedido.NumeroPedido = generarNumeroPedido()
				continue
			}
			return err
		}
		if err != nil {
			return err
		}

		for _, item := range req.Items {
			detalle := models.DetallePedido{
				PedidoID:       pedido.ID,
				ProductoID:     item.ProductoID,
				VarianteID:     item.VarianteID,
				Cantidad:       item.Cantidad,
				PrecioUnitario: item.PrecioUnitario,
			}
			if err := tx.Create(&detalle).Error; err != nil {
				return err
			}

			// El ledger es el único que toca los contadores de stock.
			if _, err := ledger.Debit(tx, item.ProductoID, item.VarianteID, item.Cantidad,
				"Venta pedido "+pedido.NumeroPedido); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &CrearPedidoResult{PedidoID: pedido.ID, NumeroPedido: pedido.NumeroPedido}, nil
}

// -------- Handlers --------

// POST /api/pedidos
func CrearPedidoHandler(db *gorm.DB, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CrearPedidoRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Datos de pedido inválidos"})
			return
		}

		resultado, err := CrearPedido(db, req)
		if err != nil {
			var appErr *apperrors.AppError
			if errors.As(err, &appErr) {
				c.JSON(appErr.HTTPStatus(), gin.H{"error": appErr.Message})
				return
			}
			log.Error("Error creando pedido", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error creando pedido"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"success":       true,
			"pedido_id":     resultado.PedidoID,
			"numero_pedido": resultado.NumeroPedido,
			"message":       "Pedido creado correctamente",
		})
	}
}

// GET /api/pedidos/:id
func GetPedidoByIDHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var pedido models.Pedido
		if err := db.
			Preload("Detalles").
			Preload("Detalles.Producto").
			First(&pedido, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Pedido no encontrado"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error obteniendo pedido"})
			return
		}

		c.JSON(http.StatusOK, pedido)
	}
}

// GET /api/usuarios/:id/pedidos
func GetPedidosUsuarioHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		usuarioID := c.Param("id")

		var pedidos []models.Pedido
		if err := db.
			Where("usuario_id = ?", usuarioID).
			Preload("Detalles").
			Preload("Detalles.Producto").
			Order("fecha_pedido DESC").
			Find(&pedidos).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error obteniendo pedidos"})
			return
		}

		c.JSON(http.StatusOK, pedidos)
	}
}

// PUT /api/pedidos/:id/estado
func ActualizarEstadoHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var req ActualizarEstadoRequest
		if err := c.ShouldBindJSON(&req); err != nil || req.Estado == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Estado es requerido"})
			return
		}

		nuevoEstado, err := mapEstadoPedido(req.Estado)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Estado de pedido inválido"})
			return
		}

		var pedido models.Pedido
		if err := db.First(&pedido, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Pedido no encontrado"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error actualizando estado"})
			return
		}

		if err := db.Model(&pedido).Update("estado", nuevoEstado).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error actualizando estado"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Estado actualizado correctamente"})
	}
}
