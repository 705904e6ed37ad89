// Package ledger es el único mutador de los contadores de stock. Todo
// movimiento de inventario pasa por aquí: se ajustan los contadores y se
// inserta el registro en movimientos_inventario dentro de la misma sesión.
package ledger

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/miguelantonio01/mac-garden/models"
	"github.com/miguelantonio01/mac-garden/pkg/apperrors"
)

const DefaultHistoryLimit = 100

// Debit descuenta stock del producto (y de la variante, si viene) y registra
// un movimiento de salida. El descuento es un UPDATE condicional: si el stock
// no alcanza, cero filas afectadas y se devuelve InsufficientStock sin tocar
// nada. Debe llamarse dentro de la transacción del pedido.
func Debit(tx *gorm.DB, productoID uint, varianteID *uint, cantidad int, motivo string) (*models.MovimientoInventario, error) {
	if cantidad <= 0 {
		return nil, apperrors.NewValidation("La cantidad debe ser mayor a cero")
	}

	res := tx.Model(&models.Producto{}).
		Where("id = ? AND stock_disponible >= ?", productoID, cantidad).
		UpdateColumn("stock_disponible", gorm.Expr("stock_disponible - ?", cantidad))
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, apperrors.NewInsufficientStock(
			fmt.Sprintf("Stock insuficiente para el producto %d", productoID))
	}

	if varianteID != nil {
		// La variante debe pertenecer al producto; un par cruzado no toca nada.
		res := tx.Model(&models.VarianteProducto{}).
			Where("id = ? AND producto_id = ? AND stock >= ?", *varianteID, productoID, cantidad).
			UpdateColumn("stock", gorm.Expr("stock - ?", cantidad))
		if res.Error != nil {
			return nil, res.Error
		}
		if res.RowsAffected == 0 {
			return nil, apperrors.NewInsufficientStock(
				fmt.Sprintf("Stock insuficiente para la variante %d", *varianteID))
		}
	}

	mov := models.MovimientoInventario{
		ProductoID:     productoID,
		VarianteID:     varianteID,
		TipoMovimiento: models.MovimientoSalida,
		Cantidad:       cantidad,
		Motivo:         motivo,
	}
	if err := tx.Create(&mov).Error; err != nil {
		return nil, err
	}
	return &mov, nil
}

// Credit incrementa stock (sin tope) y registra un movimiento de entrada.
func Credit(tx *gorm.DB, productoID uint, varianteID *uint, cantidad int, motivo string) (*models.MovimientoInventario, error) {
	if cantidad <= 0 {
		return nil, apperrors.NewValidation("La cantidad debe ser mayor a cero")
	}

	res := tx.Model(&models.Producto{}).
		Where("id = ?", productoID).
		UpdateColumn("stock_disponible", gorm.Expr("stock_disponible + ?", cantidad))
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, apperrors.NewNotFound(
			fmt.Sprintf("Producto %d no encontrado", productoID))
	}

	if varianteID != nil {
		res := tx.Model(&models.VarianteProducto{}).
			Where("id = ? AND producto_id = ?", *varianteID, productoID).
			UpdateColumn("stock", gorm.Expr("stock + ?", cantidad))
		if res.Error != nil {
			return nil, res.Error
		}
		if res.RowsAffected == 0 {
			return nil, apperrors.NewNotFound(
				fmt.Sprintf("Variante %d no encontrada", *varianteID))
		}
	}

	mov := models.MovimientoInventario{
		ProductoID:     productoID,
		VarianteID:     varianteID,
		TipoMovimiento: models.MovimientoEntrada,
		Cantidad:       cantidad,
		Motivo:         motivo,
	}
	if err := tx.Create(&mov).Error; err != nil {
		return nil, err
	}
	return &mov, nil
}

// History devuelve los movimientos más recientes primero.
func History(db *gorm.DB, limit int) ([]models.MovimientoInventario, error) {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	var movimientos []models.MovimientoInventario
	if err := db.
		Preload("Producto").
		Order("fecha DESC, id DESC").
		Limit(limit).
		Find(&movimientos).Error; err != nil {
		return nil, err
	}
	return movimientos, nil
}

// LowStock devuelve los productos activos cuyo stock disponible está en o
// por debajo de su mínimo, de menor a mayor stock.
func LowStock(db *gorm.DB) ([]models.Producto, error) {
	var productos []models.Producto
	if err := db.
		Where("activo = ? AND stock_disponible <= stock_minimo", true).
		Order("stock_disponible ASC").
		Find(&productos).Error; err != nil {
		return nil, err
	}
	return productos, nil
}
