package models

import "time"

type TipoMovimiento string

const (
	MovimientoEntrada TipoMovimiento = "entrada"
	MovimientoSalida  TipoMovimiento = "salida"
)

// MovimientoInventario registra cada cambio de stock. Bitácora de solo
// inserción: nunca se actualiza ni se borra un movimiento.
type MovimientoInventario struct {
	ID             uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductoID     uint           `gorm:"not null;index" json:"producto_id"`
	VarianteID     *uint          `json:"variante_id"`
	TipoMovimiento TipoMovimiento `gorm:"type:VARCHAR(10);not null" json:"tipo_movimiento"`
	Cantidad       int            `gorm:"not null" json:"cantidad"`
	Motivo         string         `json:"motivo"`
	Fecha          time.Time      `gorm:"autoCreateTime;index" json:"fecha"`

	Producto Producto `gorm:"foreignKey:ProductoID" json:"producto,omitempty"`
}

func (MovimientoInventario) TableName() string { return "movimientos_inventario" }
