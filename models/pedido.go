package models

import "time"

type EstadoPedido string

const (
	// Flujo normal de un pedido
	EstadoPedidoPendiente  EstadoPedido = "pendiente"  // Pedido creado, pendiente de confirmación
	EstadoPedidoProcesando EstadoPedido = "procesando" // En preparación
	EstadoPedidoEnviado    EstadoPedido = "enviado"    // Despachado al cliente
	EstadoPedidoEntregado  EstadoPedido = "entregado"  // Recibido por el cliente
	EstadoPedidoCancelado  EstadoPedido = "cancelado"  // Cancelado antes de entrega
)

type Pedido struct {
	ID        uint `gorm:"primaryKey;autoIncrement" json:"id"`
	UsuarioID uint `gorm:"not null;index" json:"usuario_id"`
	// Número legible tipo PED-<timestamp>-<n>; índice único en la tabla.
	NumeroPedido     string       `gorm:"uniqueIndex;not null" json:"numero_pedido"`
	Subtotal         float64      `gorm:"not null" json:"subtotal"`
	Total            float64      `gorm:"not null" json:"total"`
	DireccionEntrega string       `json:"direccion_entrega"`
	Notas            string       `json:"notas"`
	Estado           EstadoPedido `gorm:"type:VARCHAR(20);default:'pendiente'" json:"estado"`
	FechaPedido      time.Time    `gorm:"autoCreateTime" json:"fecha_pedido"`

	Usuario  Usuario         `gorm:"foreignKey:UsuarioID" json:"usuario,omitempty"`
	Detalles []DetallePedido `gorm:"foreignKey:PedidoID;constraint:OnDelete:CASCADE" json:"detalles,omitempty"`
}

func (Pedido) TableName() string { return "pedidos" }

type DetallePedido struct {
	ID         uint  `gorm:"primaryKey;autoIncrement" json:"id"`
	PedidoID   uint  `gorm:"not null;index" json:"pedido_id"`
	ProductoID uint  `gorm:"not null" json:"producto_id"`
	VarianteID *uint `json:"variante_id"`
	Cantidad   int   `gorm:"not null" json:"cantidad"`
	// Precio al momento de la venta; no se recalcula si el producto cambia.
	PrecioUnitario float64 `gorm:"not null" json:"precio_unitario"`

	Producto Producto `gorm:"foreignKey:ProductoID" json:"producto,omitempty"`
}

func (DetallePedido) TableName() string { return "detalles_pedido" }
