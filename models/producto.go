package models

import "time"

type Producto struct {
	ID              uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Nombre          string    `gorm:"not null" json:"nombre"`
	Descripcion     string    `json:"descripcion"`
	PrecioBase      float64   `gorm:"not null" json:"precio_base"`
	PrecioMayorista float64   `json:"precio_mayorista"`
	ImagenPrincipal string    `json:"imagen_principal"`
	CategoriaID     *uint     `gorm:"index" json:"categoria_id"`
	StockDisponible int       `gorm:"default:0" json:"stock_disponible"`
	StockMinimo     int       `gorm:"default:5" json:"stock_minimo"`
	Activo          bool      `gorm:"default:true" json:"activo"`
	Destacado       bool      `gorm:"default:false" json:"destacado"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`

	Variantes []VarianteProducto `gorm:"foreignKey:ProductoID" json:"variantes,omitempty"`
}

func (Producto) TableName() string { return "productos" }

type VarianteProducto struct {
	ID              uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductoID      uint    `gorm:"not null;index" json:"producto_id"`
	NombreVariante  string  `gorm:"not null" json:"nombre_variante"`
	PrecioAdicional float64 `gorm:"default:0" json:"precio_adicional"`
	// Stock propio de la variante; se descuenta en paralelo al del producto.
	Stock  int  `gorm:"default:0" json:"stock"`
	Activo bool `gorm:"default:true" json:"activo"`
}

func (VarianteProducto) TableName() string { return "variantes_producto" }
