package models

type Categoria struct {
	ID     uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Nombre string `gorm:"unique;not null" json:"nombre"`
	Orden  int    `gorm:"default:0" json:"orden"`
	Activo bool   `gorm:"default:true" json:"activo"`

	Productos []Producto `gorm:"foreignKey:CategoriaID" json:"productos,omitempty"`
}

func (Categoria) TableName() string { return "categorias" }
