package models

import "time"

type TipoCliente string

const (
	TipoClienteMinorista TipoCliente = "minorista"
	TipoClienteMayorista TipoCliente = "mayorista"
)

type Usuario struct {
	ID       uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Nombre   string `gorm:"not null" json:"nombre"`
	Email    string `gorm:"unique;not null" json:"email"`
	Telefono string `json:"telefono"`
	// Hash bcrypt; nunca se serializa hacia el cliente.
	Password      string      `gorm:"not null" json:"-"`
	Direccion     string      `json:"direccion"`
	Ciudad        string      `json:"ciudad"`
	TipoCliente   TipoCliente `gorm:"type:VARCHAR(20);default:'minorista'" json:"tipo_cliente"`
	Activo        bool        `gorm:"default:true" json:"activo"`
	FechaRegistro time.Time   `gorm:"autoCreateTime" json:"fecha_registro"`

	Pedidos []Pedido `gorm:"foreignKey:UsuarioID" json:"pedidos,omitempty"`
}

func (Usuario) TableName() string { return "usuarios" }
