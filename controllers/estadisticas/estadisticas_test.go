package estadisticas

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/miguelantonio01/mac-garden/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.Usuario{},
		&models.Producto{},
		&models.VarianteProducto{},
		&models.Pedido{},
		&models.DetallePedido{},
		&models.MovimientoInventario{},
	))
	return db
}

func TestDashboardExcluyeCancelados(t *testing.T) {
	db := setupTestDB(t)

	u := models.Usuario{Nombre: "Ana", Email: "ana@macgarden.test", Password: "x"}
	require.NoError(t, db.Create(&u).Error)

	p1 := models.Producto{Nombre: "Monstera", PrecioBase: 10, StockDisponible: 7}
	p2 := models.Producto{Nombre: "Ficus", PrecioBase: 30, StockDisponible: 3}
	require.NoError(t, db.Create(&p1).Error)
	require.NoError(t, db.Create(&p2).Error)

	activo := models.Pedido{
		UsuarioID: u.ID, NumeroPedido: "PED-1-001", Subtotal: 50, Total: 50,
		Estado: models.EstadoPedidoPendiente,
		Detalles: []models.DetallePedido{
			{ProductoID: p1.ID, Cantidad: 2, PrecioUnitario: 10},
			{ProductoID: p2.ID, Cantidad: 1, PrecioUnitario: 30},
		},
	}
	cancelado := models.Pedido{
		UsuarioID: u.ID, NumeroPedido: "PED-1-002", Subtotal: 100, Total: 100,
		Estado: models.EstadoPedidoCancelado,
		Detalles: []models.DetallePedido{
			{ProductoID: p2.ID, Cantidad: 10, PrecioUnitario: 10},
		},
	}
	require.NoError(t, db.Create(&activo).Error)
	require.NoError(t, db.Create(&cancelado).Error)

	d, err := ObtenerDashboard(db)
	require.NoError(t, err)

	assert.Equal(t, int64(1), d.TotalPedidos)
	assert.Equal(t, 50.0, d.IngresosTotales)
	assert.Equal(t, int64(1), d.TotalClientes)
	assert.Equal(t, 10, d.StockTotal)

	// El cancelado vendió 10 unidades de Ficus pero no cuenta: gana Monstera.
	require.NotEmpty(t, d.TopProductos)
	assert.Equal(t, "Monstera", d.TopProductos[0].Nombre)
	assert.Equal(t, 2, d.TopProductos[0].CantidadVendida)
}

func TestDashboardVacio(t *testing.T) {
	db := setupTestDB(t)

	d, err := ObtenerDashboard(db)
	require.NoError(t, err)
	assert.Zero(t, d.TotalPedidos)
	assert.Zero(t, d.IngresosTotales)
	assert.Zero(t, d.TotalClientes)
	assert.Zero(t, d.StockTotal)
	assert.Empty(t, d.TopProductos)
}
