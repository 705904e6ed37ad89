package catalogo

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/miguelantonio01/mac-garden/models"
)

func setupRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Categoria{}, &models.Producto{}, &models.VarianteProducto{}))

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/api/productos", GetProductosHandler(db))
	r.GET("/api/productos/:id", GetProductoByIDHandler(db))
	r.GET("/api/productos/:id/variantes", GetVariantesHandler(db))
	r.GET("/api/categorias", GetCategoriasHandler(db))
	r.GET("/api/categorias/:id/productos", GetProductosPorCategoriaHandler(db))
	return r, db
}

func get(t *testing.T, r *gin.Engine, url string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, url, nil)
	r.ServeHTTP(w, req)
	return w
}

func TestGetProductosDestacadosPrimero(t *testing.T) {
	r, db := setupRouter(t)

	productos := []models.Producto{
		{Nombre: "Zinnia", PrecioBase: 5},
		{Nombre: "Aloe", PrecioBase: 8},
		{Nombre: "Rosa", PrecioBase: 12, Destacado: true},
		{Nombre: "Oculto", PrecioBase: 3},
	}
	for i := range productos {
		require.NoError(t, db.Create(&productos[i]).Error)
	}
	require.NoError(t, db.Model(&productos[3]).Update("activo", false).Error)

	w := get(t, r, "/api/productos")
	require.Equal(t, http.StatusOK, w.Code)

	var lista []models.Producto
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &lista))
	require.Len(t, lista, 3)
	assert.Equal(t, "Rosa", lista[0].Nombre)
	assert.Equal(t, "Aloe", lista[1].Nombre)
	assert.Equal(t, "Zinnia", lista[2].Nombre)
}

func TestGetProductoConVariantesYCategoria(t *testing.T) {
	r, db := setupRouter(t)

	cat := models.Categoria{Nombre: "Plantas de interior"}
	require.NoError(t, db.Create(&cat).Error)
	p := models.Producto{Nombre: "Monstera", PrecioBase: 20, CategoriaID: &cat.ID}
	require.NoError(t, db.Create(&p).Error)
	activa := models.VarianteProducto{ProductoID: p.ID, NombreVariante: "Maceta grande"}
	require.NoError(t, db.Create(&activa).Error)
	retirada := models.VarianteProducto{ProductoID: p.ID, NombreVariante: "Descontinuada"}
	require.NoError(t, db.Create(&retirada).Error)
	require.NoError(t, db.Model(&retirada).Update("activo", false).Error)

	w := get(t, r, fmt.Sprintf("/api/productos/%d", p.ID))
	require.Equal(t, http.StatusOK, w.Code)

	var detalle map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &detalle))
	assert.Equal(t, "Plantas de interior", detalle["categoria_nombre"])
	variantes, ok := detalle["variantes"].([]interface{})
	require.True(t, ok)
	assert.Len(t, variantes, 1)
}

func TestGetProductoInactivoEs404(t *testing.T) {
	r, db := setupRouter(t)

	p := models.Producto{Nombre: "Retirado", PrecioBase: 9}
	require.NoError(t, db.Create(&p).Error)
	require.NoError(t, db.Model(&p).Update("activo", false).Error)

	w := get(t, r, fmt.Sprintf("/api/productos/%d", p.ID))
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "no encontrado")
}

func TestGetCategoriasPorOrden(t *testing.T) {
	r, db := setupRouter(t)

	categorias := []models.Categoria{
		{Nombre: "Herramientas", Orden: 2},
		{Nombre: "Plantas", Orden: 1},
	}
	for i := range categorias {
		require.NoError(t, db.Create(&categorias[i]).Error)
	}

	w := get(t, r, "/api/categorias")
	require.Equal(t, http.StatusOK, w.Code)

	var lista []models.Categoria
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &lista))
	require.Len(t, lista, 2)
	assert.Equal(t, "Plantas", lista[0].Nombre)
}

func TestGetProductosPorCategoria(t *testing.T) {
	r, db := setupRouter(t)

	cat := models.Categoria{Nombre: "Suculentas"}
	require.NoError(t, db.Create(&cat).Error)
	dentro := models.Producto{Nombre: "Echeveria", PrecioBase: 6, CategoriaID: &cat.ID}
	fuera := models.Producto{Nombre: "Ficus", PrecioBase: 25}
	require.NoError(t, db.Create(&dentro).Error)
	require.NoError(t, db.Create(&fuera).Error)

	w := get(t, r, fmt.Sprintf("/api/categorias/%d/productos", cat.ID))
	require.Equal(t, http.StatusOK, w.Code)

	var lista []models.Producto
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &lista))
	require.Len(t, lista, 1)
	assert.Equal(t, "Echeveria", lista[0].Nombre)
}
