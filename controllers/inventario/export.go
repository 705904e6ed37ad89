package inventario

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
	"gorm.io/gorm"

	"github.com/miguelantonio01/mac-garden/ledger"
)

// GET /api/inventario/movimientos/export
// Descarga la bitácora de movimientos como archivo Excel para el admin.
func ExportarMovimientosHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		movimientos, err := ledger.History(db, ledger.DefaultHistoryLimit)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error obteniendo movimientos"})
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Movimientos")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error generando archivo"})
			return
		}

		headers := []string{"ID", "Producto", "VarianteID", "Tipo", "Cantidad", "Motivo", "Fecha"}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		for _, m := range movimientos {
			row := sheet.AddRow()
			row.AddCell().SetValue(m.ID)
			row.AddCell().SetValue(m.Producto.Nombre)
			if m.VarianteID != nil {
				row.AddCell().SetValue(*m.VarianteID)
			} else {
				row.AddCell().SetValue("")
			}
			row.AddCell().SetValue(string(m.TipoMovimiento))
			row.AddCell().SetValue(m.Cantidad)
			row.AddCell().SetValue(m.Motivo)
			row.AddCell().SetValue(m.Fecha.Format("2006-01-02 15:04:05"))
		}

		c.Header("Content-Description", "File Transfer")
		c.Header("Content-Disposition", `attachment; filename="movimientos_inventario.xlsx"`)
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error escribiendo archivo"})
			return
		}
	}
}
