// Package report arma el reporte de productos faltantes que el personal comparte por WhatsApp
// y su versión PDF.
package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/inventario-restaurante/internal/domain/entity"
	"github.com/jhoicas/inventario-restaurante/internal/domain/inventory"
)

// FormatLowStock genera el texto del reporte para los productos dados, en el orden recibido.
// Es determinista: la fecha y hora salen de now, en la zona horaria que traiga.
func FormatLowStock(products []*entity.Product, now time.Time) string {
	var b strings.Builder
	b.WriteString("📋 *REPORTE DE INVENTARIO - PRODUCTOS FALTANTES*\n\n")

	if len(products) == 0 {
		b.WriteString("✅ Todos los productos tienen stock suficiente\n")
	}
	for _, p := range products {
		fmt.Fprintf(&b, "🔸 *%s*\n", p.Name)
		fmt.Fprintf(&b, "   Categoría: %s\n", p.CategoryName)
		fmt.Fprintf(&b, "   Stock actual: %d %s\n", p.CurrentStock, p.Unit)
		fmt.Fprintf(&b, "   Stock mínimo: %d %s\n", p.MinStock, p.Unit)
		fmt.Fprintf(&b, "   Necesita: %d %s\n\n", inventory.Shortfall(p), p.Unit)
	}

	fmt.Fprintf(&b, "\n📅 Fecha: %s\n", now.Format("02/01/2006"))
	fmt.Fprintf(&b, "🕒 Hora: %s\n", now.Format("15:04:05"))
	return b.String()
}
