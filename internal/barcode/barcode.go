// Package barcode deriva el código de barras de un producto a partir de una semilla.
package barcode

const Prefix = "BARCODE-"

// Generate es determinista: la unicidad depende de la semilla
func Generate(seed string) string {
	return Prefix + seed
}
