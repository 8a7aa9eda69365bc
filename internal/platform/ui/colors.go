// internal/platform/ui/colors.go
package ui

import "github.com/pterm/pterm"

// Estilos de la consola. Son los colores brillantes ANSI (9x) que
// usa la herramienta desde siempre.
var (
	// StyleStart - inicio de paso
	StyleStart = pterm.NewStyle(pterm.FgLightBlue)

	// StyleSuccess - paso completado, cierre
	StyleSuccess = pterm.NewStyle(pterm.FgLightGreen)

	// StyleWarning - enfoque elegido, advertencias
	StyleWarning = pterm.NewStyle(pterm.FgLightYellow)

	// StyleError - errores fatales
	StyleError = pterm.NewStyle(pterm.FgLightRed, pterm.Bold)

	// StyleBanner - encabezado y línea final
	StyleBanner = pterm.NewStyle(pterm.FgLightGreen, pterm.Bold)

	// StyleSecondary - texto secundario (preview, resumen)
	StyleSecondary = pterm.NewStyle(pterm.FgGray)
)

// DisableColor desactiva los colores de pterm para todo el proceso.
func DisableColor() {
	pterm.DisableColor()
}
