package toolcheck

import (
	"fmt"

	"shabnam/internal/platform/ui"
)

// Header son las columnas de la tabla de doctor.
var Header = []string{"", "Tool", "Binary", "Version", "Purpose"}

// Rows convierte los resultados en filas para ui.Presenter.Table.
func Rows(results []Result) [][]string {
	rows := make([][]string, 0, len(results))
	for _, r := range results {
		status := ui.StatusSuccess
		version := r.Version
		switch r.Status {
		case StatusMissing:
			status = ui.StatusError
			version = "missing"
		case StatusCheckFailed:
			status = ui.StatusWarning
			version = "check failed"
		}
		if version == "" {
			version = "-"
		}
		rows = append(rows, []string{status.Symbol(), r.Tool.Name, r.Tool.Binary, version, r.Tool.Purpose})
	}
	return rows
}

// Summary es la línea final del reporte.
func Summary(results []Result) string {
	missing := len(Missing(results))
	if missing == 0 {
		return fmt.Sprintf("All %d tools are available", len(results))
	}
	return fmt.Sprintf("%d of %d tools missing", missing, len(results))
}
