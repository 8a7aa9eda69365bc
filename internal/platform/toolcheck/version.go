package toolcheck

import (
	"fmt"
	"strings"
)

// ExtractVersion intenta sacar un número de versión de la salida de una herramienta.
// Prefiere las líneas que mencionan "version"; si no hay, busca en todo el texto.
func ExtractVersion(output string) string {
	lines := strings.Split(output, "\n")
	for _, line := range lines {
		if strings.Contains(strings.ToLower(line), "version") {
			if v := firstVersion(line); v != "" {
				return v
			}
		}
	}
	for _, line := range lines {
		if v := firstVersion(line); v != "" {
			return v
		}
	}
	return ""
}

func firstVersion(line string) string {
	for _, part := range strings.Fields(line) {
		clean := cleanVersion(part)
		if isValidVersion(clean) {
			return clean
		}
	}
	return ""
}

// cleanVersion normaliza tokens como "v1.2.3,", "jq-1.7.1" o "2.1.0-dev".
func cleanVersion(version string) string {
	version = strings.Trim(strings.TrimSpace(version), ",;:()")
	if before, after, ok := strings.Cut(version, "-"); ok {
		if strings.Contains(before, ".") {
			version = before
		} else {
			version = after
		}
	}
	version = strings.TrimPrefix(version, "v")
	return strings.TrimPrefix(version, "V")
}

// isValidVersion acepta "N.N" o "N.N.N..." numéricos.
func isValidVersion(v string) bool {
	parts := strings.Split(v, ".")
	if len(parts) < 2 {
		return false
	}
	for _, part := range parts {
		var num int
		if _, err := fmt.Sscanf(part, "%d", &num); err != nil {
			return false
		}
		if fmt.Sprint(num) != part {
			return false
		}
	}
	return true
}
