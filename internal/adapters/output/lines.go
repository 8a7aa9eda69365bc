// internal/adapters/output/lines.go
package output

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// maxLineSize acota líneas muy largas (JSON de ffuf en una sola línea).
const maxLineSize = 64 * 1024 * 1024

// ReadLines lee path y devuelve sus líneas sin el salto final.
// Un archivo inexistente es un error.
func ReadLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return scanLines(f)
}

func scanLines(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, maxLineSize)

	var lines []string
	for scanner.Scan() {
		lines = append(lines, strings.TrimSuffix(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan lines: %w", err)
	}
	return lines, nil
}

// Unique quita duplicados y líneas vacías conservando el primer orden de aparición.
func Unique(lines []string) []string {
	seen := make(map[string]struct{}, len(lines))
	out := make([]string, 0, len(lines))
	for _, l := range lines {
		if l == "" {
			continue
		}
		if _, ok := seen[l]; ok {
			continue
		}
		seen[l] = struct{}{}
		out = append(out, l)
	}
	return out
}

// CountLines cuenta las líneas no vacías de path. Un archivo ausente cuenta 0.
func CountLines(path string) (int, error) {
	lines, err := ReadLines(path)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return 0, err
	}
	n := 0
	for _, l := range lines {
		if l != "" {
			n++
		}
	}
	return n, nil
}

// closeInto cierra c y, si no hubo un error antes, devuelve el del cierre
// en *err. Un archivo escrito que no cierra bien no está completo.
func closeInto(c io.Closer, path string, err *error) {
	if cerr := c.Close(); cerr != nil && *err == nil {
		*err = fmt.Errorf("close %s: %w", path, cerr)
	}
}

// writeLines escribe lines en w, una por línea.
func writeLines(w io.Writer, lines []string) error {
	bw := bufio.NewWriter(w)
	for _, l := range lines {
		if _, err := bw.WriteString(l); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}
