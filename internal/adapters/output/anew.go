// internal/adapters/output/anew.go
package output

import (
	"fmt"
	"os"
)

// FilePerm se aplica a los archivos que crea este paquete.
const FilePerm = 0o644

// Merge agrega a target solo las líneas que aún no contiene y devuelve
// las agregadas, en orden. El contenido previo no se modifica.
// Es la semántica de "anew <target>".
func Merge(target string, lines []string) (added []string, err error) {
	existing := map[string]struct{}{}

	current, err := ReadLines(target)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read %s: %w", target, err)
	}
	for _, l := range current {
		existing[l] = struct{}{}
	}

	for _, l := range Unique(lines) {
		if _, ok := existing[l]; ok {
			continue
		}
		existing[l] = struct{}{}
		added = append(added, l)
	}

	f, err := os.OpenFile(target, os.O_CREATE|os.O_WRONLY|os.O_APPEND, FilePerm)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", target, err)
	}
	defer closeInto(f, target, &err)

	// un archivo sin salto final no debe pegar la primera línea nueva
	if len(added) > 0 && !endsWithNewline(target) {
		if _, err := f.WriteString("\n"); err != nil {
			return nil, fmt.Errorf("write %s: %w", target, err)
		}
	}
	if err := writeLines(f, added); err != nil {
		return nil, fmt.Errorf("write %s: %w", target, err)
	}
	return added, nil
}

// Combine concatena inputs, deduplica y sobrescribe out.
// Es la semántica de "cat a b | anew > out".
func Combine(inputs []string, out string) (unique []string, err error) {
	var all []string
	for _, in := range inputs {
		lines, err := ReadLines(in)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", in, err)
		}
		all = append(all, lines...)
	}

	unique = Unique(all)

	f, err := os.OpenFile(out, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, FilePerm)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", out, err)
	}
	defer closeInto(f, out, &err)

	if err := writeLines(f, unique); err != nil {
		return nil, fmt.Errorf("write %s: %w", out, err)
	}
	return unique, nil
}

func endsWithNewline(path string) bool {
	f, err := os.Open(path)
	if err != nil {
		return true
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil || info.Size() == 0 {
		return true
	}
	b := make([]byte, 1)
	if _, err := f.ReadAt(b, info.Size()-1); err != nil {
		return true
	}
	return b[0] == '\n'
}
