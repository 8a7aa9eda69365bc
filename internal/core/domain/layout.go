// internal/core/domain/layout.go
package domain

import "path/filepath"

// Nombres fijos del árbol de salida.
const (
	ReconDirName   = "recon_framework"
	FastDirName    = "fast_approach"
	SlowDirName    = "slow_approach"
	ResultsDirName = "results"
)

// Layout es el árbol <base>/recon_framework/<domain>/ de un target.
type Layout struct {
	Root    string
	Fast    string
	Slow    string
	Results string
}

// NewLayout calcula las rutas sin tocar el filesystem.
func NewLayout(base, domain string) Layout {
	root := filepath.Join(base, ReconDirName, domain)
	return Layout{
		Root:    root,
		Fast:    filepath.Join(root, FastDirName),
		Slow:    filepath.Join(root, SlowDirName),
		Results: filepath.Join(root, ResultsDirName),
	}
}

// Dirs lista los directorios en orden de creación.
func (l Layout) Dirs() []string {
	return []string{l.Root, l.Fast, l.Slow, l.Results}
}

// ResultFile devuelve la ruta del archivo acumulativo del bucket.
func (l Layout) ResultFile(b Bucket) string {
	return filepath.Join(l.Results, b.ResultName())
}

// ResultFiles lista los tres archivos de resultados.
func (l Layout) ResultFiles() []string {
	files := make([]string, 0, len(FastBuckets))
	for _, b := range FastBuckets {
		files = append(files, l.ResultFile(b))
	}
	return files
}
