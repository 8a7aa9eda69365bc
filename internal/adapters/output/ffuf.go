// internal/adapters/output/ffuf.go
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
)

// ffufReport es el subconjunto del JSON de ffuf que nos interesa.
type ffufReport struct {
	Results []struct {
		Host string `json:"host"`
	} `json:"results"`
}

// Concat copia inputs uno tras otro en out, byte a byte (como cat).
func Concat(inputs []string, out string) (err error) {
	dst, err := os.OpenFile(out, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, FilePerm)
	if err != nil {
		return fmt.Errorf("create %s: %w", out, err)
	}
	defer closeInto(dst, out, &err)

	for _, in := range inputs {
		src, err := os.Open(in)
		if err != nil {
			return fmt.Errorf("open %s: %w", in, err)
		}
		_, err = io.Copy(dst, src)
		src.Close()
		if err != nil {
			return fmt.Errorf("copy %s: %w", in, err)
		}
	}
	return nil
}

// ExtractHosts decodifica uno o más reportes JSON concatenados y
// devuelve los hosts ordenados y sin duplicados (jq '.results[].host' | sort -u).
// Un reporte sin "results" aporta cero hosts.
func ExtractHosts(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	dec := json.NewDecoder(f)
	var hosts []string
	for {
		var report ffufReport
		err := dec.Decode(&report)
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("decode %s: %w", path, err)
		}
		for _, r := range report.Results {
			hosts = append(hosts, r.Host)
		}
	}

	hosts = Unique(hosts)
	sort.Strings(hosts)
	return hosts, nil
}

// MergeFfufHosts extrae los hosts de report y los fusiona en target.
func MergeFfufHosts(report, target string) ([]string, error) {
	hosts, err := ExtractHosts(report)
	if err != nil {
		return nil, err
	}
	return Merge(target, hosts)
}
