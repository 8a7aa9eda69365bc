// internal/testutil/stubs.go
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// Scripts de reemplazo para las herramientas externas. Cada uno escribe
// resultados deterministas en el archivo indicado por su flag de salida.
const (
	StubFindomain = `#!/bin/sh
out=""
while [ $# -gt 0 ]; do
  case "$1" in
    -u) out="$2"; shift ;;
  esac
  shift
done
printf 'a.example.com\nb.example.com\nshared.example.com\n' > "$out"
echo "findomain: 3 subdomains"
`

	StubSubfinder = `#!/bin/sh
out=""
while [ $# -gt 0 ]; do
  case "$1" in
    -o) out="$2"; shift ;;
  esac
  shift
done
printf 'c.example.com\nshared.example.com\n' > "$out"
`

	StubHttpx = `#!/bin/sh
list=""; codes=""; out=""
while [ $# -gt 0 ]; do
  case "$1" in
    -l) list="$2"; shift ;;
    -mc) codes="$2"; shift ;;
    -o) out="$2"; shift ;;
  esac
  shift
done
[ -f "$list" ] || { echo "no such list: $list" >&2; exit 1; }
case "$codes" in
  200) printf 'https://a.example.com\nhttp://shared.example.com:8080\nhttps://a.example.com\n' > "$out" ;;
  301,302) printf 'https://b.example.com\n' > "$out" ;;
  403) printf 'http://c.example.com\n' > "$out" ;;
  *) : > "$out" ;;
esac
`

	StubAnew = `#!/bin/sh
target="$1"
if [ -z "$target" ]; then
  awk '!seen[$0]++'
  exit 0
fi
touch "$target"
while IFS= read -r line || [ -n "$line" ]; do
  if ! grep -qxF -- "$line" "$target"; then
    printf '%s\n' "$line" >> "$target"
    printf '%s\n' "$line"
  fi
done
`

	StubShosubgo = `#!/bin/sh
out=""
while [ $# -gt 0 ]; do
  case "$1" in
    -o) out="$2"; shift ;;
  esac
  shift
done
printf 'shodan.example.com\nshared.example.com\n' > "$out"
`

	StubGithubSubdomains = `#!/bin/sh
out=""
while [ $# -gt 0 ]; do
  case "$1" in
    -o) out="$2"; shift ;;
  esac
  shift
done
printf 'gh.example.com\nshared.example.com\n' > "$out"
`

	StubFfuf = `#!/bin/sh
out=""
while [ $# -gt 0 ]; do
  case "$1" in
    -o) out="$2"; shift ;;
  esac
  shift
done
printf '{"commandline":"ffuf","results":[{"host":"brute.example.com","status":200},{"host":"a.example.com","status":200}]}' > "$out"
`

	// StubFail simula una herramienta que termina con error.
	StubFail = `#!/bin/sh
echo "simulated failure" >&2
exit 3
`
)

// InstallStub escribe un script ejecutable name en dir.
func InstallStub(t *testing.T, dir, name, script string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(script), 0o755); err != nil {
		t.Fatalf("install stub %s: %v", name, err)
	}
	return path
}

// PrependPath antepone dir al PATH durante el test.
func PrependPath(t *testing.T, dir string) {
	t.Helper()
	t.Setenv("PATH", dir+string(os.PathListSeparator)+os.Getenv("PATH"))
}

// FastToolStubs instala los stubs del enfoque rápido y devuelve su directorio.
func FastToolStubs(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	InstallStub(t, dir, "findomain", StubFindomain)
	InstallStub(t, dir, "subfinder", StubSubfinder)
	InstallStub(t, dir, "httpx-toolkit", StubHttpx)
	InstallStub(t, dir, "anew", StubAnew)
	PrependPath(t, dir)
	return dir
}

// SlowToolStubs instala los stubs del enfoque lento y devuelve su directorio.
func SlowToolStubs(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	InstallStub(t, dir, "shosubgo", StubShosubgo)
	InstallStub(t, dir, "github-subdomains", StubGithubSubdomains)
	InstallStub(t, dir, "httpx-toolkit", StubHttpx)
	InstallStub(t, dir, "ffuf", StubFfuf)
	InstallStub(t, dir, "anew", StubAnew)
	PrependPath(t, dir)
	return dir
}
