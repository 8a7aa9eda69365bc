// internal/adapters/output/ffuf_test.go
package output

import (
	"os"
	"path/filepath"
	"testing"

	"shabnam/internal/testutil"
)

func TestConcat(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "list1.json")
	b := filepath.Join(dir, "list2.json")
	out := filepath.Join(dir, "combined.json")
	testutil.WriteFile(t, a, `{"results":[]}`)
	testutil.WriteFile(t, b, `{"results":[{"host":"x.example.com"}]}`+"\n")

	testutil.AssertNoError(t, Concat([]string{a, b}, out), "Concat")

	data, _ := os.ReadFile(out)
	testutil.AssertEqual(t, string(data), `{"results":[]}{"results":[{"host":"x.example.com"}]}`+"\n", "byte concat")

	err := Concat([]string{filepath.Join(dir, "missing.json")}, out)
	testutil.AssertError(t, err, "missing input")
}

func TestExtractHosts(t *testing.T) {
	path := filepath.Join(t.TempDir(), "combined.json")
	testutil.WriteFile(t, path,
		`{"commandline":"ffuf","results":[{"host":"www.example.com","status":200},{"host":"api.example.com"}]}`+
			`{"results":[{"host":"api.example.com"},{"host":"dev.example.com"}]}`+"\n"+
			`{"commandline":"ffuf","results":null}`)

	hosts, err := ExtractHosts(path)
	testutil.AssertNoError(t, err, "ExtractHosts")
	testutil.AssertLines(t, hosts, []string{"api.example.com", "dev.example.com", "www.example.com"}, "sorted unique hosts")
}

func TestExtractHosts_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "combined.json")
	testutil.WriteFile(t, path, `{"results":[{"host":`)

	_, err := ExtractHosts(path)
	testutil.AssertError(t, err, "truncated JSON")
}

func TestMergeFfufHosts(t *testing.T) {
	dir := t.TempDir()
	report := filepath.Join(dir, "combined.json")
	target := filepath.Join(dir, "alive_subs.txt")
	testutil.WriteFile(t, report, `{"results":[{"host":"b.example.com"},{"host":"a.example.com"}]}`)
	testutil.WriteLines(t, target, "a.example.com")

	added, err := MergeFfufHosts(report, target)
	testutil.AssertNoError(t, err, "MergeFfufHosts")
	testutil.AssertLines(t, added, []string{"b.example.com"}, "added")
	testutil.AssertLines(t, testutil.ReadLines(t, target), []string{"a.example.com", "b.example.com"}, "target")
}
