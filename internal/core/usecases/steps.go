// internal/core/usecases/steps.go
package usecases

import (
	"context"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"shabnam/internal/adapters/output"
	"shabnam/internal/core/domain"
)

// Settings parametriza los comandos de ambos enfoques.
type Settings struct {
	Tools           domain.ToolSet
	Ports           string
	RandomAgent     bool
	Wordlists       []string
	BruteMatchCodes string
	MergeMode       domain.MergeMode
}

// DefaultSettings son los puertos, wordlists y códigos de siempre.
func DefaultSettings() Settings {
	return Settings{
		Tools:           domain.DefaultToolSet(),
		Ports:           domain.DefaultPorts,
		RandomAgent:     true,
		Wordlists:       domain.DefaultWordlists(),
		BruteMatchCodes: domain.DefaultMatchCodes,
		MergeMode:       domain.MergeExternal,
	}
}

func (s Settings) native() bool {
	return s.MergeMode == domain.MergeNative
}

// Nombres de los archivos intermedios.
const (
	findomainFile = "findomain_results.txt"
	subfinderFile = "subfinder_results.txt"
	shodanFile    = "shodan_subs.txt"
	githubFile    = "github_subs.txt"
	allSubsFile   = "all_subs.txt"
	combinedFile  = "combined.json"
)

// BuildSteps elige el pipeline del enfoque del target.
func BuildSteps(target domain.Target, layout domain.Layout, creds domain.Credentials, s Settings) []domain.Step {
	if target.Approach == domain.ApproachSlow {
		return SlowSteps(target, layout, creds, s)
	}
	return FastSteps(target, layout, s)
}

// FastSteps: findomain, subfinder, combinación, tres pases de httpx y
// el merge de cada bucket en results/.
func FastSteps(target domain.Target, layout domain.Layout, s Settings) []domain.Step {
	dir := layout.Fast
	d := target.Domain
	findomainOut := filepath.Join(dir, findomainFile)
	subfinderOut := filepath.Join(dir, subfinderFile)
	allSubs := filepath.Join(dir, allSubsFile)

	steps := []domain.Step{
		{
			Name:        "findomain",
			Description: "findomain scan",
			Dir:         layout.Root,
			Command:     join(quote(s.Tools.Findomain), "-t", d, "-u", quote(findomainOut)),
			Outputs:     []string{findomainOut},
		},
		{
			Name:        "subfinder",
			Description: "subfinder scan",
			Dir:         layout.Root,
			Command:     join(quote(s.Tools.Subfinder), "-d", d, "-o", quote(subfinderOut)),
			Outputs:     []string{subfinderOut},
		},
		combineStep(dir, []string{findomainOut, subfinderOut}, allSubs, s),
	}

	for _, b := range domain.FastBuckets {
		steps = append(steps, probeStep(b, dir, allSubs, s))
	}
	for _, b := range domain.FastBuckets {
		steps = append(steps, appendStep(b, dir, layout.ResultFile(b), s))
	}
	return steps
}

// SlowSteps: shosubgo, github-subdomains, combinación, httpx alive, merge,
// un ffuf por wordlist, concatenación y extracción de hosts.
// Las credenciales quedan en Redact de los pasos que las usan.
func SlowSteps(target domain.Target, layout domain.Layout, creds domain.Credentials, s Settings) []domain.Step {
	dir := layout.Slow
	d := target.Domain
	shodanOut := filepath.Join(dir, shodanFile)
	githubOut := filepath.Join(dir, githubFile)
	allSubs := filepath.Join(dir, allSubsFile)
	alive := layout.ResultFile(domain.BucketAlive)

	steps := []domain.Step{
		{
			Name:        "shosubgo",
			Description: "shosubgo (Shodan subdomains)",
			Dir:         layout.Root,
			Command:     join(quote(s.Tools.Shosubgo), "-d", d, "-s", quote(creds.ShodanKey), "-o", quote(shodanOut)),
			Outputs:     []string{shodanOut},
			Redact:      creds.Secrets(),
		},
		{
			Name:        "github-subdomains",
			Description: "github-subdomains scan",
			Dir:         layout.Root,
			Command:     join(quote(s.Tools.GithubSubdomains), "-d", d, "-t", quote(creds.GitHubToken), "-o", quote(githubOut)),
			Outputs:     []string{githubOut},
			Redact:      creds.Secrets(),
		},
		combineStep(dir, []string{shodanOut, githubOut}, allSubs, s),
		probeStep(domain.BucketAlive, dir, allSubs, s),
		appendStep(domain.BucketAlive, dir, alive, s),
	}

	reports := make([]string, 0, len(s.Wordlists))
	for i, wordlist := range s.Wordlists {
		out := filepath.Join(dir, fmt.Sprintf("list%d.json", i+1))
		reports = append(reports, out)
		steps = append(steps, domain.Step{
			Name:        fmt.Sprintf("ffuf-%d", i+1),
			Description: fmt.Sprintf("ffuf brute-force (%s)", wordlistLabel(wordlist)),
			Dir:         layout.Root,
			Command: join(quote(s.Tools.Ffuf), "-u", "'https://FUZZ."+d+"'", "-w", quote(wordlist),
				"-o", quote(out), "-ic", "-c", "-mc", s.BruteMatchCodes),
			Outputs: []string{out},
		})
	}

	combined := filepath.Join(dir, combinedFile)
	steps = append(steps, concatStep(dir, reports, combined, s), hostsStep(dir, combined, alive, s))
	return steps
}

// combineStep une las listas de subdominios sin duplicados (cat | anew >).
func combineStep(dir string, inputs []string, out string, s Settings) domain.Step {
	step := domain.Step{
		Name:        "combine",
		Description: "Combine unique subdomains (anew)",
		Dir:         dir,
		Inputs:      inputs,
		Outputs:     []string{out},
	}
	if s.native() {
		step.Func = func(ctx context.Context) (string, error) {
			_, err := output.Combine(inputs, out)
			return "", err
		}
		return step
	}
	step.Command = fmt.Sprintf("cat %s | %s > %s", quoteAll(inputs), quote(s.Tools.Anew), quote(out))
	return step
}

var probeDescriptions = map[domain.Bucket]string{
	domain.BucketAlive:       "httpx alive check (200)",
	domain.BucketRedirecting: "httpx redirect check (301/302)",
	domain.BucketForbidden:   "httpx forbidden check (403)",
}

// probeStep es un pase de httpx filtrado por los códigos del bucket.
func probeStep(b domain.Bucket, dir, list string, s Settings) domain.Step {
	out := filepath.Join(dir, b.URLListName())
	args := []string{quote(s.Tools.Httpx), "-l", quote(list), "-mc", b.MatchCodes(), "-ports", s.Ports, "-o", quote(out)}
	if s.RandomAgent {
		args = append(args, "-random-agent")
	}
	return domain.Step{
		Name:        "httpx-" + string(b),
		Description: probeDescriptions[b],
		Dir:         dir,
		Command:     join(args...),
		Inputs:      []string{list},
		Outputs:     []string{out},
	}
}

// appendStep quita el esquema de las URLs del bucket y las agrega a results/.
func appendStep(b domain.Bucket, dir, target string, s Settings) domain.Step {
	urlList := filepath.Join(dir, b.URLListName())
	step := domain.Step{
		Name:        "append-" + string(b),
		Description: fmt.Sprintf("Append %s subs to results (anew)", b),
		Dir:         dir,
		Inputs:      []string{urlList},
		Outputs:     []string{target},
	}
	if s.native() {
		step.Func = func(ctx context.Context) (string, error) {
			added, err := output.MergeURLList(urlList, target)
			return strings.Join(added, "\n"), err
		}
		return step
	}
	step.Command = fmt.Sprintf("sed -E 's|https?://||g' %s | %s %s", quote(urlList), quote(s.Tools.Anew), quote(target))
	return step
}

// concatStep junta los reportes JSON de ffuf.
func concatStep(dir string, reports []string, out string, s Settings) domain.Step {
	step := domain.Step{
		Name:        "ffuf-combine",
		Description: "Combine ffuf JSON results",
		Dir:         dir,
		Inputs:      reports,
		Outputs:     []string{out},
	}
	if s.native() {
		step.Func = func(ctx context.Context) (string, error) {
			return "", output.Concat(reports, out)
		}
		return step
	}
	step.Command = fmt.Sprintf("cat %s > %s", quoteAll(reports), quote(out))
	return step
}

// hostsStep extrae results[].host de los reportes y los agrega a results/.
func hostsStep(dir, combined, target string, s Settings) domain.Step {
	step := domain.Step{
		Name:        "ffuf-hosts",
		Description: "Extract and append unique ffuf hosts to results (anew)",
		Dir:         dir,
		Inputs:      []string{combined},
		Outputs:     []string{target},
	}
	if s.native() {
		step.Func = func(ctx context.Context) (string, error) {
			added, err := output.MergeFfufHosts(combined, target)
			return strings.Join(added, "\n"), err
		}
		return step
	}
	step.Command = fmt.Sprintf("%s -r '.results[].host' %s | sort -u | %s %s",
		quote(s.Tools.Jq), quote(combined), quote(s.Tools.Anew), quote(target))
	return step
}

var wordlistLabels = map[string]string{
	"n0kovo_subdomains_medium":     "n0kovo medium",
	"shubs-subdomains":             "shubs-subdomains",
	"subdomains-top1million-20000": "top1million-20000",
}

// wordlistLabel nombra la wordlist en la descripción del paso de ffuf.
func wordlistLabel(path string) string {
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	if label, ok := wordlistLabels[name]; ok {
		return label
	}
	return name
}

var shellSafe = regexp.MustCompile(`^[A-Za-z0-9@%_+=:,./-]+$`)

// quote deja intactas las palabras seguras y entrecomilla el resto para sh.
func quote(s string) string {
	if shellSafe.MatchString(s) {
		return s
	}
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

func quoteAll(paths []string) string {
	quoted := make([]string, len(paths))
	for i, p := range paths {
		quoted[i] = quote(p)
	}
	return strings.Join(quoted, " ")
}

func join(args ...string) string {
	return strings.Join(args, " ")
}
