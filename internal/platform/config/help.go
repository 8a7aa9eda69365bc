// internal/platform/config/help.go
package config

import (
	"fmt"
	"io"
	"runtime"
)

// LongHelp es la descripción larga del comando raíz.
const LongHelp = `Shabnam - Subdomain Enumeration Tool

Runs a fixed chain of external recon tools against one apex domain, one step
at a time, and merges what they find into cumulative result files under
~/recon_framework/<domain>/results.

APPROACHES:
  --fast, -f   findomain + subfinder, then httpx sorts hosts into
               alive (200), redirecting (301/302) and forbidden (403)
  --slow, -s   shosubgo (Shodan) + github-subdomains, httpx alive check,
               then three ffuf DNS brute-force passes; asks for API keys

MERGE MODES:
  external     anew, sed, jq and sort do the merging (default)
  native       the same merges done in-process, only the scanners are needed

ENVIRONMENT VARIABLES:
  SHABNAM_LOG_LEVEL=debug           Log level
  SHABNAM_MERGE_MODE=native         Merge mode
  SHABNAM_STEP_TIMEOUT=30m          Per-step time limit (0 = none)
  SHABNAM_WILDCARD=false            Disable the wildcard DNS probe
  SHABNAM_RESOLVER=8.8.8.8:53       Resolver for the wildcard probe
  SHABNAM_NO_COLOR=true             Plain output
  SHABNAM_CONFIG=/path/config.yaml  Config file
  SHABNAM_GITHUB_TOKEN              Pre-fills the GitHub API key prompt
  SHABNAM_SHODAN_KEY                Pre-fills the Shodan API key prompt

  Note: CLI flags override environment variables, which override the config file.`

// Examples se muestran bajo "Examples:" en la ayuda de cobra.
const Examples = `  shabnam example.com --fast
  shabnam example.com -s --merge native
  shabnam example.com --slow --step-timeout 45m --no-wildcard-check
  shabnam doctor --slow`

// PrintVersion escribe la información de versión en w.
func PrintVersion(w io.Writer, version, commit, date string) {
	fmt.Fprintf(w, "Shabnam %s\n", version)
	fmt.Fprintf(w, "  Commit:  %s\n", commit)
	fmt.Fprintf(w, "  Built:   %s\n", date)
	fmt.Fprintf(w, "  Go:      %s\n", getGoVersion())
}

func getGoVersion() string {
	return runtime.Version()
}
