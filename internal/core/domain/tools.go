// internal/core/domain/tools.go
package domain

// ToolSet son los nombres de binario de cada herramienta externa.
type ToolSet struct {
	Findomain        string `yaml:"findomain" json:"findomain"`
	Subfinder        string `yaml:"subfinder" json:"subfinder"`
	Anew             string `yaml:"anew" json:"anew"`
	Httpx            string `yaml:"httpx" json:"httpx"`
	Shosubgo         string `yaml:"shosubgo" json:"shosubgo"`
	GithubSubdomains string `yaml:"github_subdomains" json:"github_subdomains"`
	Ffuf             string `yaml:"ffuf" json:"ffuf"`
	Jq               string `yaml:"jq" json:"jq"`
}

// Valores por defecto de httpx y ffuf.
const (
	DefaultPorts      = "80,443,8080,8000,8888,8443,3000"
	DefaultMatchCodes = "200"
)

// DefaultWordlists devuelve las listas de ffuf del enfoque lento, en orden.
// Cada llamada devuelve una copia nueva.
func DefaultWordlists() []string {
	return []string{
		"/opt/wordlists/n0kovo_subdomains/n0kovo_subdomains_medium.txt",
		"/usr/share/seclists/Discovery/DNS/shubs-subdomains.txt",
		"/usr/share/seclists/Discovery/DNS/subdomains-top1million-20000.txt",
	}
}

// DefaultToolSet usa los nombres habituales en Kali.
func DefaultToolSet() ToolSet {
	return ToolSet{
		Findomain:        "findomain",
		Subfinder:        "subfinder",
		Anew:             "anew",
		Httpx:            "httpx-toolkit",
		Shosubgo:         "shosubgo",
		GithubSubdomains: "github-subdomains",
		Ffuf:             "ffuf",
		Jq:               "jq",
	}
}
