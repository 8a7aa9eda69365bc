package toolcheck

import "shabnam/internal/core/domain"

// ForApproach lista las herramientas que necesita un enfoque. En modo de
// merge nativo las utilidades de texto (anew, sed, jq, sort) no hacen falta.
func ForApproach(ts domain.ToolSet, approach domain.Approach, mode domain.MergeMode) []Tool {
	var tools []Tool

	switch approach {
	case domain.ApproachFast:
		tools = append(tools,
			Tool{Name: "findomain", Binary: ts.Findomain, Purpose: "passive enumeration", VersionArgs: []string{"--version"}},
			Tool{Name: "subfinder", Binary: ts.Subfinder, Purpose: "passive enumeration", VersionArgs: []string{"-version"}},
			Tool{Name: "httpx", Binary: ts.Httpx, Purpose: "HTTP probing", VersionArgs: []string{"-version"}},
		)
	case domain.ApproachSlow:
		tools = append(tools,
			Tool{Name: "shosubgo", Binary: ts.Shosubgo, Purpose: "Shodan subdomains"},
			Tool{Name: "github-subdomains", Binary: ts.GithubSubdomains, Purpose: "GitHub code search"},
			Tool{Name: "httpx", Binary: ts.Httpx, Purpose: "HTTP probing", VersionArgs: []string{"-version"}},
			Tool{Name: "ffuf", Binary: ts.Ffuf, Purpose: "DNS brute force", VersionArgs: []string{"-V"}},
		)
	}

	if mode == domain.MergeNative {
		return tools
	}

	tools = append(tools,
		Tool{Name: "anew", Binary: ts.Anew, Purpose: "append-only dedup"},
		Tool{Name: "cat", Binary: "cat", Purpose: "file concatenation"},
		Tool{Name: "sed", Binary: "sed", Purpose: "scheme stripping"},
	)
	if approach == domain.ApproachSlow {
		tools = append(tools,
			Tool{Name: "jq", Binary: ts.Jq, Purpose: "ffuf JSON extraction", VersionArgs: []string{"--version"}},
			Tool{Name: "sort", Binary: "sort", Purpose: "host dedup"},
		)
	}
	return tools
}
