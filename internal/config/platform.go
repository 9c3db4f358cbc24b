package config

const (
	PlatformGitHub    = "github"
	PlatformGitLab    = "gitlab"
	PlatformBitbucket = "bitbucket"
	PlatformAzure     = "azure"
)

// PullRequestPath devuelve el sufijo de URL para el PR número n según la
// plataforma. Una plataforma desconocida usa el esquema de GitHub.
func PullRequestPath(platform string, n string) string {
	switch platform {
	case PlatformGitLab:
		return "/-/merge_requests/" + n
	case PlatformBitbucket:
		return "/pull-requests/" + n
	case PlatformAzure:
		return "/pullrequest/" + n
	default:
		return "/pull/" + n
	}
}

// ComparePath devuelve el sufijo de URL que compara base contra head según
// la plataforma. Una plataforma desconocida usa el esquema de GitHub.
func ComparePath(platform, base, head string) string {
	switch platform {
	case PlatformGitLab:
		return "/-/compare/" + base + "..." + head
	case PlatformBitbucket:
		return "/branches/compare/" + head + ".." + base
	case PlatformAzure:
		return "/branchCompare?baseVersion=GB" + base + "&targetVersion=GB" + head
	default:
		return "/compare/" + base + "..." + head
	}
}
