package git

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/Tomas-vilte/MateLog/internal/config"
)

var (
	sshRegex   = regexp.MustCompile(`git@([^:]+):([^/]+)/(.+?)(?:\.git)?$`)
	httpsRegex = regexp.MustCompile(`https://([^/]+)/([^/]+)/(.+?)(?:\.git)?$`)
)

// parseRepoURL extrae owner, repo y plataforma de la URL de origin,
// aceptando formato SSH y HTTPS.
func parseRepoURL(url string) (string, string, string, error) {
	var matches []string
	if sshRegex.MatchString(url) {
		matches = sshRegex.FindStringSubmatch(url)
	} else if httpsRegex.MatchString(url) {
		matches = httpsRegex.FindStringSubmatch(url)
	}

	if len(matches) < 4 {
		return "", "", "", fmt.Errorf("no se pudo extraer el propietario y el repositorio de la URL: %s", url)
	}

	platform := detectPlatform(matches[1])
	repoName := strings.TrimSuffix(matches[3], ".git")
	return matches[2], repoName, platform, nil
}

func detectPlatform(host string) string {
	switch {
	case strings.Contains(host, "github"):
		return config.PlatformGitHub
	case strings.Contains(host, "gitlab"):
		return config.PlatformGitLab
	case strings.Contains(host, "bitbucket"):
		return config.PlatformBitbucket
	case strings.Contains(host, "azure") || strings.Contains(host, "visualstudio"):
		return config.PlatformAzure
	default:
		return config.PlatformGitHub
	}
}

// WebURL arma la URL navegable del repo a partir de la URL de origin.
func WebURL(url string) string {
	if m := sshRegex.FindStringSubmatch(url); len(m) >= 4 {
		return "https://" + m[1] + "/" + m[2] + "/" + strings.TrimSuffix(m[3], ".git")
	}
	return strings.TrimSuffix(strings.TrimSuffix(url, "/"), ".git")
}
