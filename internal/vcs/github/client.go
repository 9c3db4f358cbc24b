package github

import (
	"context"
	"fmt"
	"net/http"

	"github.com/Tomas-vilte/MateLog/internal/domain/ports"
	"github.com/Tomas-vilte/MateLog/internal/logger"
	"github.com/google/go-github/v80/github"
	"golang.org/x/oauth2"
)

var _ ports.VCSClient = (*Client)(nil)

// PullRequestsService es la porción del cliente de GitHub que usamos,
// como interfaz para poder mockearla en los tests.
type PullRequestsService interface {
	Get(ctx context.Context, owner, repo string, number int) (*github.PullRequest, *github.Response, error)
}

// Client enriquece las entradas del changelog con datos de GitHub.
// Sin token usa el cliente anónimo, alcanza para repos públicos.
type Client struct {
	prService PullRequestsService
	owner     string
	repo      string
	webURL    string
}

func NewClient(owner, repo, webURL, token string) *Client {
	var httpClient *http.Client
	if token != "" {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
		httpClient = oauth2.NewClient(context.Background(), ts)
	}

	client := github.NewClient(httpClient)
	return &Client{
		prService: client.PullRequests,
		owner:     owner,
		repo:      repo,
		webURL:    webURL,
	}
}

func NewClientWithServices(prService PullRequestsService, owner, repo, webURL string) *Client {
	return &Client{
		prService: prService,
		owner:     owner,
		repo:      repo,
		webURL:    webURL,
	}
}

// PullRequestTitle trae el título del PR para usarlo como título del rango.
func (c *Client) PullRequestTitle(ctx context.Context, number int) (string, error) {
	log := logger.FromContext(ctx)

	log.Debug("buscando pull request en github",
		"owner", c.owner,
		"repo", c.repo,
		"pr_number", number)

	pr, resp, err := c.prService.Get(ctx, c.owner, c.repo, number)
	if err != nil {
		if resp != nil && resp.StatusCode == http.StatusNotFound {
			return "", fmt.Errorf("pull request #%d no encontrado en %s/%s", number, c.owner, c.repo)
		}
		return "", fmt.Errorf("error buscando PR #%d: %w", number, err)
	}

	return pr.GetTitle(), nil
}

// CompareURL arma el link de comparación entre dos referencias.
func (c *Client) CompareURL(base, head string) string {
	if c.webURL == "" {
		return ""
	}
	return fmt.Sprintf("%s/compare/%s...%s", c.webURL, base, head)
}
