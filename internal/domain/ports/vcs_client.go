package ports

import "context"

// VCSClient enriquece el payload con metadata del proveedor de VCS cuando
// hay un token configurado. Opcional: sin token, el pipeline sigue igual.
type VCSClient interface {
	PullRequestTitle(ctx context.Context, number int) (string, error)
	CompareURL(base, head string) string
}
