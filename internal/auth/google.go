package auth

import (
	"context"
	"fmt"
	"net/http"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	googleoauth2 "google.golang.org/api/oauth2/v2"
	"google.golang.org/api/option"
)

var _ IdentityProvider = (*GoogleProvider)(nil)

// IdentityProvider is the external login collaborator: it can send the
// browser away to log in, and later turn the callback code into a
// verified email address
type IdentityProvider interface {
	AuthCodeURL(state string) string
	VerifiedEmail(ctx context.Context, code string) (string, error)
}

// GoogleProvider implements IdentityProvider on top of google oauth2
type GoogleProvider struct {
	oauthConfig *oauth2.Config
	httpClient  *http.Client
}

func NewGoogleProvider(
	clientID, clientSecret, redirectURL string,
	httpClient *http.Client,
) *GoogleProvider {
	return &GoogleProvider{
		oauthConfig: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  redirectURL,
			Scopes: []string{
				"openid",
				googleoauth2.UserinfoEmailScope,
			},
			Endpoint: google.Endpoint,
		},
		httpClient: httpClient,
	}
}

func (g *GoogleProvider) AuthCodeURL(state string) string {
	return g.oauthConfig.AuthCodeURL(state)
}

// VerifiedEmail exchanges the callback code for a token and asks the
// userinfo endpoint who just logged in. Network failures and refused
// exchanges surface as errors, callers map them to an authentication
// failure, never a crash.
func (g *GoogleProvider) VerifiedEmail(ctx context.Context, code string) (string, error) {
	if g.httpClient != nil {
		ctx = context.WithValue(ctx, oauth2.HTTPClient, g.httpClient)
	}

	token, err := g.oauthConfig.Exchange(ctx, code)
	if err != nil {
		return "", fmt.Errorf("exchange authorization code: %w", err)
	}

	oauthService, err := googleoauth2.NewService(
		ctx,
		option.WithTokenSource(g.oauthConfig.TokenSource(ctx, token)),
	)
	if err != nil {
		return "", fmt.Errorf("create userinfo service: %w", err)
	}

	userInfo, err := oauthService.Userinfo.Get().Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("get userinfo: %w", err)
	}

	return userInfo.Email, nil
}
