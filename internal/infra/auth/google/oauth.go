package google

import (
	"context"
	"net/http"
	"time"

	"audiobrew/config"
	"audiobrew/internal/domain/entity"
	"audiobrew/internal/domain/service"

	"github.com/pkg/errors"
	"golang.org/x/oauth2"
	googleoauth "golang.org/x/oauth2/google"
	oauth2api "google.golang.org/api/oauth2/v2"
	"google.golang.org/api/option"
)

const defaultHTTPTimeout = 30 * time.Second

// OAuthProvider drives Google's authorization-code flow for Gmail access
type OAuthProvider struct {
	config     *oauth2.Config
	httpClient *http.Client

	// userInfoEndpoint overrides the Google API base URL. Empty means the default.
	userInfoEndpoint string
}

// NewOAuthProvider creates a new Gmail OAuth provider
func NewOAuthProvider(cfg *config.Config) service.GmailOAuthProvider {
	return newOAuthProvider(cfg, &http.Client{Timeout: defaultHTTPTimeout}, "")
}

func newOAuthProvider(cfg *config.Config, httpClient *http.Client, userInfoEndpoint string) *OAuthProvider {
	endpoint := googleoauth.Endpoint
	if cfg.GoogleOAuth.TokenURI != "" {
		endpoint.TokenURL = cfg.GoogleOAuth.TokenURI
	}

	scopes := cfg.GoogleOAuth.Scopes
	if len(scopes) == 0 {
		scopes = config.DefaultGmailScopes
	}

	return &OAuthProvider{
		config: &oauth2.Config{
			ClientID:     cfg.GoogleOAuth.ClientID,
			ClientSecret: cfg.GoogleOAuth.ClientSecret,
			RedirectURL:  cfg.GoogleOAuth.RedirectURI,
			Scopes:       scopes,
			Endpoint:     endpoint,
		},
		httpClient:       httpClient,
		userInfoEndpoint: userInfoEndpoint,
	}
}

// AuthCodeURL builds the consent URL. Offline access with a forced consent
// prompt makes Google return a refresh token on every connect.
func (p *OAuthProvider) AuthCodeURL(state string) string {
	return p.config.AuthCodeURL(state,
		oauth2.AccessTypeOffline,
		oauth2.SetAuthURLParam("prompt", "consent"),
		oauth2.SetAuthURLParam("include_granted_scopes", "true"),
	)
}

// Exchange trades the authorization code for tokens and looks up the account email
func (p *OAuthProvider) Exchange(ctx context.Context, code string) (*entity.CredentialBundle, error) {
	ctx = context.WithValue(ctx, oauth2.HTTPClient, p.httpClient)

	token, err := p.config.Exchange(ctx, code)
	if err != nil {
		return nil, errors.Wrap(err, "failed to exchange authorization code")
	}

	email, err := p.fetchEmail(ctx, token)
	if err != nil {
		return nil, err
	}

	scopes := make([]string, len(p.config.Scopes))
	copy(scopes, p.config.Scopes)

	return &entity.CredentialBundle{
		Token:        token.AccessToken,
		RefreshToken: token.RefreshToken,
		TokenURI:     p.config.Endpoint.TokenURL,
		ClientID:     p.config.ClientID,
		ClientSecret: p.config.ClientSecret,
		Scopes:       scopes,
		Email:        email,
	}, nil
}

func (p *OAuthProvider) fetchEmail(ctx context.Context, token *oauth2.Token) (string, error) {
	opts := []option.ClientOption{option.WithHTTPClient(p.config.Client(ctx, token))}
	if p.userInfoEndpoint != "" {
		opts = append(opts, option.WithEndpoint(p.userInfoEndpoint))
	}

	svc, err := oauth2api.NewService(ctx, opts...)
	if err != nil {
		return "", errors.Wrap(err, "failed to create userinfo client")
	}

	info, err := svc.Userinfo.Get().Context(ctx).Do()
	if err != nil {
		return "", errors.Wrap(err, "failed to get user info")
	}
	if info.Email == "" {
		return "", errors.New("google account has no email address")
	}

	return info.Email, nil
}
