// Package gmail reads a user's mailbox through the Gmail v1 API.
package gmail

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"audiobrew/internal/domain/entity"
	"audiobrew/internal/domain/service"

	"github.com/pkg/errors"
	"golang.org/x/oauth2"
	googleoauth "golang.org/x/oauth2/google"
	gmailapi "google.golang.org/api/gmail/v1"
	"google.golang.org/api/option"
)

const (
	mailboxOwner   = "me"
	defaultTimeout = 60 * time.Second
)

// Client implements service.EmailSource
type Client struct {
	logger     *slog.Logger
	httpClient *http.Client

	// endpoint overrides the Gmail API base URL. Empty means the default.
	endpoint string
}

// NewClient creates a Gmail email source
func NewClient(logger *slog.Logger) service.EmailSource {
	return newClient(logger, &http.Client{Timeout: defaultTimeout}, "")
}

func newClient(logger *slog.Logger, httpClient *http.Client, endpoint string) *Client {
	return &Client{
		logger:     logger,
		httpClient: httpClient,
		endpoint:   endpoint,
	}
}

// FetchSummaries fetches each message in ids. Any failure drops the whole batch.
func (c *Client) FetchSummaries(ctx context.Context, creds *entity.CredentialBundle, ids []string, onRefresh service.TokenRefreshFunc) []entity.EmailSummary {
	summaries := make([]entity.EmailSummary, 0, len(ids))
	if len(ids) == 0 {
		return summaries
	}

	svc, err := c.service(ctx, creds, onRefresh)
	if err != nil {
		c.logger.WarnContext(ctx, "Failed to create Gmail client", slog.Any("error", err))

		return []entity.EmailSummary{}
	}

	for _, id := range ids {
		msg, err := svc.Users.Messages.Get(mailboxOwner, id).Context(ctx).Do()
		if err != nil {
			c.logger.WarnContext(ctx, "Failed to fetch email content",
				slog.String("message_id", id),
				slog.Int("requested", len(ids)),
				slog.Any("error", err),
			)

			return []entity.EmailSummary{}
		}

		summary := summarize(msg)
		// The requested id is authoritative even if Gmail echoes a different one.
		summary.ID = id
		summaries = append(summaries, summary)
	}

	return summaries
}

// ListLabels returns every label of the mailbox
func (c *Client) ListLabels(ctx context.Context, creds *entity.CredentialBundle, onRefresh service.TokenRefreshFunc) ([]*entity.GmailLabel, error) {
	svc, err := c.service(ctx, creds, onRefresh)
	if err != nil {
		return nil, err
	}

	resp, err := svc.Users.Labels.List(mailboxOwner).Context(ctx).Do()
	if err != nil {
		return nil, errors.Wrap(err, "failed to list labels")
	}

	labels := make([]*entity.GmailLabel, 0, len(resp.Labels))
	for _, label := range resp.Labels {
		labels = append(labels, &entity.GmailLabel{
			ID:   label.Id,
			Name: label.Name,
			Type: label.Type,
		})
	}

	return labels, nil
}

// ListLabelEmails lists up to limit messages under labelID and fetches each one
func (c *Client) ListLabelEmails(ctx context.Context, creds *entity.CredentialBundle, labelID string, limit int64, onRefresh service.TokenRefreshFunc) ([]entity.EmailSummary, error) {
	svc, err := c.service(ctx, creds, onRefresh)
	if err != nil {
		return nil, err
	}

	resp, err := svc.Users.Messages.List(mailboxOwner).
		LabelIds(labelID).
		MaxResults(limit).
		Context(ctx).
		Do()
	if err != nil {
		return nil, errors.Wrap(err, "failed to list messages")
	}

	summaries := make([]entity.EmailSummary, 0, len(resp.Messages))
	for _, ref := range resp.Messages {
		msg, err := svc.Users.Messages.Get(mailboxOwner, ref.Id).Context(ctx).Do()
		if err != nil {
			return nil, errors.Wrapf(err, "failed to get message %s", ref.Id)
		}

		summaries = append(summaries, summarize(msg))
	}

	return summaries, nil
}

func (c *Client) service(ctx context.Context, creds *entity.CredentialBundle, onRefresh service.TokenRefreshFunc) (*gmailapi.Service, error) {
	if creds == nil {
		return nil, errors.New("missing gmail credentials")
	}

	tokenURI := creds.TokenURI
	if tokenURI == "" {
		tokenURI = entity.DefaultTokenURI
	}

	conf := &oauth2.Config{
		ClientID:     creds.ClientID,
		ClientSecret: creds.ClientSecret,
		Scopes:       creds.Scopes,
		Endpoint: oauth2.Endpoint{
			AuthURL:  googleoauth.Endpoint.AuthURL,
			TokenURL: tokenURI,
		},
	}

	ctx = context.WithValue(ctx, oauth2.HTTPClient, c.httpClient)
	source := &refreshingTokenSource{
		ctx:  ctx,
		conf: conf,
		token: &oauth2.Token{
			AccessToken:  creds.Token,
			RefreshToken: creds.RefreshToken,
			TokenType:    "Bearer",
		},
		creds:     creds,
		onRefresh: onRefresh,
	}

	base := c.httpClient.Transport
	if base == nil {
		base = http.DefaultTransport
	}
	httpClient := &http.Client{
		Transport: &retryOnUnauthorized{source: source, base: base},
		Timeout:   c.httpClient.Timeout,
	}

	opts := []option.ClientOption{option.WithHTTPClient(httpClient)}
	if c.endpoint != "" {
		opts = append(opts, option.WithEndpoint(c.endpoint))
	}

	svc, err := gmailapi.NewService(ctx, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "unable to create Gmail service")
	}

	return svc, nil
}

// refreshingTokenSource serves the stored access token until Gmail rejects it.
// Stored bundles carry no expiry, so a 401 is the only refresh signal.
type refreshingTokenSource struct {
	ctx       context.Context
	conf      *oauth2.Config
	creds     *entity.CredentialBundle
	onRefresh service.TokenRefreshFunc

	mu    sync.Mutex
	token *oauth2.Token
}

func (s *refreshingTokenSource) Token() (*oauth2.Token, error) {
	s.mu.Lock()
	token := s.token
	s.mu.Unlock()

	if token.AccessToken == "" && token.RefreshToken != "" {
		return s.refresh("")
	}

	return token, nil
}

func (s *refreshingTokenSource) canRefresh() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.token.RefreshToken != ""
}

// refresh exchanges the refresh token unless another request already replaced stale.
func (s *refreshingTokenSource) refresh(stale string) (*oauth2.Token, error) {
	s.mu.Lock()
	if s.token.AccessToken != stale {
		token := s.token
		s.mu.Unlock()

		return token, nil
	}

	fresh, err := s.conf.TokenSource(s.ctx, &oauth2.Token{RefreshToken: s.token.RefreshToken}).Token()
	if err != nil {
		s.mu.Unlock()

		return nil, errors.Wrap(err, "failed to refresh gmail token")
	}
	if fresh.RefreshToken == "" {
		fresh.RefreshToken = s.token.RefreshToken
	}
	s.token = fresh
	// Later calls with the same bundle start from the new token.
	s.creds.Token = fresh.AccessToken
	s.creds.RefreshToken = fresh.RefreshToken
	refreshed := *s.creds
	refreshed.Scopes = append([]string(nil), s.creds.Scopes...)
	s.mu.Unlock()

	if s.onRefresh != nil {
		s.onRefresh(s.ctx, &refreshed)
	}

	return fresh, nil
}

// retryOnUnauthorized authorizes requests and retries a body-less request once
// with a refreshed token after a 401.
type retryOnUnauthorized struct {
	source *refreshingTokenSource
	base   http.RoundTripper
}

func (t *retryOnUnauthorized) RoundTrip(req *http.Request) (*http.Response, error) {
	token, err := t.source.Token()
	if err != nil {
		return nil, err
	}

	resp, err := t.base.RoundTrip(authorize(req, token))
	if err != nil || resp.StatusCode != http.StatusUnauthorized ||
		!t.source.canRefresh() || (req.Body != nil && req.GetBody == nil) {
		return resp, err
	}

	fresh, err := t.source.refresh(token.AccessToken)
	if err != nil {
		// Keep the 401 so the caller sees what Gmail answered.
		return resp, nil //nolint:nilerr // the original response carries the failure
	}
	_ = resp.Body.Close()

	retry := authorize(req, fresh)
	if req.GetBody != nil {
		body, err := req.GetBody()
		if err != nil {
			return nil, errors.WithStack(err)
		}
		retry.Body = body
	}

	return t.base.RoundTrip(retry)
}

func authorize(req *http.Request, token *oauth2.Token) *http.Request {
	out := req.Clone(req.Context())
	token.SetAuthHeader(out)

	return out
}

func summarize(msg *gmailapi.Message) entity.EmailSummary {
	var headers []*gmailapi.MessagePartHeader
	if msg.Payload != nil {
		headers = msg.Payload.Headers
	}

	return entity.EmailSummary{
		ID:      msg.Id,
		Subject: headerValue(headers, "subject", entity.DefaultSubject),
		From:    headerValue(headers, "from", entity.DefaultSender),
		Date:    headerValue(headers, "date", entity.DefaultDate),
		Snippet: msg.Snippet,
	}
}

// headerValue returns the first header matching name case-insensitively
func headerValue(headers []*gmailapi.MessagePartHeader, name, fallback string) string {
	for _, h := range headers {
		if strings.EqualFold(h.Name, name) {
			return h.Value
		}
	}

	return fallback
}
