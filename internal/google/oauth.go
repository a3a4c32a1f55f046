package google

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"

	"github.com/pkg/browser"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"github.com/teemow/gmailer/internal/logging"
)

// Resolver resolves a valid OAuth credential from the client descriptor and
// the token cache, running the interactive flow when neither a valid nor a
// refreshable token is cached.
//
// Refresh and Interactive default to the real implementations when nil; tests
// substitute them to observe how often each path runs.
type Resolver struct {
	ClientSecretFile string
	TokenFile        string
	Scopes           []string

	Refresh     func(ctx context.Context, conf *oauth2.Config, tok *oauth2.Token) (*oauth2.Token, error)
	Interactive func(ctx context.Context, conf *oauth2.Config) (*oauth2.Token, error)
}

// Token returns a valid, non-expired credential, keeping the cache current.
// Any failure here is fatal to the run; the send cannot proceed without it.
func (r *Resolver) Token(ctx context.Context) (*oauth2.Token, error) {
	conf, err := r.config()
	if err != nil {
		return nil, err
	}
	return r.resolve(ctx, conf)
}

// Client returns an HTTP client that authenticates requests with the
// resolved credential.
func (r *Resolver) Client(ctx context.Context) (*http.Client, error) {
	conf, err := r.config()
	if err != nil {
		return nil, err
	}
	tok, err := r.resolve(ctx, conf)
	if err != nil {
		return nil, err
	}
	return conf.Client(ctx, tok), nil
}

// Authorize runs the interactive flow unconditionally and rewrites the token
// cache, discarding any cached credential.
func (r *Resolver) Authorize(ctx context.Context) (*oauth2.Token, error) {
	conf, err := r.config()
	if err != nil {
		return nil, err
	}
	tok, err := r.interactive(ctx, conf)
	if err != nil {
		return nil, err
	}
	if err := saveToken(r.TokenFile, tok); err != nil {
		return nil, err
	}
	return tok, nil
}

func (r *Resolver) config() (*oauth2.Config, error) {
	b, err := os.ReadFile(r.ClientSecretFile)
	if err != nil {
		return nil, fmt.Errorf("unable to read client secret file: %w", err)
	}
	conf, err := google.ConfigFromJSON(b, r.Scopes...)
	if err != nil {
		return nil, fmt.Errorf("unable to parse client secret file: %w", err)
	}
	return conf, nil
}

func (r *Resolver) resolve(ctx context.Context, conf *oauth2.Config) (*oauth2.Token, error) {
	cached, err := readToken(r.TokenFile)
	switch {
	case err == nil && cached.Valid():
		slog.Debug("using cached token", logging.Operation("google.resolve"))
		return cached, nil

	case err == nil && cached.RefreshToken != "":
		slog.Debug("refreshing expired token", logging.Operation("google.resolve"))
		refreshed, err := r.refresh(ctx, conf, cached)
		if err != nil {
			return nil, fmt.Errorf("failed to refresh token: %w", err)
		}
		if refreshed.AccessToken != cached.AccessToken {
			if err := saveToken(r.TokenFile, refreshed); err != nil {
				return nil, err
			}
		}
		return refreshed, nil

	default:
		slog.Debug("no usable cached token, starting interactive authorization",
			logging.Operation("google.resolve"))
		tok, err := r.interactive(ctx, conf)
		if err != nil {
			return nil, err
		}
		if err := saveToken(r.TokenFile, tok); err != nil {
			return nil, err
		}
		return tok, nil
	}
}

func (r *Resolver) refresh(ctx context.Context, conf *oauth2.Config, tok *oauth2.Token) (*oauth2.Token, error) {
	if r.Refresh != nil {
		return r.Refresh(ctx, conf, tok)
	}
	return conf.TokenSource(ctx, tok).Token()
}

func (r *Resolver) interactive(ctx context.Context, conf *oauth2.Config) (*oauth2.Token, error) {
	if r.Interactive != nil {
		return r.Interactive(ctx, conf)
	}
	return authorizeInteractive(ctx, conf)
}

// authorizeInteractive runs the browser-based consent flow. It listens on an
// ephemeral loopback port for the authorization code redirect, opens the
// consent URL in a browser (and prints it for headless use), then exchanges
// the code for a token. The wait is bounded only by user action.
func authorizeInteractive(ctx context.Context, conf *oauth2.Config) (*oauth2.Token, error) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return nil, fmt.Errorf("unable to start local redirect listener: %w", err)
	}
	defer func() { _ = ln.Close() }()

	redirect := *conf
	redirect.RedirectURL = fmt.Sprintf("http://%s/", ln.Addr().String())
	conf = &redirect

	state, err := randomState()
	if err != nil {
		return nil, err
	}

	type callback struct {
		code string
		err  error
	}
	ch := make(chan callback, 1)

	srv := &http.Server{Handler: http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		q := req.URL.Query()
		if q.Get("state") != state {
			http.Error(w, "state mismatch", http.StatusBadRequest)
			ch <- callback{err: fmt.Errorf("state mismatch in authorization redirect")}
			return
		}
		if e := q.Get("error"); e != "" {
			http.Error(w, "authorization declined", http.StatusForbidden)
			ch <- callback{err: fmt.Errorf("authorization declined: %s", e)}
			return
		}
		fmt.Fprintln(w, "Authorization complete. You may close this window.")
		ch <- callback{code: q.Get("code")}
	})}
	go func() { _ = srv.Serve(ln) }()
	defer func() { _ = srv.Close() }()

	url := conf.AuthCodeURL(state, oauth2.AccessTypeOffline)
	fmt.Fprintf(os.Stderr, "Visit this URL to authorize gmailer:\n\n  %s\n\n", url)
	if err := browser.OpenURL(url); err != nil {
		slog.Debug("unable to open browser, continuing with printed URL",
			logging.Operation("google.authorize"), logging.Err(err))
	}

	select {
	case cb := <-ch:
		if cb.err != nil {
			return nil, cb.err
		}
		tok, err := conf.Exchange(ctx, cb.code)
		if err != nil {
			return nil, fmt.Errorf("failed to exchange auth code: %w", err)
		}
		return tok, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func randomState() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("unable to generate state: %w", err)
	}
	return hex.EncodeToString(b), nil
}

func readToken(path string) (*oauth2.Token, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	tok := &oauth2.Token{}
	if err := json.NewDecoder(f).Decode(tok); err != nil {
		return nil, fmt.Errorf("invalid token cache %s: %w", path, err)
	}
	return tok, nil
}

func saveToken(path string, tok *oauth2.Token) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("unable to cache oauth token: %w", err)
	}
	defer func() { _ = f.Close() }()

	if err := json.NewEncoder(f).Encode(tok); err != nil {
		return fmt.Errorf("unable to write token cache: %w", err)
	}
	return nil
}
