// Package google handles OAuth2 authentication against Google.
//
// The Resolver turns two files in the working directory into a usable
// credential:
//   - client_secret.json: the OAuth client descriptor downloaded from the
//     Google Cloud Console ("installed" or "web" shape)
//   - token.json: a JSON-encoded oauth2.Token persisted between runs
//
// Resolution order: a cached valid token is used as-is; a cached expired
// token with a refresh token is refreshed transparently and the cache is
// rewritten when the access token rotates; otherwise an interactive
// browser-based flow is performed on a loopback listener and the result is
// persisted.
//
// If Scopes change, delete the token cache; Google only re-issues consent
// for the scopes present at authorization time.
package google
