package client

import "net/http"

// AuthorizationHeader carries the bearer credential on outbound requests.
const AuthorizationHeader = "Authorization"

// bearerTransport adds the current credential to every request just before
// it is handed to the underlying transport. Requests are otherwise passed
// through untouched.
type bearerTransport struct {
	base http.RoundTripper
	cred *Credential
}

func (t *bearerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	token := t.cred.Get()
	if token == "" {
		return t.base.RoundTrip(req)
	}

	// RoundTrippers must not mutate the caller's request.
	r := req.Clone(req.Context())
	r.Header.Set(AuthorizationHeader, "Bearer "+token)
	return t.base.RoundTrip(r)
}
