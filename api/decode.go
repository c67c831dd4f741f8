package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
)

// DecodeEnvelope decodes an envelope-wrapped payload from r. Any JSON
// failure, including a required-field failure from an entity's
// UnmarshalJSON, comes back as a DecodingError; records are never silently
// dropped from a list.
func DecodeEnvelope[T any](r io.Reader) (*Envelope[T], error) {
	body, err := io.ReadAll(r)
	if err != nil {
		return nil, &NetworkError{Err: err}
	}
	if len(body) == 0 {
		return nil, ErrNoData
	}
	var env Envelope[T]
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, &DecodingError{Err: err}
	}
	return &env, nil
}

// DecodeResponse maps an HTTP response onto the error taxonomy and decodes
// the envelope: 401 is ErrUnauthorized, 5xx is a ServerError carrying the
// envelope message when one decodes, an empty body is ErrNoData, and an
// envelope with success=false is a ServerError even on a 2xx status.
func DecodeResponse[T any](resp *http.Response) (*Envelope[T], error) {
	if resp.StatusCode == http.StatusUnauthorized {
		return nil, ErrUnauthorized
	}
	if resp.StatusCode >= http.StatusInternalServerError {
		return nil, &ServerError{
			Message:    serverMessage(resp.Body),
			StatusCode: resp.StatusCode,
		}
	}
	env, err := DecodeEnvelope[T](resp.Body)
	if err != nil {
		return nil, err
	}
	if !env.Success {
		return nil, &ServerError{Message: env.Msg(), StatusCode: resp.StatusCode}
	}
	return env, nil
}

// FetchEnvelope issues a GET against rawURL and decodes the enveloped
// response. This is the only transport touchpoint the library offers; the
// apps' network layers own everything beyond a single request (auth
// headers, retries, sessions).
func FetchEnvelope[T any](ctx context.Context, client *http.Client, rawURL string) (*Envelope[T], error) {
	u, err := url.ParseRequestURI(rawURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, ErrInvalidURL
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, ErrInvalidURL
	}
	req.Header.Set("Accept", "application/json")
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, &NetworkError{Err: err}
	}
	defer func() { _ = resp.Body.Close() }()
	return DecodeResponse[T](resp)
}

// serverMessage pulls the message out of an error envelope body, tolerating
// bodies that are not envelopes at all.
func serverMessage(r io.Reader) string {
	body, err := io.ReadAll(r)
	if err != nil || len(body) == 0 {
		return ""
	}
	var env struct {
		Message *string `json:"message"`
	}
	if err := json.Unmarshal(body, &env); err != nil || env.Message == nil {
		return ""
	}
	return *env.Message
}
