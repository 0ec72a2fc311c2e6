package ghostadmin

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"

	"github.com/go-playground/errors/v5"
	"go.opentelemetry.io/otel"
)

// Member is a member record as returned by the Ghost Admin API.
type Member struct {
	ID    string `json:"id"`
	UUID  string `json:"uuid"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// NewMember is the payload for creating a member.
type NewMember struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

// FindMembersByEmail returns the members whose email matches exactly. The
// email is forwarded verbatim; Ghost's own matching semantics (including case
// sensitivity) apply. A zero-length result is not an error.
func (c *Client) FindMembersByEmail(ctx context.Context, email string) ([]Member, error) {
	ctx, span := otel.Tracer(name).Start(ctx, "Client.FindMembersByEmail()")
	defer span.End()

	q := url.Values{}
	q.Set("filter", "email:'"+email+"'")
	q.Set("limit", "all")

	body, err := c.do(ctx, http.MethodGet, "/ghost/api/admin/members/?"+q.Encode(), nil)
	if err != nil {
		return nil, errors.Wrap(err, "Client.do()")
	}

	var payload struct {
		Members *[]Member `json:"members"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, errors.Wrap(err, "json.Unmarshal()")
	}
	if payload.Members == nil {
		return nil, errors.New("admin API response has no members collection")
	}

	return *payload.Members, nil
}

// CreateMember creates a new member record.
func (c *Client) CreateMember(ctx context.Context, member NewMember) (*Member, error) {
	ctx, span := otel.Tracer(name).Start(ctx, "Client.CreateMember()")
	defer span.End()

	reqBody, err := json.Marshal(map[string][]NewMember{"members": {member}})
	if err != nil {
		return nil, errors.Wrap(err, "json.Marshal()")
	}

	body, err := c.do(ctx, http.MethodPost, "/ghost/api/admin/members/", reqBody)
	if err != nil {
		return nil, errors.Wrap(err, "Client.do()")
	}

	var payload struct {
		Members []Member `json:"members"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, errors.Wrap(err, "json.Unmarshal()")
	}
	if len(payload.Members) == 0 {
		return nil, errors.New("admin API returned no member for create")
	}

	return &payload.Members[0], nil
}

func (c *Client) do(ctx context.Context, method, path string, body []byte) ([]byte, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, errors.Wrap(err, "http.NewRequestWithContext()")
	}

	token, err := c.token()
	if err != nil {
		return nil, errors.Wrap(err, "Client.token()")
	}
	req.Header.Set("Authorization", "Ghost "+token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "http.Client.Do()")
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "io.ReadAll()")
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, errors.Newf("admin API returned status %d", resp.StatusCode)
	}

	return respBody, nil
}
