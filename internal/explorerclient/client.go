package explorerclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/jacksonlee411/Leadership-Explorer/modules/directory/domain/types"
	"golang.org/x/sync/errgroup"
)

// ErrFetchFailed is returned, wrapped, when the server answers with a non-OK status.
var ErrFetchFailed = errors.New("explorerclient: fetch failed")

type Client struct {
	BaseURL string
	HTTP    *http.Client
}

func New(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{BaseURL: strings.TrimRight(baseURL, "/"), HTTP: httpClient}
}

// Directory is the pair of payloads the hierarchy is rendered from.
type Directory struct {
	Bodies    []types.Body
	Officials []types.Official
}

// FetchDirectory requests bodies and officials concurrently and waits for both.
func (c *Client) FetchDirectory(ctx context.Context) (Directory, error) {
	var d Directory
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return c.getJSON(gctx, "/api/bodies", &d.Bodies) })
	g.Go(func() error { return c.getJSON(gctx, "/api/officials", &d.Officials) })
	if err := g.Wait(); err != nil {
		return Directory{}, err
	}
	return d, nil
}

func (c *Client) FetchLeaders(ctx context.Context) ([]types.LeadershipBranch, error) {
	var out []types.LeadershipBranch
	if err := c.getJSON(ctx, "/api/leaders", &out); err != nil {
		return nil, err
	}
	return out, nil
}

type errorEnvelope struct {
	Error   string `json:"error"`
	Details string `json:"details"`
}

func (c *Client) getJSON(ctx context.Context, path string, dst any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+path, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		var env errorEnvelope
		reason := strings.TrimSpace(string(body))
		if json.Unmarshal(body, &env) == nil && env.Error != "" {
			reason = env.Error
			if env.Details != "" {
				reason += ": " + env.Details
			}
		}
		return fmt.Errorf("%w: GET %s: status %d: %s", ErrFetchFailed, path, resp.StatusCode, reason)
	}

	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}
