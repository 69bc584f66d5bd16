// Package topoclimb is an HTTP client for one TopoClimb backend instance.
// Clients are cheap handles around a shared transport; the federation layer
// caches them per endpoint and derives authenticated views per request.
package topoclimb

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// NewHTTPClient builds the shared transport used by all backend clients:
// bounded timeouts sized for JSON API calls, per-host keep-alive pooling.
func NewHTTPClient(timeout time.Duration) *http.Client {
	transport := &http.Transport{
		DialContext: (&net.Dialer{
			Timeout:   5 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		TLSHandshakeTimeout:   5 * time.Second,
		ResponseHeaderTimeout: 10 * time.Second,
		MaxIdleConnsPerHost:   10,
	}
	return &http.Client{
		Transport: transport,
		Timeout:   timeout,
	}
}

// Client talks to one backend instance. Obtain authenticated views via
// WithToken; the zero token sends unauthenticated requests.
type Client struct {
	baseURL string // trailing slash trimmed; joined with absolute paths
	token   string
	http    *http.Client
}

// New creates a client for the given base URL sharing httpClient's transport.
func New(baseURL string, httpClient *http.Client) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
	}
}

// WithToken returns a view of the client that authenticates every request
// with token. The underlying connection pool is shared.
func (c *Client) WithToken(token string) *Client {
	if token == "" {
		return c
	}
	derived := *c
	derived.token = token
	return &derived
}

// BaseURL returns the client's base URL without a trailing slash.
func (c *Client) BaseURL() string { return c.baseURL }

// APIError is a non-2xx response from a backend.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("backend returned %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("backend returned %d", e.StatusCode)
}

// envelope is the JSON wrapper every backend payload arrives in.
type envelope[T any] struct {
	Data T `json:"data"`
}

// ── Catalogue ────────────────────────────────────────────────────────────────

func (c *Client) Sites(ctx context.Context) ([]Site, error) {
	return get[[]Site](ctx, c, "/api/sites", nil)
}

func (c *Client) Site(ctx context.Context, id int64) (*Site, error) {
	return getPtr[Site](ctx, c, "/api/sites/"+formatID(id), nil)
}

func (c *Client) Areas(ctx context.Context, siteID int64) ([]Area, error) {
	q := url.Values{}
	if siteID > 0 {
		q.Set("site_id", formatID(siteID))
	}
	return get[[]Area](ctx, c, "/api/areas", q)
}

func (c *Client) Area(ctx context.Context, id int64) (*Area, error) {
	return getPtr[Area](ctx, c, "/api/areas/"+formatID(id), nil)
}

func (c *Client) Sectors(ctx context.Context, areaID int64) ([]Sector, error) {
	return get[[]Sector](ctx, c, "/api/areas/"+formatID(areaID)+"/sectors", nil)
}

func (c *Client) Lines(ctx context.Context, sectorID int64) ([]Line, error) {
	return get[[]Line](ctx, c, "/api/sectors/"+formatID(sectorID)+"/lines", nil)
}

func (c *Client) Routes(ctx context.Context, filter RouteFilter) ([]Route, error) {
	q := url.Values{}
	if filter.SiteID > 0 {
		q.Set("site_id", formatID(filter.SiteID))
	}
	if filter.AreaID > 0 {
		q.Set("area_id", formatID(filter.AreaID))
	}
	if filter.LineID > 0 {
		q.Set("line_id", formatID(filter.LineID))
	}
	if filter.Style != "" {
		q.Set("style", filter.Style)
	}
	if filter.MinGrade != "" {
		q.Set("min_grade", filter.MinGrade)
	}
	if filter.MaxGrade != "" {
		q.Set("max_grade", filter.MaxGrade)
	}
	return get[[]Route](ctx, c, "/api/routes", q)
}

func (c *Client) Route(ctx context.Context, id int64) (*Route, error) {
	return getPtr[Route](ctx, c, "/api/routes/"+formatID(id), nil)
}

// TopoImage fetches the topo drawing for a route. Returns the raw bytes and
// the Content-Type the backend declared (may be empty or wrong; callers sniff).
func (c *Client) TopoImage(ctx context.Context, routeID int64) ([]byte, string, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/api/routes/"+formatID(routeID)+"/topo", nil, nil)
	if err != nil {
		return nil, "", err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("backend request to %s failed: %w", c.baseURL, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", fmt.Errorf("reading topo image: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, "", &APIError{StatusCode: resp.StatusCode}
	}
	return body, resp.Header.Get("Content-Type"), nil
}

// ── Logs ─────────────────────────────────────────────────────────────────────

func (c *Client) RouteLogs(ctx context.Context, routeID int64) ([]RouteLog, error) {
	return get[[]RouteLog](ctx, c, "/api/routes/"+formatID(routeID)+"/logs", nil)
}

// CreateRouteLog records an ascent. Requires an authenticated client.
func (c *Client) CreateRouteLog(ctx context.Context, routeID int64, log RouteLog) (*RouteLog, error) {
	return post[RouteLog](ctx, c, "/api/routes/"+formatID(routeID)+"/logs", log)
}

// ── Contests ─────────────────────────────────────────────────────────────────

func (c *Client) Contests(ctx context.Context, siteID int64) ([]Contest, error) {
	q := url.Values{}
	if siteID > 0 {
		q.Set("site_id", formatID(siteID))
	}
	return get[[]Contest](ctx, c, "/api/contests", q)
}

func (c *Client) ContestSteps(ctx context.Context, contestID int64) ([]ContestStep, error) {
	return get[[]ContestStep](ctx, c, "/api/contests/"+formatID(contestID)+"/steps", nil)
}

func (c *Client) ContestRankings(ctx context.Context, contestID, stepID int64) ([]ContestRanking, error) {
	path := "/api/contests/" + formatID(contestID) + "/steps/" + formatID(stepID) + "/rankings"
	return get[[]ContestRanking](ctx, c, path, nil)
}

// ── Social ───────────────────────────────────────────────────────────────────

// Friends lists the authenticated user's friends on this backend.
func (c *Client) Friends(ctx context.Context) ([]User, error) {
	return get[[]User](ctx, c, "/api/friends", nil)
}

func (c *Client) SearchUsers(ctx context.Context, query string) ([]User, error) {
	q := url.Values{"q": {query}}
	return get[[]User](ctx, c, "/api/users/search", q)
}

func (c *Client) UserProfile(ctx context.Context, userID int64) (*User, error) {
	return getPtr[User](ctx, c, "/api/users/"+formatID(userID), nil)
}

func (c *Client) UserRoutes(ctx context.Context, userID int64) ([]Route, error) {
	return get[[]Route](ctx, c, "/api/users/"+formatID(userID)+"/routes", nil)
}

// ── Auth ─────────────────────────────────────────────────────────────────────

func (c *Client) Login(ctx context.Context, username, password string) (*AuthResponse, error) {
	body := map[string]string{"username": username, "password": password}
	return post[AuthResponse](ctx, c, "/api/auth/login", body)
}

func (c *Client) Register(ctx context.Context, username, email, password string) (*AuthResponse, error) {
	body := map[string]string{"username": username, "email": email, "password": password}
	return post[AuthResponse](ctx, c, "/api/auth/register", body)
}

// ── Plumbing ─────────────────────────────────────────────────────────────────

// get performs a GET and unwraps the data envelope.
func get[T any](ctx context.Context, c *Client, path string, query url.Values) (T, error) {
	var zero T
	req, err := c.newRequest(ctx, http.MethodGet, path, query, nil)
	if err != nil {
		return zero, err
	}
	return do[T](c, req)
}

// getPtr is get for single resources, returning a pointer.
func getPtr[T any](ctx context.Context, c *Client, path string, query url.Values) (*T, error) {
	v, err := get[T](ctx, c, path, query)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// post sends a JSON body and unwraps the data envelope of the response.
func post[T any](ctx context.Context, c *Client, path string, body any) (*T, error) {
	raw, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encoding request body: %w", err)
	}
	req, err := c.newRequest(ctx, http.MethodPost, path, nil, raw)
	if err != nil {
		return nil, err
	}
	v, err := do[T](c, req)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func do[T any](c *Client, req *http.Request) (T, error) {
	var zero T
	resp, err := c.http.Do(req)
	if err != nil {
		return zero, fmt.Errorf("backend request to %s failed: %w", c.baseURL, err)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return zero, fmt.Errorf("reading backend response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return zero, &APIError{StatusCode: resp.StatusCode, Message: errorMessage(raw)}
	}

	var env envelope[T]
	if err := json.Unmarshal(raw, &env); err != nil {
		return zero, fmt.Errorf("decoding backend response: %w", err)
	}
	return env.Data, nil
}

// errorMessage extracts a human-readable message from an error body,
// best effort.
func errorMessage(raw []byte) string {
	var body struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return ""
	}
	if body.Message != "" {
		return body.Message
	}
	return body.Error
}

func (c *Client) newRequest(ctx context.Context, method, path string, query url.Values, body []byte) (*http.Request, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reqBody io.Reader
	if len(body) > 0 {
		reqBody = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return nil, fmt.Errorf("building backend request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if len(body) > 0 {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	return req, nil
}

func formatID(id int64) string { return strconv.FormatInt(id, 10) }
