package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jellydator/ttlcache/v3"

	"github.com/topoclimb/topoclimb-gateway/federation"
	"github.com/topoclimb/topoclimb-gateway/grade"
	"github.com/topoclimb/topoclimb-gateway/topoclimb"
)

// CatalogueHandler serves federated catalogue reads: broadcast listings merged
// across all enabled backends, and identity reads against one named backend.
type CatalogueHandler struct {
	engine *federation.Engine
	cache  *ttlcache.Cache[string, json.RawMessage] // nil when caching is disabled
}

func NewCatalogueHandler(engine *federation.Engine, cacheTTL time.Duration) *CatalogueHandler {
	h := &CatalogueHandler{engine: engine}
	if cacheTTL > 0 {
		h.cache = newBroadcastCache(cacheTTL)
	}
	return h
}

// InvalidateCache drops all cached broadcast results. Called when the
// endpoint set changes, so a new or re-enabled backend shows up immediately.
func (h *CatalogueHandler) InvalidateCache() {
	if h.cache != nil {
		h.cache.DeleteAll()
	}
}

// Stop terminates the cache eviction loop.
func (h *CatalogueHandler) Stop() {
	if h.cache != nil {
		h.cache.Stop()
	}
}

// writeFederationError maps federation and backend errors onto HTTP statuses.
// A backend 404 passes through; other backend failures surface as 502 since
// the gateway itself is healthy.
func writeFederationError(c *gin.Context, err error) {
	var apiErr *topoclimb.APIError
	switch {
	case errors.Is(err, federation.ErrNoBackends):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "no enabled backends"})
	case errors.Is(err, federation.ErrBackendNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "backend not found"})
	case errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound:
		c.JSON(http.StatusNotFound, gin.H{"error": "not found on backend"})
	case errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusUnauthorized:
		c.JSON(http.StatusUnauthorized, gin.H{"error": "backend requires authentication"})
	case errors.As(err, &apiErr):
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusBadGateway, gin.H{"error": "backend unreachable: " + err.Error()})
	}
}

// respondCached serves the request from the broadcast cache when possible,
// otherwise runs fetch and caches the marshalled result. The cache key is the
// full request URI, so distinct filters cache independently.
func (h *CatalogueHandler) respondCached(c *gin.Context, fetch func() (any, error)) {
	key := c.Request.URL.RequestURI()
	if h.cache != nil {
		if item := h.cache.Get(key); item != nil {
			c.Data(http.StatusOK, "application/json; charset=utf-8", item.Value())
			return
		}
	}

	v, err := fetch()
	if err != nil {
		writeFederationError(c, err)
		return
	}
	raw, err := json.Marshal(v)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to encode response"})
		return
	}
	if h.cache != nil {
		h.cache.Set(key, raw, ttlcache.DefaultTTL)
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", raw)
}

func localID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return 0, false
	}
	return id, true
}

// ── Broadcast listings ───────────────────────────────────────────────────────

// Sites handles GET /api/sites.
func (h *CatalogueHandler) Sites(c *gin.Context) {
	h.respondCached(c, func() (any, error) {
		return federation.Broadcast(c.Request.Context(), h.engine,
			func(ctx context.Context, cl *topoclimb.Client) ([]topoclimb.Site, error) {
				return cl.Sites(ctx)
			})
	})
}

// Contests handles GET /api/contests.
func (h *CatalogueHandler) Contests(c *gin.Context) {
	h.respondCached(c, func() (any, error) {
		return federation.Broadcast(c.Request.Context(), h.engine,
			func(ctx context.Context, cl *topoclimb.Client) ([]topoclimb.Contest, error) {
				return cl.Contests(ctx, 0)
			})
	})
}

// Routes handles GET /api/routes. Style and grade-window filters are both
// forwarded to the backends and enforced locally, since not every backend
// honors the query parameters.
func (h *CatalogueHandler) Routes(c *gin.Context) {
	filter := topoclimb.RouteFilter{
		Style:    c.Query("style"),
		MinGrade: c.Query("min_grade"),
		MaxGrade: c.Query("max_grade"),
	}
	window, ok := gradeWindow(c, filter.MinGrade, filter.MaxGrade, nil)
	if !ok {
		return
	}

	h.respondCached(c, func() (any, error) {
		routes, err := federation.Broadcast(c.Request.Context(), h.engine,
			func(ctx context.Context, cl *topoclimb.Client) ([]topoclimb.Route, error) {
				return cl.Routes(ctx, filter)
			})
		if err != nil {
			return nil, err
		}

		filtered := make([]federation.Federated[topoclimb.Route], 0, len(routes))
		for _, r := range routes {
			if window.contains(r.Item, nil) {
				filtered = append(filtered, r)
			}
		}
		return filtered, nil
	})
}

// SearchUsers handles GET /api/users/search?q=...
func (h *CatalogueHandler) SearchUsers(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing query parameter q"})
		return
	}
	results, err := federation.Broadcast(c.Request.Context(), h.engine,
		func(ctx context.Context, cl *topoclimb.Client) ([]topoclimb.User, error) {
			return cl.SearchUsers(ctx, query)
		})
	if err != nil {
		writeFederationError(c, err)
		return
	}
	c.JSON(http.StatusOK, results)
}

// Friends handles GET /api/friends. Backends the gateway is not logged in to
// reject the request; those failures are absorbed like any other, so the
// merged list covers authenticated backends only.
func (h *CatalogueHandler) Friends(c *gin.Context) {
	friends, err := federation.Broadcast(c.Request.Context(), h.engine,
		func(ctx context.Context, cl *topoclimb.Client) ([]topoclimb.User, error) {
			return cl.Friends(ctx)
		})
	if err != nil {
		writeFederationError(c, err)
		return
	}
	c.JSON(http.StatusOK, friends)
}

// ── Identity reads (one named backend) ───────────────────────────────────────

// Site handles GET /api/backends/:id/sites/:siteId.
func (h *CatalogueHandler) Site(c *gin.Context) {
	id, ok := endpointID(c)
	if !ok {
		return
	}
	siteID, ok := localID(c, "siteId")
	if !ok {
		return
	}
	site, err := federation.One(c.Request.Context(), h.engine, id,
		func(ctx context.Context, cl *topoclimb.Client) (*topoclimb.Site, error) {
			return cl.Site(ctx, siteID)
		})
	if err != nil {
		writeFederationError(c, err)
		return
	}
	c.JSON(http.StatusOK, site)
}

// Areas handles GET /api/backends/:id/sites/:siteId/areas.
func (h *CatalogueHandler) Areas(c *gin.Context) {
	id, ok := endpointID(c)
	if !ok {
		return
	}
	siteID, ok := localID(c, "siteId")
	if !ok {
		return
	}
	areas, err := federation.One(c.Request.Context(), h.engine, id,
		func(ctx context.Context, cl *topoclimb.Client) ([]topoclimb.Area, error) {
			return cl.Areas(ctx, siteID)
		})
	if err != nil {
		writeFederationError(c, err)
		return
	}
	c.JSON(http.StatusOK, areas)
}

// Sectors handles GET /api/backends/:id/areas/:areaId/sectors.
func (h *CatalogueHandler) Sectors(c *gin.Context) {
	id, ok := endpointID(c)
	if !ok {
		return
	}
	areaID, ok := localID(c, "areaId")
	if !ok {
		return
	}
	sectors, err := federation.One(c.Request.Context(), h.engine, id,
		func(ctx context.Context, cl *topoclimb.Client) ([]topoclimb.Sector, error) {
			return cl.Sectors(ctx, areaID)
		})
	if err != nil {
		writeFederationError(c, err)
		return
	}
	c.JSON(http.StatusOK, sectors)
}

// Lines handles GET /api/backends/:id/sectors/:sectorId/lines.
func (h *CatalogueHandler) Lines(c *gin.Context) {
	id, ok := endpointID(c)
	if !ok {
		return
	}
	sectorID, ok := localID(c, "sectorId")
	if !ok {
		return
	}
	lines, err := federation.One(c.Request.Context(), h.engine, id,
		func(ctx context.Context, cl *topoclimb.Client) ([]topoclimb.Line, error) {
			return cl.Lines(ctx, sectorID)
		})
	if err != nil {
		writeFederationError(c, err)
		return
	}
	c.JSON(http.StatusOK, lines)
}

// BackendRoutes handles GET /api/backends/:id/routes with the full filter set.
// When the query names a site, that site's grading system drives the
// grade-window conversion, so table-based systems filter correctly.
func (h *CatalogueHandler) BackendRoutes(c *gin.Context) {
	id, ok := endpointID(c)
	if !ok {
		return
	}
	filter := topoclimb.RouteFilter{
		Style:    c.Query("style"),
		MinGrade: c.Query("min_grade"),
		MaxGrade: c.Query("max_grade"),
	}
	filter.SiteID, _ = strconv.ParseInt(c.Query("site_id"), 10, 64)
	filter.AreaID, _ = strconv.ParseInt(c.Query("area_id"), 10, 64)
	filter.LineID, _ = strconv.ParseInt(c.Query("line_id"), 10, 64)

	var sys *grade.System
	if filter.SiteID > 0 && (filter.MinGrade != "" || filter.MaxGrade != "") {
		site, err := federation.One(c.Request.Context(), h.engine, id,
			func(ctx context.Context, cl *topoclimb.Client) (*topoclimb.Site, error) {
				return cl.Site(ctx, filter.SiteID)
			})
		if err != nil {
			writeFederationError(c, err)
			return
		}
		sys = site.Item.GradingSystem
	}

	window, ok := gradeWindow(c, filter.MinGrade, filter.MaxGrade, sys)
	if !ok {
		return
	}

	routes, err := federation.One(c.Request.Context(), h.engine, id,
		func(ctx context.Context, cl *topoclimb.Client) ([]topoclimb.Route, error) {
			return cl.Routes(ctx, filter)
		})
	if err != nil {
		writeFederationError(c, err)
		return
	}

	filtered := make([]topoclimb.Route, 0, len(routes.Item))
	for _, r := range routes.Item {
		if window.contains(r, sys) {
			filtered = append(filtered, r)
		}
	}
	routes.Item = filtered
	c.JSON(http.StatusOK, routes)
}

// Route handles GET /api/backends/:id/routes/:routeId.
func (h *CatalogueHandler) Route(c *gin.Context) {
	id, ok := endpointID(c)
	if !ok {
		return
	}
	routeID, ok := localID(c, "routeId")
	if !ok {
		return
	}
	route, err := federation.One(c.Request.Context(), h.engine, id,
		func(ctx context.Context, cl *topoclimb.Client) (*topoclimb.Route, error) {
			return cl.Route(ctx, routeID)
		})
	if err != nil {
		writeFederationError(c, err)
		return
	}
	c.JSON(http.StatusOK, route)
}

// RouteLogs handles GET /api/backends/:id/routes/:routeId/logs.
func (h *CatalogueHandler) RouteLogs(c *gin.Context) {
	id, ok := endpointID(c)
	if !ok {
		return
	}
	routeID, ok := localID(c, "routeId")
	if !ok {
		return
	}
	logs, err := federation.One(c.Request.Context(), h.engine, id,
		func(ctx context.Context, cl *topoclimb.Client) ([]topoclimb.RouteLog, error) {
			return cl.RouteLogs(ctx, routeID)
		})
	if err != nil {
		writeFederationError(c, err)
		return
	}
	c.JSON(http.StatusOK, logs)
}

type createRouteLogRequest struct {
	AscentType string    `json:"ascent_type" binding:"required"`
	Comment    string    `json:"comment"`
	ClimbedAt  time.Time `json:"climbed_at"`
}

// CreateRouteLog handles POST /api/backends/:id/routes/:routeId/logs.
// Ascents are always recorded on the route's own backend, never federated.
func (h *CatalogueHandler) CreateRouteLog(c *gin.Context) {
	id, ok := endpointID(c)
	if !ok {
		return
	}
	routeID, ok := localID(c, "routeId")
	if !ok {
		return
	}
	var req createRouteLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.ClimbedAt.IsZero() {
		req.ClimbedAt = time.Now()
	}

	log, err := federation.One(c.Request.Context(), h.engine, id,
		func(ctx context.Context, cl *topoclimb.Client) (*topoclimb.RouteLog, error) {
			return cl.CreateRouteLog(ctx, routeID, topoclimb.RouteLog{
				RouteID:    routeID,
				AscentType: req.AscentType,
				Comment:    req.Comment,
				ClimbedAt:  req.ClimbedAt,
			})
		})
	if err != nil {
		writeFederationError(c, err)
		return
	}
	c.JSON(http.StatusCreated, log)
}

// ContestSteps handles GET /api/backends/:id/contests/:contestId/steps.
func (h *CatalogueHandler) ContestSteps(c *gin.Context) {
	id, ok := endpointID(c)
	if !ok {
		return
	}
	contestID, ok := localID(c, "contestId")
	if !ok {
		return
	}
	steps, err := federation.One(c.Request.Context(), h.engine, id,
		func(ctx context.Context, cl *topoclimb.Client) ([]topoclimb.ContestStep, error) {
			return cl.ContestSteps(ctx, contestID)
		})
	if err != nil {
		writeFederationError(c, err)
		return
	}
	c.JSON(http.StatusOK, steps)
}

// ContestRankings handles GET /api/backends/:id/contests/:contestId/steps/:stepId/rankings.
func (h *CatalogueHandler) ContestRankings(c *gin.Context) {
	id, ok := endpointID(c)
	if !ok {
		return
	}
	contestID, ok := localID(c, "contestId")
	if !ok {
		return
	}
	stepID, ok := localID(c, "stepId")
	if !ok {
		return
	}
	rankings, err := federation.One(c.Request.Context(), h.engine, id,
		func(ctx context.Context, cl *topoclimb.Client) ([]topoclimb.ContestRanking, error) {
			return cl.ContestRankings(ctx, contestID, stepID)
		})
	if err != nil {
		writeFederationError(c, err)
		return
	}
	c.JSON(http.StatusOK, rankings)
}

// UserProfile handles GET /api/backends/:id/users/:userId.
func (h *CatalogueHandler) UserProfile(c *gin.Context) {
	id, ok := endpointID(c)
	if !ok {
		return
	}
	userID, ok := localID(c, "userId")
	if !ok {
		return
	}
	user, err := federation.One(c.Request.Context(), h.engine, id,
		func(ctx context.Context, cl *topoclimb.Client) (*topoclimb.User, error) {
			return cl.UserProfile(ctx, userID)
		})
	if err != nil {
		writeFederationError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// UserRoutes handles GET /api/backends/:id/users/:userId/routes.
func (h *CatalogueHandler) UserRoutes(c *gin.Context) {
	id, ok := endpointID(c)
	if !ok {
		return
	}
	userID, ok := localID(c, "userId")
	if !ok {
		return
	}
	routes, err := federation.One(c.Request.Context(), h.engine, id,
		func(ctx context.Context, cl *topoclimb.Client) ([]topoclimb.Route, error) {
			return cl.UserRoutes(ctx, userID)
		})
	if err != nil {
		writeFederationError(c, err)
		return
	}
	c.JSON(http.StatusOK, routes)
}

// ── Grade-window filtering ───────────────────────────────────────────────────

// pointsWindow is a resolved grade window in normalized points.
type pointsWindow struct {
	min, max int
	active   bool
}

// gradeWindow resolves min/max grade labels against a grading system. An
// unrecognized label is a client error, never silently ignored.
func gradeWindow(c *gin.Context, minLabel, maxLabel string, sys *grade.System) (pointsWindow, bool) {
	w := pointsWindow{min: sys.MinPoints(), max: sys.MaxPoints()}
	if minLabel == "" && maxLabel == "" {
		return w, true
	}
	w.active = true

	if minLabel != "" {
		pts := grade.Encode(minLabel, sys)
		if pts == grade.Unknown {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unrecognized min_grade: " + minLabel})
			return w, false
		}
		w.min = pts
	}
	if maxLabel != "" {
		pts := grade.Encode(maxLabel, sys)
		if pts == grade.Unknown {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unrecognized max_grade: " + maxLabel})
			return w, false
		}
		w.max = pts
	}
	return w, true
}

// contains reports whether a route falls inside the window. Routes whose grade
// cannot be normalized are excluded from windowed results.
func (w pointsWindow) contains(r topoclimb.Route, sys *grade.System) bool {
	if !w.active {
		return true
	}
	pts := r.GradePoints
	if pts == 0 {
		pts = grade.Encode(r.Grade, sys)
	}
	if pts == grade.Unknown {
		return false
	}
	return pts >= w.min && pts <= w.max
}
