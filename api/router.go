package api

import (
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"

	"github.com/topoclimb/topoclimb-gateway/api/handler"
	"github.com/topoclimb/topoclimb-gateway/api/middleware"
	"github.com/topoclimb/topoclimb-gateway/config"
	"github.com/topoclimb/topoclimb-gateway/ent"
	"github.com/topoclimb/topoclimb-gateway/federation"
)

// corsMiddleware returns a gin-contrib/cors middleware configured with the
// gateway's allowed origins. Credentialed origins from ExternalURL +
// CORSOrigins are accepted with credentials. Unknown origins receive a
// wildcard Allow-Origin without credentials so public resources (topo images)
// still work.
func corsMiddleware(cfg config.Config) gin.HandlerFunc {
	allowed := buildAllowedOrigins(cfg.ExternalURL)
	for _, o := range cfg.CORSOrigins {
		allowed[strings.ToLower(o)] = true
	}

	return cors.New(cors.Config{
		AllowOriginWithContextFunc: func(c *gin.Context, origin string) bool {
			if !allowed[strings.ToLower(origin)] {
				c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
				c.Writer.Header().Del("Access-Control-Allow-Credentials")
			}
			return true
		},
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS", "HEAD"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Content-Length", "Accept", "Accept-Encoding", "Authorization", "X-Request-Id", "User-Agent", "X-Requested-With", "Cache-Control", "Pragma"},
		ExposeHeaders:    []string{"Content-Length", "Content-Type", "X-Request-Id"},
		AllowCredentials: true,
		MaxAge:           24 * time.Hour,
	})
}

// NewRouter builds the gateway's HTTP handler and returns it together with a
// cleanup function that cancels the registry subscription and stops the
// broadcast cache. Call the cleanup during shutdown.
func NewRouter(db *ent.Client, cfg config.Config, engine *federation.Engine, hub *handler.EventsHub) (http.Handler, func()) {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery(), requestid.New(), middleware.RequestLogger(), corsMiddleware(cfg))

	endpointH := handler.NewEndpointHandler(engine.Registry(), engine.Factory())
	catalogueH := handler.NewCatalogueHandler(engine, cfg.BroadcastCacheTTL)
	systemH := handler.NewSystemHandler(db, engine)
	topoH := handler.NewTopoHandler(engine)

	// Endpoint changes invalidate cached broadcast results and reach
	// WebSocket listeners through the hub.
	sub, cancelSub := engine.Registry().Subscribe()
	go hub.Watch(sub, catalogueH.InvalidateCache)

	// Public federated API consumed by the mobile app.
	pub := r.Group("/api")
	{
		pub.GET("/backends", endpointH.ListEndpoints)

		pub.GET("/sites", catalogueH.Sites)
		pub.GET("/routes", catalogueH.Routes)
		pub.GET("/contests", catalogueH.Contests)
		pub.GET("/friends", catalogueH.Friends)
		pub.GET("/users/search", catalogueH.SearchUsers)

		pub.GET("/backends/:id/sites/:siteId", catalogueH.Site)
		pub.GET("/backends/:id/sites/:siteId/areas", catalogueH.Areas)
		pub.GET("/backends/:id/areas/:areaId/sectors", catalogueH.Sectors)
		pub.GET("/backends/:id/sectors/:sectorId/lines", catalogueH.Lines)
		pub.GET("/backends/:id/routes", catalogueH.BackendRoutes)
		pub.GET("/backends/:id/routes/:routeId", catalogueH.Route)
		pub.GET("/backends/:id/routes/:routeId/logs", catalogueH.RouteLogs)
		pub.POST("/backends/:id/routes/:routeId/logs", catalogueH.CreateRouteLog)
		pub.GET("/backends/:id/routes/:routeId/topo", topoH.GetTopoImage)
		pub.GET("/backends/:id/contests/:contestId/steps", catalogueH.ContestSteps)
		pub.GET("/backends/:id/contests/:contestId/steps/:stepId/rankings", catalogueH.ContestRankings)
		pub.GET("/backends/:id/users/:userId", catalogueH.UserProfile)
		pub.GET("/backends/:id/users/:userId/routes", catalogueH.UserRoutes)

		pub.GET("/events", handler.EventsHandler(hub))
	}

	// Gateway admin API: endpoint mutations and diagnostics.
	admin := r.Group("/gateway")
	admin.Use(middleware.AdminAuth(cfg))
	{
		admin.GET("/backends", endpointH.ListEndpoints)
		admin.POST("/backends", endpointH.CreateEndpoint)
		admin.GET("/backends/status", systemH.BackendStatuses)
		admin.GET("/backends/:id", endpointH.GetEndpoint)
		admin.PATCH("/backends/:id", endpointH.UpdateEndpoint)
		admin.DELETE("/backends/:id", endpointH.DeleteEndpoint)
		admin.POST("/backends/:id/enabled", endpointH.SetEnabled)
		admin.POST("/backends/:id/default", endpointH.SetDefault)
		admin.POST("/backends/:id/login", endpointH.Login)
		admin.POST("/backends/:id/logout", endpointH.Logout)
	}

	// Health probes — unauthenticated, for container orchestrators.
	r.GET("/health", systemH.HealthLive)
	r.GET("/ready", systemH.HealthReady)

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "endpoint not found"})
	})

	cleanup := func() {
		cancelSub()
		catalogueH.Stop()
	}
	return r, cleanup
}

// buildAllowedOrigins returns a set of lower-cased origin strings that are
// allowed to make credentialed cross-origin requests. It derives the origins
// from the configured ExternalURL and also includes its http/https counterpart
// so that both schemes work during development.
func buildAllowedOrigins(externalURL string) map[string]bool {
	origins := make(map[string]bool)
	if externalURL == "" {
		return origins
	}
	parsed, err := url.Parse(externalURL)
	if err != nil {
		origins[strings.ToLower(externalURL)] = true
		return origins
	}
	// Origin = scheme://host (no trailing slash, no path).
	origin := strings.ToLower(parsed.Scheme + "://" + parsed.Host)
	origins[origin] = true
	switch parsed.Scheme {
	case "https":
		origins["http://"+strings.ToLower(parsed.Host)] = true
	case "http":
		origins["https://"+strings.ToLower(parsed.Host)] = true
	}
	return origins
}
