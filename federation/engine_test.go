package federation_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/google/uuid"

	"github.com/topoclimb/topoclimb-gateway/federation"
	"github.com/topoclimb/topoclimb-gateway/registry"
	"github.com/topoclimb/topoclimb-gateway/topoclimb"
)

var _ = Describe("Engine", func() {
	var (
		ctx    context.Context
		reg    *registry.Registry
		engine *federation.Engine
	)

	openRegistry := func(endpoints ...registry.Endpoint) {
		GinkgoHelper()
		var err error
		reg, err = registry.Open(ctx, &memStore{endpoints: endpoints}, "Default Backend", "https://unused.example.com/")
		Expect(err).NotTo(HaveOccurred())
		engine = federation.NewEngine(reg, federation.NewFactory(topoclimb.NewHTTPClient(5*time.Second)))
	}

	endpointFor := func(name, baseURL string, enabled bool) registry.Endpoint {
		return registry.Endpoint{
			ID: uuid.New(), Name: name, BaseURL: baseURL, Enabled: enabled,
			CreatedAt: time.Now(), UpdatedAt: time.Now(),
		}
	}

	routesServer := func(body string, status int) *httptest.Server {
		return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
			_, _ = w.Write([]byte(body))
		}))
	}

	fetchRoutes := func(ctx context.Context, c *topoclimb.Client) ([]topoclimb.Route, error) {
		return c.Routes(ctx, topoclimb.RouteFilter{})
	}

	BeforeEach(func() {
		ctx = context.Background()
	})

	Describe("Broadcast", func() {
		It("fails with ErrNoBackends when no backend is enabled", func() {
			// A stored-but-disabled endpoint: mutations can't produce this
			// state, but a stored set can contain it.
			openRegistry(endpointFor("Off", "https://off.example.com/", false))

			_, err := federation.Broadcast(ctx, engine, fetchRoutes)

			Expect(errors.Is(err, federation.ErrNoBackends)).To(BeTrue())
		})

		It("merges results from all enabled backends with their provenance", func() {
			srvA := routesServer(`{"data":[{"id":1,"name":"Crimpy","grade":"6a+"},{"id":2,"name":"Slopey","grade":"7a"}]}`, 200)
			defer srvA.Close()
			srvB := routesServer(`{"data":[{"id":1,"name":"Jugs","grade":"5c"}]}`, 200)
			defer srvB.Close()

			a := endpointFor("A", srvA.URL+"/", true)
			b := endpointFor("B", srvB.URL+"/", true)
			openRegistry(a, b)

			routes, err := federation.Broadcast(ctx, engine, fetchRoutes)

			Expect(err).NotTo(HaveOccurred())
			Expect(routes).To(HaveLen(3))
			Expect(routes[0].Origin.OriginID).To(Equal(a.ID))
			Expect(routes[1].Origin.OriginID).To(Equal(a.ID))
			Expect(routes[2].Origin.OriginID).To(Equal(b.ID))
			// Same local id from two backends stays two distinct entities.
			Expect(routes[0].Origin.GlobalID(routes[0].Item.ID)).
				NotTo(Equal(routes[2].Origin.GlobalID(routes[2].Item.ID)))
		})

		It("absorbs a failing backend and returns the others' results", func() {
			srvA := routesServer(`{"data":[{"id":1,"name":"Crimpy","grade":"6a+"},{"id":2,"name":"Slopey","grade":"7a"},{"id":3,"name":"Pinchy","grade":"6c"}]}`, 200)
			defer srvA.Close()
			srvB := routesServer(`{"error":"boom"}`, http.StatusInternalServerError)
			defer srvB.Close()

			a := endpointFor("A", srvA.URL+"/", true)
			b := endpointFor("B", srvB.URL+"/", true)
			openRegistry(a, b)

			routes, err := federation.Broadcast(ctx, engine, fetchRoutes)

			Expect(err).NotTo(HaveOccurred())
			Expect(routes).To(HaveLen(3))
			for _, r := range routes {
				Expect(r.Origin.OriginID).To(Equal(a.ID))
				Expect(r.Origin.OriginName).To(Equal("A"))
			}
		})

		It("absorbs an unreachable backend", func() {
			srvA := routesServer(`{"data":[{"id":1,"name":"Crimpy","grade":"6a+"}]}`, 200)
			defer srvA.Close()

			a := endpointFor("A", srvA.URL+"/", true)
			dead := endpointFor("Dead", "http://127.0.0.1:1/", true)
			openRegistry(a, dead)

			routes, err := federation.Broadcast(ctx, engine, fetchRoutes)

			Expect(err).NotTo(HaveOccurred())
			Expect(routes).To(HaveLen(1))
		})

		It("preserves registry order even when backends answer out of order", func() {
			slow := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				time.Sleep(80 * time.Millisecond)
				_, _ = w.Write([]byte(`{"data":[{"id":10,"name":"Slow","grade":"6a"}]}`))
			}))
			defer slow.Close()
			fast := routesServer(`{"data":[{"id":20,"name":"Fast","grade":"6b"}]}`, 200)
			defer fast.Close()

			openRegistry(
				endpointFor("Slow", slow.URL+"/", true),
				endpointFor("Fast", fast.URL+"/", true),
			)

			routes, err := federation.Broadcast(ctx, engine, fetchRoutes)

			Expect(err).NotTo(HaveOccurred())
			Expect(routes).To(HaveLen(2))
			Expect(routes[0].Item.Name).To(Equal("Slow"))
			Expect(routes[1].Item.Name).To(Equal("Fast"))
		})

		It("skips disabled backends", func() {
			srvA := routesServer(`{"data":[{"id":1,"name":"Crimpy","grade":"6a+"}]}`, 200)
			defer srvA.Close()
			srvB := routesServer(`{"data":[{"id":2,"name":"Hidden","grade":"8a"}]}`, 200)
			defer srvB.Close()

			openRegistry(
				endpointFor("A", srvA.URL+"/", true),
				endpointFor("B", srvB.URL+"/", false),
			)

			routes, err := federation.Broadcast(ctx, engine, fetchRoutes)

			Expect(err).NotTo(HaveOccurred())
			Expect(routes).To(HaveLen(1))
			Expect(routes[0].Item.Name).To(Equal("Crimpy"))
		})

		It("sends each backend's auth token", func() {
			var received string
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				received = r.Header.Get("Authorization")
				_, _ = w.Write([]byte(`{"data":[]}`))
			}))
			defer srv.Close()

			ep := endpointFor("Authed", srv.URL+"/", true)
			ep.AuthToken = "tok-42"
			openRegistry(ep)

			_, err := federation.Broadcast(ctx, engine, fetchRoutes)

			Expect(err).NotTo(HaveOccurred())
			Expect(received).To(Equal("Bearer tok-42"))
		})

		It("records absorbed failures in the backend statuses", func() {
			srvB := routesServer(`{"error":"boom"}`, http.StatusBadGateway)
			defer srvB.Close()

			b := endpointFor("Flaky", srvB.URL+"/", true)
			openRegistry(b)

			_, err := federation.Broadcast(ctx, engine, fetchRoutes)
			Expect(err).NotTo(HaveOccurred())
			_, err = federation.Broadcast(ctx, engine, fetchRoutes)
			Expect(err).NotTo(HaveOccurred())

			statuses := engine.Statuses()
			Expect(statuses).To(HaveLen(1))
			Expect(statuses[0].BackendID).To(Equal(b.ID))
			Expect(statuses[0].ConsecutiveFailures).To(Equal(2))
			Expect(statuses[0].LastError).To(ContainSubstring("502"))
		})
	})

	Describe("One", func() {
		It("fails with ErrBackendNotFound for an unknown id", func() {
			openRegistry(endpointFor("A", "https://a.example.com/", true))

			_, err := federation.One(ctx, engine, uuid.New(), func(ctx context.Context, c *topoclimb.Client) (*topoclimb.Area, error) {
				return c.Area(ctx, 5)
			})

			Expect(errors.Is(err, federation.ErrBackendNotFound)).To(BeTrue())
		})

		It("returns the fetched resource tagged with the backend's provenance", func() {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				Expect(r.URL.Path).To(Equal("/api/areas/5"))
				_, _ = w.Write([]byte(`{"data":{"id":5,"site_id":1,"name":"North Wall"}}`))
			}))
			defer srv.Close()

			ep := endpointFor("Gym", srv.URL+"/", true)
			openRegistry(ep)

			area, err := federation.One(ctx, engine, ep.ID, func(ctx context.Context, c *topoclimb.Client) (*topoclimb.Area, error) {
				return c.Area(ctx, 5)
			})

			Expect(err).NotTo(HaveOccurred())
			Expect(area.Item.Name).To(Equal("North Wall"))
			Expect(area.Origin.OriginID).To(Equal(ep.ID))
		})

		It("propagates fetch failures verbatim", func() {
			srv := routesServer(`{"message":"gone"}`, http.StatusNotFound)
			defer srv.Close()

			ep := endpointFor("Gym", srv.URL+"/", true)
			openRegistry(ep)

			_, err := federation.One(ctx, engine, ep.ID, func(ctx context.Context, c *topoclimb.Client) (*topoclimb.Area, error) {
				return c.Area(ctx, 5)
			})

			var apiErr *topoclimb.APIError
			Expect(errors.As(err, &apiErr)).To(BeTrue())
			Expect(apiErr.StatusCode).To(Equal(http.StatusNotFound))
		})

		It("works against disabled backends, since the caller named its target", func() {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"data":{"id":5,"site_id":1,"name":"Quiet Wall"}}`))
			}))
			defer srv.Close()

			ep := endpointFor("Disabled", srv.URL+"/", false)
			openRegistry(ep, endpointFor("Other", "https://other.example.com/", true))

			area, err := federation.One(ctx, engine, ep.ID, func(ctx context.Context, c *topoclimb.Client) (*topoclimb.Area, error) {
				return c.Area(ctx, 5)
			})

			Expect(err).NotTo(HaveOccurred())
			Expect(area.Item.Name).To(Equal("Quiet Wall"))
		})
	})
})
