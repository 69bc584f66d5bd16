package topoclimb_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/topoclimb/topoclimb-gateway/topoclimb"
)

var _ = Describe("Client", func() {
	var (
		ctx        context.Context
		httpClient *http.Client
	)

	BeforeEach(func() {
		ctx = context.Background()
		httpClient = topoclimb.NewHTTPClient(5 * time.Second)
	})

	newClient := func(baseURL string) *topoclimb.Client {
		return topoclimb.New(baseURL, httpClient)
	}

	Describe("Sites", func() {
		It("unwraps the data envelope", func() {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				Expect(r.URL.Path).To(Equal("/api/sites"))
				Expect(r.Header.Get("Accept")).To(Equal("application/json"))
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(`{"data":[{"id":1,"name":"Verdon"},{"id":2,"name":"City Gym"}]}`))
			}))
			defer srv.Close()

			sites, err := newClient(srv.URL + "/").Sites(ctx)

			Expect(err).NotTo(HaveOccurred())
			Expect(sites).To(HaveLen(2))
			Expect(sites[0].Name).To(Equal("Verdon"))
		})

		It("decodes a site's grading system table", func() {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"data":{"id":1,"name":"Boulder Barn",
					"grading_system":{"free_form":true,"hint":"V-scale","table":{"V1":410,"V5":650}}}}`))
			}))
			defer srv.Close()

			site, err := newClient(srv.URL + "/").Site(ctx, 1)

			Expect(err).NotTo(HaveOccurred())
			Expect(site.GradingSystem).NotTo(BeNil())
			Expect(site.GradingSystem.FreeForm).To(BeTrue())
			Expect(site.GradingSystem.Table).To(HaveKeyWithValue("V5", 650))
		})
	})

	Describe("Routes", func() {
		It("sends filter fields as query parameters", func() {
			var query map[string][]string
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				query = r.URL.Query()
				_, _ = w.Write([]byte(`{"data":[]}`))
			}))
			defer srv.Close()

			_, err := newClient(srv.URL + "/").Routes(ctx, topoclimb.RouteFilter{
				SiteID:   3,
				Style:    "boulder",
				MinGrade: "6a",
				MaxGrade: "7c+",
			})

			Expect(err).NotTo(HaveOccurred())
			Expect(query).To(HaveKeyWithValue("site_id", []string{"3"}))
			Expect(query).To(HaveKeyWithValue("style", []string{"boulder"}))
			Expect(query).To(HaveKeyWithValue("min_grade", []string{"6a"}))
			Expect(query).To(HaveKeyWithValue("max_grade", []string{"7c+"}))
			Expect(query).NotTo(HaveKey("area_id"))
		})
	})

	Describe("authentication", func() {
		It("sends a bearer token on derived clients only", func() {
			var authHeaders []string
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				authHeaders = append(authHeaders, r.Header.Get("Authorization"))
				_, _ = w.Write([]byte(`{"data":[]}`))
			}))
			defer srv.Close()

			c := newClient(srv.URL + "/")
			_, err := c.Sites(ctx)
			Expect(err).NotTo(HaveOccurred())
			_, err = c.WithToken("secret").Friends(ctx)
			Expect(err).NotTo(HaveOccurred())
			// The original client stays unauthenticated.
			_, err = c.Sites(ctx)
			Expect(err).NotTo(HaveOccurred())

			Expect(authHeaders).To(Equal([]string{"", "Bearer secret", ""}))
		})
	})

	Describe("CreateRouteLog", func() {
		It("posts the log as JSON and returns the stored record", func() {
			var received topoclimb.RouteLog
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				Expect(r.Method).To(Equal(http.MethodPost))
				Expect(r.URL.Path).To(Equal("/api/routes/9/logs"))
				Expect(r.Header.Get("Content-Type")).To(Equal("application/json"))
				raw, _ := io.ReadAll(r.Body)
				Expect(json.Unmarshal(raw, &received)).To(Succeed())
				w.WriteHeader(http.StatusCreated)
				_, _ = w.Write([]byte(`{"data":{"id":77,"route_id":9,"ascent_type":"flash"}}`))
			}))
			defer srv.Close()

			log, err := newClient(srv.URL+"/").CreateRouteLog(ctx, 9, topoclimb.RouteLog{
				AscentType: "flash",
				Comment:    "felt easy",
			})

			Expect(err).NotTo(HaveOccurred())
			Expect(log.ID).To(Equal(int64(77)))
			Expect(received.AscentType).To(Equal("flash"))
			Expect(received.Comment).To(Equal("felt easy"))
		})
	})

	Describe("error handling", func() {
		It("returns an APIError with the backend's message on non-2xx", func() {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusUnauthorized)
				_, _ = w.Write([]byte(`{"message":"invalid credentials"}`))
			}))
			defer srv.Close()

			_, err := newClient(srv.URL + "/").Login(ctx, "x", "y")

			var apiErr *topoclimb.APIError
			Expect(errors.As(err, &apiErr)).To(BeTrue())
			Expect(apiErr.StatusCode).To(Equal(http.StatusUnauthorized))
			Expect(apiErr.Message).To(Equal("invalid credentials"))
		})

		It("returns an error when the backend is unreachable", func() {
			_, err := newClient("http://127.0.0.1:1/").Sites(ctx)
			Expect(err).To(HaveOccurred())
		})

		It("returns an error for a malformed envelope", func() {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`not json`))
			}))
			defer srv.Close()

			_, err := newClient(srv.URL + "/").Sites(ctx)
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("TopoImage", func() {
		It("returns raw bytes and the declared content type", func() {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				Expect(r.URL.Path).To(Equal("/api/routes/4/topo"))
				w.Header().Set("Content-Type", "image/svg+xml")
				_, _ = w.Write([]byte("<svg/>"))
			}))
			defer srv.Close()

			body, ct, err := newClient(srv.URL + "/").TopoImage(ctx, 4)

			Expect(err).NotTo(HaveOccurred())
			Expect(string(body)).To(Equal("<svg/>"))
			Expect(ct).To(Equal("image/svg+xml"))
		})
	})
})
