package api_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"golang.org/x/crypto/bcrypt"

	"github.com/topoclimb/topoclimb-gateway/registry"
)

func jsonBody(w *httptest.ResponseRecorder) map[string]interface{} {
	GinkgoHelper()
	var body map[string]interface{}
	Expect(json.Unmarshal(w.Body.Bytes(), &body)).To(Succeed())
	return body
}

func jsonList(w *httptest.ResponseRecorder) []map[string]interface{} {
	GinkgoHelper()
	var list []map[string]interface{}
	Expect(json.Unmarshal(w.Body.Bytes(), &list)).To(Succeed())
	return list
}

func sitesServer(body string) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(body))
	}))
}

var _ = Describe("Admin auth", func() {
	It("rejects requests without credentials", func() {
		h, _, _ := newRouter(testConfig())
		w := doGet(h, "/gateway/backends")
		Expect(w.Code).To(Equal(http.StatusUnauthorized))
	})

	It("rejects wrong credentials", func() {
		h, _, _ := newRouter(testConfig())
		req, _ := http.NewRequest(http.MethodGet, "/", nil)
		req.SetBasicAuth("admin", "wrong")
		w := doGet(h, "/gateway/backends", map[string]string{"Authorization": req.Header.Get("Authorization")})
		Expect(w.Code).To(Equal(http.StatusUnauthorized))
	})

	It("accepts a bcrypt hash as the configured password", func() {
		hash, err := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)
		Expect(err).NotTo(HaveOccurred())

		cfg := testConfig()
		cfg.AdminPassword = string(hash)
		h, _, _ := newRouter(cfg)
		w := doGet(h, "/gateway/backends", adminAuth())
		Expect(w.Code).To(Equal(http.StatusOK))
	})

	It("refuses everything when no password is configured", func() {
		cfg := testConfig()
		cfg.AdminPassword = ""
		h, _, _ := newRouter(cfg)
		w := doGet(h, "/gateway/backends", adminAuth())
		Expect(w.Code).To(Equal(http.StatusForbidden))
	})

	It("lets valid credentials through", func() {
		h, _, _ := newRouter(testConfig(), testEndpoint("A", "https://a.example.com/", true))
		w := doGet(h, "/gateway/backends", adminAuth())
		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(jsonList(w)).To(HaveLen(1))
	})
})

var _ = Describe("Endpoint admin API", func() {
	var (
		h   http.Handler
		reg *registry.Registry
		a   registry.Endpoint
	)

	BeforeEach(func() {
		a = testEndpoint("A", "https://a.example.com/", true)
		h, reg, _ = newRouter(testConfig(), a)
	})

	It("creates an endpoint and exposes it on the public list", func() {
		w := doPost(h, "/gateway/backends", map[string]interface{}{
			"name": "B", "base_url": "https://b.example.com/",
		}, adminAuth())
		Expect(w.Code).To(Equal(http.StatusCreated))
		Expect(jsonBody(w)["name"]).To(Equal("B"))

		list := doGet(h, "/api/backends")
		Expect(list.Code).To(Equal(http.StatusOK))
		Expect(jsonList(list)).To(HaveLen(2))
	})

	It("rejects a malformed base URL", func() {
		w := doPost(h, "/gateway/backends", map[string]interface{}{
			"name": "B", "base_url": "ftp://b.example.com/",
		}, adminAuth())
		Expect(w.Code).To(Equal(http.StatusBadRequest))
	})

	It("rejects a base URL without a trailing slash", func() {
		w := doPost(h, "/gateway/backends", map[string]interface{}{
			"name": "B", "base_url": "https://b.example.com",
		}, adminAuth())
		Expect(w.Code).To(Equal(http.StatusBadRequest))
	})

	It("rejects a duplicate base URL with 409", func() {
		w := doPost(h, "/gateway/backends", map[string]interface{}{
			"name": "A again", "base_url": "https://a.example.com/",
		}, adminAuth())
		Expect(w.Code).To(Equal(http.StatusConflict))
	})

	It("renames an endpoint in place", func() {
		w := doPatch(h, "/gateway/backends/"+a.ID.String(), map[string]interface{}{
			"name": "Renamed",
		}, adminAuth())
		Expect(w.Code).To(Equal(http.StatusOK))
		body := jsonBody(w)
		Expect(body["name"]).To(Equal("Renamed"))
		Expect(body["id"]).To(Equal(a.ID.String()))
	})

	It("returns 404 for an unknown endpoint id", func() {
		w := doGet(h, "/gateway/backends/"+uuid.NewString(), adminAuth())
		Expect(w.Code).To(Equal(http.StatusNotFound))
	})

	It("refuses to delete the last endpoint", func() {
		w := doDelete(h, "/gateway/backends/"+a.ID.String(), adminAuth())
		Expect(w.Code).To(Equal(http.StatusConflict))
		Expect(reg.List()).To(HaveLen(1))
	})

	It("refuses to disable the last enabled endpoint", func() {
		w := doPost(h, "/gateway/backends/"+a.ID.String()+"/enabled", map[string]interface{}{
			"enabled": false,
		}, adminAuth())
		Expect(w.Code).To(Equal(http.StatusConflict))
	})

	It("deletes a non-last endpoint", func() {
		b, err := reg.Add(context.Background(), testEndpoint("B", "https://b.example.com/", true))
		Expect(err).NotTo(HaveOccurred())

		w := doDelete(h, "/gateway/backends/"+b.ID.String(), adminAuth())
		Expect(w.Code).To(Equal(http.StatusNoContent))
		Expect(reg.List()).To(HaveLen(1))
	})

	It("marks exactly one endpoint default", func() {
		b, err := reg.Add(context.Background(), testEndpoint("B", "https://b.example.com/", true))
		Expect(err).NotTo(HaveOccurred())

		Expect(doPost(h, "/gateway/backends/"+a.ID.String()+"/default", nil, adminAuth()).Code).To(Equal(http.StatusOK))
		w := doPost(h, "/gateway/backends/"+b.ID.String()+"/default", nil, adminAuth())
		Expect(w.Code).To(Equal(http.StatusOK))

		def, ok := reg.GetDefault()
		Expect(ok).To(BeTrue())
		Expect(def.ID).To(Equal(b.ID))
	})
})

var _ = Describe("Backend login", func() {
	It("stores the token and user snapshot on success", func() {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			Expect(r.Method).To(Equal(http.MethodPost))
			Expect(r.URL.Path).To(Equal("/api/auth/login"))
			_, _ = w.Write([]byte(`{"data":{"token":"tok-1","user":{"id":7,"username":"alice","email":"alice@example.com"}}}`))
		}))
		defer srv.Close()

		ep := testEndpoint("Gym", srv.URL+"/", true)
		h, reg, _ := newRouter(testConfig(), ep)

		w := doPost(h, "/gateway/backends/"+ep.ID.String()+"/login", map[string]interface{}{
			"username": "alice", "password": "pw",
		}, adminAuth())

		Expect(w.Code).To(Equal(http.StatusOK))
		body := jsonBody(w)
		Expect(body["authenticated"]).To(BeTrue())
		// First authenticated endpoint becomes default.
		Expect(body["default"]).To(BeTrue())
		Expect(body).NotTo(HaveKey("auth_token"))

		stored, _ := reg.Get(ep.ID)
		Expect(stored.AuthToken).To(Equal("tok-1"))
		Expect(stored.User.Username).To(Equal("alice"))
	})

	It("maps a backend credential rejection to 401", func() {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"message":"invalid credentials"}`))
		}))
		defer srv.Close()

		ep := testEndpoint("Gym", srv.URL+"/", true)
		h, _, _ := newRouter(testConfig(), ep)

		w := doPost(h, "/gateway/backends/"+ep.ID.String()+"/login", map[string]interface{}{
			"username": "alice", "password": "nope",
		}, adminAuth())
		Expect(w.Code).To(Equal(http.StatusUnauthorized))
	})

	It("clears credentials on logout", func() {
		ep := testEndpoint("Gym", "https://gym.example.com/", true)
		h, reg, _ := newRouter(testConfig(), ep)
		_, err := reg.Authenticate(context.Background(), ep.ID, "tok", &registry.UserSnapshot{ID: 7, Username: "alice"})
		Expect(err).NotTo(HaveOccurred())

		w := doPost(h, "/gateway/backends/"+ep.ID.String()+"/logout", nil, adminAuth())
		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(jsonBody(w)["authenticated"]).To(BeFalse())

		stored, _ := reg.Get(ep.ID)
		Expect(stored.Authenticated()).To(BeFalse())
	})
})

var _ = Describe("Federated catalogue API", func() {
	It("merges sites from all enabled backends with provenance", func() {
		srvA := sitesServer(`{"data":[{"id":1,"name":"Crag A"}]}`)
		defer srvA.Close()
		srvB := sitesServer(`{"data":[{"id":1,"name":"Gym B"}]}`)
		defer srvB.Close()

		a := testEndpoint("A", srvA.URL+"/", true)
		b := testEndpoint("B", srvB.URL+"/", true)
		h, _, _ := newRouter(testConfig(), a, b)

		w := doGet(h, "/api/sites")
		Expect(w.Code).To(Equal(http.StatusOK))

		list := jsonList(w)
		Expect(list).To(HaveLen(2))
		Expect(list[0]["origin"].(map[string]interface{})["origin_name"]).To(Equal("A"))
		Expect(list[1]["origin"].(map[string]interface{})["origin_name"]).To(Equal("B"))
	})

	It("returns 503 when no backend is enabled", func() {
		h, _, _ := newRouter(testConfig(), testEndpoint("Off", "https://off.example.com/", false))
		w := doGet(h, "/api/sites")
		Expect(w.Code).To(Equal(http.StatusServiceUnavailable))
	})

	It("filters routes by grade window across backends", func() {
		srv := sitesServer(`{"data":[
			{"id":1,"name":"Easy","grade":"5c"},
			{"id":2,"name":"Mid","grade":"6b+"},
			{"id":3,"name":"Hard","grade":"8a"},
			{"id":4,"name":"Odd","grade":"???"}
		]}`)
		defer srv.Close()

		h, _, _ := newRouter(testConfig(), testEndpoint("A", srv.URL+"/", true))

		w := doGet(h, "/api/routes?min_grade=6a&max_grade=7a")
		Expect(w.Code).To(Equal(http.StatusOK))

		list := jsonList(w)
		Expect(list).To(HaveLen(1))
		Expect(list[0]["item"].(map[string]interface{})["name"]).To(Equal("Mid"))
	})

	It("rejects an unrecognized grade label", func() {
		h, _, _ := newRouter(testConfig(), testEndpoint("A", "https://a.example.com/", true))
		w := doGet(h, "/api/routes?min_grade=banana")
		Expect(w.Code).To(Equal(http.StatusBadRequest))
	})

	It("serves targeted reads from one named backend", func() {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			Expect(r.URL.Path).To(Equal("/api/routes/42"))
			_, _ = w.Write([]byte(`{"data":{"id":42,"site_id":1,"name":"Classic","grade":"7a"}}`))
		}))
		defer srv.Close()

		ep := testEndpoint("A", srv.URL+"/", true)
		h, _, _ := newRouter(testConfig(), ep)

		w := doGet(h, "/api/backends/"+ep.ID.String()+"/routes/42")
		Expect(w.Code).To(Equal(http.StatusOK))
		body := jsonBody(w)
		Expect(body["item"].(map[string]interface{})["name"]).To(Equal("Classic"))
		Expect(body["origin"].(map[string]interface{})["origin_id"]).To(Equal(ep.ID.String()))
	})

	It("returns 404 for an unknown backend id", func() {
		h, _, _ := newRouter(testConfig(), testEndpoint("A", "https://a.example.com/", true))
		w := doGet(h, "/api/backends/"+uuid.NewString()+"/routes/42")
		Expect(w.Code).To(Equal(http.StatusNotFound))
	})

	It("passes a backend 404 through on identity reads", func() {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"message":"no such route"}`))
		}))
		defer srv.Close()

		ep := testEndpoint("A", srv.URL+"/", true)
		h, _, _ := newRouter(testConfig(), ep)

		w := doGet(h, "/api/backends/"+ep.ID.String()+"/routes/42")
		Expect(w.Code).To(Equal(http.StatusNotFound))
	})

	It("records absorbed broadcast failures in the status endpoint", func() {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer srv.Close()
		ok := sitesServer(`{"data":[]}`)
		defer ok.Close()

		flaky := testEndpoint("Flaky", srv.URL+"/", true)
		h, _, _ := newRouter(testConfig(), flaky, testEndpoint("OK", ok.URL+"/", true))

		Expect(doGet(h, "/api/sites").Code).To(Equal(http.StatusOK))

		w := doGet(h, "/gateway/backends/status", adminAuth())
		Expect(w.Code).To(Equal(http.StatusOK))

		byName := map[string]map[string]interface{}{}
		for _, s := range jsonList(w) {
			byName[s["name"].(string)] = s
		}
		Expect(byName["Flaky"]["consecutive_failures"]).To(BeEquivalentTo(1))
		Expect(byName["OK"]["consecutive_failures"]).To(BeEquivalentTo(0))
	})
})

var _ = Describe("Broadcast cache", func() {
	It("serves repeated listings from cache and invalidates on endpoint changes", func() {
		var hits atomic.Int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			hits.Add(1)
			_, _ = w.Write([]byte(`{"data":[{"id":1,"name":"Crag A"}]}`))
		}))
		defer srv.Close()

		cfg := testConfig()
		cfg.BroadcastCacheTTL = time.Minute
		h, _, _ := newRouter(cfg, testEndpoint("A", srv.URL+"/", true))

		Expect(doGet(h, "/api/sites").Code).To(Equal(http.StatusOK))
		Expect(doGet(h, "/api/sites").Code).To(Equal(http.StatusOK))
		Expect(hits.Load()).To(Equal(int32(1)))

		// A mutation invalidates the cache through the events hub.
		w := doPost(h, "/gateway/backends", map[string]interface{}{
			"name": "B", "base_url": "https://b.example.com/", "enabled": false,
		}, adminAuth())
		Expect(w.Code).To(Equal(http.StatusCreated))

		Eventually(func() int32 {
			doGet(h, "/api/sites")
			return hits.Load()
		}).Should(BeNumerically(">=", 2))
	})
})

var _ = Describe("Topo image proxy", func() {
	// Minimal valid PNG header; enough for content sniffing.
	pngBytes := []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A, 0, 0, 0, 0}

	It("sniffs the content type when the backend lies", func() {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			Expect(r.URL.Path).To(Equal("/api/routes/5/topo"))
			w.Header().Set("Content-Type", "application/octet-stream")
			_, _ = w.Write(pngBytes)
		}))
		defer srv.Close()

		ep := testEndpoint("A", srv.URL+"/", true)
		h, _, _ := newRouter(testConfig(), ep)

		w := doGet(h, fmt.Sprintf("/api/backends/%s/routes/5/topo", ep.ID))
		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(w.Header().Get("Content-Type")).To(Equal("image/png"))
		Expect(w.Body.Bytes()).To(Equal(pngBytes))
	})

	It("rejects non-image payloads", func() {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("<html>not an image</html>"))
		}))
		defer srv.Close()

		ep := testEndpoint("A", srv.URL+"/", true)
		h, _, _ := newRouter(testConfig(), ep)

		w := doGet(h, fmt.Sprintf("/api/backends/%s/routes/5/topo", ep.ID))
		Expect(w.Code).To(Equal(http.StatusBadGateway))
	})
})

var _ = Describe("Events websocket", func() {
	It("pushes endpoint changes to connected clients", func() {
		h, reg, _ := newRouter(testConfig(), testEndpoint("A", "https://a.example.com/", true))

		srv := httptest.NewServer(h)
		defer srv.Close()

		wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/api/events"
		conn, resp, err := websocket.DefaultDialer.Dial(wsURL, nil)
		Expect(err).NotTo(HaveOccurred())
		if resp != nil {
			defer func() { _ = resp.Body.Close() }()
		}
		defer func() { _ = conn.Close() }()

		_, err = reg.Add(context.Background(), testEndpoint("B", "https://b.example.com/", true))
		Expect(err).NotTo(HaveOccurred())

		Expect(conn.SetReadDeadline(time.Now().Add(3 * time.Second))).To(Succeed())
		_, msg, err := conn.ReadMessage()
		Expect(err).NotTo(HaveOccurred())

		var event struct {
			Type      string                   `json:"type"`
			Endpoints []map[string]interface{} `json:"endpoints"`
		}
		Expect(json.Unmarshal(msg, &event)).To(Succeed())
		Expect(event.Type).To(Equal("endpoints_changed"))
		Expect(event.Endpoints).To(HaveLen(2))
	})
})

var _ = Describe("Health probes", func() {
	It("reports live and ready", func() {
		h, _, _ := newRouter(testConfig())
		Expect(doGet(h, "/health").Code).To(Equal(http.StatusOK))
		Expect(doGet(h, "/ready").Code).To(Equal(http.StatusOK))
	})

	It("returns JSON 404 for unknown paths", func() {
		h, _, _ := newRouter(testConfig())
		w := doGet(h, "/nope")
		Expect(w.Code).To(Equal(http.StatusNotFound))
		Expect(jsonBody(w)["error"]).To(Equal("endpoint not found"))
	})
})
