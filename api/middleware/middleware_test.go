package middleware_test

import (
	"net/http"
	"net/http/httptest"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/topoclimb/topoclimb-gateway/api/middleware"
	"github.com/topoclimb/topoclimb-gateway/config"
)

func newProtected(cfg config.Config) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.AdminAuth(cfg))
	r.GET("/protected", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func request(r *gin.Engine, user, pass string, withAuth bool) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(http.MethodGet, "/protected", nil)
	if withAuth {
		req.SetBasicAuth(user, pass)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

var _ = Describe("AdminAuth", func() {
	cfg := config.Config{AdminUser: "admin", AdminPassword: "hunter2"}

	It("rejects missing credentials with a challenge", func() {
		w := request(newProtected(cfg), "", "", false)
		Expect(w.Code).To(Equal(http.StatusUnauthorized))
		Expect(w.Header().Get("WWW-Authenticate")).To(ContainSubstring("Basic"))
	})

	It("rejects a wrong username", func() {
		w := request(newProtected(cfg), "root", "hunter2", true)
		Expect(w.Code).To(Equal(http.StatusUnauthorized))
	})

	It("rejects a wrong password", func() {
		w := request(newProtected(cfg), "admin", "hunter3", true)
		Expect(w.Code).To(Equal(http.StatusUnauthorized))
	})

	It("accepts matching plaintext configuration", func() {
		w := request(newProtected(cfg), "admin", "hunter2", true)
		Expect(w.Code).To(Equal(http.StatusOK))
	})

	It("accepts a pre-hashed password value", func() {
		hash, err := bcrypt.GenerateFromPassword([]byte("hunter2"), bcrypt.MinCost)
		Expect(err).NotTo(HaveOccurred())

		hashed := config.Config{AdminUser: "admin", AdminPassword: string(hash)}
		w := request(newProtected(hashed), "admin", "hunter2", true)
		Expect(w.Code).To(Equal(http.StatusOK))
	})

	It("disables the API when no password is configured", func() {
		w := request(newProtected(config.Config{AdminUser: "admin"}), "admin", "", true)
		Expect(w.Code).To(Equal(http.StatusForbidden))
	})
})

var _ = Describe("RequestLogger", func() {
	It("passes requests through and keeps the request id header", func() {
		gin.SetMode(gin.TestMode)
		r := gin.New()
		r.Use(requestid.New(), middleware.RequestLogger())
		r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })

		req, _ := http.NewRequest(http.MethodGet, "/ping", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(w.Header().Get("X-Request-Id")).NotTo(BeEmpty())
	})
})
