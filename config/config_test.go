package config_test

import (
	"os"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/topoclimb/topoclimb-gateway/config"
)

var _ = Describe("Load", func() {
	// Keys managed by these tests, saved and restored around each spec.
	var envKeys = []string{
		"DATABASE_URL", "LISTEN_ADDR", "EXTERNAL_URL",
		"DEFAULT_BACKEND_URL", "DEFAULT_BACKEND_NAME",
		"FANOUT_TIMEOUT", "BROADCAST_CACHE_TTL",
		"ADMIN_USER", "ADMIN_PASSWORD", "SHUTDOWN_TIMEOUT", "CORS_ORIGINS",
	}

	var saved map[string]string

	BeforeEach(func() {
		saved = make(map[string]string, len(envKeys))
		for _, k := range envKeys {
			saved[k] = os.Getenv(k)
			Expect(os.Unsetenv(k)).To(Succeed())
		}
	})

	AfterEach(func() {
		for k, v := range saved {
			if v == "" {
				Expect(os.Unsetenv(k)).To(Succeed())
			} else {
				Expect(os.Setenv(k, v)).To(Succeed())
			}
		}
	})

	It("returns defaults when no env vars are set", func() {
		cfg, err := config.Load()
		Expect(err).NotTo(HaveOccurred())

		Expect(cfg.ListenAddr).To(Equal(":8480"))
		Expect(cfg.ExternalURL).To(Equal("http://localhost:8480"))
		Expect(cfg.DefaultBackendURL).To(Equal("https://topoclimb.ch/"))
		Expect(cfg.DefaultBackendName).To(Equal("Default Backend"))
		Expect(cfg.FanOutTimeout).To(Equal(15 * time.Second))
		Expect(cfg.BroadcastCacheTTL).To(Equal(30 * time.Second))
		Expect(cfg.AdminUser).To(Equal("admin"))
		Expect(cfg.AdminPassword).To(BeEmpty())
		Expect(cfg.ShutdownTimeout).To(Equal(15 * time.Second))
		Expect(cfg.CORSOrigins).To(BeEmpty())
	})

	It("reads string values from env vars", func() {
		Expect(os.Setenv("DATABASE_URL", "postgres://custom:pass@db:5432/mydb?sslmode=disable")).To(Succeed())
		Expect(os.Setenv("LISTEN_ADDR", ":9090")).To(Succeed())
		Expect(os.Setenv("DEFAULT_BACKEND_URL", "https://climb.example.org/")).To(Succeed())
		Expect(os.Setenv("DEFAULT_BACKEND_NAME", "Home Wall")).To(Succeed())

		cfg, err := config.Load()
		Expect(err).NotTo(HaveOccurred())

		Expect(cfg.DatabaseURL).To(Equal("postgres://custom:pass@db:5432/mydb?sslmode=disable"))
		Expect(cfg.ListenAddr).To(Equal(":9090"))
		Expect(cfg.DefaultBackendURL).To(Equal("https://climb.example.org/"))
		Expect(cfg.DefaultBackendName).To(Equal("Home Wall"))
	})

	It("reads duration values from env vars", func() {
		Expect(os.Setenv("FANOUT_TIMEOUT", "5s")).To(Succeed())
		Expect(os.Setenv("BROADCAST_CACHE_TTL", "1m")).To(Succeed())

		cfg, err := config.Load()
		Expect(err).NotTo(HaveOccurred())

		Expect(cfg.FanOutTimeout).To(Equal(5 * time.Second))
		Expect(cfg.BroadcastCacheTTL).To(Equal(time.Minute))
	})

	It("returns an error for an invalid duration", func() {
		Expect(os.Setenv("FANOUT_TIMEOUT", "not-a-duration")).To(Succeed())

		_, err := config.Load()
		Expect(err).To(HaveOccurred())
	})

	It("splits CORS origins on commas", func() {
		Expect(os.Setenv("CORS_ORIGINS", "https://a.example.com,https://b.example.com")).To(Succeed())

		cfg, err := config.Load()
		Expect(err).NotTo(HaveOccurred())

		Expect(cfg.CORSOrigins).To(Equal([]string{"https://a.example.com", "https://b.example.com"}))
	})
})
