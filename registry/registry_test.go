package registry_test

import (
	"context"
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/topoclimb/topoclimb-gateway/registry"
)

const (
	seedName = "Default Backend"
	seedURL  = "https://topoclimb.ch/"
)

// failingStore wraps a Store and fails every Save once armed. Used to verify
// the persist-then-publish guarantee.
type failingStore struct {
	inner registry.Store
	fail  bool
}

func (s *failingStore) Load(ctx context.Context) ([]registry.Endpoint, error) {
	return s.inner.Load(ctx)
}

func (s *failingStore) Save(ctx context.Context, endpoints []registry.Endpoint) error {
	if s.fail {
		return errors.New("disk full")
	}
	return s.inner.Save(ctx, endpoints)
}

var _ = Describe("Registry", func() {
	var (
		ctx   context.Context
		store *failingStore
		reg   *registry.Registry
	)

	BeforeEach(func() {
		ctx = context.Background()
		cleanDB()
		store = &failingStore{inner: registry.NewEntStore(db)}

		var err error
		reg, err = registry.Open(ctx, store, seedName, seedURL)
		Expect(err).NotTo(HaveOccurred())
	})

	addEndpoint := func(name, url string) registry.Endpoint {
		GinkgoHelper()
		ep, err := reg.Add(ctx, registry.Endpoint{Name: name, BaseURL: url, Enabled: true})
		Expect(err).NotTo(HaveOccurred())
		return ep
	}

	Describe("Open", func() {
		It("seeds a single enabled default-named endpoint on first run", func() {
			endpoints := reg.List()
			Expect(endpoints).To(HaveLen(1))
			Expect(endpoints[0].Name).To(Equal(seedName))
			Expect(endpoints[0].BaseURL).To(Equal(seedURL))
			Expect(endpoints[0].Enabled).To(BeTrue())
		})

		It("persists the seed so a reopen sees it without reseeding", func() {
			first := reg.List()

			reopened, err := registry.Open(ctx, store, seedName, seedURL)
			Expect(err).NotTo(HaveOccurred())

			endpoints := reopened.List()
			Expect(endpoints).To(HaveLen(1))
			Expect(endpoints[0].ID).To(Equal(first[0].ID))
		})

		It("does not seed when endpoints are already stored", func() {
			addEndpoint("My Gym", "https://gym.example.com/")

			reopened, err := registry.Open(ctx, store, seedName, seedURL)
			Expect(err).NotTo(HaveOccurred())
			Expect(reopened.List()).To(HaveLen(2))
		})
	})

	Describe("Add", func() {
		It("appends a valid endpoint and lists it among enabled ones", func() {
			ep := addEndpoint("My Gym", "https://gym.example.com/")

			Expect(ep.ID).NotTo(BeZero())
			enabled := reg.ListEnabled()
			Expect(enabled).To(HaveLen(2))
			Expect(enabled[1].Name).To(Equal("My Gym"))
		})

		It("rejects a URL without an http(s) scheme", func() {
			_, err := reg.Add(ctx, registry.Endpoint{Name: "Bad", BaseURL: "ftp://x/", Enabled: true})
			Expect(errors.Is(err, registry.ErrInvalidURL)).To(BeTrue())
			Expect(reg.List()).To(HaveLen(1))
		})

		It("rejects a URL without a trailing slash", func() {
			_, err := reg.Add(ctx, registry.Endpoint{Name: "Bad", BaseURL: "https://x.example.com", Enabled: true})
			Expect(errors.Is(err, registry.ErrInvalidURL)).To(BeTrue())
		})

		It("rejects a blank URL", func() {
			_, err := reg.Add(ctx, registry.Endpoint{Name: "Bad", BaseURL: "  ", Enabled: true})
			Expect(errors.Is(err, registry.ErrInvalidURL)).To(BeTrue())
		})

		It("rejects a duplicate base URL", func() {
			_, err := reg.Add(ctx, registry.Endpoint{Name: "Copy", BaseURL: seedURL, Enabled: true})
			Expect(errors.Is(err, registry.ErrDuplicateURL)).To(BeTrue())
			Expect(reg.List()).To(HaveLen(1))
		})

		It("clears the default flag on others when the new endpoint is default", func() {
			first := reg.List()[0]
			_, err := reg.SetDefault(ctx, first.ID)
			Expect(err).NotTo(HaveOccurred())

			ep, err := reg.Add(ctx, registry.Endpoint{
				Name: "New Default", BaseURL: "https://new.example.com/", Enabled: true, Default: true,
			})
			Expect(err).NotTo(HaveOccurred())

			def, ok := reg.GetDefault()
			Expect(ok).To(BeTrue())
			Expect(def.ID).To(Equal(ep.ID))
		})
	})

	Describe("Update", func() {
		It("replaces the matching endpoint and refreshes its update timestamp", func() {
			ep := addEndpoint("My Gym", "https://gym.example.com/")

			ep.Name = "Renamed Gym"
			updated, err := reg.Update(ctx, ep)
			Expect(err).NotTo(HaveOccurred())

			Expect(updated.Name).To(Equal("Renamed Gym"))
			Expect(updated.CreatedAt).To(Equal(ep.CreatedAt))
			Expect(updated.UpdatedAt).To(BeTemporally(">=", ep.UpdatedAt))

			got, ok := reg.Get(ep.ID)
			Expect(ok).To(BeTrue())
			Expect(got.Name).To(Equal("Renamed Gym"))
		})

		It("accepts an update keeping the endpoint's own URL", func() {
			ep := addEndpoint("My Gym", "https://gym.example.com/")

			_, err := reg.Update(ctx, ep)
			Expect(err).NotTo(HaveOccurred())
		})

		It("rejects moving to a URL owned by a different endpoint", func() {
			ep := addEndpoint("My Gym", "https://gym.example.com/")

			ep.BaseURL = seedURL
			_, err := reg.Update(ctx, ep)
			Expect(errors.Is(err, registry.ErrDuplicateURL)).To(BeTrue())
		})

		It("fails for an unknown id", func() {
			ghost := addEndpoint("Other", "https://other.example.com/")
			Expect(reg.Delete(ctx, ghost.ID)).To(Succeed())

			ghost.Name = "Back"
			_, err := reg.Update(ctx, ghost)
			Expect(errors.Is(err, registry.ErrNotFound)).To(BeTrue())
		})
	})

	Describe("Delete", func() {
		It("rejects deleting the last remaining endpoint", func() {
			only := reg.List()[0]
			Expect(reg.Delete(ctx, only.ID)).To(MatchError(registry.ErrLastEndpoint))
			Expect(reg.List()).To(HaveLen(1))
		})

		It("removes an endpoint when others remain", func() {
			ep := addEndpoint("My Gym", "https://gym.example.com/")

			Expect(reg.Delete(ctx, ep.ID)).To(Succeed())
			Expect(reg.List()).To(HaveLen(1))
			_, ok := reg.Get(ep.ID)
			Expect(ok).To(BeFalse())
		})

		It("never lets the set become empty across add/delete sequences", func() {
			a := addEndpoint("A", "https://a.example.com/")
			b := addEndpoint("B", "https://b.example.com/")

			Expect(reg.Delete(ctx, a.ID)).To(Succeed())
			Expect(reg.Delete(ctx, b.ID)).To(Succeed())
			Expect(reg.Delete(ctx, reg.List()[0].ID)).To(MatchError(registry.ErrLastEndpoint))
			Expect(reg.List()).To(HaveLen(1))
		})
	})

	Describe("SetEnabled", func() {
		It("rejects disabling the only enabled endpoint and leaves it enabled", func() {
			only := reg.List()[0]

			_, err := reg.SetEnabled(ctx, only.ID, false)
			Expect(errors.Is(err, registry.ErrNoEnabledEndpoint)).To(BeTrue())

			got, _ := reg.Get(only.ID)
			Expect(got.Enabled).To(BeTrue())
		})

		It("disables an endpoint when another remains enabled", func() {
			ep := addEndpoint("My Gym", "https://gym.example.com/")

			updated, err := reg.SetEnabled(ctx, ep.ID, false)
			Expect(err).NotTo(HaveOccurred())
			Expect(updated.Enabled).To(BeFalse())

			enabled := reg.ListEnabled()
			Expect(enabled).To(HaveLen(1))
			Expect(enabled[0].Name).To(Equal(seedName))
		})

		It("re-enables a disabled endpoint", func() {
			ep := addEndpoint("My Gym", "https://gym.example.com/")
			_, err := reg.SetEnabled(ctx, ep.ID, false)
			Expect(err).NotTo(HaveOccurred())

			updated, err := reg.SetEnabled(ctx, ep.ID, true)
			Expect(err).NotTo(HaveOccurred())
			Expect(updated.Enabled).To(BeTrue())
			Expect(reg.ListEnabled()).To(HaveLen(2))
		})
	})

	Describe("SetDefault", func() {
		It("marks exactly one endpoint default at any time", func() {
			a := addEndpoint("A", "https://a.example.com/")
			b := addEndpoint("B", "https://b.example.com/")

			_, err := reg.SetDefault(ctx, a.ID)
			Expect(err).NotTo(HaveOccurred())
			_, err = reg.SetDefault(ctx, b.ID)
			Expect(err).NotTo(HaveOccurred())

			defaults := 0
			for _, ep := range reg.List() {
				if ep.Default {
					defaults++
					Expect(ep.ID).To(Equal(b.ID))
				}
			}
			Expect(defaults).To(Equal(1))
		})
	})

	Describe("Authenticate and Logout", func() {
		It("stores the token and user snapshot", func() {
			ep := addEndpoint("My Gym", "https://gym.example.com/")

			authed, err := reg.Authenticate(ctx, ep.ID, "tok-123", &registry.UserSnapshot{
				ID: 42, Username: "lynn", Email: "lynn@example.com",
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(authed.Authenticated()).To(BeTrue())
			Expect(authed.User.Username).To(Equal("lynn"))
		})

		It("becomes default when no endpoint is default yet", func() {
			ep := addEndpoint("My Gym", "https://gym.example.com/")

			authed, err := reg.Authenticate(ctx, ep.ID, "tok", nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(authed.Default).To(BeTrue())
		})

		It("does not steal the default flag from another endpoint", func() {
			first := reg.List()[0]
			_, err := reg.SetDefault(ctx, first.ID)
			Expect(err).NotTo(HaveOccurred())

			ep := addEndpoint("My Gym", "https://gym.example.com/")
			authed, err := reg.Authenticate(ctx, ep.ID, "tok", nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(authed.Default).To(BeFalse())

			def, _ := reg.GetDefault()
			Expect(def.ID).To(Equal(first.ID))
		})

		It("logout clears credentials and the default flag", func() {
			ep := addEndpoint("My Gym", "https://gym.example.com/")
			_, err := reg.Authenticate(ctx, ep.ID, "tok", &registry.UserSnapshot{ID: 1, Username: "u"})
			Expect(err).NotTo(HaveOccurred())

			out, err := reg.Logout(ctx, ep.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(out.Authenticated()).To(BeFalse())
			Expect(out.User).To(BeNil())
			Expect(out.Default).To(BeFalse())
		})
	})

	Describe("GetDefault", func() {
		It("falls back to the first authenticated endpoint when none is flagged", func() {
			a := reg.List()[0]
			b := addEndpoint("B", "https://b.example.com/")

			_, err := reg.SetDefault(ctx, a.ID)
			Expect(err).NotTo(HaveOccurred())
			// a holds the default flag, so b stays authenticated-only.
			_, err = reg.Authenticate(ctx, b.ID, "tok", nil)
			Expect(err).NotTo(HaveOccurred())
			// Logout clears a's default flag, leaving nobody flagged.
			_, err = reg.Logout(ctx, a.ID)
			Expect(err).NotTo(HaveOccurred())

			def, ok := reg.GetDefault()
			Expect(ok).To(BeTrue())
			Expect(def.ID).To(Equal(b.ID))
		})

		It("returns nothing when no endpoint is default or authenticated", func() {
			_, ok := reg.GetDefault()
			Expect(ok).To(BeFalse())
		})
	})

	Describe("persistence failures", func() {
		It("leaves the in-memory set untouched when Save fails", func() {
			store.fail = true

			_, err := reg.Add(ctx, registry.Endpoint{Name: "Doomed", BaseURL: "https://doomed.example.com/", Enabled: true})
			Expect(err).To(HaveOccurred())
			Expect(reg.List()).To(HaveLen(1))

			store.fail = false
			addEndpoint("Recovered", "https://recovered.example.com/")
			Expect(reg.List()).To(HaveLen(2))
		})
	})

	Describe("Subscribe", func() {
		It("delivers the new snapshot after each successful mutation", func() {
			ch, cancel := reg.Subscribe()
			defer cancel()

			addEndpoint("My Gym", "https://gym.example.com/")

			var snap []registry.Endpoint
			Eventually(ch).Should(Receive(&snap))
			Expect(snap).To(HaveLen(2))
		})

		It("does not publish when persistence fails", func() {
			ch, cancel := reg.Subscribe()
			defer cancel()

			store.fail = true
			_, err := reg.Add(ctx, registry.Endpoint{Name: "Doomed", BaseURL: "https://doomed.example.com/", Enabled: true})
			Expect(err).To(HaveOccurred())
			Consistently(ch).ShouldNot(Receive())
		})

		It("keeps only the most recent snapshot for a slow subscriber", func() {
			ch, cancel := reg.Subscribe()
			defer cancel()

			addEndpoint("A", "https://a.example.com/")
			addEndpoint("B", "https://b.example.com/")

			var snap []registry.Endpoint
			Eventually(ch).Should(Receive(&snap))
			Expect(snap).To(HaveLen(3))
		})
	})
})
