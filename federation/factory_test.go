package federation_test

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/google/uuid"

	"github.com/topoclimb/topoclimb-gateway/federation"
	"github.com/topoclimb/topoclimb-gateway/registry"
	"github.com/topoclimb/topoclimb-gateway/topoclimb"
)

var _ = Describe("Factory", func() {
	var factory *federation.Factory

	BeforeEach(func() {
		factory = federation.NewFactory(topoclimb.NewHTTPClient(5 * time.Second))
	})

	newEndpoint := func(name, url string) registry.Endpoint {
		return registry.Endpoint{ID: uuid.New(), Name: name, BaseURL: url, Enabled: true}
	}

	It("returns the same client for an unchanged endpoint", func() {
		ep := newEndpoint("Gym", "https://gym.example.com/")

		first := factory.Client(ep)
		second := factory.Client(ep)

		Expect(first).To(BeIdenticalTo(second))
	})

	It("returns the same client when only the name changed", func() {
		ep := newEndpoint("Gym", "https://gym.example.com/")
		first := factory.Client(ep)

		ep.Name = "Renamed Gym"
		second := factory.Client(ep)

		Expect(first).To(BeIdenticalTo(second))
	})

	It("rebuilds the client when the base URL changed", func() {
		ep := newEndpoint("Gym", "https://gym.example.com/")
		first := factory.Client(ep)

		ep.BaseURL = "https://moved.example.com/"
		second := factory.Client(ep)

		Expect(first).NotTo(BeIdenticalTo(second))
		Expect(second.BaseURL()).To(Equal("https://moved.example.com"))
	})

	It("caches per endpoint id, not per URL", func() {
		a := newEndpoint("A", "https://same.example.com/")
		b := newEndpoint("B", "https://same.example.com/")

		Expect(factory.Client(a)).NotTo(BeIdenticalTo(factory.Client(b)))
	})

	It("Remove drops one endpoint's client only", func() {
		a := newEndpoint("A", "https://a.example.com/")
		b := newEndpoint("B", "https://b.example.com/")
		firstA := factory.Client(a)
		firstB := factory.Client(b)

		factory.Remove(a.ID)

		Expect(factory.Client(a)).NotTo(BeIdenticalTo(firstA))
		Expect(factory.Client(b)).To(BeIdenticalTo(firstB))
	})

	It("Clear drops all cached clients", func() {
		a := newEndpoint("A", "https://a.example.com/")
		first := factory.Client(a)

		factory.Clear()

		Expect(factory.Client(a)).NotTo(BeIdenticalTo(first))
	})
})
