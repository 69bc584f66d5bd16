package topoclimb_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestTopoclimb(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Topoclimb Client Suite")
}
