package grade_test

import (
	"fmt"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/topoclimb/topoclimb-gateway/grade"
)

// mustDecode asserts the value decodes and returns the label.
func mustDecode(points int, sys *grade.System) string {
	GinkgoHelper()
	label, ok := grade.Decode(points, sys)
	Expect(ok).To(BeTrue(), "expected %d to decode", points)
	return label
}

var _ = Describe("Encode", func() {
	It("encodes plain French grades", func() {
		Expect(grade.Encode("3a", nil)).To(Equal(300))
		Expect(grade.Encode("6a", nil)).To(Equal(600))
		Expect(grade.Encode("6b", nil)).To(Equal(610))
		Expect(grade.Encode("7c", nil)).To(Equal(720))
		Expect(grade.Encode("9c", nil)).To(Equal(920))
	})

	It("applies the plus and minus modifiers", func() {
		Expect(grade.Encode("6a+", nil)).To(Equal(605))
		Expect(grade.Encode("6a-", nil)).To(Equal(595))
		Expect(grade.Encode("9c+", nil)).To(Equal(925))
	})

	It("is case- and whitespace-insensitive", func() {
		Expect(grade.Encode("  6A+ ", nil)).To(Equal(605))
		Expect(grade.Encode("7B", nil)).To(Equal(710))
	})

	It("returns Unknown for blank labels", func() {
		Expect(grade.Encode("", nil)).To(Equal(grade.Unknown))
		Expect(grade.Encode("   ", nil)).To(Equal(grade.Unknown))
	})

	It("returns Unknown when no leading 3-9 digit is present", func() {
		Expect(grade.Encode("a6", nil)).To(Equal(grade.Unknown))
		Expect(grade.Encode("2c", nil)).To(Equal(grade.Unknown))
		Expect(grade.Encode("V5", nil)).To(Equal(grade.Unknown))
	})

	It("prefers the grading-system table over the algorithm", func() {
		sys := &grade.System{
			FreeForm: true,
			Table:    map[string]int{"V5": 650, "6a": 999},
		}
		Expect(grade.Encode("V5", sys)).To(Equal(650))
		// Table lookup wins even when the label would also parse algorithmically.
		Expect(grade.Encode("6a", sys)).To(Equal(999))
		// Labels absent from the table fall back to the algorithm.
		Expect(grade.Encode("6b", sys)).To(Equal(610))
	})
})

var _ = Describe("Decode", func() {
	It("decodes plain values", func() {
		Expect(mustDecode(300, nil)).To(Equal("3a"))
		Expect(mustDecode(610, nil)).To(Equal("6b"))
		Expect(mustDecode(720, nil)).To(Equal("7c"))
	})

	It("decodes plus and minus modifiers", func() {
		Expect(mustDecode(605, nil)).To(Equal("6a+"))
		Expect(mustDecode(595, nil)).To(Equal("6a-"))
	})

	It("rejects values outside the scale", func() {
		_, ok := grade.Decode(0, nil)
		Expect(ok).To(BeFalse())
		_, ok = grade.Decode(-5, nil)
		Expect(ok).To(BeFalse())
		_, ok = grade.Decode(290, nil)
		Expect(ok).To(BeFalse())
		_, ok = grade.Decode(930, nil) // letter digit 3 has no letter
		Expect(ok).To(BeFalse())
		_, ok = grade.Decode(603, nil) // modifier digit 3 is not a modifier
		Expect(ok).To(BeFalse())
	})

	It("prefers the grading-system table over the algorithm", func() {
		sys := &grade.System{Table: map[string]int{"V5": 650, "hard": 605}}
		Expect(mustDecode(650, sys)).To(Equal("V5"))
		Expect(mustDecode(605, sys)).To(Equal("hard"))
		// Values absent from the table fall back to the algorithm.
		Expect(mustDecode(610, sys)).To(Equal("6b"))
	})

	It("breaks table value ties by smallest label", func() {
		sys := &grade.System{Table: map[string]int{"zz": 500, "aa": 500}}
		Expect(mustDecode(500, sys)).To(Equal("aa"))
	})

	It("resolves the +/- ambiguity in favor of plus", func() {
		// "6b-" and "6a+" both encode to 605; the plus reading wins.
		Expect(grade.Encode("6b-", nil)).To(Equal(605))
		Expect(mustDecode(605, nil)).To(Equal("6a+"))
	})
})

var _ = Describe("Round trips", func() {
	It("round-trips every label in a grading-system table", func() {
		sys := &grade.System{
			FreeForm: true,
			Table: map[string]int{
				"V1": 410, "V2": 450, "V3": 500, "V4": 560, "V5": 650, "V6": 700,
			},
		}
		for label := range sys.Table {
			decoded, ok := grade.Decode(grade.Encode(label, sys), sys)
			Expect(ok).To(BeTrue())
			Expect(decoded).To(Equal(label))
		}
	})

	It("round-trips all unambiguous algorithmic labels", func() {
		// "b-" and "c-" collide with "a+" and "b+" respectively and cannot
		// round-trip; everything else must.
		for number := 3; number <= 9; number++ {
			for _, letter := range []string{"a", "b", "c"} {
				for _, modifier := range []string{"", "+"} {
					label := fmt.Sprintf("%d%s%s", number, letter, modifier)
					decoded, ok := grade.Decode(grade.Encode(label, nil), nil)
					Expect(ok).To(BeTrue(), label)
					Expect(decoded).To(Equal(label), label)
				}
			}
			label := fmt.Sprintf("%da-", number)
			decoded, ok := grade.Decode(grade.Encode(label, nil), nil)
			Expect(ok).To(BeTrue(), label)
			Expect(decoded).To(Equal(label), label)
		}
	})
})

var _ = Describe("IsInRange", func() {
	It("accepts the default bounds inclusively", func() {
		Expect(grade.IsInRange(300, nil)).To(BeTrue())
		Expect(grade.IsInRange(950, nil)).To(BeTrue())
		Expect(grade.IsInRange(605, nil)).To(BeTrue())
	})

	It("rejects values just outside the default bounds", func() {
		Expect(grade.IsInRange(299, nil)).To(BeFalse())
		Expect(grade.IsInRange(951, nil)).To(BeFalse())
	})

	It("uses explicit system bounds when set", func() {
		sys := &grade.System{Min: 100, Max: 400}
		Expect(grade.IsInRange(100, sys)).To(BeTrue())
		Expect(grade.IsInRange(400, sys)).To(BeTrue())
		Expect(grade.IsInRange(99, sys)).To(BeFalse())
		Expect(grade.IsInRange(401, sys)).To(BeFalse())
	})

	It("derives bounds from the table when no explicit bounds are set", func() {
		sys := &grade.System{Table: map[string]int{"easy": 150, "hard": 980}}
		Expect(grade.IsInRange(150, sys)).To(BeTrue())
		Expect(grade.IsInRange(980, sys)).To(BeTrue())
		Expect(grade.IsInRange(149, sys)).To(BeFalse())
		Expect(grade.IsInRange(981, sys)).To(BeFalse())
	})
})
