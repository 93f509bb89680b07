package wireframe

import (
	"testing"

	"github.com/matzehuels/wireframe/pkg/site"
)

func TestSectionHeight(t *testing.T) {
	stats := site.Component{Kind: site.ComponentStats, Label: "42%"}
	quote := site.Component{Kind: site.ComponentQuote, Label: "Great"}
	accordion := site.Component{Kind: site.ComponentAccordion, Items: numbered("Q", 9)}

	tests := []struct {
		name    string
		section site.Section
		want    int
	}{
		{"hero floor", site.NewSection("h", "hero"), 360},
		{"features floor", site.NewSection("f", "features"), 260},
		{"content empty", site.NewSection("c", "content"), 386},
		{"content ten items", site.NewSection("c", "content", list(numbered("item", 10)...)), 518},
		{"content clamps at twelve", site.NewSection("c", "content", list(numbered("item", 30)...)), 562},
		{"faq default rows", site.NewSection("q", "faq"), 266},
		{"faq nine items", site.NewSection("q", "faq", accordion), 486},
		{"proof with stats", site.NewSection("p", "proof", stats), 210},
		{"proof with quote", site.NewSection("p", "proof", quote), 210},
		{"steps floor", site.NewSection("s", "steps"), 240},
		{"steps eight", site.NewSection("s", "steps", list(numbered("step", 8)...)), 386},
		{"form default", site.NewSection("f", "form"), 314},
		{"cta", site.NewSection("c", "cta"), 222},
		{"footer cta alias", site.NewSection("c", "footer_cta"), 222},
		{"generic empty", site.NewSection("g", "section"), 230},
		{"gallery floor", site.NewSection("g", "gallery", site.Component{Label: "a"}), 240},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SectionHeight(tt.section); got != tt.want {
				t.Errorf("SectionHeight() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestSectionHeightFloor(t *testing.T) {
	cfg := DefaultConfig()
	tags := []string{"hero", "features", "content", "proof", "steps", "faq", "cta", "footer-cta", "form", "gallery", "section", "bogus"}
	contents := [][]site.Component{
		nil,
		{{Kind: site.ComponentText, Label: "x"}},
		{list("a")},
		{list(numbered("i", 20)...), {Kind: site.ComponentStats}},
	}
	for _, tag := range tags {
		for _, comps := range contents {
			s := site.NewSection("x", tag, comps...)
			if got, floor := cfg.SectionHeight(s), cfg.Minimum(s.Kind); got < floor {
				t.Errorf("%s with %d components: height %d below minimum %d", tag, len(comps), got, floor)
			}
		}
	}
}

func TestSectionHeightMonotone(t *testing.T) {
	builders := map[string]func(n int) site.Section{
		"content": func(n int) site.Section {
			return site.NewSection("c", "content", list(numbered("i", n)...))
		},
		"steps": func(n int) site.Section {
			return site.NewSection("s", "steps", list(numbered("s", n)...))
		},
		"faq": func(n int) site.Section {
			return site.NewSection("q", "faq", site.Component{Kind: site.ComponentAccordion, Items: numbered("q", n)})
		},
		"form": func(n int) site.Section {
			fields := make([]site.Component, n)
			for i := range fields {
				fields[i] = site.Component{Kind: site.ComponentInput, Label: "f"}
			}
			return site.NewSection("f", "form", fields...)
		},
		"generic": func(n int) site.Section {
			comps := make([]site.Component, n)
			return site.NewSection("g", "section", comps...)
		},
	}
	for name, build := range builders {
		t.Run(name, func(t *testing.T) {
			prev := SectionHeight(build(1))
			for n := 2; n <= 20; n++ {
				got := SectionHeight(build(n))
				if got < prev {
					t.Fatalf("height decreased from %d to %d at %d items", prev, got, n)
				}
				prev = got
			}
		})
	}
}

func TestSectionHeightGrowsWithContent(t *testing.T) {
	small := site.NewSection("q", "faq", site.Component{Kind: site.ComponentAccordion, Items: numbered("q", 4)})
	large := site.NewSection("q", "faq", site.Component{Kind: site.ComponentAccordion, Items: numbered("q", 9)})
	if SectionHeight(large) <= SectionHeight(small) {
		t.Errorf("nine-item faq (%d) should be taller than four-item faq (%d)", SectionHeight(large), SectionHeight(small))
	}
}

func TestSectionHeightUsesConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.FAQRows = Clamp{Min: 2, Max: 3}
	s := site.NewSection("q", "faq", site.Component{Kind: site.ComponentAccordion, Items: numbered("q", 9)})
	// 3 rows: 72 + 3*44 + 10 + 8
	if got := cfg.SectionHeight(s); got != 222 {
		t.Errorf("SectionHeight() = %d, want 222", got)
	}
}

func TestClampApply(t *testing.T) {
	c := Clamp{Min: 4, Max: 12}
	for n, want := range map[int]int{0: 4, 4: 4, 7: 7, 12: 12, 40: 12} {
		if got := c.Apply(n); got != want {
			t.Errorf("Apply(%d) = %d, want %d", n, got, want)
		}
	}
}
