package landing

// Pillar describes one product universe: its hero card and its full section.
type Pillar struct {
	ID                 string `json:"id"`
	Title              string `json:"title"`
	Blurb              string `json:"blurb"`
	SectionTitle       string `json:"sectionTitle"`
	SectionDescription string `json:"sectionDescription"`
	Image              string `json:"image"`
	ImageAlt           string `json:"imageAlt"`
}

// MenuItem is an entry of the header app grid. Target is a section id.
type MenuItem struct {
	Label  string `json:"label"`
	Target string `json:"target"`
}

// Link is a footer link.
type Link struct {
	Label string `json:"label"`
	Href  string `json:"href"`
}

// Hero holds the copy rendered above the product pillars.
type Hero struct {
	Announcement string `json:"announcement"`
	Headline     string `json:"headline"`
	Highlight    string `json:"highlight"`
	Vision       string `json:"vision"`
	Image        string `json:"image"`
	ImageAlt     string `json:"imageAlt"`
}

// Content aggregates everything the landing page renders statically.
type Content struct {
	Brand   string     `json:"brand"`
	Company string     `json:"company"`
	Hero    Hero       `json:"hero"`
	Pillars []Pillar   `json:"pillars"`
	Menu    []MenuItem `json:"menu"`
	Footer  []Link     `json:"footer"`
	Actions []string   `json:"actions"`
}

const HeroSection = "hero"

// Page returns a fresh copy of the landing content.
func Page() Content {
	return Content{
		Brand:   "AI Universe",
		Company: "AI Universe Global Private Limited",
		Hero: Hero{
			Announcement: "A new era of future intelligence is arriving, stay tuned for an exciting launch!",
			Headline:     "Engineering the Future of",
			Highlight:    "Intelligent Living",
			Vision:       "Our vision is to seamlessly integrate artificial intelligence into the core aspects of commerce, family life, and digital infrastructure. Explore our universe below.",
			Image:        "/aiuniglobal-main.png",
			ImageAlt:     "AI Universe Global Main Concept",
		},
		Pillars: []Pillar{
			{
				ID:                 "commerce",
				Title:              "AI eCommerce Universe",
				Blurb:              "Redefining transactions with intelligent billing and hyperlocal e-commerce solutions.",
				SectionTitle:       "The AI eCommerce Universe",
				SectionDescription: "We are building a revolutionary commerce platform that leverages AI to automate billing, optimize local logistics, and create personalized shopping experiences. It's more than e-commerce; it's intelligent commerce.",
				Image:              "/aiuniglobal-ai-e-commerce-universe.png",
				ImageAlt:           "AI Powered E-commerce Universe",
			},
			{
				ID:                 "family",
				Title:              "AI Family Universe",
				Blurb:              "A connected ecosystem for education, wellness, and family engagement.",
				SectionTitle:       "The AI Family Universe",
				SectionDescription: "Imagine a world where technology nurtures family bonds. Our Family Universe connects kids' education, fitness, and creative pursuits, offering parents and schools valuable insights for holistic development.",
				Image:              "/aiuniglobal-ai-family-universe.png",
				ImageAlt:           "AI Powered Family Universe with Janvi and Gagan",
			},
			{
				ID:                 "intelligence",
				Title:              "AI Intelligence Universe",
				Blurb:              "An AI-driven system providing a real-time pulse with machine learning-based insights.",
				SectionTitle:       "The AI Intelligence Universe",
				SectionDescription: "Go beyond simple monitoring. Our platform provides an artificial intelligence-based ecosystem with a machine learning-powered real-time pulse, offering predictive insights to ensure your digital services are always performing at their peak.",
				Image:              "/aiuniglobal-ai-intelligence-universe.png",
				ImageAlt:           "AI Powered Intelligence Universe",
			},
		},
		Menu: []MenuItem{
			{Label: "Commerce", Target: "commerce"},
			{Label: "Family", Target: "family"},
			{Label: "Intelligence", Target: "intelligence"},
			{Label: "AI Engine", Target: HeroSection},
			{Label: "Stay Tuned", Target: HeroSection},
		},
		Footer: []Link{
			{Label: "Twitter", Href: "#"},
			{Label: "LinkedIn", Href: "#"},
		},
		// Login and Create Account are rendered but have no behavior.
		Actions: []string{"Login", "Create Account"},
	}
}

// SectionIDs lists every id a menu item may scroll to.
func (c Content) SectionIDs() []string {
	ids := []string{HeroSection}
	for _, p := range c.Pillars {
		ids = append(ids, p.ID)
	}
	return ids
}
