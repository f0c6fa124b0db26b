package faq

// Entry pairs a canned question with the answer the assistant shows for it.
type Entry struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// Seed provides the fixed question/answer table shown by the assistant widget.
// Declaration order is significant: suggestions and autocomplete follow it.
func Seed() []Entry {
	return []Entry{
		{
			Question: "What is AI Universe Global?",
			Answer:   "AI Universe Global is a pioneering technology firm engineering a smarter future. We build intelligent ecosystems that seamlessly integrate with daily life, focusing on next-generation commerce, holistic family well-being, and predictive system intelligence.",
		},
		{
			Question: "Tell me about the AI Family Universe.",
			Answer:   "The AI Family Universe is a revolutionary connected platform for modern families. It harmonizes education, wellness, and creative engagement, offering real-time insights to empower the holistic development of children like our digital companions, Janvi and Gagan.",
		},
		{
			Question: "How does AI eCommerce Universe work?",
			Answer:   "Our AI eCommerce Universe redefines retail by infusing it with deep intelligence. The platform automates complex billing, optimizes hyperlocal logistics, and delivers truly personalized shopping journeys, creating a frictionless experience for both businesses and consumers.",
		},
		{
			Question: "What is AI Intelligence Universe?",
			Answer:   "The AI Intelligence Universe is our advanced platform providing a real-time, machine learning-powered pulse on complex digital systems. It moves beyond reactive monitoring to offer predictive insights, ensuring peak performance and operational stability.",
		},
		{
			Question: "When is the official launch?",
			Answer:   "We are on the brink of a major reveal! The countdown on our site marks a significant milestone on our journey to launch. Stay tuned for an exciting announcement.",
		},
	}
}
