package seo

// SectionTemplate is one templated body section. Bodies may reference the
// placeholders {serviceName}, {cityName}, {cityState}, and {landmark}; every
// placeholder is substituted at generation time.
type SectionTemplate struct {
	Name string
	Body string
}

// DefaultTemplates returns the built-in section set used when no template
// pack is configured: overview, benefits, FAQ, and a closing call to action.
func DefaultTemplates() []SectionTemplate {
	return []SectionTemplate{
		{
			Name: "overview",
			Body: `# {serviceName} in {cityName}

Looking for professional {serviceName} in {cityName}, {cityState}? We help businesses from {landmark} and across {cityName} grow online with affordable, high quality solutions tailored to the local market.`,
		},
		{
			Name: "benefits",
			Body: `## Why Choose Us for {serviceName} in {cityName}

✓ Local expertise serving {cityName} businesses
✓ Transparent pricing with no hidden costs
✓ Fast delivery and dedicated support
✓ Trusted by clients near {landmark}`,
		},
		{
			Name: "faq",
			Body: `## Frequently Asked Questions

**Q: How much does {serviceName} cost in {cityName}?**
A: Pricing depends on project scope. We offer packages sized for {cityName} businesses of every stage, from startups to established brands.

**Q: Do you work with businesses across {cityState}?**
A: Yes. We serve clients throughout {cityName} and all of {cityState}, with remote collaboration available everywhere.

**Q: How long does {serviceName} take to complete?**
A: Most projects finish within two to four weeks depending on requirements and how quickly content is provided.`,
		},
		{
			Name: "cta",
			Body: `## Get Started Today

Ready to grow your business in {cityName}? Contact us for a free {serviceName} consultation and a same-day quote.`,
		},
	}
}
