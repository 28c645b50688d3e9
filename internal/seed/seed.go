package seed

import (
	"time"

	"RBCDigital/internal/entity"
)

// Provider serves the fixed in-memory catalog used when neither the CMS nor
// the database can answer. Every entry is fully populated so the catalog
// doubles as the reference for complete field coverage.
type Provider interface {
	List() []entity.BlogPost
	GetBySlug(slug string) (entity.BlogPost, bool)
}

type provider struct {
	posts  []entity.BlogPost
	bySlug map[string]int
}

func New() Provider {
	posts := catalog()

	bySlug := make(map[string]int, len(posts))
	for i, post := range posts {
		bySlug[post.Slug] = i
	}

	return &provider{
		posts:  posts,
		bySlug: bySlug,
	}
}

// List returns the catalog in insertion order. Callers get a fresh slice so
// re-sorting a response never disturbs the catalog itself.
func (p *provider) List() []entity.BlogPost {
	out := make([]entity.BlogPost, len(p.posts))
	copy(out, p.posts)
	return out
}

func (p *provider) GetBySlug(slug string) (entity.BlogPost, bool) {
	i, ok := p.bySlug[slug]
	if !ok {
		return entity.BlogPost{}, false
	}
	return p.posts[i], true
}

func seedTime(year int, month time.Month, day, hour int) time.Time {
	return time.Date(year, month, day, hour, 0, 0, 0, time.UTC)
}

func catalog() []entity.BlogPost {
	return []entity.BlogPost{
		{
			ID:    "seed-01",
			Title: "5 Digital Marketing Strategies That Drive Local Business Growth",
			Slug:  "5-digital-marketing-strategies-local-business-growth",
			Content: "Local businesses face unique challenges in digital marketing. Unlike national brands, they need to focus on their immediate community while competing against both local competitors and online giants. This guide outlines five proven strategies that consistently deliver results for local service businesses.\n\n" +
				"## 1. Local SEO Optimization\n\nLocal SEO is the foundation of digital marketing for local businesses. Start by claiming and optimizing your Google My Business profile with accurate information, high-quality photos, and regular updates. Encourage satisfied customers to leave reviews, as they significantly impact local search rankings.\n\n" +
				"## 2. Content Marketing That Addresses Local Needs\n\nCreate content that speaks directly to your local community's needs and interests. Write blog posts about local events, seasonal services, or area-specific challenges your business can solve. Share customer success stories featuring local clients to build trust.\n\n" +
				"## 3. Social Media Community Building\n\nFocus on building genuine relationships rather than just broadcasting promotional content. Use location-based hashtags and geotag your posts to increase local visibility, and partner with other local businesses for cross-promotion.\n\n" +
				"## 4. Email Marketing for Customer Retention\n\nDevelop an email strategy that keeps your business top-of-mind. Segment your list based on customer type, location, or service history to deliver more relevant content.\n\n" +
				"## 5. Online Reputation Management\n\nActively monitor and respond to reviews across all platforms. Implement a systematic approach to requesting reviews from satisfied customers and address negative feedback professionally and promptly.\n\n" +
				"Most local businesses see meaningful results within 3-6 months of consistent implementation. Start with local SEO as your foundation, then layer in the remaining strategies.",
			Excerpt:          "Discover proven digital marketing techniques that help local service businesses attract more customers and increase revenue in today's competitive market.",
			Author:           "Sarah Johnson",
			CoverImage:       "https://images.unsplash.com/photo-1460925895917-afdab827c52f?w=800&h=600&fit=crop",
			AdditionalImages: []string{"https://images.unsplash.com/photo-1533750349088-cd871a92f312?w=800&h=600&fit=crop"},
			AudioURL:         "https://cdn.rbcdigital.agency/audio/local-business-growth.mp3",
			ReadingTime:      "12 min read",
			Tags:             []string{"Digital Marketing", "Local SEO", "Business Growth", "Marketing Strategy"},
			PublishedAt:      seedTime(2024, time.December, 1, 10),
			CreatedAt:        seedTime(2024, time.December, 1, 10),
			UpdatedAt:        seedTime(2024, time.December, 1, 10),
		},
		{
			ID:    "seed-02",
			Title: "5 Digital Marketing Trends That Will Dominate 2025",
			Slug:  "digital-marketing-trends-2025",
			Content: "As we move into 2025, digital marketing continues to evolve at breakneck speed. Local service businesses need to stay ahead of these trends to maintain their competitive edge.\n\n" +
				"## AI-Powered Personalization\n\nArtificial intelligence is revolutionizing how businesses interact with customers. From chatbots to personalized content recommendations, AI is making customer experiences more relevant and engaging.\n\n" +
				"## Voice Search Optimization\n\nWith smart speakers becoming ubiquitous, optimizing for voice search is no longer optional. Local businesses need to focus on conversational keywords and question-based content.\n\n" +
				"## Video-First Content Strategy\n\nVideo content continues to dominate social media platforms. Short-form videos, live streaming, and interactive video content are driving engagement rates through the roof.\n\n" +
				"## Hyper-Local Marketing\n\nLocation-based marketing is becoming more sophisticated. Businesses can now target customers within specific geographic areas with unprecedented precision.\n\n" +
				"## Privacy-First Marketing\n\nWith increasing privacy regulations, businesses must adapt their marketing strategies to respect user privacy while still delivering effective campaigns.",
			Excerpt:          "Stay ahead of the competition with these emerging digital marketing trends that will shape the industry in 2025.",
			Author:           "Sarah Mitchell",
			CoverImage:       "https://images.unsplash.com/photo-1432888622747-4eb9a8efeb07?w=800&h=600&fit=crop",
			AdditionalImages: []string{},
			ReadingTime:      "8 min read",
			Tags:             []string{"Digital Marketing", "Trends", "AI", "Voice Search"},
			PublishedAt:      seedTime(2024, time.December, 15, 10),
			CreatedAt:        seedTime(2024, time.December, 15, 10),
			UpdatedAt:        seedTime(2024, time.December, 15, 10),
		},
		{
			ID:    "seed-03",
			Title: "How to Measure ROI on Your Digital Marketing Investment",
			Slug:  "measure-digital-marketing-roi",
			Content: "Return on Investment is the holy grail of marketing metrics. For local service businesses, understanding which marketing efforts drive real results is crucial for sustainable growth.\n\n" +
				"## Key Metrics to Track\n\nCustomer Acquisition Cost tells you how much it costs to win a new customer, while Customer Lifetime Value captures the total revenue a customer brings over the relationship. Conversion Rate and Cost Per Lead round out the core set every local business should watch.\n\n" +
				"## Tools for Measuring ROI\n\nGoogle Analytics, Facebook Ads Manager, and CRM systems provide valuable insights into campaign performance. Setting up proper tracking is essential for accurate measurement.\n\n" +
				"## Attribution Models\n\nUnderstanding how customers interact with your brand across multiple touchpoints helps you allocate budget more effectively across different marketing channels.",
			Excerpt:          "Learn the essential metrics and tools you need to track the success of your digital marketing campaigns.",
			Author:           "Mike Johnson",
			CoverImage:       "https://images.unsplash.com/photo-1551288049-bebda4e38f71?w=800&h=600&fit=crop",
			AdditionalImages: []string{},
			ReadingTime:      "9 min read",
			Tags:             []string{"Analytics", "ROI", "Digital Marketing"},
			PublishedAt:      seedTime(2024, time.December, 10, 14),
			CreatedAt:        seedTime(2024, time.December, 10, 14),
			UpdatedAt:        seedTime(2024, time.December, 10, 14),
		},
		{
			ID:    "seed-04",
			Title: "Local SEO Secrets: Dominate Your Market in 2025",
			Slug:  "local-seo-secrets-2025",
			Content: "For local service businesses, appearing in local search results can make or break your marketing success. Here are the strategies that will set you apart from competitors.\n\n" +
				"## Google Business Profile Optimization\n\nYour Google Business Profile is your digital storefront. Keep it updated with accurate information, high-quality photos, and regular posts to improve visibility.\n\n" +
				"## Local Keyword Strategy\n\nTarget location-specific keywords that your customers are actually searching for. \"Plumber near me\" and \"best dentist in [city]\" are goldmines for local businesses.\n\n" +
				"## Online Reviews Management\n\nPositive reviews are ranking factors and trust signals. Implement a systematic approach to encouraging and managing customer reviews across all platforms.\n\n" +
				"## Local Link Building\n\nBuild relationships with local organizations, chambers of commerce, and complementary businesses to earn valuable local backlinks.\n\n" +
				"## Mobile Optimization\n\nLocal searches happen on mobile devices. Ensure your website loads quickly and provides an excellent mobile experience.",
			Excerpt:          "Discover the advanced local SEO strategies that will help your business rank higher in local search results.",
			Author:           "Jennifer Chen",
			CoverImage:       "https://images.unsplash.com/photo-1562577309-4932fdd64cd1?w=800&h=600&fit=crop",
			AdditionalImages: []string{},
			AudioURL:         "https://cdn.rbcdigital.agency/audio/local-seo-secrets.mp3",
			ReadingTime:      "10 min read",
			Tags:             []string{"Local SEO", "Google Business Profile", "Reviews"},
			PublishedAt:      seedTime(2024, time.December, 5, 9),
			CreatedAt:        seedTime(2024, time.December, 5, 9),
			UpdatedAt:        seedTime(2024, time.December, 5, 9),
		},
		{
			ID:    "seed-05",
			Title: "Social Media Content That Converts: A Guide for Service Businesses",
			Slug:  "social-media-content-converts",
			Content: "Social media success isn't measured by vanity metrics. For service businesses, the goal is to create content that builds trust, showcases expertise, and converts followers into customers.\n\n" +
				"## Content Types That Work\n\nBefore-and-after showcases give visual proof of your work. Educational content positions you as the expert in your field. Customer testimonials deliver social proof, and behind-the-scenes posts humanize your brand.\n\n" +
				"## Platform-Specific Strategies\n\nEach social media platform has its own culture and best practices. Tailor your content to match platform expectations while maintaining brand consistency.\n\n" +
				"## Engagement Strategies\n\nRespond promptly to comments and messages. Use social media as a customer service channel to build relationships and resolve issues publicly.\n\n" +
				"## Conversion Optimization\n\nInclude clear calls-to-action in your posts. Whether it's booking a consultation or visiting your website, make it easy for followers to take the next step.",
			Excerpt:          "Create social media content that not only engages your audience but also drives real business results.",
			Author:           "David Rodriguez",
			CoverImage:       "https://images.unsplash.com/photo-1611926653458-09294b3142bf?w=800&h=600&fit=crop",
			AdditionalImages: []string{},
			ReadingTime:      "7 min read",
			Tags:             []string{"Social Media", "Content Marketing", "Conversion"},
			PublishedAt:      seedTime(2024, time.November, 28, 16),
			CreatedAt:        seedTime(2024, time.November, 28, 16),
			UpdatedAt:        seedTime(2024, time.November, 28, 16),
		},
		{
			ID:    "seed-06",
			Title: "Email Marketing Automation for Local Service Businesses",
			Slug:  "email-marketing-automation-local-services",
			Content: "While social media gets all the attention, email marketing consistently delivers the highest ROI for local service businesses. Here's how to automate your email marketing for maximum impact.\n\n" +
				"## Welcome Series\n\nCreate a series of emails that introduce new subscribers to your business, share your story, and provide valuable tips related to your services.\n\n" +
				"## Lead Nurturing Sequences\n\nNot everyone is ready to buy immediately. Nurture leads with educational content that builds trust and positions you as the expert they'll think of when they're ready.\n\n" +
				"## Seasonal Campaigns\n\nPlan email campaigns around seasonal needs. HVAC companies can remind customers about maintenance before summer and winter, while landscapers can promote seasonal services.\n\n" +
				"## Segmentation Strategies\n\nSegment your email list based on customer behavior, interests, and demographics to send more relevant, targeted messages.\n\n" +
				"## Performance Tracking\n\nMonitor open rates, click-through rates, and conversions to optimize your email campaigns for better results.",
			Excerpt:          "Set up email automation sequences that nurture leads and keep your business top-of-mind with customers.",
			Author:           "Lisa Thompson",
			CoverImage:       "https://images.unsplash.com/photo-1596526131083-e8c633c948d2?w=800&h=600&fit=crop",
			AdditionalImages: []string{},
			ReadingTime:      "8 min read",
			Tags:             []string{"Email Marketing", "Automation", "Lead Nurturing"},
			PublishedAt:      seedTime(2024, time.November, 20, 11),
			CreatedAt:        seedTime(2024, time.November, 20, 11),
			UpdatedAt:        seedTime(2024, time.November, 20, 11),
		},
		{
			ID:    "seed-07",
			Title: "Why Your Website Is Losing You Customers (And How to Fix It)",
			Slug:  "website-conversion-mistakes",
			Content: "Your website is often the first impression potential customers get of your business. A slow, confusing, or outdated site quietly turns visitors away before they ever call you.\n\n" +
				"## Speed Kills (Conversions)\n\nEvery extra second of load time costs you visitors. Compress images, lean on browser caching, and cut third-party scripts that don't earn their keep.\n\n" +
				"## Unclear Calls-to-Action\n\nVisitors should never wonder what to do next. Put one primary action above the fold on every page, whether that's booking a call or requesting a quote.\n\n" +
				"## Missing Trust Signals\n\nReviews, certifications, guarantees, and real photos of your team all reduce the perceived risk of choosing your business over a competitor.\n\n" +
				"## No Mobile Experience\n\nMore than half of local searches happen on a phone. If pinch-zooming is required to read your pricing, you've already lost the lead.",
			Excerpt:          "The most common website mistakes that quietly drive potential customers away, and the practical fixes for each one.",
			Author:           "Sarah Johnson",
			CoverImage:       "https://images.unsplash.com/photo-1467232004584-a241de8bcf5d?w=800&h=600&fit=crop",
			AdditionalImages: []string{},
			ReadingTime:      "6 min read",
			Tags:             []string{"Web Design", "Conversion", "User Experience"},
			PublishedAt:      seedTime(2024, time.November, 12, 9),
			CreatedAt:        seedTime(2024, time.November, 12, 9),
			UpdatedAt:        seedTime(2024, time.November, 12, 9),
		},
		{
			ID:    "seed-08",
			Title: "Google Ads for Local Businesses: A No-Waste Budget Guide",
			Slug:  "google-ads-local-budget-guide",
			Content: "Google Ads can burn through a small budget fast when campaigns aren't built for local intent. This guide walks through structuring campaigns so every dollar targets customers who can actually buy from you.\n\n" +
				"## Start With Geo-Targeting\n\nRestrict campaigns to the areas you actually serve, and bid down on neighboring regions where jobs are less profitable. Radius targeting around your location usually beats broad city targeting.\n\n" +
				"## Match Types Matter\n\nBroad match spends money on curiosity. Start with phrase and exact match keywords built from the services customers call you about, then mine the search-terms report weekly for negatives.\n\n" +
				"## Landing Pages Beat Homepages\n\nSend each ad group to a page about that exact service. A dedicated landing page with a quote form will convert at two to three times the rate of your homepage.\n\n" +
				"## Track Calls, Not Just Clicks\n\nFor service businesses most conversions are phone calls. Set up call tracking before judging any campaign's performance.",
			Excerpt:          "How local service businesses can structure Google Ads campaigns that spend every dollar on customers who can actually buy.",
			Author:           "Mike Johnson",
			CoverImage:       "https://images.unsplash.com/photo-1553830591-fddf9c6e2ab1?w=800&h=600&fit=crop",
			AdditionalImages: []string{},
			AudioURL:         "https://cdn.rbcdigital.agency/audio/google-ads-budget.mp3",
			ReadingTime:      "9 min read",
			Tags:             []string{"Google Ads", "PPC", "Budget", "Local Marketing"},
			PublishedAt:      seedTime(2024, time.November, 5, 13),
			CreatedAt:        seedTime(2024, time.November, 5, 13),
			UpdatedAt:        seedTime(2024, time.November, 5, 13),
		},
		{
			ID:    "seed-09",
			Title: "Building a Brand Customers Remember: Identity Basics for Small Businesses",
			Slug:  "brand-identity-basics-small-business",
			Content: "Branding feels like a luxury when you're busy running a business, but a consistent identity is what makes your marketing compound instead of starting from zero every campaign.\n\n" +
				"## More Than a Logo\n\nYour brand is the full set of signals customers use to recognize you: colors, voice, photography style, and the promises you repeat. Write them down so every piece of marketing pulls in the same direction.\n\n" +
				"## Consistency Builds Recall\n\nCustomers need several exposures before they remember you. Using the same palette and tagline across your website, vehicle wraps, and social profiles multiplies the effect of every impression.\n\n" +
				"## Voice and Tone\n\nDecide how your business talks. A family plumbing company and a boutique consultancy shouldn't sound the same, and customers notice when the voice wobbles between formal and casual.\n\n" +
				"## Audit Twice a Year\n\nCollect screenshots of everywhere your brand appears and check them against your guidelines. Drift is normal; catching it early is cheap.",
			Excerpt:          "Why a consistent brand identity makes every marketing dollar work harder, and how to build one without an agency-sized budget.",
			Author:           "Jennifer Chen",
			CoverImage:       "https://images.unsplash.com/photo-1558655146-d09347e92766?w=800&h=600&fit=crop",
			AdditionalImages: []string{},
			ReadingTime:      "7 min read",
			Tags:             []string{"Branding", "Identity", "Small Business"},
			PublishedAt:      seedTime(2024, time.October, 22, 10),
			CreatedAt:        seedTime(2024, time.October, 22, 10),
			UpdatedAt:        seedTime(2024, time.October, 22, 10),
		},
		{
			ID:    "seed-10",
			Title: "Video Marketing on a Shoestring: Gear, Scripts, and Distribution",
			Slug:  "video-marketing-shoestring-budget",
			Content: "You don't need a production studio to use video effectively. A recent phone, a quiet room, and a repeatable format beat an expensive one-off brand film for most local businesses.\n\n" +
				"## The Gear That Actually Matters\n\nAudio quality matters more than camera quality. A $20 lavalier microphone upgrades your videos more than any lens. Add a window for lighting and you're production-ready.\n\n" +
				"## Formats You Can Repeat\n\nAnswer one real customer question per video in under ninety seconds. The questions customers ask on calls are a content calendar you've already researched.\n\n" +
				"## Scripting Without Sounding Scripted\n\nWrite bullet points, not sentences. Record in one take and leave in the small stumbles; they read as authentic rather than amateur.\n\n" +
				"## Distribution Beats Production\n\nEvery video should be posted natively to each platform, embedded in a relevant blog post, and clipped for stories. One recording session should feed two weeks of channels.",
			Excerpt:          "A practical playbook for producing effective marketing video with a phone, a cheap microphone, and a repeatable format.",
			Author:           "David Rodriguez",
			CoverImage:       "https://images.unsplash.com/photo-1574717024653-61fd2cf4d44d?w=800&h=600&fit=crop",
			AdditionalImages: []string{"https://images.unsplash.com/photo-1598488035139-bdbb2231ce04?w=800&h=600&fit=crop"},
			ReadingTime:      "8 min read",
			Tags:             []string{"Video Marketing", "Content Marketing", "Social Media"},
			PublishedAt:      seedTime(2024, time.October, 10, 15),
			CreatedAt:        seedTime(2024, time.October, 10, 15),
			UpdatedAt:        seedTime(2024, time.October, 10, 15),
		},
		{
			ID:    "seed-11",
			Title: "Turning Customer Reviews Into Your Best Sales Asset",
			Slug:  "customer-reviews-sales-asset",
			Content: "Reviews are the closest thing to a referral you can manufacture at scale. Most businesses collect them passively; the ones that grow treat reviews as a system.\n\n" +
				"## Ask at the Right Moment\n\nThe best time to request a review is immediately after the customer expresses satisfaction, not days later in a batch email. Train your team to recognize the moment and make the ask.\n\n" +
				"## Make It Effortless\n\nSend a direct link to your review profile by text message. Every extra tap between the customer and the form costs you half your respondents.\n\n" +
				"## Respond to Everything\n\nReplies to positive reviews show prospects you're engaged. Replies to negative reviews, written calmly and offering to fix the issue, often matter more than the review itself.\n\n" +
				"## Reuse Reviews Everywhere\n\nPull the best lines into your website, proposals, and social posts. A real customer sentence outperforms any headline you could write yourself.",
			Excerpt:          "A systematic approach to collecting, responding to, and reusing customer reviews so they actively win you new business.",
			Author:           "Lisa Thompson",
			CoverImage:       "https://images.unsplash.com/photo-1521791136064-7986c2920216?w=800&h=600&fit=crop",
			AdditionalImages: []string{},
			ReadingTime:      "6 min read",
			Tags:             []string{"Reviews", "Reputation", "Sales"},
			PublishedAt:      seedTime(2024, time.September, 30, 8),
			CreatedAt:        seedTime(2024, time.September, 30, 8),
			UpdatedAt:        seedTime(2024, time.September, 30, 8),
		},
	}
}
