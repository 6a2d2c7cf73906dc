package service

import (
	"strings"

	"github.com/revenland/revenland/internal/domain"
	"github.com/sahilm/fuzzy"
)

var defaultServices = []domain.Service{
	{
		ID:          "1",
		Title:       "Consultancy",
		ImageURL:    "https://encrypted-tbn0.gstatic.com/images?q=tbn:ANd9GcTnS2QR0aRbIo_A4UoevcfkbOGoLsDgVtFyLQ&s",
		Description: "Professional consultancy services.",
	},
	{
		ID:          "2",
		Title:       "Resume Review",
		ImageURL:    "https://www.resource-connection.com/wp-content/uploads/2017/11/Review-Resume.jpg",
		Description: "Get your resume reviewed by experts.",
	},
	{
		ID:          "3",
		Title:       "Career Guidance",
		ImageURL:    "https://www.univariety.com/blog/wp-content/uploads/2018/04/career-counselling-and-guidance.jpg",
		Description: "Plan your career with our experts.",
	},
	{
		ID:          "4",
		Title:       "Job Assistance",
		ImageURL:    "https://www.success-stream.co.uk/wp-content/uploads/2019/12/job-interview-success-scaled.jpg",
		Description: "Get help with job applications.",
	},
}

var defaultProfile = domain.CompanyProfile{
	Name:    "RevenLand",
	Summary: "We are a leading consultancy firm providing top-notch services to our clients worldwide. " +
		"Our mission is to deliver excellence and build long-lasting relationships with our clients.",
	About: "We are a leading consultancy firm providing top-notch services to our clients worldwide. " +
		"Our mission is to deliver excellence and build long-lasting relationships with our clients. " +
		"We believe in innovation and strive to exceed expectations.",
	VideoURL: "https://commondatastorage.googleapis.com/gtv-videos-bucket/sample/BigBuckBunny.mp4",
	Socials: []domain.SocialProfile{
		{ID: "1", Platform: "LinkedIn", ImageURL: "https://cdn1.iconfinder.com/data/icons/logotypes/32/circle-linkedin-512.png", URL: "https://www.linkedin.com/in/your-page"},
		{ID: "2", Platform: "Twitter", ImageURL: "https://download.logo.wine/logo/Twitter/Twitter-Logo.wine.png", URL: "https://twitter.com/your-page"},
		{ID: "3", Platform: "Facebook", ImageURL: "https://1000logos.net/wp-content/uploads/2017/02/Facebook-Logosu.png", URL: "https://www.facebook.com/your-page"},
	},
}

// ServiceMatch is a service search hit with the matched title positions
type ServiceMatch struct {
	Service        domain.Service
	MatchedIndexes []int
	Score          int
}

// serviceIndex implements sahilm/fuzzy.Source over service titles and descriptions
type serviceIndex struct {
	services []domain.Service
	keys     []string
}

func (idx *serviceIndex) String(i int) string { return idx.keys[i] }

func (idx *serviceIndex) Len() int { return len(idx.services) }

// CatalogService serves the static home and profile content
type CatalogService struct {
	services []domain.Service
	profile  domain.CompanyProfile
	index    *serviceIndex
}

// NewCatalogService creates a catalog with the built-in content
func NewCatalogService() *CatalogService {
	return newCatalog(defaultServices, defaultProfile)
}

func newCatalog(services []domain.Service, profile domain.CompanyProfile) *CatalogService {
	idx := &serviceIndex{services: services, keys: make([]string, len(services))}
	for i, svc := range services {
		// Title first so matched indexes highlight the title
		idx.keys[i] = strings.ToLower(svc.Title + " " + svc.Description)
	}
	return &CatalogService{services: services, profile: profile, index: idx}
}

// Services returns every service in display order
func (c *CatalogService) Services() []domain.Service {
	out := make([]domain.Service, len(c.services))
	copy(out, c.services)
	return out
}

// Profile returns the company profile
func (c *CatalogService) Profile() domain.CompanyProfile {
	return c.profile
}

// SearchServices ranks services by fuzzy match against query.
// An empty query returns every service unranked.
func (c *CatalogService) SearchServices(query string) []ServiceMatch {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		out := make([]ServiceMatch, len(c.services))
		for i, svc := range c.services {
			out[i] = ServiceMatch{Service: svc}
		}
		return out
	}

	matches := fuzzy.FindFrom(query, c.index)
	out := make([]ServiceMatch, 0, len(matches))
	for _, m := range matches {
		svc := c.services[m.Index]
		titleLen := len(svc.Title)
		var inTitle []int
		for _, pos := range m.MatchedIndexes {
			if pos < titleLen {
				inTitle = append(inTitle, pos)
			}
		}
		out = append(out, ServiceMatch{Service: svc, MatchedIndexes: inTitle, Score: m.Score})
	}
	return out
}
