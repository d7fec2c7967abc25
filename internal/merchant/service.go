package merchant

import "strings"

// Service answers merchant lookups from the fixture catalog. Reference
// data only, so there is no remote branch and no write path.
type Service struct {
	catalog []Merchant
}

func NewService() *Service {
	return &Service{catalog: Fixtures()}
}

func (s *Service) List() []Merchant {
	out := make([]Merchant, len(s.catalog))
	copy(out, s.catalog)
	return out
}

func (s *Service) GetBySlug(slug string) *Merchant {
	for _, m := range s.catalog {
		if m.Slug == slug {
			return &m
		}
	}
	return nil
}

// ListVerified returns only partners that passed sourcing verification.
func (s *Service) ListVerified() []Merchant {
	out := make([]Merchant, 0)
	for _, m := range s.catalog {
		if m.Verified {
			out = append(out, m)
		}
	}
	return out
}

// ListByCategory returns partners carrying the category; "all" (any case)
// means no filter.
func (s *Service) ListByCategory(category string) []Merchant {
	if category == "" || strings.EqualFold(category, "all") {
		return s.List()
	}
	out := make([]Merchant, 0)
	for _, m := range s.catalog {
		for _, c := range m.ProductCategories {
			if c == category {
				out = append(out, m)
				break
			}
		}
	}
	return out
}
