package category

// Service answers category lookups from the fixture list. Reference data
// only; the list changes with a deploy, not at runtime.
type Service struct {
	categories []Category
}

func NewService() *Service {
	return &Service{categories: Fixtures()}
}

func (s *Service) List() []Category {
	out := make([]Category, len(s.categories))
	copy(out, s.categories)
	return out
}

func (s *Service) GetBySlug(slug string) *Category {
	for _, c := range s.categories {
		if c.Slug == slug {
			return &c
		}
	}
	return nil
}
