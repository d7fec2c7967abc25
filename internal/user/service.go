package user

import (
	"sort"
	"time"

	"golang.org/x/crypto/bcrypt"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// NewDemoService builds a service over an in-memory store seeded with the
// demo accounts, hashing their plain seed passwords on the way in.
func NewDemoService() (*Service, error) {
	s := NewService(NewInMemoryRepository(nil))
	for _, account := range DemoAccounts() {
		if _, err := s.Create(account); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func (s *Service) List() []User {
	return s.repo.List()
}

func (s *Service) GetByID(id int) (User, error) {
	return s.repo.GetByID(id)
}

func (s *Service) GetByEmail(email string) (User, error) {
	return s.repo.GetByEmail(email)
}

// Create stores a user, hashing the password unless it is already a
// bcrypt hash (seed data may carry either form).
func (s *Service) Create(u User) (User, error) {
	if u.Password != "" && !looksLikeBcrypt(u.Password) {
		hashed, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
		if err != nil {
			return User{}, err
		}
		u.Password = string(hashed)
	}
	if u.Role == "" {
		u.Role = RoleCustomer
	}
	return s.repo.Create(u)
}

func (s *Service) Register(u User) (User, error) {
	if _, err := s.repo.GetByEmail(u.Email); err == nil {
		return User{}, ErrEmailExists
	} else if err != ErrNotFound {
		return User{}, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
	if err != nil {
		return User{}, err
	}
	u.Password = string(hashed)
	u.Role = RoleCustomer
	now := time.Now().UTC().Format(time.RFC3339)
	u.CreatedAt = now
	u.UpdatedAt = now
	return s.repo.Create(u)
}

func (s *Service) Authenticate(email, password string) (User, error) {
	u, err := s.repo.GetByEmail(email)
	if err != nil {
		return User{}, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)) != nil {
		return User{}, ErrInvalidCredentials
	}
	return u, nil
}

func (s *Service) UpdateProfile(id int, patch Patch) (User, error) {
	return s.repo.Update(id, patch)
}

// ResetPassword replaces the stored hash after a verified reset flow.
func (s *Service) ResetPassword(id int, newPassword string) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.repo.SetPassword(id, string(hashed))
}

// AddToWishlist is idempotent; the list stays sorted for stable output.
func (s *Service) AddToWishlist(id, productID int) (User, error) {
	u, err := s.repo.GetByID(id)
	if err != nil {
		return User{}, err
	}
	for _, existing := range u.Wishlist {
		if existing == productID {
			return u, nil
		}
	}
	wishlist := append(append([]int{}, u.Wishlist...), productID)
	sort.Ints(wishlist)
	return s.repo.UpdateWishlist(id, wishlist)
}

func (s *Service) RemoveFromWishlist(id, productID int) (User, error) {
	u, err := s.repo.GetByID(id)
	if err != nil {
		return User{}, err
	}
	wishlist := make([]int, 0, len(u.Wishlist))
	for _, existing := range u.Wishlist {
		if existing != productID {
			wishlist = append(wishlist, existing)
		}
	}
	return s.repo.UpdateWishlist(id, wishlist)
}

func (s *Service) Delete(id int) error {
	return s.repo.Delete(id)
}

func looksLikeBcrypt(value string) bool {
	return len(value) > 4 && value[0:2] == "$2"
}
