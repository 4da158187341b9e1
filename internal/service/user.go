package service

import (
	"context"
	"strings"

	"github.com/go-faster/errors"

	"shopapi/internal/model"
	"shopapi/internal/repository"
	"shopapi/internal/security"
)

// CreateUserInput is an admin-created account.
type CreateUserInput struct {
	Name        string
	Email       string
	Password    string
	Role        model.Role
	Avatar      string
	Age         *int
	PhoneNumber string
	Address     string
	Gender      model.Gender
}

// UpdateUserInput is a partial admin update. Nil fields are left unchanged.
type UpdateUserInput struct {
	Name        *string
	Email       *string
	Password    *string
	Role        *model.Role
	Avatar      *string
	Age         *int
	PhoneNumber *string
	Address     *string
	Gender      *model.Gender
	Active      *bool
}

// UpdateProfileInput is the subset of fields a user may change on their own account.
type UpdateProfileInput struct {
	Name        *string
	Password    *string
	Avatar      *string
	Age         *int
	PhoneNumber *string
	Address     *string
	Gender      *model.Gender
}

// UserQuery filters the admin user listing.
type UserQuery struct {
	Name     string
	Email    string
	Role     model.Role
	SortDesc bool
	Limit    int
	Skip     int
}

// UserService covers admin user management and the caller's own profile.
type UserService interface {
	Create(ctx context.Context, in CreateUserInput) (*model.User, error)
	List(ctx context.Context, q UserQuery) (*Page[model.User], error)
	Get(ctx context.Context, id string) (*model.User, error)
	Update(ctx context.Context, id string, in UpdateUserInput) (*model.User, error)
	Delete(ctx context.Context, id string) error

	UpdateProfile(ctx context.Context, id string, in UpdateProfileInput) (*model.User, error)
	// Deactivate soft-deletes the account.
	Deactivate(ctx context.Context, id string) error
}

type userService struct {
	users repository.UserRepository
}

func NewUserService(users repository.UserRepository) UserService {
	return &userService{users: users}
}

func (s *userService) Create(ctx context.Context, in CreateUserInput) (*model.User, error) {
	email := normalizeEmail(in.Email)
	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return nil, conflictf("Email already exists")
	} else if !isNotFound(err) {
		return nil, errors.Wrap(err, "find user by email")
	}

	hash, err := security.HashPassword(in.Password)
	if err != nil {
		return nil, errors.Wrap(err, "hash password")
	}

	u := &model.User{
		Name:         strings.TrimSpace(in.Name),
		Email:        email,
		PasswordHash: hash,
		Role:         in.Role,
		Avatar:       in.Avatar,
		Age:          in.Age,
		PhoneNumber:  in.PhoneNumber,
		Address:      in.Address,
		Gender:       in.Gender,
		Active:       true,
	}
	if u.Role == "" {
		u.Role = model.RoleUser
	}
	if u.Gender == "" {
		u.Gender = model.GenderMale
	}

	created, err := s.users.Create(ctx, u)
	if errors.Is(err, repository.ErrDuplicate) {
		return nil, conflictf("Email already exists")
	}
	if err != nil {
		return nil, errors.Wrap(err, "create user")
	}
	return created, nil
}

func (s *userService) List(ctx context.Context, q UserQuery) (*Page[model.User], error) {
	if q.Limit <= 0 {
		q.Limit = 10
	}
	if q.Skip < 0 {
		q.Skip = 0
	}
	res, err := s.users.List(ctx, repository.UserFilter{
		Name:      q.Name,
		Email:     q.Email,
		Role:      q.Role,
		SortDesc:  q.SortDesc,
		PageQuery: repository.PageQuery{Limit: q.Limit, Offset: q.Skip},
	})
	if err != nil {
		return nil, errors.Wrap(err, "list users")
	}
	return &Page[model.User]{Items: res.Items, Total: res.Total}, nil
}

func (s *userService) Get(ctx context.Context, id string) (*model.User, error) {
	u, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "get user", "User not found")
	}
	return u, nil
}

func (s *userService) Update(ctx context.Context, id string, in UpdateUserInput) (*model.User, error) {
	u, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Email != nil {
		email := normalizeEmail(*in.Email)
		if email != u.Email {
			if _, err := s.users.FindByEmail(ctx, email); err == nil {
				return nil, conflictf("Email already exists")
			} else if !isNotFound(err) {
				return nil, errors.Wrap(err, "find user by email")
			}
			u.Email = email
		}
	}
	if in.Role != nil {
		u.Role = *in.Role
	}
	if in.Active != nil {
		u.Active = *in.Active
	}
	if err := applyProfile(u, UpdateProfileInput{
		Name:        in.Name,
		Password:    in.Password,
		Avatar:      in.Avatar,
		Age:         in.Age,
		PhoneNumber: in.PhoneNumber,
		Address:     in.Address,
		Gender:      in.Gender,
	}); err != nil {
		return nil, err
	}

	return s.save(ctx, u)
}

func (s *userService) Delete(ctx context.Context, id string) error {
	if err := s.users.Delete(ctx, id); err != nil {
		return notFoundOr(err, "delete user", "User not found")
	}
	return nil
}

func (s *userService) UpdateProfile(ctx context.Context, id string, in UpdateProfileInput) (*model.User, error) {
	u, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := applyProfile(u, in); err != nil {
		return nil, err
	}
	return s.save(ctx, u)
}

func (s *userService) Deactivate(ctx context.Context, id string) error {
	u, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	u.Active = false
	_, err = s.save(ctx, u)
	return err
}

func (s *userService) save(ctx context.Context, u *model.User) (*model.User, error) {
	out, err := s.users.Update(ctx, u)
	switch {
	case errors.Is(err, repository.ErrDuplicate):
		return nil, conflictf("Email already exists")
	case err != nil:
		return nil, notFoundOr(err, "update user", "User not found")
	}
	return out, nil
}

func applyProfile(u *model.User, in UpdateProfileInput) error {
	if in.Name != nil {
		u.Name = strings.TrimSpace(*in.Name)
	}
	if in.Password != nil {
		hash, err := security.HashPassword(*in.Password)
		if err != nil {
			return errors.Wrap(err, "hash password")
		}
		u.PasswordHash = hash
	}
	if in.Avatar != nil {
		u.Avatar = *in.Avatar
	}
	if in.Age != nil {
		u.Age = in.Age
	}
	if in.PhoneNumber != nil {
		u.PhoneNumber = *in.PhoneNumber
	}
	if in.Address != nil {
		u.Address = *in.Address
	}
	if in.Gender != nil {
		u.Gender = *in.Gender
	}
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
