package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"school-backend/internal/apperrors"
	"school-backend/internal/application/command"
	"school-backend/internal/application/interfaces"
	"school-backend/internal/application/mapper"
	"school-backend/internal/application/query"
	"school-backend/internal/domain/entities"
	"school-backend/internal/domain/repositories"
	"school-backend/internal/logger"
)

const userCacheTTL = 24 * time.Hour

type UserService struct {
	userRepo    repositories.UserRepository
	userCache   interfaces.UserCache
	tokenIssuer interfaces.TokenIssuer
	log         *logger.Logger
}

func NewUserService(
	userRepo repositories.UserRepository,
	userCache interfaces.UserCache,
	tokenIssuer interfaces.TokenIssuer,
	log *logger.Logger,
) interfaces.UserService {
	return &UserService{
		userRepo:    userRepo,
		userCache:   userCache,
		tokenIssuer: tokenIssuer,
		log:         log,
	}
}

// CreateUser registers a new user. Email uniqueness is checked before
// username, so a request conflicting on both reports the email conflict. The
// store's unique indexes back the pre-checks up against concurrent creates.
func (s *UserService) CreateUser(ctx context.Context, createCommand *command.CreateUserCommand) (*command.CreateUserCommandResult, error) {
	existingUser, err := s.userRepo.FindByEmail(ctx, createCommand.Email)
	if err != nil {
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	if existingUser != nil {
		return nil, apperrors.ErrEmailTaken
	}

	existingUser, err = s.userRepo.FindByUsername(ctx, createCommand.Username)
	if err != nil {
		return nil, fmt.Errorf("find user by username: %w", err)
	}
	if existingUser != nil {
		return nil, apperrors.ErrUsernameTaken
	}

	newUser := entities.NewUser(createCommand.Username, createCommand.Email, createCommand.FullName, createCommand.Password)
	validatedUser, err := entities.NewValidatedUser(newUser)
	if err != nil {
		return nil, err
	}

	if err := validatedUser.HashPassword(); err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	createdUser, err := s.userRepo.Create(ctx, validatedUser)
	if err != nil {
		if conflictErr := s.resolveDuplicate(ctx, err, createCommand.Email); conflictErr != nil {
			return nil, conflictErr
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	s.log.Infof("user created: id=%d username=%s", createdUser.ID, createdUser.Username)

	return &command.CreateUserCommandResult{
		Result: mapper.NewUserResultFromEntity(createdUser),
	}, nil
}

func (s *UserService) FindUserByID(ctx context.Context, id uint) (*query.UserQueryResult, error) {
	if s.userCache != nil {
		if cached, err := s.userCache.GetUser(ctx, id); err == nil && cached != nil {
			return &query.UserQueryResult{Result: mapper.NewUserResultFromEntity(cached)}, nil
		}
	}

	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find user by id: %w", err)
	}
	if user == nil {
		return nil, apperrors.ErrUserNotFound
	}

	if s.userCache != nil {
		if err := s.userCache.SetUser(ctx, user, userCacheTTL); err != nil {
			s.log.Warnf("cache user %d: %v", id, err)
		}
	}

	return &query.UserQueryResult{Result: mapper.NewUserResultFromEntity(user)}, nil
}

func (s *UserService) ListUsers(ctx context.Context, offset, limit int) (*query.UserListQueryResult, error) {
	users, err := s.userRepo.List(ctx, offset, limit)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	return &query.UserListQueryResult{
		Result: mapper.NewUserResultsFromEntities(users),
	}, nil
}

// UpdateUser applies only the fields present in the command. Uniqueness of a
// changed email or username is not pre-checked here; the store's unique
// indexes reject duplicates, which surface as a conflict.
func (s *UserService) UpdateUser(ctx context.Context, id uint, updateCommand *command.UpdateUserCommand) (*command.UpdateUserCommandResult, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find user by id: %w", err)
	}
	if user == nil {
		return nil, apperrors.ErrUserNotFound
	}

	if err := user.ApplyPartial(updateCommand.Username, updateCommand.Email, updateCommand.FullName, updateCommand.Password); err != nil {
		return nil, err
	}

	validatedUser, err := entities.NewValidatedUser(user)
	if err != nil {
		return nil, err
	}

	updatedUser, err := s.userRepo.Update(ctx, validatedUser)
	if err != nil {
		if errors.Is(err, repositories.ErrDuplicateKey) {
			if updateCommand.Email != nil {
				return nil, apperrors.ErrEmailTaken.WithCause(err)
			}
			return nil, apperrors.ErrUsernameTaken.WithCause(err)
		}
		return nil, fmt.Errorf("update user: %w", err)
	}

	s.invalidate(ctx, id)
	s.log.Infof("user updated: id=%d", id)

	return &command.UpdateUserCommandResult{
		Result: mapper.NewUserResultFromEntity(updatedUser),
	}, nil
}

func (s *UserService) DeleteUser(ctx context.Context, id uint) error {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("find user by id: %w", err)
	}
	if user == nil {
		return apperrors.ErrUserNotFound
	}

	if err := s.userRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}

	s.invalidate(ctx, id)
	s.log.Infof("user deleted: id=%d", id)
	return nil
}

func (s *UserService) LoginUser(ctx context.Context, loginCommand *command.LoginUserCommand) (*command.LoginUserCommandResult, error) {
	user, err := s.userRepo.FindByUsername(ctx, loginCommand.Username)
	if err != nil {
		return nil, fmt.Errorf("find user by username: %w", err)
	}
	if user == nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	if err := user.CheckPassword(loginCommand.Password); err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, err := s.tokenIssuer.GenerateToken(user.ID)
	if err != nil {
		return nil, fmt.Errorf("generate token: %w", err)
	}

	return &command.LoginUserCommandResult{
		Token: token,
		User:  mapper.NewUserResultFromEntity(user),
	}, nil
}

// resolveDuplicate re-runs the uniqueness checks after the store rejected an
// insert, so a race lost to a concurrent create still reports which field
// conflicted, email first.
func (s *UserService) resolveDuplicate(ctx context.Context, err error, email string) error {
	if !errors.Is(err, repositories.ErrDuplicateKey) {
		return nil
	}
	if existing, findErr := s.userRepo.FindByEmail(ctx, email); findErr == nil && existing != nil {
		return apperrors.ErrEmailTaken.WithCause(err)
	}
	return apperrors.ErrUsernameTaken.WithCause(err)
}

func (s *UserService) invalidate(ctx context.Context, id uint) {
	if s.userCache == nil {
		return
	}
	if err := s.userCache.DeleteUser(ctx, id); err != nil {
		s.log.Warnf("invalidate cached user %d: %v", id, err)
	}
}
