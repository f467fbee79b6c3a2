package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/you/marketsvc/domain"
)

// UserRepositoryImpl implements domain.UserRepository using GORM
type UserRepositoryImpl struct {
	db *gorm.DB
}

// DBUser represents the database model for User (with GORM tags)
type DBUser struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Username     string    `gorm:"uniqueIndex;size:255;not null"`
	Email        string    `gorm:"uniqueIndex;size:255;not null"`
	PasswordHash string    `gorm:"column:password;size:255;not null"`
	Role         string    `gorm:"index;size:32;not null"`
	TokenVersion int       `gorm:"column:token_version;not null;default:0"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName returns the table name for GORM
func (DBUser) TableName() string {
	return "users"
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) domain.UserRepository {
	return &UserRepositoryImpl{db: db}
}

// Create implements domain.UserRepository
func (r *UserRepositoryImpl) Create(ctx context.Context, user *domain.User) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	dbUser := r.domainToDB(user)
	if err := r.db.WithContext(ctx).Create(dbUser).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return r.classifyDuplicate(ctx, user)
		}
		return translateStorageErr(err)
	}
	user.CreatedAt = dbUser.CreatedAt
	user.UpdatedAt = dbUser.UpdatedAt
	return nil
}

// classifyDuplicate decides which unique column a duplicate-key failure hit.
// Error path only; the service-layer lookups make this a rare race.
func (r *UserRepositoryImpl) classifyDuplicate(ctx context.Context, user *domain.User) error {
	var count int64
	if err := r.db.WithContext(ctx).Model(&DBUser{}).Where("email = ?", user.Email).Count(&count).Error; err == nil && count > 0 {
		return domain.ErrEmailTaken
	}
	return domain.ErrUsernameTaken
}

// FindByID implements domain.UserRepository
func (r *UserRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return r.findOne(ctx, "id = ?", id)
}

// FindByEmail implements domain.UserRepository. Lookup is an exact,
// case-sensitive match.
func (r *UserRepositoryImpl) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.findOne(ctx, "email = ?", email)
}

// FindByUsername implements domain.UserRepository
func (r *UserRepositoryImpl) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	return r.findOne(ctx, "username = ?", username)
}

func (r *UserRepositoryImpl) findOne(ctx context.Context, query string, arg interface{}) (*domain.User, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	var dbUser DBUser
	err := r.db.WithContext(ctx).Where(query, arg).First(&dbUser).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, translateStorageErr(err)
	}
	return r.dbToDomain(&dbUser), nil
}

// Update implements domain.UserRepository. The write is conditioned on the
// stored token_version still matching user.TokenVersion; zero rows affected
// means another writer advanced the counter first.
func (r *UserRepositoryImpl) Update(ctx context.Context, user *domain.User) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	res := r.db.WithContext(ctx).Model(&DBUser{}).
		Where("id = ? AND token_version = ?", user.ID, user.TokenVersion).
		Updates(map[string]interface{}{
			"username":   user.Username,
			"email":      user.Email,
			"password":   user.PasswordHash,
			"role":       string(user.Role),
			"updated_at": time.Now(),
		})
	if res.Error != nil {
		return translateStorageErr(res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrVersionConflict
	}
	return nil
}

// IncrementTokenVersion implements domain.UserRepository. The increment is a
// single-row atomic UPDATE, so concurrent logouts can never lose a bump.
func (r *UserRepositoryImpl) IncrementTokenVersion(ctx context.Context, userID uuid.UUID) (int, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	res := r.db.WithContext(ctx).Model(&DBUser{}).
		Where("id = ?", userID).
		UpdateColumn("token_version", gorm.Expr("token_version + 1"))
	if res.Error != nil {
		return 0, translateStorageErr(res.Error)
	}
	if res.RowsAffected == 0 {
		return 0, domain.ErrUserNotFound
	}

	var dbUser DBUser
	if err := r.db.WithContext(ctx).Select("token_version").Where("id = ?", userID).First(&dbUser).Error; err != nil {
		return 0, translateStorageErr(err)
	}
	return dbUser.TokenVersion, nil
}

// ListByRole implements domain.UserRepository
func (r *UserRepositoryImpl) ListByRole(ctx context.Context, role domain.Role) ([]domain.User, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	var dbUsers []DBUser
	if err := r.db.WithContext(ctx).Where("role = ?", string(role)).Order("created_at").Find(&dbUsers).Error; err != nil {
		return nil, translateStorageErr(err)
	}
	users := make([]domain.User, 0, len(dbUsers))
	for i := range dbUsers {
		users = append(users, *r.dbToDomain(&dbUsers[i]))
	}
	return users, nil
}

func (r *UserRepositoryImpl) domainToDB(user *domain.User) *DBUser {
	return &DBUser{
		ID:           user.ID,
		Username:     user.Username,
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
		Role:         string(user.Role),
		TokenVersion: user.TokenVersion,
		CreatedAt:    user.CreatedAt,
		UpdatedAt:    user.UpdatedAt,
	}
}

func (r *UserRepositoryImpl) dbToDomain(dbUser *DBUser) *domain.User {
	return &domain.User{
		ID:           dbUser.ID,
		Username:     dbUser.Username,
		Email:        dbUser.Email,
		PasswordHash: dbUser.PasswordHash,
		Role:         domain.Role(dbUser.Role),
		TokenVersion: dbUser.TokenVersion,
		CreatedAt:    dbUser.CreatedAt,
		UpdatedAt:    dbUser.UpdatedAt,
	}
}
