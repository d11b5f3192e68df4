package mysql

import (
	"context"
	"errors"

	gomysql "github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Guyuepp/blog-discussion/domain"
	"github.com/Guyuepp/blog-discussion/internal/repository/mysql/model"
)

// mysql duplicate entry
const errDuplicateEntry = 1062

type userRepository struct {
	DB *gorm.DB
}

var _ domain.UserRepository = (*userRepository)(nil)

// NewUserRepository will create an implementation of domain.UserRepository
func NewUserRepository(db *gorm.DB) *userRepository {
	return &userRepository{
		DB: db,
	}
}

func (m *userRepository) GetByID(ctx context.Context, id string) (domain.User, error) {
	return m.getOne(ctx, "id = ?", id)
}

func (m *userRepository) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	return m.getOne(ctx, "email = ?", email)
}

func (m *userRepository) getOne(ctx context.Context, query string, arg any) (domain.User, error) {
	var user model.User
	err := m.DB.WithContext(ctx).First(&user, query, arg).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.User{}, domain.ErrNotFound
	}
	if err != nil {
		return domain.User{}, err
	}
	return user.ToDomain(), nil
}

func (m *userRepository) Insert(ctx context.Context, u *domain.User) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	userModel := model.NewUserFromDomain(u)

	err := m.DB.WithContext(ctx).Create(userModel).Error
	var myErr *gomysql.MySQLError
	if errors.As(err, &myErr) && myErr.Number == errDuplicateEntry {
		return domain.ErrConflict
	}
	return err
}

func (m *userRepository) GetByIDs(ctx context.Context, uids []string) ([]domain.User, error) {
	if len(uids) == 0 {
		return []domain.User{}, nil
	}
	var users []model.User
	err := m.DB.WithContext(ctx).Model(&model.User{}).Where("id in ?", uids).Find(&users).Error
	if err != nil {
		return nil, err
	}
	res := make([]domain.User, len(users))
	for i := range users {
		res[i] = users[i].ToDomain()
	}
	return res, nil
}
