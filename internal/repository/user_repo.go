package repository

import (
	"gorm.io/gorm"

	"github.com/AbeerUrRahim/invoice-expense-saas/internal/models"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

// FindByEmail loads the user with roles attached; gorm.ErrRecordNotFound
// when the email is unknown.
func (r *UserRepository) FindByEmail(email string) (*models.User, error) {
	var user models.User
	if err := r.db.Preload("Roles").First(&user, "email = ?", email).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// EnsureRole creates the role if it does not exist and returns it.
func (r *UserRepository) EnsureRole(name string) (*models.Role, error) {
	var role models.Role
	err := r.db.Where(models.Role{Name: name}).FirstOrCreate(&role).Error
	if err != nil {
		return nil, err
	}
	return &role, nil
}
