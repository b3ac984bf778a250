package repository

import (
	"asistencia-cosmos-backend/internal/model"

	"gorm.io/gorm"
)

type AdminRepository interface {
	GetAll() ([]model.Admin, error)
	GetByID(id string) (*model.Admin, error)
	Create(admin model.Admin) error
	Update(admin *model.Admin) error
}

type adminRepository struct {
	db *gorm.DB
}

func NewAdminRepository(db *gorm.DB) AdminRepository {
	return &adminRepository{db}
}

func (r *adminRepository) GetAll() ([]model.Admin, error) {
	var admins []model.Admin
	err := r.db.Find(&admins).Error
	return admins, err
}

func (r *adminRepository) GetByID(id string) (*model.Admin, error) {
	var admin model.Admin
	err := r.db.Where("id = ?", id).First(&admin).Error
	if err != nil {
		return nil, err
	}
	return &admin, nil
}

func (r *adminRepository) Create(admin model.Admin) error {
	return r.db.Create(&admin).Error
}

func (r *adminRepository) Update(admin *model.Admin) error {
	return r.db.Save(admin).Error
}
