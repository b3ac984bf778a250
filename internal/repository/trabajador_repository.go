package repository

import (
	"asistencia-cosmos-backend/internal/model"

	"gorm.io/gorm"
)

type TrabajadorRepository interface {
	GetAll() ([]model.Trabajador, error)
	GetByID(id string) (*model.Trabajador, error)
	FindByDocumento(documento string) (*model.Trabajador, error)
	Create(trabajador model.Trabajador) error
	Update(trabajador *model.Trabajador) error
	Delete(id string) error
}

type trabajadorRepository struct {
	db *gorm.DB
}

func NewTrabajadorRepository(db *gorm.DB) TrabajadorRepository {
	return &trabajadorRepository{db}
}

func (r *trabajadorRepository) GetAll() ([]model.Trabajador, error) {
	var trabajadores []model.Trabajador
	err := r.db.Order("nombre asc").Find(&trabajadores).Error
	return trabajadores, err
}

func (r *trabajadorRepository) GetByID(id string) (*model.Trabajador, error) {
	var trabajador model.Trabajador
	err := r.db.Where("id = ?", id).First(&trabajador).Error
	if err != nil {
		return nil, err
	}
	return &trabajador, nil
}

func (r *trabajadorRepository) FindByDocumento(documento string) (*model.Trabajador, error) {
	var trabajador model.Trabajador
	err := r.db.Where("documento = ?", documento).First(&trabajador).Error
	if err != nil {
		return nil, err
	}
	return &trabajador, nil
}

func (r *trabajadorRepository) Create(trabajador model.Trabajador) error {
	return r.db.Create(&trabajador).Error
}

func (r *trabajadorRepository) Update(trabajador *model.Trabajador) error {
	return r.db.Save(trabajador).Error
}

func (r *trabajadorRepository) Delete(id string) error {
	return r.db.Where("id = ?", id).Delete(&model.Trabajador{}).Error
}
