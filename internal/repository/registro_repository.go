package repository

import (
	"asistencia-cosmos-backend/internal/model"

	"gorm.io/gorm"
)

type RegistroRepository interface {
	Create(registro model.Registro) error
	CreateMany(registros []model.Registro) error
	GetAll() ([]model.Registro, error)
	GetByID(id string) (*model.Registro, error)
	Update(registro *model.Registro) error
	Delete(id string) error
	GetByTrabajador(trabajadorID string, limit int) ([]model.Registro, error)
	GetByFecha(fecha string) ([]model.Registro, error)
	GetByRango(desde, hasta string) ([]model.Registro, error)
	GetUltimoDelDia(trabajadorID, fecha string) (*model.Registro, error)
}

type registroRepository struct {
	db *gorm.DB
}

func NewRegistroRepository(db *gorm.DB) RegistroRepository {
	return &registroRepository{db}
}

func (r *registroRepository) Create(registro model.Registro) error {
	return r.db.Create(&registro).Error
}

func (r *registroRepository) CreateMany(registros []model.Registro) error {
	if len(registros) == 0 {
		return nil
	}
	return r.db.Create(&registros).Error
}

func (r *registroRepository) GetAll() ([]model.Registro, error) {
	var registros []model.Registro
	err := r.db.Order("timestamp desc").Find(&registros).Error
	return registros, err
}

func (r *registroRepository) GetByID(id string) (*model.Registro, error) {
	var registro model.Registro
	err := r.db.Where("id = ?", id).First(&registro).Error
	if err != nil {
		return nil, err
	}
	return &registro, nil
}

func (r *registroRepository) Update(registro *model.Registro) error {
	return r.db.Save(registro).Error
}

func (r *registroRepository) Delete(id string) error {
	return r.db.Where("id = ?", id).Delete(&model.Registro{}).Error
}

func (r *registroRepository) GetByTrabajador(trabajadorID string, limit int) ([]model.Registro, error) {
	var registros []model.Registro
	q := r.db.Where("trabajador_id = ?", trabajadorID).Order("timestamp desc")
	if limit > 0 {
		q = q.Limit(limit)
	}
	err := q.Find(&registros).Error
	return registros, err
}

func (r *registroRepository) GetByFecha(fecha string) ([]model.Registro, error) {
	var registros []model.Registro
	err := r.db.Where("fecha = ?", fecha).Order("timestamp asc").Find(&registros).Error
	return registros, err
}

func (r *registroRepository) GetByRango(desde, hasta string) ([]model.Registro, error) {
	var registros []model.Registro
	err := r.db.Where("fecha >= ? AND fecha <= ?", desde, hasta).Order("timestamp asc").Find(&registros).Error
	return registros, err
}

func (r *registroRepository) GetUltimoDelDia(trabajadorID, fecha string) (*model.Registro, error) {
	var registro model.Registro
	err := r.db.Where("trabajador_id = ? AND fecha = ?", trabajadorID, fecha).
		Order("timestamp desc").First(&registro).Error
	if err != nil {
		return nil, err
	}
	return &registro, nil
}
