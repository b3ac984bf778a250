package repository

import (
	"asistencia-cosmos-backend/internal/model"

	"gorm.io/gorm"
)

type PendingSyncRepository interface {
	Enqueue(registroID, lastError string) error
	GetAll() ([]model.PendingSync, error)
	Remove(registroID string) error
	Count() (int64, error)
}

type pendingSyncRepository struct {
	db *gorm.DB
}

func NewPendingSyncRepository(db *gorm.DB) PendingSyncRepository {
	return &pendingSyncRepository{db}
}

// Enqueue registra el fallo. Si el registro ya estaba en cola solo se
// actualiza el contador de intentos y el último error.
func (r *pendingSyncRepository) Enqueue(registroID, lastError string) error {
	var pendiente model.PendingSync
	err := r.db.Where("registro_id = ?", registroID).First(&pendiente).Error
	if err == gorm.ErrRecordNotFound {
		return r.db.Create(&model.PendingSync{
			RegistroID: registroID,
			Intentos:   1,
			LastError:  lastError,
		}).Error
	}
	if err != nil {
		return err
	}
	pendiente.Intentos++
	pendiente.LastError = lastError
	return r.db.Save(&pendiente).Error
}

func (r *pendingSyncRepository) GetAll() ([]model.PendingSync, error) {
	var pendientes []model.PendingSync
	err := r.db.Order("created_at asc").Find(&pendientes).Error
	return pendientes, err
}

func (r *pendingSyncRepository) Remove(registroID string) error {
	return r.db.Where("registro_id = ?", registroID).Delete(&model.PendingSync{}).Error
}

func (r *pendingSyncRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&model.PendingSync{}).Count(&count).Error
	return count, err
}
