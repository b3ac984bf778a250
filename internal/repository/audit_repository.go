package repository

import (
	"asistencia-cosmos-backend/internal/model"

	"gorm.io/gorm"
)

type AuditRepository interface {
	Log(userID, accion, detalle string, exito bool)
	Recent(limit int) ([]model.AuditLog, error)
}

type auditRepository struct {
	db *gorm.DB
}

func NewAuditRepository(db *gorm.DB) AuditRepository {
	return &auditRepository{db}
}

// Log nunca devuelve error: el rastro de auditoría no debe bloquear la
// acción que lo origina.
func (r *auditRepository) Log(userID, accion, detalle string, exito bool) {
	r.db.Create(&model.AuditLog{
		UserID:  userID,
		Accion:  accion,
		Detalle: detalle,
		Exito:   exito,
	})
}

func (r *auditRepository) Recent(limit int) ([]model.AuditLog, error) {
	if limit <= 0 {
		limit = 100
	}
	var logs []model.AuditLog
	err := r.db.Order("created_at desc").Limit(limit).Find(&logs).Error
	return logs, err
}
