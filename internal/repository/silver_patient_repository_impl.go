package repository

import (
	"context"
	"errors"

	"github.com/Avinash-0612/fhir-healthcare-lakehouse/internal/domain/entity"
	domainRepo "github.com/Avinash-0612/fhir-healthcare-lakehouse/internal/domain/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type silverPatientRepository struct{}

func NewSilverPatientRepository() domainRepo.SilverPatientRepository {
	return &silverPatientRepository{}
}

func (r *silverPatientRepository) Upsert(ctx context.Context, db *gorm.DB, patient *entity.SilverPatient) error {
	return db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "patient_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"name_initial", "birth_date", "gender", "zip_region", "mrn_masked",
			"ssn_masked", "ingestion_timestamp", "data_source", "compliance_flag",
			"updated_at",
		}),
	}).Create(patient).Error
}

func (r *silverPatientRepository) FindAll(ctx context.Context, db *gorm.DB, offset, limit int) ([]entity.SilverPatient, error) {
	var patients []entity.SilverPatient
	query := db.WithContext(ctx).Order("id")
	if offset > 0 {
		query = query.Offset(offset)
	}
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&patients).Error; err != nil {
		return nil, err
	}
	return patients, nil
}

func (r *silverPatientRepository) FindByPatientID(ctx context.Context, db *gorm.DB, patientID string) (*entity.SilverPatient, error) {
	var patient entity.SilverPatient
	err := db.WithContext(ctx).Where("patient_id = ?", patientID).First(&patient).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &patient, nil
}

func (r *silverPatientRepository) Count(ctx context.Context, db *gorm.DB) (int64, error) {
	var count int64
	err := db.WithContext(ctx).Model(&entity.SilverPatient{}).Count(&count).Error
	return count, err
}
