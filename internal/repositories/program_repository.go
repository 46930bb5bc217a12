package repositories

import (
	"errors"

	"fitness_backend/internal/models"

	"gorm.io/gorm"
)

var ErrProgramNotFound = errors.New("program not found")

type ProgramRepository interface {
	Create(db *gorm.DB, program *models.Program) error
	FindByID(db *gorm.DB, id string) (*models.Program, error)
	FindActive(db *gorm.DB) ([]models.Program, error)
	Update(db *gorm.DB, program *models.Program) error
}

type ProgramRepositoryImpl struct{}

func NewProgramRepository() ProgramRepository {
	return &ProgramRepositoryImpl{}
}

func (r *ProgramRepositoryImpl) Create(db *gorm.DB, program *models.Program) error {
	return db.Create(program).Error
}

func (r *ProgramRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Program, error) {
	var program models.Program
	if err := db.First(&program, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProgramNotFound
		}
		return nil, err
	}
	return &program, nil
}

func (r *ProgramRepositoryImpl) FindActive(db *gorm.DB) ([]models.Program, error) {
	var programs []models.Program
	err := db.Where("is_active = ?", true).Order("created_at ASC").Find(&programs).Error
	return programs, err
}

func (r *ProgramRepositoryImpl) Update(db *gorm.DB, program *models.Program) error {
	return db.Save(program).Error
}
