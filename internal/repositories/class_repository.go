package repositories

import (
	"errors"

	"fitness_backend/internal/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var (
	ErrClassNotFound = errors.New("class not found")
	ErrClassFull     = errors.New("class is full")
)

// ClassFilter - фильтры расписания. Date задает точный день,
// иначе берутся занятия начиная с From.
type ClassFilter struct {
	Date      *datatypes.Date
	From      datatypes.Date
	TrainerID string
	ProgramID string
}

type ClassRepository interface {
	Create(db *gorm.DB, class *models.Class) error
	FindByID(db *gorm.DB, id string) (*models.Class, error)
	FindActive(db *gorm.DB, filter ClassFilter) ([]models.Class, error)

	// Счетчик записей меняется только условными UPDATE
	IncrementEnrolled(db *gorm.DB, classID string) error
	DecrementEnrolled(db *gorm.DB, classID string) error
}

type ClassRepositoryImpl struct{}

func NewClassRepository() ClassRepository {
	return &ClassRepositoryImpl{}
}

func withClassRelations(db *gorm.DB) *gorm.DB {
	return db.Preload("Program").Preload("Trainer").Preload("Trainer.User")
}

func (r *ClassRepositoryImpl) Create(db *gorm.DB, class *models.Class) error {
	return db.Omit("Program", "Trainer").Create(class).Error
}

func (r *ClassRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Class, error) {
	var class models.Class
	if err := withClassRelations(db).First(&class, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrClassNotFound
		}
		return nil, err
	}
	return &class, nil
}

func (r *ClassRepositoryImpl) FindActive(db *gorm.DB, filter ClassFilter) ([]models.Class, error) {
	query := withClassRelations(db).Model(&models.Class{}).Where("is_active = ?", true)

	if filter.Date != nil {
		query = query.Where("date = ?", *filter.Date)
	} else {
		query = query.Where("date >= ?", filter.From)
	}
	if filter.TrainerID != "" {
		query = query.Where("trainer_id = ?", filter.TrainerID)
	}
	if filter.ProgramID != "" {
		query = query.Where("program_id = ?", filter.ProgramID)
	}

	var classes []models.Class
	err := query.Order("date ASC").Order("start_time ASC").Find(&classes).Error
	return classes, err
}

// IncrementEnrolled занимает место. Если мест нет, строка не обновится
// и вернется ErrClassFull.
func (r *ClassRepositoryImpl) IncrementEnrolled(db *gorm.DB, classID string) error {
	result := db.Model(&models.Class{}).
		Where("id = ? AND enrolled_count < max_participants", classID).
		UpdateColumn("enrolled_count", gorm.Expr("enrolled_count + ?", 1))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrClassFull
	}
	return nil
}

// DecrementEnrolled освобождает место, не опускаясь ниже нуля
func (r *ClassRepositoryImpl) DecrementEnrolled(db *gorm.DB, classID string) error {
	return db.Model(&models.Class{}).
		Where("id = ? AND enrolled_count > ?", classID, 0).
		UpdateColumn("enrolled_count", gorm.Expr("enrolled_count - ?", 1)).Error
}
