package contextkeys

// Используем кастомный тип, чтобы избежать коллизий
type contextKey string

// DBContextKey - ключ, по которому в gin.Context лежит *gorm.DB (пул или транзакция)
const DBContextKey = contextKey("db")

// CurrentUserKey - ключ для *models.User, загруженного AuthMiddleware
const CurrentUserKey = contextKey("current_user")
