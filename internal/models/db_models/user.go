package db_models

const (
	RoleUser    = "user"
	RoleManager = "manager"
	RoleAdmin   = "admin"
)

type User struct {
	BaseModel
	Name         string `json:"name"`
	Email        string `gorm:"uniqueIndex" json:"email"`
	Phone        string `json:"phone"`
	PasswordHash string `json:"-"`
	Role         string `gorm:"default:user" json:"role"`
}
