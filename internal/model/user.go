package model

// swagger:model User
type User struct {
	BaseModel
	Username    string `gorm:"size:50;uniqueIndex;not null" json:"username"`
	Email       string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	Password    string `gorm:"size:100;not null" json:"-"`
	TotalPoints int    `gorm:"default:0" json:"total_points"` // 测验积分累计，答对即加分
}

func (User) TableName() string {
	return "users"
}
