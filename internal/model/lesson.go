package model

// Lesson 视频课时，挑战题挂在课时下
// swagger:model Lesson
type Lesson struct {
	BaseModel
	Title       string      `gorm:"size:255;not null" json:"title"`
	Description string      `gorm:"type:text" json:"description"`
	VideoURL    string      `gorm:"size:255" json:"video_url"`
	Duration    string      `gorm:"size:20" json:"duration"`
	OrderNum    int         `gorm:"default:0" json:"order_num"`
	Challenges  []Challenge `gorm:"foreignKey:LessonID" json:"challenges,omitempty"`
}

func (Lesson) TableName() string {
	return "lessons"
}
