package model

type CourseLevel string

const (
	Beginner     CourseLevel = "beginner"
	Intermediate CourseLevel = "intermediate"
	Advanced     CourseLevel = "advanced"
)

// Course 静态课程目录，仅通过种子数据写入
// swagger:model Course
type Course struct {
	BaseModel
	Title       string      `gorm:"size:255;not null" json:"title"`
	Description string      `gorm:"type:text" json:"description"`
	Level       CourseLevel `gorm:"size:20;not null;index" json:"level"`
	OrderNum    int         `gorm:"default:0" json:"order_num"`
	Icon        string      `gorm:"size:50" json:"icon"`
	Articles    []Article   `gorm:"foreignKey:CourseID" json:"articles,omitempty"`
}

func (Course) TableName() string {
	return "courses"
}
