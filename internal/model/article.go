package model

// swagger:model Article
type Article struct {
	BaseModel
	CourseID uint   `gorm:"index;not null" json:"course_id"`
	Title    string `gorm:"size:255;not null" json:"title"`
	Content  string `gorm:"type:text;not null" json:"content"`
	OrderNum int    `gorm:"default:0" json:"order_num"`
	VideoURL string `gorm:"size:255" json:"video_url,omitempty"`
	Quizzes  []Quiz `gorm:"foreignKey:ArticleID" json:"quizzes,omitempty"`
}

func (Article) TableName() string {
	return "articles"
}
