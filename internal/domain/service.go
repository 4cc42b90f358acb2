package domain

// Service categories rendered as fixed buckets on the home page.
const (
	CategoryTraining        = "Training"
	CategoryCompetitiveExam = "Competitive Exam"
	CategoryDevelopment     = "Development"
)

// HomeCategories lists the buckets of the home page in display order.
var HomeCategories = []string{
	CategoryTraining,
	CategoryCompetitiveExam,
	CategoryDevelopment,
}

// Service is an offering (training course, exam coaching, development work).
// Category is a free-text tag matched exactly.
type Service struct {
	ID               int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Name             string `gorm:"size:255" json:"name"`
	Category         string `gorm:"size:100;index" json:"category"`
	ShortDescription string `gorm:"size:512" json:"shortDescription"`
	Description      string `gorm:"type:text" json:"description"`
	ImageUrl         string `gorm:"size:1024" json:"imageUrl"`
}

// TableName Specify table name
func (Service) TableName() string {
	return "services"
}
