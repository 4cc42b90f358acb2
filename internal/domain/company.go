package domain

const (
	DefaultCompanyName  = "Aadhya Eduverse"
	DefaultCompanyEmail = "aadhyaeduverse@divyaam.net"
)

// CompanyInfo is the site owner's profile. The row with the lowest id is the
// current one; callers never see more than one.
type CompanyInfo struct {
	ID         int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Name       string `gorm:"size:255" json:"name"`
	Tagline    string `gorm:"size:255" json:"tagline"`
	About      string `gorm:"type:text" json:"about"`
	Email      string `gorm:"size:255" json:"email"`
	Phone      string `gorm:"size:64" json:"phone"`
	Address    string `gorm:"size:512" json:"address"`
	LogoUrl    string `gorm:"size:1024" json:"logoUrl"`
	WebsiteUrl string `gorm:"size:1024" json:"websiteUrl"`
}

// TableName Specify table name
func (CompanyInfo) TableName() string {
	return "company_info"
}

// DefaultCompanyInfo is served while no company record has been stored.
func DefaultCompanyInfo() CompanyInfo {
	return CompanyInfo{
		Name:       DefaultCompanyName,
		Tagline:    "Empowering Education Through Technology",
		About:      "Aadhya Eduverse is an educational technology company offering AI-powered learning products and professional training services.",
		Email:      DefaultCompanyEmail,
		Phone:      "",
		Address:    "",
		LogoUrl:    "/images/logo.png",
		WebsiteUrl: "",
	}
}
