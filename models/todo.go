package models

// Todo model. Owner is the authenticated user that created the item;
// rows are removed when the owning user is deleted.
type Todo struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Title       string `gorm:"not null" json:"title"`
	Description string `gorm:"not null" json:"description"`
	Done        bool   `gorm:"default:false" json:"done"`
	Owner       uint   `gorm:"column:owner;not null;index" json:"owner"`

	User User `gorm:"foreignKey:Owner;constraint:OnDelete:CASCADE" json:"-"`
}

func (Todo) TableName() string {
	return "todos"
}
