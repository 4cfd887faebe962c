package model

// PersonModel is the GORM-specific struct for the 'persons' table.
// Rows are hard-deleted, so there is no DeletedAt column.
type PersonModel struct {
	ID        int64  `gorm:"column:id;primaryKey;autoIncrement"`
	FirstName string `gorm:"column:first_name;type:text;not null"`
	LastName  string `gorm:"column:last_name;type:text;not null"`
}

// PersonsTable is the table holding person records.
const PersonsTable = "persons"

// TableName explicitly sets the table name for GORM.
func (PersonModel) TableName() string {
	return PersonsTable
}
