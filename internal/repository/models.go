package repository

// User is a row of the users table. Column order matches the table definition so
// SELECT * and RETURNING * map one to one.
type User struct {
	ID       int64  `gorm:"column:id;primaryKey"`
	Username string `gorm:"column:username"`
	Password string `gorm:"column:password"`
	Email    string `gorm:"column:email"`
}
