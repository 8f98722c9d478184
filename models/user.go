package models

// User 用户表，username 为主键，password 只保存 bcrypt 哈希
type User struct {
	Username  string `gorm:"column:username;primaryKey;size:64" json:"username"`
	Password  string `gorm:"column:password;size:255;not null" json:"-"`
	Email     string `gorm:"column:email;size:255;not null;uniqueIndex:uk_blog_users_email" json:"email"`
	FirstName string `gorm:"column:first_name;size:100;not null" json:"first_name"`
	LastName  string `gorm:"column:last_name;size:100;not null" json:"last_name"`
}

func (User) TableName() string {
	return "blog_users"
}
