package entity

type User struct {
	Base
	Email        string `db:"email"`
	FirstName    string `db:"first_name"`
	LastName     string `db:"last_name"`
	PasswordHash string `db:"password_hash"`
	IsProvider   bool   `db:"is_provider"`
}
