// Package model defines the persisted entities of userdash.
package model

// User is a registered account. PasswordHash holds the argon2id PHC string,
// never the plaintext. Username is immutable after registration.
type User struct {
	Id           int    `json:"id" gorm:"primaryKey;autoIncrement"`
	Username     string `json:"username" gorm:"uniqueIndex;not null"`
	PasswordHash string `json:"-" gorm:"column:password_hash;not null"`
	Name         string `json:"name" gorm:"not null"`
}
