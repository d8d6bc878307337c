package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims is what the header shows about the signed-in user. The API signs the
// token; this client only reads it and never trusts it for access decisions.
type Claims struct {
	Email  string `json:"email"`
	UserID int    `json:"id"`
	//has standard jwt field issued at, issued by etc
	jwt.RegisteredClaims
}
