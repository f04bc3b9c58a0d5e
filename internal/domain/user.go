package domain

import (
	"github.com/golang-jwt/jwt/v5"
)

// User é o operador configurado para acessar a API quando a autenticação está habilitada
type User struct {
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
}

type Claims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}
