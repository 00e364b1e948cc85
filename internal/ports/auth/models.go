package auth

import "time"

// Claims representa la identidad ya resuelta de un request.
// Subject es el email; UserID y Role vienen de la fila actual del usuario.
type Claims struct {
	UserID  int64
	Subject string
	Role    string
}

// Token es lo que devuelve el login.
type Token struct {
	AccessToken string
	TokenType   string
	ExpiresAt   time.Time
}
