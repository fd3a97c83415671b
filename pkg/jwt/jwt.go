package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims incluye los claims estándar JWT más los campos propios de la aplicación.
// Se añaden EntityID y Role para que el middleware pueda decidir sin consultar la DB.
// El payload nunca lleva material de contraseñas.
type Claims struct {
	jwt.RegisteredClaims
	UserID   int64  `json:"user_id"`
	EntityID int64  `json:"entity_id"`
	Role     string `json:"role"` // "admin" | "manager" | "seller"
}

// Payload identidad decodificada de un token válido.
type Payload struct {
	UserID   int64
	EntityID int64
	Role     string
}

// Generate genera un token JWT firmado (HS256) que incluye userID, entityID y role.
// expMinutes controla la vigencia; 1440 equivale al día por defecto.
func Generate(secret string, userID, entityID int64, role, issuer string, expMinutes int) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("jwt: secret vacío")
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   fmt.Sprintf("%d", userID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(expMinutes) * time.Minute)),
		},
		UserID:   userID,
		EntityID: entityID,
		Role:     role,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Parse valida el token y devuelve la identidad {userID, entityID, role}.
// Retorna error si el token es inválido, expirado o tiene firma incorrecta.
// La expiración se compara contra el reloj del verificador, sin compensar skew.
func Parse(secret, tokenString string) (*Payload, error) {
	if secret == "" {
		return nil, fmt.Errorf("jwt: secret vacío")
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("claims inválidos")
	}
	return &Payload{UserID: claims.UserID, EntityID: claims.EntityID, Role: claims.Role}, nil
}
