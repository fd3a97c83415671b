package password

import "golang.org/x/crypto/bcrypt"

// DefaultCost rondas de bcrypt por defecto (mismo factor que el seed original).
const DefaultCost = 10

// Hasher encapsula el hashing de contraseñas con bcrypt.
// El costo se fija al construir y no se muta después (configuración de proceso).
type Hasher struct {
	cost int
}

// NewHasher construye un Hasher; un costo fuera del rango válido cae a DefaultCost.
func NewHasher(cost int) *Hasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultCost
	}
	return &Hasher{cost: cost}
}

// Hash genera un hash bcrypt salteado y autocontenido (algoritmo + costo + salt + digest).
// Dos llamadas con el mismo texto producen hashes distintos; sólo Verify los relaciona.
func (h *Hasher) Hash(plain string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), h.cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Verify compara en tiempo constante el texto plano contra el hash almacenado.
// Un hash malformado o una contraseña incorrecta devuelven false, nunca panic.
func (h *Hasher) Verify(plain, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
