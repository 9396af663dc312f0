package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims umfasst die Standard-JWT-Claims plus die anwendungseigenen Felder.
// Position ist enthalten, damit die Berechtigungs-Middleware ohne DB-Abfrage entscheiden kann.
type Claims struct {
	jwt.RegisteredClaims
	UserID   string `json:"user_id"`
	Name     string `json:"name"`
	Position string `json:"position"` // Admin | Büro | Projektleiter | Gruppenleiter | Worker | Lager
}

// Generate erzeugt ein signiertes JWT mit userID, Anzeigename und Position.
// Die Ablaufzeit ist die einzige Sitzungsgrenze; es gibt keine weiteren Ad-hoc-Prüfungen.
func Generate(secret, userID, name, position, issuer string, expMinutes int) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("jwt: leeres Secret")
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(expMinutes) * time.Minute)),
		},
		UserID:   userID,
		Name:     name,
		Position: position,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Parse validiert das Token und liefert userID, Name und Position.
// Fehler bei ungültigem, abgelaufenem oder falsch signiertem Token.
func Parse(secret, tokenString string) (userID, name, position string, err error) {
	if secret == "" {
		return "", "", "", fmt.Errorf("jwt: leeres Secret")
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unerwartete Signaturmethode: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return "", "", "", err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return "", "", "", fmt.Errorf("ungültige Claims")
	}
	return claims.UserID, claims.Name, claims.Position, nil
}
