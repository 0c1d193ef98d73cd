package middleware

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"inspection_billing/pkg"

	"github.com/gin-gonic/gin"
	jwtlib "github.com/golang-jwt/jwt/v5"
)

const (
	ContextCompanyID = "company_id"
	ContextUserID    = "user_id"
)

// Claims carried by the bearer tokens issued by the platform's auth service.
// CompanyID scopes every inspection the caller can touch.
type Claims struct {
	CompanyID string `json:"company_id"`
	UserID    string `json:"user_id,omitempty"`
	Role      string `json:"role,omitempty"`
	jwtlib.RegisteredClaims
}

var (
	errAuthHeaderMissing = pkg.NewDomainErrorSimple("AUTH_HEADER_MISSING", "Authorization header is required", http.StatusUnauthorized)
	errInvalidAuthFormat = pkg.NewDomainErrorSimple("INVALID_AUTH_FORMAT", "Authorization header must be 'Bearer <token>'", http.StatusUnauthorized)
	errInvalidToken      = pkg.NewDomainErrorSimple("INVALID_TOKEN", "Invalid or expired token", http.StatusUnauthorized)
)

// JWTAuth validates HS256 bearer tokens and stores the company scope in the gin context.
func JWTAuth(secret string) gin.HandlerFunc {
	key := []byte(secret)
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abort(c, errAuthHeaderMissing)
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" || strings.TrimSpace(parts[1]) == "" {
			abort(c, errInvalidAuthFormat)
			return
		}

		claims, err := ParseToken(key, strings.TrimSpace(parts[1]))
		if err != nil {
			abort(c, errInvalidToken)
			return
		}

		c.Set(ContextCompanyID, claims.CompanyID)
		if claims.UserID != "" {
			c.Set(ContextUserID, claims.UserID)
		}
		c.Next()
	}
}

// ParseToken validates the signature and expiry and requires a company_id claim.
func ParseToken(secret []byte, tokenStr string) (*Claims, error) {
	token, err := jwtlib.ParseWithClaims(tokenStr, &Claims{}, func(t *jwtlib.Token) (any, error) {
		return secret, nil
	}, jwtlib.WithValidMethods([]string{jwtlib.SigningMethodHS256.Alg()}), jwtlib.WithExpirationRequired())
	if err != nil || !token.Valid {
		return nil, errors.New("invalid token")
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || strings.TrimSpace(claims.CompanyID) == "" {
		return nil, errors.New("invalid claims")
	}
	return claims, nil
}

// GenerateToken signs a token for the given company. Used by tooling and tests.
func GenerateToken(secret []byte, companyID, userID string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		CompanyID: companyID,
		UserID:    userID,
		RegisteredClaims: jwtlib.RegisteredClaims{
			ExpiresAt: jwtlib.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwtlib.NewNumericDate(now),
		},
	}
	return jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims).SignedString(secret)
}

// CompanyID returns the company scope set by JWTAuth, or "" on unauthenticated routes.
func CompanyID(c *gin.Context) string {
	return c.GetString(ContextCompanyID)
}

func abort(c *gin.Context, appErr *pkg.AppError) {
	c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
}
