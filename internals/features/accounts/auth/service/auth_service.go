package service

import (
	"crypto/hmac"
	"crypto/sha256"
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"acadex_backend/internals/configs"
	authModel "acadex_backend/internals/features/accounts/auth/model"
	userModel "acadex_backend/internals/features/accounts/user/model"
)

const (
	accessTTLDefault  = 24 * time.Hour
	refreshTTLDefault = 7 * 24 * time.Hour
)

// Typed failures so controllers can map them to 401 without string matching.
var (
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrUnknownRefreshToken = errors.New("unknown refresh token")
)

func nowUTC() time.Time { return time.Now().UTC() }

func getJWTSecret() (string, error) {
	secret := strings.TrimSpace(configs.JWTSecret)
	if secret == "" {
		return "", errors.New("JWT_SECRET is not set")
	}
	return secret, nil
}

func getRefreshSecret() (string, error) {
	secret := strings.TrimSpace(configs.JWTRefreshSecret)
	if secret == "" {
		return "", errors.New("JWT_REFRESH_SECRET is not set")
	}
	return secret, nil
}

func computeRefreshHash(token, secret string) []byte {
	m := hmac.New(sha256.New, []byte(secret))
	_, _ = m.Write([]byte(token))
	return m.Sum(nil)
}

/* ==========================
   Authentication
========================== */

// Authenticate resolves a username against the student table first
// (matric number), then the lecturer table (staff id), and verifies the
// password. Returns ErrInvalidCredentials for any miss so the caller cannot
// distinguish "no such user" from "wrong password".
func Authenticate(db *gorm.DB, username, password string) (*userModel.UserModel, error) {
	// matric numbers and staff ids are stored upper-case
	username = strings.ToUpper(strings.TrimSpace(username))
	if username == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	var student userModel.StudentModel
	if err := db.Preload("User").First(&student, "matric_number = ?", username).Error; err == nil {
		if student.User != nil && student.User.IsActive && CheckPassword(student.User.Password, password) {
			return student.User, nil
		}
		return nil, ErrInvalidCredentials
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	var lecturer userModel.LecturerModel
	if err := db.Preload("User").First(&lecturer, "staff_id = ?", username).Error; err == nil {
		if lecturer.User != nil && lecturer.User.IsActive && CheckPassword(lecturer.User.Password, password) {
			return lecturer.User, nil
		}
		return nil, ErrInvalidCredentials
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	return nil, ErrInvalidCredentials
}

/* ==========================
   Token issuance
========================== */

func buildAccessClaims(u *userModel.UserModel, now time.Time) jwt.MapClaims {
	return jwt.MapClaims{
		"sub":        u.ID.String(),
		"typ":        "access",
		"role":       u.Role,
		"first_name": u.FirstName,
		"last_name":  u.LastName,
		"iat":        now.Unix(),
		"exp":        now.Add(accessTTLDefault).Unix(),
	}
}

func buildRefreshClaims(userID uuid.UUID, now time.Time) jwt.MapClaims {
	return jwt.MapClaims{
		"sub": userID.String(),
		"typ": "refresh",
		"iat": now.Unix(),
		"exp": now.Add(refreshTTLDefault).Unix(),
	}
}

// IssueTokenPair signs a new access+refresh pair and persists the HMAC hash
// of the refresh token.
func IssueTokenPair(db *gorm.DB, u *userModel.UserModel, userAgent, ip string) (access, refresh string, err error) {
	jwtSecret, err := getJWTSecret()
	if err != nil {
		return "", "", err
	}
	refreshSecret, err := getRefreshSecret()
	if err != nil {
		return "", "", err
	}

	now := nowUTC()
	access, err = jwt.NewWithClaims(jwt.SigningMethodHS256, buildAccessClaims(u, now)).SignedString([]byte(jwtSecret))
	if err != nil {
		return "", "", err
	}
	refresh, err = jwt.NewWithClaims(jwt.SigningMethodHS256, buildRefreshClaims(u.ID, now)).SignedString([]byte(refreshSecret))
	if err != nil {
		return "", "", err
	}

	row := authModel.RefreshTokenModel{
		UserID:    u.ID,
		Token:     computeRefreshHash(refresh, refreshSecret),
		ExpiresAt: now.Add(refreshTTLDefault),
		UserAgent: strptr(userAgent),
		IP:        strptr(ip),
	}
	if err := db.Create(&row).Error; err != nil {
		return "", "", err
	}
	return access, refresh, nil
}

// RotateRefreshToken validates a refresh JWT against its stored hash,
// deletes the old row, and issues a fresh pair.
func RotateRefreshToken(db *gorm.DB, rawRefresh, userAgent, ip string) (access, refresh string, err error) {
	refreshSecret, err := getRefreshSecret()
	if err != nil {
		return "", "", err
	}

	tok, err := jwt.Parse(rawRefresh, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(refreshSecret), nil
	})
	if err != nil || !tok.Valid {
		return "", "", ErrUnknownRefreshToken
	}
	claims, _ := tok.Claims.(jwt.MapClaims)
	if typ, _ := claims["typ"].(string); typ != "refresh" {
		return "", "", ErrUnknownRefreshToken
	}
	sub, _ := claims["sub"].(string)
	userID, err := uuid.Parse(sub)
	if err != nil {
		return "", "", ErrUnknownRefreshToken
	}

	hash := computeRefreshHash(rawRefresh, refreshSecret)
	res := db.Where("token = ?", hash).Delete(&authModel.RefreshTokenModel{})
	if res.Error != nil {
		return "", "", res.Error
	}
	if res.RowsAffected == 0 {
		// already rotated or revoked
		return "", "", ErrUnknownRefreshToken
	}

	var u userModel.UserModel
	if err := db.First(&u, "id = ?", userID).Error; err != nil {
		return "", "", ErrUnknownRefreshToken
	}
	if !u.IsActive {
		return "", "", ErrUnknownRefreshToken
	}

	return IssueTokenPair(db, &u, userAgent, ip)
}

/* ==========================
   Logout
========================== */

// BlacklistAccessToken records a raw access token so the auth middleware
// rejects it, and drops the user's refresh rows.
func BlacklistAccessToken(db *gorm.DB, rawAccess string) error {
	jwtSecret, err := getJWTSecret()
	if err != nil {
		return err
	}

	claims := jwt.MapClaims{}
	parser := jwt.Parser{SkipClaimsValidation: true}
	if _, err := parser.ParseWithClaims(rawAccess, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(jwtSecret), nil
	}); err != nil {
		return err
	}

	expiresAt := nowUTC().Add(accessTTLDefault)
	if exp, ok := claims["exp"].(float64); ok {
		expiresAt = time.Unix(int64(exp), 0)
	}

	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&authModel.TokenBlacklistModel{
			Token:     rawAccess,
			ExpiresAt: expiresAt,
		}).Error; err != nil {
			return err
		}
		if sub, ok := claims["sub"].(string); ok {
			if userID, err := uuid.Parse(sub); err == nil {
				if err := tx.Where("user_id = ?", userID).
					Delete(&authModel.RefreshTokenModel{}).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
}

func strptr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
