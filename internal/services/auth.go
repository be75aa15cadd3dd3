package services

import (
	"errors"
	"time"

	"github.com/Seokzzoo/bonoclicker/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	maxNicknameLen   = 16
	identityTokenTTL = 7 * 24 * time.Hour
)

type AuthService struct {
	db         *gorm.DB
	jwtSecret  []byte
	teams      []string
	sessionTTL time.Duration
}

func NewAuthService(db *gorm.DB, jwtSecret string, teams []string, sessionTTL time.Duration) *AuthService {
	return &AuthService{db: db, jwtSecret: []byte(jwtSecret), teams: teams, sessionTTL: sessionTTL}
}

// AssignTeam deterministically maps a client identifier onto one of the
// configured teams: sum of code points modulo team count. The same uuid
// always lands on the same team, across restarts and recreated rows.
func (s *AuthService) AssignTeam(clientUUID string) string {
	sum := 0
	for _, r := range clientUUID {
		sum += int(r)
	}
	return s.teams[sum%len(s.teams)]
}

// Identify returns the user for clientUUID, creating one on first signup.
// Repeat signups never touch the stored nickname.
func (s *AuthService) Identify(nickname, clientUUID string) (*models.User, string, error) {
	if clientUUID == "" {
		return nil, "", errors.New("uuid required")
	}

	var user models.User
	err := s.db.Where("uuid = ?", clientUUID).First(&user).Error
	if err == nil {
		token, err := s.GenerateToken(&user)
		return &user, token, err
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", err
	}

	user = models.User{
		UUID:     clientUUID,
		Nickname: normalizeNickname(nickname),
		Team:     s.AssignTeam(clientUUID),
	}
	if err := s.db.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// Lost a concurrent signup race; the winner's row is authoritative.
			if err := s.db.Where("uuid = ?", clientUUID).First(&user).Error; err != nil {
				return nil, "", err
			}
		} else {
			return nil, "", err
		}
	}

	token, err := s.GenerateToken(&user)
	return &user, token, err
}

func (s *AuthService) GenerateToken(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"uid":  user.ID,
		"team": user.Team,
		"exp":  time.Now().Add(identityTokenTTL).Unix(),
		"iat":  time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}

// ValidateToken verifies an identity token and returns the embedded user id
// and team.
func (s *AuthService) ValidateToken(tokenString string) (uint, string, error) {
	claims, err := s.parse(tokenString)
	if err != nil {
		return 0, "", err
	}

	uidFloat, ok := claims["uid"].(float64)
	if !ok {
		return 0, "", errors.New("invalid uid in token")
	}
	team, ok := claims["team"].(string)
	if !ok {
		return 0, "", errors.New("invalid team in token")
	}
	return uint(uidFloat), team, nil
}

// GenerateSessionToken mints a fresh short-lived play-session credential for
// the user. Validity is self-contained: no session row is stored.
func (s *AuthService) GenerateSessionToken(userID uint) (string, string, error) {
	sessionID := uuid.NewString()
	claims := jwt.MapClaims{
		"sid": sessionID,
		"uid": userID,
		"exp": time.Now().Add(s.sessionTTL).Unix(),
		"iat": time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.jwtSecret)
	return sessionID, signed, err
}

// ValidateSessionToken verifies a session token and returns the session id
// and owning user id.
func (s *AuthService) ValidateSessionToken(tokenString string) (string, uint, error) {
	claims, err := s.parse(tokenString)
	if err != nil {
		return "", 0, err
	}

	sid, ok := claims["sid"].(string)
	if !ok {
		return "", 0, errors.New("invalid sid in token")
	}
	uidFloat, ok := claims["uid"].(float64)
	if !ok {
		return "", 0, errors.New("invalid uid in token")
	}
	return sid, uint(uidFloat), nil
}

func (s *AuthService) parse(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("invalid claims")
	}
	return claims, nil
}

func normalizeNickname(nickname string) string {
	runes := []rune(nickname)
	if len(runes) > maxNicknameLen {
		runes = runes[:maxNicknameLen]
	}
	if len(runes) == 0 {
		return "Guest" + uuid.NewString()[:4]
	}
	return string(runes)
}
