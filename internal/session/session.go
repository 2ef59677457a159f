package session

import (
	"errors"
	"sync"
	"time"

	"app/internal/domain/model"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

const CookieName = "session"

type Flash struct {
	Level   string // success / warning / danger
	Message string
}

// 1クライアント分のセッション。カートと管理者フラグを持つ。
// サーバーを再起動すると消える（DBには置かない）。
type Session struct {
	ID        string
	Cart      model.Cart
	IsAdmin   bool
	flashes   []Flash
	expiresAt time.Time
}

func (s *Session) AddFlash(level, message string) {
	s.flashes = append(s.flashes, Flash{Level: level, Message: message})
}

// 取り出したら消える。
func (s *Session) TakeFlashes() []Flash {
	f := s.flashes
	s.flashes = nil
	return f
}

// Manager はセッションの発行・検証・保持を行う。
// クッキーにはセッションIDをHS256で署名したトークンを入れる。
type Manager struct {
	secret []byte
	ttl    time.Duration

	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewManager(secret string, ttl time.Duration) *Manager {
	return &Manager{
		secret:   []byte(secret),
		ttl:      ttl,
		sessions: make(map[string]*Session),
	}
}

// 新しいセッションを作り、署名済みトークンを返す。
func (m *Manager) Create() (*Session, string, error) {
	sid := uuid.NewString()
	now := time.Now()

	sess := &Session{
		ID:        sid,
		Cart:      model.NewCart(),
		expiresAt: now.Add(m.ttl),
	}

	token, err := m.signToken(sid, now)
	if err != nil {
		return nil, "", err
	}

	m.mu.Lock()
	m.sweepLocked(now)
	m.sessions[sid] = sess
	m.mu.Unlock()

	return sess, token, nil
}

// トークンからセッションを引く。署名不正・期限切れ・未知IDは ErrNoSession。
func (m *Manager) Lookup(token string) (*Session, error) {
	sid, err := m.parseToken(token)
	if err != nil {
		return nil, ErrNoSession
	}

	m.mu.RLock()
	sess, ok := m.sessions[sid]
	m.mu.RUnlock()

	if !ok || time.Now().After(sess.expiresAt) {
		return nil, ErrNoSession
	}
	return sess, nil
}

var ErrNoSession = errors.New("no session")

func (m *Manager) signToken(sid string, now time.Time) (string, error) {
	claims := jwt.MapClaims{
		"sid": sid,
		"iat": now.Unix(),
		"exp": now.Add(m.ttl).Unix(),
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString(m.secret)
}

func (m *Manager) parseToken(raw string) (string, error) {
	token, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return "", errors.New("unexpected signing method")
		}
		return m.secret, nil
	})
	if err != nil || token == nil || !token.Valid {
		return "", ErrNoSession
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrNoSession
	}
	sid, ok := claims["sid"].(string)
	if !ok || sid == "" {
		return "", ErrNoSession
	}
	return sid, nil
}

// 期限切れセッションの掃除。呼び出し側でロックを取ること。
func (m *Manager) sweepLocked(now time.Time) {
	for sid, sess := range m.sessions {
		if now.After(sess.expiresAt) {
			delete(m.sessions, sid)
		}
	}
}
