package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// WinningResult is the spin label the strategy bets on.
const WinningResult = "1"

type User struct {
	ID           int       `db:"id"`
	Name         string    `db:"name"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	CreatedAt    time.Time `db:"created_at"`
}

type Session struct {
	ID        int        `db:"id"`
	UserID    int        `db:"user_id"`
	StartTime time.Time  `db:"start_time"`
	EndTime   *time.Time `db:"end_time"`
	CreatedAt time.Time  `db:"created_at"`
	UpdatedAt time.Time  `db:"updated_at"`

	User  *User
	Spins []Spin
}

// IsOpen reports whether spins may still be recorded.
func (s *Session) IsOpen() bool {
	return s.EndTime == nil
}

func (s *Session) IsOwnedBy(userID int) bool {
	return s.UserID == userID
}

type Spin struct {
	ID        int             `db:"id"`
	SessionID int             `db:"session_id"`
	Result    string          `db:"result"`
	BetAmount decimal.Decimal `db:"bet_amount"`
	PL        decimal.Decimal `db:"pl"`
	CreatedAt time.Time       `db:"created_at"`
	UpdatedAt time.Time       `db:"updated_at"`
}

// SpinInput is a spin as submitted by a player, before it is persisted.
type SpinInput struct {
	Result    string
	BetAmount decimal.Decimal
	PL        decimal.Decimal
}
