package models

import (
	"time"

	"github.com/google/uuid"
)

// GameSession is the per-user state shared by the number guess and fortune
// games. One row per user; a missing row is equivalent to the zero state.
type GameSession struct {
	UserID    uuid.UUID `gorm:"type:uuid;primaryKey" json:"-"`
	Answer    *int      `json:"-"`
	Message   string    `gorm:"type:varchar(255)" json:"message"`
	City      string    `gorm:"type:varchar(100)" json:"city"`
	Fortune   *string   `gorm:"type:varchar(20)" json:"fortune"`
	UpdatedAt time.Time `json:"updated_at"`

	User *User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (g *GameSession) HasAnswer() bool {
	return g.Answer != nil
}

// Reset drops every game value, including the chosen city and fortune.
func (g *GameSession) Reset() {
	g.Answer = nil
	g.Message = ""
	g.City = ""
	g.Fortune = nil
}

func (g *GameSession) TableName() string {
	return "game_sessions"
}
