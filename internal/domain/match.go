package domain

import (
	"time"

	"github.com/google/uuid"
)

type MatchStatus string

const (
	MatchStatusPending  MatchStatus = "pending"
	MatchStatusAccepted MatchStatus = "accepted"
	MatchStatusRejected MatchStatus = "rejected"
)

type Match struct {
	ID              uuid.UUID   `json:"id" db:"id"`
	ParentID        uuid.UUID   `json:"parent_id" db:"parent_id"`
	ChildID         uuid.UUID   `json:"child_id" db:"child_id"`
	RequestedBy     uuid.UUID   `json:"requested_by" db:"requested_by"`
	Status          MatchStatus `json:"status" db:"status"`
	SimilarityScore float64     `json:"similarity_score" db:"similarity_score"`
	CreatedAt       time.Time   `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at" db:"updated_at"`
}

func (m *Match) HasUser(userID uuid.UUID) bool {
	return m.ParentID == userID || m.ChildID == userID
}

func (m *Match) GetOtherUserID(userID uuid.UUID) (uuid.UUID, bool) {
	if m.ParentID == userID {
		return m.ChildID, true
	}
	if m.ChildID == userID {
		return m.ParentID, true
	}
	return uuid.Nil, false
}

// MatchCandidate is a scored, not persisted, search result.
type MatchCandidate struct {
	MatchedUserID   uuid.UUID             `json:"matched_user_id"`
	Role            Role                  `json:"role"`
	SimilarityScore float64               `json:"similarity_score"`
	ScorePerChild   map[uuid.UUID]float64 `json:"score_per_child,omitempty"`
}
