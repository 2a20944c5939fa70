package domain

import (
	"time"

	"github.com/google/uuid"
)

// MaxTargetPeople is the number of people a single user may register as searched for.
const MaxTargetPeople = 5

// TargetPerson describes someone a user is looking for: a parent's entry describes a
// child, a child's entry describes a parent. Stored in searching_children.
type TargetPerson struct {
	ID                     uuid.UUID  `json:"id" db:"id"`
	UserID                 uuid.UUID  `json:"user_id" db:"user_id"`
	BirthDate              *time.Time `json:"birth_date" db:"birth_date"`
	Gender                 *Gender    `json:"gender" db:"gender"`
	LastNameKanji          *string    `json:"last_name_kanji" db:"last_name_kanji"`
	FirstNameKanji         *string    `json:"first_name_kanji" db:"first_name_kanji"`
	LastNameHiragana       *string    `json:"last_name_hiragana" db:"last_name_hiragana"`
	FirstNameHiragana      *string    `json:"first_name_hiragana" db:"first_name_hiragana"`
	BirthplacePrefecture   *string    `json:"birthplace_prefecture" db:"birthplace_prefecture"`
	BirthplaceMunicipality *string    `json:"birthplace_municipality" db:"birthplace_municipality"`
	DisplayOrder           int        `json:"display_order" db:"display_order"`
	CreatedAt              time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt              time.Time  `json:"updated_at" db:"updated_at"`
}

func (t *TargetPerson) FullNameKanji() string {
	return deref(t.LastNameKanji) + deref(t.FirstNameKanji)
}

func (t *TargetPerson) FullNameHiragana() string {
	return deref(t.LastNameHiragana) + deref(t.FirstNameHiragana)
}

func (t *TargetPerson) Prefecture() string {
	return deref(t.BirthplacePrefecture)
}
