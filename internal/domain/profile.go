package domain

import (
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleParent Role = "parent"
	RoleChild  Role = "child"
)

func (r Role) Valid() bool {
	return r == RoleParent || r == RoleChild
}

// Opposite returns the role a user of role r searches for.
func (r Role) Opposite() Role {
	if r == RoleParent {
		return RoleChild
	}
	return RoleParent
}

type Gender string

const (
	GenderMale           Gender = "male"
	GenderFemale         Gender = "female"
	GenderOther          Gender = "other"
	GenderPreferNotToSay Gender = "prefer_not_to_say"
)

// Specified reports whether g carries a usable gender for exclusion checks.
func (g *Gender) Specified() bool {
	return g != nil && *g != "" && *g != GenderPreferNotToSay
}

type Profile struct {
	UserID                 uuid.UUID  `json:"user_id" db:"user_id"`
	Role                   Role       `json:"role" db:"role"`
	BirthDate              *time.Time `json:"birth_date" db:"birth_date"`
	Gender                 *Gender    `json:"gender" db:"gender"`
	LastNameKanji          string     `json:"last_name_kanji" db:"last_name_kanji"`
	FirstNameKanji         string     `json:"first_name_kanji" db:"first_name_kanji"`
	LastNameHiragana       *string    `json:"last_name_hiragana" db:"last_name_hiragana"`
	FirstNameHiragana      *string    `json:"first_name_hiragana" db:"first_name_hiragana"`
	BirthplacePrefecture   *string    `json:"birthplace_prefecture" db:"birthplace_prefecture"`
	BirthplaceMunicipality *string    `json:"birthplace_municipality" db:"birthplace_municipality"`
	CreatedAt              time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt              time.Time  `json:"updated_at" db:"updated_at"`
}

// Eligible reports whether the profile can take part in matching at all.
func (p *Profile) Eligible() bool {
	return p != nil && p.BirthDate != nil && !p.BirthDate.IsZero()
}

func (p *Profile) FullNameKanji() string {
	return p.LastNameKanji + p.FirstNameKanji
}

func (p *Profile) FullNameHiragana() string {
	return deref(p.LastNameHiragana) + deref(p.FirstNameHiragana)
}

func (p *Profile) Prefecture() string {
	return deref(p.BirthplacePrefecture)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
