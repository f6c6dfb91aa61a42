package domain

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

const (
	NameMaxLength             = 255
	CategoryDescriptionMaxLen = 10000
)

// Category 分类
type Category struct {
	ID          uuid.UUID
	Name        string
	Description string
	IsActive    bool
	CreatedAt   time.Time
}

func NewCategory(name, description string, isActive bool) (*Category, error) {
	var n Notification
	validateName(&n, name)
	if utf8.RuneCountInString(description) > CategoryDescriptionMaxLen {
		n.Addf("description should be at most %d characters long", CategoryDescriptionMaxLen)
	}
	if err := n.Err("category"); err != nil {
		return nil, err
	}
	return &Category{
		ID:          uuid.New(),
		Name:        name,
		Description: description,
		IsActive:    isActive,
		CreatedAt:   time.Now(),
	}, nil
}

// Genre 类型，可关联多个分类
type Genre struct {
	ID         uuid.UUID
	Name       string
	IsActive   bool
	Categories IDSet
	CreatedAt  time.Time
}

func NewGenre(name string, isActive bool, categoryIDs ...uuid.UUID) (*Genre, error) {
	var n Notification
	validateName(&n, name)
	if err := n.Err("genre"); err != nil {
		return nil, err
	}
	return &Genre{
		ID:         uuid.New(),
		Name:       name,
		IsActive:   isActive,
		Categories: NewIDSet(categoryIDs...),
		CreatedAt:  time.Now(),
	}, nil
}

// CastMemberType 演职人员类型
type CastMemberType string

const (
	CastMemberDirector CastMemberType = "director"
	CastMemberActor    CastMemberType = "actor"
)

func (t CastMemberType) Valid() bool {
	return t == CastMemberDirector || t == CastMemberActor
}

// CastMember 演职人员
type CastMember struct {
	ID        uuid.UUID
	Name      string
	Type      CastMemberType
	CreatedAt time.Time
}

func NewCastMember(name string, typ CastMemberType) (*CastMember, error) {
	var n Notification
	validateName(&n, name)
	if !typ.Valid() {
		n.Addf("type %q is not a valid cast member type", string(typ))
	}
	if err := n.Err("cast member"); err != nil {
		return nil, err
	}
	return &CastMember{
		ID:        uuid.New(),
		Name:      name,
		Type:      typ,
		CreatedAt: time.Now(),
	}, nil
}

func validateName(n *Notification, name string) {
	if strings.TrimSpace(name) == "" {
		n.Add("name is required")
	} else if utf8.RuneCountInString(name) > NameMaxLength {
		n.Addf("name should be at most %d characters long", NameMaxLength)
	}
}
