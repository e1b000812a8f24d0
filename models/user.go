package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	RoleAdmin    = "admin"
	RoleResident = "resident"
)

type User struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Username   string             `bson:"username" json:"username"` // home number for residents
	Password   string             `bson:"password" json:"-"`
	Role       string             `bson:"role" json:"role"` // admin, resident
	HomeNumber string             `bson:"homeNumber" json:"homeNumber"`
	Name       string             `bson:"name,omitempty" json:"name,omitempty"`
	Email      string             `bson:"email,omitempty" json:"email,omitempty"`
	Phone      string             `bson:"phone,omitempty" json:"phone,omitempty"`
	CreatedAt  time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// AuthAccount is the resolved identity attached to every authenticated
// request: who is calling, their role, and how many family members they
// have registered (the free-tier threshold for event quotes).
type AuthAccount struct {
	ID                primitive.ObjectID
	Role              string
	HomeNumber        string
	FamilyMemberCount int
}

func (a *AuthAccount) IsAdmin() bool {
	return a.Role == RoleAdmin
}
