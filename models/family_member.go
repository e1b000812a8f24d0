package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type FamilyMember struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UserID       primitive.ObjectID `bson:"userId" json:"userId"`
	Name         string             `bson:"name" json:"name"`
	Age          int                `bson:"age" json:"age"`
	Phone        string             `bson:"phone,omitempty" json:"phone,omitempty"`
	Relationship string             `bson:"relationship" json:"relationship"` // spouse, child, parent, sibling, family
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}
