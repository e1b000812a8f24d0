package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/hustlerkashish/G-block-society/models"
)

var ErrAccountNotFound = errors.New("user not found")

// AccountStore resolves a token subject to the account fields the booking
// workflow needs: role, home number, and the registered family member
// count that sets the free-tier threshold for event quotes.
type AccountStore struct {
	users         *mongo.Collection
	familyMembers *mongo.Collection
}

func NewAccountStore(users, familyMembers *mongo.Collection) *AccountStore {
	return &AccountStore{users: users, familyMembers: familyMembers}
}

func (s *AccountStore) Resolve(ctx context.Context, id primitive.ObjectID) (*models.AuthAccount, error) {
	var user models.User
	err := s.users.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}

	count, err := s.familyMembers.CountDocuments(ctx, bson.M{"userId": id})
	if err != nil {
		return nil, err
	}
	// The resident themselves always attends free, even with no family
	// members registered.
	if count < 1 {
		count = 1
	}

	return &models.AuthAccount{
		ID:                user.ID,
		Role:              user.Role,
		HomeNumber:        user.HomeNumber,
		FamilyMemberCount: int(count),
	}, nil
}
