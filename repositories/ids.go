package repositories

import "go.mongodb.org/mongo-driver/bson/primitive"

// newID returns a string document id that sorts by creation time.
func newID() string {
	return primitive.NewObjectID().Hex()
}
