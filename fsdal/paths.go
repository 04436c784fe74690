package fsdal

import (
	"cloud.google.com/go/firestore"

	"github.com/daphne-i/pantrypal/common"
)

// Per-user collection names. The profile collection is keyed by user id;
// everything else uses auto-generated document ids.
const (
	BillsCollection       = "bills"
	PurchasesCollection   = "purchases"
	UniqueItemsCollection = "unique_items"
	ProfileCollection     = "profile"
)

const (
	artifactsCollection = "artifacts"
	usersCollection     = "users"
)

// UserDoc returns the document holding all of a user's collections:
// artifacts/<appID>/users/<userID>.
func UserDoc(fs *firestore.Client, userID string) *firestore.DocumentRef {
	return fs.
		Collection(artifactsCollection).
		Doc(common.AppID).
		Collection(usersCollection).
		Doc(userID)
}

// UserCollection returns one of a user's collections:
// artifacts/<appID>/users/<userID>/<name>.
func UserCollection(fs *firestore.Client, userID, name string) *firestore.CollectionRef {
	return UserDoc(fs, userID).Collection(name)
}
