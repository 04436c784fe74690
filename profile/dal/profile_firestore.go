package dal

import (
	"context"
	"errors"

	"cloud.google.com/go/firestore"

	"github.com/daphne-i/pantrypal/framework/connection"
	"github.com/daphne-i/pantrypal/fsdal"
	fsdalIface "github.com/daphne-i/pantrypal/fsdal/iface"
	"github.com/daphne-i/pantrypal/profile/domain"
)

var (
	ErrInvalidUserID = errors.New("user id cannot be empty")
	ErrEmptyFields   = errors.New("no profile fields to save")
)

// ProfilesFirestore is used to interact with the per-user profile document
// on Firestore. The document id equals the user id.
type ProfilesFirestore struct {
	firestoreClientFun connection.FirestoreFromContextFun
	documentsHandler   fsdalIface.DocumentsHandler
}

// NewProfilesFirestore returns a new ProfilesFirestore with the given project id.
func NewProfilesFirestore(ctx context.Context, projectID string) (*ProfilesFirestore, error) {
	fs, err := firestore.NewClient(ctx, projectID)
	if err != nil {
		return nil, err
	}

	return NewProfilesFirestoreWithClient(
		func(ctx context.Context) *firestore.Client {
			return fs
		},
	), nil
}

// NewProfilesFirestoreWithClient returns a new ProfilesFirestore using the given client.
func NewProfilesFirestoreWithClient(fun connection.FirestoreFromContextFun) *ProfilesFirestore {
	return &ProfilesFirestore{
		firestoreClientFun: fun,
		documentsHandler:   fsdal.DocumentHandler{},
	}
}

func (d *ProfilesFirestore) profileRef(ctx context.Context, userID string) *firestore.DocumentRef {
	return fsdal.UserCollection(d.firestoreClientFun(ctx), userID, fsdal.ProfileCollection).Doc(userID)
}

func (d *ProfilesFirestore) Get(ctx context.Context, userID string) (*domain.UserProfile, error) {
	if userID == "" {
		return nil, ErrInvalidUserID
	}

	snap, err := d.documentsHandler.Get(ctx, d.profileRef(ctx, userID))
	if err != nil {
		return nil, err
	}

	var profile domain.UserProfile
	if err := snap.DataTo(&profile); err != nil {
		return nil, err
	}

	profile.ID = snap.ID()

	return &profile, nil
}

// Save writes the given fields. With merge, the document is created on
// first use; without it the write fails when the document does not exist
// yet. A nil field value is stored as an explicit null, which is how a
// cleared budget survives round-trips.
func (d *ProfilesFirestore) Save(ctx context.Context, userID string, fields map[string]interface{}, merge bool) error {
	if userID == "" {
		return ErrInvalidUserID
	}

	if len(fields) == 0 {
		return ErrEmptyFields
	}

	ref := d.profileRef(ctx, userID)

	if merge {
		_, err := ref.Set(ctx, fields, firestore.MergeAll)
		return err
	}

	updates := make([]firestore.Update, 0, len(fields))
	for path, value := range fields {
		updates = append(updates, firestore.Update{Path: path, Value: value})
	}

	_, err := ref.Update(ctx, updates)

	return err
}
