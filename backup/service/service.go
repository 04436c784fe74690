package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/daphne-i/pantrypal/backup/dal"
	dalIface "github.com/daphne-i/pantrypal/backup/dal/iface"
	"github.com/daphne-i/pantrypal/backup/domain"
	"github.com/daphne-i/pantrypal/common"
	"github.com/daphne-i/pantrypal/framework/connection"
	"github.com/daphne-i/pantrypal/fsdal"
	"github.com/daphne-i/pantrypal/logger"
)

var (
	ErrMalformedExport = errors.New("export payload is malformed")
	ErrWrongUser       = errors.New("export belongs to a different user")
)

// exportedCollections is the full per-user data set, dumped and restored as
// a unit.
var exportedCollections = []string{
	fsdal.BillsCollection,
	fsdal.PurchasesCollection,
	fsdal.UniqueItemsCollection,
	fsdal.ProfileCollection,
}

//go:generate mockery --name BackupService --output=./mocks
type BackupService interface {
	Export(ctx context.Context, userID string) ([]byte, string, error)
	Import(ctx context.Context, userID string, payload []byte) error
}

type backupService struct {
	loggerProvider logger.Provider
	conn           *connection.Connection
	dal            dalIface.Backups
}

func NewBackupService(log logger.Provider, conn *connection.Connection) *backupService {
	return &backupService{
		loggerProvider: log,
		conn:           conn,
		dal:            dal.NewBackupsFirestoreWithClient(conn.Firestore),
	}
}

// Export dumps all user collections in parallel and returns the JSON
// snapshot together with a download filename.
func (s *backupService) Export(ctx context.Context, userID string) ([]byte, string, error) {
	export := domain.Export{
		ExportID:    uuid.NewString(),
		AppID:       common.AppID,
		UserID:      userID,
		CreatedAt:   time.Now().UTC(),
		Collections: make(map[string][]domain.RawDoc, len(exportedCollections)),
	}

	dumps := make([][]domain.RawDoc, len(exportedCollections))

	g, gctx := errgroup.WithContext(ctx)

	for i, name := range exportedCollections {
		i, name := i, name

		g.Go(func() error {
			docs, err := s.dal.DumpCollection(gctx, userID, name)
			if err != nil {
				return fmt.Errorf("dumping %s: %w", name, err)
			}

			dumps[i] = docs

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, "", err
	}

	for i, name := range exportedCollections {
		export.Collections[name] = dumps[i]
	}

	data, err := json.Marshal(export)
	if err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("pantrypal-export-%s.json", export.CreatedAt.Format("2006-01-02"))

	s.loggerProvider(ctx).Infof("exported %d collections for user %s (export %s)",
		len(export.Collections), userID, export.ExportID)

	return data, filename, nil
}

// Import restores an export, overwriting the user's current data set.
// Documents absent from the export are deleted; restore means "back to that
// snapshot", not merge.
func (s *backupService) Import(ctx context.Context, userID string, payload []byte) error {
	var export domain.Export

	if err := json.Unmarshal(payload, &export); err != nil {
		return ErrMalformedExport
	}

	if export.Collections == nil {
		return ErrMalformedExport
	}

	if export.UserID != userID {
		return ErrWrongUser
	}

	collections := make(map[string][]domain.RawDoc, len(exportedCollections))
	for _, name := range exportedCollections {
		collections[name] = export.Collections[name]
	}

	if err := s.dal.ReplaceCollections(ctx, userID, collections); err != nil {
		return err
	}

	s.loggerProvider(ctx).Infof("restored export %s for user %s", export.ExportID, userID)

	return nil
}
