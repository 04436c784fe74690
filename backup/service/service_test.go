package service

import (
	"context"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/daphne-i/pantrypal/backup/dal/mocks"
	"github.com/daphne-i/pantrypal/backup/domain"
	"github.com/daphne-i/pantrypal/fsdal"
	"github.com/daphne-i/pantrypal/logger"
	loggerMocks "github.com/daphne-i/pantrypal/logger/mocks"
)

func newTestService(d *mocks.Backups, l *loggerMocks.ILogger) *backupService {
	return &backupService{
		loggerProvider: func(_ context.Context) logger.ILogger {
			return l
		},
		dal: d,
	}
}

func TestBackupService_Export(t *testing.T) {
	ctx := context.Background()

	d := mocks.Backups{}
	l := loggerMocks.ILogger{}
	l.On("Infof", mock.Anything, mock.Anything)

	d.On("DumpCollection", mock.Anything, "user-1", fsdal.BillsCollection).
		Return([]domain.RawDoc{{ID: "bill-1", Data: map[string]interface{}{"shopName": "Big Bazaar"}}}, nil).Once()
	d.On("DumpCollection", mock.Anything, "user-1", fsdal.PurchasesCollection).
		Return([]domain.RawDoc{{ID: "purchase-1", Data: map[string]interface{}{"displayName": "Milk"}}}, nil).Once()
	d.On("DumpCollection", mock.Anything, "user-1", fsdal.UniqueItemsCollection).
		Return([]domain.RawDoc{{ID: "milk", Data: map[string]interface{}{"purchaseCount": int64(7)}}}, nil).Once()
	d.On("DumpCollection", mock.Anything, "user-1", fsdal.ProfileCollection).
		Return(nil, nil).Once()

	s := newTestService(&d, &l)

	data, filename, err := s.Export(ctx, "user-1")
	assert.NoError(t, err)
	assert.Contains(t, filename, "pantrypal-export-")

	var export domain.Export
	assert.NoError(t, json.Unmarshal(data, &export))
	assert.Equal(t, "user-1", export.UserID)
	assert.NotEmpty(t, export.ExportID)
	assert.Len(t, export.Collections, 4)
	assert.Equal(t, "bill-1", export.Collections[fsdal.BillsCollection][0].ID)
	d.AssertExpectations(t)
}

func TestBackupService_Export_DumpError(t *testing.T) {
	ctx := context.Background()

	d := mocks.Backups{}
	l := loggerMocks.ILogger{}

	d.On("DumpCollection", mock.Anything, "user-1", mock.Anything).
		Return(nil, assert.AnError)

	s := newTestService(&d, &l)

	_, _, err := s.Export(ctx, "user-1")
	assert.Error(t, err)
}

func TestBackupService_Import(t *testing.T) {
	ctx := context.Background()

	t.Run("restore replaces all collections", func(t *testing.T) {
		d := mocks.Backups{}
		l := loggerMocks.ILogger{}
		l.On("Infof", mock.Anything, mock.Anything)

		payload, _ := json.Marshal(domain.Export{
			ExportID: "export-1",
			UserID:   "user-1",
			Collections: map[string][]domain.RawDoc{
				fsdal.BillsCollection: {{ID: "bill-1", Data: map[string]interface{}{"shopName": "Big Bazaar"}}},
			},
		})

		d.On("ReplaceCollections", ctx, "user-1", map[string][]domain.RawDoc{
			fsdal.BillsCollection:       {{ID: "bill-1", Data: map[string]interface{}{"shopName": "Big Bazaar"}}},
			fsdal.PurchasesCollection:   nil,
			fsdal.UniqueItemsCollection: nil,
			fsdal.ProfileCollection:     nil,
		}).Return(nil).Once()

		s := newTestService(&d, &l)

		assert.NoError(t, s.Import(ctx, "user-1", payload))
		d.AssertExpectations(t)
	})

	t.Run("export of another user is rejected", func(t *testing.T) {
		d := mocks.Backups{}
		l := loggerMocks.ILogger{}

		payload, _ := json.Marshal(domain.Export{
			UserID:      "user-2",
			Collections: map[string][]domain.RawDoc{},
		})

		s := newTestService(&d, &l)

		assert.ErrorIs(t, s.Import(ctx, "user-1", payload), ErrWrongUser)
		d.AssertNotCalled(t, "ReplaceCollections")
	})

	t.Run("garbage payload is rejected", func(t *testing.T) {
		d := mocks.Backups{}
		l := loggerMocks.ILogger{}

		s := newTestService(&d, &l)

		assert.ErrorIs(t, s.Import(ctx, "user-1", []byte("not json")), ErrMalformedExport)
	})
}
