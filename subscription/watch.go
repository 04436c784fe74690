package subscription

import (
	"context"

	"cloud.google.com/go/firestore"
)

// DocumentUpdate is one delivery from a document watch. A non-existent
// document is delivered with Exists false rather than being skipped, so
// subscribers can render "not there yet" states.
type DocumentUpdate struct {
	ID     string                 `json:"id"`
	Exists bool                   `json:"exists"`
	Data   map[string]interface{} `json:"data"`
}

// QueryUpdate is one delivery from a query watch: the full result list in
// query order, not a diff.
type QueryUpdate struct {
	Docs []DocumentUpdate `json:"docs"`
}

// Watch is a running snapshot listener. Updates and Errs are closed when
// the watch ends; at most one error is delivered before the watch halts.
type Watch[T any] struct {
	Updates <-chan T
	Errs    <-chan error
	stop    context.CancelFunc
}

// Stop tears the listener down. Safe to call more than once.
func (w *Watch[T]) Stop() {
	w.stop()
}

// WatchDocument subscribes to a single document. A nil ref returns an
// already-finished watch, which is how callers subscribe to documents whose
// prerequisites (such as an authenticated user) are not available yet.
func WatchDocument(ctx context.Context, ref *firestore.DocumentRef) *Watch[DocumentUpdate] {
	updates := make(chan DocumentUpdate)
	errs := make(chan error, 1)

	ctx, cancel := context.WithCancel(ctx)

	w := &Watch[DocumentUpdate]{
		Updates: updates,
		Errs:    errs,
		stop:    cancel,
	}

	if ref == nil {
		cancel()
		close(updates)
		close(errs)

		return w
	}

	go func() {
		defer close(updates)
		defer close(errs)

		iter := ref.Snapshots(ctx)
		defer iter.Stop()

		for {
			snap, err := iter.Next()
			if err != nil {
				if ctx.Err() == nil {
					errs <- err
				}

				return
			}

			update := DocumentUpdate{
				ID:     ref.ID,
				Exists: snap.Exists(),
			}
			if snap.Exists() {
				update.Data = snap.Data()
			}

			select {
			case updates <- update:
			case <-ctx.Done():
				return
			}
		}
	}()

	return w
}

// WatchQuery subscribes to the query built from spec over the given
// collection. Every snapshot delivers the complete ordered result list.
func WatchQuery(ctx context.Context, coll *firestore.CollectionRef, spec QuerySpec) *Watch[QueryUpdate] {
	updates := make(chan QueryUpdate)
	errs := make(chan error, 1)

	ctx, cancel := context.WithCancel(ctx)

	w := &Watch[QueryUpdate]{
		Updates: updates,
		Errs:    errs,
		stop:    cancel,
	}

	if coll == nil {
		cancel()
		close(updates)
		close(errs)

		return w
	}

	go func() {
		defer close(updates)
		defer close(errs)

		iter := spec.Apply(coll.Query).Snapshots(ctx)
		defer iter.Stop()

		for {
			qsnap, err := iter.Next()
			if err != nil {
				if ctx.Err() == nil {
					errs <- err
				}

				return
			}

			snaps, err := qsnap.Documents.GetAll()
			if err != nil {
				if ctx.Err() == nil {
					errs <- err
				}

				return
			}

			update := QueryUpdate{Docs: make([]DocumentUpdate, 0, len(snaps))}
			for _, snap := range snaps {
				update.Docs = append(update.Docs, DocumentUpdate{
					ID:     snap.Ref.ID,
					Exists: true,
					Data:   snap.Data(),
				})
			}

			select {
			case updates <- update:
			case <-ctx.Done():
				return
			}
		}
	}()

	return w
}
