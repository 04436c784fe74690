package handlers

import (
	"fmt"
	"net/http"

	"cloud.google.com/go/firestore"
	"github.com/gin-gonic/gin"
	json "github.com/goccy/go-json"

	"github.com/daphne-i/pantrypal/framework/connection"
	"github.com/daphne-i/pantrypal/framework/web"
	"github.com/daphne-i/pantrypal/fsdal"
	"github.com/daphne-i/pantrypal/logger"
	"github.com/daphne-i/pantrypal/subscription"
)

// SubscriptionHandler streams live store updates to clients over
// server-sent events. One HTTP request holds one snapshot listener; the
// listener dies with the connection.
type SubscriptionHandler struct {
	l    logger.Provider
	conn *connection.Connection
}

func NewSubscriptionHandler(l logger.Provider, conn *connection.Connection) *SubscriptionHandler {
	return &SubscriptionHandler{
		l:    l,
		conn: conn,
	}
}

func (h *SubscriptionHandler) collection(ctx *gin.Context, name string) *firestore.CollectionRef {
	return fsdal.UserCollection(h.conn.Firestore(ctx), ctx.Param("userID"), name)
}

// WatchPurchases streams the purchase list, optionally narrowed to one bill
// via the billId query parameter, newest first.
func (h *SubscriptionHandler) WatchPurchases(ctx *gin.Context) error {
	spec := subscription.QuerySpec{
		Orders: []subscription.Order{{Field: "purchaseDate", Desc: true}},
	}

	if billID := ctx.Query("billId"); billID != "" {
		spec.Clauses = append(spec.Clauses, subscription.Clause{
			Field: "billId", Op: "==", Value: billID,
		})
	}

	watch := subscription.WatchQuery(ctx.Request.Context(), h.collection(ctx, fsdal.PurchasesCollection), spec)

	return stream(ctx, watch)
}

// WatchBills streams the bill list, newest first.
func (h *SubscriptionHandler) WatchBills(ctx *gin.Context) error {
	spec := subscription.QuerySpec{
		Orders: []subscription.Order{{Field: "purchaseDate", Desc: true}},
	}

	watch := subscription.WatchQuery(ctx.Request.Context(), h.collection(ctx, fsdal.BillsCollection), spec)

	return stream(ctx, watch)
}

// WatchPantry streams the unique-item rollup, most recently purchased first.
func (h *SubscriptionHandler) WatchPantry(ctx *gin.Context) error {
	spec := subscription.QuerySpec{
		Orders: []subscription.Order{{Field: "lastPurchaseDate", Desc: true}},
	}

	watch := subscription.WatchQuery(ctx.Request.Context(), h.collection(ctx, fsdal.UniqueItemsCollection), spec)

	return stream(ctx, watch)
}

// WatchShoppingList streams only the items flagged for shopping.
func (h *SubscriptionHandler) WatchShoppingList(ctx *gin.Context) error {
	spec := subscription.QuerySpec{
		Clauses: []subscription.Clause{{Field: "isMarkedForShopping", Op: "==", Value: true}},
	}

	watch := subscription.WatchQuery(ctx.Request.Context(), h.collection(ctx, fsdal.UniqueItemsCollection), spec)

	return stream(ctx, watch)
}

// WatchProfile streams the profile document, including its non-existence
// before first save.
func (h *SubscriptionHandler) WatchProfile(ctx *gin.Context) error {
	userID := ctx.Param("userID")
	ref := h.collection(ctx, fsdal.ProfileCollection).Doc(userID)

	watch := subscription.WatchDocument(ctx.Request.Context(), ref)

	return stream(ctx, watch)
}

// stream drains one watcher into the response as SSE frames until the
// watcher closes, errors or the client disconnects.
func stream[T any](ctx *gin.Context, watch *subscription.Watch[T]) error {
	defer watch.Stop()

	setStreamHeaders(ctx)

	for {
		select {
		case update, ok := <-watch.Updates:
			if !ok {
				return nil
			}

			if err := writeEvent(ctx, update); err != nil {
				return nil
			}
		case err, ok := <-watch.Errs:
			if !ok {
				return nil
			}

			return web.NewRequestError(err, http.StatusInternalServerError)
		case <-ctx.Request.Context().Done():
			return nil
		}
	}
}

func setStreamHeaders(ctx *gin.Context) {
	ctx.Header("Content-Type", "text/event-stream")
	ctx.Header("Cache-Control", "no-cache")
	ctx.Header("Connection", "keep-alive")
	ctx.Writer.WriteHeader(http.StatusOK)
	ctx.Writer.Flush()
}

func writeEvent(ctx *gin.Context, payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	if _, err := fmt.Fprintf(ctx.Writer, "data: %s\n\n", data); err != nil {
		return err
	}

	ctx.Writer.Flush()

	return nil
}
