package internal

import (
	"time"

	"github.com/gin-gonic/gin"
)

// CtxDataKey is how request values are stored/retrieved.
const CtxDataKey = "app-context"

// Data represents state for each request.
type Data struct {
	TraceID    string
	StatusCode int
	Now        time.Time
}

// ContextWithData stores the request data inside the gin context.
func ContextWithData(ctx *gin.Context, v *Data) {
	ctx.Set(CtxDataKey, v)
}

// DataFromContext returns the request data stored inside the gin context.
func DataFromContext(ctx *gin.Context) (*Data, bool) {
	v, ok := ctx.Value(CtxDataKey).(*Data)
	return v, ok
}
