package controller

import "context"

type contextKey int

const (
	viewerIdCtxKey contextKey = iota
)

func (c *controller) getViewerIdFromCtx(ctx context.Context) string {
	viewerId, ok := ctx.Value(viewerIdCtxKey).(string)
	if !ok {
		return ""
	}

	return viewerId
}
