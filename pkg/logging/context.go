package logging

import (
	"context"

	"github.com/rs/zerolog"
)

type ctxKeyDetails struct{}

type ctxValue struct {
	Super   *ctxValue
	Details []Detail
}

// ContextWith attaches logging details to the context.
// Details attached in outer scopes are kept and come first.
func ContextWith(ctx context.Context, ds ...Detail) context.Context {
	if len(ds) == 0 {
		return ctx
	}
	var v ctxValue
	if prev, ok := lookupValue(ctx); ok {
		v.Super = prev
	}
	v.Details = ds
	return context.WithValue(ctx, ctxKeyDetails{}, &v)
}

// FromContext returns the logger bound to the context with zerolog's WithContext,
// or the package level logger when none is bound, enriched with the context's details.
func FromContext(ctx context.Context) zerolog.Logger {
	if ctx == nil {
		return *Get()
	}
	l := *Get()
	if cl := zerolog.Ctx(ctx); cl != nil && cl.GetLevel() != zerolog.Disabled {
		l = *cl
	}
	return With(l, detailsOf(ctx)...)
}

func detailsOf(ctx context.Context) []Detail {
	var details []Detail
	if v, ok := lookupValue(ctx); ok {
		for {
			details = append(append([]Detail{}, v.Details...), details...) // unshift
			if v.Super == nil {
				break
			}
			v = v.Super
		}
	}
	return details
}

func lookupValue(ctx context.Context) (*ctxValue, bool) {
	if ptr, ok := ctx.Value(ctxKeyDetails{}).(*ctxValue); ok {
		return ptr, true
	}
	return nil, false
}
