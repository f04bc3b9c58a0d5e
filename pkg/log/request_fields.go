package log

import (
	"context"
	"sync"
)

type requestFieldsKey struct{}

// requestFields acumula campos produzidos pelos casos de uso durante uma requisição,
// para que o log de finalização do middleware os inclua.
type requestFields struct {
	mu     sync.Mutex
	fields Fields
}

// WithRequestFields prepara o contexto para receber campos da requisição
func WithRequestFields(ctx context.Context) context.Context {
	if _, ok := ctx.Value(requestFieldsKey{}).(*requestFields); ok {
		return ctx
	}
	return context.WithValue(ctx, requestFieldsKey{}, &requestFields{fields: Fields{}})
}

// AddRequestFields registra campos na requisição corrente. Sem WithRequestFields é no-op.
func AddRequestFields(ctx context.Context, fields Fields) {
	bag, ok := ctx.Value(requestFieldsKey{}).(*requestFields)
	if !ok {
		return
	}

	bag.mu.Lock()
	defer bag.mu.Unlock()
	for k, v := range fields {
		bag.fields[k] = v
	}
}

// RequestFields devolve uma cópia dos campos acumulados
func RequestFields(ctx context.Context) Fields {
	bag, ok := ctx.Value(requestFieldsKey{}).(*requestFields)
	if !ok {
		return Fields{}
	}

	bag.mu.Lock()
	defer bag.mu.Unlock()
	out := make(Fields, len(bag.fields))
	for k, v := range bag.fields {
		out[k] = v
	}
	return out
}
