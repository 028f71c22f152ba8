package api

import (
	"context"
	"errors"
)

type keyType string

const (
	subjectKey keyType = "subject"
)

// ctxWithSubject adds the authenticated admin name to the context
func ctxWithSubject(ctx context.Context, subject string) context.Context {
	return context.WithValue(ctx, subjectKey, subject)
}

// ctxGetSubject retrieves the authenticated admin name from the context
func ctxGetSubject(ctx context.Context) (string, error) {
	return ctxGetStringValue(ctx, subjectKey)
}

// ctxGetStringValue is a helper function to retrieve string values from the context by key
func ctxGetStringValue(ctx context.Context, key keyType) (string, error) {
	if ctxValue := ctx.Value(key); ctxValue == nil {
		return "", errors.New("key not found in context")
	} else if valueAsString, ok := ctxValue.(string); !ok {
		return "", errors.New("value is not of type `string`")
	} else {
		return valueAsString, nil
	}
}
