package services

import (
	"context"
	"encoding/json"

	"github.com/textwatch/textwatch/internal/client/api"
)

// fakeCaller implements api.Caller for unit tests. It records every call
// and replies with either the canned ret/err pair or, when set, the handler.
type fakeCaller struct {
	calls []recordedCall

	ret     json.RawMessage
	err     error
	handler func(method, path string, body any, opts *api.CallOptions) (json.RawMessage, error)
}

type recordedCall struct {
	method string
	path   string
	body   any
	opts   *api.CallOptions
}

func (f *fakeCaller) Call(_ context.Context, method, path string, body any, opts *api.CallOptions) (json.RawMessage, error) {
	f.calls = append(f.calls, recordedCall{method: method, path: path, body: body, opts: opts})
	if f.handler != nil {
		return f.handler(method, path, body, opts)
	}
	return f.ret, f.err
}
