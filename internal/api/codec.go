// Package api describes the taskbalance.v1.TaskBalance gRPC service: its
// request and response messages, the service descriptor used by the server
// and a typed client stub.
//
// Messages travel as JSON. The codec is registered with grpc under the
// "json" content-subtype; clients built with NewTaskBalanceClient select it
// on every call.
package api

import (
	"encoding/json"

	"google.golang.org/grpc/encoding"
)

// CodecName is the grpc content-subtype the service is served with.
const CodecName = "json"

type jsonCodec struct{}

func (jsonCodec) Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

func (jsonCodec) Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

func (jsonCodec) Name() string {
	return CodecName
}

func init() {
	encoding.RegisterCodec(jsonCodec{})
}
