package grpcapi

import (
	"encoding/json"

	"google.golang.org/grpc/encoding"

	"github.com/phylax/contracts/events"
	"github.com/phylax/contracts/schema"
)

// Messages travel as JSON so contract bodies keep either naming end to end.
const jsonCodecName = "json"

type jsonCodec struct{}

func (jsonCodec) Name() string                       { return jsonCodecName }
func (jsonCodec) Marshal(v any) ([]byte, error)      { return json.Marshal(v) }
func (jsonCodec) Unmarshal(data []byte, v any) error { return json.Unmarshal(data, v) }

func init() {
	encoding.RegisterCodec(jsonCodec{})
}

type Empty struct{}

type ListContractsResponse struct {
	Contracts []string `json:"contracts"`
}

type ContractRequest struct {
	Name string `json:"name"`
}

type DescribeContractResponse struct {
	Name    string             `json:"name"`
	Fields  []schema.FieldInfo `json:"fields"`
	Aliases []string           `json:"aliases"`
}

type ValidateContractRequest struct {
	Name   string          `json:"name"`
	Naming string          `json:"naming"`
	Body   json.RawMessage `json:"body"`
}

type ValidateContractResponse struct {
	Body json.RawMessage `json:"body"`
}

type EventRoute struct {
	Type  events.EventType `json:"type"`
	Topic string           `json:"topic"`
}

type ListEventTypesResponse struct {
	Events []EventRoute `json:"events"`
}

type PublishEventRequest struct {
	Type    events.EventType `json:"type"`
	Payload json.RawMessage  `json:"payload"`
}

type PublishEventResponse struct {
	ID    string `json:"id"`
	Topic string `json:"topic"`
}
