package nats

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/nats-io/nats.go"

	"github.com/phylax/contracts/events"
)

// ErrMisrouted reports an envelope that arrived on a subject its type does not belong to.
var ErrMisrouted = errors.New("nats: event on wrong subject")

// Check decodes a received message and verifies it against the contracts: the
// envelope, the typed payload it carries, and the routing of its type.
func Check(msg *nats.Msg) (events.Event, events.Payload, error) {
	var evt events.Event
	if err := json.Unmarshal(msg.Data, &evt); err != nil {
		return events.Event{}, nil, err
	}
	want, ok := events.TopicFor(evt.Type)
	if !ok {
		return evt, nil, fmt.Errorf("%q: %w", evt.Type, events.ErrUnknownEventType)
	}
	if evt.Topic != want || !strings.HasSuffix(msg.Subject, "."+want) {
		return evt, nil, fmt.Errorf("%w: %s on %q, want topic %q", ErrMisrouted, evt.Type, msg.Subject, want)
	}
	if h := msg.Header.Get(typeHeader); h != "" && h != string(evt.Type) {
		return evt, nil, fmt.Errorf("%w: header type %q, envelope type %q", ErrMisrouted, h, evt.Type)
	}
	p, err := evt.Decode()
	if err != nil {
		return evt, nil, err
	}
	return evt, p, nil
}

// Subscribe delivers every message published under prefix to handle.
func Subscribe(nc *nats.Conn, prefix string, handle nats.MsgHandler) (*nats.Subscription, error) {
	return nc.Subscribe(Subject(prefix, ">"), handle)
}
