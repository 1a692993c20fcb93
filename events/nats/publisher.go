package nats

import (
	"context"
	"encoding/json"

	"github.com/nats-io/nats.go"

	"github.com/phylax/contracts/events"
)

const (
	DefaultPrefix = "phylax"
	typeHeader    = "Phylax-Event-Type"
)

// Publisher sends envelopes to <prefix>.<topic>. The envelope id is set as the
// message id so JetStream streams can drop redeliveries.
type Publisher struct {
	nc     *nats.Conn
	prefix string
}

func New(url, prefix string, opts ...nats.Option) (*Publisher, error) {
	nc, err := nats.Connect(url, opts...)
	if err != nil {
		return nil, err
	}
	if prefix == "" {
		prefix = DefaultPrefix
	}
	return &Publisher{nc: nc, prefix: prefix}, nil
}

func (p *Publisher) Publish(ctx context.Context, event events.Event) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	msg, err := message(p.prefix, event)
	if err != nil {
		return err
	}
	return p.nc.PublishMsg(msg)
}

func (p *Publisher) Close() error {
	if p.nc != nil {
		return p.nc.Drain()
	}
	return nil
}

func Subject(prefix, topic string) string {
	if prefix == "" {
		prefix = DefaultPrefix
	}
	return prefix + "." + topic
}

func message(prefix string, event events.Event) (*nats.Msg, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, err
	}
	msg := nats.NewMsg(Subject(prefix, event.Topic))
	msg.Header.Set(nats.MsgIdHdr, event.ID)
	msg.Header.Set(typeHeader, string(event.Type))
	msg.Data = data
	return msg, nil
}

var _ events.Publisher = (*Publisher)(nil)
