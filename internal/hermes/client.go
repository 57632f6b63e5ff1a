// Package hermes publishes showroom activity to NATS and lets operators tail it.
package hermes

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
)

// Client is the event sink used by the API. Implementations must be safe
// for concurrent use.
type Client interface {
	Publish(subject string, data interface{}) error
	Subscribe(subject string, handler func(subject string, data []byte)) error
	Close()
}

// Options configures a NATS connection.
type Options struct {
	URL    string
	Name   string
	MaxAge time.Duration
}

// NATSClient publishes JSON events as core NATS messages. Messages land in
// the SHOWROOM_EVENTS stream when JetStream is available on the server.
type NATSClient struct {
	nc     *nats.Conn
	js     jetstream.JetStream
	logger *slog.Logger

	mu   sync.Mutex
	subs []*nats.Subscription
}

// Connect dials the server and makes sure the event stream exists. A stream
// error is logged, not returned: plain pub/sub keeps working without it.
func Connect(ctx context.Context, opts Options, logger *slog.Logger) (*NATSClient, error) {
	if opts.Name == "" {
		opts.Name = "showroom"
	}
	if opts.MaxAge <= 0 {
		opts.MaxAge = StreamMaxAge
	}

	nc, err := nats.Connect(opts.URL,
		nats.Name(opts.Name),
		nats.RetryOnFailedConnect(true),
		nats.MaxReconnects(60),
		nats.ReconnectWait(2*time.Second),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				logger.Warn("event bus disconnected", "error", err)
			}
		}),
		nats.ReconnectHandler(func(c *nats.Conn) {
			logger.Info("event bus reconnected", "url", c.ConnectedUrl())
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("connect %s: %w", opts.URL, err)
	}

	js, err := jetstream.New(nc)
	if err != nil {
		nc.Close()
		return nil, fmt.Errorf("jetstream: %w", err)
	}

	c := &NATSClient{nc: nc, js: js, logger: logger}
	if err := c.ensureStream(ctx, opts.MaxAge); err != nil {
		logger.Warn("event stream unavailable", "stream", StreamName, "error", err)
	}
	return c, nil
}

func (c *NATSClient) ensureStream(ctx context.Context, maxAge time.Duration) error {
	_, err := c.js.CreateOrUpdateStream(ctx, jetstream.StreamConfig{
		Name:      StreamName,
		Subjects:  []string{SubjectAll},
		MaxAge:    maxAge,
		Retention: jetstream.LimitsPolicy,
	})
	return err
}

// Publish encodes data as JSON and sends it with a unique message id so the
// stream drops redelivered duplicates.
func (c *NATSClient) Publish(subject string, data interface{}) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("encode %s: %w", subject, err)
	}
	msg := nats.NewMsg(subject)
	msg.Data = payload
	msg.Header.Set(nats.MsgIdHdr, uuid.NewString())
	if err := c.nc.PublishMsg(msg); err != nil {
		return fmt.Errorf("publish %s: %w", subject, err)
	}
	return nil
}

// Subscribe delivers every message on subject (wildcards allowed) to handler.
func (c *NATSClient) Subscribe(subject string, handler func(string, []byte)) error {
	sub, err := c.nc.Subscribe(subject, func(msg *nats.Msg) {
		handler(msg.Subject, msg.Data)
	})
	if err != nil {
		return err
	}
	c.mu.Lock()
	c.subs = append(c.subs, sub)
	c.mu.Unlock()
	return nil
}

// Close drops subscriptions and drains pending publishes.
func (c *NATSClient) Close() {
	c.mu.Lock()
	for _, sub := range c.subs {
		_ = sub.Unsubscribe()
	}
	c.subs = nil
	c.mu.Unlock()

	if err := c.nc.Drain(); err != nil {
		c.nc.Close()
	}
}
