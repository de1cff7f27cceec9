// Copyright (C) 2025 l3montree GmbH
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package database

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/l3montree-dev/threadline/monitoring"
	"github.com/l3montree-dev/threadline/shared"
	"github.com/lib/pq"
)

type PostgreSQLMessage struct {
	ID        string               `json:"id"`
	Channel   shared.PubSubChannel `json:"topic"`
	Payload   map[string]any       `json:"payload"`
	Timestamp time.Time            `json:"timestamp"`
	SenderID  string               `json:"sender_id,omitempty"`
}

func (m PostgreSQLMessage) GetChannel() shared.PubSubChannel {
	return m.Channel
}

func (m PostgreSQLMessage) GetPayload() map[string]any {
	return m.Payload
}

type listeningConnection struct {
	conn        *pgxpool.Conn
	subscribers []chan map[string]any
}

// PostgreSQLBroker implements shared.PubSubBroker using LISTEN/NOTIFY.
// Every subscribed channel holds one pooled connection until Close.
type PostgreSQLBroker struct {
	db                       *pgxpool.Pool
	subscribers              map[shared.PubSubChannel]*listeningConnection
	mu                       sync.RWMutex
	wg                       sync.WaitGroup
	ctx                      context.Context
	cancel                   context.CancelFunc
	ID                       string
	shouldReceiveOwnMessages bool
}

func (b *PostgreSQLBroker) SetShouldReceiveOwnMessages(should bool) {
	b.shouldReceiveOwnMessages = should
}

func NewPostgreSQLBroker(db *pgxpool.Pool) *PostgreSQLBroker {
	ctx, cancel := context.WithCancel(context.Background())
	return &PostgreSQLBroker{
		db:          db,
		subscribers: make(map[shared.PubSubChannel]*listeningConnection),
		ctx:         ctx,
		cancel:      cancel,
		ID:          uuid.New().String(),
	}
}

// BrokerFactory returns the broker used by the server.
// A single process runs the api and the job worker, so it has to see its own notifications.
func BrokerFactory(pool *pgxpool.Pool) shared.PubSubBroker {
	broker := NewPostgreSQLBroker(pool)
	broker.SetShouldReceiveOwnMessages(true)
	return broker
}

func (b *PostgreSQLBroker) Publish(ctx context.Context, message shared.PubSubMessage) error {
	pgMessage := PostgreSQLMessage{
		ID:        uuid.New().String(),
		Channel:   message.GetChannel(),
		Payload:   message.GetPayload(),
		Timestamp: time.Now(),
		SenderID:  b.ID,
	}

	messageJSON, err := json.Marshal(pgMessage)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	// pg_notify takes the payload as a bind parameter, so no quoting of the json is needed
	if _, err = b.db.Exec(ctx, "SELECT pg_notify($1, $2)", string(pgMessage.Channel), string(messageJSON)); err != nil {
		return fmt.Errorf("failed to send notification: %w", err)
	}

	slog.Debug("message published", "topic", pgMessage.Channel, "messageID", pgMessage.ID)
	return nil
}

func (b *PostgreSQLBroker) Subscribe(topic shared.PubSubChannel) (<-chan map[string]any, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	ch := make(chan map[string]any, 100)

	if existing, ok := b.subscribers[topic]; ok {
		existing.subscribers = append(existing.subscribers, ch)
		return ch, nil
	}

	ctx, cancel := context.WithTimeout(b.ctx, 30*time.Second)
	defer cancel()
	conn, err := b.db.Acquire(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to acquire connection for listening: %w", err)
	}
	if _, err = conn.Exec(ctx, "LISTEN "+pq.QuoteIdentifier(string(topic))); err != nil {
		conn.Release()
		return nil, fmt.Errorf("failed to listen on topic %s: %w", topic, err)
	}

	b.subscribers[topic] = &listeningConnection{
		conn:        conn,
		subscribers: []chan map[string]any{ch},
	}
	b.wg.Add(1)
	go func() {
		defer b.wg.Done()
		b.processMessages(topic, conn)
	}()

	return ch, nil
}

func (b *PostgreSQLBroker) processMessages(topic shared.PubSubChannel, conn *pgxpool.Conn) {
	defer conn.Release()
	for {
		notification, err := conn.Conn().WaitForNotification(b.ctx)
		if err != nil {
			if b.ctx.Err() == nil {
				monitoring.Alert("could not listen for notifications from PostgreSQL broker", err)
			}
			b.closeSubscribers(topic)
			return
		}
		if notification == nil || notification.Channel != string(topic) {
			continue
		}

		var message PostgreSQLMessage
		if err := json.Unmarshal([]byte(notification.Payload), &message); err != nil {
			slog.Error("failed to unmarshal message", "err", err, "payload", notification.Payload)
			continue
		}

		if message.SenderID == b.ID && !b.shouldReceiveOwnMessages {
			continue
		}

		b.mu.RLock()
		listening, ok := b.subscribers[topic]
		var subscribers []chan map[string]any
		if ok {
			subscribers = listening.subscribers
		}
		b.mu.RUnlock()

		for _, subscriber := range subscribers {
			select {
			case subscriber <- message.Payload:
			default:
				slog.Warn("subscriber channel full, dropping message", "topic", topic, "messageID", message.ID)
			}
		}
	}
}

func (b *PostgreSQLBroker) closeSubscribers(topic shared.PubSubChannel) {
	b.mu.Lock()
	defer b.mu.Unlock()
	listening, ok := b.subscribers[topic]
	if !ok {
		return
	}
	for _, ch := range listening.subscribers {
		close(ch)
	}
	delete(b.subscribers, topic)
}

// Close stops listening and releases all connections. Subscriber channels get closed.
func (b *PostgreSQLBroker) Close() {
	b.cancel()
	b.wg.Wait()
}

func (b *PostgreSQLBroker) GetActiveTopics() []shared.PubSubChannel {
	b.mu.RLock()
	defer b.mu.RUnlock()

	topics := make([]shared.PubSubChannel, 0, len(b.subscribers))
	for topic := range b.subscribers {
		topics = append(topics, topic)
	}
	return topics
}
