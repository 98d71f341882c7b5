package event

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/SigilForge_Go/internal/domain"
	"github.com/osse101/SigilForge_Go/internal/testing/leaktest"
)

func TestMemoryBus_PublishSubscribe(t *testing.T) {
	bus := NewMemoryBus()
	eventType := Type("test_event")
	handled := false

	bus.Subscribe(eventType, func(ctx context.Context, event Event) error {
		assert.Equal(t, eventType, event.Type)
		assert.Equal(t, "payload", event.Payload)
		handled = true
		return nil
	})

	err := bus.Publish(context.Background(), Event{Version: "1.0", Type: eventType, Payload: "payload"})
	require.NoError(t, err)
	assert.True(t, handled, "Handler was not called")
}

func TestMemoryBus_PublishMultipleHandlers(t *testing.T) {
	bus := NewMemoryBus()
	eventType := Type("test_event")
	count := 0

	handler := func(ctx context.Context, event Event) error {
		count++
		return nil
	}
	bus.Subscribe(eventType, handler)
	bus.Subscribe(eventType, handler)

	require.NoError(t, bus.Publish(context.Background(), Event{Version: "1.0", Type: eventType}))
	assert.Equal(t, 2, count)
}

func TestMemoryBus_PublishError(t *testing.T) {
	bus := NewMemoryBus()
	eventType := Type("test_event")
	called := false

	bus.Subscribe(eventType, func(ctx context.Context, event Event) error {
		return errors.New("handler error")
	})
	bus.Subscribe(eventType, func(ctx context.Context, event Event) error {
		called = true
		return nil
	})

	err := bus.Publish(context.Background(), Event{Version: "1.0", Type: eventType})
	assert.Error(t, err)
	assert.True(t, called, "later handlers still run after an earlier one fails")
}

func TestMemoryBus_NoSubscribers(t *testing.T) {
	bus := NewMemoryBus()
	assert.NoError(t, bus.Publish(context.Background(), Event{Type: "nobody_listens"}))
}

func TestNewUpgradeAttemptedEvent(t *testing.T) {
	evt := NewUpgradeAttemptedEvent(UpgradeAttemptedPayloadV1{
		PlayerID:      "p1",
		WeaponName:    "Brandish",
		PreviousLevel: 12,
		NewLevel:      11,
		Result:        domain.OutcomeDowngraded,
	})

	assert.Equal(t, UpgradeAttempted, evt.Type)
	assert.Equal(t, EventSchemaVersion, evt.Version)
	assert.Equal(t, "p1", evt.GetMetadataValue(MetadataKeyPlayerID))
	assert.Equal(t, "downgraded", evt.GetMetadataValue(MetadataKeyResult))

	payload, err := DecodePayload[UpgradeAttemptedPayloadV1](evt.Payload)
	require.NoError(t, err)
	assert.NotZero(t, payload.Timestamp)
	assert.Equal(t, 11, payload.NewLevel)
}

func TestDecodePayload_JSONFallback(t *testing.T) {
	raw := map[string]interface{}{"player_id": "p2", "result": "success", "new_level": 6}

	payload, err := DecodePayload[UpgradeAttemptedPayloadV1](raw)
	require.NoError(t, err)
	assert.Equal(t, "p2", payload.PlayerID)
	assert.Equal(t, domain.OutcomeSuccess, payload.Result)
	assert.Equal(t, 6, payload.NewLevel)
}

func TestDecodePayload_Pointer(t *testing.T) {
	payload, err := DecodePayload[UpgradeAttemptedPayloadV1](&UpgradeAttemptedPayloadV1{PlayerID: "p3"})
	require.NoError(t, err)
	assert.Equal(t, "p3", payload.PlayerID)
}

func TestDecodePayload_Mismatch(t *testing.T) {
	_, err := DecodePayload[UpgradeAttemptedPayloadV1]("not a payload")
	assert.Error(t, err)
}

type flakyBus struct {
	*MemoryBus
	failures int32
}

func (b *flakyBus) Publish(ctx context.Context, evt Event) error {
	if atomic.AddInt32(&b.failures, -1) >= 0 {
		return errors.New("transient")
	}
	return b.MemoryBus.Publish(ctx, evt)
}

func TestResilientPublisher_RetriesThenDelivers(t *testing.T) {
	inner := &flakyBus{MemoryBus: NewMemoryBus(), failures: 2}
	var delivered int32
	inner.Subscribe("retry_me", func(ctx context.Context, event Event) error {
		atomic.AddInt32(&delivered, 1)
		return nil
	})

	pub := NewResilientPublisher(inner, ResilientConfig{MaxRetries: 3, RetryDelay: time.Millisecond})

	leaktest.CheckNoGoroutineLeak(t, func() {
		require.NoError(t, pub.Publish(context.Background(), Event{Type: "retry_me"}))

		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		require.NoError(t, pub.Shutdown(ctx))
	})
	assert.Equal(t, int32(1), atomic.LoadInt32(&delivered))
}

func TestResilientPublisher_DeadLettersAfterExhaustion(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deadletter.jsonl")
	dlw, err := NewDeadLetterWriter(path)
	require.NoError(t, err)
	defer dlw.Close()

	inner := &flakyBus{MemoryBus: NewMemoryBus(), failures: 100}
	pub := NewResilientPublisher(inner, ResilientConfig{MaxRetries: 2, RetryDelay: time.Millisecond, DeadLetter: dlw})

	require.NoError(t, pub.Publish(context.Background(), NewUpgradeAttemptedEvent(UpgradeAttemptedPayloadV1{PlayerID: "p1"})))
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, pub.Shutdown(ctx))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	scanner := bufio.NewScanner(f)
	require.True(t, scanner.Scan())
	var entry DeadLetterEntry
	require.NoError(t, json.Unmarshal(scanner.Bytes(), &entry))
	assert.Equal(t, DeadLetterSchemaVersion, entry.SchemaVersion)
	assert.Equal(t, 3, entry.Attempts)
	assert.Equal(t, "transient", entry.LastError)
	assert.Equal(t, UpgradeAttempted, entry.Event.Type)
}
