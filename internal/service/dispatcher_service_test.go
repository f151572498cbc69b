package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"hr-support-be/internal/constant"
	"hr-support-be/internal/dto"
	"hr-support-be/internal/entity"
	"hr-support-be/internal/repository/specification"
	"hr-support-be/pkg/webhook"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }

type recordedCounter struct {
	id      uuid.UUID
	success bool
}

type fakeWebhookRepo struct {
	mu      sync.Mutex
	subs    []*entity.WebhookSubscription
	findErr error
	counts  []recordedCounter
}

func (f *fakeWebhookRepo) Create(ctx context.Context, sub *entity.WebhookSubscription) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.subs = append(f.subs, sub)
	return nil
}

func (f *fakeWebhookRepo) Update(ctx context.Context, sub *entity.WebhookSubscription) error {
	return nil
}

func (f *fakeWebhookRepo) Delete(ctx context.Context, id uuid.UUID) error { return nil }

func (f *fakeWebhookRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.WebhookSubscription, error) {
	return nil, nil
}

func (f *fakeWebhookRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.WebhookSubscription, error) {
	return f.subs, nil
}

func (f *fakeWebhookRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return int64(len(f.subs)), nil
}

func (f *fakeWebhookRepo) FindActiveByEvent(ctx context.Context, eventType string) ([]*entity.WebhookSubscription, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	var matched []*entity.WebhookSubscription
	for _, sub := range f.subs {
		if sub.IsActive && sub.Subscribed(eventType) {
			matched = append(matched, sub)
		}
	}
	return matched, nil
}

func (f *fakeWebhookRepo) RecordDelivery(ctx context.Context, id uuid.UUID, success bool, at time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.counts = append(f.counts, recordedCounter{id: id, success: success})
	return nil
}

func (f *fakeWebhookRepo) recordedFor(id uuid.UUID) []recordedCounter {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []recordedCounter
	for _, c := range f.counts {
		if c.id == id {
			out = append(out, c)
		}
	}
	return out
}

type fakeDeliveryRepo struct {
	mu   sync.Mutex
	logs []*entity.WebhookDelivery
}

func (f *fakeDeliveryRepo) Create(ctx context.Context, delivery *entity.WebhookDelivery) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.logs = append(f.logs, delivery)
	return nil
}

func (f *fakeDeliveryRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.WebhookDelivery, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]*entity.WebhookDelivery(nil), f.logs...), nil
}

func (f *fakeDeliveryRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return int64(len(f.logs)), nil
}

func newSub(url string, events ...string) *entity.WebhookSubscription {
	return &entity.WebhookSubscription{
		Id:       uuid.New(),
		Url:      url,
		Events:   events,
		Secret:   "whsec_test_secret",
		IsActive: true,
	}
}

func newDispatcher(webhookRepo *fakeWebhookRepo, deliveryRepo *fakeDeliveryRepo, timeout time.Duration, attempts int) *dispatcherService {
	return &dispatcherService{
		topic:        "SUPPORT_EVENTS",
		webhookRepo:  webhookRepo,
		deliveryRepo: deliveryRepo,
		deliverer:    webhook.NewDeliverer(timeout, attempts, 10*time.Millisecond, "SmartSupport-Webhook/1.0"),
		logger:       nopLogger{},
	}
}

func eventMessage(t *testing.T, eventType string, data map[string]interface{}) *message.Message {
	t.Helper()
	payload, err := json.Marshal(dto.EventMessage{
		Event:      eventType,
		Data:       data,
		OccurredAt: time.Now(),
	})
	require.NoError(t, err)
	return message.NewMessage(watermill.NewUUID(), payload)
}

func TestDispatcherOnlySubscribedEndpointsReceiveEvent(t *testing.T) {
	var createdHits, escalatedHits int64

	createdSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&createdHits, 1)
		w.WriteHeader(http.StatusOK)
	}))
	defer createdSrv.Close()

	escalatedSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&escalatedHits, 1)
		w.WriteHeader(http.StatusOK)
	}))
	defer escalatedSrv.Close()

	webhookRepo := &fakeWebhookRepo{subs: []*entity.WebhookSubscription{
		newSub(createdSrv.URL, constant.EventQueryCreated),
		newSub(escalatedSrv.URL, constant.EventQueryEscalated),
	}}
	deliveryRepo := &fakeDeliveryRepo{}
	s := newDispatcher(webhookRepo, deliveryRepo, time.Second, 1)

	s.processMessage(context.Background(), eventMessage(t, constant.EventQueryEscalated, map[string]interface{}{
		"conversation_id": "conv-1",
	}))

	require.Eventually(t, func() bool {
		n, _ := deliveryRepo.Count(context.Background())
		return n == 1
	}, 2*time.Second, 10*time.Millisecond)

	assert.EqualValues(t, 0, atomic.LoadInt64(&createdHits))
	assert.EqualValues(t, 1, atomic.LoadInt64(&escalatedHits))

	logs, _ := deliveryRepo.FindAll(context.Background())
	require.Len(t, logs, 1)
	assert.Equal(t, constant.EventQueryEscalated, logs[0].EventType)
	assert.Equal(t, constant.EventQueryEscalated, logs[0].Payload["event"])
	assert.True(t, logs[0].Success)
	assert.Equal(t, http.StatusOK, logs[0].StatusCode)
	assert.Equal(t, 1, logs[0].Attempts)
}

func TestDispatcherSlowEndpointDoesNotBlockOthers(t *testing.T) {
	release := make(chan struct{})

	slowSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Hangs until the deliverer gives up on the request, so the handler
		// never outlives the server shutdown.
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer slowSrv.Close()
	// Registered after slowSrv.Close so it runs first: the handler never reads
	// the request body, so the server cannot observe the client disconnect and
	// only the release channel unblocks it before shutdown.
	defer close(release)

	var fastHit int64
	fastSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&fastHit, 1)
		w.WriteHeader(http.StatusOK)
	}))
	defer fastSrv.Close()

	slowSub := newSub(slowSrv.URL, constant.EventQueryCreated)
	fastSub := newSub(fastSrv.URL, constant.EventQueryCreated)

	webhookRepo := &fakeWebhookRepo{subs: []*entity.WebhookSubscription{slowSub, fastSub}}
	deliveryRepo := &fakeDeliveryRepo{}
	s := newDispatcher(webhookRepo, deliveryRepo, 500*time.Millisecond, 1)

	s.processMessage(context.Background(), eventMessage(t, constant.EventQueryCreated, nil))

	// The fast endpoint must succeed while the slow one is still hanging.
	require.Eventually(t, func() bool {
		return atomic.LoadInt64(&fastHit) == 1 && len(webhookRepo.recordedFor(fastSub.Id)) == 1
	}, 2*time.Second, 10*time.Millisecond)

	recorded := webhookRepo.recordedFor(fastSub.Id)
	require.Len(t, recorded, 1)
	assert.True(t, recorded[0].success)

	// The slow endpoint eventually times out and is recorded as a failure.
	require.Eventually(t, func() bool {
		return len(webhookRepo.recordedFor(slowSub.Id)) == 1
	}, 3*time.Second, 10*time.Millisecond)
	assert.False(t, webhookRepo.recordedFor(slowSub.Id)[0].success)
}

func TestDispatcherFailedDeliveryRecordedInAuditLog(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream broken", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	sub := newSub(srv.URL, constant.EventFeedbackReceived)
	webhookRepo := &fakeWebhookRepo{subs: []*entity.WebhookSubscription{sub}}
	deliveryRepo := &fakeDeliveryRepo{}
	s := newDispatcher(webhookRepo, deliveryRepo, time.Second, 3)

	s.processMessage(context.Background(), eventMessage(t, constant.EventFeedbackReceived, map[string]interface{}{
		"rating": 2,
	}))

	require.Eventually(t, func() bool {
		n, _ := deliveryRepo.Count(context.Background())
		return n == 1
	}, 3*time.Second, 10*time.Millisecond)

	logs, _ := deliveryRepo.FindAll(context.Background())
	require.Len(t, logs, 1)
	assert.False(t, logs[0].Success)
	assert.Equal(t, http.StatusServiceUnavailable, logs[0].StatusCode)
	assert.Equal(t, 3, logs[0].Attempts)
	assert.Equal(t, sub.Id, logs[0].SubscriptionId)

	recorded := webhookRepo.recordedFor(sub.Id)
	require.Len(t, recorded, 1)
	assert.False(t, recorded[0].success)
}

func TestDispatcherMalformedPayloadIsDropped(t *testing.T) {
	webhookRepo := &fakeWebhookRepo{}
	deliveryRepo := &fakeDeliveryRepo{}
	s := newDispatcher(webhookRepo, deliveryRepo, time.Second, 1)

	msg := message.NewMessage(watermill.NewUUID(), []byte("not json"))
	s.processMessage(context.Background(), msg)

	select {
	case <-msg.Acked():
	case <-time.After(time.Second):
		t.Fatal("expected malformed message to be acked")
	}

	n, _ := deliveryRepo.Count(context.Background())
	assert.EqualValues(t, 0, n)
}

func TestDispatcherNacksWhenSubscriptionLookupFails(t *testing.T) {
	webhookRepo := &fakeWebhookRepo{findErr: assert.AnError}
	deliveryRepo := &fakeDeliveryRepo{}
	s := newDispatcher(webhookRepo, deliveryRepo, time.Second, 1)

	msg := eventMessage(t, constant.EventQueryCreated, nil)
	s.processMessage(context.Background(), msg)

	select {
	case <-msg.Nacked():
	case <-time.After(time.Second):
		t.Fatal("expected message to be nacked on repository error")
	}
}
