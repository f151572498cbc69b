package webhook

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPayload() map[string]interface{} {
	return map[string]interface{}{
		"event":      "query.created",
		"webhook_id": "wh_test",
		"data":       map[string]interface{}{"conversation_id": "c-1", "priority": 3},
	}
}

func TestDeliverSuccessFirstAttempt(t *testing.T) {
	var hits int32
	var gotSig, gotID, gotUA string
	var gotBody []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		gotSig = r.Header.Get("X-Webhook-Signature")
		gotID = r.Header.Get("X-Webhook-ID")
		gotUA = r.Header.Get("User-Agent")
		gotBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	d := NewDeliverer(2*time.Second, 3, 10*time.Millisecond, "")
	target := Target{ID: "wh_test", URL: srv.URL, Secret: "whsec_1"}
	res := d.Deliver(context.Background(), target, testPayload())

	require.True(t, res.Success)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, 1, res.Attempts)
	assert.Equal(t, `{"ok":true}`, res.ResponseBody)
	assert.EqualValues(t, 1, atomic.LoadInt32(&hits))

	assert.Equal(t, "wh_test", gotID)
	assert.Equal(t, "SmartSupport-Webhook/1.0", gotUA)
	// The receiver side must be able to verify the signature over the raw body.
	assert.True(t, Verify(gotBody, gotSig, "whsec_1"))
}

func TestDeliverClientErrorDoesNotRetry(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		http.Error(w, "no such hook", http.StatusNotFound)
	}))
	defer srv.Close()

	d := NewDeliverer(2*time.Second, 3, 10*time.Millisecond, "")
	res := d.Deliver(context.Background(), Target{ID: "wh", URL: srv.URL, Secret: "s"}, testPayload())

	assert.False(t, res.Success)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
	assert.Equal(t, 1, res.Attempts)
	assert.EqualValues(t, 1, atomic.LoadInt32(&hits))
	assert.Contains(t, res.Error, "404")
}

func TestDeliverRetriesServerErrors(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		http.Error(w, "overloaded", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	d := NewDeliverer(2*time.Second, 3, 5*time.Millisecond, "")
	res := d.Deliver(context.Background(), Target{ID: "wh", URL: srv.URL, Secret: "s"}, testPayload())

	assert.False(t, res.Success)
	assert.Equal(t, http.StatusServiceUnavailable, res.StatusCode)
	assert.Equal(t, 3, res.Attempts)
	assert.EqualValues(t, 3, atomic.LoadInt32(&hits))
}

func TestDeliverRecoversOnRetry(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&hits, 1) == 1 {
			http.Error(w, "try again", http.StatusBadGateway)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	d := NewDeliverer(2*time.Second, 3, 5*time.Millisecond, "")
	res := d.Deliver(context.Background(), Target{ID: "wh", URL: srv.URL, Secret: "s"}, testPayload())

	assert.True(t, res.Success)
	assert.Equal(t, 2, res.Attempts)
	assert.EqualValues(t, 2, atomic.LoadInt32(&hits))
}

func TestDeliverNetworkFailure(t *testing.T) {
	// Closed server: every attempt fails at the transport layer.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	d := NewDeliverer(time.Second, 2, time.Millisecond, "")
	res := d.Deliver(context.Background(), Target{ID: "wh", URL: url, Secret: "s"}, testPayload())

	assert.False(t, res.Success)
	assert.Equal(t, 0, res.StatusCode)
	assert.Equal(t, 2, res.Attempts)
	assert.NotEmpty(t, res.Error)
}

func TestDeliverRespectsContextDuringBackoff(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		http.Error(w, "down", http.StatusInternalServerError)
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	d := NewDeliverer(time.Second, 3, time.Hour, "")

	done := make(chan DeliveryResult, 1)
	go func() {
		done <- d.Deliver(ctx, Target{ID: "wh", URL: srv.URL, Secret: "s"}, testPayload())
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case res := <-done:
		assert.False(t, res.Success)
		assert.Equal(t, 1, res.Attempts)
		assert.Contains(t, res.Error, "canceled")
	case <-time.After(2 * time.Second):
		t.Fatal("delivery did not stop after context cancellation")
	}
}

func TestDeliverTruncatesResponseBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		for i := 0; i < 200; i++ {
			w.Write([]byte("0123456789"))
		}
	}))
	defer srv.Close()

	d := NewDeliverer(2*time.Second, 1, time.Millisecond, "")
	res := d.Deliver(context.Background(), Target{ID: "wh", URL: srv.URL, Secret: "s"}, testPayload())

	require.True(t, res.Success)
	assert.Len(t, res.ResponseBody, responseBodyLimit)
}
