package webhook

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalJSONSortsKeys(t *testing.T) {
	a, err := CanonicalJSON(map[string]interface{}{
		"zeta":  1,
		"alpha": "x",
		"nested": map[string]interface{}{
			"b": true,
			"a": []interface{}{1, "two"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, `{"alpha":"x","nested":{"a":[1,"two"],"b":true},"zeta":1}`, string(a))
}

func TestCanonicalJSONIsOrderIndependent(t *testing.T) {
	// Two maps built in different insertion orders must serialize identically,
	// otherwise signatures would be flaky.
	p1 := map[string]interface{}{"event": "query.created", "data": map[string]interface{}{"id": "1", "priority": 3}}
	p2 := map[string]interface{}{"data": map[string]interface{}{"priority": 3, "id": "1"}, "event": "query.created"}

	b1, err := CanonicalJSON(p1)
	require.NoError(t, err)
	b2, err := CanonicalJSON(p2)
	require.NoError(t, err)
	assert.Equal(t, b1, b2)
}

func TestSignAndVerifyRoundTrip(t *testing.T) {
	payload := map[string]interface{}{
		"event":      "query.resolved",
		"webhook_id": "wh_123",
		"data":       map[string]interface{}{"conversation_id": "c-9"},
	}
	secret := "whsec_test"

	sig, err := Sign(payload, secret)
	require.NoError(t, err)
	require.Len(t, sig, 64)

	body, err := CanonicalJSON(payload)
	require.NoError(t, err)
	assert.True(t, Verify(body, sig, secret))
}

func TestVerifyRejectsTampering(t *testing.T) {
	payload := map[string]interface{}{"event": "query.created", "data": map[string]interface{}{"n": 1}}
	secret := "whsec_test"

	sig, err := Sign(payload, secret)
	require.NoError(t, err)
	body, err := CanonicalJSON(payload)
	require.NoError(t, err)

	mutated := make([]byte, len(body))
	copy(mutated, body)
	mutated[len(mutated)-2] ^= 0x01
	assert.False(t, Verify(mutated, sig, secret))

	assert.False(t, Verify(body, sig, "wrong-secret"))

	flipped := []byte(sig)
	if flipped[0] == 'a' {
		flipped[0] = 'b'
	} else {
		flipped[0] = 'a'
	}
	assert.False(t, Verify(body, string(flipped), secret))
}
