package service

import (
	"encoding/hex"
	"strings"
	"testing"

	"hr-support-be/internal/constant"
	"hr-support-be/internal/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateEventTypes(t *testing.T) {
	tests := []struct {
		name    string
		events  []string
		wantErr bool
	}{
		{
			name:   "all registrable events",
			events: constant.WebhookEvents(),
		},
		{
			name:   "single event",
			events: []string{constant.EventQueryEscalated},
		},
		{
			name:    "reserved test event rejected",
			events:  []string{constant.EventQueryCreated, constant.EventWebhookTest},
			wantErr: true,
		},
		{
			name:    "unknown event rejected",
			events:  []string{"query.deleted"},
			wantErr: true,
		},
		{
			name:    "typo rejected",
			events:  []string{"query.create"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateEventTypes(tt.events)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestGenerateSecretFormat(t *testing.T) {
	secret, err := generateSecret()
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(secret, "whsec_"))

	hexPart := strings.TrimPrefix(secret, "whsec_")
	assert.Len(t, hexPart, 48)

	_, err = hex.DecodeString(hexPart)
	assert.NoError(t, err)
}

func TestGenerateSecretUnique(t *testing.T) {
	a, err := generateSecret()
	require.NoError(t, err)
	b, err := generateSecret()
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestMaskSecret(t *testing.T) {
	assert.Equal(t, "whsec_ab12****", maskSecret("whsec_ab12cd34ef56"))
	assert.Equal(t, "****", maskSecret("short"))
	assert.Equal(t, "****", maskSecret(""))
}

func TestToWebhookResponseHidesSecret(t *testing.T) {
	sub := &entity.WebhookSubscription{
		Id:     uuid.New(),
		Url:    "https://example.com/hook",
		Events: []string{constant.EventQueryCreated},
		Secret: "whsec_0123456789abcdef0123456789abcdef0123456789abcdef",
	}

	res := toWebhookResponse(sub)

	assert.Equal(t, "whsec_0123****", res.SecretHint)
	assert.NotContains(t, res.SecretHint, "456789abcdef")
}

func TestSubscriptionSubscribed(t *testing.T) {
	sub := &entity.WebhookSubscription{
		Events: []string{constant.EventQueryCreated, constant.EventQueryEscalated},
	}

	assert.True(t, sub.Subscribed(constant.EventQueryCreated))
	assert.True(t, sub.Subscribed(constant.EventQueryEscalated))
	assert.False(t, sub.Subscribed(constant.EventQueryResolved))
	assert.False(t, sub.Subscribed(constant.EventWebhookTest))
}
