// Package webhook implements payload signing and HTTP delivery with bounded
// retry for outbound event notifications.
package webhook

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sort"
)

// CanonicalJSON renders the payload deterministically: keys sorted, compact
// separators. Signing and verification must agree on the exact bytes, so both
// sides go through this.
func CanonicalJSON(payload map[string]interface{}) ([]byte, error) {
	return marshalCanonical(payload)
}

func marshalCanonical(v interface{}) ([]byte, error) {
	switch val := v.(type) {
	case map[string]interface{}:
		keys := make([]string, 0, len(val))
		for k := range val {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		buf := []byte{'{'}
		for i, k := range keys {
			if i > 0 {
				buf = append(buf, ',')
			}
			kb, err := json.Marshal(k)
			if err != nil {
				return nil, err
			}
			vb, err := marshalCanonical(val[k])
			if err != nil {
				return nil, err
			}
			buf = append(buf, kb...)
			buf = append(buf, ':')
			buf = append(buf, vb...)
		}
		return append(buf, '}'), nil
	case []interface{}:
		buf := []byte{'['}
		for i, item := range val {
			if i > 0 {
				buf = append(buf, ',')
			}
			ib, err := marshalCanonical(item)
			if err != nil {
				return nil, err
			}
			buf = append(buf, ib...)
		}
		return append(buf, ']'), nil
	default:
		return json.Marshal(v)
	}
}

// Sign computes the hex HMAC-SHA256 of the canonical payload with the
// subscription secret.
func Sign(payload map[string]interface{}, secret string) (string, error) {
	body, err := CanonicalJSON(payload)
	if err != nil {
		return "", fmt.Errorf("canonicalize payload: %w", err)
	}
	return SignBytes(body, secret), nil
}

// SignBytes signs an already-serialized body.
func SignBytes(body []byte, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

// Verify recomputes the signature over the exact received body and compares
// in constant time. Receivers must treat any mismatch as a hard rejection.
func Verify(body []byte, signature, secret string) bool {
	expected := SignBytes(body, secret)
	return hmac.Equal([]byte(expected), []byte(signature))
}
