package memory

import (
	"time"

	"hr-support-be/pkg/llm"

	"github.com/patrickmn/go-cache"
)

// HistoryStore keeps recent conversation turns in memory so follow-up queries
// within the same conversation carry context without a database round trip.
type HistoryStore struct {
	cache    *cache.Cache
	maxTurns int
}

func NewHistoryStore() *HistoryStore {
	// Entries expire 1 hour after the last write; expired items are purged
	// every 10 minutes.
	c := cache.New(1*time.Hour, 10*time.Minute)
	return &HistoryStore{
		cache:    c,
		maxTurns: 20,
	}
}

func (s *HistoryStore) Get(conversationID string) []llm.Message {
	if x, found := s.cache.Get(conversationID); found {
		return x.([]llm.Message)
	}
	return nil
}

// Append records a user/assistant exchange, keeping only the most recent turns.
func (s *HistoryStore) Append(conversationID string, turns ...llm.Message) {
	history := append(s.Get(conversationID), turns...)
	if len(history) > s.maxTurns {
		history = history[len(history)-s.maxTurns:]
	}
	s.cache.Set(conversationID, history, cache.DefaultExpiration)
}

func (s *HistoryStore) Delete(conversationID string) {
	s.cache.Delete(conversationID)
}
