// File: services/wizard/session.go
package wizard

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

// Session is the serialized form of a wizard run, held in Redis between
// requests. The flow itself is rebound by name on load since validators are
// not serializable.
type Session struct {
	SessionID      string    `json:"sessionId"`
	Flow           string    `json:"flow"`
	CurrentStep    int       `json:"currentStep"`
	CompletedSteps []int     `json:"completedSteps,omitempty"`
	FormData       FormData  `json:"formData"`
	CreatedAt      time.Time `json:"createdAt"`
	LastUpdatedAt  time.Time `json:"lastUpdatedAt"`
}

// NewSession wraps a fresh wizard in a session envelope.
func NewSession(w *Wizard) *Session {
	now := time.Now()
	sess := &Session{
		SessionID: uuid.New().String(),
		Flow:      w.Flow().Name,
		CreatedAt: now,
	}
	sess.Capture(w)
	return sess
}

// Hydrate rebuilds a live wizard from the stored state.
func (s *Session) Hydrate(flow *Flow) *Wizard {
	completed := make(map[int]bool, len(s.CompletedSteps))
	for _, step := range s.CompletedSteps {
		completed[step] = true
	}
	form := s.FormData
	if form == nil {
		form = FormData{}
	}
	current := s.CurrentStep
	if current < 1 {
		current = 1
	}
	if current > flow.StepCount() {
		current = flow.StepCount()
	}
	return &Wizard{
		flow:        flow,
		CurrentStep: current,
		Completed:   completed,
		Form:        form,
	}
}

// Capture folds the wizard's live state back into the session.
func (s *Session) Capture(w *Wizard) {
	s.CurrentStep = w.CurrentStep
	s.CompletedSteps = s.CompletedSteps[:0]
	for step := 1; step <= w.Flow().StepCount(); step++ {
		if w.Completed[step] {
			s.CompletedSteps = append(s.CompletedSteps, step)
		}
	}
	s.FormData = w.Form
	s.LastUpdatedAt = time.Now()
}

// SessionStore keeps wizard sessions in Redis with a TTL. A session that
// expires or is cancelled simply disappears; its form data is discarded.
type SessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewSessionStore(client *redis.Client, ttl time.Duration) *SessionStore {
	return &SessionStore{client: client, ttl: ttl}
}

func sessionKey(id string) string {
	return "wizard:session:" + id
}

// Save writes the session and refreshes its TTL.
func (st *SessionStore) Save(ctx context.Context, sess *Session) error {
	data, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("failed to marshal wizard session: %w", err)
	}
	if err := st.client.Set(ctx, sessionKey(sess.SessionID), data, st.ttl).Err(); err != nil {
		return fmt.Errorf("failed to store wizard session: %w", err)
	}
	return nil
}

// Get loads a session by ID.
func (st *SessionStore) Get(ctx context.Context, sessionID string) (*Session, error) {
	data, err := st.client.Get(ctx, sessionKey(sessionID)).Result()
	if err != nil {
		return nil, fmt.Errorf("wizard session not found or expired: %w", err)
	}
	var sess Session
	if err := json.Unmarshal([]byte(data), &sess); err != nil {
		return nil, fmt.Errorf("failed to parse wizard session: %w", err)
	}
	return &sess, nil
}

// Delete discards a session and all of its accumulated form data.
func (st *SessionStore) Delete(ctx context.Context, sessionID string) error {
	if err := st.client.Del(ctx, sessionKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("failed to discard wizard session: %w", err)
	}
	return nil
}
