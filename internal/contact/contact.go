package contact

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/mail"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

var ErrInvalidMessage = errors.New("invalid contact message")

type Subject string

const (
	SubjectAdvice  Subject = "advies"
	SubjectOrder   Subject = "order"
	SubjectProduct Subject = "product"
	SubjectReturn  Subject = "retour"
	SubjectOther   Subject = "anders"
)

func (s Subject) Valid() bool {
	switch s {
	case SubjectAdvice, SubjectOrder, SubjectProduct, SubjectReturn, SubjectOther:
		return true
	}
	return false
}

// Message is a submitted contact form.
type Message struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone,omitempty"`
	Subject    Subject   `json:"subject"`
	Body       string    `json:"message"`
	ReceivedAt time.Time `json:"receivedAt"`
}

func (m Message) Validate() error {
	switch {
	case strings.TrimSpace(m.Name) == "":
		return fmt.Errorf("%w: name is required", ErrInvalidMessage)
	case strings.TrimSpace(m.Email) == "":
		return fmt.Errorf("%w: email is required", ErrInvalidMessage)
	case strings.TrimSpace(m.Body) == "":
		return fmt.Errorf("%w: message is required", ErrInvalidMessage)
	case !m.Subject.Valid():
		return fmt.Errorf("%w: unknown subject %q", ErrInvalidMessage, m.Subject)
	}
	if _, err := mail.ParseAddress(m.Email); err != nil {
		return fmt.Errorf("%w: email is not valid", ErrInvalidMessage)
	}
	return nil
}

// InMemoryRepository keeps submitted messages for the lifetime of the process.
type InMemoryRepository struct {
	mu       sync.RWMutex
	messages []Message
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{messages: make([]Message, 0)}
}

func (r *InMemoryRepository) Save(m Message) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.messages = append(r.messages, m)
}

func (r *InMemoryRepository) List() []Message {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Message, len(r.messages))
	copy(out, r.messages)
	return out
}

type Service struct {
	repo  *InMemoryRepository
	delay time.Duration
}

func NewService(repo *InMemoryRepository, delay time.Duration) *Service {
	return &Service{repo: repo, delay: delay}
}

// Submit validates m, waits the processing delay and stores it. Nothing is
// stored when ctx ends first.
func (s *Service) Submit(ctx context.Context, m Message) (Message, error) {
	if err := m.Validate(); err != nil {
		return Message{}, err
	}
	if s.delay > 0 {
		t := time.NewTimer(s.delay)
		defer t.Stop()
		select {
		case <-ctx.Done():
			return Message{}, ctx.Err()
		case <-t.C:
		}
	}
	m.ID = uuid.NewString()
	m.ReceivedAt = time.Now().UTC()
	s.repo.Save(m)
	log.Printf("[contact] message %s received (subject=%s)", m.ID, m.Subject)
	return m, nil
}
