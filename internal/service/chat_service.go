package service

import (
	"context"
	"errors"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/phrazzld/gemini-studio/internal/config"
	"github.com/phrazzld/gemini-studio/internal/domain"
	"github.com/phrazzld/gemini-studio/internal/generation"
	"github.com/phrazzld/gemini-studio/internal/prompt"
)

// ChatSession is a snapshot of one conversation.
type ChatSession struct {
	ID        string               `json:"id"`
	CreatedAt time.Time            `json:"created_at"`
	Messages  []domain.ChatMessage `json:"messages"`
}

// ChatReply is the outcome of one SendMessage call.
type ChatReply struct {
	// Reply is the model message appended for this turn. It holds
	// domain.ChatApology when the gateway failed.
	Reply domain.ChatMessage `json:"reply"`
	// Messages is the full conversation after the turn.
	Messages []domain.ChatMessage `json:"messages"`
}

// ChatService provides chat playground operations
type ChatService interface {
	// CreateSession starts a conversation seeded with the greeting message
	CreateSession(ctx context.Context) (*ChatSession, error)

	// GetSession returns a snapshot of an existing conversation
	GetSession(ctx context.Context, id string) (*ChatSession, error)

	// SendMessage records text as a user turn, sends the whole conversation to
	// the model and records the reply. Gateway failures become an apology
	// message rather than an error.
	SendMessage(ctx context.Context, id, text string) (*ChatReply, error)
}

// session is the mutable state behind a ChatSession.
type session struct {
	mu        sync.Mutex
	id        string
	createdAt time.Time
	messages  []domain.ChatMessage
	inFlight  bool
}

func (s *session) lastTimestamp() int64 {
	if len(s.messages) == 0 {
		return 0
	}
	return s.messages[len(s.messages)-1].Timestamp
}

// append adds a message after the last one. Callers hold s.mu.
func (s *session) append(role domain.Role, content string) (domain.ChatMessage, error) {
	msg, err := domain.NewChatMessage(role, content, s.lastTimestamp())
	if err != nil {
		return domain.ChatMessage{}, err
	}
	s.messages = append(s.messages, msg)
	return msg, nil
}

// snapshot copies the session. Callers hold s.mu.
func (s *session) snapshot() *ChatSession {
	return &ChatSession{
		ID:        s.id,
		CreatedAt: s.createdAt,
		Messages:  slices.Clone(s.messages),
	}
}

// chatServiceImpl implements the ChatService interface
type chatServiceImpl struct {
	composer PromptComposer
	gateway  generation.Gateway
	logger   *slog.Logger
	sessions *expirable.LRU[string, *session]
}

// NewChatService creates a new ChatService backed by an in-memory session
// store bounded by cfg. Sessions past cfg.TTLMinutes since their last turn,
// or evicted to make room, are gone for good.
func NewChatService(
	composer PromptComposer,
	gateway generation.Gateway,
	logger *slog.Logger,
	cfg config.SessionConfig,
) (ChatService, error) {
	if composer == nil {
		return nil, &ServiceError{Operation: "create_service", Message: "composer cannot be nil"}
	}
	if gateway == nil {
		return nil, &ServiceError{Operation: "create_service", Message: "gateway cannot be nil"}
	}
	if logger == nil {
		return nil, &ServiceError{Operation: "create_service", Message: "logger cannot be nil"}
	}
	if cfg.MaxSessions <= 0 {
		return nil, &ServiceError{Operation: "create_service", Message: "max sessions must be positive"}
	}

	log := logger.With("component", "chat_service")
	onEvict := func(id string, _ *session) {
		log.Debug("chat session evicted", "session_id", id)
	}

	return &chatServiceImpl{
		composer: composer,
		gateway:  gateway,
		logger:   log,
		sessions: expirable.NewLRU[string, *session](cfg.MaxSessions, onEvict, time.Duration(cfg.TTLMinutes)*time.Minute),
	}, nil
}

// CreateSession implements ChatService.CreateSession
func (s *chatServiceImpl) CreateSession(ctx context.Context) (*ChatSession, error) {
	sess := &session{
		id:        uuid.NewString(),
		createdAt: time.Now().UTC(),
	}
	if _, err := sess.append(domain.RoleModel, domain.ChatGreeting); err != nil {
		return nil, NewServiceError("create_session", "failed to add greeting", err)
	}

	s.sessions.Add(sess.id, sess)
	s.logger.InfoContext(ctx, "chat session created",
		"session_id", sess.id,
		"active_sessions", s.sessions.Len())

	return sess.snapshot(), nil
}

// GetSession implements ChatService.GetSession
func (s *chatServiceImpl) GetSession(ctx context.Context, id string) (*ChatSession, error) {
	sess, ok := s.sessions.Get(id)
	if !ok {
		return nil, ErrSessionNotFound
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	return sess.snapshot(), nil
}

// SendMessage implements ChatService.SendMessage
func (s *chatServiceImpl) SendMessage(ctx context.Context, id, text string) (*ChatReply, error) {
	if strings.TrimSpace(text) == "" {
		return nil, prompt.ErrEmptyInput
	}

	sess, ok := s.sessions.Get(id)
	if !ok {
		return nil, ErrSessionNotFound
	}

	// Record the user turn and claim the session before dispatch.
	sess.mu.Lock()
	if sess.inFlight {
		sess.mu.Unlock()
		s.logger.WarnContext(ctx, "rejected message while a request is outstanding",
			"session_id", id)
		return nil, ErrRequestInFlight
	}
	history := slices.Clone(sess.messages)
	if _, err := sess.append(domain.RoleUser, text); err != nil {
		sess.mu.Unlock()
		return nil, NewServiceError("send_message", "failed to record user message", err)
	}
	sess.inFlight = true
	sess.mu.Unlock()

	contents := s.composer.ComposeChatRequest(history, text)
	replyText, err := s.gateway.SendChat(ctx, contents)
	if err != nil {
		level := slog.LevelError
		if errors.Is(err, generation.ErrConfiguration) {
			level = slog.LevelWarn
		}
		s.logger.Log(ctx, level, "chat request failed, replying with apology",
			"session_id", id,
			"error", err)
		replyText = domain.ChatApology
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	sess.inFlight = false

	reply, err := sess.append(domain.RoleModel, replyText)
	if err != nil {
		return nil, NewServiceError("send_message", "failed to record model message", err)
	}

	// Re-adding refreshes the expiry of a session that is still live.
	if _, live := s.sessions.Peek(id); live {
		s.sessions.Add(id, sess)
	}

	s.logger.InfoContext(ctx, "chat turn completed",
		"session_id", id,
		"message_count", len(sess.messages))

	return &ChatReply{
		Reply:    reply,
		Messages: slices.Clone(sess.messages),
	}, nil
}
