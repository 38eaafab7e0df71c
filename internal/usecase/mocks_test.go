package usecase

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/xavierca1/salespad-outreach/internal/entity"
)

// fakeMessageRepo simula o save atômico: devolve as mensagens recebidas
// como salvas e um evento derivado com id fixo, guardando os inputs para
// as asserções
type fakeMessageRepo struct {
	saveInput  *entity.SaveMessagesSentInput
	saveErr    error
	replyInput *entity.SaveMessageSentToReplyInput
	replyErr   error
	previous   []entity.Message
	getErr     error
}

func (f *fakeMessageRepo) SaveMessagesSent(ctx context.Context, input entity.SaveMessagesSentInput) ([]entity.SavedMessage, *entity.LeadMessagesSentEvent, error) {
	f.saveInput = &input
	if f.saveErr != nil {
		return nil, nil, f.saveErr
	}

	saved := make([]entity.SavedMessage, 0, len(input.Messages))
	ids := make([]string, 0, len(input.Messages))
	for _, m := range input.Messages {
		saved = append(saved, entity.SavedMessage{ID: m.ID, LeadID: input.LeadID, Message: m})
		ids = append(ids, m.ID)
	}

	event := &entity.LeadMessagesSentEvent{
		ID:             "derived-1",
		LeadID:         input.LeadID,
		CorrelationIDs: input.CorrelationIDs,
		Payload:        entity.LeadMessagesSentPayload{LeadID: input.LeadID, MessageIDs: ids},
		CreatedAt:      time.Now(),
	}
	return saved, event, nil
}

func (f *fakeMessageRepo) SaveMessageSentToReply(ctx context.Context, input entity.SaveMessageSentToReplyInput) (*entity.SavedMessage, *entity.MessageSentToReplyEvent, error) {
	f.replyInput = &input
	if f.replyErr != nil {
		return nil, nil, f.replyErr
	}

	saved := &entity.SavedMessage{ID: input.Message.ID, LeadID: input.LeadID, Message: *input.Message}
	event := &entity.MessageSentToReplyEvent{
		ID:             "derived-2",
		LeadID:         input.LeadID,
		CorrelationIDs: input.CorrelationIDs,
		Payload: entity.MessageSentToReplyPayload{
			LeadID:           input.LeadID,
			MessageID:        input.Message.ID,
			ReplyToMessageID: input.ReplyToMessageID,
		},
		CreatedAt: time.Now(),
	}
	return saved, event, nil
}

func (f *fakeMessageRepo) GetMessagesForLead(ctx context.Context, leadID string) ([]entity.Message, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.previous, nil
}

// MockLeadRepository
type MockLeadRepository struct {
	mock.Mock
}

func (m *MockLeadRepository) AddLead(ctx context.Context, input entity.AddLeadInput) (*entity.Lead, *entity.LeadAddedEvent, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*entity.Lead), args.Get(1).(*entity.LeadAddedEvent), args.Error(2)
}

func (m *MockLeadRepository) ReplyToLead(ctx context.Context, input entity.ReplyToLeadInput) (*entity.Lead, *entity.LeadRepliedEvent, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*entity.Lead), args.Get(1).(*entity.LeadRepliedEvent), args.Error(2)
}

func (m *MockLeadRepository) FindByID(ctx context.Context, id string) (*entity.Lead, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Lead), args.Error(1)
}

func (m *MockLeadRepository) GetEventsForLead(ctx context.Context, leadID string) ([]entity.AuditEvent, error) {
	args := m.Called(ctx, leadID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.AuditEvent), args.Error(1)
}

// MockCommandBus
type MockCommandBus struct {
	mock.Mock
}

func (m *MockCommandBus) Send(ctx context.Context, command *entity.Command) error {
	args := m.Called(ctx, command)
	return args.Error(0)
}

// fakeGenerator permite montar estratégias de teste por canal
type fakeGenerator struct {
	channel  entity.Channel
	newLead  func(event *entity.LeadAddedEvent) (entity.ChannelMessage, error)
	forReply func(event *entity.LeadRepliedEvent, previous []entity.Message) (entity.ChannelMessage, error)
}

func (g *fakeGenerator) Channel() entity.Channel { return g.channel }

func (g *fakeGenerator) GenerateForNewLead(ctx context.Context, event *entity.LeadAddedEvent) (entity.ChannelMessage, error) {
	return g.newLead(event)
}

func (g *fakeGenerator) GenerateForReply(ctx context.Context, event *entity.LeadRepliedEvent, previous []entity.Message) (entity.ChannelMessage, error) {
	return g.forReply(event, previous)
}
