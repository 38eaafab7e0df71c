package entity

// Chaves usadas na cadeia de correlação
const (
	CorrelationRequestID   = "requestId"
	CorrelationEventID     = "eventId"
	CorrelationTriggeredBy = "triggeredByEventId"
	CorrelationLeadID      = "leadId"
	CorrelationReplyID     = "replyId"
)

// CorrelationIDs é a cadeia causal que liga eventos e comandos derivados.
// Nunca é mutada: cada derivação copia o mapa do pai e acrescenta a sua
// própria chave via With.
type CorrelationIDs map[string]string

func (c CorrelationIDs) With(key, value string) CorrelationIDs {
	next := make(CorrelationIDs, len(c)+1)
	for k, v := range c {
		next[k] = v
	}
	next[key] = value
	return next
}

func (c CorrelationIDs) Clone() CorrelationIDs {
	next := make(CorrelationIDs, len(c))
	for k, v := range c {
		next[k] = v
	}
	return next
}
