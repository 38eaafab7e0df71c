package usecase

type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

func IsDomainError(err error) bool {
	_, ok := err.(*DomainError)
	return ok
}

type TechnicalError struct {
	Code    string
	Message string
}

func (e *TechnicalError) Error() string {
	return e.Message
}

func IsTechnicalError(err error) bool {
	_, ok := err.(*TechnicalError)
	return ok
}

// Códigos usados pelo pipeline de outreach
const (
	CodeValidationError      = "VALIDATION_ERROR"
	CodeLeadNotFound         = "LEAD_NOT_FOUND"
	CodeChannelNotRegistered = "CHANNEL_NOT_REGISTERED"
	CodeGenerationFailed     = "GENERATION_FAILED"
	CodeEnqueueFailed        = "ENQUEUE_FAILED"
	CodeDatabaseError        = "DATABASE_ERROR"
)
