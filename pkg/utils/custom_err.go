package utils

import "errors"

var (
	ErrInvalidInput           = errors.New("invalid input")
	ErrEmptyPrompt            = errors.New("prompt is empty")
	ErrPromptTooLong          = errors.New("prompt is too long")
	ErrPlanNotFound           = errors.New("plan not found")
	ErrUnexpectedBehaviorOfAI = errors.New("unexpected behavior of AI")
	ErrNoJSONObject           = errors.New("no JSON object in response")
	ErrProviderDisabled       = errors.New("text generation provider disabled")
)
