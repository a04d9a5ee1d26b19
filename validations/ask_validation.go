package validations

import (
	"context"
	"errors"
	"regexp"
	"strings"

	domainAsk "github.com/AzielCF/az-medqa/domains/ask"
	pkgError "github.com/AzielCF/az-medqa/pkg/error"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const (
	MinLengthMessage      = "Please enter a complete question (minimum 3 characters)"
	PersonalAdviceMessage = "This service answers general exam-prep questions only and cannot give personal medical advice. Please consult a healthcare professional."
)

// personalAdvicePatterns flag questions asking for personal diagnosis,
// treatment or dosing. Matching any of them rejects the request before a
// cache lookup or provider call is made.
var personalAdvicePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\bmy\s+(symptom|symptoms|pain|condition|diagnosis|chest|head|headache|fever|cough|rash)\b`),
	regexp.MustCompile(`(?i)\bshould\s+i\s+take\b`),
	regexp.MustCompile(`(?i)\bwhat\s+dose\b`),
	regexp.MustCompile(`(?i)\bprescribe\b`),
	regexp.MustCompile(`(?i)\bdiagnose\s+me\b`),
	regexp.MustCompile(`(?i)\btreat\s+my\b`),
	regexp.MustCompile(`(?i)\bam\s+i\s+having\b`),
	regexp.MustCompile(`(?i)\bis\s+this\s+serious\b`),
	regexp.MustCompile(`(?i)\bhelp\s+me\b`),
}

// ValidateAskQuestion accepts a raw question and returns the trimmed text,
// or a ValidationError describing why it was rejected. Pure function of the
// input; it is the cheapest rejection point so it runs before any cache or
// network work.
func ValidateAskQuestion(ctx context.Context, request domainAsk.AskRequest) (string, error) {
	question := strings.TrimSpace(request.Question)

	err := validation.ValidateWithContext(ctx, question,
		validation.Required.Error(MinLengthMessage),
		validation.RuneLength(3, 0).Error(MinLengthMessage),
		validation.By(noPersonalAdvice),
	)
	if err != nil {
		return "", pkgError.ValidationError(err.Error())
	}

	return question, nil
}

func noPersonalAdvice(value interface{}) error {
	question, _ := value.(string)
	for _, pattern := range personalAdvicePatterns {
		if pattern.MatchString(question) {
			return errors.New(PersonalAdviceMessage)
		}
	}
	return nil
}
