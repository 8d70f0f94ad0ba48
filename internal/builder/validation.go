package builder

import (
	"errors"

	"github.com/go-playground/validator/v10"

	"squote/internal/domain"
)

// Event fields in the order their messages are reported.
var eventRules = []struct {
	field   string
	message string
}{
	{"ClientName", "Client name is required"},
	{"EventName", "Event name is required"},
	{"Venue", "Venue is required"},
	{"GuestCount", "Guest count must be greater than 0"},
}

const noItemsMessage = "At least one item must be selected"

// ValidationErrors lists what keeps the quote from being saved. An empty
// result means the quote is valid.
func (b *Builder) ValidationErrors() []string {
	failed := map[string]bool{}
	if err := domain.Validator().Struct(b.quote.Event); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			for _, fe := range fieldErrs {
				failed[fe.StructField()] = true
			}
		}
	}

	messages := []string{}
	for _, rule := range eventRules {
		if failed[rule.field] {
			messages = append(messages, rule.message)
		}
	}
	if len(b.quote.SelectedItems()) == 0 {
		messages = append(messages, noItemsMessage)
	}
	return messages
}

func (b *Builder) IsQuoteValid() bool {
	return len(b.ValidationErrors()) == 0
}
