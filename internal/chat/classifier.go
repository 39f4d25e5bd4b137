// Package chat classifies inbound assistant messages. A message resolves
// to exactly one outcome: an expense-logging command (amount + category)
// or an informational reply. Classification is deterministic: an ordered
// list of action patterns is tried first, then an ordered FAQ table, then
// a keyword fallback, then a static help reply. The first hit at each
// stage wins and later stages are never consulted once a stage decides.
package chat

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Intent is the classified intent of a chat message.
type Intent int

const (
	// IntentEmpty means the message was empty or whitespace.
	IntentEmpty Intent = iota
	// IntentAddExpense means an action pattern matched and extraction succeeded.
	IntentAddExpense
	// IntentInvalidAmount means an action pattern matched but the amount was
	// not a positive number. Per the first-match rule this does not fall
	// through to the FAQ stages.
	IntentInvalidAmount
	// IntentAnswer means an FAQ trigger matched.
	IntentAnswer
	// IntentHelp means nothing matched and the static help reply applies.
	IntentHelp
)

// Classification is the outcome of classifying one message.
type Classification struct {
	Intent   Intent
	Amount   int64  // minor units; set for IntentAddExpense
	Category string // lower-cased single token; set for IntentAddExpense
	Answer   string // set for IntentAnswer and IntentHelp
}

// actionPatterns are verb+amount+category patterns tried in priority
// order. The first pattern that matches wins, even if extraction then
// fails validation. The category capture is a single word: multi-word
// categories are not supported.
var actionPatterns = []*regexp.Regexp{
	regexp.MustCompile(`add\s+(\d+(?:\.\d{1,2})?)\s+(?:to|for)?\s*(\w+)`),
	regexp.MustCompile(`spent\s+(\d+(?:\.\d{1,2})?)\s+(?:on)?\s*(\w+)`),
	regexp.MustCompile(`paid\s+(\d+(?:\.\d{1,2})?)\s+(?:for)?\s*(\w+)`),
	regexp.MustCompile(`expense\s+(\d+(?:\.\d{1,2})?)\s+(?:to|on)?\s*(\w+)`),
}

// HelpReply is the stage-4 default reply listing example commands.
const HelpReply = `I'm the BudgetFlow assistant! I can help you with budgeting, finance, and manage your transactions.

Try asking:
- How do I create a budget?
- How can I reduce my expenses?
- Add 250 to groceries (to log a transaction)
- What is the 50/30/20 rule?

Or describe what you want to do, and I'll help!`

// minKeywordLen is the exclusive length threshold for stage-3 keywords.
const minKeywordLen = 3

// Classify maps one raw message to exactly one Classification.
func Classify(message string) Classification {
	msg := strings.ToLower(strings.TrimSpace(message))
	if msg == "" {
		return Classification{Intent: IntentEmpty}
	}

	// Stage 1: action patterns, first match wins.
	for _, pattern := range actionPatterns {
		match := pattern.FindStringSubmatch(msg)
		if match == nil {
			continue
		}

		amount, ok := parseAmount(match[1])
		if !ok {
			return Classification{Intent: IntentInvalidAmount}
		}

		category := strings.ToLower(strings.TrimSpace(match[2]))
		if category == "" {
			// Unreachable with the current patterns, but the contract is
			// explicit: a matched pattern never falls through to the FAQ.
			return Classification{Intent: IntentInvalidAmount}
		}

		return Classification{
			Intent:   IntentAddExpense,
			Amount:   amount,
			Category: category,
		}
	}

	// Stage 2: FAQ triggers in table order. A hit is the message containing
	// the trigger, or the trigger containing the message truncated to the
	// trigger's length (handles short queries that prefix a longer trigger).
	for _, entry := range faqTable {
		prefix := msg
		if len(prefix) > len(entry.trigger) {
			prefix = prefix[:len(entry.trigger)]
		}
		if strings.Contains(msg, entry.trigger) || strings.Contains(entry.trigger, prefix) {
			return Classification{Intent: IntentAnswer, Answer: entry.answer}
		}
	}

	// Stage 3: keyword fallback. Outer loop over message tokens in order,
	// inner loop over the table in insertion order.
	for _, keyword := range strings.Fields(msg) {
		if len(keyword) <= minKeywordLen {
			continue
		}
		for _, entry := range faqTable {
			if strings.Contains(entry.trigger, keyword) {
				return Classification{Intent: IntentAnswer, Answer: entry.answer}
			}
		}
	}

	// Stage 4: static help reply.
	return Classification{Intent: IntentHelp, Answer: HelpReply}
}

// parseAmount converts a matched amount string to minor units. The value
// must parse as a positive finite number.
func parseAmount(s string) (int64, bool) {
	amount, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(amount, 0) || math.IsNaN(amount) || amount <= 0 {
		return 0, false
	}
	return int64(math.Round(amount * 100)), true
}

// FormatAmount renders a minor-unit amount the way users typed it:
// "25000" becomes "250", "9950" becomes "99.5".
func FormatAmount(minor int64) string {
	return strconv.FormatFloat(float64(minor)/100, 'f', -1, 64)
}
