package services

import (
	"fmt"
	"time"

	"budgetflow/internal/chat"
	"budgetflow/internal/logger"
	"budgetflow/internal/models"
)

// chatService routes chat messages through the classifier and persists
// expenses for action messages.
type chatService struct {
	transactionService TransactionServicer
}

// NewChatService creates a new ChatServicer.
func NewChatService(transactionService TransactionServicer) ChatServicer {
	return &chatService{transactionService: transactionService}
}

// HandleMessage classifies one message and produces the assistant's
// reply. Only a successfully persisted expense sets TransactionAdded;
// every other outcome, including a storage failure after a matched
// action, is a plain reply.
func (s *chatService) HandleMessage(userID uint, message string) (*ChatReply, error) {
	c := chat.Classify(message)

	switch c.Intent {
	case chat.IntentEmpty:
		return &ChatReply{Reply: "Please provide a valid message."}, nil

	case chat.IntentInvalidAmount:
		return &ChatReply{Reply: "Please provide a valid amount greater than 0."}, nil

	case chat.IntentAddExpense:
		description := fmt.Sprintf("Added via chat: %s", c.Category)
		_, err := s.transactionService.CreateTransaction(
			userID, nil, models.TransactionTypeExpense,
			c.Amount, c.Category, description, time.Now(),
		)
		if err != nil {
			logger.Get().Errorw("chat transaction failed", "error", err, "user_id", userID)
			return &ChatReply{
				Reply: fmt.Sprintf("Sorry, I couldn't save that transaction: %s", err.Error()),
			}, nil
		}
		return &ChatReply{
			Reply: fmt.Sprintf("Perfect! Added %s to %s. Your budget has been updated!",
				chat.FormatAmount(c.Amount), c.Category),
			TransactionAdded: true,
		}, nil

	default:
		// IntentAnswer and IntentHelp both carry their reply text.
		return &ChatReply{Reply: c.Answer}, nil
	}
}
