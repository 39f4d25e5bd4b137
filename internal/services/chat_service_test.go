package services

import (
	"strings"
	"testing"

	"budgetflow/internal/models"
	"budgetflow/internal/testutil"
)

func TestHandleMessage(t *testing.T) {
	t.Run("action_persists_expense", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewChatService(newTestTransactionService(db))
		user := testutil.CreateTestUser(t, db)

		reply, err := svc.HandleMessage(user.ID, "add 250 to groceries")
		testutil.AssertNoError(t, err)

		if !reply.TransactionAdded {
			t.Fatal("expected TransactionAdded to be true")
		}
		if !strings.Contains(reply.Reply, "250") || !strings.Contains(reply.Reply, "groceries") {
			t.Errorf("expected confirmation mentioning amount and category, got %q", reply.Reply)
		}

		var tx models.Transaction
		err = db.Where("user_id = ?", user.ID).First(&tx).Error
		testutil.AssertNoError(t, err)
		if tx.Amount != 25000 {
			t.Errorf("expected amount 25000 minor units, got %d", tx.Amount)
		}
		if tx.Type != models.TransactionTypeExpense {
			t.Errorf("expected expense, got %s", tx.Type)
		}
		if tx.Category != "groceries" {
			t.Errorf("expected category groceries, got %q", tx.Category)
		}
		if tx.GroupID != nil {
			t.Error("expected chat expense to be personal")
		}
	})

	t.Run("invalid_amount_does_not_persist", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewChatService(newTestTransactionService(db))
		user := testutil.CreateTestUser(t, db)

		reply, err := svc.HandleMessage(user.ID, "spent 0 on rent")
		testutil.AssertNoError(t, err)

		if reply.TransactionAdded {
			t.Error("expected no transaction for zero amount")
		}
		if !strings.Contains(reply.Reply, "valid amount") {
			t.Errorf("expected amount validation reply, got %q", reply.Reply)
		}

		var count int64
		db.Model(&models.Transaction{}).Where("user_id = ?", user.ID).Count(&count)
		if count != 0 {
			t.Errorf("expected 0 transactions, got %d", count)
		}
	})

	t.Run("faq_reply_does_not_persist", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewChatService(newTestTransactionService(db))
		user := testutil.CreateTestUser(t, db)

		reply, err := svc.HandleMessage(user.ID, "how do i create a budget")
		testutil.AssertNoError(t, err)

		if reply.TransactionAdded {
			t.Error("expected no transaction for FAQ question")
		}
		if !strings.HasPrefix(reply.Reply, "List your sources of income") {
			t.Errorf("unexpected FAQ answer: %q", reply.Reply)
		}

		var count int64
		db.Model(&models.Transaction{}).Where("user_id = ?", user.ID).Count(&count)
		if count != 0 {
			t.Errorf("expected 0 transactions, got %d", count)
		}
	})

	t.Run("unknown_message_gets_help", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewChatService(newTestTransactionService(db))
		user := testutil.CreateTestUser(t, db)

		reply, err := svc.HandleMessage(user.ID, "xyzzyx plughqq")
		testutil.AssertNoError(t, err)

		if reply.TransactionAdded {
			t.Error("expected no transaction for unknown message")
		}
		if !strings.Contains(reply.Reply, "Try asking") {
			t.Errorf("expected the help reply, got %q", reply.Reply)
		}
	})

	t.Run("empty_message", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewChatService(newTestTransactionService(db))
		user := testutil.CreateTestUser(t, db)

		reply, err := svc.HandleMessage(user.ID, "   ")
		testutil.AssertNoError(t, err)

		if reply.TransactionAdded {
			t.Error("expected no transaction for empty message")
		}
		if reply.Reply != "Please provide a valid message." {
			t.Errorf("expected validation reply, got %q", reply.Reply)
		}
	})
}
