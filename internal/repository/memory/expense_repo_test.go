package memory

import (
	"testing"
	"time"

	"github.com/Vivek15911/spend-canvas-flow/internal/domain"
	"github.com/shopspring/decimal"
)

func newExpense(category domain.Category, name string, amount string, at time.Time) *domain.Expense {
	return &domain.Expense{
		Category:  category,
		Name:      name,
		Amount:    decimal.RequireFromString(amount),
		CreatedAt: at,
	}
}

func TestAddOrMerge_AssignsIDAndPrepends(t *testing.T) {
	repo := NewExpenseRepository()
	now := time.Date(2026, time.May, 1, 12, 0, 0, 0, time.UTC)

	first, merged := repo.AddOrMerge(newExpense(domain.CategoryFoodDining, "Coffee", "5.50", now))
	if merged {
		t.Fatal("Expected first add not to merge")
	}
	if first.ID == "" {
		t.Error("Expected an id to be assigned")
	}

	second, merged := repo.AddOrMerge(newExpense(domain.CategoryTransportation, "Gas", "40.00", now.Add(time.Hour)))
	if merged {
		t.Fatal("Expected distinct key not to merge")
	}
	if second.ID == first.ID {
		t.Error("Expected distinct records to have distinct ids")
	}

	all := repo.GetAll()
	if len(all) != 2 {
		t.Fatalf("Expected 2 records, got %d", len(all))
	}
	if all[0].Name != "Gas" || all[1].Name != "Coffee" {
		t.Errorf("Expected newest-first order [Gas, Coffee], got [%s, %s]", all[0].Name, all[1].Name)
	}
}

func TestAddOrMerge_MergesSameCategoryAndName(t *testing.T) {
	repo := NewExpenseRepository()
	first := time.Date(2026, time.May, 1, 12, 0, 0, 0, time.UTC)
	second := first.Add(48 * time.Hour)

	created, _ := repo.AddOrMerge(newExpense(domain.CategoryFoodDining, "Coffee", "5.50", first))

	updated, merged := repo.AddOrMerge(newExpense(domain.CategoryFoodDining, "Coffee", "2.00", second))
	if !merged {
		t.Fatal("Expected same category+name to merge")
	}
	if updated.ID != created.ID {
		t.Errorf("Expected merge to keep id %s, got %s", created.ID, updated.ID)
	}
	if updated.Amount.StringFixed(2) != "7.50" {
		t.Errorf("Expected merged amount 7.50, got %s", updated.Amount.StringFixed(2))
	}
	if !updated.CreatedAt.Equal(second) {
		t.Errorf("Expected merge to restamp createdAt to %v, got %v", second, updated.CreatedAt)
	}
	if repo.Count() != 1 {
		t.Errorf("Expected 1 record after merge, got %d", repo.Count())
	}
}

func TestAddOrMerge_IsCaseSensitive(t *testing.T) {
	repo := NewExpenseRepository()
	now := time.Now()

	repo.AddOrMerge(newExpense(domain.CategoryFoodDining, "Coffee", "5.50", now))
	_, merged := repo.AddOrMerge(newExpense(domain.CategoryFoodDining, "coffee", "2.00", now))

	if merged {
		t.Error("Expected case-sensitive match: 'coffee' must not merge into 'Coffee'")
	}
	if repo.Count() != 2 {
		t.Errorf("Expected 2 records, got %d", repo.Count())
	}
}

func TestAddOrMerge_MergeKeepsPosition(t *testing.T) {
	repo := NewExpenseRepository()
	now := time.Date(2026, time.May, 1, 12, 0, 0, 0, time.UTC)

	repo.AddOrMerge(newExpense(domain.CategoryFoodDining, "Coffee", "5.50", now))
	repo.AddOrMerge(newExpense(domain.CategoryTransportation, "Gas", "40.00", now.Add(time.Minute)))

	// Merging into Coffee must not move it back to the front
	repo.AddOrMerge(newExpense(domain.CategoryFoodDining, "Coffee", "2.00", now.Add(2*time.Minute)))

	all := repo.GetAll()
	if all[0].Name != "Gas" {
		t.Errorf("Expected Gas to stay first after merge, got %s", all[0].Name)
	}
}

func TestDelete_RemovesRecord(t *testing.T) {
	repo := NewExpenseRepository()
	created, _ := repo.AddOrMerge(newExpense(domain.CategoryShopping, "Shoes", "80.00", time.Now()))

	if !repo.Delete(created.ID) {
		t.Error("Expected delete of existing id to report removal")
	}
	if repo.Count() != 0 {
		t.Errorf("Expected empty repository, got %d records", repo.Count())
	}
}

func TestDelete_MissingIDIsNoOp(t *testing.T) {
	repo := NewExpenseRepository()
	created, _ := repo.AddOrMerge(newExpense(domain.CategoryShopping, "Shoes", "80.00", time.Now()))

	if repo.Delete("no-such-id") {
		t.Error("Expected delete of unknown id to report nothing removed")
	}

	repo.Delete(created.ID)
	if repo.Delete(created.ID) {
		t.Error("Expected second delete of same id to be a no-op")
	}
	if repo.Count() != 0 {
		t.Errorf("Expected empty repository, got %d records", repo.Count())
	}
}

func TestGetAll_SnapshotIsIsolated(t *testing.T) {
	repo := NewExpenseRepository()
	now := time.Now()
	repo.AddOrMerge(newExpense(domain.CategoryFoodDining, "Coffee", "5.50", now))

	snapshot := repo.GetAll()

	// Mutate after taking the snapshot
	repo.AddOrMerge(newExpense(domain.CategoryFoodDining, "Coffee", "2.00", now.Add(time.Hour)))

	if len(snapshot) != 1 {
		t.Fatalf("Expected snapshot of 1 record, got %d", len(snapshot))
	}
	if snapshot[0].Amount.StringFixed(2) != "5.50" {
		t.Errorf("Expected snapshot amount to stay 5.50, got %s", snapshot[0].Amount.StringFixed(2))
	}
}
