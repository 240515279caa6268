package services

import (
	"testing"

	"github.com/google/uuid"
)

func TestClampPage(t *testing.T) {
	// 10 venues, page size 4: pages 1-3, last page holds 2 items.
	page, totalPages := clampPage(1, 10, 4)
	if page != 1 || totalPages != 3 {
		t.Errorf("clampPage(1, 10, 4) = (%d, %d), want (1, 3)", page, totalPages)
	}

	page, _ = clampPage(3, 10, 4)
	if page != 3 {
		t.Errorf("clampPage(3, 10, 4) = %d, want 3", page)
	}

	page, _ = clampPage(99, 10, 4)
	if page != 3 {
		t.Errorf("clampPage(99, 10, 4) = %d, want 3", page)
	}

	page, _ = clampPage(0, 10, 4)
	if page != 1 {
		t.Errorf("clampPage(0, 10, 4) = %d, want 1", page)
	}

	page, totalPages = clampPage(5, 0, 4)
	if page != 1 || totalPages != 1 {
		t.Errorf("clampPage(5, 0, 4) = (%d, %d), want (1, 1)", page, totalPages)
	}
}

func TestResolveManager(t *testing.T) {
	acting := uuid.New()
	submitted := uuid.New()

	if got := resolveManager(submitted, acting, false); got != acting {
		t.Errorf("non-privileged caller kept submitted manager %v", got)
	}
	if got := resolveManager(submitted, acting, true); got != submitted {
		t.Errorf("privileged caller lost submitted manager, got %v", got)
	}
	if got := resolveManager(uuid.Nil, acting, true); got != acting {
		t.Errorf("privileged caller with no submission should fall back to acting user, got %v", got)
	}
}
