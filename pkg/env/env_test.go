package env

import "testing"

func TestGetTrimsAndFallsBack(t *testing.T) {
	t.Setenv("INSIGHTS_TEST_VALUE", "  demo \n")
	if got := Get("INSIGHTS_TEST_VALUE", "x"); got != "demo" {
		t.Fatalf("expected trimmed value, got %q", got)
	}
	t.Setenv("INSIGHTS_TEST_VALUE", "   ")
	if got := Get("INSIGHTS_TEST_VALUE", "x"); got != "x" {
		t.Fatalf("expected fallback for blank value, got %q", got)
	}
}

func TestFirst(t *testing.T) {
	t.Setenv("INSIGHTS_TEST_A", "")
	t.Setenv("INSIGHTS_TEST_B", "b")
	if got := First("none", "INSIGHTS_TEST_A", "INSIGHTS_TEST_B"); got != "b" {
		t.Fatalf("expected b, got %q", got)
	}
	if got := First("none", "INSIGHTS_TEST_A"); got != "none" {
		t.Fatalf("expected fallback, got %q", got)
	}
}
