package city

import "testing"

func TestResolveAlias(t *testing.T) {
	got := Resolve("what is the gold rate in lhr today?")
	if got != "Lahore" {
		t.Fatalf("expected Lahore, got %s", got)
	}
}

func TestResolveNoMatch(t *testing.T) {
	got := Resolve("what is the gold rate today?")
	if got != Default {
		t.Fatalf("expected %s, got %s", Default, got)
	}
}

func TestResolveFirstMatchWins(t *testing.T) {
	// Karachi precedes Lahore in the table, so it wins regardless of the
	// order the cities appear in the message.
	got := Resolve("compare lahore and karachi rates")
	if got != "Karachi" {
		t.Fatalf("expected Karachi, got %s", got)
	}
}

func TestResolveIsCaseInsensitive(t *testing.T) {
	got := Resolve("Gold price in ISLAMABAD please")
	if got != "Islamabad" {
		t.Fatalf("expected Islamabad, got %s", got)
	}
}
