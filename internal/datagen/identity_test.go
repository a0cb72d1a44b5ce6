package datagen

import (
	"regexp"
	"strings"
	"testing"
)

var hrStyle = EmailStyle{Domains: []string{"gmail.com"}}

func TestUniqueSet(t *testing.T) {
	s := NewUniqueSet()
	if !s.Add("a") {
		t.Error("First Add should succeed")
	}
	if s.Add("a") {
		t.Error("Second Add of same value should fail")
	}
	if !s.Contains("a") || s.Contains("b") {
		t.Error("Contains mismatch")
	}
	if s.Len() != 1 {
		t.Errorf("Len = %d, want 1", s.Len())
	}
}

func TestGenerateEmailFormatOrder(t *testing.T) {
	f := NewFakerWithSeed(3)
	used := NewUniqueSet()

	want := []string{
		"ahmed.hassan@gmail.com",
		"ahmedhassan@gmail.com",
		"ahmed_hassan@gmail.com",
		"ahassan@gmail.com",
		"ahmedh@gmail.com",
		"ahmed.hassan1@gmail.com",
		"ahmed.hassan2@gmail.com",
	}
	for i, w := range want {
		got := GenerateEmail(f, hrStyle, "Ahmed", "Hassan", used)
		if got != w {
			t.Errorf("call %d: got %s, want %s", i+1, got, w)
		}
	}
	if used.Len() != len(want) {
		t.Errorf("used set has %d entries, want %d", used.Len(), len(want))
	}
}

func TestGenerateEmailTokens(t *testing.T) {
	f := NewFaker()
	used := NewUniqueSet()

	got := GenerateEmail(f, hrStyle, "Abdel Rahman", "Abu el-Ela", used)
	if got != "abdel.elela@gmail.com" {
		t.Errorf("got %s", got)
	}
}

func TestGenerateEmailUnique(t *testing.T) {
	f := NewFakerWithSeed(11)
	used := NewUniqueSet()
	style := EmailStyle{
		Domains:   []string{"gmail.com", "yahoo.com"},
		Decorated: true,
		Shuffle:   true,
	}

	valid := regexp.MustCompile(`^[a-z0-9._]+@(gmail|yahoo)\.com$`)
	seen := make(map[string]bool)
	// A tiny name pool forces the fallback path many times.
	for i := 0; i < 500; i++ {
		first := Choose(f, []string{"Mona", "Sara"})
		last := Choose(f, []string{"Nassar", "Zaki"})
		email := GenerateEmail(f, style, first, last, used)
		if seen[email] {
			t.Fatalf("duplicate email %s", email)
		}
		if !valid.MatchString(email) {
			t.Fatalf("malformed email %s", email)
		}
		seen[email] = true
	}
}

func TestGenerateEmailDecoratedCandidates(t *testing.T) {
	f := NewFakerWithSeed(5)
	style := EmailStyle{Domains: []string{"aol.com"}, Decorated: true}

	used := NewUniqueSet()
	var got []string
	for i := 0; i < 6; i++ {
		got = append(got, GenerateEmail(f, style, "John", "Smith", used))
	}
	if got[0] != "john.smith@aol.com" || got[3] != "jsmith@aol.com" {
		t.Errorf("unexpected order: %v", got)
	}
	if !regexp.MustCompile(`^johnsmith\d{2}@aol\.com$`).MatchString(got[4]) {
		t.Errorf("expected two-digit decorated candidate, got %s", got[4])
	}
	for _, e := range got {
		if strings.HasPrefix(e, "johns@") {
			t.Errorf("decorated style should not use first+initial: %s", e)
		}
	}
}

func TestGeneratePolicyNumber(t *testing.T) {
	f := NewFakerWithSeed(8)
	used := NewUniqueSet()
	format := regexp.MustCompile(`^(POL|INS|COV|PRM)-\d{7}$`)

	for i := 0; i < 2000; i++ {
		n := GeneratePolicyNumber(f, used)
		if !format.MatchString(n) {
			t.Fatalf("malformed policy number %s", n)
		}
	}
	if used.Len() != 2000 {
		t.Errorf("expected 2000 distinct numbers, got %d", used.Len())
	}
}
