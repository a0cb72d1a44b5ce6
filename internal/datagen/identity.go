package datagen

import (
	"fmt"
	"strings"
	"unicode"
)

// UniqueSet tracks values already handed out within a run. It is owned by
// whoever drives generation and passed to each identity call.
type UniqueSet struct {
	seen map[string]struct{}
}

// NewUniqueSet creates an empty set.
func NewUniqueSet() *UniqueSet {
	return &UniqueSet{seen: make(map[string]struct{})}
}

// Add inserts v and reports whether it was absent.
func (s *UniqueSet) Add(v string) bool {
	if _, ok := s.seen[v]; ok {
		return false
	}
	s.seen[v] = struct{}{}
	return true
}

// Contains reports whether v was already added.
func (s *UniqueSet) Contains(v string) bool {
	_, ok := s.seen[v]
	return ok
}

// Len returns the number of values in the set.
func (s *UniqueSet) Len() int {
	return len(s.seen)
}

// EmailStyle controls how GenerateEmail composes addresses.
type EmailStyle struct {
	// Domains is the pool a single domain is drawn from per call.
	Domains []string

	// Decorated adds the numbered candidates first.last<1-999> and
	// firstlast<10-99>, and drops the first-plus-last-initial form.
	Decorated bool

	// Shuffle randomizes the candidate order per call.
	Shuffle bool
}

// GenerateEmail returns an address not yet in used and records it there.
// Candidates are tried in order against one domain; when all collide, an
// increasing suffix is appended to first.last until a free one is found.
func GenerateEmail(f *Faker, style EmailStyle, first, last string, used *UniqueSet) string {
	first = emailPart(firstToken(first))
	last = emailPart(lastToken(last))
	if first == "" {
		first = "user"
	}
	if last == "" {
		last = "mail"
	}

	candidates := []string{
		first + "." + last,
		first + last,
		first + "_" + last,
		first[:1] + last,
	}
	if style.Decorated {
		candidates = append(candidates,
			fmt.Sprintf("%s%s%d", first, last, f.Int(10, 99)),
			fmt.Sprintf("%s.%s%d", first, last, f.Int(1, 999)),
		)
	} else {
		candidates = append(candidates, first+last[:1])
	}
	if style.Shuffle {
		Shuffle(f, candidates)
	}

	domain := Choose(f, style.Domains)
	for _, base := range candidates {
		email := base + "@" + domain
		if used.Add(email) {
			return email
		}
	}

	for n := 1; ; n++ {
		email := fmt.Sprintf("%s.%s%d@%s", first, last, n, domain)
		if used.Add(email) {
			return email
		}
	}
}

// PolicyNumberPrefixes are the prefixes used by GeneratePolicyNumber.
var PolicyNumberPrefixes = []string{"POL", "INS", "COV", "PRM"}

// GeneratePolicyNumber returns an unused number such as POL-4821937,
// redrawing on collision.
func GeneratePolicyNumber(f *Faker, used *UniqueSet) string {
	for {
		number := fmt.Sprintf("%s-%d", Choose(f, PolicyNumberPrefixes), f.Int(1000000, 9999999))
		if used.Add(number) {
			return number
		}
	}
}

func firstToken(s string) string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

func lastToken(s string) string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return ""
	}
	return fields[len(fields)-1]
}

// emailPart lower-cases s and keeps only ASCII letters and digits.
func emailPart(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		if r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
