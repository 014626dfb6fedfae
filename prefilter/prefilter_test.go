package prefilter

import (
	"testing"

	"github.com/coregx/lexfsm/charset"
	"github.com/coregx/lexfsm/lexer"
	"github.com/coregx/lexfsm/matcher"
)

func mustRange(t *testing.T, lo, hi rune) *charset.CSet {
	t.Helper()
	cs, err := charset.NewRange(charset.CodePoint(lo), charset.CodePoint(hi))
	if err != nil {
		t.Fatalf("NewRange(%q, %q): %v", lo, hi, err)
	}
	return cs
}

func keywordLexer() *lexer.Lexer {
	l := lexer.New()
	l.Action(matcher.MatchStr("if"), "IF", 0, "", nil, nil)
	l.Action(matcher.MatchStr("while"), "WHILE", 0, "", nil, nil)
	l.Action(matcher.MatchStr("for"), "FOR", 0, "", nil, nil)
	return l
}

func TestBuildDetectsPureLiteralActions(t *testing.T) {
	l := keywordLexer()

	pf, ok := Build(l)
	if !ok {
		t.Fatal("expected Build to succeed with three literal keywords")
	}
	if len(pf.Literals()) != 3 {
		t.Fatalf("len(Literals()) = %d, want 3", len(pf.Literals()))
	}
}

func TestBuildSkipsNonLiteralActions(t *testing.T) {
	l := lexer.New()
	letters, err := matcher.MatchCSet(mustRange(t, 'a', 'z')).Repeat(matcher.Plus())
	if err != nil {
		t.Fatalf("Repeat: %v", err)
	}
	l.Action(letters, "IDENT", 1, "", nil, nil)
	l.Action(matcher.MatchStr("if"), "IF", 0, "", nil, nil)

	pf, ok := Build(l, WithMinLiterals(1))
	if !ok {
		t.Fatal("expected Build to succeed with the one literal action")
	}
	if len(pf.Literals()) != 1 {
		t.Fatalf("len(Literals()) = %d, want 1 (IDENT's repeat shape should be skipped)", len(pf.Literals()))
	}
	if string(pf.Literals()[0]) != "if" {
		t.Fatalf("Literals()[0] = %q, want \"if\"", pf.Literals()[0])
	}
}

func TestBuildRejectsBelowMinLiterals(t *testing.T) {
	l := lexer.New()
	l.Action(matcher.MatchStr("if"), "IF", 0, "", nil, nil)

	if _, ok := Build(l); ok {
		t.Fatal("expected Build to reject a single literal under the default minimum of 2")
	}
}

func TestFindLocatesLiteral(t *testing.T) {
	l := keywordLexer()
	pf, ok := Build(l)
	if !ok {
		t.Fatal("expected Build to succeed")
	}

	m := pf.Find([]byte("x = while (y)"), 0)
	if m == nil {
		t.Fatal("expected a match for \"while\"")
	}
	if got := string([]byte("x = while (y)")[m.Start:m.End]); got != "while" {
		t.Fatalf("matched text = %q, want \"while\"", got)
	}
}

func TestIsMatchFalseWhenNoLiteralPresent(t *testing.T) {
	l := keywordLexer()
	pf, ok := Build(l)
	if !ok {
		t.Fatal("expected Build to succeed")
	}
	if pf.IsMatch([]byte("xyz123")) {
		t.Error("expected no match in a haystack with none of the known literals")
	}
}
