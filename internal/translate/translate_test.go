package translate

import (
	"context"
	"errors"
	"reflect"
	"testing"
)

type stubTranslator struct {
	prefix string
	failOn string
	calls  int
}

func (s *stubTranslator) Translate(_ context.Context, text, _ string) (string, error) {
	s.calls++
	if text == s.failOn {
		return "", errors.New("service unavailable")
	}
	return s.prefix + text, nil
}

func TestDocument_TranslatesEachParagraph(t *testing.T) {
	tr := &stubTranslator{prefix: "it:"}
	got := Document(context.Background(), tr, []string{"one", "two"}, "it")
	want := []string{"it:one", "it:two"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v want %v", got, want)
	}
}

func TestDocument_FailedParagraphKeepsOriginal(t *testing.T) {
	tr := &stubTranslator{prefix: "it:", failOn: "two"}
	got := Document(context.Background(), tr, []string{"one", "two", "three"}, "it")
	want := []string{"it:one", "two", "it:three"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v want %v", got, want)
	}
}

func TestDocument_BlankParagraphsPreservedWithoutCall(t *testing.T) {
	tr := &stubTranslator{prefix: "it:"}
	got := Document(context.Background(), tr, []string{"one", "", "  ", "two"}, "it")
	if got[1] != "" || got[2] != "  " {
		t.Fatalf("blanks not preserved: %v", got)
	}
	if tr.calls != 2 {
		t.Fatalf("blank paragraphs were sent to the service: %d calls", tr.calls)
	}
}

func TestParseTarget(t *testing.T) {
	got, err := ParseTarget(" it ")
	if err != nil || got != "it" {
		t.Fatalf("got %q err %v", got, err)
	}
	if _, err := ParseTarget("definitely-not-a-language-tag"); err == nil {
		t.Fatalf("expected error for bogus tag")
	}
}

func TestService_Unconfigured(t *testing.T) {
	var s *Service
	if _, err := s.Translate(context.Background(), "x", "it"); err == nil {
		t.Fatalf("expected error from unconfigured service")
	}
}
