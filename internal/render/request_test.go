package render

import (
	"net/url"
	"testing"
)

func TestRequest_TemplateDefaultsWhenAbsent(t *testing.T) {
	req := NewRequest(map[string]string{"q": "x"})
	if got := req.Template(); got != DefaultTemplate {
		t.Errorf("got %q, want %q", got, DefaultTemplate)
	}
}

func TestRequest_ExplicitEmptyTemplateIsPreserved(t *testing.T) {
	req := NewRequest(map[string]string{ParamTemplate: ""})
	if got := req.Template(); got != "" {
		t.Errorf("explicit empty template must not fall back, got %q", got)
	}
}

func TestRequest_WrapPresenceWithEmptyValue(t *testing.T) {
	req := NewRequest(map[string]string{ParamWrap: ""})
	if !req.Wrapped() {
		t.Error("empty wrap value must still enable wrap mode")
	}
	if req.WrapName() != "" {
		t.Errorf("got wrap name %q, want empty", req.WrapName())
	}

	absent := NewRequest(map[string]string{"q": "x"})
	if absent.Wrapped() {
		t.Error("absent wrap parameter must not enable wrap mode")
	}
}

func TestRequest_ContentTypeOverridePresence(t *testing.T) {
	req := NewRequest(map[string]string{ParamContentType: "text/plain"})
	ct, ok := req.ContentTypeOverride()
	if !ok || ct != "text/plain" {
		t.Errorf("got (%q, %v), want (text/plain, true)", ct, ok)
	}

	if _, ok := NewRequest(nil).ContentTypeOverride(); ok {
		t.Error("absent contentType must report ok=false")
	}
}

func TestFromQuery_FirstValueWins(t *testing.T) {
	q := url.Values{
		ParamTemplate: {"browse", "other"},
		ParamWrap:     {},
	}
	req := FromQuery(q)

	if got := req.Template(); got != "browse" {
		t.Errorf("got %q, want %q", got, "browse")
	}
	if !req.Wrapped() {
		t.Error("key with no values must still count as present")
	}
}
