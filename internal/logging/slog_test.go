package logging

import (
	"log/slog"
	"testing"
)

func TestAnonymizeEmail(t *testing.T) {
	tests := []struct {
		name  string
		email string
		want  string
	}{
		{
			name:  "empty email",
			email: "",
			want:  "",
		},
		{
			name:  "normal email",
			email: "a@example.com",
			want:  "", // checked for prefix and stability below
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AnonymizeEmail(tt.email)
			if tt.email == "" {
				if got != "" {
					t.Errorf("AnonymizeEmail(%q) = %q, want empty", tt.email, got)
				}
				return
			}
			if len(got) == 0 || got[:5] != "user:" {
				t.Errorf("AnonymizeEmail(%q) = %q, want user: prefix", tt.email, got)
			}
			if got == tt.email {
				t.Errorf("AnonymizeEmail must not return the raw address")
			}
		})
	}
}

func TestAnonymizeEmailIsStableAndDistinct(t *testing.T) {
	a1 := AnonymizeEmail("a@example.com")
	a2 := AnonymizeEmail("a@example.com")
	b := AnonymizeEmail("b@example.com")

	if a1 != a2 {
		t.Errorf("same address must hash to the same value: %q != %q", a1, a2)
	}
	if a1 == b {
		t.Errorf("different addresses must hash to different values")
	}
}

func TestErrNilIsOmittable(t *testing.T) {
	attr := Err(nil)
	if attr.Value.Kind() != slog.KindGroup {
		t.Errorf("Err(nil) should return an empty group, got kind %v", attr.Value.Kind())
	}
	if len(attr.Value.Group()) != 0 {
		t.Errorf("Err(nil) group should be empty")
	}
}

func TestErrWrapsMessage(t *testing.T) {
	attr := Err(errTest)
	if attr.Key != KeyError {
		t.Errorf("Err() key = %q, want %q", attr.Key, KeyError)
	}
	if attr.Value.String() != "boom" {
		t.Errorf("Err() value = %q, want %q", attr.Value.String(), "boom")
	}
}

type testErr string

func (e testErr) Error() string { return string(e) }

var errTest = testErr("boom")
