package handlers

import (
	"strings"
	"testing"
)

func TestCategoryInputValidate(t *testing.T) {
	tests := []struct {
		name   string
		in     categoryInput
		fields []string
	}{
		{"valid", categoryInput{Name: "Go"}, nil},
		{"missing name", categoryInput{}, []string{"name"}},
		{"blank name", categoryInput{Name: "   "}, []string{"name"}},
		{"name too long", categoryInput{Name: strings.Repeat("x", 256)}, []string{"name"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fe := tt.in.validate()
			if len(tt.fields) == 0 && len(fe) != 0 {
				t.Fatalf("expected no violations, got %v", fe)
			}
			for _, f := range tt.fields {
				if len(fe[f]) == 0 {
					t.Errorf("expected a violation for %s, got %v", f, fe)
				}
			}
		})
	}
}

func TestPostInputValidateCollectsAllViolations(t *testing.T) {
	in := postInput{Title: "", Content: ""}
	fe := in.validate()

	if len(fe["title"]) == 0 {
		t.Errorf("expected a violation for title, got %v", fe)
	}
	if len(fe["content"]) == 0 {
		t.Errorf("expected a violation for content, got %v", fe)
	}
}

func TestCommentInputValidate(t *testing.T) {
	in := commentInput{Post: "not-a-uuid", Content: "hi", Author: ""}
	fe := in.validate()

	if len(fe["post"]) == 0 {
		t.Errorf("expected a violation for post, got %v", fe)
	}
	if len(fe["author"]) == 0 {
		t.Errorf("expected a violation for author, got %v", fe)
	}
	if len(fe["content"]) != 0 {
		t.Errorf("unexpected violation for content: %v", fe)
	}
}

func TestRegisterInputValidate(t *testing.T) {
	in := registerInput{Username: "", Password: ""}
	fe := in.validate()

	if len(fe["username"]) == 0 || len(fe["password"]) == 0 {
		t.Errorf("expected violations for username and password, got %v", fe)
	}

	ok := registerInput{Username: "test1", Password: "test1"}
	if fe := ok.validate(); len(fe) != 0 {
		t.Errorf("expected no violations, got %v", fe)
	}
}
