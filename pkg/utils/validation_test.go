package utils

import "testing"

type sampleRequest struct {
	Email string `validate:"required,email"`
	Date  string `validate:"omitempty,datetime=2006-01-02"`
	Kind  string `validate:"required,oneof=unread read ignored"`
}

func TestValidateStructPasses(t *testing.T) {
	errs := ValidateStruct(sampleRequest{
		Email: "jane@example.com",
		Date:  "2026-03-01",
		Kind:  "read",
	})
	if errs != nil {
		t.Fatalf("expected no errors, got %v", errs)
	}
}

func TestValidateStructReportsFields(t *testing.T) {
	errs := ValidateStruct(sampleRequest{
		Email: "not-an-email",
		Date:  "03/01/2026",
		Kind:  "archived",
	})
	if len(errs) != 3 {
		t.Fatalf("expected 3 field errors, got %v", errs)
	}
	if errs["Email"] != "Invalid email format" {
		t.Fatalf("unexpected email message: %s", errs["Email"])
	}
	if errs["Date"] != "Must match the 2006-01-02 format" {
		t.Fatalf("unexpected date message: %s", errs["Date"])
	}
}

func TestParseInt(t *testing.T) {
	tests := []struct {
		value        string
		defaultValue int
		want         int
	}{
		{"", 10, 10},
		{"25", 10, 25},
		{"abc", 10, 10},
		{"0", 10, 10},
		{"-5", 10, 10},
	}

	for _, tt := range tests {
		if got := ParseInt(tt.value, tt.defaultValue); got != tt.want {
			t.Fatalf("ParseInt(%q, %d) = %d, want %d", tt.value, tt.defaultValue, got, tt.want)
		}
	}
}

func TestCalculateTotalPages(t *testing.T) {
	tests := []struct {
		total   int64
		perPage int
		want    int
	}{
		{0, 20, 0},
		{1, 20, 1},
		{20, 20, 1},
		{21, 20, 2},
		{100, 0, 0},
	}

	for _, tt := range tests {
		if got := CalculateTotalPages(tt.total, tt.perPage); got != tt.want {
			t.Fatalf("CalculateTotalPages(%d, %d) = %d, want %d", tt.total, tt.perPage, got, tt.want)
		}
	}
}
