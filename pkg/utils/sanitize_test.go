package utils

import "testing"

func TestSanitizeString(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"  PBR-2024-001  ", "PBR-2024-001"},
		{"<script>alert(1)</script>", "&lt;script&gt;alert(1)&lt;/script&gt;"},
		{"plain", "plain"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := SanitizeString(tt.input); got != tt.want {
			t.Errorf("SanitizeString(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestSanitizeIdentity(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Ops@Company.com", "ops@company.com"},
		{"  user@example.com  ", "user@example.com"},
		{"user\t@example.com", "user@example.com"},
		{"user\x00@example.com", "user@example.com"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := SanitizeIdentity(tt.input); got != tt.want {
			t.Errorf("SanitizeIdentity(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestValidateStruct(t *testing.T) {
	type payload struct {
		ContractID string `validate:"required"`
		Quantity   int    `validate:"required,min=1"`
	}

	if err := ValidateStruct(&payload{ContractID: "PBR-2024-001", Quantity: 1}); err != nil {
		t.Errorf("valid payload rejected: %v", err)
	}
	if err := ValidateStruct(&payload{Quantity: 1}); err == nil {
		t.Error("missing contract ID accepted")
	}
	if err := ValidateStruct(&payload{ContractID: "PBR-2024-001"}); err == nil {
		t.Error("zero quantity accepted")
	}
}
