package types

import "testing"

func TestNameValidate(t *testing.T) {
	tests := []struct {
		name    Name
		maxLen  int
		wantErr bool
	}{
		{NameFromString("alice"), 64, false},
		{NameFromString(""), 64, true},
		{NameFromString("toolong"), 4, true},
	}
	for _, tc := range tests {
		err := tc.name.Validate(tc.maxLen)
		if (err != nil) != tc.wantErr {
			t.Errorf("Validate(%q, %d) error = %v, wantErr %v", tc.name, tc.maxLen, err, tc.wantErr)
		}
	}
}

func TestNameEncodeRoundtrip(t *testing.T) {
	n := NameFromString("vanity")
	if string(n.Encode()) != "vanity" {
		t.Fatalf("Encode() = %q, want %q", n.Encode(), "vanity")
	}
	if n.String() != "vanity" {
		t.Fatalf("String() = %q, want %q", n.String(), "vanity")
	}
}
