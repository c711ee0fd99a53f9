package lazyuuid

import (
	"strings"
	"testing"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		separators bool
		want       string
	}{
		{"canonical", "de305d54-75b4-431b-adb2-eb6b9e546014", true, "de305d54-75b4-431b-adb2-eb6b9e546014"},
		{"compact", "de305d54-75b4-431b-adb2-eb6b9e546014", false, "de305d5475b4431badb2eb6b9e546014"},
		{"leading zero bytes", "05305d54-7502-431b-adb2-eb6b9e546000", true, "05305d54-7502-431b-adb2-eb6b9e546000"},
		{"leading zero bytes compact", "05305d547502431badb2eb6b9e546000", false, "05305d547502431badb2eb6b9e546000"},
		{"uppercase input", "DE305D54-75B4-431B-ADB2-EB6B9E546014", true, "de305d54-75b4-431b-adb2-eb6b9e546014"},
		{"default", "00000000000000000000000000000000", true, "00000000-0000-0000-0000-000000000000"},
		{"all ones", "ffffffff-ffff-ffff-ffff-ffffffffffff", false, "ffffffffffffffffffffffffffffffff"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Format(MustParse(tt.input), tt.separators)
			if got != tt.want {
				t.Errorf("Format() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFormat_Separators(t *testing.T) {
	for i := 0; i < 100; i++ {
		uuid := Must(New())

		canonical := Format(uuid, true)
		if len(canonical) != 36 {
			t.Fatalf("canonical length = %d, want 36", len(canonical))
		}
		if n := strings.Count(canonical, "-"); n != 4 {
			t.Errorf("canonical %q has %d separators, want 4", canonical, n)
		}
		for _, pos := range []int{8, 13, 18, 23} {
			if canonical[pos] != Separator {
				t.Errorf("canonical %q: byte %d = %q, want %q", canonical, pos, canonical[pos], Separator)
			}
		}

		compact := Format(uuid, false)
		if len(compact) != 32 {
			t.Fatalf("compact length = %d, want 32", len(compact))
		}
		if strings.ContainsRune(compact, Separator) {
			t.Errorf("compact %q contains a separator", compact)
		}
		if compact != strings.ReplaceAll(canonical, "-", "") {
			t.Errorf("compact %q disagrees with canonical %q", compact, canonical)
		}
	}
}

func TestUUID_String(t *testing.T) {
	testUUID := UUID{0xf4, 0x7a, 0xc1, 0x0b, 0x58, 0xcc, 0x43, 0x72, 0xa5, 0x67, 0x0e, 0x02, 0xb2, 0xc3, 0xd4, 0x79}
	want := "f47ac10b-58cc-4372-a567-0e02b2c3d479"
	got := testUUID.String()
	if got != want {
		t.Errorf("String() = %v, want %v", got, want)
	}
}

func TestUUID_EncodeToHex(t *testing.T) {
	uuid := UUID{0xf4, 0x7a, 0xc1, 0x0b, 0x58, 0xcc, 0x43, 0x72, 0xa5, 0x67, 0x0e, 0x02, 0xb2, 0xc3, 0xd4, 0x79}
	expected := "f47ac10b58cc4372a5670e02b2c3d479"

	got := uuid.EncodeToHex()
	if got != expected {
		t.Errorf("EncodeToHex() = %v, want %v", got, expected)
	}
}
