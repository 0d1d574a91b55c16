package util

import "testing"

func TestHashKey(t *testing.T) {
	in := "https://www.amazon.com/dp/B08N5WRWNW"
	got := HashKey(in)
	if got != HashKey(in) {
		t.Fatalf("expected stable hash, got %s", got)
	}
	for _, ch := range got {
		if !((ch >= 'a' && ch <= 'f') || (ch >= '0' && ch <= '9')) {
			t.Fatalf("hash contains non-hex character: %c", ch)
		}
	}
	if len(got) != 64 {
		t.Fatalf("expected 64 hex characters, got %d", len(got))
	}
	if got == HashKey(in+"?th=1") {
		t.Fatalf("expected different inputs to hash differently")
	}
}

func TestSanitizeFileName(t *testing.T) {
	cases := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "body.glb", want: "body.glb"},
		{in: "  scans/body.glb ", want: "scans_body.glb"},
		{in: `C:\scans\body.glb`, want: "C:_scans_body.glb"},
		{in: "my..model.glb", want: "my..model.glb"},
		{in: "../body.glb", wantErr: true},
		{in: `scans\..\body.glb`, wantErr: true},
		{in: "   ", wantErr: true},
	}
	for _, tc := range cases {
		got, err := SanitizeFileName(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Fatalf("%q: expected error", tc.in)
			}
			continue
		}
		if err != nil {
			t.Fatalf("%q: unexpected error %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("%q: expected %q, got %q", tc.in, tc.want, got)
		}
	}
}
