package oid

import (
	"errors"
	"reflect"
	"testing"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		arcs    []int
		want    string
		wantErr error
	}{
		{
			name: "common name",
			arcs: []int{2, 5, 4, 3},
			want: "2.5.4.3",
		},
		{
			name: "two arcs",
			arcs: []int{2, 5},
			want: "2.5",
		},
		{
			name: "large arcs",
			arcs: []int{0, 9, 2342, 19200300, 100, 1, 25},
			want: "0.9.2342.19200300.100.1.25",
		},
		{
			name:    "single arc",
			arcs:    []int{2},
			wantErr: ErrEmptyOID,
		},
		{
			name:    "no arcs",
			arcs:    nil,
			wantErr: ErrEmptyOID,
		},
		{
			name:    "negative arc",
			arcs:    []int{2, -5, 4},
			wantErr: ErrNegativeArc,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o, err := New(tt.arcs...)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected error %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if o.String() != tt.want {
				t.Errorf("expected %q, got %q", tt.want, o.String())
			}
		})
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "dotted", input: "2.5.4.3", want: "2.5.4.3"},
		{name: "long", input: "1.3.6.1.4.1.311.60.2.1.3", want: "1.3.6.1.4.1.311.60.2.1.3"},
		{name: "empty", input: "", wantErr: true},
		{name: "single component", input: "2", wantErr: true},
		{name: "trailing dot", input: "2.5.", wantErr: true},
		{name: "non-numeric", input: "2.5.x", wantErr: true},
		{name: "negative", input: "2.-5", wantErr: true},
		{name: "short name", input: "CN", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o, err := Parse(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if o.String() != tt.want {
				t.Errorf("expected %q, got %q", tt.want, o.String())
			}
		})
	}
}

func TestMustParse_PanicsOnInvalid(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	MustParse("not an oid")
}

func TestOID_Equal(t *testing.T) {
	a := MustParse("2.5.4.3")
	b := MustParse("2.5.4.3")
	c := MustParse("2.5.4.6")

	if !a.Equal(b) {
		t.Error("expected equal OIDs")
	}
	if a != b {
		t.Error("expected == to hold for equal OIDs")
	}
	if a.Equal(c) {
		t.Error("expected distinct OIDs to differ")
	}
}

func TestOID_MapKey(t *testing.T) {
	m := map[OID]string{
		MustParse("2.5.4.3"): "cn",
	}
	if got := m[MustParse("2.5.4.3")]; got != "cn" {
		t.Errorf("expected map hit, got %q", got)
	}
	if _, ok := m[MustParse("2.5.4.6")]; ok {
		t.Error("unexpected map hit for distinct OID")
	}
}

func TestOID_Arcs(t *testing.T) {
	o := MustParse("2.5.4.3")
	want := []int{2, 5, 4, 3}
	if got := o.Arcs(); !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}

	// Mutating the returned slice must not affect the OID.
	arcs := o.Arcs()
	arcs[0] = 99
	if o.String() != "2.5.4.3" {
		t.Error("OID mutated through Arcs result")
	}
}

func TestOID_ASN1(t *testing.T) {
	o := MustParse("2.5.4.3")
	asn := o.ASN1()
	if !asn.Equal([]int{2, 5, 4, 3}) {
		t.Errorf("unexpected asn1 oid: %v", asn)
	}
}

func TestOID_Zero(t *testing.T) {
	var zero OID
	if !zero.IsZero() {
		t.Error("expected zero value to report IsZero")
	}
	if zero.Arcs() != nil {
		t.Error("expected nil arcs for zero OID")
	}
	if MustParse("2.5").IsZero() {
		t.Error("non-zero OID reported IsZero")
	}
}
