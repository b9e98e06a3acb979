package certview

import (
	"bytes"
	"testing"
)

func TestHostKeyDigests(t *testing.T) {
	md5 := [16]byte{1, 2, 3}
	sha1 := [20]byte{4, 5, 6}

	cert := NewHostKey(&md5, &sha1)
	if cert.Kind() != KindHostKey {
		t.Fatalf("Kind = %v, want KindHostKey", cert.Kind())
	}

	hk, ok := cert.AsHostKey()
	if !ok {
		t.Fatalf("AsHostKey = false for a host key cert")
	}
	if got, ok := hk.MD5(); !ok || got != md5 {
		t.Errorf("MD5 = %v, %v; want %v, true", got, ok, md5)
	}
	if got, ok := hk.SHA1(); !ok || got != sha1 {
		t.Errorf("SHA1 = %v, %v; want %v, true", got, ok, sha1)
	}
}

func TestHostKeyAbsentDigests(t *testing.T) {
	sha1 := [20]byte{7}
	cert := NewHostKey(nil, &sha1)

	hk, _ := cert.AsHostKey()
	if _, ok := hk.MD5(); ok {
		t.Errorf("MD5 present without a digest")
	}
	if _, ok := hk.SHA1(); !ok {
		t.Errorf("SHA1 absent despite a digest")
	}
}

func TestX509Data(t *testing.T) {
	der := []byte{0x30, 0x82, 0x01, 0x0a}
	cert := NewX509(der)
	if cert.Kind() != KindX509 {
		t.Fatalf("Kind = %v, want KindX509", cert.Kind())
	}

	x, ok := cert.AsX509()
	if !ok {
		t.Fatalf("AsX509 = false for an x509 cert")
	}
	if !bytes.Equal(x.DER(), der) {
		t.Errorf("DER = %x, want %x", x.DER(), der)
	}
	if x.Len() != len(der) {
		t.Errorf("Len = %d, want %d", x.Len(), len(der))
	}
}

func TestWrongShapeAccess(t *testing.T) {
	hostKey := NewHostKey(nil, nil)
	if _, ok := hostKey.AsX509(); ok {
		t.Errorf("AsX509 succeeded on a host key cert")
	}

	x509 := NewX509([]byte{1})
	if _, ok := x509.AsHostKey(); ok {
		t.Errorf("AsHostKey succeeded on an x509 cert")
	}
}

func TestZeroCertMatchesNeither(t *testing.T) {
	var cert Cert
	if _, ok := cert.AsHostKey(); ok {
		t.Errorf("zero cert matched host key")
	}
	if _, ok := cert.AsX509(); ok {
		t.Errorf("zero cert matched x509")
	}
}
