// Package certview exposes a read-only view over the certificate data
// a transport presents during connection setup. A certificate is one
// of exactly two shapes, selected by a runtime discriminant: a host
// key (hash digests of an SSH-style server key) or an X.509
// certificate (DER bytes). Accessors for the wrong shape report
// absence rather than failing.
package certview

// Kind discriminates the two certificate shapes.
type Kind int

const (
	// KindHostKey is a server host key identified by hash digests.
	KindHostKey Kind = iota + 1
	// KindX509 is a DER-encoded X.509 certificate.
	KindX509
)

// HostKey carries the hash digests of a remote host key. Each digest
// is present only if the transport computed that hash kind.
type HostKey struct {
	md5     [16]byte
	sha1    [20]byte
	hasMD5  bool
	hasSHA1 bool
}

// MD5 returns the 16-byte MD5 digest and whether it is present.
func (h HostKey) MD5() ([16]byte, bool) { return h.md5, h.hasMD5 }

// SHA1 returns the 20-byte SHA-1 digest and whether it is present.
func (h HostKey) SHA1() ([20]byte, bool) { return h.sha1, h.hasSHA1 }

// X509 carries DER-encoded certificate data.
type X509 struct {
	der []byte
}

// DER returns the raw certificate bytes. The slice is borrowed from
// the connection that produced the certificate and must not be
// modified or retained past its lifetime.
func (x X509) DER() []byte { return x.der }

// Len returns the certificate length in bytes.
func (x X509) Len() int { return len(x.der) }

// Cert is a tagged certificate value. The zero value has kind 0 and
// matches neither shape.
type Cert struct {
	kind    Kind
	hostKey HostKey
	x509    X509
}

// NewHostKey builds a host key certificate. Nil digest pointers mark
// the corresponding hash kind as absent.
func NewHostKey(md5 *[16]byte, sha1 *[20]byte) Cert {
	var h HostKey
	if md5 != nil {
		h.md5 = *md5
		h.hasMD5 = true
	}
	if sha1 != nil {
		h.sha1 = *sha1
		h.hasSHA1 = true
	}
	return Cert{kind: KindHostKey, hostKey: h}
}

// NewX509 builds an X.509 certificate view over der.
func NewX509(der []byte) Cert {
	return Cert{kind: KindX509, x509: X509{der: der}}
}

// Kind returns the discriminant.
func (c Cert) Kind() Kind { return c.kind }

// AsHostKey returns the host key shape, or ok=false if the
// certificate is not a host key.
func (c Cert) AsHostKey() (HostKey, bool) {
	if c.kind != KindHostKey {
		return HostKey{}, false
	}
	return c.hostKey, true
}

// AsX509 returns the X.509 shape, or ok=false if the certificate is
// not X.509.
func (c Cert) AsX509() (X509, bool) {
	if c.kind != KindX509 {
		return X509{}, false
	}
	return c.x509, true
}
