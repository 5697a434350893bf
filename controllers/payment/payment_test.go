package paymentControllers

import (
	"strings"
	"testing"
)

func TestClientSecretIsStablePerOrder(t *testing.T) {
	a := clientSecret("20260315120000-abcd1234", "test")
	b := clientSecret("20260315120000-abcd1234", "test")
	if a != b {
		t.Error("same order produced different secrets")
	}
	if !strings.HasPrefix(a, "pi_") {
		t.Errorf("secret %q missing prefix", a)
	}
}

func TestClientSecretVariesByOrderAndMode(t *testing.T) {
	base := clientSecret("ref-1", "test")
	if clientSecret("ref-2", "test") == base {
		t.Error("different orders share a secret")
	}
	if clientSecret("ref-1", "live") == base {
		t.Error("different modes share a secret")
	}
}
