package security

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/tls"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/pem"
	"math/big"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func generateSelfSignedCert(t *testing.T, commonName string) (certFile, keyFile string) {
	t.Helper()

	privateKey, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatalf("Failed to generate private key: %v", err)
	}

	template := x509.Certificate{
		SerialNumber: big.NewInt(1),
		Subject: pkix.Name{
			CommonName: commonName,
		},
		NotBefore: time.Now(),
		NotAfter:  time.Now().Add(time.Hour),
		KeyUsage:  x509.KeyUsageKeyEncipherment | x509.KeyUsageDigitalSignature,
	}

	certDER, err := x509.CreateCertificate(rand.Reader, &template, &template, &privateKey.PublicKey, privateKey)
	if err != nil {
		t.Fatalf("Failed to create certificate: %v", err)
	}

	tmpDir := t.TempDir()
	certFile = filepath.Join(tmpDir, "test.crt")
	keyFile = filepath.Join(tmpDir, "test.key")

	certPEM := pem.EncodeToMemory(&pem.Block{
		Type:  "CERTIFICATE",
		Bytes: certDER,
	})
	if err := os.WriteFile(certFile, certPEM, 0600); err != nil {
		t.Fatalf("Failed to write certificate: %v", err)
	}

	keyDER, err := x509.MarshalPKCS8PrivateKey(privateKey)
	if err != nil {
		t.Fatalf("Failed to marshal private key: %v", err)
	}
	keyPEM := pem.EncodeToMemory(&pem.Block{
		Type:  "PRIVATE KEY",
		Bytes: keyDER,
	})
	if err := os.WriteFile(keyFile, keyPEM, 0600); err != nil {
		t.Fatalf("Failed to write key: %v", err)
	}

	return certFile, keyFile
}

func TestLoadServerTLSConfig(t *testing.T) {
	certFile, keyFile := generateSelfSignedCert(t, "ledgerd")

	tlsCfg, err := LoadServerTLSConfig(TLSConfig{CertFile: certFile, KeyFile: keyFile})
	if err != nil {
		t.Fatalf("Failed to load server TLS config: %v", err)
	}

	if len(tlsCfg.Certificates) != 1 {
		t.Errorf("Expected 1 certificate, got %d", len(tlsCfg.Certificates))
	}
	if tlsCfg.MinVersion != tls.VersionTLS13 {
		t.Errorf("Expected TLS 1.3 minimum, got %x", tlsCfg.MinVersion)
	}
	if tlsCfg.ClientAuth != tls.NoClientCert {
		t.Errorf("Expected no client auth by default, got %v", tlsCfg.ClientAuth)
	}
}

func TestLoadServerTLSConfigMutual(t *testing.T) {
	certFile, keyFile := generateSelfSignedCert(t, "ledgerd")

	tlsCfg, err := LoadServerTLSConfig(TLSConfig{
		CertFile:          certFile,
		KeyFile:           keyFile,
		CAFile:            certFile,
		RequireClientAuth: true,
	})
	if err != nil {
		t.Fatalf("Failed to load mutual TLS config: %v", err)
	}

	if tlsCfg.ClientAuth != tls.RequireAndVerifyClientCert {
		t.Errorf("Expected client certs to be required, got %v", tlsCfg.ClientAuth)
	}
	if tlsCfg.ClientCAs == nil {
		t.Error("Expected client CA pool to be set")
	}
}

func TestLoadServerTLSConfigMissingFiles(t *testing.T) {
	_, err := LoadServerTLSConfig(TLSConfig{CertFile: "/nonexistent/cert.crt", KeyFile: "/nonexistent/key.key"})
	if err == nil {
		t.Error("Expected error for missing certificate files")
	}
}

func TestLoadClientTLSConfig(t *testing.T) {
	certFile, keyFile := generateSelfSignedCert(t, "reportd")

	// CA only: client verifies the server but presents no certificate.
	tlsCfg, err := LoadClientTLSConfig(TLSConfig{CAFile: certFile})
	if err != nil {
		t.Fatalf("Failed to load client TLS config: %v", err)
	}
	if tlsCfg.RootCAs == nil {
		t.Error("Expected root CA pool to be set")
	}
	if len(tlsCfg.Certificates) != 0 {
		t.Errorf("Expected no client certificate, got %d", len(tlsCfg.Certificates))
	}

	// Full mutual TLS material.
	tlsCfg, err = LoadClientTLSConfig(TLSConfig{CertFile: certFile, KeyFile: keyFile, CAFile: certFile})
	if err != nil {
		t.Fatalf("Failed to load mutual client TLS config: %v", err)
	}
	if len(tlsCfg.Certificates) != 1 {
		t.Errorf("Expected 1 client certificate, got %d", len(tlsCfg.Certificates))
	}
}

func TestLoadTLSConfigBadCA(t *testing.T) {
	certFile, keyFile := generateSelfSignedCert(t, "ledgerd")

	badCA := filepath.Join(t.TempDir(), "ca.crt")
	if err := os.WriteFile(badCA, []byte("not a certificate"), 0600); err != nil {
		t.Fatalf("Failed to write CA file: %v", err)
	}

	if _, err := LoadServerTLSConfig(TLSConfig{CertFile: certFile, KeyFile: keyFile, CAFile: badCA}); err == nil {
		t.Error("Expected error for unparseable CA certificate")
	}
}

func TestVerifyTLSFiles(t *testing.T) {
	certFile, keyFile := generateSelfSignedCert(t, "ledgerd")

	if err := VerifyTLSFiles(certFile, keyFile, ""); err != nil {
		t.Errorf("VerifyTLSFiles should accept existing cert and key without CA: %v", err)
	}
	if err := VerifyTLSFiles(certFile, keyFile, certFile); err != nil {
		t.Errorf("VerifyTLSFiles should accept existing CA file: %v", err)
	}
	if err := VerifyTLSFiles("", "", ""); err == nil {
		t.Error("VerifyTLSFiles should fail with empty paths")
	}
	if err := VerifyTLSFiles(certFile, keyFile, "/nonexistent/ca.crt"); err == nil {
		t.Error("VerifyTLSFiles should fail when the configured CA file is missing")
	}
	if err := VerifyTLSFiles("/nonexistent/cert.crt", keyFile, ""); err == nil {
		t.Error("VerifyTLSFiles should fail with a missing certificate")
	}
}
