package admin_test

import (
	"context"
	"crypto/ed25519"
	"crypto/rand"
	"crypto/x509"
	"encoding/pem"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/karrieremum/adminsvc/pkg/jwtx"
)

/*
 * Common constants and helper functions for admin service end-to-end tests.
 * This includes container setup, token minting, and assertions.
 */

const (
	testImageName = "karrieremum-admin-test:latest"

	testIssuer       = "karrieremum-auth"
	testClientDomain = "https://app.karrieremum.test"
	testAdminUserID  = "01J5E2EADMIN000000000000AA"
)

var (
	// Signing keypair minted once in TestMain; the public half is copied
	// into the container as the service's verify key.
	signingKey    ed25519.PrivateKey
	verifyKeyPath string
)

// TestMain manages the test lifecycle, builds the Docker image once before
// all tests and cleans it up after all tests complete.
func TestMain(m *testing.M) {
	if err := generateKeypair(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to generate test keypair: %v\n", err)
		os.Exit(1)
	}

	fmt.Fprintf(os.Stdout, "Building Admin Service Docker image...")

	// Build the Docker image once before all tests
	if err := buildDockerImage(); err != nil {
		fmt.Fprintf(os.Stderr, "\nFailed to build Docker image: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stdout, " done\n")

	// Run all tests
	exitCode := m.Run()

	// Clean up the Docker image after all tests complete
	fmt.Fprintf(os.Stdout, "Cleaning up Admin Service Docker image...")
	cleanupDockerImage()
	fmt.Fprintf(os.Stdout, " done\n")

	os.Exit(exitCode)
}

// generateKeypair creates the Ed25519 signing key and writes the public
// half as a PKIX PEM file for the container.
func generateKeypair() error {
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return err
	}
	signingKey = priv

	der, err := x509.MarshalPKIXPublicKey(pub)
	if err != nil {
		return err
	}
	pemKey := pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: der})

	dir, err := os.MkdirTemp("", "admin-e2e-keys")
	if err != nil {
		return err
	}
	verifyKeyPath = filepath.Join(dir, "verify.pem")

	return os.WriteFile(verifyKeyPath, pemKey, 0o644)
}

// buildDockerImage builds the test Docker image if it doesn't exist.
func buildDockerImage() error {
	ctx := context.Background()
	cmd := exec.CommandContext(ctx, "docker", "build",
		"-t", testImageName,
		"-f", "../../../cmd/admin/Dockerfile",
		"../../../")
	cmd.Dir = "." // Ensure we're in the test directory
	cmd.Stdout = os.Stdout
	cmd.Stderr = nil

	return cmd.Run()
}

// cleanupDockerImage removes the test Docker image.
func cleanupDockerImage() {
	ctx := context.Background()
	cmd := exec.CommandContext(ctx, "docker", "rmi", "-f", testImageName)
	_ = cmd.Run() // Ignore errors - image might not exist
}

// setupAdminContainer starts the admin service in a container and returns the base URL.
func setupAdminContainer(t *testing.T) (string, func()) {
	t.Helper()
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        testImageName,
		ExposedPorts: []string{"8080/tcp"},
		Files: []testcontainers.ContainerFile{
			{
				HostFilePath:      verifyKeyPath,
				ContainerFilePath: "/verify.pem",
				FileMode:          0o444,
			},
		},
		Env: map[string]string{
			"DATABASE_FILE":        "/admin.db",
			"AUTH_ISSUER":          testIssuer,
			"AUTH_VERIFY_KEY_FILE": "/verify.pem",
			"DOMAIN_CLIENT":        testClientDomain,
			"MAILER_DRIVER":        "log",
			"ENV":                  "test",
			"LOG_LEVEL":            "info",
			"LOG_FORMAT":           "json",
			// Increase rate limits for E2E tests to prevent test failures
			// Tests often make many rapid requests which would otherwise hit the production limits
			"RATELIMIT_MODERATE_REQUESTS": "1000",
			"RATELIMIT_MODERATE_BURST":    "1000",
			"RATELIMIT_LENIENT_REQUESTS":  "1000",
			"RATELIMIT_LENIENT_BURST":     "1000",
		},
		WaitingFor: wait.ForHTTP("/livez").
			WithPort("8080/tcp").
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	// Get the mapped port
	mappedPort, err := container.MappedPort(ctx, "8080")
	require.NoError(t, err)

	host, err := container.Host(ctx)
	require.NoError(t, err)

	baseURL := fmt.Sprintf("http://%s:%s", host, mappedPort.Port())

	cleanup := func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	}

	return baseURL, cleanup
}

// mintToken signs an access token for the given subject and scopes using the
// test keypair. The container verifies it against the public PEM.
func mintToken(t *testing.T, subject string, scopes []string) string {
	t.Helper()
	now := time.Now().UTC()

	claims := jwtx.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    testIssuer,
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(10 * time.Minute)),
		},
		Scopes:   scopes,
		Username: "admin",
	}

	token := jwt.NewWithClaims(jwt.SigningMethodEdDSA, claims)
	signed, err := token.SignedString(signingKey)
	require.NoError(t, err)
	return signed
}

// mintAdminToken signs a token carrying both admin scopes.
func mintAdminToken(t *testing.T) string {
	t.Helper()
	return mintToken(t, testAdminUserID, []string{"admin:read", "admin:write"})
}
