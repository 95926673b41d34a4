package e2e_test

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/dormdesk/dormdesk/pkg/dormsdk"
)

/*
 * Common helpers for DormDesk end-to-end tests: the service runs in a
 * container built from the repo Dockerfile and is exercised through the SDK.
 */

const testImageName = "dormdesk-test:latest"

// TestMain builds the Docker image once before all tests and removes it
// afterwards.
func TestMain(m *testing.M) {
	fmt.Fprintf(os.Stdout, "Building DormDesk Docker image...")
	if err := buildDockerImage(); err != nil {
		fmt.Fprintf(os.Stderr, "\nFailed to build Docker image: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stdout, " done\n")

	exitCode := m.Run()

	fmt.Fprintf(os.Stdout, "Cleaning up DormDesk Docker image...")
	cleanupDockerImage()
	fmt.Fprintf(os.Stdout, " done\n")

	os.Exit(exitCode)
}

func buildDockerImage() error {
	cmd := exec.Command("docker", "build",
		"-t", testImageName,
		"-f", "../../cmd/dormdesk/Dockerfile",
		"../../")
	cmd.Stdout = os.Stdout
	cmd.Stderr = nil
	return cmd.Run()
}

func cleanupDockerImage() {
	_ = exec.Command("docker", "rmi", "-f", testImageName).Run()
}

// setupContainer starts the service container and returns its base URL.
func setupContainer(t *testing.T) string {
	t.Helper()
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        testImageName,
		ExposedPorts: []string{"8080/tcp"},
		Env: map[string]string{
			"DORM_ACCESS_SECRET":      "e2e-access-secret",
			"DORM_REFRESH_SECRET":     "e2e-refresh-secret",
			"DORM_DATABASE_FILE":      "/tmp/dormdesk.db",
			"DORM_PEPPER_FILE":        "/tmp/pepper",
			"DORM_ALLOW_OWNER_SIGNUP": "true",
			"ENV":                     "test",
			"LOG_LEVEL":               "info",
			"LOG_FORMAT":              "json",
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
	t.Cleanup(func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	mappedPort, err := container.MappedPort(ctx, "8080")
	require.NoError(t, err)
	host, err := container.Host(ctx)
	require.NoError(t, err)

	return fmt.Sprintf("http://%s:%s", host, mappedPort.Port())
}

// signup registers an account and returns an authenticated client.
func signup(t *testing.T, api *dormsdk.Client, username, password, role string) *dormsdk.Client {
	t.Helper()
	ctx := context.Background()

	_, err := api.Register(ctx, dormsdk.RegisterRequest{
		Username:  username,
		Password:  password,
		FirstName: "E2E",
		LastName:  "User",
		Email:     username + "@example.test",
		Role:      role,
	})
	require.NoError(t, err)

	tokens, err := api.Login(ctx, username, password)
	require.NoError(t, err)
	return api.WithToken(tokens.AccessToken)
}
