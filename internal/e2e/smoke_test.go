package e2e

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/bnema/repara-cli/internal/adapters/api/demoserver"
	"github.com/bnema/repara-cli/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestSmokeFlow(t *testing.T) {
	home := t.TempDir()
	binaryPath := buildBinary(t)

	srv, err := demoserver.New(demoserver.Options{BcryptCost: bcrypt.MinCost})
	require.NoError(t, err)
	backend := httptest.NewServer(srv.Handler())
	t.Cleanup(backend.Close)

	env := []string{
		"RF_API_BASE_URL=" + backend.URL + demoserver.TicketsPath,
		"RF_API_AUTH_URL=" + backend.URL + demoserver.AuthPath,
	}

	_, stderr, err := runRF(t, binaryPath, home, env, "login", "-u", "admin", "-p", demoserver.DemoPassword)
	require.NoError(t, err, "stderr: %s", stderr)

	_, stderr, err = runRF(t, binaryPath, home, env, "set-status", "2", "COMPLETADO")
	require.NoError(t, err, "stderr: %s", stderr)

	stdout, stderr, err := runRF(t, binaryPath, home, env, "--json", "list", "--status", "COMPLETADO")
	require.NoError(t, err, "stderr: %s", stderr)

	var result struct {
		Tickets []domain.Ticket
		Mode    domain.Mode
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &result))
	assert.Equal(t, domain.ModeLive, result.Mode)
	assert.Len(t, result.Tickets, 2)
}

func TestSmokeOfflineFallback(t *testing.T) {
	home := t.TempDir()
	binaryPath := buildBinary(t)

	env := []string{
		"RF_API_BASE_URL=http://127.0.0.1:1" + demoserver.TicketsPath,
		"RF_API_HEALTH_TIMEOUT=500ms",
	}

	stdout, stderr, err := runRF(t, binaryPath, home, env, "--json", "list")
	require.NoError(t, err, "stderr: %s", stderr)

	var result struct {
		Tickets []domain.Ticket
		Mode    domain.Mode
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &result))
	assert.Equal(t, domain.ModeLocal, result.Mode)
	assert.Len(t, result.Tickets, len(domain.DemoTickets()))
}

func buildBinary(t *testing.T) string {
	t.Helper()

	binaryPath := filepath.Join(t.TempDir(), "rf-e2e")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/rf")
	cmd.Dir = repoRoot(t)

	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "build rf binary: %s", string(output))
	return binaryPath
}

func runRF(t *testing.T, binaryPath, home string, env []string, args ...string) (string, string, error) {
	t.Helper()

	cmd := exec.Command(binaryPath, args...)
	cmd.Dir = home
	cmd.Env = append(append(os.Environ(), "HOME="+home), env...)

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}

func repoRoot(t *testing.T) string {
	t.Helper()

	wd, err := os.Getwd()
	require.NoError(t, err)
	return filepath.Clean(filepath.Join(wd, "..", ".."))
}
