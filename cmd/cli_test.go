package cmd

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/bnema/repara-cli/internal/adapters/api/demoserver"
	"github.com/bnema/repara-cli/internal/domain"
	"github.com/bnema/repara-cli/internal/version"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestVersionCommand(t *testing.T) {
	stdout, _, err := executeCLI(t, t.TempDir(), "version")
	require.NoError(t, err)
	assert.Contains(t, stdout, version.Version)
}

func TestListOfflineShowsDemoTickets(t *testing.T) {
	stdout, _, err := executeCLI(t, t.TempDir(), "--offline", "list")
	require.NoError(t, err)
	assert.Contains(t, stdout, "María González")
	assert.Contains(t, stdout, "Carlos Rodríguez")
	assert.Contains(t, stdout, "Sofía Martínez")
	assert.Contains(t, stdout, "Modo Demo")
}

func TestListFallsBackWhenBackendUnreachable(t *testing.T) {
	server := httptest.NewServer(nil)
	base := server.URL
	server.Close()

	stdout, _, err := executeCLI(t, t.TempDir(),
		"--api-url", base+demoserver.TicketsPath,
		"--auth-url", base+demoserver.AuthPath,
		"list",
	)
	require.NoError(t, err)
	assert.Contains(t, stdout, "María González")
	assert.Contains(t, stdout, "Modo Demo")
}

func TestListLiveAgainstDemoBackend(t *testing.T) {
	home := t.TempDir()
	backend := startDemoBackend(t)

	stdout, _, err := executeCLI(t, home, backend.args("list")...)
	require.NoError(t, err)
	assert.Contains(t, stdout, "servicios: 3")
	assert.NotContains(t, stdout, "Modo Demo")
}

func TestListByStatusLive(t *testing.T) {
	backend := startDemoBackend(t)

	stdout, _, err := executeCLI(t, t.TempDir(), backend.args("list", "--status", "en_reparacion")...)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Carlos Rodríguez")
	assert.NotContains(t, stdout, "María González")
}

func TestSearchJSONOutput(t *testing.T) {
	backend := startDemoBackend(t)

	stdout, _, err := executeCLI(t, t.TempDir(), backend.args("--json", "search", "galaxy")...)
	require.NoError(t, err)
	require.True(t, json.Valid([]byte(stdout)))

	var result struct {
		Tickets []domain.Ticket
		Mode    domain.Mode
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &result))
	require.Len(t, result.Tickets, 1)
	assert.Equal(t, "Galaxy S21", result.Tickets[0].Model)
	assert.Equal(t, domain.ModeLive, result.Mode)
}

func TestFilterOfflineCombinesCriteria(t *testing.T) {
	stdout, _, err := executeCLI(t, t.TempDir(), "--offline", "filter", "--type", "Laptop", "--priority", "normal")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Carlos Rodríguez")
	assert.NotContains(t, stdout, "Sofía Martínez")
}

func TestFilterOfflineNoMatches(t *testing.T) {
	stdout, _, err := executeCLI(t, t.TempDir(), "--offline", "filter", "--email", "nadie@example.com")
	require.NoError(t, err)
	assert.Contains(t, stdout, "No se encontraron servicios")
	assert.Contains(t, stdout, "Modo offline - Datos limitados")
}

func TestLookupByEmailOffline(t *testing.T) {
	stdout, _, err := executeCLI(t, t.TempDir(), "--offline", "lookup", "sofia.martinez@email.com")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Sofía Martínez")
	assert.NotContains(t, stdout, "Carlos Rodríguez")
}

func TestStatsOfflineAndLive(t *testing.T) {
	stdout, _, err := executeCLI(t, t.TempDir(), "--offline", "stats")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Estadísticas")
	assert.Contains(t, stdout, "Modo Demo")

	backend := startDemoBackend(t)
	stdout, _, err = executeCLI(t, t.TempDir(), backend.args("--json", "stats")...)
	require.NoError(t, err)

	var result struct {
		Statistics domain.Statistics
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &result))
	assert.Equal(t, 3, result.Statistics.Total)
	assert.Equal(t, 3, result.Statistics.Technicians)
}

func TestStatusesCatalogue(t *testing.T) {
	stdout, _, err := executeCLI(t, t.TempDir(), "--offline", "estados")
	require.NoError(t, err)
	assert.Contains(t, stdout, "ESPERANDO_REPUESTOS")
	assert.Contains(t, stdout, "Smartwatch")

	backend := startDemoBackend(t)
	stdout, _, err = executeCLI(t, t.TempDir(), backend.args("--json", "estados")...)
	require.NoError(t, err)

	var out statusCatalogue
	require.NoError(t, json.Unmarshal([]byte(stdout), &out))
	assert.Len(t, out.Statuses, len(domain.Statuses()))
	assert.Equal(t, domain.ModeLive, out.Mode)
}

func TestCreateOfflinePersistsToCache(t *testing.T) {
	home := t.TempDir()

	stdout, stderr, err := executeCLI(t, home, "--offline", "create",
		"--name", "Ana Torres",
		"--phone", "+56 9 1111 2222",
		"--email", "ana@example.com",
		"--type", "Consola",
		"--brand", "Sony",
		"--model", "PS5",
		"--problem", "No lee discos",
		"--date", "2026-11-02T10:00",
	)
	require.NoError(t, err)
	assert.Contains(t, stdout, "#4")
	assert.Contains(t, stdout, "Sony PS5")
	assert.Contains(t, stderr, "¡Servicio agendado en modo demo!")

	stdout, _, err = executeCLI(t, home, "--offline", "list")
	require.NoError(t, err)
	assert.Contains(t, stdout, "servicios: 4")
	assert.Contains(t, stdout, "Ana Torres")
}

func TestCreateRejectsMissingFields(t *testing.T) {
	_, _, err := executeCLI(t, t.TempDir(), "--offline", "create", "--name", "Ana")
	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))
}

func TestCreateLive(t *testing.T) {
	backend := startDemoBackend(t)

	stdout, stderr, err := executeCLI(t, t.TempDir(), backend.args("create",
		"--name", "Ana Torres",
		"--phone", "+56 9 1111 2222",
		"--email", "ana@example.com",
		"--type", "Laptop",
		"--brand", "Lenovo",
		"--model", "T14",
		"--problem", "Teclado no responde",
		"--date", "2026-11-02",
		"--priority", "alta",
	)...)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Lenovo T14")
	assert.Contains(t, stderr, "¡Servicio agendado exitosamente en el servidor!")
	assert.Len(t, backend.server.Tickets(), 4)
}

func TestSetStatusRequiresLogin(t *testing.T) {
	_, _, err := executeCLI(t, t.TempDir(), "--offline", "set-status", "1", "EN_REVISION")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrLoginRequired)
	assert.Contains(t, err.Error(), "rf login")
}

func TestShowRequiresLogin(t *testing.T) {
	_, _, err := executeCLI(t, t.TempDir(), "--offline", "show", "1")
	require.ErrorIs(t, err, domain.ErrLoginRequired)
}

func TestSetStatusRejectsBadID(t *testing.T) {
	_, _, err := executeCLI(t, t.TempDir(), "--offline", "set-status", "abc", "EN_REVISION")
	require.Error(t, err)
}

func TestLoginSetStatusWhoamiLogout(t *testing.T) {
	setLogoutDelay(t, 0)
	home := t.TempDir()
	backend := startDemoBackend(t)

	stdout, _, err := executeCLI(t, home, backend.args("login", "-u", "tecnico", "-p", demoserver.DemoPassword)...)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Bienvenido, Juan Pérez")

	stdout, _, err = executeCLI(t, home, backend.args("whoami")...)
	require.NoError(t, err)
	assert.Contains(t, stdout, "@tecnico")
	assert.Contains(t, stdout, "TECNICO")

	stdout, stderr, err := executeCLI(t, home, backend.args("set-status", "1", "en_revision")...)
	require.NoError(t, err)
	assert.Contains(t, stdout, "En Revisión")
	assert.Contains(t, stderr, "Estado actualizado exitosamente en el servidor")

	ticket, ok := domain.FindTicket(backend.server.Tickets(), 1)
	require.True(t, ok)
	assert.Equal(t, domain.StatusInReview, ticket.Status)

	stdout, _, err = executeCLI(t, home, backend.args("show", "1")...)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Servicio #1")
	assert.Contains(t, stdout, "En revisión técnica")

	stdout, stderr, err = executeCLI(t, home, backend.args("logout", "--yes")...)
	require.NoError(t, err)
	assert.Contains(t, stderr, "Sesión cerrada exitosamente")
	assert.Contains(t, stdout, "Invitado")

	stdout, _, err = executeCLI(t, home, backend.args("whoami")...)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Invitado")
}

func TestLoginWrongPassword(t *testing.T) {
	backend := startDemoBackend(t)

	_, _, err := executeCLI(t, t.TempDir(), backend.args("login", "-u", "admin", "-p", "nope")...)
	require.Error(t, err)
	assert.True(t, domain.IsRejected(err))
	assert.Contains(t, err.Error(), "Credenciales inválidas")
}

func TestLoginPromptsForPassword(t *testing.T) {
	backend := startDemoBackend(t)
	home := t.TempDir()

	stdout, _, err := executeCLIWithInput(t, home, demoserver.DemoPassword+"\n", backend.args("login", "-u", "admin")...)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Bienvenido, Administrador Sistema")
}

func TestLogoutDeclined(t *testing.T) {
	setLogoutDelay(t, 0)
	backend := startDemoBackend(t)
	home := t.TempDir()

	_, _, err := executeCLI(t, home, backend.args("login", "-u", "admin", "-p", demoserver.DemoPassword)...)
	require.NoError(t, err)

	_, stderr, err := executeCLIWithInput(t, home, "n\n", backend.args("logout")...)
	require.NoError(t, err)
	assert.Contains(t, stderr, "Cierre de sesión cancelado")

	stdout, _, err := executeCLI(t, home, backend.args("whoami")...)
	require.NoError(t, err)
	assert.Contains(t, stdout, "@admin")
}

func TestSetStatusEmptyAnswerCancels(t *testing.T) {
	backend := startDemoBackend(t)
	home := t.TempDir()

	_, _, err := executeCLI(t, home, backend.args("login", "-u", "admin", "-p", demoserver.DemoPassword)...)
	require.NoError(t, err)

	_, stderr, err := executeCLIWithInput(t, home, "\n", backend.args("set-status", "2")...)
	require.NoError(t, err)
	assert.Contains(t, stderr, "Cambio de estado cancelado")

	ticket, ok := domain.FindTicket(backend.server.Tickets(), 2)
	require.True(t, ok)
	assert.Equal(t, domain.StatusInRepair, ticket.Status)
}

func TestWatchRejectsJSON(t *testing.T) {
	_, _, err := executeCLI(t, t.TempDir(), "--offline", "--json", "watch")
	require.Error(t, err)
}

type demoBackend struct {
	server  *demoserver.Server
	apiURL  string
	authURL string
}

func (b demoBackend) args(args ...string) []string {
	return append([]string{"--api-url", b.apiURL, "--auth-url", b.authURL}, args...)
}

func startDemoBackend(t *testing.T) demoBackend {
	t.Helper()

	srv, err := demoserver.New(demoserver.Options{BcryptCost: bcrypt.MinCost})
	require.NoError(t, err)

	server := httptest.NewServer(srv.Handler())
	t.Cleanup(server.Close)

	return demoBackend{
		server:  srv,
		apiURL:  server.URL + demoserver.TicketsPath,
		authURL: server.URL + demoserver.AuthPath,
	}
}

func setLogoutDelay(t *testing.T, d time.Duration) {
	t.Helper()
	previous := logoutReloadDelay
	logoutReloadDelay = d
	t.Cleanup(func() { logoutReloadDelay = previous })
}

func executeCLI(t *testing.T, home string, args ...string) (string, string, error) {
	t.Helper()
	return executeCLIWithInput(t, home, "", args...)
}

func executeCLIWithInput(t *testing.T, home, input string, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("HOME", home)

	root := newRootCmd()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetIn(strings.NewReader(input))
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}
