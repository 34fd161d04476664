package cmd

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/bnema/repara-cli/internal/adapters/render/catalog"
	"github.com/bnema/repara-cli/internal/application"
	"github.com/bnema/repara-cli/internal/domain"
	"github.com/spf13/cobra"
)

func writeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func (a *app) renderOptions(mode domain.Mode) catalog.RenderOptions {
	return catalog.RenderOptions{
		Now:      a.now(),
		Mode:     mode,
		LoggedIn: a.sessions.Current().LoggedIn(),
	}
}

func (a *app) writeTickets(cmd *cobra.Command, result application.Result) error {
	if a.cfg.JSON {
		return writeJSON(cmd, result)
	}

	rendered, err := catalog.RenderTickets(result.Tickets, a.renderOptions(result.Mode))
	if err != nil {
		return fmt.Errorf("render tickets: %w", err)
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
	return err
}

func (a *app) writeStatistics(cmd *cobra.Command, result application.Result) error {
	if a.cfg.JSON {
		return writeJSON(cmd, result)
	}
	if result.Statistics == nil {
		return errors.New("no statistics available")
	}

	rendered, err := catalog.RenderStatistics(*result.Statistics, a.renderOptions(result.Mode))
	if err != nil {
		return fmt.Errorf("render statistics: %w", err)
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
	return err
}

func (a *app) writeDetail(cmd *cobra.Command, result application.Result) error {
	if a.cfg.JSON {
		return writeJSON(cmd, result)
	}
	if result.Detail == nil {
		return errors.New("no ticket detail available")
	}

	rendered, err := catalog.RenderDetail(*result.Detail, a.renderOptions(result.Mode))
	if err != nil {
		return fmt.Errorf("render ticket detail: %w", err)
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
	return err
}

// explain adds the next step to errors the user can act on.
func explain(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, domain.ErrLoginRequired):
		return fmt.Errorf("%w: ejecuta 'rf login' primero", err)
	case errors.Is(err, domain.ErrBackendUnavailable):
		return fmt.Errorf("%w: usa --offline para trabajar con datos locales", err)
	default:
		return err
	}
}

// prompt reads one trimmed line from in. EOF yields an empty answer.
func prompt(in io.Reader, out io.Writer, question string) (string, error) {
	if _, err := fmt.Fprint(out, question); err != nil {
		return "", err
	}

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read answer: %w", err)
	}
	return strings.TrimSpace(line), nil
}

func confirmed(answer string) bool {
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "s", "si", "sí", "y", "yes":
		return true
	default:
		return false
	}
}
