// Package setup bootstraps the obsctl config file.
package setup

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"

	"obsctl/internal/config"
	"obsctl/internal/output"
)

// Run interactively writes the config file. An existing file is left alone
// unless force is set.
func Run(out *output.Output, force bool) error {
	path, err := config.Path()
	if err != nil {
		return err
	}
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("config file already exists at %s (use --force to overwrite)", path)
	} else if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}

	out.Print(out.Bold("obsctl setup"))
	out.Print("Enter the obs-websocket connection details (Tools > WebSocket Server Settings in OBS).")

	reader := bufio.NewReader(os.Stdin)

	host, err := promptString(reader, "Host", "localhost")
	if err != nil {
		return err
	}
	port, err := promptPort(reader, config.DefaultPort)
	if err != nil {
		return err
	}
	password, err := promptPassword(reader)
	if err != nil {
		return err
	}

	cfg := config.Config{Host: host, Port: port, Password: password}
	if err := config.Save(cfg); err != nil {
		return err
	}
	out.Success("Wrote " + path)
	return nil
}

func promptString(reader *bufio.Reader, label, fallback string) (string, error) {
	fmt.Fprintf(os.Stdout, "%s [%s]: ", label, fallback)
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", err
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return fallback, nil
	}
	return line, nil
}

func promptPort(reader *bufio.Reader, fallback int) (int, error) {
	raw, err := promptString(reader, "Port", strconv.Itoa(fallback))
	if err != nil {
		return 0, err
	}
	port, err := strconv.Atoi(raw)
	if err != nil || port < 1 || port > 65535 {
		return 0, fmt.Errorf("invalid port %q", raw)
	}
	return port, nil
}

// promptPassword reads without echo when stdin is a terminal; piped input is
// read as a plain line. An empty password is valid (authentication off).
func promptPassword(reader *bufio.Reader) (string, error) {
	fmt.Fprint(os.Stdout, "Password (empty if authentication is disabled): ")
	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		b, err := term.ReadPassword(fd)
		fmt.Fprintln(os.Stdout)
		if err != nil {
			return "", err
		}
		return string(b), nil
	}
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}
