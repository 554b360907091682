package server

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/amonks/lists/internal/config"
	internalstrings "github.com/amonks/lists/internal/strings"
)

// ResolveAddr returns the listen address. A non-blank flag value wins over the
// configuration; a bare port number listens on 127.0.0.1.
func ResolveAddr(cfg *config.Config, addr string) (string, error) {
	if !internalstrings.IsBlank(addr) {
		return normalizeAddr(addr)
	}
	if cfg == nil {
		cfg = config.Default()
	}
	if !internalstrings.IsBlank(cfg.Server.Addr) {
		return normalizeAddr(cfg.Server.Addr)
	}
	port := cfg.Server.Port
	if port == 0 {
		port = config.DefaultPort
	}
	return fmt.Sprintf("127.0.0.1:%d", port), nil
}

func normalizeAddr(addr string) (string, error) {
	trimmed := strings.TrimSpace(addr)
	if trimmed == "" {
		return "", fmt.Errorf("address is required")
	}
	if strings.Contains(trimmed, ":") {
		return trimmed, nil
	}
	port, err := strconv.Atoi(trimmed)
	if err != nil {
		return "", fmt.Errorf("invalid port %q", trimmed)
	}
	if port <= 0 || port > 65535 {
		return "", fmt.Errorf("port out of range: %d", port)
	}
	return fmt.Sprintf("127.0.0.1:%d", port), nil
}
