// Package resolver turns player-entered identifiers (raw addresses, .eth
// names, .base.eth names) into wallet addresses. Both upstream lookup
// services are best-effort: any transport failure, timeout, or malformed
// response degrades to "unresolved" rather than an error.
package resolver

import (
	"context"
	"log/slog"
	"strings"

	"github.com/dinklabs/dinkpass/wallet"
)

const (
	baseNameSuffix = ".base.eth"
	ensNameSuffix  = ".eth"
)

// Lookup resolves a single name against one external service. Implementations
// return an error for transport or decoding failures; the Resolver swallows
// those into an unresolved result.
type Lookup interface {
	Resolve(ctx context.Context, name string) (string, error)
}

// Resolver chains the address fast path and the two external lookups.
type Resolver struct {
	base   Lookup
	ens    Lookup
	logger *slog.Logger
}

func New(base, ens Lookup, logger *slog.Logger) *Resolver {
	return &Resolver{base: base, ens: ens, logger: logger}
}

// Resolve returns the checksummed address for input, or "" if it cannot be
// resolved. A well-formed address is returned (normalized) without any
// network call. Base names are tried before plain ENS names because
// ".base.eth" also matches the ".eth" suffix.
func (r *Resolver) Resolve(ctx context.Context, input string) string {
	input = strings.TrimSpace(input)
	if input == "" {
		return ""
	}

	if wallet.IsValid(input) {
		return wallet.Checksum(input)
	}

	if strings.HasSuffix(input, baseNameSuffix) {
		if addr := r.lookup(ctx, r.base, "base", input); addr != "" {
			return addr
		}
	}

	if strings.HasSuffix(input, ensNameSuffix) {
		if addr := r.lookup(ctx, r.ens, "ens", input); addr != "" {
			return addr
		}
	}

	return ""
}

func (r *Resolver) lookup(ctx context.Context, svc Lookup, kind, name string) string {
	addr, err := svc.Resolve(ctx, name)
	if err != nil {
		r.logger.Warn("name resolution failed", slog.String("resolver", kind), slog.String("name", name), slog.Any("error", err))
		return ""
	}
	if !wallet.IsValid(addr) {
		return ""
	}
	return wallet.Checksum(addr)
}
