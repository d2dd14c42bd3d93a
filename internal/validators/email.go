package validators

import (
	"context"
	"net"
	"strings"
	"time"
)

// Resolver é o subconjunto de *net.Resolver usado aqui.
type Resolver interface {
	LookupMX(ctx context.Context, name string) ([]*net.MX, error)
	LookupHost(ctx context.Context, host string) ([]string, error)
}

const lookupTimeout = 3 * time.Second

// NormalizeEmail aplica trim + lowercase.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func EmailDomain(email string) string {
	at := strings.LastIndex(email, "@")
	if at < 0 || at == len(email)-1 {
		return ""
	}
	return email[at+1:]
}

// EmailDomainResolves aceita o domínio com registro MX ou, na falta, A/AAAA.
func EmailDomainResolves(ctx context.Context, r Resolver, email string) bool {
	domain := EmailDomain(email)
	if domain == "" {
		return false
	}
	if r == nil {
		r = net.DefaultResolver
	}

	ctx, cancel := context.WithTimeout(ctx, lookupTimeout)
	defer cancel()

	if mx, err := r.LookupMX(ctx, domain); err == nil && len(mx) > 0 {
		return true
	}
	if hosts, err := r.LookupHost(ctx, domain); err == nil && len(hosts) > 0 {
		return true
	}
	return false
}
