package main

import (
	"fmt"
	"net/netip"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"golang.org/x/time/rate"

	"github.com/naijatax/paye-calculator/internal/app/server"
	"github.com/naijatax/paye-calculator/internal/payroll"
)

// serveConfig holds the serve settings; flags win over PAYE_* environment variables
type serveConfig struct {
	addr           string
	storeDir       string
	rateLimit      float64
	burst          int
	trustedProxies []string
}

// proxies parses the trusted proxy list; bare addresses become single-host prefixes
func (c *serveConfig) proxies() ([]netip.Prefix, error) {
	out := make([]netip.Prefix, 0, len(c.trustedProxies))
	for _, raw := range c.trustedProxies {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		if !strings.Contains(raw, "/") {
			addr, err := netip.ParseAddr(raw)
			if err != nil {
				return nil, fmt.Errorf("invalid trusted proxy %q: %w", raw, err)
			}
			out = append(out, netip.PrefixFrom(addr, addr.BitLen()))
			continue
		}
		p, err := netip.ParsePrefix(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid trusted proxy %q: %w", raw, err)
		}
		out = append(out, p.Masked())
	}
	return out, nil
}

func (c *serveConfig) fromEnv(cmd *cobra.Command) error {
	if v, ok := os.LookupEnv("PAYE_ADDR"); ok && !cmd.Flags().Changed("addr") {
		c.addr = v
	}
	if v, ok := os.LookupEnv("PAYE_STORE_DIR"); ok && !cmd.Flags().Changed("store") {
		c.storeDir = v
	}
	if v, ok := os.LookupEnv("PAYE_RATE_LIMIT"); ok && !cmd.Flags().Changed("rate-limit") {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return err
		}
		c.rateLimit = f
	}
	if v, ok := os.LookupEnv("PAYE_RATE_BURST"); ok && !cmd.Flags().Changed("rate-burst") {
		n, err := strconv.Atoi(v)
		if err != nil {
			return err
		}
		c.burst = n
	}
	if v, ok := os.LookupEnv("PAYE_TRUSTED_PROXIES"); ok && !cmd.Flags().Changed("trusted-proxies") {
		c.trustedProxies = strings.Split(v, ",")
	}
	return nil
}

func (a *app) newServeCmd() *cobra.Command {
	var cfg serveConfig
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the JSON API",
		Long:  "Serve the JSON API. Settings may also come from PAYE_ADDR, PAYE_STORE_DIR, PAYE_RATE_LIMIT, PAYE_RATE_BURST and PAYE_TRUSTED_PROXIES, read from the environment or a .env file.",
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = godotenv.Load()
			if err := cfg.fromEnv(cmd); err != nil {
				return err
			}

			proxies, err := cfg.proxies()
			if err != nil {
				return err
			}

			var store payroll.Store = payroll.NewMemoryStore()
			if cfg.storeDir != "" {
				fs, err := payroll.NewFileStore(cfg.storeDir)
				if err != nil {
					return err
				}
				store = fs
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			router := server.NewRouter(a.engine, payroll.NewService(store, a.engine), a.log,
				server.WithRateLimit(rate.Limit(cfg.rateLimit), cfg.burst),
				server.WithTrustedProxies(proxies...))
			return server.Run(ctx, server.Config{Addr: cfg.addr}, router, a.log)
		},
	}
	cmd.Flags().StringVar(&cfg.addr, "addr", ":8080", "listen address")
	cmd.Flags().StringVar(&cfg.storeDir, "store", "", "directory for stored rosters (default in-memory)")
	cmd.Flags().Float64Var(&cfg.rateLimit, "rate-limit", 10, "requests per second per caller, 0 disables")
	cmd.Flags().IntVar(&cfg.burst, "rate-burst", 20, "burst size per caller")
	cmd.Flags().StringSliceVar(&cfg.trustedProxies, "trusted-proxies", nil, "proxy addresses or CIDRs whose X-Forwarded-For is honoured")
	return cmd
}
