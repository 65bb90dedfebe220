package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/atomicstack/nestedmenu/internal/app"
	"github.com/atomicstack/nestedmenu/internal/geometry"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath string
	Trace    bool
	Level    string
}

const (
	envItems       = "NESTEDMENU_ITEMS"
	envPlacement   = "NESTEDMENU_PLACEMENT"
	envDirection   = "NESTEDMENU_DIR"
	envOpenPath    = "NESTEDMENU_OPEN_PATH"
	envStartOpen   = "NESTEDMENU_START_OPEN"
	envWidth       = "NESTEDMENU_WIDTH"
	envHeight      = "NESTEDMENU_HEIGHT"
	envTrace       = "NESTEDMENU_TRACE"
	envLogFile     = "NESTEDMENU_LOG_FILE"
	envLogLevel    = "NESTEDMENU_LOG_LEVEL"
	envMetricsAddr = "NESTEDMENU_METRICS_ADDR"
	envWatch       = "NESTEDMENU_WATCH"
)

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := flag.NewFlagSet("nestedmenu", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	items := fs.String("items", envOrDefault(env, envItems, ""), "path to a YAML or JSON menu definition (empty uses the built-in demo)")
	placement := fs.String("placement", envOrDefault(env, envPlacement, string(geometry.DefaultPlacement)), "root panel placement: top, bottom, start or end")
	dir := fs.String("dir", envOrDefault(env, envDirection, app.DirectionAuto), "text direction: ltr, rtl or auto (from LANG)")
	open := fs.String("open", envOrDefault(env, envOpenPath, ""), "comma separated ids or labels of submenus to expand initially")
	startOpen := fs.Bool("start-open", envOrBool(env, envStartOpen, false), "open the menu on startup")
	width := fs.Int("width", envOrInt(env, envWidth, 0), "desired viewport width in cells (0 uses terminal width)")
	height := fs.Int("height", envOrInt(env, envHeight, 0), "desired viewport height in rows (0 uses terminal height)")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")
	logLevel := fs.String("log-level", envOrDefault(env, envLogLevel, "info"), "minimum log level: debug, info, warn or error")
	watch := fs.Bool("watch", envOrBool(env, envWatch, false), "reload the menu definition when the -items file changes")
	list := fs.Bool("list", false, "print the menu tree and exit")
	metricsAddr := fs.String("metrics-addr", envOrDefault(env, envMetricsAddr, ""), "serve Prometheus metrics on this address (empty disables)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if *width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", *width)
	}
	if *height < 0 {
		return Config{}, fmt.Errorf("height must be >= 0 (got %d)", *height)
	}

	cfg := Config{
		App: app.Config{
			ItemsPath:   *items,
			Placement:   geometry.Placement(strings.ToLower(strings.TrimSpace(*placement))),
			Direction:   strings.ToLower(strings.TrimSpace(*dir)),
			OpenPath:    splitList(*open),
			StartOpen:   *startOpen,
			Width:       *width,
			Height:      *height,
			MetricsAddr: *metricsAddr,
			Watch:       *watch,
			List:        *list,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
			Level:    *logLevel,
		},
		Flags: map[string]string{
			"items":       *items,
			"placement":   *placement,
			"dir":         *dir,
			"open":        *open,
			"startOpen":   strconv.FormatBool(*startOpen),
			"width":       strconv.Itoa(*width),
			"height":      strconv.Itoa(*height),
			"trace":       strconv.FormatBool(*trace),
			"logFile":     *logFile,
			"logLevel":    *logLevel,
			"metricsAddr": *metricsAddr,
			"watch":       strconv.FormatBool(*watch),
			"list":        strconv.FormatBool(*list),
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

func splitList(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate rejects placements and directions the application cannot honour.
func Validate(cfg Config) error {
	if _, err := geometry.ParsePlacement(string(cfg.App.Placement)); err != nil {
		return err
	}
	switch cfg.App.Direction {
	case "", app.DirectionAuto:
	default:
		if _, err := geometry.ParseDirection(cfg.App.Direction); err != nil {
			return err
		}
	}
	if cfg.App.Watch && strings.TrimSpace(cfg.App.ItemsPath) == "" {
		return fmt.Errorf("-watch requires -items")
	}
	switch strings.ToLower(strings.TrimSpace(cfg.Logging.Level)) {
	case "", "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("unknown log level %q", cfg.Logging.Level)
	}
	return nil
}
