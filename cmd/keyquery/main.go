// keyquery - Global keyboard state from the command line
//
//	keyquery watch     Print held keys until the exit key or Ctrl+C
//	keyquery devices   List input devices (Linux)
//	keyquery check     Report whether key state can be read
//	keyquery keys      List key names
//	keyquery init-config  Write a default config file
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"keyquery/internal/config"
	"keyquery/internal/logging"
	"keyquery/pkg/keyquery"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	var err error
	switch cmd {
	case "watch":
		err = cmdWatch(args)
	case "devices":
		err = cmdDevices(args)
	case "check":
		err = cmdCheck(args)
	case "keys":
		cmdKeys()
	case "init-config":
		err = cmdInitConfig(args)
	case "help", "-h", "--help":
		usage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", cmd)
		usage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Println(`keyquery - Global keyboard state queries

USAGE:
    keyquery <command> [options]

COMMANDS:
    watch               Print held keys whenever they change
    devices             List input devices and whether they look like keyboards
    check               Report whether key state can be read on this machine
    keys                List every supported key name
    init-config         Write a default config file unless one exists
    help                Show this help message

INIT-CONFIG OPTIONS:
    -path <path>        Target file; the extension picks TOML, JSON or YAML
                        (default: config.toml in the user config dir)

WATCH OPTIONS:
    -config <path>      Config file (default: ./config.toml or the user config dir)
    -keys <list>        Comma-separated keys to report (default: all)
    -interval <dur>     Query interval (default: 50ms)
    -exit <key>         Key that ends the command (default: esc, "" disables)
    -hotplug            Follow keyboards plugged in later (Linux)

PERMISSIONS:
    Linux     read access to /dev/input/event* ('input' group or root)
    macOS     Input Monitoring (System Settings > Privacy & Security)
    Windows   none

ENVIRONMENT:
    KEYQUERY_LOG_LEVEL, KEYQUERY_WATCH_KEYS, KEYQUERY_HOTPLUG and the other
    KEYQUERY_* variables override the config file.`)
}

func cmdWatch(args []string) error {
	fs := flag.NewFlagSet("watch", flag.ExitOnError)
	configPath := fs.String("config", "", "config file")
	keysFlag := fs.String("keys", "", "comma-separated keys to report")
	interval := fs.Duration("interval", 0, "query interval")
	exitFlag := fs.String("exit", "", "exit key")
	hotplug := fs.Bool("hotplug", false, "follow keyboards plugged in later")
	fs.Parse(args)

	path := *configPath
	if path == "" {
		path = config.FindConfigFile()
	}
	loader := config.NewLoader(path)
	cfg, err := loader.Load()
	if err != nil {
		return fmt.Errorf("load config %s: %w", loader.Path(), err)
	}

	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	if set["keys"] {
		cfg.Watch.Keys = splitKeys(*keysFlag)
	}
	if set["interval"] {
		cfg.Watch.QueryIntervalMs = int(interval.Milliseconds())
	}
	if set["exit"] {
		cfg.Watch.ExitKey = *exitFlag
	}
	if set["hotplug"] {
		cfg.Input.Hotplug = *hotplug
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	keys, err := cfg.WatchKeys()
	if err != nil {
		return err
	}
	exitKey, hasExit, err := cfg.ExitKey()
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.LoggingConfig())
	if err != nil {
		return fmt.Errorf("setup logging: %w", err)
	}
	defer logger.Close()
	logging.SetDefault(logger)

	if _, statErr := os.Stat(loader.Path()); statErr == nil {
		loader.OnChange(func(c *config.Config) {
			if level, err := logging.ParseLevel(c.Logging.Level); err == nil && level != logger.Level() {
				logger.SetLevel(level)
				logger.Info("log level changed", "level", logging.LevelString(level))
			}
		})
		if err := loader.Watch(); err != nil {
			logger.Warn("config hot reload disabled", "error", err)
		}
		defer loader.Close()
	}

	opts := append(cfg.HandlerOptions(), keyquery.WithLogger(logger.WithComponent("keyquery").Logger))
	h, err := keyquery.New(opts...)
	if err != nil {
		return fmt.Errorf("open keyboard state: %w", err)
	}
	defer h.Close()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	if hasExit {
		fmt.Printf("Watching %d keys. Press %s or Ctrl+C to stop.\n", len(keys), exitKey.ShortName())
	} else {
		fmt.Printf("Watching %d keys. Press Ctrl+C to stop.\n", len(keys))
	}

	ticker := time.NewTicker(cfg.QueryInterval())
	defer ticker.Stop()

	var last []keyquery.KeyCode
	for {
		select {
		case <-sigChan:
			fmt.Println()
			fmt.Println("Received interrupt signal, stopping...")
			return nil

		case err := <-loader.Errors():
			logger.Warn("config reload rejected", "error", err)

		case now := <-ticker.C:
			h.UpdateInputs()
			if hasExit && h.IsPressed(exitKey) {
				fmt.Printf("%s pressed, stopping...\n", exitKey.ShortName())
				return nil
			}

			held := pressedAmong(h, keys)
			if !sameKeys(held, last) {
				fmt.Printf("%s  %s\n", now.Format("15:04:05.000"), formatKeys(held))
				last = held
			}
		}
	}
}

func splitKeys(list string) []string {
	var names []string
	for _, name := range strings.Split(list, ",") {
		if name = strings.TrimSpace(name); name != "" {
			names = append(names, name)
		}
	}
	return names
}

// pressedAmong returns the keys of interest that h reports as held.
func pressedAmong(h keyquery.InputHandler, keys []keyquery.KeyCode) []keyquery.KeyCode {
	var held []keyquery.KeyCode
	for _, k := range keys {
		if h.IsPressed(k) {
			held = append(held, k)
		}
	}
	return held
}

func sameKeys(a, b []keyquery.KeyCode) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func formatKeys(keys []keyquery.KeyCode) string {
	if len(keys) == 0 {
		return "(none)"
	}
	names := make([]string, len(keys))
	for i, k := range keys {
		names[i] = k.ShortName()
	}
	return strings.Join(names, " + ")
}

func cmdDevices(args []string) error {
	fs := flag.NewFlagSet("devices", flag.ExitOnError)
	dir := fs.String("dir", "", "event device directory (default /dev/input)")
	fs.Parse(args)

	infos, err := keyquery.ListDevices(*dir)
	if err != nil {
		return err
	}
	if len(infos) == 0 {
		fmt.Println("No input devices found.")
		return nil
	}

	fmt.Printf("%-24s %-9s %s\n", "PATH", "KEYBOARD", "NAME")
	for _, info := range infos {
		fmt.Printf("%-24s %-9s %s\n", info.Path, deviceKind(info), deviceName(info))
	}
	return nil
}

func deviceKind(info keyquery.DeviceInfo) string {
	switch {
	case !info.Probed:
		return "?"
	case info.Keyboard:
		return "yes"
	default:
		return "no"
	}
}

func deviceName(info keyquery.DeviceInfo) string {
	if !info.Probed {
		return "(not readable)"
	}
	return info.Name
}

func cmdCheck(args []string) error {
	fs := flag.NewFlagSet("check", flag.ExitOnError)
	prompt := fs.Bool("prompt", false, "ask the OS for access if missing (macOS)")
	fs.Parse(args)

	fmt.Print("Checking key state access... ")
	ok, msg := keyquery.Available()
	if ok {
		fmt.Println("OK")
		fmt.Println(msg)
		return nil
	}
	fmt.Println("DENIED")
	fmt.Println(msg)

	if *prompt {
		fmt.Println()
		fmt.Println("Requesting access...")
		ok, msg = keyquery.RequestAccess()
		fmt.Println(msg)
		if ok {
			return nil
		}
	}
	return keyquery.ErrPermissionDenied
}

func cmdKeys() {
	for _, k := range keyquery.AllKeyCodes() {
		fmt.Printf("%-14s %s\n", k.ShortName(), k)
	}
}

func cmdInitConfig(args []string) error {
	fs := flag.NewFlagSet("init-config", flag.ExitOnError)
	path := fs.String("path", "", "config file to create")
	fs.Parse(args)

	target := *path
	if target == "" {
		target = config.ConfigPath()
	}
	cfg, created, err := config.LoadOrCreate(target)
	if err != nil {
		return err
	}

	if created {
		fmt.Printf("Wrote default config to %s\n", target)
	} else {
		fmt.Printf("Config already exists at %s (version %d)\n", target, cfg.Version)
	}
	return nil
}
