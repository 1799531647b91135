package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"

	"github.com/suparena/addressregistry"
	"github.com/suparena/addressregistry/config"
	"github.com/suparena/addressregistry/statestore/ddb"
)

var (
	versionFlag = flag.Bool("version", false, "Show version information")
	vFlag       = flag.Bool("v", false, "Show version information (short)")
	configFlag  = flag.String("config", "addressreg.yaml", "Path to the YAML configuration file")
)

func usage() {
	fmt.Fprintf(os.Stderr, `Usage: addressreg [flags] <command> [args]

Commands:
  register <address>          Register an address
  resolve-addr <address>      Resolve an address to its id
  resolve-id <id>             Resolve an id to its address
  counter                     Print the current counter
  check <id> <address>        Verify that the id resolves to the address
  entries                     List all registered entries

Flags:
`)
	flag.PrintDefaults()
}

func main() {
	flag.Usage = usage
	// Parse flags early to catch version flag
	flag.Parse()

	// Handle version flag
	if *versionFlag || *vFlag {
		info := addressregistry.GetVersionInfo()
		fmt.Printf("AddressRegistry version %s\n", info.Version)
		fmt.Printf("Git commit: %s\n", info.GitCommit)
		fmt.Printf("Build date: %s\n", info.BuildDate)
		fmt.Printf("Go version: %s\n", info.GoVersion)
		os.Exit(0)
	}

	if flag.NArg() == 0 {
		usage()
		os.Exit(2)
	}

	if err := run(flag.Arg(0), flag.Args()[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "addressreg: %v\n", err)
		os.Exit(1)
	}
}

func run(command string, args []string) error {
	cfg, err := config.Load(*configFlag)
	if err != nil {
		return err
	}
	logger := newLogger(cfg.Log)
	logger = logger.With("invocation", uuid.NewString())

	creds, err := config.LoadCredentials()
	if err != nil {
		return err
	}
	store, err := ddb.NewRegistryStore(creds.AccessKey, creds.SecretKey, cfg.AWS.Region, cfg.AWS.Table, logger)
	if err != nil {
		return err
	}

	initialCounter, err := addressregistry.ParseID(cfg.Registry.InitialCounter)
	if err != nil {
		return err
	}

	ctx := context.Background()
	reg, err := addressregistry.LoadPersistent(ctx, store, initialCounter)
	if err != nil {
		return err
	}
	logger.Info("registry loaded", "entries", len(reg.Entries()), "counter", reg.Counter().Key())

	switch command {
	case "register":
		return runRegister(ctx, reg, args)
	case "resolve-addr":
		return runResolveAddr(reg, args)
	case "resolve-id":
		return runResolveID(reg, args)
	case "counter":
		fmt.Println(reg.Counter().Key())
		return nil
	case "check":
		return runCheck(reg, args)
	case "entries":
		for _, entry := range reg.Entries() {
			fmt.Printf("%s\t%s\n", entry.ID.Key(), entry.Address)
		}
		return nil
	default:
		return fmt.Errorf("unknown command %q", command)
	}
}

func runRegister(ctx context.Context, reg *addressregistry.PersistentRegistry, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("register requires exactly one address argument")
	}
	addr, err := addressregistry.ParseAddress(args[0])
	if err != nil {
		return err
	}
	if err := reg.RegisterAddress(ctx, addressregistry.DirectCall(addr), addr); err != nil {
		return err
	}
	id, err := reg.AddressToID(addr)
	if err != nil {
		return err
	}
	fmt.Printf("registered %s as id %s\n", addr, id.Key())
	return nil
}

func runResolveAddr(reg *addressregistry.PersistentRegistry, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("resolve-addr requires exactly one address argument")
	}
	addr, err := addressregistry.ParseAddress(args[0])
	if err != nil {
		return err
	}
	id, err := reg.AddressToID(addr)
	if err != nil {
		return err
	}
	fmt.Println(id.Key())
	return nil
}

func runResolveID(reg *addressregistry.PersistentRegistry, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("resolve-id requires exactly one id argument")
	}
	id, err := addressregistry.ParseID(args[0])
	if err != nil {
		return err
	}
	addr, err := reg.IDToAddress(id)
	if err != nil {
		return err
	}
	fmt.Println(addr)
	return nil
}

func runCheck(reg *addressregistry.PersistentRegistry, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("check requires an id and an address argument")
	}
	id, err := addressregistry.ParseID(args[0])
	if err != nil {
		return err
	}
	addr, err := addressregistry.ParseAddress(args[1])
	if err != nil {
		return err
	}
	if err := reg.CheckIDEqualsAddress(id, addr); err != nil {
		return err
	}
	fmt.Printf("id %s resolves to %s\n", id.Key(), addr)
	return nil
}

func newLogger(cfg config.LogConfig) *slog.Logger {
	var level slog.Level
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}
	return slog.New(handler)
}
