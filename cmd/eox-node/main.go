package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/pflag"

	"github.com/freenetcoder/EOX/consensus"
	"github.com/freenetcoder/EOX/crypto"
	"github.com/freenetcoder/EOX/node"
	"github.com/freenetcoder/EOX/node/store"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

type options struct {
	cfg          node.Config
	configPath   string
	importBlocks string
	importTxs    string
	showChain    int
	dryRun       bool
}

func parseArgs(args []string, stderr io.Writer) (options, error) {
	defaults := node.DefaultConfig()
	var opts options
	cfg := defaults

	fs := pflag.NewFlagSet("eox-node", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.configPath, "config", "", "YAML config file; flags given explicitly override it")
	fs.StringVar(&cfg.Network, "network", defaults.Network, "network name (devnet/testnet/mainnet)")
	fs.StringVar(&cfg.DataDir, "datadir", defaults.DataDir, "node data directory")
	fs.StringVar(&cfg.LogLevel, "log-level", defaults.LogLevel, "log level: debug|info|warn|error")
	fs.BoolVar(&cfg.Compress, "compress", defaults.Compress, "zstd-compress stored blocks and transactions")
	fs.StringVar(&opts.importBlocks, "import-blocks", "", "file of hex blocks, one per line: full header then optional body")
	fs.StringVar(&opts.importTxs, "import-txs", "", "file of hex transactions, one per line")
	fs.IntVar(&opts.showChain, "show-chain", 0, "print up to N best-chain headers from the tip")
	fs.BoolVar(&opts.dryRun, "dry-run", false, "print effective config and exit")
	if err := fs.Parse(args); err != nil {
		return opts, err
	}

	if opts.configPath != "" {
		fileCfg, err := node.LoadConfig(opts.configPath)
		if err != nil {
			return opts, err
		}
		if !fs.Changed("network") {
			cfg.Network = fileCfg.Network
		}
		if !fs.Changed("datadir") {
			cfg.DataDir = fileCfg.DataDir
		}
		if !fs.Changed("log-level") {
			cfg.LogLevel = fileCfg.LogLevel
		}
		if !fs.Changed("compress") {
			cfg.Compress = fileCfg.Compress
		}
	}
	cfg.Network = strings.ToLower(strings.TrimSpace(cfg.Network))
	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))
	opts.cfg = cfg
	return opts, nil
}

func run(args []string, stdout, stderr io.Writer) int {
	opts, err := parseArgs(args, stderr)
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "invalid arguments: %v\n", err)
		return 2
	}
	cfg := opts.cfg
	if err := node.ValidateConfig(cfg); err != nil {
		_, _ = fmt.Fprintf(stderr, "invalid config: %v\n", err)
		return 2
	}
	if opts.dryRun {
		if err := printConfig(stdout, cfg); err != nil {
			_, _ = fmt.Fprintf(stderr, "config encode failed: %v\n", err)
			return 1
		}
		return 0
	}

	logger, err := node.NewLogger(stderr, cfg)
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "invalid config: %v\n", err)
		return 2
	}

	db, err := store.Open(cfg.DataDir, store.Options{
		Network:  cfg.Network,
		Compress: cfg.Compress,
		Provider: crypto.StdProvider{},
		Logger:   logger,
	})
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "store open failed: %v\n", err)
		return 2
	}
	defer func() { _ = db.Close() }()

	if opts.importBlocks != "" {
		n, err := importBlocks(db, opts.importBlocks)
		if err != nil {
			_, _ = fmt.Fprintf(stderr, "import blocks: %v\n", err)
			return 2
		}
		logger.Info("blocks imported", "count", n, "file", opts.importBlocks)
	}
	if opts.importTxs != "" {
		n, err := importTxs(db, opts.importTxs)
		if err != nil {
			_, _ = fmt.Fprintf(stderr, "import txs: %v\n", err)
			return 2
		}
		logger.Info("transactions imported", "count", n, "file", opts.importTxs)
	}

	tip, ok, err := db.Tip()
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "store tip read failed: %v\n", err)
		return 2
	}
	if !ok {
		_, _ = fmt.Fprintln(stdout, "store: empty")
		return 0
	}
	_, _ = fmt.Fprintf(stdout, "store: tip_height=%d tip_hash=%s chain_work=%s\n", tip.ID.Height, tip.ID.Hash, tip.ChainWork.Big())

	if opts.showChain > 0 {
		chain, err := db.BestChain(opts.showChain)
		if err != nil {
			_, _ = fmt.Fprintf(stderr, "best chain read failed: %v\n", err)
			return 2
		}
		for _, id := range chain {
			_, _ = fmt.Fprintf(stdout, "chain: height=%d hash=%s\n", id.Height, id.Hash)
		}
	}
	return 0
}

// importBlocks stores each record's header, then its body when present.
func importBlocks(db *store.DB, path string) (int, error) {
	recs, err := node.ReadHexRecords(path)
	if err != nil {
		return 0, err
	}
	for i, rec := range recs {
		h, n, err := consensus.ParseFullHeader(rec)
		if err != nil {
			return i, fmt.Errorf("record %d header: %w", i, err)
		}
		body, m, err := consensus.ParseOptionalBody(rec[n:])
		if err != nil {
			return i, fmt.Errorf("record %d body: %w", i, err)
		}
		if n+m != len(rec) {
			return i, fmt.Errorf("record %d: %d trailing bytes", i, len(rec)-n-m)
		}
		id, err := db.PutHeader(h)
		if err != nil {
			return i, err
		}
		if body != nil {
			if err := db.PutBody(id.Hash, body); err != nil {
				return i, fmt.Errorf("record %d: %w", i, err)
			}
		}
	}
	return len(recs), nil
}

func importTxs(db *store.DB, path string) (int, error) {
	recs, err := node.ReadHexRecords(path)
	if err != nil {
		return 0, err
	}
	for i, rec := range recs {
		tx, err := consensus.DecodeTransaction(rec)
		if err != nil {
			return i, fmt.Errorf("record %d: %w", i, err)
		}
		if _, err := db.PutTransaction(tx); err != nil {
			return i, err
		}
	}
	return len(recs), nil
}

func printConfig(w io.Writer, cfg node.Config) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(cfg)
}
