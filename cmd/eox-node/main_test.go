package main

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"math/big"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/freenetcoder/EOX/consensus"
	"github.com/freenetcoder/EOX/crypto"
	"github.com/freenetcoder/EOX/node"
)

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	return path
}

func TestRunDryRunOK(t *testing.T) {
	dir := t.TempDir()
	var out, errOut bytes.Buffer
	code := run([]string{"--dry-run", "--datadir", dir, "--log-level", "INFO"}, &out, &errOut)
	if code != 0 {
		t.Fatalf("expected exit code 0, got %d (stderr=%q)", code, errOut.String())
	}
	var cfg node.Config
	if err := json.Unmarshal(out.Bytes(), &cfg); err != nil {
		t.Fatalf("stdout is not config json: %v", err)
	}
	if cfg.DataDir != dir || cfg.LogLevel != "info" {
		t.Fatalf("unexpected config %+v", cfg)
	}
}

func TestRunRejectsInvalidConfig(t *testing.T) {
	var out, errOut bytes.Buffer
	if code := run([]string{"--dry-run", "--log-level", "loud"}, &out, &errOut); code != 2 {
		t.Fatalf("expected exit code 2, got %d", code)
	}
	if code := run([]string{"--bogus"}, &out, &errOut); code != 2 {
		t.Fatalf("expected exit code 2 for unknown flag, got %d", code)
	}
}

func TestRunConfigFileAndFlagOverride(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeFile(t, dir, "eox.yaml", "network: testnet\nlog_level: warn\ndata_dir: "+dir+"\n")

	var out, errOut bytes.Buffer
	code := run([]string{"--dry-run", "--config", cfgPath, "--log-level", "debug"}, &out, &errOut)
	if code != 0 {
		t.Fatalf("exit %d: %s", code, errOut.String())
	}
	var cfg node.Config
	if err := json.Unmarshal(out.Bytes(), &cfg); err != nil {
		t.Fatalf("json: %v", err)
	}
	if cfg.Network != "testnet" || cfg.LogLevel != "debug" || cfg.DataDir != dir {
		t.Fatalf("unexpected config %+v", cfg)
	}
}

func TestRunEmptyStore(t *testing.T) {
	var out, errOut bytes.Buffer
	code := run([]string{"--datadir", t.TempDir()}, &out, &errOut)
	if code != 0 {
		t.Fatalf("exit %d: %s", code, errOut.String())
	}
	if !strings.Contains(out.String(), "store: empty") {
		t.Fatalf("stdout=%q", out.String())
	}
}

func TestRunImportBlocksAndTxs(t *testing.T) {
	dir := t.TempDir()
	p := crypto.StdProvider{}

	k := consensus.NewKernel()
	k.Fee = 3
	body := &consensus.Body{}
	body.Kernels = []*consensus.Kernel{k}

	g := &consensus.FullHeader{}
	g.ChainWork = consensus.ChainWorkFromBig(big.NewInt(1))
	g.Kernels = consensus.KernelsRoot(p, body.Kernels)
	gid := g.ID(p)

	next := &consensus.FullHeader{}
	next.Height = 1
	next.Prev = gid.Hash
	next.ChainWork = consensus.ChainWorkFromBig(big.NewInt(2))

	blocks := hex.EncodeToString(consensus.AppendOptionalBody(consensus.MarshalFullHeader(g), body)) + "\n" +
		hex.EncodeToString(consensus.AppendOptionalBody(consensus.MarshalFullHeader(next), nil)) + "\n"
	blocksPath := writeFile(t, dir, "blocks.hex", blocks)

	tx := &consensus.Transaction{Eternal: consensus.Eternal{Kernels: []*consensus.Kernel{k}}}
	txsPath := writeFile(t, dir, "txs.hex", "# one tx\n"+hex.EncodeToString(consensus.MarshalTransaction(tx))+"\n")

	var out, errOut bytes.Buffer
	code := run([]string{
		"--datadir", filepath.Join(dir, "data"),
		"--import-blocks", blocksPath,
		"--import-txs", txsPath,
		"--show-chain", "5",
	}, &out, &errOut)
	if code != 0 {
		t.Fatalf("exit %d: %s", code, errOut.String())
	}
	nextHash := consensus.HeaderHash(p, next)
	if !strings.Contains(out.String(), "tip_height=1 tip_hash="+nextHash.String()) {
		t.Fatalf("stdout=%q", out.String())
	}
	if strings.Count(out.String(), "chain: ") != 2 {
		t.Fatalf("expected two chain lines: %q", out.String())
	}
	if !strings.Contains(errOut.String(), "blocks imported") {
		t.Fatalf("expected import log line: %q", errOut.String())
	}
}

func TestRunImportRejectsMalformed(t *testing.T) {
	dir := t.TempDir()
	bad := writeFile(t, dir, "blocks.hex", "00\n")
	var out, errOut bytes.Buffer
	code := run([]string{"--datadir", filepath.Join(dir, "data"), "--import-blocks", bad}, &out, &errOut)
	if code != 2 {
		t.Fatalf("expected exit 2, got %d", code)
	}
	if !strings.Contains(errOut.String(), string(consensus.ERR_TRUNCATED)) {
		t.Fatalf("stderr=%q", errOut.String())
	}
}
