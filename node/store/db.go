package store

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/freenetcoder/EOX/consensus"
	"github.com/freenetcoder/EOX/crypto"
)

var (
	bucketBlocks = []byte("blocks_by_hash")
	bucketIndex  = []byte("index_by_hash")
	bucketTxs    = []byte("txs_by_id")
	bucketMeta   = []byte("meta")

	keyTip = []byte("tip")
)

var (
	ErrUnknownHeader   = errors.New("store: unknown header")
	ErrKernelsMismatch = errors.New("store: body kernels do not match header")
)

type Options struct {
	Network  string
	Compress bool
	Provider crypto.CryptoProvider
	Logger   *slog.Logger
}

// DB stores encoded headers, bodies and standalone transactions. Each block
// record is a full header followed by an optional body, so a header may be
// stored before its body arrives.
type DB struct {
	chainDir string
	db       *bolt.DB
	manifest *Manifest
	p        crypto.CryptoProvider
	log      *slog.Logger
	compress bool
}

func Open(datadir string, opts Options) (*DB, error) {
	if datadir == "" {
		return nil, fmt.Errorf("datadir required")
	}
	if opts.Network == "" {
		return nil, fmt.Errorf("network required")
	}
	if opts.Provider == nil {
		opts.Provider = crypto.StdProvider{}
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}

	chainDir := ChainDir(datadir, opts.Network)
	if err := ensureDir(filepath.Join(chainDir, "db")); err != nil {
		return nil, err
	}

	m, err := readManifest(chainDir)
	switch {
	case err == nil:
		if err := checkManifest(m, opts.Network); err != nil {
			return nil, err
		}
	case os.IsNotExist(err):
		m = &Manifest{SchemaVersion: SchemaVersionV1, Network: opts.Network, Compress: opts.Compress}
		if err := writeManifestAtomic(chainDir, m); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("read manifest: %w", err)
	}

	path := filepath.Join(chainDir, "db", "kv.db")
	bdb, err := bolt.Open(path, 0o600, &bolt.Options{
		Timeout: 1 * time.Second,
	})
	if err != nil {
		return nil, fmt.Errorf("open bbolt: %w", err)
	}

	if err := bdb.Update(func(tx *bolt.Tx) error {
		for _, b := range [][]byte{bucketBlocks, bucketIndex, bucketTxs, bucketMeta} {
			if _, err := tx.CreateBucketIfNotExists(b); err != nil {
				return fmt.Errorf("create bucket %s: %w", string(b), err)
			}
		}
		return nil
	}); err != nil {
		_ = bdb.Close()
		return nil, err
	}

	d := &DB{
		chainDir: chainDir,
		db:       bdb,
		manifest: m,
		p:        opts.Provider,
		log:      opts.Logger.With("network", opts.Network),
		compress: opts.Compress,
	}
	d.log.Debug("store opened", "path", path, "compress", opts.Compress)
	return d, nil
}

func (d *DB) Close() error {
	if d == nil || d.db == nil {
		return nil
	}
	return d.db.Close()
}

func (d *DB) ChainDir() string { return d.chainDir }

func (d *DB) Manifest() *Manifest {
	if d == nil {
		return nil
	}
	return d.manifest
}

// PutHeader stores h, indexes it and advances the tip when h carries more
// work. Re-storing a known header keeps any body already attached.
func (d *DB) PutHeader(h *consensus.FullHeader) (consensus.HeaderID, error) {
	id := h.ID(d.p)
	err := d.db.Update(func(tx *bolt.Tx) error {
		var body *consensus.Body
		if v := tx.Bucket(bucketBlocks).Get(id.Hash[:]); v != nil {
			_, old, err := d.decodeBlock(v)
			if err != nil {
				return err
			}
			body = old
		}
		if err := d.putBlock(tx, id, h, body); err != nil {
			return err
		}
		return d.maybeAdvanceTip(tx, id, h.ChainWork)
	})
	if err != nil {
		return consensus.HeaderID{}, err
	}
	d.log.Debug("header stored", "height", id.Height, "hash", id.Hash)
	return id, nil
}

// PutBody attaches body to a stored header. The body's kernels must commit
// to the header's kernel root.
func (d *DB) PutBody(hash crypto.Hash, body *consensus.Body) error {
	err := d.db.Update(func(tx *bolt.Tx) error {
		v := tx.Bucket(bucketBlocks).Get(hash[:])
		if v == nil {
			return fmt.Errorf("%w: %s", ErrUnknownHeader, hash)
		}
		h, _, err := d.decodeBlock(v)
		if err != nil {
			return err
		}
		if root := consensus.KernelsRoot(d.p, body.Kernels); root != h.Kernels {
			return fmt.Errorf("%w: root %s, header %s", ErrKernelsMismatch, root, h.Kernels)
		}
		return d.putBlock(tx, consensus.HeaderID{Height: h.Height, Hash: hash}, h, body)
	})
	if err != nil {
		return err
	}
	d.log.Debug("body stored", "hash", hash, "kernels", len(body.Kernels))
	return nil
}

func (d *DB) putBlock(tx *bolt.Tx, id consensus.HeaderID, h *consensus.FullHeader, body *consensus.Body) error {
	enc := consensus.AppendOptionalBody(consensus.MarshalFullHeader(h), body)
	if err := tx.Bucket(bucketBlocks).Put(id.Hash[:], packValue(enc, d.compress)); err != nil {
		return err
	}
	rec, err := encodeRecord(IndexEntry{
		Height:    h.Height,
		Prev:      h.Prev,
		ChainWork: h.ChainWork,
		HasBody:   body != nil,
	})
	if err != nil {
		return err
	}
	return tx.Bucket(bucketIndex).Put(id.Hash[:], rec)
}

func (d *DB) decodeBlock(v []byte) (*consensus.FullHeader, *consensus.Body, error) {
	raw, err := unpackValue(v)
	if err != nil {
		return nil, nil, err
	}
	h, n, err := consensus.ParseFullHeader(raw)
	if err != nil {
		return nil, nil, fmt.Errorf("stored header: %w", err)
	}
	body, m, err := consensus.ParseOptionalBody(raw[n:])
	if err != nil {
		return nil, nil, fmt.Errorf("stored body: %w", err)
	}
	if n+m != len(raw) {
		return nil, nil, fmt.Errorf("stored block: %d trailing bytes", len(raw)-n-m)
	}
	return h, body, nil
}

// GetBlock returns the header stored under hash and its body, which is nil
// when only the header is known.
func (d *DB) GetBlock(hash crypto.Hash) (*consensus.FullHeader, *consensus.Body, bool, error) {
	var (
		h    *consensus.FullHeader
		body *consensus.Body
	)
	err := d.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket(bucketBlocks).Get(hash[:])
		if v == nil {
			return nil
		}
		var err error
		h, body, err = d.decodeBlock(v)
		return err
	})
	if err != nil {
		return nil, nil, false, err
	}
	if h == nil {
		return nil, nil, false, nil
	}
	return h, body, true, nil
}

func (d *DB) GetHeader(hash crypto.Hash) (*consensus.FullHeader, bool, error) {
	h, _, ok, err := d.GetBlock(hash)
	return h, ok, err
}

func (d *DB) GetIndex(hash crypto.Hash) (*IndexEntry, bool, error) {
	var out *IndexEntry
	err := d.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket(bucketIndex).Get(hash[:])
		if v == nil {
			return nil
		}
		var e IndexEntry
		if err := decodeRecord(v, &e); err != nil {
			return err
		}
		out = &e
		return nil
	})
	if err != nil {
		return nil, false, err
	}
	if out == nil {
		return nil, false, nil
	}
	return out, true, nil
}

// PutTransaction stores a standalone transaction under its TxID.
func (d *DB) PutTransaction(t *consensus.Transaction) (crypto.Hash, error) {
	enc := consensus.MarshalTransaction(t)
	id := crypto.Hash(d.p.SHA3_256(enc))
	err := d.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketTxs).Put(id[:], packValue(enc, d.compress))
	})
	if err != nil {
		return crypto.Hash{}, err
	}
	d.log.Debug("transaction stored", "id", id, "bytes", len(enc))
	return id, nil
}

func (d *DB) GetTransaction(id crypto.Hash) (*consensus.Transaction, bool, error) {
	var out *consensus.Transaction
	err := d.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket(bucketTxs).Get(id[:])
		if v == nil {
			return nil
		}
		raw, err := unpackValue(v)
		if err != nil {
			return err
		}
		t, err := consensus.DecodeTransaction(raw)
		if err != nil {
			return fmt.Errorf("stored transaction: %w", err)
		}
		out = t
		return nil
	})
	if err != nil {
		return nil, false, err
	}
	if out == nil {
		return nil, false, nil
	}
	return out, true, nil
}

func (d *DB) maybeAdvanceTip(tx *bolt.Tx, id consensus.HeaderID, work consensus.ChainWork) error {
	meta := tx.Bucket(bucketMeta)
	if v := meta.Get(keyTip); v != nil {
		var cur Tip
		if err := decodeRecord(v, &cur); err != nil {
			return err
		}
		if !consensus.BetterTip(work, id, cur.ChainWork, cur.ID) {
			return nil
		}
	}
	rec, err := encodeRecord(Tip{ID: id, ChainWork: work})
	if err != nil {
		return err
	}
	if err := meta.Put(keyTip, rec); err != nil {
		return err
	}
	d.log.Info("tip advanced", "height", id.Height, "hash", id.Hash, "work", work.Big())
	return nil
}

// Tip returns the best stored header by chain work.
func (d *DB) Tip() (*Tip, bool, error) {
	var out *Tip
	err := d.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket(bucketMeta).Get(keyTip)
		if v == nil {
			return nil
		}
		var t Tip
		if err := decodeRecord(v, &t); err != nil {
			return err
		}
		out = &t
		return nil
	})
	if err != nil {
		return nil, false, err
	}
	if out == nil {
		return nil, false, nil
	}
	return out, true, nil
}

// BestChain walks back from the tip through stored predecessors and returns
// at most limit header IDs, tip first. The walk stops at the first unknown
// predecessor.
func (d *DB) BestChain(limit int) ([]consensus.HeaderID, error) {
	tip, ok, err := d.Tip()
	if err != nil || !ok {
		return nil, err
	}
	var out []consensus.HeaderID
	err = d.db.View(func(tx *bolt.Tx) error {
		idx := tx.Bucket(bucketIndex)
		id := tip.ID
		for len(out) < limit {
			v := idx.Get(id.Hash[:])
			if v == nil {
				return nil
			}
			var e IndexEntry
			if err := decodeRecord(v, &e); err != nil {
				return err
			}
			out = append(out, id)
			if e.Height == 0 {
				return nil
			}
			id = consensus.HeaderID{Height: e.Height - 1, Hash: e.Prev}
		}
		return nil
	})
	return out, err
}
