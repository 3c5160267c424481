package lifetrack

import (
	"bytes"
	"fmt"
	"io"
	"log"
)

// KV is the durable key-value byte store the engine persists into. The
// sqlite-backed implementation lives in the kvstore package; tests use an
// in-memory map.
type KV interface {
	// Get returns the value stored under key, and whether one exists.
	Get(key string) ([]byte, bool, error)
	// Put stores value under key, overwriting any previous value.
	Put(key string, value []byte) error
	// Delete removes the value stored under key, if any.
	Delete(key string) error
}

// Persister bridges a Store to durable storage. It loads the aggregate once
// at startup and writes the full serialized aggregate after every committed
// change. Writes are fire-and-forget relative to the in-memory snapshot: a
// failed write is logged and the snapshot stays committed.
type Persister struct {
	store *Store
	kv    KV
}

// NewPersister attaches persistence to the store. Every snapshot committed
// from now on is written to the key-value store under [StorageKey].
func NewPersister(store *Store, kv KV) *Persister {
	p := &Persister{store: store, kv: kv}
	store.Subscribe(p.save)
	return p
}

// Load reads the stored aggregate and installs it. An absent record leaves
// the built-in default in place and is not an error. A malformed record is
// reported as an error, also leaving the default in place; the caller
// decides how loudly to complain, the process keeps running either way.
func (p *Persister) Load() error {
	raw, ok, err := p.kv.Get(StorageKey)
	if err != nil {
		return fmt.Errorf("cannot read stored data: %w", err)
	}
	if !ok {
		return nil
	}
	d, err := DecodeData(bytes.NewReader(raw))
	if err != nil {
		return fmt.Errorf("stored data under %q is unusable: %w", StorageKey, err)
	}
	p.store.Apply(ReplaceAll{Data: d})
	return nil
}

// Flush writes the current snapshot synchronously. Called at shutdown.
func (p *Persister) Flush() error {
	var buf bytes.Buffer
	if err := EncodeData(&buf, p.store.State()); err != nil {
		return err
	}
	return p.kv.Put(StorageKey, buf.Bytes())
}

func (p *Persister) save(d AppData) {
	var buf bytes.Buffer
	if err := EncodeData(&buf, d); err != nil {
		log.Printf("persist: cannot serialize snapshot: %v", err)
		return
	}
	if err := p.kv.Put(StorageKey, buf.Bytes()); err != nil {
		log.Printf("persist: cannot write snapshot: %v", err)
	}
}

// Import reads an externally supplied aggregate and, when it is well
// formed, replaces the current state wholesale. Malformed input is rejected
// without mutating existing state. Confirmation of the destructive replace
// is the caller's concern.
func (p *Persister) Import(r io.Reader) error {
	d, err := DecodeData(r)
	if err != nil {
		return fmt.Errorf("import rejected: %w", err)
	}
	p.store.Apply(ReplaceAll{Data: d})
	return nil
}

// Export writes the full serialized aggregate to w, independent of the
// keyed durable store.
func Export(w io.Writer, d AppData) error {
	return EncodeData(w, d)
}

// ExportFilename names an export artifact produced on the given day.
func ExportFilename(day Date) string {
	return fmt.Sprintf("finance-backup-%s.json", day)
}
