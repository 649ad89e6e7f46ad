// Package replcache is a content-addressed cache of parsed top-level
// forms, keyed by the blake2b-256 hash of the source bytes that produced
// them. The REPL and --watch CLI modes reparse the same file or line
// repeatedly; skipping re-lexing/re-parsing unchanged source is a pure
// win since parsing is deterministic and side-effect free.
package replcache

import (
	"encoding/hex"
	"fmt"
	"os"

	"github.com/fxamacker/cbor/v2"
	"golang.org/x/crypto/blake2b"

	"github.com/wisplang/wisp/internal/lexer"
	"github.com/wisplang/wisp/internal/object"
	"github.com/wisplang/wisp/internal/parser"
)

// entry is the on-disk CBOR representation of one cached parse. Values
// are stored as their external printed form rather than as object.Value
// directly, since Value is an interface and BuiltinFn/Closure variants
// cannot round-trip through CBOR (and never appear in parsed source
// anyway: only Int/Bool/Symbol/Null/Pair do).
type entry struct {
	Source string   `cbor:"source"`
	Forms  []string `cbor:"forms"`
}

// Cache holds parsed-form entries in memory, addressed by source hash,
// and can persist itself to / reload itself from a single CBOR file.
type Cache struct {
	path    string
	entries map[string]entry
}

// Open loads a cache from path if it exists; a missing or corrupt file
// starts an empty cache rather than failing, since the cache is purely
// an optimization.
func Open(path string) *Cache {
	c := &Cache{path: path, entries: make(map[string]entry)}
	data, err := os.ReadFile(path)
	if err != nil {
		return c
	}
	var onDisk map[string]entry
	if err := cbor.Unmarshal(data, &onDisk); err != nil {
		return c
	}
	c.entries = onDisk
	return c
}

// Save persists the cache to its path as canonical (deterministic) CBOR.
func (c *Cache) Save() error {
	encMode, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		return fmt.Errorf("replcache: failed to create CBOR encoder: %w", err)
	}
	data, err := encMode.Marshal(c.entries)
	if err != nil {
		return fmt.Errorf("replcache: CBOR encoding failed: %w", err)
	}
	return os.WriteFile(c.path, data, 0o644)
}

// key hashes source with blake2b-256 to produce a stable, idempotent
// identifier for its cache entry.
func key(source string) string {
	sum := blake2b.Sum256([]byte(source))
	return hex.EncodeToString(sum[:])
}

// Lookup returns the cached parse of source, if present and the source
// bytes are an exact match (a defense against an unlikely hash
// collision silently returning stale forms).
func (c *Cache) Lookup(source string) (*parser.Tree, bool) {
	e, ok := c.entries[key(source)]
	if !ok || e.Source != source {
		return nil, false
	}
	tree, err := reparse(e.Forms, source)
	if err != nil {
		return nil, false
	}
	return tree, true
}

// Store records source's parsed forms in the cache, keyed by content
// hash. It does not write to disk; call Save for that.
func (c *Cache) Store(source string, tree *parser.Tree) {
	forms := make([]string, len(tree.Exprs))
	for i, v := range tree.Exprs {
		forms[i] = object.Print(v, false)
	}
	c.entries[key(source)] = entry{Source: source, Forms: forms}
}

// reparse re-derives object.Value forms from their printed text. This
// is cheaper than it sounds: printed forms are always well-formed wisp
// source, so a cache hit still pays a (much smaller) re-parse cost
// rather than needing a full Value (de)serialization format. If
// round-tripping a form ever fails, the whole lookup is treated as a
// cache miss.
func reparse(forms []string, originalSource string) (*parser.Tree, error) {
	exprs := make([]object.Value, 0, len(forms))
	for _, f := range forms {
		tree, err := parseOneForm(f)
		if err != nil {
			return nil, err
		}
		exprs = append(exprs, tree...)
	}
	return &parser.Tree{Exprs: exprs}, nil
}

// parseOneForm lexes and parses a single previously-printed form back
// into its constituent top-level values (always exactly one, but Parse's
// signature returns a slice).
func parseOneForm(text string) ([]object.Value, error) {
	l := lexer.New()
	l.Init([]byte(text))
	tree, err := parser.Parse(l.Tokens(), text)
	if err != nil {
		return nil, err
	}
	return tree.Exprs, nil
}
