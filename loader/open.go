package loader

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	u "github.com/araddon/gou"
	"github.com/klauspost/compress/zstd"

	"github.com/geange/automaton/v2"
)

const zstdExt = ".zst"

// Open Opens a definition file, decompressing it when its name ends in .zst.
func Open(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	if !strings.HasSuffix(path, zstdExt) {
		return f, nil
	}

	dec, err := zstd.NewReader(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	return &zstdFile{Decoder: dec, f: f}, nil
}

type zstdFile struct {
	*zstd.Decoder
	f *os.File
}

func (z *zstdFile) Close() error {
	z.Decoder.Close()
	return z.f.Close()
}

// IsStructured Reports whether path names a YAML or JSON definition, ignoring a
// trailing .zst.
func IsStructured(path string) bool {
	switch strings.ToLower(filepath.Ext(strings.TrimSuffix(path, zstdExt))) {
	case ".yaml", ".yml", ".json":
		return true
	}
	return false
}

// Load Reads and validates a definition file. YAML and JSON files carry their own
// kind; section files are read as kind.
func Load(path string, kind automaton.Kind) (*automaton.Definition, error) {
	r, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	var def *automaton.Definition
	if IsStructured(path) {
		b, err := io.ReadAll(r)
		if err != nil {
			return nil, err
		}
		def, err = UnmarshalYAML(b)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
	} else {
		def, err = Parse(kind, r)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
	}
	u.Debugf("loaded %s %s: %d states, %d transitions", def.Kind, path, len(def.States), def.NumTransitions())
	return def, nil
}

// Save Writes def to path: YAML for .yaml and .yml, JSON for .json, the section
// format otherwise. A trailing .zst compresses the output.
func Save(path string, def *automaton.Definition) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	var w io.Writer = f
	if strings.HasSuffix(path, zstdExt) {
		var enc *zstd.Encoder
		if enc, err = zstd.NewWriter(f); err != nil {
			return err
		}
		defer func() {
			if cerr := enc.Close(); err == nil {
				err = cerr
			}
		}()
		w = enc
	}

	switch strings.ToLower(filepath.Ext(strings.TrimSuffix(path, zstdExt))) {
	case ".yaml", ".yml":
		b, err := MarshalYAML(def)
		if err != nil {
			return err
		}
		_, err = w.Write(b)
		return err
	case ".json":
		b, err := MarshalJSON(def)
		if err != nil {
			return err
		}
		_, err = w.Write(b)
		return err
	}
	return WriteText(w, def)
}
