package configs

import (
	"errors"
	"iter"
	"os"
	"sync"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

// ErrValueNotFound is returned when no config file sets a path.
var ErrValueNotFound = errors.New("config value not found")

// Loader reads CUE config files lazily. Files earlier in the list take
// precedence over later ones.
type Loader struct {
	getRoots func() ([]rootInfo, error)
}

// NewLoader creates a loader for the given files. If schemaSrc is not empty,
// every file must unify with the closed struct it describes.
func NewLoader(filePaths []string, schemaSrc string) Loader {
	return Loader{

		getRoots: sync.OnceValues(func() (ret []rootInfo, err error) {

			// Values must share a context to unify.
			ctx := cuecontext.New()

			var schema cue.Value
			if schemaSrc != "" {
				schema = ctx.CompileString("close({" + schemaSrc + "})")
				if err := schema.Err(); err != nil {
					return nil, err
				}
			}

			for _, filePath := range filePaths {
				content, err := os.ReadFile(filePath)
				if err != nil {
					return nil, err
				}

				value := ctx.CompileBytes(
					content,
					cue.Filename(filePath),
				)
				if err = value.Err(); err != nil {
					return nil, err
				}

				if schema.Exists() {
					if err := schema.Unify(value).Validate(); err != nil {
						return nil, err
					}
				}

				ret = append(ret, rootInfo{
					value: value,
					path:  filePath,
				})
			}

			return
		}),
	}
}

type rootInfo struct {
	value cue.Value
	path  string
}

// Err returns the error from reading or validating the files, if any.
func (l Loader) Err() error {
	_, err := l.getRoots()
	return err
}

// IterCueValues yields the value at path in each file that sets it.
func (l Loader) IterCueValues(path string) iter.Seq2[*cue.Value, error] {
	return func(yield func(*cue.Value, error) bool) {
		roots, err := l.getRoots()
		if err != nil {
			yield(nil, err)
			return
		}

		cuePath := cue.ParsePath(path)
		for _, info := range roots {
			value := info.value.LookupPath(cuePath)
			if err := value.Err(); err == nil && value.Exists() {
				if !yield(&value, nil) {
					break
				}
			}
		}
	}
}

// AssignFirst decodes the value at path in the first file that sets it into
// target. If no file sets it, the error is ErrValueNotFound.
func (l Loader) AssignFirst(path string, target any) error {
	for value, err := range l.IterCueValues(path) {
		if err != nil {
			return err
		}
		return value.Decode(target)
	}
	return ErrValueNotFound
}

// First returns the value at path in the first file that sets it, or the
// zero value if none does. Other errors panic.
func First[T any](loader Loader, path string) T {
	var value T
	if err := loader.AssignFirst(path, &value); err != nil {
		if errors.Is(err, ErrValueNotFound) {
			return value
		}
		panic(err)
	}
	return value
}
