// Copyright 2024 The langid Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package langid

import (
	"os"
	"path/filepath"

	"github.com/edsrzf/mmap-go"
	"github.com/pkg/errors"
)

// modelsDirEnv overrides the default model directory, grounded on the
// teacher's convention of an env var fallback ahead of a repo-relative
// default (spec.md §8 external interfaces).
const modelsDirEnv = "LANGID_MODELS_DIR"

const defaultModelsDir = "language-models"

// modelStore resolves and mmaps the two per-language model files
// (spec.md §4.5): uni-bi-trigrams.bin and quadri-fivegrams.bin under
// <root>/<iso-639-1>/.
type modelStore struct {
	root string
}

func newModelStore() *modelStore {
	root := os.Getenv(modelsDirEnv)
	if root == "" {
		root = defaultModelsDir
	}
	return &modelStore{root: root}
}

func (s *modelStore) languageDir(lang Language) string {
	return filepath.Join(s.root, lang.IsoCode639_1())
}

// readFile mmaps path read-only and returns its contents as a byte
// slice backed by the mapping. The caller owns closing via the returned
// mmap.MMap once it is done with the bytes (ModelHolder.Reset unmaps on
// release).
func (s *modelStore) readFile(path string) (mmap.MMap, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrapf(ErrModelMissing, "open %s", path)
		}
		return nil, errors.Wrapf(err, "open %s", path)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, errors.Wrapf(err, "stat %s", path)
	}
	if info.Size() == 0 {
		return nil, errors.Wrapf(ErrModelCorrupt, "%s is empty", path)
	}

	m, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return nil, errors.Wrapf(err, "mmap %s", path)
	}
	return m, nil
}

// loadUniBiTrigram reads and decodes a language's uni-bi-trigrams.bin.
func (s *modelStore) loadUniBiTrigram(lang Language) (*UniBiTrigram, mmap.MMap, error) {
	path := filepath.Join(s.languageDir(lang), "uni-bi-trigrams.bin")
	m, err := s.readFile(path)
	if err != nil {
		return nil, nil, err
	}
	l, err := decodeUniBiTrigram(m)
	if err != nil {
		m.Unmap()
		return nil, nil, errors.Wrapf(err, "decode %s", path)
	}
	return l, m, nil
}

// loadQuadriFivegram reads and decodes a language's quadri-fivegrams.bin.
func (s *modelStore) loadQuadriFivegram(lang Language) (*QuadriFivegram, mmap.MMap, error) {
	path := filepath.Join(s.languageDir(lang), "quadri-fivegrams.bin")
	m, err := s.readFile(path)
	if err != nil {
		return nil, nil, err
	}
	l, err := decodeQuadriFivegram(m)
	if err != nil {
		m.Unmap()
		return nil, nil, errors.Wrapf(err, "decode %s", path)
	}
	return l, m, nil
}
