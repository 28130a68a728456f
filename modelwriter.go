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

	"github.com/pkg/errors"
)

// BuildUniBiTrigramModel builds an in-memory UniBiTrigram lookup from raw
// n-gram text to relative-frequency-encoded counts. It is the entry
// point fixture builders and offline model generators use in place of
// the real training pipeline (spec.md §7): given the same
// ngram-to-encoded-frequency input, it produces exactly the lookup a
// shipped model file would decode to.
func BuildUniBiTrigramModel(freqs map[string]uint32) (*UniBiTrigram, error) {
	return buildUniBiTrigram(ngramFrequencies(freqs))
}

// BuildQuadriFivegramModel mirrors BuildUniBiTrigramModel for n-grams of
// length 4-5.
func BuildQuadriFivegramModel(freqs map[string]uint32) (*QuadriFivegram, error) {
	return buildQuadriFivegram(ngramFrequencies(freqs))
}

// RelativeFrequency encodes a num/den ratio the same way model training
// would, for callers building fixture frequency maps by hand.
func RelativeFrequency(num, den uint64) uint32 {
	return encodeFrequency(num, den)
}

// WriteModelFiles writes the two model files the store and ModelHolder
// expect for lang under dir: dir/<iso-639-1>/uni-bi-trigrams.bin and
// dir/<iso-639-1>/quadri-fivegrams.bin.
func WriteModelFiles(dir string, lang Language, uniBiTri *UniBiTrigram, quadFive *QuadriFivegram) error {
	langDir := filepath.Join(dir, lang.IsoCode639_1())
	if err := os.MkdirAll(langDir, 0o755); err != nil {
		return errors.Wrapf(err, "mkdir %s", langDir)
	}

	uniBiPath := filepath.Join(langDir, "uni-bi-trigrams.bin")
	if err := os.WriteFile(uniBiPath, encodeUniBiTrigram(uniBiTri), 0o644); err != nil {
		return errors.Wrapf(err, "write %s", uniBiPath)
	}

	quadFivePath := filepath.Join(langDir, "quadri-fivegrams.bin")
	if err := os.WriteFile(quadFivePath, encodeQuadriFivegram(quadFive), 0o644); err != nil {
		return errors.Wrapf(err, "write %s", quadFivePath)
	}

	return nil
}
