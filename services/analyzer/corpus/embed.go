// Copyright (C) 2026 Thamizhneri (dev@thamizhneri.org)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package corpus

import (
	"bytes"
	_ "embed"
)

//go:embed data/corpus.json
var embeddedCorpus []byte

// LoadEmbedded loads the sample corpus compiled into the binary. It is the
// default corpus when no SQLite path is configured.
func LoadEmbedded() (*Store, error) {
	return Load(bytes.NewReader(embeddedCorpus))
}
