// Copyright © 2026 Glint contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: theme/embedded.go
// Summary: Embedded default theme document.

package theme

import _ "embed"

//go:embed defaults.json
var defaultThemeJSON []byte
