//go:build !nogpu

// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gpu

import (
	"log/slog"

	"github.com/gogpu/pathmesh"
)

// slogger returns the logger configured with pathmesh.SetLogger.
func slogger() *slog.Logger { return pathmesh.Logger() }
